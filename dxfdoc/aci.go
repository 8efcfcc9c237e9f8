package dxfdoc

import "image/color"

// aciPalette maps the AutoCAD Color Index to RGB.
// Index 0 (BYBLOCK) and 256 (BYLAYER) are resolved by the caller.
var aciPalette = [256]color.RGBA{
	{}, // 0
	{255, 0, 0, 255},
	{255, 255, 0, 255},
	{0, 255, 0, 255},
	{0, 255, 255, 255},
	{0, 0, 255, 255},
	{255, 0, 255, 255},
	{255, 255, 255, 255},
	{128, 128, 128, 255},
	{192, 192, 192, 255},
	// 10
	{255, 0, 0, 255},
	{255, 127, 127, 255},
	{204, 0, 0, 255},
	{204, 102, 102, 255},
	{152, 0, 0, 255},
	{152, 76, 76, 255},
	{127, 0, 0, 255},
	{127, 63, 63, 255},
	{76, 0, 0, 255},
	{76, 38, 38, 255},
	// 20
	{255, 63, 0, 255},
	{255, 159, 127, 255},
	{204, 51, 0, 255},
	{204, 127, 102, 255},
	{152, 38, 0, 255},
	{152, 95, 76, 255},
	{127, 31, 0, 255},
	{127, 79, 63, 255},
	{76, 19, 0, 255},
	{76, 47, 38, 255},
	// 30
	{255, 127, 0, 255},
	{255, 191, 127, 255},
	{204, 102, 0, 255},
	{204, 153, 102, 255},
	{152, 76, 0, 255},
	{152, 114, 76, 255},
	{127, 63, 0, 255},
	{127, 95, 63, 255},
	{76, 38, 0, 255},
	{76, 57, 38, 255},
	// 40
	{255, 191, 0, 255},
	{255, 223, 127, 255},
	{204, 153, 0, 255},
	{204, 178, 102, 255},
	{152, 114, 0, 255},
	{152, 133, 76, 255},
	{127, 95, 0, 255},
	{127, 111, 63, 255},
	{76, 57, 0, 255},
	{76, 66, 38, 255},
	// 50
	{255, 255, 0, 255},
	{255, 255, 127, 255},
	{204, 204, 0, 255},
	{204, 204, 102, 255},
	{152, 152, 0, 255},
	{152, 152, 76, 255},
	{127, 127, 0, 255},
	{127, 127, 63, 255},
	{76, 76, 0, 255},
	{76, 76, 38, 255},
	// 60
	{191, 255, 0, 255},
	{223, 255, 127, 255},
	{153, 204, 0, 255},
	{178, 204, 102, 255},
	{114, 152, 0, 255},
	{133, 152, 76, 255},
	{95, 127, 0, 255},
	{111, 127, 63, 255},
	{57, 76, 0, 255},
	{66, 76, 38, 255},
	// 70
	{127, 255, 0, 255},
	{191, 255, 127, 255},
	{102, 204, 0, 255},
	{153, 204, 102, 255},
	{76, 152, 0, 255},
	{114, 152, 76, 255},
	{63, 127, 0, 255},
	{95, 127, 63, 255},
	{38, 76, 0, 255},
	{57, 76, 38, 255},
	// 80
	{63, 255, 0, 255},
	{159, 255, 127, 255},
	{51, 204, 0, 255},
	{127, 204, 102, 255},
	{38, 152, 0, 255},
	{95, 152, 76, 255},
	{31, 127, 0, 255},
	{79, 127, 63, 255},
	{19, 76, 0, 255},
	{47, 76, 38, 255},
	// 90
	{0, 255, 0, 255},
	{127, 255, 127, 255},
	{0, 204, 0, 255},
	{102, 204, 102, 255},
	{0, 152, 0, 255},
	{76, 152, 76, 255},
	{0, 127, 0, 255},
	{63, 127, 63, 255},
	{0, 76, 0, 255},
	{38, 76, 38, 255},
	// 100
	{0, 255, 63, 255},
	{127, 255, 159, 255},
	{0, 204, 51, 255},
	{102, 204, 127, 255},
	{0, 152, 38, 255},
	{76, 152, 95, 255},
	{0, 127, 31, 255},
	{63, 127, 79, 255},
	{0, 76, 19, 255},
	{38, 76, 47, 255},
	// 110
	{0, 255, 127, 255},
	{127, 255, 191, 255},
	{0, 204, 102, 255},
	{102, 204, 153, 255},
	{0, 152, 76, 255},
	{76, 152, 114, 255},
	{0, 127, 63, 255},
	{63, 127, 95, 255},
	{0, 76, 38, 255},
	{38, 76, 57, 255},
	// 120
	{0, 255, 191, 255},
	{127, 255, 223, 255},
	{0, 204, 153, 255},
	{102, 204, 178, 255},
	{0, 152, 114, 255},
	{76, 152, 133, 255},
	{0, 127, 95, 255},
	{63, 127, 111, 255},
	{0, 76, 57, 255},
	{38, 76, 66, 255},
	// 130
	{0, 255, 255, 255},
	{127, 255, 255, 255},
	{0, 204, 204, 255},
	{102, 178, 204, 255},
	{0, 152, 152, 255},
	{76, 152, 152, 255},
	{0, 127, 127, 255},
	{63, 127, 127, 255},
	{0, 76, 76, 255},
	{38, 76, 76, 255},
	// 140
	{0, 191, 255, 255},
	{127, 223, 255, 255},
	{0, 153, 204, 255},
	{102, 204, 204, 255},
	{0, 114, 152, 255},
	{76, 133, 152, 255},
	{0, 95, 127, 255},
	{63, 111, 127, 255},
	{0, 57, 76, 255},
	{38, 66, 76, 255},
	// 150
	{0, 127, 255, 255},
	{127, 191, 255, 255},
	{0, 102, 204, 255},
	{102, 153, 204, 255},
	{0, 76, 152, 255},
	{76, 114, 152, 255},
	{0, 63, 127, 255},
	{63, 95, 127, 255},
	{0, 38, 76, 255},
	{38, 57, 76, 255},
	// 160
	{0, 63, 255, 255},
	{127, 159, 255, 255},
	{0, 51, 204, 255},
	{102, 127, 204, 255},
	{0, 38, 152, 255},
	{76, 95, 152, 255},
	{0, 31, 127, 255},
	{63, 79, 127, 255},
	{0, 19, 76, 255},
	{38, 47, 76, 255},
	// 170
	{0, 0, 255, 255},
	{127, 127, 255, 255},
	{0, 0, 204, 255},
	{102, 102, 204, 255},
	{0, 0, 152, 255},
	{76, 76, 152, 255},
	{0, 0, 127, 255},
	{63, 63, 127, 255},
	{0, 0, 76, 255},
	{38, 38, 76, 255},
	// 180
	{63, 0, 255, 255},
	{159, 127, 255, 255},
	{51, 0, 204, 255},
	{127, 102, 204, 255},
	{38, 0, 152, 255},
	{95, 76, 152, 255},
	{31, 0, 127, 255},
	{79, 63, 127, 255},
	{19, 0, 76, 255},
	{47, 38, 76, 255},
	// 190
	{127, 0, 255, 255},
	{191, 127, 255, 255},
	{102, 0, 204, 255},
	{153, 102, 204, 255},
	{76, 0, 152, 255},
	{114, 76, 152, 255},
	{63, 0, 127, 255},
	{95, 63, 127, 255},
	{38, 0, 76, 255},
	{57, 38, 76, 255},
	// 200
	{191, 0, 255, 255},
	{223, 127, 255, 255},
	{153, 0, 204, 255},
	{178, 102, 204, 255},
	{114, 0, 152, 255},
	{133, 76, 152, 255},
	{95, 0, 127, 255},
	{111, 63, 127, 255},
	{57, 0, 76, 255},
	{66, 38, 76, 255},
	// 210
	{255, 0, 255, 255},
	{255, 127, 255, 255},
	{204, 0, 204, 255},
	{204, 102, 204, 255},
	{152, 0, 152, 255},
	{152, 76, 152, 255},
	{127, 0, 127, 255},
	{127, 63, 127, 255},
	{76, 0, 76, 255},
	{76, 38, 76, 255},
	// 220
	{255, 0, 191, 255},
	{255, 127, 223, 255},
	{204, 0, 153, 255},
	{204, 102, 178, 255},
	{152, 0, 114, 255},
	{152, 76, 133, 255},
	{127, 0, 95, 255},
	{127, 63, 111, 255},
	{76, 0, 57, 255},
	{76, 38, 66, 255},
	// 230
	{255, 0, 127, 255},
	{255, 127, 191, 255},
	{204, 0, 102, 255},
	{204, 102, 153, 255},
	{152, 0, 76, 255},
	{152, 76, 114, 255},
	{127, 0, 61, 255},
	{127, 63, 95, 255},
	{76, 0, 38, 255},
	{76, 38, 57, 255},
	// 240
	{255, 0, 63, 255},
	{255, 127, 159, 255},
	{204, 0, 51, 255},
	{204, 102, 127, 255},
	{152, 0, 38, 255},
	{152, 76, 95, 255},
	{127, 0, 31, 255},
	{127, 63, 79, 255},
	{76, 0, 19, 255},
	{76, 38, 47, 255},
	// 250
	{51, 51, 51, 255},
	{80, 80, 80, 255},
	{105, 105, 105, 255},
	{130, 130, 130, 255},
	{190, 190, 190, 255},
	{255, 255, 255, 255},
}
