package main

import (
	"fmt"
	"image"
	"image/color"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/benoitkugler/dxfvis/dxfdoc"
	"github.com/benoitkugler/dxfvis/dxfdraw"
	"github.com/benoitkugler/dxfvis/dxfgg"
	"github.com/benoitkugler/dxfvis/dxfpdf"
	"github.com/benoitkugler/dxfvis/dxfraster"
	"github.com/benoitkugler/dxfvis/dxfread"
	"github.com/benoitkugler/dxfvis/dxfrender"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/tdewolff/argp"
)

type Render struct {
	Output     string  `short:"o" default:"" desc:"Output file, whose extension selects the format (png, bmp, tif, pdf)"`
	Size       int     `short:"s" default:"1024" desc:"Size in pixels of the longer side of the image"`
	Background string  `short:"b" default:"#000000" desc:"Background color"`
	Width      float64 `default:"3" desc:"Line width, in drawing units"`
	Dot        float64 `default:"4" desc:"Dot radius, in drawing units"`
	Engine     string  `short:"e" default:"rasterx" desc:"Raster engine, rasterx or gg"`
	Strict     bool    `desc:"Fail on malformed or unsupported content"`
	Quiet      bool    `short:"q" desc:"Skip malformed or unsupported content silently"`
	Verbose    bool    `short:"v" desc:"Log the rendering steps"`
	Input      string  `index:"0" desc:"Input DXF file"`
}

func main() {
	root := argp.NewCmd(&Render{}, "Render DXF drawings to images")
	root.Parse()
	root.PrintHelp()
}

func (cmd *Render) errorMode() dxfdoc.ErrorMode {
	switch {
	case cmd.Strict:
		return dxfdoc.StrictErrorMode
	case cmd.Quiet:
		return dxfdoc.IgnoreErrorMode
	default:
		return dxfdoc.WarnErrorMode
	}
}

func (cmd *Render) setLogger() {
	level := slog.LevelWarn
	if cmd.Verbose {
		level = slog.LevelDebug
	} else if cmd.Quiet {
		return
	}
	dxfrender.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
}

func (cmd *Render) options() ([]dxfrender.Option, error) {
	bg, err := colorful.Hex(cmd.Background)
	if err != nil {
		return nil, fmt.Errorf("invalid background: %w", err)
	}
	r, g, b := bg.RGB255()
	return []dxfrender.Option{
		dxfrender.WithMaxEdge(cmd.Size),
		dxfrender.WithLineWidth(cmd.Width),
		dxfrender.WithDotRadius(cmd.Dot),
		dxfrender.WithBackground(color.RGBA{r, g, b, 255}),
		dxfrender.WithErrorMode(cmd.errorMode()),
	}, nil
}

func (cmd *Render) Run() error {
	if cmd.Input == "" {
		return argp.ShowUsage
	}
	if cmd.Output == "" {
		cmd.Output = strings.TrimSuffix(cmd.Input, filepath.Ext(cmd.Input)) + ".png"
	}
	cmd.setLogger()
	opts, err := cmd.options()
	if err != nil {
		return err
	}
	doc, err := dxfread.ReadFile(cmd.Input, cmd.errorMode())
	if err != nil {
		return err
	}
	if strings.EqualFold(filepath.Ext(cmd.Output), ".pdf") {
		return writePDF(doc, cmd.Output, opts)
	}
	format, err := dxfraster.FormatFromPath(cmd.Output)
	if err != nil {
		return err
	}
	img, err := rasterize(doc, cmd.Engine, opts)
	if err != nil {
		return err
	}
	f, err := os.Create(cmd.Output)
	if err != nil {
		return err
	}
	if err := dxfraster.Encode(f, img, format); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func rasterize(doc *dxfdoc.Document, engine string, opts []dxfrender.Option) (image.Image, error) {
	switch engine {
	case "", "rasterx":
		return dxfrender.Render(doc, opts...)
	case "gg":
		c, err := dxfrender.RenderTo(doc, func(shape dxfdraw.CanvasShape, o dxfrender.Options) (dxfdraw.Canvas, error) {
			return dxfgg.New(shape, o.Background), nil
		}, opts...)
		if err != nil {
			return nil, err
		}
		canvas := c.(*dxfgg.Canvas)
		defer canvas.Close()
		if err := canvas.Err(); err != nil {
			return nil, err
		}
		return canvas.Image(), nil
	default:
		return nil, fmt.Errorf("unknown engine %q", engine)
	}
}

func writePDF(doc *dxfdoc.Document, output string, opts []dxfrender.Option) error {
	c, err := dxfrender.RenderTo(doc, func(shape dxfdraw.CanvasShape, o dxfrender.Options) (dxfdraw.Canvas, error) {
		return dxfpdf.New(shape, o.Background), nil
	}, opts...)
	if err != nil {
		return err
	}
	f, err := os.Create(output)
	if err != nil {
		return err
	}
	if err := c.(*dxfpdf.Canvas).Write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
