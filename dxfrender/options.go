package dxfrender

import (
	"fmt"
	"image/color"
	"log/slog"

	"github.com/benoitkugler/dxfvis/dxfdoc"
	"github.com/benoitkugler/dxfvis/dxfdraw"
	"github.com/benoitkugler/dxfvis/internal/logging"
)

// Default values of Options.
const (
	DefaultMaxEdge       = 1024
	DefaultLineWidth     = 3.
	DefaultDotRadius     = 4.
	DefaultPatternLength = 100.
)

// Options configures the rendering.
// Lengths are expressed in document units.
type Options struct {
	// MaxEdge is the size in pixels of the longer side of the image.
	MaxEdge int
	// LineWidth is the width of every stroke.
	LineWidth float64
	// DotRadius is the radius of dots, in patterns and for POINT.
	DotRadius float64
	// DefaultPatternLength is used for descriptive linetypes
	// without nominal length.
	DefaultPatternLength float64
	// Background fills the image before drawing.
	Background color.RGBA
	// ErrorMode decides what happens for entities which cannot
	// be rendered faithfully, such as 3D polylines.
	ErrorMode dxfdoc.ErrorMode
}

// DefaultOptions returns the options used when none is given.
func DefaultOptions() Options {
	return Options{
		MaxEdge:              DefaultMaxEdge,
		LineWidth:            DefaultLineWidth,
		DotRadius:            DefaultDotRadius,
		DefaultPatternLength: DefaultPatternLength,
		Background:           color.RGBA{0, 0, 0, 255},
		ErrorMode:            dxfdoc.WarnErrorMode,
	}
}

// Option modifies Options.
type Option func(*Options)

// WithMaxEdge sets the size of the longer side of the image.
func WithMaxEdge(pixels int) Option { return func(o *Options) { o.MaxEdge = pixels } }

// WithLineWidth sets the stroke width.
func WithLineWidth(w float64) Option { return func(o *Options) { o.LineWidth = w } }

// WithDotRadius sets the dot radius.
func WithDotRadius(r float64) Option { return func(o *Options) { o.DotRadius = r } }

// WithDefaultPatternLength sets the length used for descriptive
// linetypes without nominal length.
func WithDefaultPatternLength(l float64) Option {
	return func(o *Options) { o.DefaultPatternLength = l }
}

// WithBackground sets the background color.
func WithBackground(c color.RGBA) Option { return func(o *Options) { o.Background = c } }

// WithErrorMode sets the policy for unsupported geometry.
func WithErrorMode(m dxfdoc.ErrorMode) Option { return func(o *Options) { o.ErrorMode = m } }

func newOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o, o.validate()
}

func (o Options) validate() error {
	if o.MaxEdge <= 0 {
		return fmt.Errorf("%w: max edge %d", dxfdraw.ErrInvalidSize, o.MaxEdge)
	}
	if o.LineWidth <= 0 || o.DotRadius < 0 || o.DefaultPatternLength <= 0 {
		return fmt.Errorf("%w: line width %g, dot radius %g, pattern length %g",
			ErrInvalidOptions, o.LineWidth, o.DotRadius, o.DefaultPatternLength)
	}
	return nil
}

// SetLogger configures the logger used by dxfvis packages.
// By default nothing is logged. Pass nil to restore this behavior.
//
// Levels used:
//   - [slog.LevelDebug]: skipped entities
//   - [slog.LevelInfo]: summary of a rendering pass
//   - [slog.LevelWarn]: entities not rendered because of unsupported
//     features, missing blocks, malformed values
func SetLogger(l *slog.Logger) { logging.Set(l) }

// Logger returns the logger configured with SetLogger.
func Logger() *slog.Logger { return logging.Logger() }
