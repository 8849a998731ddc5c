package ggrender

import "github.com/gogpu/gg/text"

// Option configures a Renderer.
type Option func(*options)

type options struct {
	fonts       *text.FontSource
	defaultSize float64
}

func defaultOptions() options {
	return options{defaultSize: DefaultFontSize}
}

// WithFontSource sets the font used for text. Without it the Go Regular
// font is used.
func WithFontSource(src *text.FontSource) Option {
	return func(o *options) {
		o.fonts = src
	}
}

// WithFontSize sets the size used for text runs that carry no size of
// their own. Non-positive sizes are ignored.
func WithFontSize(size float64) Option {
	return func(o *options) {
		if size > 0 {
			o.defaultSize = size
		}
	}
}
