package icons

import (
	"fmt"
	"image/color"
	"strings"
)

const (
	RendererAuto   = "auto"
	RendererRaster = "raster"
	RendererVector = "vector"
)

// DefaultSizes are the PWA icon sizes, in generation order.
var DefaultSizes = []int{16, 32, 72, 96, 128, 144, 152, 192, 384, 512}

// Config holds configuration for the icon generator.
type Config struct {
	// OutputDir receives the generated icons. It is created if missing.
	OutputDir string `mapstructure:"output_dir" default:"icons"`
	// BrandColor is the background and label colour as #rrggbb.
	BrandColor string `mapstructure:"brand_color" default:"#0078bf"`
	// Renderer selects the rendering path (auto, raster, vector).
	Renderer string `mapstructure:"renderer" default:"auto"`
	// FontPaths are tried in order for the raster label before the built-in font.
	FontPaths []string `mapstructure:"font_paths" default:"/System/Library/Fonts/Arial.ttf,/usr/share/fonts/truetype/dejavu/DejaVuSans-Bold.ttf,/usr/share/fonts/truetype/liberation/LiberationSans-Bold.ttf"`
	// Label is the text drawn on the badge.
	Label string `mapstructure:"label" default:"SL"`
}

// ParseHexColor parses #rgb or #rrggbb into an opaque colour.
func ParseHexColor(s string) (color.NRGBA, error) {
	c := color.NRGBA{A: 0xff}
	hex := strings.TrimPrefix(s, "#")

	var err error
	switch len(hex) {
	case 6:
		_, err = fmt.Sscanf(hex, "%02x%02x%02x", &c.R, &c.G, &c.B)
	case 3:
		_, err = fmt.Sscanf(hex, "%1x%1x%1x", &c.R, &c.G, &c.B)
		c.R *= 17
		c.G *= 17
		c.B *= 17
	default:
		err = fmt.Errorf("expected 3 or 6 hex digits")
	}
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("invalid colour %q: %w", s, err)
	}
	return c, nil
}

// hexColor formats c as #rrggbb.
func hexColor(c color.NRGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
