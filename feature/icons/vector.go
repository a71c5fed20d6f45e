package icons

import (
	"bytes"
	"encoding/xml"
	"io"
	"text/template"
)

var svgTemplate = template.Must(template.New("icon").Funcs(template.FuncMap{
	"xml": xmlEscape,
}).Parse(`<?xml version="1.0" encoding="UTF-8"?>
<svg width="{{.Size}}" height="{{.Size}}" viewBox="0 0 {{.Size}} {{.Size}}" xmlns="http://www.w3.org/2000/svg">
    <rect width="{{.Size}}" height="{{.Size}}" fill="{{.Brand}}" rx="{{.Radius}}"/>
    <circle cx="{{.Center}}" cy="{{.Center}}" r="{{.Badge}}" fill="white" opacity="0.9"/>
    <text x="{{.Center}}" y="{{.GlyphY}}" font-family="Arial, sans-serif" font-size="{{.GlyphSize}}" fill="{{.Brand}}" text-anchor="middle" dominant-baseline="middle">&#x1F687;</text>
    <text x="{{.Center}}" y="{{.LabelY}}" font-family="Arial, sans-serif" font-size="{{.LabelSize}}" font-weight="bold" fill="white" text-anchor="middle" dominant-baseline="middle">{{xml .Label}}</text>
</svg>
`))

// svgIcon holds the computed geometry for one vector icon.
type svgIcon struct {
	Size      int
	Brand     string
	Radius    int
	Center    int
	Badge     int
	GlyphY    int
	GlyphSize int
	LabelY    int
	LabelSize int
	Label     string
}

func newSVGIcon(size int, brand, label string) svgIcon {
	return svgIcon{
		Size:      size,
		Brand:     brand,
		Radius:    size / 8,
		Center:    size / 2,
		Badge:     size / 3,
		GlyphY:    size/2 + size/12,
		GlyphSize: size / 3,
		LabelY:    size - size/8,
		LabelSize: size / 8,
		Label:     label,
	}
}

// writeSVG renders the vector fallback icon.
func writeSVG(w io.Writer, size int, brand, label string) error {
	return svgTemplate.Execute(w, newSVGIcon(size, brand, label))
}

func xmlEscape(s string) (string, error) {
	var buf bytes.Buffer
	if err := xml.EscapeText(&buf, []byte(s)); err != nil {
		return "", err
	}
	return buf.String(), nil
}
