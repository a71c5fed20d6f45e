package icons

import (
	"fmt"
	"regexp"
	"strconv"
)

// Format is the file format of a generated icon.
type Format string

const (
	FormatPNG Format = "png"
	FormatSVG Format = "svg"
)

// Spec describes one icon of the set.
type Spec struct {
	Size int
}

// Filename returns icon-{size}x{size}.{format}.
func (s Spec) Filename(f Format) string {
	return fmt.Sprintf("icon-%dx%d.%s", s.Size, s.Size, f)
}

// Specs builds one Spec per size, keeping order.
func Specs(sizes []int) []Spec {
	specs := make([]Spec, 0, len(sizes))
	for _, size := range sizes {
		specs = append(specs, Spec{Size: size})
	}
	return specs
}

var filenamePattern = regexp.MustCompile(`^icon-(\d+)x(\d+)\.(png|svg)$`)

// ParseFilename is the inverse of Spec.Filename. Non-square names are rejected.
func ParseFilename(name string) (Spec, Format, bool) {
	m := filenamePattern.FindStringSubmatch(name)
	if m == nil || m[1] != m[2] {
		return Spec{}, "", false
	}
	size, err := strconv.Atoi(m[1])
	if err != nil || size <= 0 {
		return Spec{}, "", false
	}
	return Spec{Size: size}, Format(m[3]), true
}
