package icons

import (
	"os"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
)

const builtinFont = "builtin:gobold"

// loadFace tries each path, then the built-in Go Bold font. It returns a nil
// face when nothing could be parsed; callers skip the label in that case.
func loadFace(paths []string, points float64) (font.Face, string) {
	for _, p := range paths {
		data, err := os.ReadFile(p)
		if err != nil {
			continue
		}
		if face := parseFace(data, points); face != nil {
			return face, p
		}
	}

	if face := parseFace(gobold.TTF, points); face != nil {
		return face, builtinFont
	}
	return nil, ""
}

func parseFace(data []byte, points float64) font.Face {
	f, err := truetype.Parse(data)
	if err != nil {
		return nil
	}
	return truetype.NewFace(f, &truetype.Options{
		Size:    points,
		DPI:     72,
		Hinting: font.HintingFull,
	})
}
