package icons

import (
	"fmt"
	"image/color"
	"image/png"
	"io"

	"github.com/disintegration/imaging"
)

// DetectRaster resolves the renderer mode into the raster capability flag.
// It is meant to be called once per process; the result is passed to NewGenerator.
func DetectRaster(mode string) (bool, error) {
	switch mode {
	case RendererRaster:
		return true, nil
	case RendererVector:
		return false, nil
	case RendererAuto, "":
		return probeRaster(), nil
	default:
		return false, fmt.Errorf("unknown renderer %q (want auto, raster or vector)", mode)
	}
}

// probeRaster draws and encodes a 1x1 canvas.
func probeRaster() (ok bool) {
	defer func() {
		if recover() != nil {
			ok = false
		}
	}()

	canvas := imaging.New(1, 1, color.NRGBA{A: 0xff})
	return png.Encode(io.Discard, canvas) == nil
}
