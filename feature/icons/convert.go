package icons

import (
	"fmt"
	"image"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"
	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
	"go.uber.org/zap"
)

// Convert rasterizes every icon-{n}x{n}.svg in dir to a PNG of n x n pixels
// and removes the SVG. The SVG rasterizer draws shapes only; text elements
// are skipped. It returns the PNG paths written.
func Convert(dir string, logger *zap.Logger) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", dir, err)
	}

	var converted []string
	for _, e := range entries {
		spec, format, ok := ParseFilename(e.Name())
		if e.IsDir() || !ok || format != FormatSVG {
			continue
		}

		svgPath := filepath.Join(dir, e.Name())
		img, err := rasterizeSVG(svgPath, spec.Size)
		if err != nil {
			return converted, fmt.Errorf("failed to render %s: %w", svgPath, err)
		}

		pngPath := filepath.Join(dir, spec.Filename(FormatPNG))
		if err := imaging.Save(img, pngPath); err != nil {
			return converted, fmt.Errorf("failed to write %s: %w", pngPath, err)
		}
		if err := os.Remove(svgPath); err != nil {
			return converted, fmt.Errorf("failed to remove %s: %w", svgPath, err)
		}

		converted = append(converted, pngPath)
		logger.Info("Converted icon", zap.String("from", svgPath), zap.String("to", pngPath))
	}

	return converted, nil
}

func rasterizeSVG(path string, size int) (image.Image, error) {
	in, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer in.Close()

	icon, err := oksvg.ReadIconStream(in, oksvg.IgnoreErrorMode)
	if err != nil {
		return nil, err
	}

	icon.SetTarget(0, 0, float64(size), float64(size))
	rgba := image.NewRGBA(image.Rect(0, 0, size, size))
	scanner := rasterx.NewScannerGV(size, size, rgba, rgba.Bounds())
	icon.Draw(rasterx.NewDasher(size, size, scanner), 1.0)

	return rgba, nil
}
