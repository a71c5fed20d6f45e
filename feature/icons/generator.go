package icons

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"
	"go.uber.org/zap"
)

// Result summarises one generation run.
type Result struct {
	// Format is the format every icon of the run was written in.
	Format Format
	// Files are the written paths, in size order.
	Files []string
	// Removed are icons from earlier runs that this run did not produce.
	Removed []string
}

// UsedFallback reports whether the vector fallback path was taken.
func (r *Result) UsedFallback() bool {
	return r.Format == FormatSVG
}

// Generator writes the PWA icon set.
type Generator struct {
	cfg    Config
	sizes  []int
	raster bool
	brand  color.NRGBA
	logger *zap.Logger
}

// NewGenerator validates cfg. raster is the capability flag from DetectRaster
// and selects the rendering path for every icon of the run.
func NewGenerator(cfg Config, sizes []int, raster bool, logger *zap.Logger) (*Generator, error) {
	brand, err := ParseHexColor(cfg.BrandColor)
	if err != nil {
		return nil, err
	}
	if cfg.OutputDir == "" {
		return nil, fmt.Errorf("output directory is required")
	}
	for _, size := range sizes {
		if size <= 0 {
			return nil, fmt.Errorf("invalid icon size %d", size)
		}
	}

	return &Generator{
		cfg:    cfg,
		sizes:  sizes,
		raster: raster,
		brand:  brand,
		logger: logger,
	}, nil
}

// Format returns the format this generator writes.
func (g *Generator) Format() Format {
	if g.raster {
		return FormatPNG
	}
	return FormatSVG
}

// Generate writes one icon per size, then removes stale icons left in the
// output directory by earlier runs. It is not transactional: a failure
// midway leaves the icons written so far.
func (g *Generator) Generate() (*Result, error) {
	if err := os.MkdirAll(g.cfg.OutputDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	result := &Result{Format: g.Format()}
	written := make(map[string]bool, len(g.sizes))

	for _, spec := range Specs(g.sizes) {
		name := spec.Filename(result.Format)
		path := filepath.Join(g.cfg.OutputDir, name)

		var err error
		if g.raster {
			err = g.writeRaster(spec, path)
		} else {
			err = g.writeVector(spec, path)
		}
		if err != nil {
			return result, fmt.Errorf("failed to write %s: %w", path, err)
		}

		written[name] = true
		result.Files = append(result.Files, path)
		g.logger.Info("Created icon", zap.String("file", path), zap.Int("size", spec.Size), zap.String("format", string(result.Format)))
	}

	removed, err := removeStale(g.cfg.OutputDir, written)
	result.Removed = removed
	if err != nil {
		return result, err
	}
	for _, path := range removed {
		g.logger.Info("Removed stale icon", zap.String("file", path))
	}

	return result, nil
}

func (g *Generator) writeRaster(spec Spec, path string) error {
	face, source := loadFace(g.cfg.FontPaths, float64(spec.Size/4))
	if face == nil {
		g.logger.Warn("No font available, icon will have no label", zap.Int("size", spec.Size))
	} else {
		defer face.Close()
		g.logger.Debug("Font loaded", zap.String("font", source), zap.Int("size", spec.Size))
	}

	img := renderRaster(spec.Size, g.brand, face, g.cfg.Label)
	return imaging.Save(img, path)
}

func (g *Generator) writeVector(spec Spec, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := writeSVG(f, spec.Size, hexColor(g.brand), g.cfg.Label); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// removeStale deletes icon files in dir that are not in keep.
func removeStale(dir string, keep map[string]bool) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", dir, err)
	}

	var removed []string
	for _, e := range entries {
		if e.IsDir() || keep[e.Name()] {
			continue
		}
		if _, _, ok := ParseFilename(e.Name()); !ok {
			continue
		}
		path := filepath.Join(dir, e.Name())
		if err := os.Remove(path); err != nil {
			return removed, fmt.Errorf("failed to remove stale icon %s: %w", path, err)
		}
		removed = append(removed, path)
	}
	return removed, nil
}
