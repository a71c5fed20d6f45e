package static

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Feature serves a directory tree as static files. It implements loader.Feature.
type Feature struct {
	root   string
	logger *zap.Logger
}

// NewFeature creates a static file feature rooted at root.
func NewFeature(root string, logger *zap.Logger) *Feature {
	return &Feature{root: root, logger: logger}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "static"
}

// IsEnabled checks if the feature is enabled.
func (f *Feature) IsEnabled() bool {
	return f.root != ""
}

// Root returns the absolute document root.
func (f *Feature) Root() (string, error) {
	return filepath.Abs(f.root)
}

// Load mounts the document root at "/".
func (f *Feature) Load(app fiber.Router) error {
	root, err := f.Root()
	if err != nil {
		return fmt.Errorf("failed to resolve document root: %w", err)
	}

	info, err := os.Stat(root)
	if err != nil {
		return fmt.Errorf("document root unavailable: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("document root %s is not a directory", root)
	}

	app.Static("/", root, fiber.Static{
		Index:  "index.html",
		Browse: true,
	})

	f.logger.Debug("Static files mounted", zap.String("root", root))
	return nil
}
