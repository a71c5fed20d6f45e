// Package icons generates the PWA icon set for the departure display.
//
// Each icon is the brand mark: a rounded square in the brand colour, a light
// circular badge in the middle and the "SL" label.
//
// # Rendering Paths
//
// The raster capability is resolved once with DetectRaster and handed to
// NewGenerator; every icon of a run then takes the same path.
//
//   - Raster: a PNG drawn with imaging and x/image/vector. Corners outside
//     the rounded rectangle are transparent. The label uses the first
//     loadable system font, then the built-in Go Bold font, and is left out
//     when neither parses.
//   - Vector: an SVG document with the same geometry plus a metro glyph.
//
// Re-running the generator overwrites the set and deletes icons of other
// sizes or formats left in the output directory.
//
// # Other Operations
//
//   - Convert: rasterize SVG icons to PNG in place (shapes only, no text).
//   - Publisher: upload the set to S3/MinIO through core/storage.
//
// # Usage
//
//	raster, _ := icons.DetectRaster(cfg.Icons.Renderer)
//	gen, err := icons.NewGenerator(cfg.Icons, icons.DefaultSizes, raster, logger)
//	result, err := gen.Generate()
package icons
