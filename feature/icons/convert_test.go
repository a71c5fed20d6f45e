package icons

import (
	"image"
	"os"
	"path/filepath"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestConvert(t *testing.T) {
	dir := t.TempDir()
	_, err := newTestGenerator(t, dir, false).Generate()
	require.NoError(t, err)

	converted, err := Convert(dir, zap.NewNop())
	require.NoError(t, err)
	assert.Len(t, converted, len(DefaultSizes))
	assert.Equal(t, expectedNames(FormatPNG), listDir(t, dir))

	for _, size := range DefaultSizes {
		img, err := imaging.Open(filepath.Join(dir, Spec{Size: size}.Filename(FormatPNG)))
		require.NoError(t, err)
		assert.Equal(t, image.Rect(0, 0, size, size), img.Bounds())
	}

	img, err := imaging.Open(filepath.Join(dir, "icon-128x128.png"))
	require.NoError(t, err)

	// Blue background near the top edge, light badge in the middle
	r, _, b, _ := img.At(64, 3).RGBA()
	assert.Greater(t, b, r)
	r, _, _, _ = img.At(64, 40).RGBA()
	assert.Greater(t, r>>8, uint32(200))
}

func TestConvert_SkipsNonSVG(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "manifest.json"), []byte("{}"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "icon-16x16.png"), []byte("png"), 0644))

	converted, err := Convert(dir, zap.NewNop())
	require.NoError(t, err)
	assert.Empty(t, converted)
	assert.Equal(t, []string{"icon-16x16.png", "manifest.json"}, listDir(t, dir))
}

func TestConvert_InvalidSVG(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "icon-16x16.svg"), []byte("<svg"), 0644))

	_, err := Convert(dir, zap.NewNop())
	assert.Error(t, err)
}

func TestConvert_MissingDir(t *testing.T) {
	_, err := Convert(filepath.Join(t.TempDir(), "absent"), zap.NewNop())
	assert.Error(t, err)
}
