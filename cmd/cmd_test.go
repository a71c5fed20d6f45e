package cmd

import (
	"path/filepath"
	"testing"

	"departure-board/feature/icons"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServe_InvalidPort(t *testing.T) {
	RootCmd.SetArgs([]string{"serve", "abc"})
	err := RootCmd.Execute()
	require.Error(t, err)
	assert.Equal(t, "invalid port number: abc", err.Error())
}

func TestServe_TooManyArgs(t *testing.T) {
	RootCmd.SetArgs([]string{"serve", "8000", "8001"})
	assert.Error(t, RootCmd.Execute())
}

func TestIconsGenerate_Vector(t *testing.T) {
	t.Setenv("LOG_FORMAT", "json")
	t.Setenv("LOG_LEVEL", "error")
	out := filepath.Join(t.TempDir(), "icons")

	RootCmd.SetArgs([]string{"icons", "generate", "--out", out, "--renderer", "vector"})
	require.NoError(t, RootCmd.Execute())

	for _, size := range icons.DefaultSizes {
		assert.FileExists(t, filepath.Join(out, icons.Spec{Size: size}.Filename(icons.FormatSVG)))
	}

	RootCmd.SetArgs([]string{"icons", "convert", "--out", out})
	require.NoError(t, RootCmd.Execute())

	for _, size := range icons.DefaultSizes {
		assert.FileExists(t, filepath.Join(out, icons.Spec{Size: size}.Filename(icons.FormatPNG)))
		assert.NoFileExists(t, filepath.Join(out, icons.Spec{Size: size}.Filename(icons.FormatSVG)))
	}
}

func TestIconsGenerate_UnknownRenderer(t *testing.T) {
	RootCmd.SetArgs([]string{"icons", "generate", "--out", t.TempDir(), "--renderer", "pillow"})
	assert.Error(t, RootCmd.Execute())
}
