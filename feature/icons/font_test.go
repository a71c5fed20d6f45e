package icons

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font/gofont/goregular"
)

func TestLoadFace(t *testing.T) {
	dir := t.TempDir()

	garbage := filepath.Join(dir, "broken.ttf")
	require.NoError(t, os.WriteFile(garbage, []byte("not a font"), 0644))

	regular := filepath.Join(dir, "regular.ttf")
	require.NoError(t, os.WriteFile(regular, goregular.TTF, 0644))

	tests := []struct {
		name   string
		paths  []string
		source string
	}{
		{"NoPaths", nil, builtinFont},
		{"MissingFile", []string{filepath.Join(dir, "absent.ttf")}, builtinFont},
		{"Unparsable", []string{garbage}, builtinFont},
		{"SystemFont", []string{garbage, regular}, regular},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			face, source := loadFace(tt.paths, 32)
			require.NotNil(t, face)
			defer face.Close()
			assert.Equal(t, tt.source, source)
			assert.Greater(t, face.Metrics().Height.Ceil(), 0)
		})
	}
}

func TestParseFace_Invalid(t *testing.T) {
	assert.Nil(t, parseFace([]byte{0, 1, 2, 3}, 12))
}
