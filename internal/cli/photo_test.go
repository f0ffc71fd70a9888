package cli

import (
	"encoding/base64"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// smallest valid PNG header bytes plus padding, enough for content sniffing
var pngBytes = append([]byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A}, make([]byte, 16)...)

func TestEncodePhotoFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "item.png")
	require.NoError(t, os.WriteFile(path, pngBytes, 0o600))

	got, err := EncodePhotoFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(got, "data:image/png;base64,"))

	raw, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(got, "data:image/png;base64,"))
	require.NoError(t, err)
	assert.Equal(t, pngBytes, raw)
}

func TestEncodePhotoFile_RejectsNonImage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.txt")
	require.NoError(t, os.WriteFile(path, []byte("just text"), 0o600))

	_, err := EncodePhotoFile(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not an image")
}

func TestEncodePhotoFile_MissingFile(t *testing.T) {
	_, err := EncodePhotoFile(filepath.Join(t.TempDir(), "missing.png"))
	require.Error(t, err)
}

func TestEncodePhotoFile_EmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.png")
	require.NoError(t, os.WriteFile(path, nil, 0o600))

	_, err := EncodePhotoFile(path)
	require.Error(t, err)
}
