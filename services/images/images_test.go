package images

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Minimal valid PNG signature plus padding so DetectContentType sees image/png.
var pngBytes = append([]byte("\x89PNG\r\n\x1a\n"), make([]byte, 16)...)

func TestValidate(t *testing.T) {
	t.Run("accepts allowed types", func(t *testing.T) {
		for _, mt := range []string{"image/jpeg", "image/png", "image/webp"} {
			assert.True(t, Validate("box.img", 1024, mt).OK, mt)
		}
	})

	t.Run("rejects other types", func(t *testing.T) {
		v := Validate("rules.pdf", 1024, "application/pdf")
		assert.False(t, v.OK)
		assert.Contains(t, v.Reason, "unsupported image type")
	})

	t.Run("rejects oversize files", func(t *testing.T) {
		v := Validate("huge.png", MaxFileSize+1, "image/png")
		assert.False(t, v.OK)
		assert.Contains(t, v.Reason, "5 MB")
	})

	t.Run("accepts the exact limit", func(t *testing.T) {
		assert.True(t, Validate("edge.png", MaxFileSize, "image/png").OK)
	})
}

func TestBase64Uploader(t *testing.T) {
	handle, err := Base64Uploader{}.ProcessUpload("box.png", pngBytes)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(handle, "data:image/png;base64,"))
	assert.True(t, IsImageHandle(handle))

	_, err = Base64Uploader{}.ProcessUpload("notes.txt", []byte("just some text"))
	assert.Error(t, err)
}

func TestIsImageHandle(t *testing.T) {
	assert.True(t, IsImageHandle("data:image/png;base64,AAAA"))
	assert.False(t, IsImageHandle("https://example.com/box.png"))
	assert.False(t, IsImageHandle(""))
	assert.False(t, IsImageHandle("data:image/"))
}
