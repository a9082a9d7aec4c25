package images

import (
	"encoding/base64"
	"fmt"
	"net/http"
)

// The tracker core only stores opaque image handles; producing them is this
// collaborator's job. Limits match the upload pipeline.
const MaxFileSize = 5 * 1024 * 1024 // 5 MB

var allowedTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/webp": true,
}

// ValidationResult is the type/size verdict for a candidate file.
type ValidationResult struct {
	OK     bool
	Reason string
}

// Validate checks a candidate image before any processing happens.
func Validate(name string, size int64, mimeType string) ValidationResult {
	if !allowedTypes[mimeType] {
		return ValidationResult{Reason: fmt.Sprintf("unsupported image type %q for %s", mimeType, name)}
	}
	if size > MaxFileSize {
		return ValidationResult{Reason: fmt.Sprintf("%s exceeds the %d MB limit", name, MaxFileSize/1024/1024)}
	}
	return ValidationResult{OK: true}
}

// Uploader turns raw image bytes into an opaque handle the entities can store.
type Uploader interface {
	ProcessUpload(name string, data []byte) (string, error)
}

// Base64Uploader is the passthrough implementation: no compression, the bytes
// become a data URL.
type Base64Uploader struct{}

func (Base64Uploader) ProcessUpload(name string, data []byte) (string, error) {
	mimeType := http.DetectContentType(data)
	v := Validate(name, int64(len(data)), mimeType)
	if !v.OK {
		return "", fmt.Errorf("invalid image: %s", v.Reason)
	}
	return "data:" + mimeType + ";base64," + base64.StdEncoding.EncodeToString(data), nil
}

// IsImageHandle reports whether s looks like a stored image handle.
func IsImageHandle(s string) bool {
	return len(s) > 11 && s[:11] == "data:image/"
}
