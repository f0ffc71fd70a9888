package cli

import (
	"encoding/base64"
	"fmt"
	"net/http"
	"os"
	"strings"
)

// EncodePhotoFile reads an image file from disk and returns it as a data URL
// suitable for embedding in an item record. Non-image files are rejected.
func EncodePhotoFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read photo %s: %w", path, err)
	}
	if len(data) == 0 {
		return "", fmt.Errorf("photo %s is empty", path)
	}

	contentType := http.DetectContentType(data)
	if !strings.HasPrefix(contentType, "image/") {
		return "", fmt.Errorf("%s is not an image (detected %s)", path, contentType)
	}

	return fmt.Sprintf("data:%s;base64,%s",
		contentType, base64.StdEncoding.EncodeToString(data)), nil
}
