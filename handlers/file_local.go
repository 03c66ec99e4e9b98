package handlers

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

const (
	uploadDir = "./uploads" // Local directory for file storage
)

// uploadParchiLocal writes the file under ./uploads, served by the /uploads/
// fileserver route. O_EXCL mirrors the no-overwrite rule of the GCS backend.
func uploadParchiLocal(file io.Reader, objectPath string) (string, error) {
	target := filepath.Join(uploadDir, filepath.FromSlash(objectPath))
	if err := os.MkdirAll(filepath.Dir(target), 0755); err != nil {
		return "", fmt.Errorf("failed to create upload directory: %w", err)
	}

	dst, err := os.OpenFile(target, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if err != nil {
		return "", fmt.Errorf("failed to create file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, file); err != nil {
		return "", fmt.Errorf("failed to save file: %w", err)
	}

	// In production you'd use your domain. For dev, use relative path
	return fmt.Sprintf("/uploads/%s", objectPath), nil
}
