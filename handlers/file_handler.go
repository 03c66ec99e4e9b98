package handlers

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// StoreParchiFile routes to the appropriate storage backend based on environment.
// Google Cloud sets GOOGLE_APPLICATION_CREDENTIALS or K_SERVICE (Cloud Run).
func StoreParchiFile(ctx context.Context, file io.Reader, originalName string) (url, objectPath string, err error) {
	useGCS := os.Getenv("USE_GCS") == "true" ||
		os.Getenv("GOOGLE_APPLICATION_CREDENTIALS") != "" ||
		os.Getenv("K_SERVICE") != ""

	objectPath = generateObjectPath(originalName)

	if useGCS {
		// Production: Google Cloud Storage
		url, err = uploadParchiGCS(ctx, file, objectPath)
	} else {
		// Development: local file storage
		url, err = uploadParchiLocal(file, objectPath)
	}
	if err != nil {
		return "", "", err
	}
	return url, objectPath, nil
}

// generateObjectPath builds a collision-resistant storage name that keeps
// the original extension so preview routing still works.
func generateObjectPath(originalName string) string {
	ext := filepath.Ext(originalName)
	return fmt.Sprintf("parchis/%s%s", uuid.New().String(), ext)
}
