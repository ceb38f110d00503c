package storage

import (
	"fmt"
	"io"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

const photoDir = "photos"

// PublicStore is the public file disk backing Category.photo. Saved files
// are addressed by a relative path; the UI joins it with the store's base
// URL for rendering.
type PublicStore struct {
	root    string
	baseURL string
}

func NewPublicStore(root, baseURL string) *PublicStore {
	if root == "" {
		root = "storage/public"
	}
	return &PublicStore{root: root, baseURL: strings.TrimRight(baseURL, "/")}
}

// SavePhoto writes the uploaded file under photos/ with a generated name
// and returns the relative path to persist on the row.
func (s *PublicStore) SavePhoto(src io.Reader, originalName string) (string, error) {
	ext := strings.ToLower(filepath.Ext(originalName))
	relPath := path.Join(photoDir, uuid.New().String()+ext)

	fullPath := filepath.Join(s.root, filepath.FromSlash(relPath))
	if err := os.MkdirAll(filepath.Dir(fullPath), 0o755); err != nil {
		return "", fmt.Errorf("failed to create photo directory: %w", err)
	}

	dst, err := os.Create(fullPath)
	if err != nil {
		return "", fmt.Errorf("failed to create photo file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		os.Remove(fullPath)
		return "", fmt.Errorf("failed to write photo file: %w", err)
	}

	return relPath, nil
}

// Delete removes a previously saved file. Missing files are not an error.
func (s *PublicStore) Delete(relPath string) error {
	if relPath == "" {
		return nil
	}

	cleaned := path.Clean(relPath)
	if strings.HasPrefix(cleaned, "..") || path.IsAbs(cleaned) {
		return fmt.Errorf("refusing to delete path outside store: %s", relPath)
	}

	err := os.Remove(filepath.Join(s.root, filepath.FromSlash(cleaned)))
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// URL joins the store's base origin with a stored relative path.
func (s *PublicStore) URL(relPath string) string {
	if relPath == "" {
		return ""
	}
	if s.baseURL == "" {
		return "/" + relPath
	}
	return s.baseURL + "/" + url.PathEscape(path.Dir(relPath)) + "/" + url.PathEscape(path.Base(relPath))
}
