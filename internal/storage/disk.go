package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"

	"github.com/google/uuid"
)

// DiskService writes uploads into a flat directory under randomized names.
// The directory is expected to be served at urlPrefix by the route layer.
type DiskService struct {
	dir       string
	urlPrefix string
}

func NewDiskService(dir, urlPrefix string) (*DiskService, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &DiskService{dir: dir, urlPrefix: urlPrefix}, nil
}

func (s *DiskService) Store(_ context.Context, originalName string, r io.Reader) (string, error) {
	name := uuid.NewString() + filepath.Ext(originalName)

	f, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return "", fmt.Errorf("create upload file: %w", err)
	}
	if _, err := io.Copy(f, r); err != nil {
		f.Close()
		return "", fmt.Errorf("write upload file: %w", err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("close upload file: %w", err)
	}

	return path.Join(s.urlPrefix, name), nil
}

var _ Service = (*DiskService)(nil)
