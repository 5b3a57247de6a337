package service

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/tieubaoca/paperdesk-be/types"
	"github.com/tieubaoca/paperdesk-be/utils"
)

// BlobStorage stores and retrieves original file content by path reference.
type BlobStorage interface {
	Save(filename string, data []byte) (string, error)
	Read(path string) ([]byte, error)
	Delete(path string) error
}

// FileStorage keeps blobs on local disk under a single upload directory.
type FileStorage struct {
	uploadDir string
}

func NewFileStorage(uploadDir string) (*FileStorage, error) {
	if err := os.MkdirAll(uploadDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}
	return &FileStorage{uploadDir: uploadDir}, nil
}

// Save writes the blob under a sanitized, timestamped name and returns the
// path reference stored on the paper record.
func (s *FileStorage) Save(filename string, data []byte) (string, error) {
	dest := filepath.Join(s.uploadDir, utils.TimestampedFileName(filename))
	if err := os.WriteFile(dest, data, 0644); err != nil {
		return "", &types.PersistenceError{Op: "save blob", Err: err}
	}
	return dest, nil
}

func (s *FileStorage) Read(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, &types.NotFoundError{Resource: "blob", Key: path}
	}
	if err != nil {
		return nil, &types.PersistenceError{Op: "read blob", Err: err}
	}
	return data, nil
}

// Delete is best-effort: a blob that is already gone is not an error.
func (s *FileStorage) Delete(path string) error {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return &types.PersistenceError{Op: "delete blob", Err: err}
	}
	return nil
}
