package storage

import (
	"io"
	"log/slog"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"todolist/internal/core/apperr"
)

// LocalStore writes avatar uploads to a directory on disk and hands back the
// URL they will be served under. Only the reference string travels further
// into the core; the bytes stop here.
type LocalStore struct {
	dir        string
	accessPath string
}

func NewLocalStore(dir, accessPath string) *LocalStore {
	return &LocalStore{
		dir:        dir,
		accessPath: strings.TrimSuffix(accessPath, "/"),
	}
}

func (ls *LocalStore) Save(file *multipart.FileHeader) (string, error) {
	if file == nil || file.Size == 0 {
		return "", apperr.ErrInvalidFile
	}

	original := file.Filename

	if original == "" {
		return "", apperr.ErrInvalidFile
	}

	ext := filepath.Ext(original)

	if ext == "" || ext == original {
		return "", apperr.ErrInvalidFileExtension
	}

	if err := os.MkdirAll(ls.dir, 0o755); err != nil {
		return "", err
	}

	name := uuid.New().String() + ext
	target := filepath.Join(ls.dir, name)

	src, err := file.Open()

	if err != nil {
		return "", apperr.ErrInvalidFile
	}

	defer src.Close()

	dst, err := os.Create(target)

	if err != nil {
		slog.Error("Error storing avatar file", "error", err, "path", target)
		return "", apperr.ErrInvalidFile
	}

	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", err
	}

	return ls.accessPath + "/" + name, nil
}
