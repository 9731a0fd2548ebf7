package port

import "mime/multipart"

// FileStore persists an uploaded file and returns the reference it will be
// served under. The core keeps only the reference string.
type FileStore interface {
	Save(file *multipart.FileHeader) (string, error)
}
