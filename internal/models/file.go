package models

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// CSVMimeType is the only content type the upload input accepts.
const CSVMimeType = "text/csv"

// File is a dictionary file picked by the user. The payload is opaque; only its
// size and type matter before upload.
type File struct {
	Name     string
	Path     string
	Size     int64
	MIMEType string
}

// StatFile builds a File from a path on disk.
func StatFile(path string) (File, error) {
	info, err := os.Stat(path)
	if err != nil {
		return File{}, fmt.Errorf("stat %s: %w", path, err)
	}
	if info.IsDir() {
		return File{}, fmt.Errorf("%s is a directory", path)
	}
	return File{
		Name:     filepath.Base(path),
		Path:     path,
		Size:     info.Size(),
		MIMEType: CSVMimeType,
	}, nil
}

// Open opens the file contents for reading.
func (f File) Open() (io.ReadCloser, error) {
	return os.Open(f.Path)
}
