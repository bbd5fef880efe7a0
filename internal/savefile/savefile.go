package savefile

import (
	"fmt"
	"os"
	"path/filepath"
)

// Saver stores a downloaded file and returns where it ended up.
type Saver interface {
	Save(name string, data []byte) (string, error)
}

// DirSaver writes files into a directory, replacing any previous file with the
// same name.
type DirSaver struct {
	Dir string
}

// Save writes data to Dir/name through a temporary file so a failed write never
// leaves a truncated dictionary behind.
func (s DirSaver) Save(name string, data []byte) (string, error) {
	dir := s.Dir
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create download directory: %w", err)
	}

	target := filepath.Join(dir, filepath.Base(name))
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(name)+".*")
	if err != nil {
		return "", fmt.Errorf("create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return "", fmt.Errorf("write %s: %w", target, err)
	}
	if err := tmp.Close(); err != nil {
		return "", fmt.Errorf("close %s: %w", target, err)
	}
	if err := os.Rename(tmp.Name(), target); err != nil {
		return "", fmt.Errorf("save %s: %w", target, err)
	}
	return target, nil
}
