package capture

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

var SupportedExtensions = [...]string{".jpg", ".jpeg", ".png", ".zip"}

// File is the single user-selected upload: an image or a ZIP of images.
type File struct {
	Name string
	Path string
	MIME string
	Size int64
	Data []byte
}

// IsArchive is true for ZIP uploads, by declared type or by name.
func (f *File) IsArchive() bool {
	return strings.Contains(f.MIME, "zip") || strings.EqualFold(filepath.Ext(f.Name), ".zip")
}

// Supported is advisory only; nothing rejects unsupported files.
func (f *File) Supported() bool {
	ext := strings.ToLower(filepath.Ext(f.Name))
	for _, s := range SupportedExtensions {
		if ext == s {
			return true
		}
	}
	return false
}

func LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	f := newFile(filepath.Base(path), data)
	f.Path = path
	return f, nil
}

func FromReader(name string, r io.Reader) (*File, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", name, err)
	}
	return newFile(name, data), nil
}

func newFile(name string, data []byte) *File {
	return &File{
		Name: name,
		MIME: DeclaredMIME(name, data),
		Size: int64(len(data)),
		Data: data,
	}
}
