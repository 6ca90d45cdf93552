// Package core provides the types shared by every stage of schema validation.
package core

import (
	"fmt"
	"io"
	"os"
)

// SourceFile represents a source file with its content.
type SourceFile struct {
	Path string
	Data string
}

// NewSourceFile creates a new SourceFile.
func NewSourceFile(path, data string) SourceFile {
	return SourceFile{
		Path: path,
		Data: data,
	}
}

// ReadSourceFile reads the whole of r into a SourceFile named path.
func ReadSourceFile(path string, r io.Reader) (SourceFile, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return SourceFile{}, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return NewSourceFile(path, string(data)), nil
}

// LoadSourceFile reads a schema from disk.
func LoadSourceFile(path string) (SourceFile, error) {
	f, err := os.Open(path)
	if err != nil {
		return SourceFile{}, fmt.Errorf("failed to open schema: %w", err)
	}
	defer f.Close()
	return ReadSourceFile(path, f)
}
