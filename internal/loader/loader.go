// Package loader handles program file loading operations.
package loader

import (
	"fmt"
	"io"
	"os"

	"github.com/nikoof/octarou/internal/interpreter"
)

// Loader handles loading program images from disk.
type Loader struct{}

// New creates a new program loader.
func New() *Loader {
	return &Loader{}
}

// Load reads a raw program image. Programs that do not fit into the memory
// above the program start address are rejected.
func (l *Loader) Load(path string) ([]byte, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening file %s: %w", path, err)
	}
	defer func() { _ = file.Close() }()

	return l.Read(file)
}

// Read reads a raw program image from the reader.
func (l *Loader) Read(reader io.Reader) ([]byte, error) {
	// read one byte more than allowed to detect oversized programs
	data, err := io.ReadAll(io.LimitReader(reader, interpreter.MaxProgramSize+1))
	if err != nil {
		return nil, fmt.Errorf("reading program: %w", err)
	}
	if len(data) > interpreter.MaxProgramSize {
		return nil, fmt.Errorf("%w: more than %d bytes", interpreter.ErrProgramTooLarge, interpreter.MaxProgramSize)
	}
	return data, nil
}
