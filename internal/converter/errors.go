package converter

import (
	"errors"
	"fmt"
)

// ErrEmptyResult is returned when a file parses to zero entries.
var ErrEmptyResult = errors.New("no valid entries")

// Kind classifies a per-file failure.
type Kind string

const (
	KindIO    Kind = "io"
	KindEmpty Kind = "empty"
)

// FileError is a failure converting a single file. It never aborts a batch.
type FileError struct {
	Path string
	Kind Kind
	Err  error
}

func (e *FileError) Error() string {
	return fmt.Sprintf("%s: %s: %v", e.Kind, e.Path, e.Err)
}

func (e *FileError) Unwrap() error {
	return e.Err
}

func ioError(path string, err error) *FileError {
	return &FileError{Path: path, Kind: KindIO, Err: err}
}
