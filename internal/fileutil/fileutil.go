package fileutil

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
)

// AccessError reports a file that could not be opened, read, or written.
type AccessError struct {
	Op   string
	Path string
	Err  error
}

func (e *AccessError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *AccessError) Unwrap() error { return e.Err }

// IsAccessError reports whether err wraps an AccessError.
func IsAccessError(err error) bool {
	var accessErr *AccessError
	return errors.As(err, &accessErr)
}

// Open opens path for reading.
func Open(path string) (*os.File, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, &AccessError{Op: "open", Path: path, Err: err}
	}
	return file, nil
}

// CreateTruncate opens path for writing, discarding any existing content.
func CreateTruncate(path string) (*os.File, error) {
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return nil, &AccessError{Op: "create", Path: path, Err: err}
	}
	return file, nil
}

// ReadLines returns every line of path with its terminator intact. A final
// line without a newline is returned as-is.
func ReadLines(path string) ([]string, error) {
	file, err := Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var lines []string
	reader := bufio.NewReader(file)
	for {
		line, err := reader.ReadString('\n')
		if line != "" {
			lines = append(lines, line)
		}
		if err == io.EOF {
			return lines, nil
		}
		if err != nil {
			return nil, &AccessError{Op: "read", Path: path, Err: err}
		}
	}
}

// WriteLines replaces the content of path with lines written verbatim.
func WriteLines(path string, lines []string) error {
	out, err := CreateTruncate(path)
	if err != nil {
		return err
	}
	defer out.Close()

	writer := bufio.NewWriter(out)
	for _, line := range lines {
		if _, err := writer.WriteString(line); err != nil {
			return &AccessError{Op: "write", Path: path, Err: err}
		}
	}
	if err := writer.Flush(); err != nil {
		return &AccessError{Op: "write", Path: path, Err: err}
	}
	if err := out.Close(); err != nil {
		return &AccessError{Op: "close", Path: path, Err: err}
	}
	return nil
}
