// Package store holds the in-memory collections and their flat-file
// persistence. Every store owns one backing file, loads it fully at open,
// and rewrites it in full after each mutation. Records that fail to decode
// are dropped during load without surfacing to the user.
package store

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Validator instance shared by the stores for draft validation.
var validate = validator.New()

// PersistError reports a backing-file write failure. The in-memory
// mutation that triggered the write has already been applied and is not
// rolled back; callers surface the error as a warning and continue.
type PersistError struct {
	Path string
	Err  error
}

func (e *PersistError) Error() string {
	return fmt.Sprintf("failed to persist %s: %v", e.Path, e.Err)
}

func (e *PersistError) Unwrap() error { return e.Err }

// readLines loads the non-blank lines of a store file. A missing file is
// an empty store, not an error.
func readLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return lines, nil
}

// writeLines rewrites a store file in full. The write goes to a temp file
// in the same directory followed by a rename, so an interruption cannot
// leave the store truncated.
func writeLines(path string, lines []string) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp*")
	if err != nil {
		return &PersistError{Path: path, Err: err}
	}
	defer os.Remove(tmp.Name())

	w := bufio.NewWriter(tmp)
	for _, line := range lines {
		if _, err := w.WriteString(line + "\n"); err != nil {
			tmp.Close()
			return &PersistError{Path: path, Err: err}
		}
	}
	if err := w.Flush(); err != nil {
		tmp.Close()
		return &PersistError{Path: path, Err: err}
	}
	if err := tmp.Close(); err != nil {
		return &PersistError{Path: path, Err: err}
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return &PersistError{Path: path, Err: err}
	}
	return nil
}
