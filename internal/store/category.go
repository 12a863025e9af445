package store

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"
)

var ErrCategoryExists = errors.New("category with this name already exists")

// DefaultCategories seed the registry the first time the file is created.
var DefaultCategories = []string{"Sneakers", "Watches", "Streetwear"}

// CategoryRegistry is the ordered, append-only list of category names.
// Names are unique case-insensitively.
type CategoryRegistry struct {
	path   string
	logger *zap.Logger
	names  []string
}

// OpenCategoryRegistry loads the registry. When the file does not exist
// the default categories are seeded and persisted; an existing empty file
// stays empty.
func OpenCategoryRegistry(path string, logger *zap.Logger) (*CategoryRegistry, error) {
	r := &CategoryRegistry{path: path, logger: logger}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		r.names = append(r.names, DefaultCategories...)
		if err := r.flush(); err != nil {
			return nil, err
		}
		logger.Info("Seeded default categories", zap.Strings("categories", r.names))
		return r, nil
	}
	lines, err := readLines(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load categories: %w", err)
	}
	for _, line := range lines {
		r.names = append(r.names, strings.TrimSpace(line))
	}
	return r, nil
}

// Names returns the category names in registry order.
func (r *CategoryRegistry) Names() []string {
	out := make([]string, len(r.names))
	copy(out, r.names)
	return out
}

// Contains reports whether a name is registered, ignoring case.
func (r *CategoryRegistry) Contains(name string) bool {
	for _, n := range r.names {
		if strings.EqualFold(n, name) {
			return true
		}
	}
	return false
}

// Add appends a new category and persists immediately. A name already
// present in any case is rejected.
func (r *CategoryRegistry) Add(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("invalid category: name is required")
	}
	if r.Contains(name) {
		return ErrCategoryExists
	}
	r.names = append(r.names, name)
	return r.flush()
}

func (r *CategoryRegistry) flush() error {
	return writeLines(r.path, r.names)
}
