package plan

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// Load reads and validates the plan at path. It reads the file exactly once
// and never retries; re-reading on change is up to the caller.
func Load(path string) (*StudyPlan, error) {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("%w: %s: %v", ErrOpen, path, err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrOpen, path, err)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrEmptyFile, path)
	}

	return Parse(data)
}

// Parse validates an in-memory plan document.
func Parse(data []byte) (*StudyPlan, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSyntax, err)
	}

	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 || doc.Content[0] == nil {
		return nil, fmt.Errorf("%w: document has no content", ErrInvalidRoot)
	}

	return assemble(doc.Content[0])
}

// LoadFile is Load with every failure flattened into LoadResult.ErrorMessage.
func LoadFile(path string) LoadResult {
	p, err := Load(path)
	if err != nil {
		planLog.Debug("Plan load failed", "path", path, "error", err)
		return LoadResult{ErrorMessage: err.Error()}
	}
	return LoadResult{Plan: *p}
}
