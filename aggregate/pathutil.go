package aggregate

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// FindModuleRoot walks parent directories starting from start and returns the directory containing go.mod.
func FindModuleRoot(start string) (string, error) {
	if start == "" {
		return "", fmt.Errorf("aggregate: empty start path")
	}
	abs, err := filepath.Abs(start)
	if err != nil {
		return "", err
	}
	dir := abs
	for {
		if _, statErr := os.Stat(filepath.Join(dir, "go.mod")); statErr == nil {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", fmt.Errorf("aggregate: go.mod not found above %s", start)
}

// ResolveRoot turns the configured docs root into an absolute, cleaned directory.
// Relative roots are taken from the module root when one encloses the working directory,
// otherwise from the working directory itself.
func ResolveRoot(root string) (string, error) {
	root = strings.TrimSpace(root)
	if root == "" {
		return "", fmt.Errorf("aggregate: empty docs root")
	}
	if filepath.IsAbs(root) {
		return filepath.Clean(root), nil
	}

	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("aggregate: determine working directory: %w", err)
	}
	if _, err := os.Stat(filepath.Join(cwd, root)); err == nil {
		return filepath.Join(cwd, root), nil
	}
	if moduleRoot, err := FindModuleRoot(cwd); err == nil {
		return filepath.Join(moduleRoot, root), nil
	}
	return filepath.Join(cwd, root), nil
}
