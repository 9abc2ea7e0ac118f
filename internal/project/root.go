// Package project locates the repository a lint run belongs to.
package project

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/afero"
)

// FindRoot returns the nearest directory at or above startDir that contains a
// .git entry. A worktree's .git file counts. When no repository is found the
// absolute startDir is returned.
func FindRoot(fs afero.Fs, startDir string) (string, error) {
	abs, err := filepath.Abs(startDir)
	if err != nil {
		return "", fmt.Errorf("failed to resolve %s: %w", startDir, err)
	}

	if root, found := findGitMarker(fs, abs); found {
		return root, nil
	}
	return abs, nil
}

func findGitMarker(fs afero.Fs, startDir string) (string, bool) {
	currentDir := startDir
	for {
		if _, err := fs.Stat(filepath.Join(currentDir, ".git")); err == nil {
			return currentDir, true
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			return "", false
		}
		currentDir = parentDir
	}
}
