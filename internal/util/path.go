package util

import (
	"os"
	"path/filepath"
	"strings"
)

// ExpandPath resolves a leading ~/ to the home directory and makes the path absolute
func ExpandPath(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, _ := os.UserHomeDir()
		path = filepath.Join(home, strings.TrimPrefix(path[1:], "/"))
	}
	absPath, err := filepath.Abs(path)
	if err != nil {
		return path
	}
	return absPath
}

// EnsureDir creates dir and any missing parents
func EnsureDir(dir string) error {
	return os.MkdirAll(dir, 0755)
}
