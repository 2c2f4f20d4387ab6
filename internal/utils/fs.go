package utils

import (
	"os"
	"path/filepath"
	"strings"
)

// SidebarExtensions lists the file extensions the source loader accepts
var SidebarExtensions = []string{".js", ".cjs", ".mjs", ".json", ".yaml", ".yml", ".toml"}

// IsSidebarFile reports whether path has a supported sidebar extension
func IsSidebarFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, candidate := range SidebarExtensions {
		if ext == candidate {
			return true
		}
	}
	return false
}

// FindSidebarFile returns the first sidebars.<ext> file in dir
func FindSidebarFile(dir string) (string, bool) {
	for _, ext := range SidebarExtensions {
		path := filepath.Join(dir, "sidebars"+ext)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path, true
		}
	}
	return "", false
}

// ExpandPath expands ~ to the user's home directory
func ExpandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[2:])
	}
	if path == "~" {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return home
	}
	return path
}
