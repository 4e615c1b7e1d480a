package config

import (
	"os"
	"path/filepath"
)

// FindSiteRoot locates the site root by walking upward from start. A
// directory qualifies when it carries an ssg.yaml or both the default
// content and templates directories. Returns ok=false when no ancestor
// qualifies.
func FindSiteRoot(start string) (string, bool) {
	dir, err := filepath.Abs(start)
	if err != nil {
		return "", false
	}
	for {
		if isSiteRoot(dir) {
			return dir, true
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false
		}
		dir = parent
	}
}

func isSiteRoot(dir string) bool {
	if _, err := os.Stat(filepath.Join(dir, DefaultFileName)); err == nil {
		return true
	}
	d := Default()
	return isDir(filepath.Join(dir, d.ContentDir)) && isDir(filepath.Join(dir, d.TemplatesDir))
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
