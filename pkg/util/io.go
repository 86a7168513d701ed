package util

import (
	"os"
	"path/filepath"
)

// Exists reports whether the given file or directory exists
func Exists(name string) bool {
	if _, err := os.Stat(name); err != nil {
		if os.IsNotExist(err) {
			return false
		}
	}
	return true
}

// RelativePath resolves the path against the executable's directory
// when it is not absolute
func RelativePath(name string) string {
	if filepath.IsAbs(name) {
		return name
	}
	e, _ := os.Executable()
	return filepath.Join(filepath.Dir(e), name)
}

// CreatNestedFile creates the file along with any missing parent directory
func CreatNestedFile(path string) (*os.File, error) {
	basePath := filepath.Dir(path)
	if !Exists(basePath) {
		err := os.MkdirAll(basePath, 0700)
		if err != nil {
			Log().Warning("Failed to create directory: %s", err)
			return nil, err
		}
	}

	return os.Create(path)
}
