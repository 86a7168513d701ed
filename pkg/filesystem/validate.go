package filesystem

import "strings"

// ValidateLegalName reports whether the name is acceptable as an object
// name
func (fs *FileSystem) ValidateLegalName(name string) bool {
	if strings.ContainsAny(name, "\\/:*?\"<>|") {
		return false
	}

	if strings.TrimSpace(name) == "" {
		return false
	}

	if len(name) >= 256 {
		return false
	}

	return true
}
