package util

import (
	"strings"
)

// FillSlash appends a trailing `/` to the path if missing
func FillSlash(path string) string {
	if path == "/" {
		return path
	}
	return strings.TrimSuffix(path, "/") + "/"
}

// RemoveSlash removes the trailing `/` of the path
func RemoveSlash(path string) string {
	if len(path) > 1 {
		return strings.TrimSuffix(path, "/")
	}
	return path
}

// JoinPath joins path elements with `/`, skipping empty elements
func JoinPath(elem ...string) string {
	res := make([]string, 0, len(elem))
	for _, e := range elem {
		e = strings.Trim(e, "/")
		if e != "" {
			res = append(res, e)
		}
	}
	return strings.Join(res, "/")
}
