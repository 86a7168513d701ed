package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFillSlash(t *testing.T) {
	asserts := assert.New(t)

	asserts.Equal("/", FillSlash("/"))
	asserts.Equal("/a/", FillSlash("/a"))
	asserts.Equal("/a/", FillSlash("/a/"))
}

func TestRemoveSlash(t *testing.T) {
	asserts := assert.New(t)

	asserts.Equal("/", RemoveSlash("/"))
	asserts.Equal("/a", RemoveSlash("/a/"))
	asserts.Equal("/a", RemoveSlash("/a"))
}

func TestJoinPath(t *testing.T) {
	asserts := assert.New(t)

	asserts.Equal("a/b/c", JoinPath("a", "b", "c"))
	asserts.Equal("a/b", JoinPath("/a/", "", "b/"))
	asserts.Equal("", JoinPath())
}
