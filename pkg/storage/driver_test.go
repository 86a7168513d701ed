package storage

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUniqueName(t *testing.T) {
	asserts := assert.New(t)

	name := UniqueName("report.pdf")
	asserts.True(strings.HasPrefix(name, "report_"))
	asserts.True(strings.HasSuffix(name, ".pdf"))
	asserts.NotEqual("report.pdf", name)
	asserts.NotEqual(name, UniqueName("report.pdf"))

	// no extension
	name = UniqueName("README")
	asserts.True(strings.HasPrefix(name, "README_"))
	asserts.False(strings.Contains(name, "."))
}

func TestKey(t *testing.T) {
	asserts := assert.New(t)

	asserts.Equal("u1/uid-a/report.pdf", Key("/u1/uid-a", "report.pdf"))
	asserts.Equal("u1/report.pdf", Key("/u1/", "report.pdf"))
	asserts.Equal("report.pdf", Key("", "report.pdf"))
}
