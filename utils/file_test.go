package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTimestampedFileName(t *testing.T) {
	name := TimestampedFileName("my paper (v2).pdf")
	assert.True(t, strings.HasSuffix(name, ".pdf"))
	assert.True(t, strings.HasPrefix(name, "my_paper__v2__"))
	assert.NotContains(t, name, " ")
	assert.NotContains(t, name, "(")

	// two calls never collide
	other := TimestampedFileName("my paper (v2).pdf")
	assert.NotEqual(t, name, other)
}

func TestFileNameWithoutExt(t *testing.T) {
	assert.Equal(t, "paper", FileNameWithoutExt("/tmp/uploads/paper.pdf"))
	assert.Equal(t, "notes", FileNameWithoutExt("notes"))
}
