package testutil

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWriteFile_CreatesParents(t *testing.T) {
	dir := t.TempDir()

	path := WriteFile(t, dir, filepath.Join("nested", "hay.csv"), "id\ng1\n")

	assert.Equal(t, filepath.Join(dir, "nested", "hay.csv"), path)
	assert.Equal(t, "id\ng1\n", ReadFile(t, path))
}
