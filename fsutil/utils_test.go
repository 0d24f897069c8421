package fsutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsFileIsDir(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "x.txt")
	assert.NoError(t, os.WriteFile(file, []byte("hi"), 0o644))

	assert.True(t, IsDir(dir))
	assert.False(t, IsDir(file))
	assert.True(t, IsFile(file))
	assert.False(t, IsFile(dir))
	assert.False(t, IsFile(filepath.Join(dir, "missing")))
}

func TestWriteFileAtomic(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cache.bin")
	assert.NoError(t, WriteFileAtomic(path, []byte("payload"), 0o644))

	data, err := os.ReadFile(path)
	assert.NoError(t, err)
	assert.Equal(t, "payload", string(data))

	entries, err := os.ReadDir(dir)
	assert.NoError(t, err)
	assert.Len(t, entries, 1, "expected no leftover temp files")
}

func TestMultiFileScanner(t *testing.T) {
	dir := t.TempDir()
	f1 := filepath.Join(dir, "a.txt")
	f2 := filepath.Join(dir, "b.txt")
	assert.NoError(t, os.WriteFile(f1, []byte("one\ntwo\n"), 0o644))
	assert.NoError(t, os.WriteFile(f2, []byte("three\n"), 0o644))

	mfs, err := NewMultiFileScanner(f1, f2)
	assert.NoError(t, err)
	defer mfs.Close()

	var lines []string
	for mfs.Scan() {
		lines = append(lines, mfs.Text())
	}
	assert.NoError(t, mfs.Err())
	assert.Equal(t, []string{"one", "two", "three"}, lines)
}
