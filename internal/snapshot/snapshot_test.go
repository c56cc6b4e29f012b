package snapshot

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/klauspost/compress/zstd"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteRead(t *testing.T) {
	t.Parallel()

	entries := map[string]string{
		"onde fica a biblioteca?": "A biblioteca fica no primeiro andar.",
		"qual o telefone?":        "O telefone é (16) 2106-8700.",
	}

	path := filepath.Join(t.TempDir(), "cache.snapshot.zst")
	require.NoError(t, Write(path, entries))

	got, err := Read(path)
	require.NoError(t, err)
	assert.Equal(t, entries, got)
}

func TestWriteEmptyEntries(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "empty.zst")
	require.NoError(t, Write(path, nil))

	got, err := Read(path)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestReadMissingFile(t *testing.T) {
	t.Parallel()

	_, err := Read(filepath.Join(t.TempDir(), "nope.zst"))
	assert.Error(t, err)
}

func TestReadGarbage(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "garbage.zst")
	require.NoError(t, os.WriteFile(path, []byte("not a snapshot"), 0o644))

	_, err := Read(path)
	assert.Error(t, err)
}

func TestDecodeRejectsUnknownVersion(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	enc, err := zstd.NewWriter(&buf)
	require.NoError(t, err)
	_, err = enc.Write([]byte(`{"version":99,"entries":{}}`))
	require.NoError(t, err)
	require.NoError(t, enc.Close())

	_, err = Decode(&buf)
	assert.ErrorContains(t, err, "unsupported version")
}

func TestWriteLeavesNoTempFiles(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	require.NoError(t, Write(filepath.Join(dir, "snap.zst"), map[string]string{"a": "b"}))

	files, err := os.ReadDir(dir)
	require.NoError(t, err)
	for _, f := range files {
		assert.False(t, strings.HasPrefix(f.Name(), ".snapshot-"), "leftover temp file %s", f.Name())
	}
}
