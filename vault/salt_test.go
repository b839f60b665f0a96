package vault

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/fahmaliyi/pwvault/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaltStore_CreatesOnceThenReads(t *testing.T) {
	path := filepath.Join(t.TempDir(), "salt.bin")
	s := NewSaltStore(path, logger.Nop())

	ok, err := s.Exists()
	require.NoError(t, err)
	assert.False(t, ok)

	first, err := s.GetOrCreate()
	require.NoError(t, err)
	assert.Len(t, first, SaltLen)

	onDisk, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, first, onDisk, "salt is persisted verbatim")

	second, err := NewSaltStore(path, logger.Nop()).GetOrCreate()
	require.NoError(t, err)
	assert.Equal(t, first, second)

	fi, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), fi.Mode().Perm())
}

func TestSaltStore_DistinctVaultsGetDistinctSalts(t *testing.T) {
	dir := t.TempDir()

	s1, err := NewSaltStore(filepath.Join(dir, "a.bin"), logger.Nop()).GetOrCreate()
	require.NoError(t, err)
	s2, err := NewSaltStore(filepath.Join(dir, "b.bin"), logger.Nop()).GetOrCreate()
	require.NoError(t, err)

	assert.NotEqual(t, s1, s2)
}

func TestSaltStore_CorruptSaltIsSetupError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "salt.bin")
	require.NoError(t, os.WriteFile(path, []byte("short"), 0600))

	_, err := NewSaltStore(path, logger.Nop()).GetOrCreate()

	assert.ErrorIs(t, err, ErrSetup)
	data, readErr := os.ReadFile(path)
	require.NoError(t, readErr)
	assert.Equal(t, []byte("short"), data, "corrupt salt must not be regenerated")
}

func TestSaltStore_UnreadableSaltIsSetupError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "salt.bin")
	require.NoError(t, os.Mkdir(path, 0700))

	_, err := NewSaltStore(path, logger.Nop()).GetOrCreate()

	assert.ErrorIs(t, err, ErrSetup)
}

func TestCreateFile_NeverOverwrites(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "salt.bin")
	require.NoError(t, createFile(path, []byte("first"), 0600))

	err := createFile(path, []byte("second"), 0600)

	assert.ErrorIs(t, err, os.ErrExist)
	data, readErr := os.ReadFile(path)
	require.NoError(t, readErr)
	assert.Equal(t, []byte("first"), data)

	entries, readErr := os.ReadDir(dir)
	require.NoError(t, readErr)
	assert.Len(t, entries, 1, "temp files are cleaned up")
}

func TestRandom_FreshBytes(t *testing.T) {
	a, err := random(SaltLen)
	require.NoError(t, err)
	b, err := random(SaltLen)
	require.NoError(t, err)

	assert.Len(t, a, SaltLen)
	assert.NotEqual(t, a, b)
}
