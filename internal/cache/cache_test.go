package cache

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cadubot/cadu-go/internal/logger"
)

func newTestCache(t *testing.T, noStore NoStoreFunc) *Cache {
	t.Helper()
	c, err := Open("", noStore, logger.New("error"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })
	return c
}

func TestKey(t *testing.T) {
	assert.Equal(t, "onde fica o refeitório", Key("  Onde Fica o Refeitório  "))
	assert.Equal(t, "", Key("   "))
}

func TestLookupSeeds(t *testing.T) {
	c := newTestCache(t, nil)

	answer, ok := c.Lookup("Bom dia", true)
	require.True(t, ok)
	assert.Contains(t, answer, "Bom dia!")

	// Seeds are disabled for questions routed elsewhere.
	_, ok = c.Lookup("Bom dia", false)
	assert.False(t, ok)

	// Seeds hit by word boundary inside simple questions.
	answer, ok = c.Lookup("qual o telefone de voces", true)
	require.True(t, ok)
	assert.Contains(t, answer, "(16) 2106-8700")

	// Complex questions bypass the substring seeds.
	_, ok = c.Lookup("me fale sobre os cursos", true)
	assert.False(t, ok)

	// Secretary-number questions resolve to the phone seed.
	answer, ok = c.Lookup("qual o numero da secretaria", true)
	require.True(t, ok)
	assert.Contains(t, answer, "(16) 2106-8700")

	// Seed hits never become stored entries.
	assert.Equal(t, 0, c.Len())
}

func TestPutAndLookup(t *testing.T) {
	c := newTestCache(t, nil)

	c.Put("Onde fica o refeitório?", "No térreo, perto da entrada.")
	answer, ok := c.Lookup("onde fica o refeitório?", false)
	require.True(t, ok)
	assert.Equal(t, "No térreo, perto da entrada.", answer)

	// Empty keys and answers are ignored.
	c.Put("   ", "x")
	c.Put("pergunta", "")
	_, ok = c.Lookup("pergunta", false)
	assert.False(t, ok)
}

func TestNoStorePredicate(t *testing.T) {
	c := newTestCache(t, func(key string) bool {
		return strings.Contains(key, "professor")
	})

	c.Put("horario do professor rainer", "resposta volátil")
	_, ok := c.Lookup("horario do professor rainer", false)
	assert.False(t, ok)

	c.Put("onde fica a biblioteca", "No térreo.")
	_, ok = c.Lookup("onde fica a biblioteca", false)
	assert.True(t, ok)
}

func TestPersistence(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cache.db")
	log := logger.New("error")

	c, err := Open(path, nil, log)
	require.NoError(t, err)
	c.Put("onde fica a biblioteca", "No térreo.")
	require.NoError(t, c.Close())

	// A fresh cache over the same file sees the entry.
	c, err = Open(path, nil, log)
	require.NoError(t, err)
	defer func() { _ = c.Close() }()

	answer, ok := c.Lookup("onde fica a biblioteca", false)
	require.True(t, ok)
	assert.Equal(t, "No térreo.", answer)
}

func TestClear(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cache.db")
	log := logger.New("error")

	c, err := Open(path, nil, log)
	require.NoError(t, err)
	defer func() { _ = c.Close() }()

	c.Put("a", "1")
	c.Put("b", "2")
	require.Equal(t, 2, c.Len())

	require.NoError(t, c.Clear())
	assert.Equal(t, 0, c.Len())
	_, ok := c.Lookup("a", false)
	assert.False(t, ok)
}

func TestEntriesSnapshot(t *testing.T) {
	c := newTestCache(t, nil)
	c.Put("a", "1")

	snap := c.Entries()
	snap["b"] = "2"
	assert.Equal(t, 1, c.Len())
}
