// Package cache stores resolved answers keyed by the raw question text.
// Lookups hit an in-memory map; writes go through to SQLite so answers
// survive restarts. A set of seeded responses covers the most frequent
// questions before the first request ever arrives.
package cache

import (
	"fmt"
	"regexp"
	"strings"
	"sync"

	"github.com/cadubot/cadu-go/internal/logger"
)

// NoStoreFunc reports whether an answer for the given cache key must not
// be persisted. Timetable answers are volatile and stay out of the cache.
type NoStoreFunc func(key string) bool

// Cache is safe for concurrent use.
type Cache struct {
	mu      sync.RWMutex
	entries map[string]string

	store   *store
	noStore NoStoreFunc
	log     *logger.Logger
}

// Open creates the cache. path is the SQLite file; an empty path keeps
// the cache memory-only. Persisted entries are loaded eagerly.
func Open(path string, noStore NoStoreFunc, log *logger.Logger) (*Cache, error) {
	if noStore == nil {
		noStore = func(string) bool { return false }
	}
	c := &Cache{
		entries: make(map[string]string),
		noStore: noStore,
		log:     log.WithModule("cache"),
	}
	if path == "" {
		return c, nil
	}

	st, err := openStore(path)
	if err != nil {
		return nil, fmt.Errorf("open cache store: %w", err)
	}
	c.store = st

	persisted, err := st.loadAll()
	if err != nil {
		_ = st.close()
		return nil, fmt.Errorf("load cache entries: %w", err)
	}
	for k, v := range persisted {
		c.entries[k] = v
	}
	c.log.WithField("entries", len(persisted)).Infof("response cache loaded")
	return c, nil
}

// Key normalizes a question into its cache key. Accents are kept so
// distinct spellings stay distinct, matching the seeded keys.
func Key(query string) string {
	return strings.ToLower(strings.TrimSpace(query))
}

// Lookup resolves a question from the cache. allowSeeds enables the
// seeded responses, including word-boundary matching for simple
// questions; callers disable it for questions that must reach the
// timetable resolver or the generative delegate.
func (c *Cache) Lookup(query string, allowSeeds bool) (string, bool) {
	key := Key(query)

	if !allowSeeds {
		return c.get(key)
	}

	// Seed answers are served directly, never copied into the stored
	// entries: a promoted seed would survive a later allowSeeds=false
	// lookup and leak into exports.
	if answer, ok := seedAnswers[key]; ok {
		return answer, true
	}

	// Questions about the secretary's number are phone questions.
	if strings.Contains(key, "numero") && strings.Contains(key, "secretaria") {
		return seedAnswers["telefone"], true
	}

	if isSimpleQuestion(key) {
		for _, seed := range seedOrder {
			if seedPatterns[seed].MatchString(key) {
				return seedAnswers[seed], true
			}
		}
	}

	return c.get(key)
}

func (c *Cache) get(key string) (string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	v, ok := c.entries[key]
	return v, ok
}

// Put stores an answer unless the no-store predicate rejects the key.
// The persisted copy is best effort; a write failure keeps the
// in-memory entry and is only logged.
func (c *Cache) Put(query, answer string) {
	key := Key(query)
	if key == "" || answer == "" || c.noStore(key) {
		return
	}

	c.mu.Lock()
	c.entries[key] = answer
	c.mu.Unlock()

	if c.store == nil {
		return
	}
	if err := c.store.put(key, answer); err != nil {
		c.log.WithError(err).WithField("key", key).Warnf("cache write failed")
	}
}

// Entries returns a snapshot of all cached pairs.
func (c *Cache) Entries() map[string]string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make(map[string]string, len(c.entries))
	for k, v := range c.entries {
		out[k] = v
	}
	return out
}

// Len returns the number of cached entries.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// Clear drops every entry, both in memory and on disk.
func (c *Cache) Clear() error {
	c.mu.Lock()
	c.entries = make(map[string]string)
	c.mu.Unlock()

	if c.store == nil {
		return nil
	}
	return c.store.clear()
}

// Close releases the SQLite handle.
func (c *Cache) Close() error {
	if c.store == nil {
		return nil
	}
	return c.store.close()
}

// Complex questions skip the seeded substring match so they reach the
// delegate for a full answer.
var complexPhrases = []string{
	"me fale", "quais são", "quais sao", "conte sobre", "fale sobre",
	"explique", "detalhe", "informe sobre", "me informe",
}

func isSimpleQuestion(key string) bool {
	for _, p := range complexPhrases {
		if strings.Contains(key, p) {
			return false
		}
	}
	return true
}

var seedPatterns = func() map[string]*regexp.Regexp {
	out := make(map[string]*regexp.Regexp, len(seedOrder))
	for _, seed := range seedOrder {
		out[seed] = regexp.MustCompile(`\b` + regexp.QuoteMeta(seed) + `\b`)
	}
	return out
}()
