// Command cachetool inspects and maintains the response cache.
// Snapshots exported here are zstd-compressed and portable, so a warm
// cache can be moved between environments or committed to a deploy
// artifact.
package main

import (
	"flag"
	"fmt"
	"os"
	"sort"

	"github.com/cadubot/cadu-go/internal/cache"
	"github.com/cadubot/cadu-go/internal/config"
	"github.com/cadubot/cadu-go/internal/logger"
	"github.com/cadubot/cadu-go/internal/snapshot"
	"github.com/cadubot/cadu-go/internal/stringutil"
)

// CLI flags
var (
	listFlag   = flag.Bool("list", false, "List cached questions")
	clearFlag  = flag.Bool("clear", false, "Delete every cached entry")
	exportFlag = flag.String("export", "", "Export the cache to a zstd snapshot file")
	importFlag = flag.String("import", "", "Import entries from a zstd snapshot file")
)

func main() {
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.LogLevel)

	// No no-store predicate here: the tool operates on whatever is
	// persisted, including entries the server would refuse to store.
	c, err := cache.Open(cfg.SQLitePath(), nil, log)
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Failed to open cache: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = c.Close() }()

	switch {
	case *listFlag:
		listEntries(c)
	case *clearFlag:
		if err := c.Clear(); err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "Failed to clear cache: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("✅ Cache cleared")
	case *exportFlag != "":
		exportEntries(c, *exportFlag)
	case *importFlag != "":
		importEntries(c, *importFlag)
	default:
		fmt.Printf("Response cache: %d entries at %s\n", c.Len(), cfg.SQLitePath())
		flag.Usage()
	}
}

func listEntries(c *cache.Cache) {
	entries := c.Entries()

	keys := make([]string, 0, len(entries))
	for k := range entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		fmt.Printf("%-50s -> %s\n", k, stringutil.Ellipsize(entries[k], 60))
	}
	fmt.Printf("\n%d entries\n", len(keys))
}

func exportEntries(c *cache.Cache, path string) {
	entries := c.Entries()
	if err := snapshot.Write(path, entries); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Export failed: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("✅ Exported %d entries to %s\n", len(entries), path)
}

func importEntries(c *cache.Cache, path string) {
	entries, err := snapshot.Read(path)
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Import failed: %v\n", err)
		os.Exit(1)
	}
	for k, v := range entries {
		c.Put(k, v)
	}
	fmt.Printf("✅ Imported %d entries, cache now holds %d\n", len(entries), c.Len())
}
