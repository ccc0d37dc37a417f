package apps

import (
	"fmt"
	"math"
	"sort"
	"sync"
)

// Entry is one launchable application.
type Entry struct {
	// Label is "<Name> (<Exec>)", exactly as declared in the file.
	Label string `toml:"label"`
	// Path is the desktop file the entry was read from.
	Path string `toml:"path"`
}

// FormatLabel builds the display label for a name and exec pair.
func FormatLabel(name, exec string) string {
	return fmt.Sprintf("%s (%s)", name, exec)
}

// userSeq ranks user overrides above every system entry.
const userSeq = math.MaxInt

type rankedEntry struct {
	entry Entry
	seq   int
}

// Catalog maps desktop file base names to entries. Safe for concurrent use.
type Catalog struct {
	mu      sync.Mutex
	entries map[string]rankedEntry
}

func NewCatalog() *Catalog {
	return &Catalog{entries: make(map[string]rankedEntry)}
}

// Fold merges a worker's private mapping in a single critical section.
// For a key present on both sides, the entry with the higher scan sequence
// wins, so the result matches folding every shard in directory-list order
// no matter which worker finishes first.
func (c *Catalog) Fold(local map[string]rankedEntry) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for key, incoming := range local {
		if existing, ok := c.entries[key]; ok && existing.seq > incoming.seq {
			continue
		}
		c.entries[key] = incoming
	}
}

// Override unconditionally replaces the entry for key.
func (c *Catalog) Override(key string, entry Entry) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[key] = rankedEntry{entry: entry, seq: userSeq}
}

func (c *Catalog) Get(key string) (Entry, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	ranked, ok := c.entries[key]
	return ranked.entry, ok
}

func (c *Catalog) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return len(c.entries)
}

// Entries returns all entries ordered by key.
func (c *Catalog) Entries() []Entry {
	c.mu.Lock()
	defer c.mu.Unlock()

	keys := make([]string, 0, len(c.entries))
	for key := range c.entries {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	entries := make([]Entry, 0, len(keys))
	for _, key := range keys {
		entries = append(entries, c.entries[key].entry)
	}
	return entries
}

// Labels returns the display labels in Entries order.
func (c *Catalog) Labels() []string {
	entries := c.Entries()
	labels := make([]string, len(entries))
	for i, entry := range entries {
		labels[i] = entry.Label
	}
	return labels
}
