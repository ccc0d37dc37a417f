package apps

import (
	"sync"
	"time"
)

// Parser turns directory entries into catalog entries.
type Parser struct {
	cache *ParseCache
}

// NewParser creates a parser. cache may be nil.
func NewParser(cache *ParseCache) *Parser {
	return &Parser{cache: cache}
}

// Parse returns the entry for a desktop file. ok is false for files that are
// not desktop files, lack Name= or Exec=, or could not be read.
func (p *Parser) Parse(de DirEntry) (Entry, bool) {
	if !IsDesktopFile(de.Path) {
		return Entry{}, false
	}

	var key string
	if p.cache != nil {
		key = p.cache.resolve(de.Path)
		if result, found := p.cache.get(key); found {
			return Entry{Label: result.label, Path: de.Path}, result.ok
		}
	}

	name, exec, ok, err := ParseDesktopFile(de.Path)
	if err != nil {
		log.Warning((&EntryReadError{Path: de.Path, Err: err}).Error())
		return Entry{}, false
	}

	result := parseResult{ok: ok}
	if ok {
		result.label = FormatLabel(name, exec)
	} else {
		log.Debugf("Skipping %s: missing Name or Exec", de.Path)
	}
	if p.cache != nil {
		p.cache.put(key, result)
	}

	return Entry{Label: result.label, Path: de.Path}, ok
}

// Shards splits entries into at most workers contiguous, non-empty slices.
// The slices share the backing array of entries and must not be modified.
func Shards(entries []DirEntry, workers int) [][]DirEntry {
	if workers < 1 {
		workers = 1
	}
	if len(entries) == 0 {
		return nil
	}

	size := (len(entries) + workers - 1) / workers
	shards := make([][]DirEntry, 0, workers)
	for start := 0; start < len(entries); start += size {
		end := start + size
		if end > len(entries) {
			end = len(entries)
		}
		shards = append(shards, entries[start:end:end])
	}
	return shards
}

// ParseParallel parses entries on a fixed pool of workers, one contiguous
// shard each. Every worker builds a private mapping and folds it into
// catalog once, when its shard is done. It returns after all workers joined.
func (p *Parser) ParseParallel(entries []DirEntry, workers int, catalog *Catalog) {
	start := time.Now()
	shards := Shards(entries, workers)
	log.Debugf("Parsing %d entries on %d workers", len(entries), len(shards))

	var wg sync.WaitGroup
	for i, shard := range shards {
		wg.Add(1)
		go func(id int, shard []DirEntry) {
			defer wg.Done()

			local := make(map[string]rankedEntry)
			for _, de := range shard {
				entry, ok := p.Parse(de)
				if !ok {
					continue
				}
				local[de.Key()] = rankedEntry{entry: entry, seq: de.Seq}
			}

			catalog.Fold(local)
			log.Debugf("Worker %d folded %d of %d entries", id, len(local), len(shard))
		}(i, shard)
	}
	wg.Wait()

	log.Infof("Parsed %d entries in %v (parallel parsing)", len(entries), time.Since(start))
}
