package apps

import (
	"fmt"
	"time"

	"github.com/chess10kp/dexrun/internal/config"
	"github.com/chess10kp/dexrun/internal/logging"
)

var log = logging.Get("apps")

// Loader runs discovery, the parallel parse and the user override merge.
type Loader struct {
	dataDirs []string
	userDir  string
	workers  int
	parser   *Parser
}

func NewLoader(cfg *config.Config) (*Loader, error) {
	cache, err := NewParseCache(cfg.CacheSize)
	if err != nil {
		return nil, err
	}

	return &Loader{
		dataDirs: cfg.DataDirs,
		userDir:  cfg.UserDir,
		workers:  cfg.Workers,
		parser:   NewParser(cache),
	}, nil
}

// Discover lists the system application directories.
func (l *Loader) Discover() ([]DirEntry, error) {
	entries, err := CollectSystemEntries(l.dataDirs)
	if err != nil {
		return nil, err
	}
	log.Infof("Found %d entries in %d system dirs", len(entries), len(l.dataDirs))
	return entries, nil
}

// ParseSystem parses the discovered entries into a new catalog.
func (l *Loader) ParseSystem(entries []DirEntry) *Catalog {
	catalog := NewCatalog()
	l.parser.ParseParallel(entries, l.workers, catalog)
	return catalog
}

// MergeUser applies the user directory on top of catalog, one file at a time.
// It must only run after the parallel phase has finished.
func (l *Loader) MergeUser(catalog *Catalog) error {
	entries, err := ListDir(l.userDir)
	if err != nil {
		return &UserDirectoryError{Dir: l.userDir, Err: err}
	}

	overrides := 0
	for _, de := range entries {
		entry, ok := l.parser.Parse(de)
		if !ok {
			continue
		}
		catalog.Override(de.Key(), entry)
		overrides++
	}

	log.Infof("Applied %d user entries from %s", overrides, l.userDir)
	return nil
}

// Load runs the whole pipeline.
func (l *Loader) Load() (*Catalog, error) {
	start := time.Now()

	entries, err := l.Discover()
	if err != nil {
		return nil, err
	}

	catalog := l.ParseSystem(entries)

	if err := l.MergeUser(catalog); err != nil {
		return nil, fmt.Errorf("failed to merge user entries: %w", err)
	}

	stats := l.parser.cache.Stats()
	log.Infof("Loaded %d applications in %v (cache hits=%d misses=%d)", catalog.Len(), time.Since(start), stats.Hits, stats.Misses)
	return catalog, nil
}
