package apps

import (
	"os"
	"path/filepath"

	"github.com/chess10kp/dexrun/internal/config"
)

// DirEntry is a candidate file found while listing an application directory.
type DirEntry struct {
	Path string
	// Seq orders entries across all scanned directories: directory order
	// first, then listing order within the directory.
	Seq int
}

// Key is the catalog key for the entry, its base name.
func (d DirEntry) Key() string {
	return filepath.Base(d.Path)
}

// ListDir lists every entry of dir in name order. Nothing is filtered here.
func ListDir(dir string) ([]DirEntry, error) {
	dirEntries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	entries := make([]DirEntry, 0, len(dirEntries))
	for _, de := range dirEntries {
		entries = append(entries, DirEntry{Path: filepath.Join(dir, de.Name())})
	}
	return entries, nil
}

// CollectSystemEntries lists each system directory on its own. Unreadable
// directories are logged and skipped. An empty result is a ConfigurationError.
func CollectSystemEntries(dirs []string) ([]DirEntry, error) {
	var entries []DirEntry
	for _, dir := range dirs {
		listed, err := ListDir(dir)
		if err != nil {
			log.Warning((&DirectoryReadError{Dir: dir, Err: err}).Error())
			continue
		}
		log.Debugf("Listed %d entries in %s", len(listed), dir)
		entries = append(entries, listed...)
	}

	if len(entries) == 0 {
		return nil, &config.ConfigurationError{Msg: "no valid desktop file directories found"}
	}

	for i := range entries {
		entries[i].Seq = i
	}
	return entries, nil
}
