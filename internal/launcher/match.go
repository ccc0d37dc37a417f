package launcher

import (
	"github.com/sahilm/fuzzy"

	"github.com/chess10kp/dexrun/internal/apps"
)

// Match finds the entry for a runner selection. The first entry whose label
// equals selection wins. With useFuzzy, a selection that matches no label
// exactly falls back to the best fuzzy match over all labels.
func Match(entries []apps.Entry, selection string, useFuzzy bool) (apps.Entry, bool) {
	for _, entry := range entries {
		if entry.Label == selection {
			return entry, true
		}
	}

	if !useFuzzy || selection == "" {
		return apps.Entry{}, false
	}

	labels := make([]string, len(entries))
	for i, entry := range entries {
		labels[i] = entry.Label
	}

	matches := fuzzy.Find(selection, labels)
	if len(matches) == 0 {
		return apps.Entry{}, false
	}

	// Matches are sorted by score, best first.
	best := matches[0]
	log.Infof("No exact match for %q, using fuzzy match %q (score %d)", selection, best.Str, best.Score)
	return entries[best.Index], true
}
