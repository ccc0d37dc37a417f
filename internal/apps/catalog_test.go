package apps

import (
	"reflect"
	"sync"
	"testing"
)

func TestCatalogFoldHigherSeqWins(t *testing.T) {
	catalog := NewCatalog()

	late := map[string]rankedEntry{"foo.desktop": {entry: Entry{Label: "late", Path: "/b/foo.desktop"}, seq: 10}}
	early := map[string]rankedEntry{"foo.desktop": {entry: Entry{Label: "early", Path: "/a/foo.desktop"}, seq: 1}}

	// Fold out of order: the later scan position still wins.
	catalog.Fold(late)
	catalog.Fold(early)

	entry, ok := catalog.Get("foo.desktop")
	if !ok {
		t.Fatal("Expected foo.desktop in catalog")
	}
	if entry.Label != "late" {
		t.Errorf("Expected the later entry to win, got %q", entry.Label)
	}
}

func TestCatalogOverride(t *testing.T) {
	catalog := NewCatalog()
	catalog.Fold(map[string]rankedEntry{"foo.desktop": {entry: Entry{Label: "sys"}, seq: 3}})
	catalog.Override("foo.desktop", Entry{Label: "user"})
	catalog.Fold(map[string]rankedEntry{"foo.desktop": {entry: Entry{Label: "sys2"}, seq: 4}})

	entry, _ := catalog.Get("foo.desktop")
	if entry.Label != "user" {
		t.Errorf("Expected user override to stick, got %q", entry.Label)
	}
	if catalog.Len() != 1 {
		t.Errorf("Expected 1 entry, got %d", catalog.Len())
	}
}

func TestCatalogEntriesSortedByKey(t *testing.T) {
	catalog := NewCatalog()
	catalog.Override("c.desktop", Entry{Label: "C"})
	catalog.Override("a.desktop", Entry{Label: "A"})
	catalog.Override("b.desktop", Entry{Label: "B"})

	want := []string{"A", "B", "C"}
	for i := 0; i < 5; i++ {
		if got := catalog.Labels(); !reflect.DeepEqual(got, want) {
			t.Fatalf("Expected %v, got %v", want, got)
		}
	}
}

func TestCatalogConcurrentFold(t *testing.T) {
	catalog := NewCatalog()

	var wg sync.WaitGroup
	for w := 0; w < 8; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			local := map[string]rankedEntry{
				"shared.desktop": {entry: Entry{Label: "shared"}, seq: w},
				string(rune('a'+w)) + ".desktop": {entry: Entry{Label: "own"}, seq: w},
			}
			catalog.Fold(local)
		}(w)
	}
	wg.Wait()

	if catalog.Len() != 9 {
		t.Errorf("Expected 9 entries, got %d", catalog.Len())
	}
}
