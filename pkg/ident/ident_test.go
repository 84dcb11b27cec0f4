package ident

import (
	"sort"
	"testing"
)

func TestNewIsUniqueInRapidSuccession(t *testing.T) {
	g := NewGenerator()

	seen := make(map[string]bool, 10000)
	for i := 0; i < 10000; i++ {
		id := g.New()
		if id == "" {
			t.Fatal("empty identifier")
		}
		if seen[id] {
			t.Fatalf("duplicate identifier after %d calls: %s", i, id)
		}
		seen[id] = true
	}
}

func TestNewIsSortable(t *testing.T) {
	g := NewGenerator()

	ids := make([]string, 100)
	for i := range ids {
		ids[i] = g.New()
	}

	if !sort.StringsAreSorted(ids) {
		t.Fatal("identifiers should sort in generation order")
	}
}

func TestSharedGenerator(t *testing.T) {
	a := New()
	b := New()
	if a == b {
		t.Fatalf("shared generator returned the same id twice: %s", a)
	}
}
