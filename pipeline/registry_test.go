package pipeline

import (
	"context"
	"testing"
)

func TestRegistry_OrderPreserved(t *testing.T) {
	reg := NewRegistry[int]()
	reg.Add("a", upOne())
	reg.Add("b", upOne())
	reg.Add("c", upOne())

	entries := reg.Entries()
	want := []string{"a", "b", "c"}
	for i, name := range want {
		if entries[i].Name != name {
			t.Errorf("entries[%d].Name = %s, want %s", i, entries[i].Name, name)
		}
	}
}

func TestRegistry_OrderPreservedAcrossInterleavedGroups(t *testing.T) {
	// group1 group2 group1 must keep registration order; group is a filter
	// tag only.
	reg := NewRegistry[int]()
	reg.AddToGroup("group1", "first", upOne())
	reg.AddToGroup("group2", "second", upOne())
	reg.AddToGroup("group1", "third", upOne())

	entries := reg.Entries()
	want := []string{"first", "second", "third"}
	for i, name := range want {
		if entries[i].Name != name {
			t.Errorf("entries[%d].Name = %s, want %s", i, entries[i].Name, name)
		}
	}
}

func TestRegistry_DuplicateNamesPermitted(t *testing.T) {
	reg := NewRegistry[int]()
	reg.Add("same", upOne())
	reg.Add("same", upOne())
	if reg.Len() != 2 {
		t.Errorf("expected 2 entries, got %d", reg.Len())
	}
}

func TestRegistry_DefaultGroupIsEmpty(t *testing.T) {
	reg := NewRegistry[int]()
	reg.Add("plain", upOne())
	if got := reg.Entries()[0].Group; got != "" {
		t.Errorf("expected empty default group, got %q", got)
	}
}

func TestRegistry_EntriesIsACopy(t *testing.T) {
	reg := NewRegistry[int]()
	reg.Add("a", upOne())
	entries := reg.Entries()
	entries[0].Name = "mutated"
	if reg.Entries()[0].Name != "a" {
		t.Error("Entries must return a copy, not the backing slice")
	}
}

func TestResolveEntries_SkipFiltersWithoutReordering(t *testing.T) {
	reg := NewRegistry[int]()
	reg.AddToGroup("g1", "one", upOne())
	reg.AddToGroup("g2", "two", upOne())
	reg.AddToGroup("g1", "three", upOne())

	stages, err := resolveEntries(reg.Entries(), []string{"g2"})
	if err != nil {
		t.Fatal(err)
	}
	if len(stages) != 2 {
		t.Fatalf("expected 2 stages, got %d", len(stages))
	}
	if stages[0].name != "one" || stages[1].name != "three" {
		t.Errorf("relative order of remaining stages changed: %s, %s", stages[0].name, stages[1].name)
	}
}

func TestResolveEntries_InvokesEachBuilderOnce(t *testing.T) {
	builds := map[string]int{}
	mk := func(name string) Builder[int] {
		return func() Transform[int] {
			builds[name]++
			return func(_ context.Context, n int) (Output[int], error) { return One(n), nil }
		}
	}
	reg := NewRegistry[int]()
	reg.Add("a", mk("a"))
	reg.AddToGroup("skipme", "b", mk("b"))
	reg.Add("c", mk("c"))

	if _, err := resolveEntries(reg.Entries(), []string{"skipme"}); err != nil {
		t.Fatal(err)
	}
	if builds["a"] != 1 || builds["c"] != 1 {
		t.Errorf("kept builders should run exactly once: %v", builds)
	}
	if builds["b"] != 0 {
		t.Errorf("skipped builder must not run: %v", builds)
	}
}
