package pipeline

import "testing"

func TestOutput_One(t *testing.T) {
	out := One(42)
	if out.IsDrop() || out.IsMany() {
		t.Error("One should be neither drop nor fan-out")
	}
	if out.Value() != 42 {
		t.Errorf("Value() = %d, want 42", out.Value())
	}
}

func TestOutput_Drop(t *testing.T) {
	out := Drop[int]()
	if !out.IsDrop() {
		t.Error("expected IsDrop")
	}
	if out.IsMany() {
		t.Error("a drop is not a fan-out")
	}
}

func TestOutput_Many(t *testing.T) {
	out := Many(1, 2, 3)
	if !out.IsMany() {
		t.Error("expected IsMany")
	}
	if len(out.Items()) != 3 {
		t.Errorf("expected 3 items, got %d", len(out.Items()))
	}
}

func TestOutput_ManyEmpty(t *testing.T) {
	out := Many[int]()
	if !out.IsMany() {
		t.Error("an empty fan-out is still a fan-out, not a drop")
	}
	if out.IsDrop() {
		t.Error("empty Many must not be treated as Drop")
	}
}

func TestOutput_StringsAreNeverImplicitFanOut(t *testing.T) {
	// The tag is explicit: a single string value stays a single item even
	// though it is element-iterable.
	out := One("hello")
	if out.IsMany() {
		t.Error("One(string) must not fan out")
	}
	if out.Value() != "hello" {
		t.Errorf("Value() = %q, want hello", out.Value())
	}
}

func TestOutput_Spread(t *testing.T) {
	items := []int{4, 5}
	out := Spread(items)
	if !out.IsMany() {
		t.Error("expected IsMany")
	}
	if &out.Items()[0] != &items[0] {
		t.Error("Spread should not copy the slice")
	}
}
