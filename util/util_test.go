package util

import "testing"

func TestContains(t *testing.T) {
	tests := []struct {
		name  string
		slice []int
		val   int
		want  bool
	}{
		{"found", []int{1, 2, 3}, 2, true},
		{"not found", []int{1, 2, 3}, 4, false},
		{"empty slice", []int{}, 1, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Contains(tc.slice, tc.val); got != tc.want {
				t.Errorf("Contains(%v, %d) = %v, want %v", tc.slice, tc.val, got, tc.want)
			}
		})
	}
}

func TestContainsStrings(t *testing.T) {
	if !Contains([]string{"a", "b", "c"}, "b") {
		t.Error("expected Contains to find 'b'")
	}
	if Contains([]string{"a", "b"}, "z") {
		t.Error("expected Contains to not find 'z'")
	}
}

func TestFilter(t *testing.T) {
	evens := Filter([]int{1, 2, 3, 4, 5, 6}, func(n int) bool { return n%2 == 0 })
	if len(evens) != 3 {
		t.Fatalf("expected 3 evens, got %d", len(evens))
	}
	for _, v := range evens {
		if v%2 != 0 {
			t.Errorf("expected even value, got %d", v)
		}
	}
}

func TestMap(t *testing.T) {
	got := Map([]int{1, 2, 3}, func(n int) int { return n * 10 })
	want := []int{10, 20, 30}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Map()[%d] = %d, want %d", i, got[i], want[i])
		}
	}
}

func TestUnique(t *testing.T) {
	got := Unique([]string{"run", "help", "run", "version", "help"})
	want := []string{"run", "help", "version"}
	if len(got) != len(want) {
		t.Fatalf("expected %d values, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Unique()[%d] = %s, want %s", i, got[i], want[i])
		}
	}
}
