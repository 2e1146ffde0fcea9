package progress

import "testing"

func TestToggleFlipsState(t *testing.T) {
	c := New()

	if c.IsComplete("m1") {
		t.Fatal("fresh checklist has nothing complete")
	}
	if got := c.Toggle("m1"); !got {
		t.Error("first toggle should complete")
	}
	if !c.IsComplete("m1") {
		t.Error("m1 should be complete")
	}
	if got := c.Toggle("m1"); got {
		t.Error("second toggle should clear")
	}
	if c.IsComplete("m1") {
		t.Error("m1 should be incomplete again")
	}
}

func TestToggleIsIndependentPerMaterial(t *testing.T) {
	c := New()
	c.Toggle("m1")

	if c.IsComplete("m2") {
		t.Error("toggling m1 must not affect m2")
	}
}

func TestCompletionRatio(t *testing.T) {
	c := New()
	c.Toggle("m1")
	c.Toggle("m2")

	tests := []struct {
		name string
		ids  []string
		want float64
	}{
		{"empty set", nil, 0},
		{"all complete", []string{"m1", "m2"}, 1},
		{"half", []string{"m1", "m3"}, 0.5},
		{"none", []string{"m3", "m4"}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CompletionRatio(c, tt.ids); got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCompletionRatioBounds(t *testing.T) {
	c := New()
	ids := []string{"a", "b", "c"}
	for i, id := range ids {
		r := CompletionRatio(c, ids)
		if r < 0 || r > 1 {
			t.Fatalf("ratio out of bounds at step %d: %v", i, r)
		}
		c.Toggle(id)
	}
	if r := CompletionRatio(c, ids); r != 1 {
		t.Errorf("all toggled: got %v, want 1", r)
	}
}
