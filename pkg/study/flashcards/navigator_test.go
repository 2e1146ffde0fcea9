package flashcards

import "testing"

func deck(n int) []Card {
	cards := make([]Card, n)
	for i := range cards {
		cards[i] = Card{Question: "q", Answer: "a"}
	}
	return cards
}

func TestNewNavigatorEmptyDeck(t *testing.T) {
	if _, err := NewNavigator(nil); err != ErrEmptyDeck {
		t.Errorf("expected ErrEmptyDeck, got %v", err)
	}
}

func TestNewNavigatorStartsHidden(t *testing.T) {
	n, err := NewNavigator(deck(3))
	if err != nil {
		t.Fatal(err)
	}
	if n.Index() != 0 {
		t.Errorf("start index %d, want 0", n.Index())
	}
	if n.Revealed() {
		t.Error("fresh navigator must start on the question side")
	}
}

func TestNextWrapsForward(t *testing.T) {
	n, _ := NewNavigator(deck(3))

	n.Next()
	n.Next()
	if n.Index() != 2 {
		t.Fatalf("index %d, want 2", n.Index())
	}
	n.Next()
	if n.Index() != 0 {
		t.Errorf("wrap: index %d, want 0", n.Index())
	}
}

func TestPreviousWrapsToEnd(t *testing.T) {
	n, _ := NewNavigator(deck(3))

	n.Previous()
	if n.Index() != 2 {
		t.Errorf("wrap back: index %d, want 2", n.Index())
	}
}

func TestFullCycleReturnsToStart(t *testing.T) {
	n, _ := NewNavigator(deck(5))
	for i := 0; i < 5; i++ {
		n.Next()
	}
	if n.Index() != 0 {
		t.Errorf("after full cycle: index %d, want 0", n.Index())
	}
}

func TestNavigationResetsReveal(t *testing.T) {
	n, _ := NewNavigator(deck(2))

	n.ToggleReveal()
	if !n.Revealed() {
		t.Fatal("toggle should reveal")
	}
	n.Next()
	if n.Revealed() {
		t.Error("next must hide the answer")
	}

	n.ToggleReveal()
	n.Previous()
	if n.Revealed() {
		t.Error("previous must hide the answer")
	}

	// Returning to a previously revealed card still starts hidden.
	n.ToggleReveal()
	n.Next()
	n.Previous()
	if n.Revealed() {
		t.Error("revisited card must start on the question side")
	}
}

func TestSingleCardDeck(t *testing.T) {
	n, _ := NewNavigator(deck(1))

	n.Next()
	if n.Index() != 0 {
		t.Errorf("single card next: index %d, want 0", n.Index())
	}
	n.ToggleReveal()
	n.Previous()
	if n.Index() != 0 || n.Revealed() {
		t.Error("single card previous: expected index 0, hidden")
	}
}

func TestSeek(t *testing.T) {
	n, _ := NewNavigator(deck(4))

	if err := n.Seek(2); err != nil {
		t.Fatalf("seek: %v", err)
	}
	if n.Index() != 2 {
		t.Errorf("index %d, want 2", n.Index())
	}
	if err := n.Seek(4); err == nil {
		t.Error("out of range seek must fail")
	}
	if err := n.Seek(-1); err == nil {
		t.Error("negative seek must fail")
	}
}
