// Package flashcards implements the card reviewer: a cyclic cursor over a
// fixed deck with a per-card reveal toggle.
package flashcards

import "errors"

var ErrEmptyDeck = errors.New("flashcard deck is empty")

// Card is one question/answer pair from a generated flashcard artifact.
type Card struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// Navigator steps through a deck. Navigation wraps at both ends and always
// lands on the question side: moving to any card hides its answer again,
// even when returning to a card whose answer was shown before.
type Navigator struct {
	cards    []Card
	index    int
	revealed bool
}

// NewNavigator starts at the first card, answer hidden. An empty deck is an
// error, there is no valid cursor position for it.
func NewNavigator(cards []Card) (*Navigator, error) {
	if len(cards) == 0 {
		return nil, ErrEmptyDeck
	}
	deck := make([]Card, len(cards))
	copy(deck, cards)
	return &Navigator{cards: deck}, nil
}

// Len returns the deck size.
func (n *Navigator) Len() int {
	return len(n.cards)
}

// Index returns the current zero-based position.
func (n *Navigator) Index() int {
	return n.index
}

// Current returns the card under the cursor.
func (n *Navigator) Current() Card {
	return n.cards[n.index]
}

// Revealed reports whether the current card's answer is shown.
func (n *Navigator) Revealed() bool {
	return n.revealed
}

// ToggleReveal flips the answer visibility of the current card.
func (n *Navigator) ToggleReveal() bool {
	n.revealed = !n.revealed
	return n.revealed
}

// Next advances one card, wrapping from the last back to the first.
func (n *Navigator) Next() Card {
	n.index = (n.index + 1) % len(n.cards)
	n.revealed = false
	return n.cards[n.index]
}

// Previous steps back one card, wrapping from the first to the last.
func (n *Navigator) Previous() Card {
	n.index = (n.index - 1 + len(n.cards)) % len(n.cards)
	n.revealed = false
	return n.cards[n.index]
}

// Seek jumps to an absolute position.
func (n *Navigator) Seek(i int) error {
	if i < 0 || i >= len(n.cards) {
		return errors.New("card index out of range")
	}
	n.index = i
	n.revealed = false
	return nil
}
