// Package assistant defines the contract against the external AI collaborator.
// The backend treats it as an opaque service: prompts and document references
// go in, answers and artifacts come out. Prompting and retrieval internals
// live on the other side of the wire.
package assistant

import "context"

// SourceRef is a citation returned alongside an answer.
type SourceRef struct {
	Filename string `json:"filename"`
	Page     *int   `json:"page,omitempty"`
}

// Answer is a grounded response to a question.
type Answer struct {
	Text    string      `json:"text"`
	Sources []SourceRef `json:"sources"`
}

// Flashcard is one question/answer pair of a generated deck.
type Flashcard struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// MindmapNode is a node of a generated hierarchy.
type MindmapNode struct {
	Title    string        `json:"title"`
	Children []MindmapNode `json:"children,omitempty"`
}

// Option allows optional parameters like Temperature or a model override.
type Option func(*Options)

type Options struct {
	Temperature float64
	Model       string
}

func WithTemperature(temp float64) Option {
	return func(o *Options) {
		o.Temperature = temp
	}
}

func WithModel(model string) Option {
	return func(o *Options) {
		o.Model = model
	}
}

// Provider defines the contract for the AI backend.
type Provider interface {
	// Ask answers a free-form question with no document grounding.
	Ask(ctx context.Context, question string, opts ...Option) (string, error)

	// AskWithContext answers a question grounded on the given document ids
	// and returns citations into them.
	AskWithContext(ctx context.Context, question string, documentIDs []string, opts ...Option) (*Answer, error)

	// Summarize produces a prose summary of one document.
	Summarize(ctx context.Context, documentID string, opts ...Option) (string, error)

	// GenerateFlashcards produces a question/answer deck from one document.
	GenerateFlashcards(ctx context.Context, documentID string, opts ...Option) ([]Flashcard, error)

	// GenerateMindmap produces a topic hierarchy from one document.
	GenerateMindmap(ctx context.Context, documentID string, opts ...Option) (*MindmapNode, error)
}
