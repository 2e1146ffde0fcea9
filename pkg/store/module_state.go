package store

// ModuleState is the in-memory runtime view of one open study session. It
// tracks what the persistent tables do not: where the session's module is in
// its load cycle and where the flashcard reviewer currently points. Losing it
// is harmless, the next request rebuilds it from the database.
type ModuleState struct {
	SessionID string `json:"session_id"`
	UserID    string `json:"user_id"`
	Type      string `json:"type"`  // "exam_prep" | "qa" | "homework"
	State     string `json:"state"` // lifecycle of the module view

	// Whether the owner's global documents participate in AI scope.
	IncludeGlobal bool `json:"include_global"`

	// Last question sent to the assistant, kept for retry.
	LastPrompt string `json:"last_query"`

	// Flashcard reviewer position.
	CardIndex    int  `json:"card_index"`
	CardRevealed bool `json:"card_revealed"`
}

const (
	StateUninitialized = "UNINITIALIZED"
	StateLoading       = "LOADING"
	StateReady         = "READY"
	StateNotFound      = "NOT_FOUND"
	StateFailed        = "FAILED"
)
