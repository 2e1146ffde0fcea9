// Package module defines the session type system: which kinds of study
// session exist, what capabilities each enables, and the lifecycle a session
// view moves through while loading.
package module

import "fmt"

// SessionType discriminates study session behavior. The set is closed; a
// value outside it is rejected at the boundary, never defaulted.
type SessionType string

const (
	TypeExamPrep SessionType = "exam_prep"
	TypeQA       SessionType = "qa"
	TypeHomework SessionType = "homework"
)

// ParseSessionType validates a wire value against the closed set.
func ParseSessionType(s string) (SessionType, error) {
	switch SessionType(s) {
	case TypeExamPrep, TypeQA, TypeHomework:
		return SessionType(s), nil
	}
	return "", fmt.Errorf("unknown session type %q", s)
}

// Profile describes what a session type can do.
type Profile struct {
	Type SessionType

	// Chat enables the free-form conversation surface.
	Chat bool

	// RAG enables document-grounded answering with citations.
	RAG bool

	// TurnHistory renders the log as reduced Q&A turns instead of raw chat.
	TurnHistory bool

	// GlobalDocsOptIn allows the session to pull in the owner's global
	// documents when resolving AI scope.
	GlobalDocsOptIn bool
}

// ProfileFor returns the capability profile of a session type. The switch is
// exhaustive over the closed set; callers must parse first.
func ProfileFor(t SessionType) Profile {
	switch t {
	case TypeExamPrep:
		return Profile{Type: t, Chat: true, RAG: true, TurnHistory: false, GlobalDocsOptIn: true}
	case TypeQA:
		return Profile{Type: t, Chat: false, RAG: true, TurnHistory: true, GlobalDocsOptIn: true}
	case TypeHomework:
		return Profile{Type: t, Chat: true, RAG: true, TurnHistory: false, GlobalDocsOptIn: false}
	}
	return Profile{Type: t}
}
