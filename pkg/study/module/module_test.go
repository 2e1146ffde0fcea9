package module

import "testing"

func TestParseSessionType(t *testing.T) {
	tests := []struct {
		input   string
		want    SessionType
		wantErr bool
	}{
		{"exam_prep", TypeExamPrep, false},
		{"qa", TypeQA, false},
		{"homework", TypeHomework, false},
		{"", "", true},
		{"EXAM_PREP", "", true},
		{"quiz", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseSessionType(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error for %q", tt.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestProfileForIsExhaustive(t *testing.T) {
	for _, typ := range []SessionType{TypeExamPrep, TypeQA, TypeHomework} {
		p := ProfileFor(typ)
		if p.Type != typ {
			t.Errorf("%s: profile does not echo its type", typ)
		}
		if !p.RAG {
			t.Errorf("%s: every session type answers over documents", typ)
		}
	}
}

func TestProfileCapabilities(t *testing.T) {
	if !ProfileFor(TypeQA).TurnHistory {
		t.Error("qa sessions render turn history")
	}
	if ProfileFor(TypeExamPrep).TurnHistory {
		t.Error("exam prep renders raw chat, not turns")
	}
	if ProfileFor(TypeHomework).GlobalDocsOptIn {
		t.Error("homework stays scoped to its own documents")
	}
}

func TestMachineHappyPath(t *testing.T) {
	m := NewMachine()
	if m.State() != Uninitialized {
		t.Fatalf("fresh machine in %s", m.State())
	}
	if err := m.Begin(); err != nil {
		t.Fatalf("begin: %v", err)
	}
	if m.State() != Loading {
		t.Fatalf("after begin: %s", m.State())
	}
	if err := m.Resolve(true); err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if m.State() != Ready {
		t.Fatalf("after resolve: %s", m.State())
	}
}

func TestMachineNotFoundAndFailed(t *testing.T) {
	m := NewMachine()
	_ = m.Begin()
	if err := m.Resolve(false); err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if m.State() != NotFound {
		t.Errorf("missing session should land on NOT_FOUND, got %s", m.State())
	}

	m = NewMachine()
	_ = m.Begin()
	if err := m.Reject(); err != nil {
		t.Fatalf("reject: %v", err)
	}
	if m.State() != Failed {
		t.Errorf("failed load should land on FAILED, got %s", m.State())
	}
}

func TestMachineRejectsInvalidTransitions(t *testing.T) {
	m := NewMachine()
	if err := m.Resolve(true); err == nil {
		t.Error("resolve without begin must fail")
	}
	if err := m.Reject(); err == nil {
		t.Error("reject without begin must fail")
	}

	_ = m.Begin()
	if err := m.Begin(); err == nil {
		t.Error("double begin must fail")
	}
	_ = m.Resolve(true)
	if err := m.Resolve(true); err == nil {
		t.Error("double resolve must fail")
	}
}
