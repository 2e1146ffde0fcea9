package scope

import (
	"testing"

	"studysage-be/internal/entity"

	"github.com/google/uuid"
)

func doc(id uuid.UUID, session *uuid.UUID, global bool) *entity.Document {
	return &entity.Document{Id: id, SessionId: session, IsGlobal: global}
}

func TestResolveSessionOnly(t *testing.T) {
	sessionID := uuid.New()
	otherID := uuid.New()

	a := doc(uuid.New(), &sessionID, false)
	b := doc(uuid.New(), &otherID, false)
	g := doc(uuid.New(), nil, true)

	got := Resolve([]*entity.Document{a, b, g}, sessionID, false)

	if len(got) != 1 {
		t.Fatalf("expected 1 document, got %d", len(got))
	}
	if got[0].Id != a.Id {
		t.Errorf("expected session document, got %v", got[0].Id)
	}
}

func TestResolveIncludeGlobalIsAdditive(t *testing.T) {
	sessionID := uuid.New()

	a := doc(uuid.New(), &sessionID, false)
	g := doc(uuid.New(), nil, true)

	without := Resolve([]*entity.Document{a, g}, sessionID, false)
	with := Resolve([]*entity.Document{a, g}, sessionID, true)

	if len(with) < len(without) {
		t.Fatalf("enabling globals shrank scope: %d -> %d", len(without), len(with))
	}
	found := make(map[uuid.UUID]bool)
	for _, d := range with {
		found[d.Id] = true
	}
	for _, d := range without {
		if !found[d.Id] {
			t.Errorf("document %v lost when globals enabled", d.Id)
		}
	}
	if !found[g.Id] {
		t.Errorf("global document missing from widened scope")
	}
}

func TestResolveDeduplicates(t *testing.T) {
	sessionID := uuid.New()

	// Attached to the session and also global: must appear once.
	both := doc(uuid.New(), &sessionID, true)

	got := Resolve([]*entity.Document{both, both}, sessionID, true)

	if len(got) != 1 {
		t.Fatalf("expected 1 document after dedup, got %d", len(got))
	}
}

func TestResolvePreservesOrder(t *testing.T) {
	sessionID := uuid.New()

	docs := []*entity.Document{
		doc(uuid.New(), &sessionID, false),
		doc(uuid.New(), nil, true),
		doc(uuid.New(), &sessionID, false),
	}

	got := Resolve(docs, sessionID, true)

	if len(got) != 3 {
		t.Fatalf("expected 3 documents, got %d", len(got))
	}
	for i, d := range got {
		if d.Id != docs[i].Id {
			t.Errorf("position %d: order not preserved", i)
		}
	}
}

func TestResolveEmptyAndNil(t *testing.T) {
	sessionID := uuid.New()

	if got := Resolve(nil, sessionID, true); len(got) != 0 {
		t.Errorf("nil input: expected empty result, got %d", len(got))
	}
	if got := Resolve([]*entity.Document{nil}, sessionID, true); len(got) != 0 {
		t.Errorf("nil entry: expected empty result, got %d", len(got))
	}
}
