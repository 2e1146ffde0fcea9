package materials

import (
	"testing"
	"time"

	"studysage-be/internal/constant"
	"studysage-be/internal/entity"

	"github.com/google/uuid"
)

func material(docID uuid.UUID, typ string, created time.Time) *entity.StudyMaterial {
	return &entity.StudyMaterial{
		Id:         uuid.New(),
		DocumentId: docID,
		Type:       typ,
		CreatedAt:  created,
	}
}

func TestFindReturnsNewest(t *testing.T) {
	docID := uuid.New()
	base := time.Now()

	old := material(docID, constant.MaterialTypeSummary, base.Add(-time.Hour))
	newest := material(docID, constant.MaterialTypeSummary, base)
	otherType := material(docID, constant.MaterialTypeFlashcard, base.Add(time.Hour))
	otherDoc := material(uuid.New(), constant.MaterialTypeSummary, base.Add(time.Hour))

	got := Find([]*entity.StudyMaterial{old, newest, otherType, otherDoc}, docID, constant.MaterialTypeSummary)

	if got == nil {
		t.Fatal("expected a material, got nil")
	}
	if got.Id != newest.Id {
		t.Errorf("expected newest summary, got %v", got.Id)
	}
}

func TestFindNoneReturnsNil(t *testing.T) {
	docID := uuid.New()
	pool := []*entity.StudyMaterial{
		material(docID, constant.MaterialTypeFlashcard, time.Now()),
	}

	if got := Find(pool, docID, constant.MaterialTypeSummary); got != nil {
		t.Errorf("expected nil, got %v", got.Id)
	}
	if got := Find(nil, docID, constant.MaterialTypeSummary); got != nil {
		t.Errorf("empty pool: expected nil, got %v", got.Id)
	}
}

func TestFindTieBreaksOnId(t *testing.T) {
	docID := uuid.New()
	created := time.Now()

	a := material(docID, constant.MaterialTypeMindmap, created)
	b := material(docID, constant.MaterialTypeMindmap, created)

	want := a
	if b.Id.String() > a.Id.String() {
		want = b
	}

	// Same answer regardless of input order.
	if got := Find([]*entity.StudyMaterial{a, b}, docID, constant.MaterialTypeMindmap); got.Id != want.Id {
		t.Errorf("order a,b: got %v, want %v", got.Id, want.Id)
	}
	if got := Find([]*entity.StudyMaterial{b, a}, docID, constant.MaterialTypeMindmap); got.Id != want.Id {
		t.Errorf("order b,a: got %v, want %v", got.Id, want.Id)
	}
}

func TestGroupByType(t *testing.T) {
	docID := uuid.New()
	now := time.Now()

	pool := []*entity.StudyMaterial{
		material(docID, constant.MaterialTypeSummary, now),
		material(docID, constant.MaterialTypeFlashcard, now),
		material(docID, constant.MaterialTypeFlashcard, now),
		material(docID, constant.MaterialTypeMindmap, now),
		material(docID, "unknown", now),
		nil,
	}

	g := GroupByType(pool)

	if len(g.Summaries) != 1 || len(g.Flashcards) != 2 || len(g.Mindmaps) != 1 {
		t.Errorf("unexpected grouping: %d/%d/%d", len(g.Summaries), len(g.Flashcards), len(g.Mindmaps))
	}
}

func TestHasMaterial(t *testing.T) {
	docID := uuid.New()
	pool := []*entity.StudyMaterial{
		material(docID, constant.MaterialTypeSummary, time.Now()),
	}

	if !HasMaterial(pool, docID, constant.MaterialTypeSummary) {
		t.Error("expected summary to be present")
	}
	if HasMaterial(pool, docID, constant.MaterialTypeMindmap) {
		t.Error("did not expect a mindmap")
	}
}
