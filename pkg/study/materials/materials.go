// Package materials selects and groups generated study artifacts. A document
// can accumulate several artifacts of the same type over time; readers only
// ever see the latest one per (document, type).
package materials

import (
	"studysage-be/internal/constant"
	"studysage-be/internal/entity"

	"github.com/google/uuid"
)

// Grouped holds materials partitioned by artifact type. Materials with an
// unknown type are dropped rather than surfaced.
type Grouped struct {
	Summaries  []*entity.StudyMaterial
	Flashcards []*entity.StudyMaterial
	Mindmaps   []*entity.StudyMaterial
}

// Find returns the newest material of the given type for the document, nil
// when none exists. Ties on CreatedAt resolve to the lexicographically
// greater Id so the result is stable across calls.
func Find(materials []*entity.StudyMaterial, documentID uuid.UUID, materialType string) *entity.StudyMaterial {
	var best *entity.StudyMaterial
	for _, m := range materials {
		if m == nil || m.DocumentId != documentID || m.Type != materialType {
			continue
		}
		if best == nil {
			best = m
			continue
		}
		if m.CreatedAt.After(best.CreatedAt) {
			best = m
		} else if m.CreatedAt.Equal(best.CreatedAt) && m.Id.String() > best.Id.String() {
			best = m
		}
	}
	return best
}

// HasMaterial reports whether the document already has an artifact of the
// given type.
func HasMaterial(materials []*entity.StudyMaterial, documentID uuid.UUID, materialType string) bool {
	return Find(materials, documentID, materialType) != nil
}

// GroupByType partitions materials into the three known artifact buckets,
// preserving input order within each bucket.
func GroupByType(materials []*entity.StudyMaterial) Grouped {
	var g Grouped
	for _, m := range materials {
		if m == nil {
			continue
		}
		switch m.Type {
		case constant.MaterialTypeSummary:
			g.Summaries = append(g.Summaries, m)
		case constant.MaterialTypeFlashcard:
			g.Flashcards = append(g.Flashcards, m)
		case constant.MaterialTypeMindmap:
			g.Mindmaps = append(g.Mindmaps, m)
		}
	}
	return g
}
