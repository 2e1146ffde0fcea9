// Package scope computes which documents an AI operation may read for a
// given study session. Scoping is additive: enabling global documents never
// hides a session's own documents.
package scope

import (
	"studysage-be/internal/entity"

	"github.com/google/uuid"
)

// Resolve returns the documents visible to the session: every document
// attached to it plus, when includeGlobal is set, the owner's global
// documents. Input order is preserved and no document appears twice, even
// when a global document is also attached to the session.
func Resolve(docs []*entity.Document, sessionID uuid.UUID, includeGlobal bool) []*entity.Document {
	resolved := make([]*entity.Document, 0, len(docs))
	seen := make(map[uuid.UUID]struct{}, len(docs))

	for _, d := range docs {
		if d == nil {
			continue
		}
		inSession := d.SessionId != nil && *d.SessionId == sessionID
		if !inSession && !(includeGlobal && d.IsGlobal) {
			continue
		}
		if _, dup := seen[d.Id]; dup {
			continue
		}
		seen[d.Id] = struct{}{}
		resolved = append(resolved, d)
	}

	return resolved
}

// IDs projects the resolved documents onto their identifiers, in order.
func IDs(docs []*entity.Document) []uuid.UUID {
	ids := make([]uuid.UUID, len(docs))
	for i, d := range docs {
		ids[i] = d.Id
	}
	return ids
}
