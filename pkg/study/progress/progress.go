// Package progress models the per-user study checklist over generated
// materials. Absence of a key means not completed; the two states are
// indistinguishable to readers, which keeps toggling idempotent-safe.
package progress

// Checklist maps material ids to completion. The zero map is a valid empty
// checklist for reads, but call New before writing.
type Checklist map[string]bool

func New() Checklist {
	return make(Checklist)
}

// Toggle flips the completion state of one material and returns the new
// state.
func (c Checklist) Toggle(materialID string) bool {
	next := !c[materialID]
	c[materialID] = next
	return next
}

// IsComplete reports the completion state; unknown ids read as false.
func (c Checklist) IsComplete(materialID string) bool {
	return c[materialID]
}

// CompletionRatio returns completed/total over the given material set. An
// empty set is 0, not NaN. Materials absent from the checklist count as
// incomplete.
func CompletionRatio(c Checklist, materialIDs []string) float64 {
	if len(materialIDs) == 0 {
		return 0
	}
	done := 0
	for _, id := range materialIDs {
		if c[id] {
			done++
		}
	}
	return float64(done) / float64(len(materialIDs))
}
