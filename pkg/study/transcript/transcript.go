// Package transcript reduces a session's flat message log into question and
// answer turns for display. The log itself stays untouched; reduction is a
// read-side projection.
package transcript

import (
	"studysage-be/internal/constant"
	"studysage-be/internal/entity"
)

// Turn is one user question paired with the assistant answer that followed
// it. Sources carries the answer's citations, nil when there are none.
type Turn struct {
	Question string
	Answer   string
	Sources  []entity.Source
}

// Reduce walks the log two messages at a time and emits a Turn for every
// adjacent (user, assistant) pair. A trailing question still waiting for its
// answer is dropped, as is any pair whose roles do not line up; malformed
// history degrades to fewer turns, never to an error.
func Reduce(log []*entity.ChatMessage) []Turn {
	turns := make([]Turn, 0, len(log)/2)

	for i := 0; i+1 < len(log); i += 2 {
		q, a := log[i], log[i+1]
		if q == nil || a == nil {
			continue
		}
		if q.Role != constant.ChatMessageRoleUser || a.Role != constant.ChatMessageRoleAssistant {
			continue
		}
		turns = append(turns, Turn{
			Question: q.Content,
			Answer:   a.Content,
			Sources:  a.Sources,
		})
	}

	return turns
}
