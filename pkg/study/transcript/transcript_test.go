package transcript

import (
	"testing"

	"studysage-be/internal/constant"
	"studysage-be/internal/entity"
)

func msg(role, content string) *entity.ChatMessage {
	return &entity.ChatMessage{Role: role, Content: content}
}

func TestReducePairsMessages(t *testing.T) {
	log := []*entity.ChatMessage{
		msg(constant.ChatMessageRoleUser, "q1"),
		msg(constant.ChatMessageRoleAssistant, "a1"),
		msg(constant.ChatMessageRoleUser, "q2"),
		msg(constant.ChatMessageRoleAssistant, "a2"),
	}

	turns := Reduce(log)

	if len(turns) != 2 {
		t.Fatalf("expected 2 turns, got %d", len(turns))
	}
	if turns[0].Question != "q1" || turns[0].Answer != "a1" {
		t.Errorf("turn 0 mismatch: %+v", turns[0])
	}
	if turns[1].Question != "q2" || turns[1].Answer != "a2" {
		t.Errorf("turn 1 mismatch: %+v", turns[1])
	}
}

func TestReduceDropsTrailingQuestion(t *testing.T) {
	log := []*entity.ChatMessage{
		msg(constant.ChatMessageRoleUser, "q1"),
		msg(constant.ChatMessageRoleAssistant, "a1"),
		msg(constant.ChatMessageRoleUser, "pending"),
	}

	turns := Reduce(log)

	if len(turns) != 1 {
		t.Fatalf("expected 1 turn, got %d", len(turns))
	}
}

func TestReduceSkipsMismatchedPairs(t *testing.T) {
	tests := []struct {
		name string
		log  []*entity.ChatMessage
		want int
	}{
		{
			name: "two user messages in a row",
			log: []*entity.ChatMessage{
				msg(constant.ChatMessageRoleUser, "q1"),
				msg(constant.ChatMessageRoleUser, "q2"),
			},
			want: 0,
		},
		{
			name: "assistant first",
			log: []*entity.ChatMessage{
				msg(constant.ChatMessageRoleAssistant, "a?"),
				msg(constant.ChatMessageRoleUser, "q1"),
				msg(constant.ChatMessageRoleUser, "q2"),
				msg(constant.ChatMessageRoleAssistant, "a2"),
			},
			want: 1,
		},
		{
			name: "empty log",
			log:  nil,
			want: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Reduce(tt.log); len(got) != tt.want {
				t.Errorf("got %d turns, want %d", len(got), tt.want)
			}
		})
	}
}

func TestReduceCarriesSources(t *testing.T) {
	page := 3
	answer := msg(constant.ChatMessageRoleAssistant, "a1")
	answer.Sources = []entity.Source{{Filename: "notes.pdf", Page: &page}}

	turns := Reduce([]*entity.ChatMessage{
		msg(constant.ChatMessageRoleUser, "q1"),
		answer,
	})

	if len(turns) != 1 {
		t.Fatalf("expected 1 turn, got %d", len(turns))
	}
	if len(turns[0].Sources) != 1 || turns[0].Sources[0].Filename != "notes.pdf" {
		t.Errorf("sources not carried: %+v", turns[0].Sources)
	}
}

func TestReduceTurnCountProperty(t *testing.T) {
	// 2k well-formed messages reduce to k turns; 2k+1 also reduce to k.
	for k := 0; k < 5; k++ {
		var log []*entity.ChatMessage
		for i := 0; i < k; i++ {
			log = append(log,
				msg(constant.ChatMessageRoleUser, "q"),
				msg(constant.ChatMessageRoleAssistant, "a"))
		}
		if got := len(Reduce(log)); got != k {
			t.Errorf("even log of %d messages: got %d turns, want %d", len(log), got, k)
		}
		odd := append(append([]*entity.ChatMessage{}, log...), msg(constant.ChatMessageRoleUser, "tail"))
		if got := len(Reduce(odd)); got != k {
			t.Errorf("odd log of %d messages: got %d turns, want %d", len(odd), got, k)
		}
	}
}
