package events

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"gigmarket/internal/dbmysql"
)

type kindRecorder struct{ seen []Kind }

func (r *kindRecorder) VisitConversationCreated(e *ConversationCreated) bool {
	r.seen = append(r.seen, e.Kind())
	return true
}
func (r *kindRecorder) VisitConversationUpdated(e *ConversationUpdated) bool {
	r.seen = append(r.seen, e.Kind())
	return true
}
func (r *kindRecorder) VisitConversationDeleted(e *ConversationDeleted) bool {
	r.seen = append(r.seen, e.Kind())
	return true
}
func (r *kindRecorder) VisitMessageSent(e *MessageSent) bool {
	r.seen = append(r.seen, e.Kind())
	return true
}
func (r *kindRecorder) VisitMessageDeleted(e *MessageDeleted) bool {
	r.seen = append(r.seen, e.Kind())
	return true
}

func TestEvents_DispatchToMatchingVisit(t *testing.T) {
	conv := &dbmysql.Conversation{ID: "conv-1", Version: 3}
	msg := &dbmysql.Message{ID: "m1", ConversationID: "conv-1"}
	all := []Event{
		&ConversationCreated{Conversation: conv},
		&ConversationUpdated{Conversation: conv},
		&ConversationDeleted{Conversation: conv},
		&MessageSent{Message: msg, ConvVersion: 3},
		&MessageDeleted{Message: msg, ConvVersion: 3},
	}

	r := &kindRecorder{}
	for _, ev := range all {
		assert.True(t, ev.Accept(r))
		assert.Equal(t, "conv-1", ev.ConversationID())
		assert.Equal(t, uint64(3), ev.Version())
	}
	assert.Equal(t, Kinds, r.seen)
}

func TestContains(t *testing.T) {
	assert.True(t, Contains([]string{"a", "b"}, "b"))
	assert.False(t, Contains(nil, "a"))
}
