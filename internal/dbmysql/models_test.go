package dbmysql

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm/logger"
)

func TestConversation_ParticipantHelpers(t *testing.T) {
	conv := &Conversation{
		ID: "conv-1",
		Participants: []Participant{
			{ConversationID: "conv-1", UserID: "u1", HasSeenLatestMessages: true},
			{ConversationID: "conv-1", UserID: "u2"},
		},
	}

	assert.Equal(t, []string{"u1", "u2"}, conv.ParticipantIDs())
	assert.True(t, conv.HasParticipant("u2"))
	assert.False(t, conv.HasParticipant("u3"))

	p, ok := conv.Participant("u1")
	assert.True(t, ok)
	assert.True(t, p.HasSeenLatestMessages)
}

func TestConversation_CloneDoesNotAlias(t *testing.T) {
	name := "project"
	latest := "msg-1"
	conv := &Conversation{
		ID:              "conv-1",
		Name:            &name,
		LatestMessageID: &latest,
		Participants:    []Participant{{ConversationID: "conv-1", UserID: "u1"}},
		LatestMessage:   &Message{ID: "msg-1", Body: "hi"},
	}

	clone := conv.Clone()
	clone.Participants[0].HasSeenLatestMessages = true
	*clone.Name = "renamed"
	clone.LatestMessage.Body = "changed"

	assert.False(t, conv.Participants[0].HasSeenLatestMessages)
	assert.Equal(t, "project", *conv.Name)
	assert.Equal(t, "hi", conv.LatestMessage.Body)
	assert.Nil(t, (*Conversation)(nil).Clone())
}

func TestLogLevel(t *testing.T) {
	assert.Equal(t, logger.Info, LogLevel("debug"))
	assert.Equal(t, logger.Error, LogLevel("ERROR"))
	assert.Equal(t, logger.Silent, LogLevel("silent"))
	assert.Equal(t, logger.Warn, LogLevel("info"))
}
