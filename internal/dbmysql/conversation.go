package dbmysql

import (
	"time"
)

// Conversation owns its participant roster. LatestMessageID is a plain
// back-reference and is not recomputed when that message is deleted.
// Version is bumped by every committed roster change, send and deletion
// while the row is locked.
type Conversation struct {
	ID              string    `gorm:"primaryKey;size:36" json:"id"`
	Name            *string   `gorm:"size:100" json:"name,omitempty"`
	CreatedByID     string    `gorm:"index;size:36;not null" json:"created_by_id"`
	LatestMessageID *string   `gorm:"size:36" json:"latest_message_id,omitempty"`
	NextSeq         uint64    `gorm:"not null" json:"-"`
	Version         uint64    `gorm:"not null;default:1" json:"version"`
	CreatedAt       time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	Participants  []Participant `gorm:"foreignKey:ConversationID" json:"participants,omitempty"`
	LatestMessage *Message      `gorm:"-" json:"latest_message,omitempty"`
}

// Participant is the join row between a conversation and a user identity and
// carries that user's private read state. The composite primary key enforces
// one row per (conversation, user).
type Participant struct {
	ConversationID        string    `gorm:"primaryKey;size:36" json:"conversation_id"`
	UserID                string    `gorm:"primaryKey;size:36;index" json:"user_id"`
	HasSeenLatestMessages bool      `gorm:"not null" json:"has_seen_latest_messages"`
	CreatedAt             time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (c *Conversation) ParticipantIDs() []string {
	ids := make([]string, 0, len(c.Participants))
	for _, p := range c.Participants {
		ids = append(ids, p.UserID)
	}
	return ids
}

func (c *Conversation) Participant(userID string) (*Participant, bool) {
	for i := range c.Participants {
		if c.Participants[i].UserID == userID {
			return &c.Participants[i], true
		}
	}
	return nil, false
}

func (c *Conversation) HasParticipant(userID string) bool {
	_, ok := c.Participant(userID)
	return ok
}

// Clone returns a deep copy so event payloads never alias store state.
func (c *Conversation) Clone() *Conversation {
	if c == nil {
		return nil
	}
	out := *c
	if c.Name != nil {
		name := *c.Name
		out.Name = &name
	}
	if c.LatestMessageID != nil {
		id := *c.LatestMessageID
		out.LatestMessageID = &id
	}
	out.Participants = append([]Participant(nil), c.Participants...)
	out.LatestMessage = c.LatestMessage.Clone()
	return &out
}
