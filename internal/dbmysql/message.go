package dbmysql

import (
	"time"
)

// Message is append-only; Seq is the per-conversation write order.
type Message struct {
	ID             string    `gorm:"primaryKey;size:36" json:"id"`
	ConversationID string    `gorm:"index:idx_messages_conversation_seq,priority:1;size:36;not null" json:"conversation_id"`
	Seq            uint64    `gorm:"index:idx_messages_conversation_seq,priority:2;not null" json:"seq"`
	SenderID       string    `gorm:"index;size:36;not null" json:"sender_id"`
	Body           string    `gorm:"type:text" json:"body"`
	AttachmentID   *string   `gorm:"size:64" json:"attachment_id,omitempty"`
	CreatedAt      time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (m *Message) Clone() *Message {
	if m == nil {
		return nil
	}
	out := *m
	if m.AttachmentID != nil {
		id := *m.AttachmentID
		out.AttachmentID = &id
	}
	return &out
}
