package repository

import (
	"context"

	"gigmarket/internal/dbmysql"
)

// ChatRepository is the persistence boundary of the messaging core: the
// conversation store, the message store and the per-participant read state.
// Every mutating method is a single atomic unit; authorization facts that
// depend on the current roster are checked inside that unit.
type ChatRepository interface {
	CreateConversation(ctx context.Context, conv *dbmysql.Conversation) error
	GetConversation(ctx context.Context, conversationID string) (*dbmysql.Conversation, error)
	ListConversations(ctx context.Context, userID string, limit, offset int) ([]*dbmysql.Conversation, int64, error)
	UpdateParticipants(ctx context.Context, conversationID, requesterID string, memberIDs []string) (*MembershipChange, error)
	DeleteConversation(ctx context.Context, conversationID, requesterID string) (*dbmysql.Conversation, error)

	// MarkRead reports whether the flag actually changed.
	MarkRead(ctx context.Context, conversationID, userID string) (bool, error)
	UnreadCount(ctx context.Context, userID string) (int64, error)

	AppendMessage(ctx context.Context, msg *dbmysql.Message) (*AppendResult, error)
	// ListMessages returns newest first; limit <= 0 means unbounded.
	ListMessages(ctx context.Context, conversationID string, limit, offset int) ([]*dbmysql.Message, error)
	DeleteMessage(ctx context.Context, messageID, requesterID string) (*DeletedMessage, error)
}
