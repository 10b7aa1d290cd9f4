package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"gigmarket/internal/common"
	"gigmarket/internal/config"
	"gigmarket/internal/dbmysql"
)

type chatRepo struct {
	db    *gorm.DB
	retry *retrier
}

func NewChatRepository(db *gorm.DB, cfg *config.Config) ChatRepository {
	return &chatRepo{
		db:    db,
		retry: newRetrier(cfg),
	}
}

func (r *chatRepo) CreateConversation(ctx context.Context, conv *dbmysql.Conversation) error {
	return r.retry.do(ctx, "create conversation", func(ctx context.Context) error {
		conv.Version = 1
		return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			if err := tx.Omit(clause.Associations).Create(conv).Error; err != nil {
				return err
			}
			return tx.Create(&conv.Participants).Error
		})
	})
}

func (r *chatRepo) GetConversation(ctx context.Context, conversationID string) (*dbmysql.Conversation, error) {
	var conv *dbmysql.Conversation
	err := r.retry.do(ctx, "get conversation", func(ctx context.Context) error {
		var err error
		conv, err = loadConversation(r.db.WithContext(ctx), conversationID, false)
		if err != nil {
			return err
		}
		return attachLatestMessages(r.db.WithContext(ctx), []*dbmysql.Conversation{conv})
	})
	return conv, err
}

func (r *chatRepo) ListConversations(ctx context.Context, userID string, limit, offset int) ([]*dbmysql.Conversation, int64, error) {
	var (
		convs []*dbmysql.Conversation
		total int64
	)
	err := r.retry.do(ctx, "list conversations", func(ctx context.Context) error {
		memberOf := func() *gorm.DB {
			return r.db.WithContext(ctx).Model(&dbmysql.Conversation{}).
				Joins("JOIN participants ON participants.conversation_id = conversations.id AND participants.user_id = ?", userID)
		}
		if err := memberOf().Count(&total).Error; err != nil {
			return err
		}

		q := memberOf().Preload("Participants").Order("conversations.updated_at DESC")
		if limit > 0 {
			q = q.Limit(limit).Offset(offset)
		}
		convs = nil
		if err := q.Find(&convs).Error; err != nil {
			return err
		}
		return attachLatestMessages(r.db.WithContext(ctx), convs)
	})
	return convs, total, err
}

func (r *chatRepo) UpdateParticipants(ctx context.Context, conversationID, requesterID string, memberIDs []string) (*MembershipChange, error) {
	var change *MembershipChange
	err := r.retry.do(ctx, "update participants", func(ctx context.Context) error {
		return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			conv, err := loadConversation(tx, conversationID, true)
			if err != nil {
				return err
			}
			if conv.CreatedByID != requesterID {
				return fmt.Errorf("%w: only the conversation creator can change participants", common.ErrForbidden)
			}

			added, removed := DiffMembers(conv.ParticipantIDs(), memberIDs)
			if len(removed) > 0 {
				if err := tx.Where("conversation_id = ? AND user_id IN ?", conversationID, removed).
					Delete(&dbmysql.Participant{}).Error; err != nil {
					return err
				}
			}
			if len(added) > 0 {
				rows := NewParticipants(conversationID, added, "")
				if err := tx.Create(&rows).Error; err != nil {
					return err
				}
			}
			if len(added)+len(removed) > 0 {
				now := time.Now().UTC()
				if err := tx.Model(&dbmysql.Conversation{}).Where("id = ?", conversationID).Updates(map[string]interface{}{
					"updated_at": now,
					"version":    conv.Version + 1,
				}).Error; err != nil {
					return err
				}
				conv.UpdatedAt = now
				conv.Version++
			}

			applyMembership(conv, added, removed)
			change = &MembershipChange{Conversation: conv, Added: added, Removed: removed}
			return nil
		})
	})
	return change, err
}

// DeleteConversation removes participants, then messages, then the
// conversation row, so no foreign reference is ever left dangling.
func (r *chatRepo) DeleteConversation(ctx context.Context, conversationID, requesterID string) (*dbmysql.Conversation, error) {
	var deleted *dbmysql.Conversation
	err := r.retry.do(ctx, "delete conversation", func(ctx context.Context) error {
		return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			conv, err := loadConversation(tx, conversationID, true)
			if err != nil {
				return err
			}
			if !conv.HasParticipant(requesterID) {
				return fmt.Errorf("%w: not a participant of this conversation", common.ErrForbidden)
			}

			if err := tx.Where("conversation_id = ?", conversationID).Delete(&dbmysql.Participant{}).Error; err != nil {
				return err
			}
			if err := tx.Where("conversation_id = ?", conversationID).Delete(&dbmysql.Message{}).Error; err != nil {
				return err
			}
			if err := tx.Where("id = ?", conversationID).Delete(&dbmysql.Conversation{}).Error; err != nil {
				return err
			}
			conv.Version++
			deleted = conv
			return nil
		})
	})
	return deleted, err
}

func (r *chatRepo) MarkRead(ctx context.Context, conversationID, userID string) (bool, error) {
	var changed bool
	err := r.retry.do(ctx, "mark read", func(ctx context.Context) error {
		return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			conv, err := loadConversation(tx, conversationID, true)
			if err != nil {
				return err
			}
			p, ok := conv.Participant(userID)
			if !ok {
				return fmt.Errorf("%w: not a participant of this conversation", common.ErrForbidden)
			}
			if p.HasSeenLatestMessages {
				changed = false
				return nil
			}
			changed = true
			return tx.Model(&dbmysql.Participant{}).
				Where("conversation_id = ? AND user_id = ?", conversationID, userID).
				Update("has_seen_latest_messages", true).Error
		})
	})
	return changed, err
}

func (r *chatRepo) UnreadCount(ctx context.Context, userID string) (int64, error) {
	var n int64
	err := r.retry.do(ctx, "unread count", func(ctx context.Context) error {
		return r.db.WithContext(ctx).Model(&dbmysql.Participant{}).
			Where("user_id = ? AND has_seen_latest_messages = ?", userID, false).
			Count(&n).Error
	})
	return n, err
}

// AppendMessage inserts the message, points the conversation at it and flips
// every read flag (sender true, everyone else false) in one transaction.
func (r *chatRepo) AppendMessage(ctx context.Context, msg *dbmysql.Message) (*AppendResult, error) {
	var result *AppendResult
	err := r.retry.do(ctx, "append message", func(ctx context.Context) error {
		return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			conv, err := loadConversation(tx, msg.ConversationID, true)
			if err != nil {
				return err
			}
			if !conv.HasParticipant(msg.SenderID) {
				return fmt.Errorf("%w: not a participant of this conversation", common.ErrForbidden)
			}

			var existing dbmysql.Message
			err = tx.Where("id = ?", msg.ID).Take(&existing).Error
			switch {
			case err == nil:
				if existing.SenderID != msg.SenderID || existing.ConversationID != msg.ConversationID {
					return fmt.Errorf("%w: message id already in use", common.ErrInvalidArgument)
				}
				result = &AppendResult{Conversation: conv, Message: &existing, Duplicate: true}
				return nil
			case !errors.Is(err, gorm.ErrRecordNotFound):
				return err
			}

			msg.Seq = conv.NextSeq + 1
			if err := tx.Create(msg).Error; err != nil {
				return err
			}
			if err := tx.Model(&dbmysql.Conversation{}).Where("id = ?", conv.ID).Updates(map[string]interface{}{
				"latest_message_id": msg.ID,
				"next_seq":          msg.Seq,
				"updated_at":        msg.CreatedAt,
				"version":           conv.Version + 1,
			}).Error; err != nil {
				return err
			}
			if err := tx.Model(&dbmysql.Participant{}).Where("conversation_id = ?", conv.ID).
				Update("has_seen_latest_messages", gorm.Expr("user_id = ?", msg.SenderID)).Error; err != nil {
				return err
			}

			conv.NextSeq = msg.Seq
			conv.UpdatedAt = msg.CreatedAt
			conv.Version++
			markSent(conv, msg)
			result = &AppendResult{Conversation: conv, Message: msg}
			return nil
		})
	})
	return result, err
}

func (r *chatRepo) ListMessages(ctx context.Context, conversationID string, limit, offset int) ([]*dbmysql.Message, error) {
	var messages []*dbmysql.Message
	err := r.retry.do(ctx, "list messages", func(ctx context.Context) error {
		q := r.db.WithContext(ctx).Where("conversation_id = ?", conversationID).Order("seq DESC")
		if limit > 0 {
			q = q.Limit(limit).Offset(offset)
		}
		messages = nil
		return q.Find(&messages).Error
	})
	return messages, err
}

func (r *chatRepo) DeleteMessage(ctx context.Context, messageID, requesterID string) (*DeletedMessage, error) {
	var deleted *DeletedMessage
	err := r.retry.do(ctx, "delete message", func(ctx context.Context) error {
		return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			var msg dbmysql.Message
			if err := tx.Where("id = ?", messageID).Take(&msg).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return fmt.Errorf("%w: message %s", common.ErrNotFound, messageID)
				}
				return err
			}
			if msg.SenderID != requesterID {
				return fmt.Errorf("%w: cannot delete someone else's message", common.ErrForbidden)
			}

			conv, err := loadConversation(tx, msg.ConversationID, true)
			if err != nil {
				return err
			}
			if err := tx.Where("id = ?", messageID).Delete(&dbmysql.Message{}).Error; err != nil {
				return err
			}
			deleted = &DeletedMessage{Message: &msg, ParticipantIDs: conv.ParticipantIDs(), Version: conv.Version}
			return nil
		})
	})
	return deleted, err
}

// loadConversation reads a conversation and its roster. With lock set the
// conversation row is held FOR UPDATE, which serializes every mutation of
// that conversation without touching unrelated ones.
func loadConversation(tx *gorm.DB, conversationID string, lock bool) (*dbmysql.Conversation, error) {
	q := tx
	if lock {
		q = q.Clauses(clause.Locking{Strength: "UPDATE"})
	}

	var conv dbmysql.Conversation
	if err := q.Where("id = ?", conversationID).Take(&conv).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: conversation %s", common.ErrNotFound, conversationID)
		}
		return nil, err
	}
	if err := tx.Where("conversation_id = ?", conversationID).Order("created_at").
		Find(&conv.Participants).Error; err != nil {
		return nil, err
	}
	return &conv, nil
}

func attachLatestMessages(db *gorm.DB, convs []*dbmysql.Conversation) error {
	ids := make([]string, 0, len(convs))
	for _, c := range convs {
		if c.LatestMessageID != nil {
			ids = append(ids, *c.LatestMessageID)
		}
	}
	if len(ids) == 0 {
		return nil
	}

	var latest []*dbmysql.Message
	if err := db.Where("id IN ?", ids).Find(&latest).Error; err != nil {
		return err
	}
	byID := make(map[string]*dbmysql.Message, len(latest))
	for _, m := range latest {
		byID[m.ID] = m
	}
	for _, c := range convs {
		if c.LatestMessageID != nil {
			c.LatestMessage = byID[*c.LatestMessageID]
		}
	}
	return nil
}
