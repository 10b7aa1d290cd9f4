package repository

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"gigmarket/internal/common"
	"gigmarket/internal/dbmysql"
)

// memoryRepo is the "memory" storage driver used for local runs and
// end-to-end tests. Each method holds the lock for its whole body, which gives
// the same all-or-nothing behaviour as a MySQL transaction.
type memoryRepo struct {
	mu            sync.RWMutex
	conversations map[string]*dbmysql.Conversation
	messages      map[string][]*dbmysql.Message // conversation id -> ascending seq
	messageIndex  map[string]*dbmysql.Message
}

func NewMemoryRepository() ChatRepository {
	return &memoryRepo{
		conversations: make(map[string]*dbmysql.Conversation),
		messages:      make(map[string][]*dbmysql.Message),
		messageIndex:  make(map[string]*dbmysql.Message),
	}
}

func (r *memoryRepo) CreateConversation(ctx context.Context, conv *dbmysql.Conversation) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.conversations[conv.ID]; exists {
		return fmt.Errorf("%w: conversation %s already exists", common.ErrInvalidArgument, conv.ID)
	}
	now := time.Now().UTC()
	if conv.CreatedAt.IsZero() {
		conv.CreatedAt = now
	}
	conv.UpdatedAt = conv.CreatedAt
	conv.Version = 1
	for i := range conv.Participants {
		conv.Participants[i].CreatedAt = now
	}
	r.conversations[conv.ID] = conv.Clone()
	return nil
}

func (r *memoryRepo) GetConversation(ctx context.Context, conversationID string) (*dbmysql.Conversation, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	conv, err := r.conversation(conversationID)
	if err != nil {
		return nil, err
	}
	return r.withLatest(conv), nil
}

func (r *memoryRepo) ListConversations(ctx context.Context, userID string, limit, offset int) ([]*dbmysql.Conversation, int64, error) {
	if err := ctx.Err(); err != nil {
		return nil, 0, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	var mine []*dbmysql.Conversation
	for _, conv := range r.conversations {
		if conv.HasParticipant(userID) {
			mine = append(mine, conv)
		}
	}
	sort.Slice(mine, func(i, j int) bool {
		if mine[i].UpdatedAt.Equal(mine[j].UpdatedAt) {
			return mine[i].ID < mine[j].ID
		}
		return mine[i].UpdatedAt.After(mine[j].UpdatedAt)
	})

	total := int64(len(mine))
	page := paginate(len(mine), limit, offset)
	out := make([]*dbmysql.Conversation, 0, page.end-page.start)
	for _, conv := range mine[page.start:page.end] {
		out = append(out, r.withLatest(conv))
	}
	return out, total, nil
}

func (r *memoryRepo) UpdateParticipants(ctx context.Context, conversationID, requesterID string, memberIDs []string) (*MembershipChange, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	conv, err := r.conversation(conversationID)
	if err != nil {
		return nil, err
	}
	if conv.CreatedByID != requesterID {
		return nil, fmt.Errorf("%w: only the conversation creator can change participants", common.ErrForbidden)
	}

	added, removed := DiffMembers(conv.ParticipantIDs(), memberIDs)
	if len(added)+len(removed) > 0 {
		applyMembership(conv, added, removed)
		now := time.Now().UTC()
		for i := range conv.Participants {
			if conv.Participants[i].CreatedAt.IsZero() {
				conv.Participants[i].CreatedAt = now
			}
		}
		conv.UpdatedAt = now
		conv.Version++
	}
	return &MembershipChange{Conversation: r.withLatest(conv), Added: added, Removed: removed}, nil
}

func (r *memoryRepo) DeleteConversation(ctx context.Context, conversationID, requesterID string) (*dbmysql.Conversation, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	conv, err := r.conversation(conversationID)
	if err != nil {
		return nil, err
	}
	if !conv.HasParticipant(requesterID) {
		return nil, fmt.Errorf("%w: not a participant of this conversation", common.ErrForbidden)
	}

	conv.Version++
	deleted := conv.Clone()
	for _, m := range r.messages[conversationID] {
		delete(r.messageIndex, m.ID)
	}
	delete(r.messages, conversationID)
	delete(r.conversations, conversationID)
	return deleted, nil
}

func (r *memoryRepo) MarkRead(ctx context.Context, conversationID, userID string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	conv, err := r.conversation(conversationID)
	if err != nil {
		return false, err
	}
	p, ok := conv.Participant(userID)
	if !ok {
		return false, fmt.Errorf("%w: not a participant of this conversation", common.ErrForbidden)
	}
	if p.HasSeenLatestMessages {
		return false, nil
	}
	p.HasSeenLatestMessages = true
	return true, nil
}

func (r *memoryRepo) UnreadCount(ctx context.Context, userID string) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	var n int64
	for _, conv := range r.conversations {
		if p, ok := conv.Participant(userID); ok && !p.HasSeenLatestMessages {
			n++
		}
	}
	return n, nil
}

func (r *memoryRepo) AppendMessage(ctx context.Context, msg *dbmysql.Message) (*AppendResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	conv, err := r.conversation(msg.ConversationID)
	if err != nil {
		return nil, err
	}
	if !conv.HasParticipant(msg.SenderID) {
		return nil, fmt.Errorf("%w: not a participant of this conversation", common.ErrForbidden)
	}
	if existing, ok := r.messageIndex[msg.ID]; ok {
		if existing.SenderID != msg.SenderID || existing.ConversationID != msg.ConversationID {
			return nil, fmt.Errorf("%w: message id already in use", common.ErrInvalidArgument)
		}
		return &AppendResult{Conversation: r.withLatest(conv), Message: existing.Clone(), Duplicate: true}, nil
	}

	if msg.CreatedAt.IsZero() {
		msg.CreatedAt = time.Now().UTC()
	}
	conv.NextSeq++
	msg.Seq = conv.NextSeq
	stored := msg.Clone()
	r.messages[conv.ID] = append(r.messages[conv.ID], stored)
	r.messageIndex[stored.ID] = stored

	markSent(conv, stored)
	conv.LatestMessage = nil
	conv.UpdatedAt = msg.CreatedAt
	conv.Version++
	return &AppendResult{Conversation: r.withLatest(conv), Message: stored.Clone()}, nil
}

func (r *memoryRepo) ListMessages(ctx context.Context, conversationID string, limit, offset int) ([]*dbmysql.Message, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	stored := r.messages[conversationID]
	page := paginate(len(stored), limit, offset)
	out := make([]*dbmysql.Message, 0, page.end-page.start)
	for i := page.start; i < page.end; i++ {
		out = append(out, stored[len(stored)-1-i].Clone())
	}
	return out, nil
}

func (r *memoryRepo) DeleteMessage(ctx context.Context, messageID, requesterID string) (*DeletedMessage, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	msg, ok := r.messageIndex[messageID]
	if !ok {
		return nil, fmt.Errorf("%w: message %s", common.ErrNotFound, messageID)
	}
	if msg.SenderID != requesterID {
		return nil, fmt.Errorf("%w: cannot delete someone else's message", common.ErrForbidden)
	}

	conv := r.conversations[msg.ConversationID]
	stored := r.messages[msg.ConversationID]
	for i, m := range stored {
		if m.ID == messageID {
			r.messages[msg.ConversationID] = append(stored[:i], stored[i+1:]...)
			break
		}
	}
	delete(r.messageIndex, messageID)
	return &DeletedMessage{Message: msg.Clone(), ParticipantIDs: conv.ParticipantIDs(), Version: conv.Version}, nil
}

func (r *memoryRepo) conversation(id string) (*dbmysql.Conversation, error) {
	conv, ok := r.conversations[id]
	if !ok {
		return nil, fmt.Errorf("%w: conversation %s", common.ErrNotFound, id)
	}
	return conv, nil
}

// withLatest clones conv and resolves its latest message. A deleted latest
// message resolves to nil while the id stays in place.
func (r *memoryRepo) withLatest(conv *dbmysql.Conversation) *dbmysql.Conversation {
	out := conv.Clone()
	if out.LatestMessageID != nil {
		if m, ok := r.messageIndex[*out.LatestMessageID]; ok {
			out.LatestMessage = m.Clone()
		}
	}
	return out
}

type window struct{ start, end int }

// paginate mirrors the SQL driver: a non-positive limit means the whole set
// and offset is ignored.
func paginate(n, limit, offset int) window {
	if limit <= 0 {
		return window{start: 0, end: n}
	}
	if offset < 0 {
		offset = 0
	}
	if offset > n {
		offset = n
	}
	end := n
	if offset+limit < n {
		end = offset + limit
	}
	return window{start: offset, end: end}
}
