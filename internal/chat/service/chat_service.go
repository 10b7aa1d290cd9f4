package service

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"gigmarket/internal/chat/events"
	"gigmarket/internal/chat/repository"
	"gigmarket/internal/common"
	"gigmarket/internal/config"
	"gigmarket/internal/dbmysql"
)

const maxNameLength = 100

// Publisher receives every event after the mutation behind it has committed.
// Concurrent mutations of one conversation may publish out of commit order;
// events carry the committed conversation version so the publisher can tell.
type Publisher interface {
	Publish(ev events.Event)
}

// AttachmentChecker resolves opaque attachment references against the media store.
type AttachmentChecker interface {
	Exists(ctx context.Context, attachmentID string) (bool, error)
}

type CreateConversationInput struct {
	Name      string
	MemberIDs []string
}

// SendMessageInput carries an optional client-generated MessageID so an
// optimistic local entry and its confirmation share one id.
type SendMessageInput struct {
	ConversationID string
	MessageID      string
	Body           string
	AttachmentID   string
}

// ChatService defines the interface exposed to the handler layer. Every
// method takes the authenticated principal as its first argument after ctx.
type ChatService interface {
	CreateConversation(ctx context.Context, creatorID string, in CreateConversationInput) (*dbmysql.Conversation, error)
	UpdateParticipants(ctx context.Context, requesterID, conversationID string, memberIDs []string) (*dbmysql.Conversation, error)
	DeleteConversation(ctx context.Context, requesterID, conversationID string) error
	MarkRead(ctx context.Context, userID, conversationID string) error
	SendMessage(ctx context.Context, senderID string, in SendMessageInput) (*dbmysql.Message, error)
	DeleteMessage(ctx context.Context, requesterID, messageID string) error

	ListConversations(ctx context.Context, userID string, page, pageSize int) ([]*dbmysql.Conversation, int64, error)
	GetConversation(ctx context.Context, userID, conversationID string) (*dbmysql.Conversation, error)
	ListMessages(ctx context.Context, userID, conversationID string, limit, offset int) ([]*dbmysql.Message, error)
	UnreadCount(ctx context.Context, userID string) (int64, error)
}

type chatService struct {
	repo        repository.ChatRepository
	publisher   Publisher
	attachments AttachmentChecker
	limits      config.ChatConfig
}

// Constructor used in DI/wire. attachments may be nil, in which case
// attachment ids are carried without a lookup.
func NewChatService(cfg *config.Config, r repository.ChatRepository, p Publisher, attachments AttachmentChecker) ChatService {
	return &chatService{
		repo:        r,
		publisher:   p,
		attachments: attachments,
		limits:      cfg.Chat,
	}
}

func (s *chatService) CreateConversation(ctx context.Context, creatorID string, in CreateConversationInput) (*dbmysql.Conversation, error) {
	if err := requirePrincipal(creatorID); err != nil {
		return nil, err
	}
	members, err := s.memberList(creatorID, in.MemberIDs)
	if err != nil {
		return nil, err
	}

	id := uuid.NewString()
	conv := &dbmysql.Conversation{
		ID:           id,
		CreatedByID:  creatorID,
		Participants: repository.NewParticipants(id, members, creatorID),
	}
	if name := strings.TrimSpace(in.Name); name != "" {
		if utf8.RuneCountInString(name) > maxNameLength {
			return nil, fmt.Errorf("%w: name exceeds %d characters", common.ErrInvalidArgument, maxNameLength)
		}
		conv.Name = &name
	}

	if err := s.repo.CreateConversation(ctx, conv); err != nil {
		return nil, err
	}
	log.Printf("Conversation %s created by %s with %d participants", conv.ID, creatorID, len(members))

	s.publisher.Publish(&events.ConversationCreated{Conversation: conv.Clone()})
	return conv, nil
}

func (s *chatService) UpdateParticipants(ctx context.Context, requesterID, conversationID string, memberIDs []string) (*dbmysql.Conversation, error) {
	if err := requirePrincipal(requesterID); err != nil {
		return nil, err
	}
	if err := common.ValidateID("conversation_id", conversationID); err != nil {
		return nil, err
	}
	// Only the creator may get past the repository check, so forcing the
	// requester in keeps the creator on the roster.
	members, err := s.memberList(requesterID, memberIDs)
	if err != nil {
		return nil, err
	}

	change, err := s.repo.UpdateParticipants(ctx, conversationID, requesterID, members)
	if err != nil {
		return nil, err
	}
	if len(change.Added)+len(change.Removed) == 0 {
		return change.Conversation, nil
	}
	log.Printf("Conversation %s participants changed: +%v -%v", conversationID, change.Added, change.Removed)

	s.publisher.Publish(&events.ConversationUpdated{
		Conversation:   change.Conversation.Clone(),
		AddedUserIDs:   change.Added,
		RemovedUserIDs: change.Removed,
	})
	return change.Conversation, nil
}

func (s *chatService) DeleteConversation(ctx context.Context, requesterID, conversationID string) error {
	if err := requirePrincipal(requesterID); err != nil {
		return err
	}
	if err := common.ValidateID("conversation_id", conversationID); err != nil {
		return err
	}

	deleted, err := s.repo.DeleteConversation(ctx, conversationID, requesterID)
	if err != nil {
		return err
	}
	log.Printf("Conversation %s deleted by %s", conversationID, requesterID)

	s.publisher.Publish(&events.ConversationDeleted{
		Conversation:   deleted,
		ParticipantIDs: deleted.ParticipantIDs(),
	})
	return nil
}

// MarkRead is idempotent: marking an already read conversation succeeds
// without touching state.
func (s *chatService) MarkRead(ctx context.Context, userID, conversationID string) error {
	if err := requirePrincipal(userID); err != nil {
		return err
	}
	if err := common.ValidateID("conversation_id", conversationID); err != nil {
		return err
	}
	_, err := s.repo.MarkRead(ctx, conversationID, userID)
	return err
}

// SendMessage publishes MessageSent before ConversationUpdated so a preview
// never references a message subscribers have not seen yet. A resend with an
// id this sender already stored returns the stored message and publishes
// nothing.
func (s *chatService) SendMessage(ctx context.Context, senderID string, in SendMessageInput) (*dbmysql.Message, error) {
	if err := requirePrincipal(senderID); err != nil {
		return nil, err
	}
	if err := common.ValidateID("conversation_id", in.ConversationID); err != nil {
		return nil, err
	}
	if err := common.ValidateClientMessageID(in.MessageID); err != nil {
		return nil, err
	}
	if strings.TrimSpace(in.Body) == "" && in.AttachmentID == "" {
		return nil, fmt.Errorf("%w: message needs a body or an attachment", common.ErrInvalidArgument)
	}
	if maxLen := s.limits.MaxMessageLength; maxLen > 0 && utf8.RuneCountInString(in.Body) > maxLen {
		return nil, fmt.Errorf("%w: message exceeds %d characters", common.ErrInvalidArgument, maxLen)
	}

	msg := &dbmysql.Message{
		ID:             in.MessageID,
		ConversationID: in.ConversationID,
		SenderID:       senderID,
		Body:           in.Body,
		CreatedAt:      time.Now().UTC(),
	}
	if msg.ID == "" {
		msg.ID = uuid.NewString()
	}
	if in.AttachmentID != "" {
		if err := s.checkAttachment(ctx, in.AttachmentID); err != nil {
			return nil, err
		}
		attachmentID := in.AttachmentID
		msg.AttachmentID = &attachmentID
	}

	result, err := s.repo.AppendMessage(ctx, msg)
	if err != nil {
		return nil, err
	}
	if result.Duplicate {
		return result.Message, nil
	}

	s.publisher.Publish(&events.MessageSent{
		Message:        result.Message.Clone(),
		ParticipantIDs: result.Conversation.ParticipantIDs(),
		ConvVersion:    result.Conversation.Version,
	})
	s.publisher.Publish(&events.ConversationUpdated{
		Conversation: result.Conversation.Clone(),
		SenderID:     senderID,
	})
	return result.Message, nil
}

func (s *chatService) DeleteMessage(ctx context.Context, requesterID, messageID string) error {
	if err := requirePrincipal(requesterID); err != nil {
		return err
	}
	if err := common.ValidateID("message_id", messageID); err != nil {
		return err
	}

	deleted, err := s.repo.DeleteMessage(ctx, messageID, requesterID)
	if err != nil {
		return err
	}
	s.publisher.Publish(&events.MessageDeleted{
		Message:        deleted.Message,
		ParticipantIDs: deleted.ParticipantIDs,
		ConvVersion:    deleted.Version,
	})
	return nil
}

func (s *chatService) ListConversations(ctx context.Context, userID string, page, pageSize int) ([]*dbmysql.Conversation, int64, error) {
	if err := requirePrincipal(userID); err != nil {
		return nil, 0, err
	}
	if page < 1 {
		page = 1
	}
	pageSize = s.clampPageSize(pageSize)
	return s.repo.ListConversations(ctx, userID, pageSize, (page-1)*pageSize)
}

func (s *chatService) GetConversation(ctx context.Context, userID, conversationID string) (*dbmysql.Conversation, error) {
	if err := requirePrincipal(userID); err != nil {
		return nil, err
	}
	if err := common.ValidateID("conversation_id", conversationID); err != nil {
		return nil, err
	}

	conv, err := s.repo.GetConversation(ctx, conversationID)
	if err != nil {
		return nil, err
	}
	if !conv.HasParticipant(userID) {
		return nil, fmt.Errorf("%w: not a participant of this conversation", common.ErrForbidden)
	}
	return conv, nil
}

// ListMessages returns newest first. A non-positive limit returns everything.
func (s *chatService) ListMessages(ctx context.Context, userID, conversationID string, limit, offset int) ([]*dbmysql.Message, error) {
	if _, err := s.GetConversation(ctx, userID, conversationID); err != nil {
		return nil, err
	}
	if maxSize := s.limits.MaxPageSize; maxSize > 0 && limit > maxSize {
		limit = maxSize
	}
	if offset < 0 {
		offset = 0
	}
	return s.repo.ListMessages(ctx, conversationID, limit, offset)
}

func (s *chatService) UnreadCount(ctx context.Context, userID string) (int64, error) {
	if err := requirePrincipal(userID); err != nil {
		return 0, err
	}
	return s.repo.UnreadCount(ctx, userID)
}

// memberList normalizes ids and force-includes owner. An empty request is
// rejected rather than silently producing a self-only conversation.
func (s *chatService) memberList(ownerID string, memberIDs []string) ([]string, error) {
	members := common.NormalizeIDs(memberIDs)
	if len(members) == 0 {
		return nil, fmt.Errorf("%w: member list is empty", common.ErrInvalidArgument)
	}
	for _, id := range members {
		if err := common.ValidateID("member_id", id); err != nil {
			return nil, err
		}
	}
	if !events.Contains(members, ownerID) {
		members = append([]string{ownerID}, members...)
	}
	if maxMembers := s.limits.MaxParticipants; maxMembers > 0 && len(members) > maxMembers {
		return nil, fmt.Errorf("%w: at most %d participants allowed", common.ErrInvalidArgument, maxMembers)
	}
	return members, nil
}

func (s *chatService) clampPageSize(pageSize int) int {
	if pageSize <= 0 {
		pageSize = s.limits.DefaultPageSize
	}
	if maxSize := s.limits.MaxPageSize; maxSize > 0 && pageSize > maxSize {
		pageSize = maxSize
	}
	if pageSize <= 0 {
		pageSize = 20
	}
	return pageSize
}

func (s *chatService) checkAttachment(ctx context.Context, attachmentID string) error {
	if err := common.ValidateID("attachment_id", attachmentID); err != nil {
		return err
	}
	if s.attachments == nil {
		return nil
	}
	ok, err := s.attachments.Exists(ctx, attachmentID)
	if err != nil {
		return fmt.Errorf("%w: attachment lookup failed: %v", common.ErrUnavailable, err)
	}
	if !ok {
		return fmt.Errorf("%w: unknown attachment %s", common.ErrInvalidArgument, attachmentID)
	}
	return nil
}

func requirePrincipal(userID string) error {
	if userID == "" {
		return fmt.Errorf("%w: no authenticated principal", common.ErrUnauthenticated)
	}
	return nil
}
