package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"gigmarket/internal/chat/events"
	"gigmarket/internal/chat/repository"
	"gigmarket/internal/chat/service/mocks"
	"gigmarket/internal/common"
	"gigmarket/internal/config"
	"gigmarket/internal/dbmysql"
)

func testConfig() *config.Config {
	return &config.Config{Chat: config.ChatConfig{
		MaxParticipants:  5,
		MaxMessageLength: 20,
		DefaultPageSize:  2,
		MaxPageSize:      3,
	}}
}

func TestChatService_CreateConversation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockChatRepository(ctrl)
	mockPub := mocks.NewMockPublisher(ctrl)
	service := NewChatService(testConfig(), mockRepo, mockPub, nil)

	tests := []struct {
		name        string
		creator     string
		input       CreateConversationInput
		mockSetup   func()
		wantMembers []string
		wantErr     error
	}{
		{
			name:    "creator force-included and duplicates dropped",
			creator: "u1",
			input:   CreateConversationInput{MemberIDs: []string{"u2", " u2 ", "u3"}, Name: "  team "},
			mockSetup: func() {
				mockRepo.EXPECT().CreateConversation(gomock.Any(), gomock.Any()).Return(nil).Times(1)
				mockPub.EXPECT().Publish(gomock.AssignableToTypeOf(&events.ConversationCreated{})).Times(1)
			},
			wantMembers: []string{"u1", "u2", "u3"},
		},
		{
			name:    "explicit self-only conversation",
			creator: "u1",
			input:   CreateConversationInput{MemberIDs: []string{"u1"}},
			mockSetup: func() {
				mockRepo.EXPECT().CreateConversation(gomock.Any(), gomock.Any()).Return(nil).Times(1)
				mockPub.EXPECT().Publish(gomock.Any()).Times(1)
			},
			wantMembers: []string{"u1"},
		},
		{
			name:      "empty member list",
			creator:   "u1",
			input:     CreateConversationInput{MemberIDs: []string{" ", ""}},
			mockSetup: func() {},
			wantErr:   common.ErrInvalidArgument,
		},
		{
			name:      "too many participants",
			creator:   "u1",
			input:     CreateConversationInput{MemberIDs: []string{"a", "b", "c", "d", "e"}},
			mockSetup: func() {},
			wantErr:   common.ErrInvalidArgument,
		},
		{
			name:      "missing principal",
			creator:   "",
			input:     CreateConversationInput{MemberIDs: []string{"u2"}},
			mockSetup: func() {},
			wantErr:   common.ErrUnauthenticated,
		},
		{
			name:    "store failure is not published",
			creator: "u1",
			input:   CreateConversationInput{MemberIDs: []string{"u2"}},
			mockSetup: func() {
				mockRepo.EXPECT().CreateConversation(gomock.Any(), gomock.Any()).
					Return(common.ErrUnavailable).Times(1)
			},
			wantErr: common.ErrUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			conv, err := service.CreateConversation(context.Background(), tt.creator, tt.input)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, conv)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantMembers, conv.ParticipantIDs())
			assert.Equal(t, tt.creator, conv.CreatedByID)
			for _, p := range conv.Participants {
				assert.Equal(t, conv.ID, p.ConversationID)
				assert.Equal(t, p.UserID == tt.creator, p.HasSeenLatestMessages)
			}
			if tt.input.Name != "" {
				require.NotNil(t, conv.Name)
				assert.Equal(t, "team", *conv.Name)
			}
		})
	}
}

func TestChatService_SendMessage(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockChatRepository(ctrl)
	mockPub := mocks.NewMockPublisher(ctrl)
	mockAttachments := mocks.NewMockAttachmentChecker(ctrl)
	service := NewChatService(testConfig(), mockRepo, mockPub, mockAttachments)

	conv := &dbmysql.Conversation{
		ID:           "conv-123",
		CreatedByID:  "user-456",
		Participants: repository.NewParticipants("conv-123", []string{"user-456", "user-789"}, "user-456"),
	}
	clientID := uuid.NewString()

	tests := []struct {
		name      string
		input     SendMessageInput
		mockSetup func()
		wantErr   error
	}{
		{
			name:  "successful message send",
			input: SendMessageInput{ConversationID: "conv-123", MessageID: clientID, Body: "Hello, world!"},
			mockSetup: func() {
				mockRepo.EXPECT().
					AppendMessage(gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, msg *dbmysql.Message) (*repository.AppendResult, error) {
						assert.Equal(t, clientID, msg.ID)
						assert.Equal(t, "user-456", msg.SenderID)
						assert.WithinDuration(t, time.Now(), msg.CreatedAt, time.Second)
						return &repository.AppendResult{Conversation: conv, Message: msg}, nil
					}).
					Times(1)
				gomock.InOrder(
					mockPub.EXPECT().Publish(gomock.AssignableToTypeOf(&events.MessageSent{})).
						Do(func(ev events.Event) {
							assert.ElementsMatch(t, []string{"user-456", "user-789"}, ev.(*events.MessageSent).ParticipantIDs)
						}),
					mockPub.EXPECT().Publish(gomock.AssignableToTypeOf(&events.ConversationUpdated{})).
						Do(func(ev events.Event) {
							assert.Equal(t, "user-456", ev.(*events.ConversationUpdated).SenderID)
						}),
				)
			},
		},
		{
			name:  "duplicate resend publishes nothing",
			input: SendMessageInput{ConversationID: "conv-123", MessageID: clientID, Body: "Hello, world!"},
			mockSetup: func() {
				mockRepo.EXPECT().AppendMessage(gomock.Any(), gomock.Any()).
					Return(&repository.AppendResult{Conversation: conv, Message: &dbmysql.Message{ID: clientID}, Duplicate: true}, nil)
			},
		},
		{
			name:      "empty body without attachment",
			input:     SendMessageInput{ConversationID: "conv-123", Body: "   "},
			mockSetup: func() {},
			wantErr:   common.ErrInvalidArgument,
		},
		{
			name:      "body too long",
			input:     SendMessageInput{ConversationID: "conv-123", Body: strings.Repeat("x", 21)},
			mockSetup: func() {},
			wantErr:   common.ErrInvalidArgument,
		},
		{
			name:      "client id must be a uuid",
			input:     SendMessageInput{ConversationID: "conv-123", MessageID: "local-1", Body: "hi"},
			mockSetup: func() {},
			wantErr:   common.ErrInvalidArgument,
		},
		{
			name:      "braced uuid rejected",
			input:     SendMessageInput{ConversationID: "conv-123", MessageID: "{6ba7b810-9dad-11d1-80b4-00c04fd430c8}", Body: "hi"},
			mockSetup: func() {},
			wantErr:   common.ErrInvalidArgument,
		},
		{
			name:      "urn uuid rejected",
			input:     SendMessageInput{ConversationID: "conv-123", MessageID: "urn:uuid:6ba7b810-9dad-11d1-80b4-00c04fd430c8", Body: "hi"},
			mockSetup: func() {},
			wantErr:   common.ErrInvalidArgument,
		},
		{
			name:      "empty conversation ID",
			input:     SendMessageInput{Body: "hi"},
			mockSetup: func() {},
			wantErr:   common.ErrInvalidArgument,
		},
		{
			name:  "unknown attachment",
			input: SendMessageInput{ConversationID: "conv-123", AttachmentID: "64b7f0c2a1b2c3d4e5f60718"},
			mockSetup: func() {
				mockAttachments.EXPECT().Exists(gomock.Any(), "64b7f0c2a1b2c3d4e5f60718").Return(false, nil)
			},
			wantErr: common.ErrInvalidArgument,
		},
		{
			name:  "attachment lookup failure",
			input: SendMessageInput{ConversationID: "conv-123", AttachmentID: "64b7f0c2a1b2c3d4e5f60718"},
			mockSetup: func() {
				mockAttachments.EXPECT().Exists(gomock.Any(), gomock.Any()).Return(false, errors.New("mongo down"))
			},
			wantErr: common.ErrUnavailable,
		},
		{
			name:  "non participant",
			input: SendMessageInput{ConversationID: "conv-123", Body: "hi"},
			mockSetup: func() {
				mockRepo.EXPECT().AppendMessage(gomock.Any(), gomock.Any()).Return(nil, common.ErrForbidden)
			},
			wantErr: common.ErrForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			msg, err := service.SendMessage(context.Background(), "user-456", tt.input)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, msg)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, clientID, msg.ID)
		})
	}
}

func TestChatService_UpdateParticipantsWithoutChangePublishesNothing(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockChatRepository(ctrl)
	mockPub := mocks.NewMockPublisher(ctrl)
	service := NewChatService(testConfig(), mockRepo, mockPub, nil)

	conv := &dbmysql.Conversation{ID: "c1", CreatedByID: "u1"}
	mockRepo.EXPECT().UpdateParticipants(gomock.Any(), "c1", "u1", []string{"u1", "u2"}).
		Return(&repository.MembershipChange{Conversation: conv}, nil)

	got, err := service.UpdateParticipants(context.Background(), "u1", "c1", []string{"u2"})
	require.NoError(t, err)
	assert.Equal(t, conv, got)
}

func TestChatService_ListPaging(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockChatRepository(ctrl)
	service := NewChatService(testConfig(), mockRepo, mocks.NewMockPublisher(ctrl), nil)

	tests := []struct {
		name       string
		page       int
		pageSize   int
		wantLimit  int
		wantOffset int
	}{
		{"defaults", 0, 0, 2, 0},
		{"clamped to max", 2, 50, 3, 3},
		{"explicit", 3, 1, 1, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo.EXPECT().ListConversations(gomock.Any(), "u1", tt.wantLimit, tt.wantOffset).
				Return(nil, int64(7), nil)
			_, total, err := service.ListConversations(context.Background(), "u1", tt.page, tt.pageSize)
			require.NoError(t, err)
			assert.Equal(t, int64(7), total)
		})
	}
}

func TestChatService_ListMessagesRequiresParticipancy(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockChatRepository(ctrl)
	service := NewChatService(testConfig(), mockRepo, mocks.NewMockPublisher(ctrl), nil)

	conv := &dbmysql.Conversation{
		ID:           "c1",
		Participants: repository.NewParticipants("c1", []string{"u1"}, "u1"),
	}
	mockRepo.EXPECT().GetConversation(gomock.Any(), "c1").Return(conv, nil).Times(2)
	mockRepo.EXPECT().ListMessages(gomock.Any(), "c1", 0, 0).Return([]*dbmysql.Message{{ID: "m1"}}, nil)

	_, err := service.ListMessages(context.Background(), "u4", "c1", 0, 0)
	assert.ErrorIs(t, err, common.ErrForbidden)

	msgs, err := service.ListMessages(context.Background(), "u1", "c1", 0, 0)
	require.NoError(t, err)
	assert.Len(t, msgs, 1)
}
