// Package handler exposes the chat service over gRPC (mutations, queries and
// server-push subscriptions) and over HTTP (read-only queries and markRead).
package handler

import (
	"context"
	"errors"
	"log"

	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/wrapperspb"

	pb "gigmarket/api/v1/chat"
	"gigmarket/internal/chat/broker"
	"gigmarket/internal/chat/events"
	"gigmarket/internal/chat/service"
	"gigmarket/internal/common"
)

// Subscriber registers authorized subscriptions; implemented by router.Router.
type Subscriber interface {
	Subscribe(ctx context.Context, userID string, kind events.Kind, conversationID string) (*broker.Subscription, error)
}

type ChatHandler struct {
	pb.UnimplementedChatServiceServer
	chatService service.ChatService
	subscriber  Subscriber
}

func NewChatHandler(chatService service.ChatService, subscriber Subscriber) *ChatHandler {
	return &ChatHandler{
		chatService: chatService,
		subscriber:  subscriber,
	}
}

func (h *ChatHandler) CreateConversation(ctx context.Context, req *pb.CreateConversationRequest) (*wrapperspb.StringValue, error) {
	userID, err := common.UserIDFromContext(ctx)
	if err != nil {
		return nil, common.ToStatus(err)
	}
	conv, err := h.chatService.CreateConversation(ctx, userID, service.CreateConversationInput{
		Name:      req.GetName(),
		MemberIDs: req.GetMemberIds(),
	})
	if err != nil {
		return nil, common.ToStatus(err)
	}
	return wrapperspb.String(conv.ID), nil
}

func (h *ChatHandler) UpdateParticipants(ctx context.Context, req *pb.UpdateParticipantsRequest) (*wrapperspb.BoolValue, error) {
	userID, err := common.UserIDFromContext(ctx)
	if err != nil {
		return nil, common.ToStatus(err)
	}
	if _, err := h.chatService.UpdateParticipants(ctx, userID, req.GetConversationId(), req.GetMemberIds()); err != nil {
		return nil, common.ToStatus(err)
	}
	return wrapperspb.Bool(true), nil
}

func (h *ChatHandler) DeleteConversation(ctx context.Context, req *pb.DeleteConversationRequest) (*wrapperspb.BoolValue, error) {
	userID, err := common.UserIDFromContext(ctx)
	if err != nil {
		return nil, common.ToStatus(err)
	}
	if err := h.chatService.DeleteConversation(ctx, userID, req.GetConversationId()); err != nil {
		return nil, common.ToStatus(err)
	}
	return wrapperspb.Bool(true), nil
}

func (h *ChatHandler) MarkRead(ctx context.Context, req *pb.MarkReadRequest) (*wrapperspb.BoolValue, error) {
	userID, err := common.UserIDFromContext(ctx)
	if err != nil {
		return nil, common.ToStatus(err)
	}
	if err := h.chatService.MarkRead(ctx, userID, req.GetConversationId()); err != nil {
		return nil, common.ToStatus(err)
	}
	return wrapperspb.Bool(true), nil
}

func (h *ChatHandler) SendMessage(ctx context.Context, req *pb.SendMessageRequest) (*pb.Message, error) {
	userID, err := common.UserIDFromContext(ctx)
	if err != nil {
		return nil, common.ToStatus(err)
	}
	msg, err := h.chatService.SendMessage(ctx, userID, service.SendMessageInput{
		ConversationID: req.GetConversationId(),
		MessageID:      req.GetMessageId(),
		Body:           req.GetBody(),
		AttachmentID:   req.GetAttachmentId(),
	})
	if err != nil {
		return nil, common.ToStatus(err)
	}
	return toPBMessage(msg), nil
}

func (h *ChatHandler) DeleteMessage(ctx context.Context, req *pb.DeleteMessageRequest) (*wrapperspb.BoolValue, error) {
	userID, err := common.UserIDFromContext(ctx)
	if err != nil {
		return nil, common.ToStatus(err)
	}
	if err := h.chatService.DeleteMessage(ctx, userID, req.GetMessageId()); err != nil {
		return nil, common.ToStatus(err)
	}
	return wrapperspb.Bool(true), nil
}

func (h *ChatHandler) ListConversations(ctx context.Context, req *pb.ListConversationsRequest) (*pb.ListConversationsResponse, error) {
	userID, err := common.UserIDFromContext(ctx)
	if err != nil {
		return nil, common.ToStatus(err)
	}
	convs, total, err := h.chatService.ListConversations(ctx, userID, int(req.GetPage()), int(req.GetPageSize()))
	if err != nil {
		return nil, common.ToStatus(err)
	}
	return &pb.ListConversationsResponse{
		Conversations: toPBConversations(convs),
		TotalCount:    total,
	}, nil
}

func (h *ChatHandler) GetConversation(ctx context.Context, req *pb.GetConversationRequest) (*pb.Conversation, error) {
	userID, err := common.UserIDFromContext(ctx)
	if err != nil {
		return nil, common.ToStatus(err)
	}
	conv, err := h.chatService.GetConversation(ctx, userID, req.GetConversationId())
	if err != nil {
		return nil, common.ToStatus(err)
	}
	return toPBConversation(conv), nil
}

func (h *ChatHandler) ListMessages(ctx context.Context, req *pb.ListMessagesRequest) (*pb.ListMessagesResponse, error) {
	userID, err := common.UserIDFromContext(ctx)
	if err != nil {
		return nil, common.ToStatus(err)
	}
	msgs, err := h.chatService.ListMessages(ctx, userID, req.GetConversationId(), int(req.GetLimit()), int(req.GetOffset()))
	if err != nil {
		return nil, common.ToStatus(err)
	}
	return &pb.ListMessagesResponse{Messages: toPBMessages(msgs)}, nil
}

func (h *ChatHandler) UnreadCount(ctx context.Context, _ *emptypb.Empty) (*wrapperspb.Int64Value, error) {
	userID, err := common.UserIDFromContext(ctx)
	if err != nil {
		return nil, common.ToStatus(err)
	}
	n, err := h.chatService.UnreadCount(ctx, userID)
	if err != nil {
		return nil, common.ToStatus(err)
	}
	return wrapperspb.Int64(n), nil
}

func (h *ChatHandler) OnConversationCreated(_ *emptypb.Empty, stream grpc.ServerStreamingServer[pb.ConversationEvent]) error {
	return h.streamConversations(events.KindConversationCreated, stream)
}

func (h *ChatHandler) OnConversationUpdated(_ *emptypb.Empty, stream grpc.ServerStreamingServer[pb.ConversationEvent]) error {
	return h.streamConversations(events.KindConversationUpdated, stream)
}

func (h *ChatHandler) OnConversationDeleted(_ *emptypb.Empty, stream grpc.ServerStreamingServer[pb.ConversationEvent]) error {
	return h.streamConversations(events.KindConversationDeleted, stream)
}

func (h *ChatHandler) OnMessageSent(req *pb.SubscribeMessagesRequest, stream grpc.ServerStreamingServer[pb.MessageEvent]) error {
	return h.streamMessages(events.KindMessageSent, req.GetConversationId(), stream)
}

func (h *ChatHandler) OnMessageDeleted(req *pb.SubscribeMessagesRequest, stream grpc.ServerStreamingServer[pb.MessageEvent]) error {
	return h.streamMessages(events.KindMessageDeleted, req.GetConversationId(), stream)
}

func (h *ChatHandler) streamConversations(kind events.Kind, stream grpc.ServerStreamingServer[pb.ConversationEvent]) error {
	return h.pump(stream, kind, "", func(w wireEvent) error {
		return stream.Send(w.conversation)
	})
}

func (h *ChatHandler) streamMessages(kind events.Kind, conversationID string, stream grpc.ServerStreamingServer[pb.MessageEvent]) error {
	return h.pump(stream, kind, conversationID, func(w wireEvent) error {
		return stream.Send(w.message)
	})
}

// pump registers the subscription and forwards admitted events until the
// client goes away or the subscription is closed server-side. A rejected
// subscribe returns before anything is registered.
func (h *ChatHandler) pump(ss grpc.ServerStream, kind events.Kind, conversationID string, send func(wireEvent) error) error {
	ctx := ss.Context()
	userID, err := common.UserIDFromContext(ctx)
	if err != nil {
		return common.ToStatus(err)
	}
	sub, err := h.subscriber.Subscribe(ctx, userID, kind, conversationID)
	if err != nil {
		return common.ToStatus(err)
	}
	defer sub.Close()

	// Headers go out once the subscription is registered, so a client
	// waiting on Header() knows no later event can be missed.
	if err := ss.SendHeader(metadata.Pairs(pb.SubscriptionHeader, sub.ID())); err != nil {
		return err
	}

	for {
		ev, err := sub.Next(ctx)
		switch {
		case err == nil:
		case errors.Is(err, broker.ErrClosed):
			log.Printf("Subscription %s for %s closed: %v", kind, userID, err)
			return common.ToStatus(err)
		default:
			return common.ToStatus(err)
		}

		if err := send(toWire(ev)); err != nil {
			log.Printf("Failed to push %s to %s: %v", ev.Kind(), userID, err)
			return err
		}
	}
}
