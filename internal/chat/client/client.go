// Package client is a Go client of chat.v1.ChatService that keeps a
// reconcile.View current from mutation replies and pushed events.
package client

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/sethvargo/go-retry"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"

	pb "gigmarket/api/v1/chat"
	"gigmarket/internal/chat/reconcile"
)

type Client struct {
	conn  *grpc.ClientConn
	rpc   pb.ChatServiceClient
	token string
	view  *reconcile.View
}

// Dial connects to addr as userID, authenticating every call with token.
func Dial(addr, userID, token string, opts ...grpc.DialOption) (*Client, error) {
	opts = append([]grpc.DialOption{grpc.WithTransportCredentials(insecure.NewCredentials())}, opts...)
	conn, err := grpc.NewClient(addr, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to chat service: %w", err)
	}
	c := New(conn, userID, token)
	c.conn = conn
	return c, nil
}

// New wraps an existing connection. Close is a no-op for such clients.
func New(cc grpc.ClientConnInterface, userID, token string) *Client {
	return &Client{
		rpc:   pb.NewChatServiceClient(cc),
		token: token,
		view:  reconcile.NewView(userID),
	}
}

func (c *Client) Close() error {
	if c.conn == nil {
		return nil
	}
	return c.conn.Close()
}

func (c *Client) View() *reconcile.View {
	return c.view
}

func (c *Client) authed(ctx context.Context) context.Context {
	return metadata.AppendToOutgoingContext(ctx, "authorization", "Bearer "+c.token)
}

// Refresh reloads the conversation list. Call it after every reconnect
// before resubscribing, since the server keeps no backlog.
func (c *Client) Refresh(ctx context.Context) error {
	var all []*pb.Conversation
	for page := int32(1); ; page++ {
		resp, err := c.rpc.ListConversations(c.authed(ctx), &pb.ListConversationsRequest{Page: page})
		if err != nil {
			return err
		}
		all = append(all, resp.GetConversations()...)
		if len(resp.GetConversations()) == 0 || int64(len(all)) >= resp.GetTotalCount() {
			break
		}
	}
	c.view.LoadConversations(all)
	return nil
}

// Open loads the history of conversationID and makes it the active one.
func (c *Client) Open(ctx context.Context, conversationID string) error {
	resp, err := c.rpc.ListMessages(c.authed(ctx), &pb.ListMessagesRequest{ConversationId: conversationID})
	if err != nil {
		return err
	}
	c.view.Open(conversationID, resp.GetMessages())
	return nil
}

func (c *Client) CreateConversation(ctx context.Context, name string, memberIDs []string) (string, error) {
	id, err := c.rpc.CreateConversation(c.authed(ctx), &pb.CreateConversationRequest{Name: name, MemberIds: memberIDs})
	if err != nil {
		return "", err
	}
	return id.GetValue(), nil
}

func (c *Client) UpdateParticipants(ctx context.Context, conversationID string, memberIDs []string) error {
	_, err := c.rpc.UpdateParticipants(c.authed(ctx), &pb.UpdateParticipantsRequest{
		ConversationId: conversationID,
		MemberIds:      memberIDs,
	})
	return err
}

func (c *Client) DeleteConversation(ctx context.Context, conversationID string) error {
	_, err := c.rpc.DeleteConversation(c.authed(ctx), &pb.DeleteConversationRequest{ConversationId: conversationID})
	return err
}

// Send inserts an optimistic entry and sends it under the same id. On failure
// the entry is marked failed and the error is returned.
func (c *Client) Send(ctx context.Context, conversationID, body, attachmentID string) (*pb.Message, error) {
	pending := c.view.AddPending(conversationID, body, attachmentID)
	return c.send(ctx, pending)
}

// Resend retries a failed entry under its original id.
func (c *Client) Resend(ctx context.Context, messageID string) (*pb.Message, error) {
	pending, ok := c.view.Retry(messageID)
	if !ok {
		return nil, fmt.Errorf("message %s is not a failed send", messageID)
	}
	return c.send(ctx, pending)
}

func (c *Client) send(ctx context.Context, pending *pb.Message) (*pb.Message, error) {
	msg, err := c.rpc.SendMessage(c.authed(ctx), &pb.SendMessageRequest{
		ConversationId: pending.GetConversationId(),
		MessageId:      pending.GetId(),
		Body:           pending.GetBody(),
		AttachmentId:   pending.GetAttachmentId(),
	})
	if err != nil {
		c.view.Fail(pending.GetId(), err)
		return nil, err
	}
	c.view.Confirm(msg)
	return msg, nil
}

func (c *Client) DeleteMessage(ctx context.Context, messageID string) error {
	_, err := c.rpc.DeleteMessage(c.authed(ctx), &pb.DeleteMessageRequest{MessageId: messageID})
	return err
}

// MarkRead flips the local flag first, then tells the server. Transport
// failures are retried since the server side is idempotent.
func (c *Client) MarkRead(ctx context.Context, conversationID string) error {
	c.view.MarkRead(conversationID)

	backoff := retry.WithMaxRetries(3, retry.NewExponential(100*time.Millisecond))
	return retry.Do(ctx, backoff, func(ctx context.Context) error {
		_, err := c.rpc.MarkRead(c.authed(ctx), &pb.MarkReadRequest{ConversationId: conversationID})
		if status.Code(err) == codes.Unavailable {
			log.Printf("⟳ markRead %s: %v", conversationID, err)
			return retry.RetryableError(err)
		}
		return err
	})
}

func (c *Client) UnreadCount(ctx context.Context) (int64, error) {
	n, err := c.rpc.UnreadCount(c.authed(ctx), &emptypb.Empty{})
	if err != nil {
		return 0, err
	}
	return n.GetValue(), nil
}
