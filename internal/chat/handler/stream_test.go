package handler

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
	"google.golang.org/protobuf/types/known/emptypb"

	pb "gigmarket/api/v1/chat"
	"gigmarket/internal/chat/broker"
	"gigmarket/internal/chat/repository"
	"gigmarket/internal/chat/router"
	"gigmarket/internal/chat/service"
	"gigmarket/internal/common"
	"gigmarket/internal/config"
)

const bufSize = 1024 * 1024

type grpcEnv struct {
	client pb.ChatServiceClient
	jwt    *common.JWTManager
}

func setupGRPCTest(t *testing.T) *grpcEnv {
	t.Helper()
	lis := bufconn.Listen(bufSize)

	cfg := &config.Config{
		Auth:   config.AuthConfig{JWTSecret: "test-secret", Issuer: "gigmarket-test", TokenTTL: 1},
		Broker: config.BrokerConfig{SubscriberQueueSize: 16},
		Chat:   config.ChatConfig{MaxParticipants: 10, MaxMessageLength: 500, DefaultPageSize: 20, MaxPageSize: 100},
	}

	b := broker.NewBroker(cfg)
	b.Start()
	repo := repository.NewMemoryRepository()
	r := router.NewRouter(b, repo)
	svc := service.NewChatService(cfg, repo, r, nil)
	jwtManager := common.NewJWTManager(cfg)

	s := grpc.NewServer(
		grpc.ChainUnaryInterceptor(common.LoggingUnaryInterceptor, common.AuthInterceptor(jwtManager)),
		grpc.ChainStreamInterceptor(common.LoggingStreamInterceptor, common.StreamAuthInterceptor(jwtManager)),
	)
	pb.RegisterChatServiceServer(s, NewChatHandler(svc, r))

	go func() {
		if err := s.Serve(lis); err != nil {
			t.Logf("Server exited: %v", err)
		}
	}()

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(context.Context, string) (net.Conn, error) {
			return lis.Dial()
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()))
	require.NoError(t, err)

	t.Cleanup(func() {
		conn.Close()
		b.Stop()
		s.Stop()
	})

	return &grpcEnv{client: pb.NewChatServiceClient(conn), jwt: jwtManager}
}

func (e *grpcEnv) as(t *testing.T, userID string) context.Context {
	t.Helper()
	token, err := e.jwt.GenerateToken(userID, userID)
	require.NoError(t, err)
	return metadata.AppendToOutgoingContext(context.Background(), "authorization", "Bearer "+token)
}

// awaitRegistered blocks until the server has registered the subscription.
func awaitRegistered(t *testing.T, stream grpc.ClientStream) {
	t.Helper()
	md, err := stream.Header()
	require.NoError(t, err)
	require.NotEmpty(t, md.Get(pb.SubscriptionHeader))
}

func recvWithin[T any](t *testing.T, stream grpc.ServerStreamingClient[T]) (*T, error) {
	t.Helper()
	type result struct {
		ev  *T
		err error
	}
	ch := make(chan result, 1)
	go func() {
		ev, err := stream.Recv()
		ch <- result{ev, err}
	}()
	select {
	case r := <-ch:
		return r.ev, r.err
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for stream event")
		return nil, nil
	}
}

func TestStream_MessageDeliveredToParticipantsOnly(t *testing.T) {
	env := setupGRPCTest(t)
	alice, bob, carol := env.as(t, "alice"), env.as(t, "bob"), env.as(t, "carol")

	convID, err := env.client.CreateConversation(alice, &pb.CreateConversationRequest{MemberIds: []string{"bob"}})
	require.NoError(t, err)

	bobMessages, err := env.client.OnMessageSent(bob, &pb.SubscribeMessagesRequest{ConversationId: convID.GetValue()})
	require.NoError(t, err)
	awaitRegistered(t, bobMessages)

	bobUpdates, err := env.client.OnConversationUpdated(bob, &emptypb.Empty{})
	require.NoError(t, err)
	awaitRegistered(t, bobUpdates)

	carolMessages, err := env.client.OnMessageSent(carol, &pb.SubscribeMessagesRequest{ConversationId: convID.GetValue()})
	require.NoError(t, err)
	_, err = recvWithin(t, carolMessages)
	assert.Equal(t, codes.PermissionDenied, status.Code(err))

	sent, err := env.client.SendMessage(alice, &pb.SendMessageRequest{ConversationId: convID.GetValue(), Body: "hi bob"})
	require.NoError(t, err)

	ev, err := recvWithin(t, bobMessages)
	require.NoError(t, err)
	assert.Equal(t, pb.KindMessageSent, ev.GetKind())
	assert.Equal(t, sent.GetId(), ev.GetMessage().GetId())
	assert.Equal(t, "hi bob", ev.Message.Body)

	upd, err := recvWithin(t, bobUpdates)
	require.NoError(t, err)
	assert.Equal(t, pb.KindConversationUpdated, upd.GetKind())
	assert.Equal(t, sent.GetId(), upd.GetConversation().GetLatestMessageId())

	unread, err := env.client.UnreadCount(bob, &emptypb.Empty{})
	require.NoError(t, err)
	assert.Equal(t, int64(1), unread.GetValue())
}

func TestStream_RemovedParticipantLosesSubscription(t *testing.T) {
	env := setupGRPCTest(t)
	alice, bob := env.as(t, "alice"), env.as(t, "bob")

	convID, err := env.client.CreateConversation(alice, &pb.CreateConversationRequest{MemberIds: []string{"bob", "dave"}})
	require.NoError(t, err)

	bobMessages, err := env.client.OnMessageSent(bob, &pb.SubscribeMessagesRequest{ConversationId: convID.GetValue()})
	require.NoError(t, err)
	awaitRegistered(t, bobMessages)

	bobUpdates, err := env.client.OnConversationUpdated(bob, &emptypb.Empty{})
	require.NoError(t, err)
	awaitRegistered(t, bobUpdates)

	_, err = env.client.UpdateParticipants(alice, &pb.UpdateParticipantsRequest{
		ConversationId: convID.GetValue(),
		MemberIds:      []string{"alice", "dave"},
	})
	require.NoError(t, err)

	upd, err := recvWithin(t, bobUpdates)
	require.NoError(t, err)
	assert.Equal(t, []string{"bob"}, upd.GetRemovedUserIds())

	_, err = recvWithin(t, bobMessages)
	assert.Equal(t, codes.PermissionDenied, status.Code(err))

	_, err = env.client.SendMessage(bob, &pb.SendMessageRequest{ConversationId: convID.GetValue(), Body: "still here?"})
	assert.Equal(t, codes.PermissionDenied, status.Code(err))
}

func TestStream_RejectsMissingToken(t *testing.T) {
	env := setupGRPCTest(t)

	stream, err := env.client.OnConversationCreated(context.Background(), &emptypb.Empty{})
	require.NoError(t, err)
	_, err = recvWithin(t, stream)
	assert.Equal(t, codes.Unauthenticated, status.Code(err))

	_, err = env.client.UnreadCount(context.Background(), &emptypb.Empty{})
	assert.Equal(t, codes.Unauthenticated, status.Code(err))
}

func TestStream_ConversationCreatedReachesMembers(t *testing.T) {
	env := setupGRPCTest(t)
	alice, bob := env.as(t, "alice"), env.as(t, "bob")

	created, err := env.client.OnConversationCreated(bob, &emptypb.Empty{})
	require.NoError(t, err)
	awaitRegistered(t, created)

	convID, err := env.client.CreateConversation(alice, &pb.CreateConversationRequest{Name: "gig", MemberIds: []string{"bob"}})
	require.NoError(t, err)

	ev, err := recvWithin(t, created)
	require.NoError(t, err)
	assert.Equal(t, convID.GetValue(), ev.GetConversation().GetId())
	assert.Equal(t, "gig", ev.Conversation.Name)
	assert.Len(t, ev.Conversation.Participants, 2)
}
