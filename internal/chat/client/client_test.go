package client

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
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"

	pb "gigmarket/api/v1/chat"
	"gigmarket/internal/chat/broker"
	"gigmarket/internal/chat/handler"
	"gigmarket/internal/chat/reconcile"
	"gigmarket/internal/chat/repository"
	"gigmarket/internal/chat/router"
	"gigmarket/internal/chat/service"
	"gigmarket/internal/common"
	"gigmarket/internal/config"
)

type testServer struct {
	conn *grpc.ClientConn
	jwt  *common.JWTManager
}

func startServer(t *testing.T) *testServer {
	t.Helper()
	lis := bufconn.Listen(1024 * 1024)

	cfg := &config.Config{
		Auth:   config.AuthConfig{JWTSecret: "client-test", Issuer: "gigmarket-test", TokenTTL: 1},
		Broker: config.BrokerConfig{SubscriberQueueSize: 16},
		Chat:   config.ChatConfig{MaxParticipants: 10, MaxMessageLength: 500, DefaultPageSize: 2, MaxPageSize: 10},
	}
	b := broker.NewBroker(cfg)
	b.Start()
	repo := repository.NewMemoryRepository()
	r := router.NewRouter(b, repo)
	jwtManager := common.NewJWTManager(cfg)

	s := grpc.NewServer(
		grpc.UnaryInterceptor(common.AuthInterceptor(jwtManager)),
		grpc.StreamInterceptor(common.StreamAuthInterceptor(jwtManager)),
	)
	pb.RegisterChatServiceServer(s, handler.NewChatHandler(service.NewChatService(cfg, repo, r, nil), r))
	go s.Serve(lis)

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
	return &testServer{conn: conn, jwt: jwtManager}
}

func (s *testServer) client(t *testing.T, userID string) *Client {
	t.Helper()
	token, err := s.jwt.GenerateToken(userID, userID)
	require.NoError(t, err)
	return New(s.conn, userID, token)
}

func ids(entries []reconcile.Entry) []string {
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.Message.GetId())
	}
	return out
}

func TestClient_SendAndReconcile(t *testing.T) {
	srv := startServer(t)
	ctx := context.Background()
	alice, bob := srv.client(t, "alice"), srv.client(t, "bob")

	bobConvs, err := bob.WatchConversations(ctx)
	require.NoError(t, err)
	defer bobConvs.Stop()

	convID, err := alice.CreateConversation(ctx, "gig", []string{"bob"})
	require.NoError(t, err)

	require.Eventually(t, func() bool {
		_, ok := bob.View().Conversation(convID)
		return ok
	}, time.Second, 10*time.Millisecond)

	require.NoError(t, alice.Open(ctx, convID))
	require.NoError(t, bob.Open(ctx, convID))
	aliceMsgs, err := alice.WatchMessages(ctx, convID)
	require.NoError(t, err)
	defer aliceMsgs.Stop()
	bobMsgs, err := bob.WatchMessages(ctx, convID)
	require.NoError(t, err)
	defer bobMsgs.Stop()

	sent, err := alice.Send(ctx, convID, "hello bob", "")
	require.NoError(t, err)

	// Alice's own echo replaces her optimistic entry instead of duplicating it.
	timeline := alice.View().Timeline()
	require.Len(t, timeline, 1)
	assert.Equal(t, sent.GetId(), timeline[0].Message.GetId())
	assert.Equal(t, reconcile.StateConfirmed, timeline[0].State)

	require.Eventually(t, func() bool {
		return len(bob.View().Timeline()) == 1
	}, time.Second, 10*time.Millisecond)
	assert.Equal(t, sent.GetId(), bob.View().Timeline()[0].Message.GetId())

	require.Eventually(t, func() bool {
		return bob.View().Unread(convID)
	}, time.Second, 10*time.Millisecond)
	require.NoError(t, bob.MarkRead(ctx, convID))
	assert.False(t, bob.View().Unread(convID))
	n, err := bob.UnreadCount(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)

	require.NoError(t, alice.DeleteMessage(ctx, sent.GetId()))
	require.Eventually(t, func() bool {
		return len(bob.View().Timeline()) == 0
	}, time.Second, 10*time.Millisecond)

	require.Eventually(t, func() bool {
		return len(alice.View().Timeline()) == 0
	}, time.Second, 10*time.Millisecond, "alice still shows %v", ids(alice.View().Timeline()))
}

func TestClient_FailedSendIsKept(t *testing.T) {
	srv := startServer(t)
	ctx := context.Background()
	alice, mallory := srv.client(t, "alice"), srv.client(t, "mallory")

	convID, err := alice.CreateConversation(ctx, "", []string{"bob"})
	require.NoError(t, err)

	mallory.View().Open(convID, nil)
	_, err = mallory.Send(ctx, convID, "let me in", "")
	assert.Equal(t, codes.PermissionDenied, status.Code(err))

	timeline := mallory.View().Timeline()
	require.Len(t, timeline, 1)
	assert.Equal(t, reconcile.StateFailed, timeline[0].State)

	_, err = mallory.WatchMessages(ctx, convID)
	assert.Equal(t, codes.PermissionDenied, status.Code(err))
}

func TestClient_RemovalEvictsAndEndsWatch(t *testing.T) {
	srv := startServer(t)
	ctx := context.Background()
	alice, bob := srv.client(t, "alice"), srv.client(t, "bob")

	convID, err := alice.CreateConversation(ctx, "", []string{"bob", "carol"})
	require.NoError(t, err)

	require.NoError(t, bob.Refresh(ctx))
	require.NoError(t, bob.Open(ctx, convID))
	convWatch, err := bob.WatchConversations(ctx)
	require.NoError(t, err)
	defer convWatch.Stop()
	msgWatch, err := bob.WatchMessages(ctx, convID)
	require.NoError(t, err)

	require.NoError(t, alice.UpdateParticipants(ctx, convID, []string{"carol"}))

	select {
	case <-msgWatch.Done():
	case <-time.After(2 * time.Second):
		t.Fatal("message watch survived removal")
	}
	assert.Equal(t, codes.PermissionDenied, status.Code(msgWatch.Err()))

	require.Eventually(t, func() bool {
		_, ok := bob.View().Conversation(convID)
		return !ok && bob.View().Active() == ""
	}, time.Second, 10*time.Millisecond)
}

func TestClient_RefreshPagesThroughConversations(t *testing.T) {
	srv := startServer(t)
	ctx := context.Background()
	alice := srv.client(t, "alice")

	for i := 0; i < 5; i++ {
		_, err := alice.CreateConversation(ctx, "", []string{"bob"})
		require.NoError(t, err)
	}

	require.NoError(t, alice.Refresh(ctx))
	assert.Len(t, alice.View().Conversations(), 5)
}
