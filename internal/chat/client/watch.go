package client

import (
	"context"
	"errors"
	"io"
	"log"
	"sync"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"

	pb "gigmarket/api/v1/chat"
	"gigmarket/internal/chat/reconcile"
)

// Watch is a group of subscription streams feeding the view. It ends as a
// whole when any stream ends.
type Watch struct {
	cancel context.CancelFunc
	wg     sync.WaitGroup
	done   chan struct{}

	errOnce sync.Once
	err     error
}

func newWatch(cancel context.CancelFunc) *Watch {
	return &Watch{cancel: cancel, done: make(chan struct{})}
}

func (w *Watch) Done() <-chan struct{} {
	return w.done
}

// Err returns the reason the watch ended, nil while it is running or after Stop.
func (w *Watch) Err() error {
	select {
	case <-w.done:
		return w.err
	default:
		return nil
	}
}

func (w *Watch) Stop() {
	w.cancel()
	<-w.done
}

func (w *Watch) fail(err error) {
	w.errOnce.Do(func() {
		if status.Code(err) != codes.Canceled && !errors.Is(err, context.Canceled) {
			w.err = err
		}
		w.cancel()
	})
}

func (w *Watch) run() {
	go func() {
		w.wg.Wait()
		close(w.done)
	}()
}

// WatchConversations subscribes to the three conversation streams. It returns
// once the server has registered all of them.
func (c *Client) WatchConversations(ctx context.Context) (*Watch, error) {
	ctx, cancel := context.WithCancel(c.authed(ctx))
	w := newWatch(cancel)

	created, err := c.rpc.OnConversationCreated(ctx, &emptypb.Empty{})
	if err = registered(created, err); err != nil {
		cancel()
		return nil, err
	}
	updated, err := c.rpc.OnConversationUpdated(ctx, &emptypb.Empty{})
	if err = registered(updated, err); err != nil {
		cancel()
		return nil, err
	}
	deleted, err := c.rpc.OnConversationDeleted(ctx, &emptypb.Empty{})
	if err = registered(deleted, err); err != nil {
		cancel()
		return nil, err
	}

	follow(w, created, func(ev *pb.ConversationEvent) {
		c.view.ApplyConversationCreated(ev.GetConversation())
	})
	follow(w, updated, func(ev *pb.ConversationEvent) {
		if c.view.ApplyConversationUpdated(ev) == reconcile.Evicted {
			log.Printf("Removed from conversation %s", ev.GetConversation().GetId())
		}
	})
	follow(w, deleted, func(ev *pb.ConversationEvent) {
		c.view.ApplyConversationDeleted(ev.GetConversation())
	})
	w.run()
	return w, nil
}

// WatchMessages subscribes to message events of conversationID. The watch
// ends with PermissionDenied when the user loses access to it.
func (c *Client) WatchMessages(ctx context.Context, conversationID string) (*Watch, error) {
	ctx, cancel := context.WithCancel(c.authed(ctx))
	w := newWatch(cancel)
	req := &pb.SubscribeMessagesRequest{ConversationId: conversationID}

	sent, err := c.rpc.OnMessageSent(ctx, req)
	if err = registered(sent, err); err != nil {
		cancel()
		return nil, err
	}
	deleted, err := c.rpc.OnMessageDeleted(ctx, req)
	if err = registered(deleted, err); err != nil {
		cancel()
		return nil, err
	}

	follow(w, sent, func(ev *pb.MessageEvent) {
		c.view.ApplyMessageSent(ev.GetMessage())
	})
	follow(w, deleted, func(ev *pb.MessageEvent) {
		c.view.ApplyMessageDeleted(ev.GetMessage())
	})
	w.run()
	return w, nil
}

// registered waits for the response headers, which the server sends only
// after the subscription exists. A rejected subscribe ends without them and
// its status is read with Recv.
func registered[T any](stream grpc.ServerStreamingClient[T], err error) error {
	if err != nil {
		return err
	}
	md, err := stream.Header()
	if err != nil {
		return err
	}
	if len(md.Get(pb.SubscriptionHeader)) > 0 {
		return nil
	}
	if _, err := stream.Recv(); err != nil {
		return err
	}
	return status.Error(codes.Internal, "subscription stream sent no registration header")
}

func follow[T any](w *Watch, stream grpc.ServerStreamingClient[T], apply func(*T)) {
	w.wg.Add(1)
	go func() {
		defer w.wg.Done()
		for {
			ev, err := stream.Recv()
			if err == io.EOF {
				w.fail(status.Error(codes.Unavailable, "stream closed by server"))
				return
			}
			if err != nil {
				w.fail(err)
				return
			}
			apply(ev)
		}
	}()
}
