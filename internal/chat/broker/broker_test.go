package broker

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gigmarket/internal/chat/events"
	"gigmarket/internal/common"
	"gigmarket/internal/config"
	"gigmarket/internal/dbmysql"
)

func newTestBroker(t *testing.T, queueSize int) *Broker {
	t.Helper()
	b := NewBroker(&config.Config{Broker: config.BrokerConfig{SubscriberQueueSize: queueSize}})
	b.Start()
	t.Cleanup(b.Stop)
	return b
}

func messageSent(convID, body string) *events.MessageSent {
	return &events.MessageSent{
		Message:        &dbmysql.Message{ID: body, ConversationID: convID, Body: body},
		ParticipantIDs: []string{"u1", "u2"},
	}
}

func next(t *testing.T, sub *Subscription) events.Event {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	ev, err := sub.Next(ctx)
	require.NoError(t, err)
	return ev
}

func TestBroker_PublishFansOutPerTopic(t *testing.T) {
	b := newTestBroker(t, 4)

	s1, err := b.Subscribe(events.KindMessageSent, SubscribeOptions{Owner: "u1"})
	require.NoError(t, err)
	s2, err := b.Subscribe(events.KindMessageSent, SubscribeOptions{Owner: "u2"})
	require.NoError(t, err)
	other, err := b.Subscribe(events.KindMessageDeleted, SubscribeOptions{Owner: "u1"})
	require.NoError(t, err)

	delivered := b.Publish(messageSent("c1", "hi"))
	assert.Equal(t, 2, delivered)

	assert.Equal(t, "hi", next(t, s1).(*events.MessageSent).Message.Body)
	assert.Equal(t, "hi", next(t, s2).(*events.MessageSent).Message.Body)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	_, err = other.Next(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestBroker_FilterEvaluatedAtEnqueue(t *testing.T) {
	b := newTestBroker(t, 4)

	sub, err := b.Subscribe(events.KindMessageSent, SubscribeOptions{
		Owner: "u1",
		Scope: "c2",
		Filter: func(ev events.Event) bool {
			return ev.ConversationID() == "c2"
		},
	})
	require.NoError(t, err)

	assert.Equal(t, 0, b.Publish(messageSent("c1", "not mine")))
	assert.Equal(t, 1, b.Publish(messageSent("c2", "mine")))

	assert.Equal(t, "mine", next(t, sub).(*events.MessageSent).Message.Body)
}

func TestBroker_OverflowDropsOldest(t *testing.T) {
	b := newTestBroker(t, 2)

	sub, err := b.Subscribe(events.KindMessageSent, SubscribeOptions{Owner: "slow"})
	require.NoError(t, err)

	for i := 1; i <= 5; i++ {
		b.Publish(messageSent("c1", fmt.Sprintf("m%d", i)))
	}

	assert.Equal(t, uint64(3), sub.Dropped())
	assert.Equal(t, "m4", next(t, sub).(*events.MessageSent).Message.Body)
	assert.Equal(t, "m5", next(t, sub).(*events.MessageSent).Message.Body)
}

func TestBroker_SlowSubscriberDoesNotBlockPublisher(t *testing.T) {
	b := newTestBroker(t, 1)

	_, err := b.Subscribe(events.KindMessageSent, SubscribeOptions{Owner: "never-reads"})
	require.NoError(t, err)

	done := make(chan struct{})
	go func() {
		for i := 0; i < 1000; i++ {
			b.Publish(messageSent("c1", "spam"))
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("publisher blocked on a slow subscriber")
	}
}

func TestBroker_PreservesOrderPerSubscriber(t *testing.T) {
	b := newTestBroker(t, 100)

	sub, err := b.Subscribe(events.KindMessageSent, SubscribeOptions{Owner: "u1"})
	require.NoError(t, err)

	for i := 0; i < 50; i++ {
		b.Publish(messageSent("c1", fmt.Sprintf("m%02d", i)))
	}
	for i := 0; i < 50; i++ {
		assert.Equal(t, fmt.Sprintf("m%02d", i), next(t, sub).(*events.MessageSent).Message.Body)
	}
}

func TestBroker_UnsubscribeStopsDelivery(t *testing.T) {
	b := newTestBroker(t, 4)

	sub, err := b.Subscribe(events.KindMessageSent, SubscribeOptions{Owner: "u1"})
	require.NoError(t, err)
	b.Publish(messageSent("c1", "before"))

	sub.Close()
	sub.Close()
	assert.Equal(t, 0, b.Count(events.KindMessageSent))
	assert.Equal(t, 0, b.Publish(messageSent("c1", "after")))

	assert.Equal(t, "before", next(t, sub).(*events.MessageSent).Message.Body)
	_, err = sub.Next(context.Background())
	assert.ErrorIs(t, err, ErrClosed)
}

func TestBroker_CloseWhere(t *testing.T) {
	b := newTestBroker(t, 4)

	keep, err := b.Subscribe(events.KindMessageSent, SubscribeOptions{Owner: "u1", Scope: "c1"})
	require.NoError(t, err)
	drop, err := b.Subscribe(events.KindMessageSent, SubscribeOptions{Owner: "u2", Scope: "c1"})
	require.NoError(t, err)

	n := b.CloseWhere(events.KindMessageSent, func(s *Subscription) bool {
		return s.Owner() == "u2" && s.Scope() == "c1"
	}, common.ErrForbidden)
	assert.Equal(t, 1, n)

	_, err = drop.Next(context.Background())
	assert.ErrorIs(t, err, ErrClosed)
	assert.ErrorIs(t, err, common.ErrForbidden)

	select {
	case <-drop.Done():
	default:
		t.Fatal("matching subscription was not closed")
	}
	select {
	case <-keep.Done():
		t.Fatal("non-matching subscription was closed")
	default:
	}
}

func TestBroker_Lifecycle(t *testing.T) {
	b := NewBroker(&config.Config{})

	_, err := b.Subscribe(events.KindConversationCreated, SubscribeOptions{Owner: "u1"})
	assert.ErrorIs(t, err, common.ErrUnavailable)

	b.Start()
	sub, err := b.Subscribe(events.KindConversationCreated, SubscribeOptions{Owner: "u1"})
	require.NoError(t, err)

	_, err = b.Subscribe(events.Kind("bogus"), SubscribeOptions{})
	assert.ErrorIs(t, err, common.ErrInvalidArgument)

	b.Stop()
	_, err = sub.Next(context.Background())
	assert.ErrorIs(t, err, ErrClosed)
	assert.ErrorIs(t, err, common.ErrUnavailable)
	assert.Equal(t, 0, b.Publish(messageSent("c1", "late")))
}

func TestBroker_ConcurrentSubscribePublish(t *testing.T) {
	b := newTestBroker(t, 8)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(2)
		go func(i int) {
			defer wg.Done()
			sub, err := b.Subscribe(events.KindMessageSent, SubscribeOptions{Owner: fmt.Sprintf("u%d", i)})
			if err != nil {
				return
			}
			sub.Close()
		}(i)
		go func() {
			defer wg.Done()
			b.Publish(messageSent("c1", "x"))
		}()
	}
	wg.Wait()

	assert.Equal(t, 0, b.Count(events.KindMessageSent))
}
