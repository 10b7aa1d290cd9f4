package reconcile

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/timestamppb"

	pb "gigmarket/api/v1/chat"
)

func message(id, conv, sender string) *pb.Message {
	return &pb.Message{Id: id, ConversationId: conv, SenderId: sender, Body: "body " + id}
}

func conversation(id string, members ...string) *pb.Conversation {
	c := &pb.Conversation{Id: id, CreatedById: members[0], UpdatedAt: timestamppb.Now(), Version: 1}
	for _, m := range members {
		c.Participants = append(c.Participants, &pb.Participant{UserId: m, HasSeenLatestMessages: true})
	}
	return c
}

func TestMerge(t *testing.T) {
	pending := Entry{Message: message("m1", "c1", "me"), State: StatePending}
	older := Entry{Message: message("m0", "c1", "bob"), State: StateConfirmed}

	tests := []struct {
		name      string
		timeline  []Entry
		msg       *pb.Message
		want      Outcome
		wantIDs   []string
		wantState State
	}{
		{"confirmation replaces optimistic entry", []Entry{pending, older}, message("m1", "c1", "me"), Replaced, []string{"m1", "m0"}, StateConfirmed},
		{"foreign message is prepended", []Entry{older}, message("m2", "c1", "bob"), Inserted, []string{"m2", "m0"}, StateConfirmed},
		{"self echo without local entry is suppressed", []Entry{older}, message("m3", "c1", "me"), Suppressed, []string{"m0"}, StateConfirmed},
		{"redelivery does not duplicate", []Entry{older}, message("m0", "c1", "bob"), Replaced, []string{"m0"}, StateConfirmed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			timeline := append([]Entry(nil), tt.timeline...)
			got, outcome := Merge(timeline, tt.msg, "me")
			assert.Equal(t, tt.want, outcome)

			ids := make([]string, 0, len(got))
			for _, e := range got {
				ids = append(ids, e.Message.GetId())
			}
			assert.Equal(t, tt.wantIDs, ids)
			assert.Equal(t, tt.wantState, got[0].State)
		})
	}
}

func TestView_OptimisticSendLifecycle(t *testing.T) {
	v := NewView("me")
	v.Open("c1", []*pb.Message{message("m0", "c1", "bob")})

	msg := v.AddPending("c1", "hello", "")
	require.NotEmpty(t, msg.GetId())
	timeline := v.Timeline()
	require.Len(t, timeline, 2)
	assert.Equal(t, StatePending, timeline[0].State)

	// The broadcast can beat the RPC reply.
	confirmed := proto.Clone(msg).(*pb.Message)
	confirmed.Seq = 2
	assert.Equal(t, Replaced, v.ApplyMessageSent(confirmed))
	assert.Equal(t, Replaced, v.Confirm(confirmed))

	timeline = v.Timeline()
	require.Len(t, timeline, 2)
	assert.Equal(t, StateConfirmed, timeline[0].State)
	assert.Equal(t, uint64(2), timeline[0].Message.GetSeq())
}

func TestView_FailedSendStaysVisible(t *testing.T) {
	v := NewView("me")
	v.Open("c1", nil)

	msg := v.AddPending("c1", "hello", "")
	sendErr := errors.New("unavailable")
	v.Fail(msg.GetId(), sendErr)

	timeline := v.Timeline()
	require.Len(t, timeline, 1)
	assert.Equal(t, StateFailed, timeline[0].State)
	assert.Equal(t, sendErr, timeline[0].Err)

	again, ok := v.Retry(msg.GetId())
	require.True(t, ok)
	assert.Equal(t, msg.GetId(), again.GetId())
	assert.Equal(t, StatePending, v.Timeline()[0].State)

	_, ok = v.Retry(msg.GetId())
	assert.False(t, ok)
}

func TestView_MessagesForOtherConversationsIgnored(t *testing.T) {
	v := NewView("me")
	v.Open("c1", nil)

	assert.Equal(t, Ignored, v.ApplyMessageSent(message("x", "c2", "bob")))
	assert.Empty(t, v.Timeline())
}

func TestView_MessageDeleted(t *testing.T) {
	v := NewView("me")
	v.Open("c1", []*pb.Message{message("m2", "c1", "bob"), message("m1", "c1", "me")})

	assert.Equal(t, Removed, v.ApplyMessageDeleted(message("m2", "c1", "bob")))
	assert.Equal(t, Ignored, v.ApplyMessageDeleted(message("m2", "c1", "bob")))
	require.Len(t, v.Timeline(), 1)
	assert.Equal(t, "m1", v.Timeline()[0].Message.GetId())
}

func TestView_ConversationMembership(t *testing.T) {
	v := NewView("me")
	v.LoadConversations([]*pb.Conversation{conversation("c1", "bob", "me")})
	v.Open("c1", []*pb.Message{message("m1", "c1", "bob")})

	outcome := v.ApplyConversationUpdated(&pb.ConversationEvent{
		Kind:         pb.KindConversationUpdated,
		Conversation: conversation("c2", "carol", "me"),
		AddedUserIds: []string{"me"},
	})
	assert.Equal(t, Inserted, outcome)

	outcome = v.ApplyConversationUpdated(&pb.ConversationEvent{
		Kind:         pb.KindConversationUpdated,
		Conversation: conversation("c9", "carol", "dave"),
	})
	assert.Equal(t, Ignored, outcome)

	outcome = v.ApplyConversationUpdated(&pb.ConversationEvent{
		Kind:           pb.KindConversationUpdated,
		Conversation:   conversation("c1", "bob"),
		RemovedUserIds: []string{"me"},
	})
	assert.Equal(t, Evicted, outcome)

	_, ok := v.Conversation("c1")
	assert.False(t, ok)
	assert.Empty(t, v.Active())
	assert.Empty(t, v.Timeline())
	require.Len(t, v.Conversations(), 1)
	assert.Equal(t, "c2", v.Conversations()[0].GetId())
}

func TestView_ConversationCreatedAndDeleted(t *testing.T) {
	v := NewView("me")

	conv := conversation("c1", "bob", "me")
	assert.Equal(t, Inserted, v.ApplyConversationCreated(conv))
	assert.Equal(t, Ignored, v.ApplyConversationCreated(conv))

	v.Open("c1", nil)
	assert.Equal(t, Evicted, v.ApplyConversationDeleted(conv))
	assert.Equal(t, Ignored, v.ApplyConversationDeleted(conv))
	assert.Empty(t, v.Active())
}

func TestView_MarkReadIsLocalAndIdempotent(t *testing.T) {
	v := NewView("me")
	conv := conversation("c1", "bob", "me")
	conv.Participants[1].HasSeenLatestMessages = false
	v.LoadConversations([]*pb.Conversation{conv})

	require.True(t, v.Unread("c1"))
	v.MarkRead("c1")
	assert.False(t, v.Unread("c1"))
	v.MarkRead("c1")
	assert.False(t, v.Unread("c1"))

	// The loaded copy is not mutated.
	assert.False(t, conv.GetParticipants()[1].GetHasSeenLatestMessages())
}

func TestView_ConversationsOrderedByActivity(t *testing.T) {
	v := NewView("me")
	older := conversation("c1", "me")
	older.UpdatedAt = timestamppb.New(time.Now().Add(-time.Hour))
	newer := conversation("c2", "me")

	v.LoadConversations([]*pb.Conversation{older, newer})
	got := v.Conversations()
	require.Len(t, got, 2)
	assert.Equal(t, "c2", got[0].GetId())
	assert.Equal(t, "c1", got[1].GetId())
}

func TestView_StaleConversationSnapshotIgnored(t *testing.T) {
	v := NewView("me")
	current := conversation("c1", "bob", "me")
	current.Version = 5
	current.Name = "current"
	v.LoadConversations([]*pb.Conversation{current})

	stale := conversation("c1", "bob", "me", "carol")
	stale.Version = 4
	outcome := v.ApplyConversationUpdated(&pb.ConversationEvent{
		Kind:         pb.KindConversationUpdated,
		Conversation: stale,
	})
	assert.Equal(t, Ignored, outcome)
	got, ok := v.Conversation("c1")
	require.True(t, ok)
	assert.Equal(t, "current", got.GetName())

	newer := conversation("c1", "bob", "me")
	newer.Version = 6
	outcome = v.ApplyConversationUpdated(&pb.ConversationEvent{
		Kind:         pb.KindConversationUpdated,
		Conversation: newer,
	})
	assert.Equal(t, Replaced, outcome)
	got, _ = v.Conversation("c1")
	assert.Equal(t, uint64(6), got.GetVersion())
}
