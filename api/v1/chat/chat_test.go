package chat

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/reflect/protoreflect"
	"google.golang.org/protobuf/reflect/protoregistry"
	"google.golang.org/protobuf/types/known/timestamppb"
)

func TestDescriptor_Registered(t *testing.T) {
	d, err := protoregistry.GlobalFiles.FindDescriptorByName("chat.v1.ChatService")
	require.NoError(t, err)
	svc, ok := d.(protoreflect.ServiceDescriptor)
	require.True(t, ok)
	assert.Equal(t, len(ChatService_ServiceDesc.Methods)+len(ChatService_ServiceDesc.Streams), svc.Methods().Len())

	m := svc.Methods().ByName("OnMessageSent")
	require.NotNil(t, m)
	assert.True(t, m.IsStreamingServer())
	assert.Equal(t, protoreflect.FullName("chat.v1.MessageEvent"), m.Output().FullName())
}

func TestEventKind_Names(t *testing.T) {
	assert.Equal(t, "EVENT_KIND_MESSAGE_SENT", KindMessageSent.String())
	assert.Equal(t, int32(2), EventKind_value["EVENT_KIND_CONVERSATION_UPDATED"])
}

func TestConversationEvent_WireRoundTrip(t *testing.T) {
	at := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	in := &ConversationEvent{
		Kind: KindConversationUpdated,
		Conversation: &Conversation{
			Id:          "c1",
			CreatedById: "u1",
			Participants: []*Participant{
				{UserId: "u1", HasSeenLatestMessages: true, CreatedAt: timestamppb.New(at)},
			},
			CreatedAt: timestamppb.New(at),
			UpdatedAt: timestamppb.New(at),
			Version:   7,
		},
		RemovedUserIds: []string{"u2"},
	}

	data, err := proto.Marshal(in)
	require.NoError(t, err)

	out := &ConversationEvent{}
	require.NoError(t, proto.Unmarshal(data, out))
	assert.True(t, proto.Equal(in, out))
	assert.Equal(t, uint64(7), out.GetConversation().GetVersion())
	assert.True(t, at.Equal(out.GetConversation().GetCreatedAt().AsTime()))
	assert.Equal(t, []string{"u2"}, out.GetRemovedUserIds())
}

func TestGetters_NilSafe(t *testing.T) {
	var ev *MessageEvent
	assert.Equal(t, EventKind_EVENT_KIND_UNSPECIFIED, ev.GetKind())
	assert.Empty(t, ev.GetMessage().GetId())
}
