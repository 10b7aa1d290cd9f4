// Package chat holds the chat.v1.ChatService protobuf messages and gRPC
// stubs generated from chat.proto, plus the few hand-written names below.
package chat

// SubscriptionHeader is the response header carrying the subscription id. The
// server sends it once the subscription is registered.
const SubscriptionHeader = "x-subscription-id"

// Short names for the event kinds carried in ConversationEvent.Kind and
// MessageEvent.Kind.
const (
	KindConversationCreated = EventKind_EVENT_KIND_CONVERSATION_CREATED
	KindConversationUpdated = EventKind_EVENT_KIND_CONVERSATION_UPDATED
	KindConversationDeleted = EventKind_EVENT_KIND_CONVERSATION_DELETED
	KindMessageSent         = EventKind_EVENT_KIND_MESSAGE_SENT
	KindMessageDeleted      = EventKind_EVENT_KIND_MESSAGE_DELETED
)
