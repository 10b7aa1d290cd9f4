package reconcile

import (
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/timestamppb"

	pb "gigmarket/api/v1/chat"
)

// View is the local projection of one signed-in user. It is safe for
// concurrent use by the request path and the stream readers.
type View struct {
	self string

	mu            sync.Mutex
	conversations map[string]*pb.Conversation
	active        string
	timeline      []Entry
}

func NewView(userID string) *View {
	return &View{
		self:          userID,
		conversations: make(map[string]*pb.Conversation),
	}
}

func (v *View) UserID() string {
	return v.self
}

// LoadConversations replaces the conversation list with a fresh server copy.
func (v *View) LoadConversations(convs []*pb.Conversation) {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.conversations = make(map[string]*pb.Conversation, len(convs))
	for _, c := range convs {
		v.conversations[c.GetId()] = c
	}
}

// Open makes conversationID the active conversation with history as its
// confirmed timeline, newest first.
func (v *View) Open(conversationID string, history []*pb.Message) {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.active = conversationID
	v.timeline = make([]Entry, 0, len(history))
	for _, m := range history {
		v.timeline = append(v.timeline, Entry{Message: m, State: StateConfirmed})
	}
}

func (v *View) Active() string {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.active
}

// AddPending inserts an optimistic message with a fresh client id into the
// active timeline and returns it.
func (v *View) AddPending(conversationID, body, attachmentID string) *pb.Message {
	msg := &pb.Message{
		Id:             uuid.NewString(),
		ConversationId: conversationID,
		SenderId:       v.self,
		Body:           body,
		AttachmentId:   attachmentID,
		CreatedAt:      timestamppb.New(time.Now().UTC()),
	}

	v.mu.Lock()
	defer v.mu.Unlock()
	if v.active == conversationID {
		v.timeline = append([]Entry{{Message: msg, State: StatePending}}, v.timeline...)
	}
	return msg
}

// Confirm applies the server's reply to a send.
func (v *View) Confirm(msg *pb.Message) Outcome {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.active != msg.GetConversationId() {
		return Ignored
	}
	if i := indexOf(v.timeline, msg.GetId()); i >= 0 {
		v.timeline[i] = Entry{Message: msg, State: StateConfirmed}
		return Replaced
	}
	return Ignored
}

// Fail marks a pending message failed. The entry stays visible.
func (v *View) Fail(messageID string, err error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if i := indexOf(v.timeline, messageID); i >= 0 && v.timeline[i].State != StateConfirmed {
		v.timeline[i].State = StateFailed
		v.timeline[i].Err = err
	}
}

// Retry puts a failed entry back to pending and returns its message so it can
// be resent under the same id.
func (v *View) Retry(messageID string) (*pb.Message, bool) {
	v.mu.Lock()
	defer v.mu.Unlock()

	i := indexOf(v.timeline, messageID)
	if i < 0 || v.timeline[i].State != StateFailed {
		return nil, false
	}
	v.timeline[i].State = StatePending
	v.timeline[i].Err = nil
	return v.timeline[i].Message, true
}

func (v *View) ApplyMessageSent(msg *pb.Message) Outcome {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.active != msg.GetConversationId() {
		return Ignored
	}
	var out Outcome
	v.timeline, out = Merge(v.timeline, msg, v.self)
	return out
}

func (v *View) ApplyMessageDeleted(msg *pb.Message) Outcome {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.active != msg.GetConversationId() {
		return Ignored
	}
	i := indexOf(v.timeline, msg.GetId())
	if i < 0 {
		return Ignored
	}
	v.timeline = append(v.timeline[:i], v.timeline[i+1:]...)
	return Removed
}

func (v *View) ApplyConversationCreated(conv *pb.Conversation) Outcome {
	v.mu.Lock()
	defer v.mu.Unlock()

	if _, ok := v.conversations[conv.GetId()]; ok {
		return Ignored
	}
	v.conversations[conv.GetId()] = conv
	return Inserted
}

// ApplyConversationUpdated evicts the conversation when self was removed,
// inserts it when self was added and otherwise refreshes a known entry. A
// snapshot older than the known one is ignored.
func (v *View) ApplyConversationUpdated(ev *pb.ConversationEvent) Outcome {
	v.mu.Lock()
	defer v.mu.Unlock()

	conv := ev.GetConversation()
	if contains(ev.GetRemovedUserIds(), v.self) {
		v.evictLocked(conv.GetId())
		return Evicted
	}

	if known, ok := v.conversations[conv.GetId()]; ok {
		if conv.GetVersion() < known.GetVersion() {
			return Ignored
		}
		v.conversations[conv.GetId()] = conv
		return Replaced
	}
	if contains(ev.GetAddedUserIds(), v.self) {
		v.conversations[conv.GetId()] = conv
		return Inserted
	}
	return Ignored
}

func (v *View) ApplyConversationDeleted(conv *pb.Conversation) Outcome {
	v.mu.Lock()
	defer v.mu.Unlock()

	if _, ok := v.conversations[conv.GetId()]; !ok && v.active != conv.GetId() {
		return Ignored
	}
	v.evictLocked(conv.GetId())
	return Evicted
}

// MarkRead flips the local read flag ahead of the server round trip.
func (v *View) MarkRead(conversationID string) {
	v.mu.Lock()
	defer v.mu.Unlock()

	conv, ok := v.conversations[conversationID]
	if !ok {
		return
	}
	updated := proto.Clone(conv).(*pb.Conversation)
	for _, p := range updated.GetParticipants() {
		if p.GetUserId() == v.self {
			p.HasSeenLatestMessages = true
		}
	}
	v.conversations[conversationID] = updated
}

// Conversations returns the known conversations, most recently updated first.
func (v *View) Conversations() []*pb.Conversation {
	v.mu.Lock()
	defer v.mu.Unlock()

	out := make([]*pb.Conversation, 0, len(v.conversations))
	for _, c := range v.conversations {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool {
		ti, tj := out[i].GetUpdatedAt().AsTime(), out[j].GetUpdatedAt().AsTime()
		if ti.Equal(tj) {
			return out[i].GetId() < out[j].GetId()
		}
		return ti.After(tj)
	})
	return out
}

func (v *View) Conversation(conversationID string) (*pb.Conversation, bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	c, ok := v.conversations[conversationID]
	return c, ok
}

// Timeline returns a copy of the active conversation's entries, newest first.
func (v *View) Timeline() []Entry {
	v.mu.Lock()
	defer v.mu.Unlock()
	return append([]Entry(nil), v.timeline...)
}

// Unread reports whether self has unseen messages in conversationID.
func (v *View) Unread(conversationID string) bool {
	v.mu.Lock()
	defer v.mu.Unlock()

	conv, ok := v.conversations[conversationID]
	if !ok {
		return false
	}
	for _, p := range conv.GetParticipants() {
		if p.GetUserId() == v.self {
			return !p.GetHasSeenLatestMessages()
		}
	}
	return false
}

// evictLocked drops the conversation and navigates away when it was open.
func (v *View) evictLocked(conversationID string) {
	delete(v.conversations, conversationID)
	if v.active == conversationID {
		v.active = ""
		v.timeline = nil
	}
}
