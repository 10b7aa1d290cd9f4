package handler

import (
	"google.golang.org/protobuf/types/known/timestamppb"

	pb "gigmarket/api/v1/chat"
	"gigmarket/internal/chat/events"
	"gigmarket/internal/dbmysql"
)

func toPBMessage(m *dbmysql.Message) *pb.Message {
	if m == nil {
		return nil
	}
	out := &pb.Message{
		Id:             m.ID,
		ConversationId: m.ConversationID,
		Seq:            m.Seq,
		SenderId:       m.SenderID,
		Body:           m.Body,
		CreatedAt:      timestamppb.New(m.CreatedAt),
	}
	if m.AttachmentID != nil {
		out.AttachmentId = *m.AttachmentID
	}
	return out
}

func toPBMessages(msgs []*dbmysql.Message) []*pb.Message {
	out := make([]*pb.Message, 0, len(msgs))
	for _, m := range msgs {
		out = append(out, toPBMessage(m))
	}
	return out
}

func toPBConversation(c *dbmysql.Conversation) *pb.Conversation {
	if c == nil {
		return nil
	}
	out := &pb.Conversation{
		Id:            c.ID,
		CreatedById:   c.CreatedByID,
		LatestMessage: toPBMessage(c.LatestMessage),
		Participants:  make([]*pb.Participant, 0, len(c.Participants)),
		CreatedAt:     timestamppb.New(c.CreatedAt),
		UpdatedAt:     timestamppb.New(c.UpdatedAt),
		Version:       c.Version,
	}
	if c.Name != nil {
		out.Name = *c.Name
	}
	if c.LatestMessageID != nil {
		out.LatestMessageId = *c.LatestMessageID
	}
	for _, p := range c.Participants {
		out.Participants = append(out.Participants, &pb.Participant{
			UserId:                p.UserID,
			HasSeenLatestMessages: p.HasSeenLatestMessages,
			CreatedAt:             timestamppb.New(p.CreatedAt),
		})
	}
	return out
}

func toPBConversations(convs []*dbmysql.Conversation) []*pb.Conversation {
	out := make([]*pb.Conversation, 0, len(convs))
	for _, c := range convs {
		out = append(out, toPBConversation(c))
	}
	return out
}

// wireEvent renders a domain event as its wire form. Exactly one of the two
// results is non-nil.
type wireEvent struct {
	conversation *pb.ConversationEvent
	message      *pb.MessageEvent
}

var _ events.Visitor = (*wireEvent)(nil)

func toWire(ev events.Event) wireEvent {
	var w wireEvent
	ev.Accept(&w)
	return w
}

func (w *wireEvent) VisitConversationCreated(e *events.ConversationCreated) bool {
	w.conversation = &pb.ConversationEvent{
		Kind:         pb.KindConversationCreated,
		Conversation: toPBConversation(e.Conversation),
	}
	return true
}

func (w *wireEvent) VisitConversationUpdated(e *events.ConversationUpdated) bool {
	w.conversation = &pb.ConversationEvent{
		Kind:           pb.KindConversationUpdated,
		Conversation:   toPBConversation(e.Conversation),
		AddedUserIds:   e.AddedUserIDs,
		RemovedUserIds: e.RemovedUserIDs,
		SenderId:       e.SenderID,
	}
	return true
}

func (w *wireEvent) VisitConversationDeleted(e *events.ConversationDeleted) bool {
	w.conversation = &pb.ConversationEvent{
		Kind:         pb.KindConversationDeleted,
		Conversation: toPBConversation(e.Conversation),
	}
	return true
}

func (w *wireEvent) VisitMessageSent(e *events.MessageSent) bool {
	w.message = &pb.MessageEvent{Kind: pb.KindMessageSent, Message: toPBMessage(e.Message)}
	return true
}

func (w *wireEvent) VisitMessageDeleted(e *events.MessageDeleted) bool {
	w.message = &pb.MessageEvent{Kind: pb.KindMessageDeleted, Message: toPBMessage(e.Message)}
	return true
}
