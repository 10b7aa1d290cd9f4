// Package router decides which live subscription receives which event. Every
// admission rule lives in the admission visitor below; nothing else in the
// service filters deliveries.
package router

import (
	"context"
	"fmt"
	"log"
	"sync"

	"gigmarket/internal/chat/broker"
	"gigmarket/internal/chat/events"
	"gigmarket/internal/chat/repository"
	"gigmarket/internal/common"
	"gigmarket/internal/dbmysql"
)

type Router struct {
	broker *broker.Broker
	repo   repository.ChatRepository

	// mu orders publishing against scoped registration. rosters holds the
	// newest published roster of each conversation; deleted conversations
	// keep an empty entry so late events find nobody to deliver to.
	mu      sync.Mutex
	rosters map[string]roster
}

type roster struct {
	version uint64
	members []string
}

func NewRouter(b *broker.Broker, repo repository.ChatRepository) *Router {
	return &Router{broker: b, repo: repo, rosters: make(map[string]roster)}
}

// Scoped reports whether subscriptions of kind are bound to one conversation.
func Scoped(kind events.Kind) bool {
	return kind == events.KindMessageSent || kind == events.KindMessageDeleted
}

// Subscribe registers a subscription for userID on kind. Scoped kinds need a
// conversationID the user is a participant of; that check happens here once.
func (r *Router) Subscribe(ctx context.Context, userID string, kind events.Kind, conversationID string) (*broker.Subscription, error) {
	if userID == "" {
		return nil, fmt.Errorf("%w: no authenticated principal", common.ErrUnauthenticated)
	}

	var checkedAt uint64
	if Scoped(kind) {
		if err := common.ValidateID("conversation_id", conversationID); err != nil {
			return nil, err
		}
		conv, err := r.repo.GetConversation(ctx, conversationID)
		if err != nil {
			return nil, err
		}
		if !conv.HasParticipant(userID) {
			return nil, fmt.Errorf("%w: not a participant of this conversation", common.ErrForbidden)
		}
		checkedAt = conv.Version
	} else {
		conversationID = ""
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	sub, err := r.broker.Subscribe(kind, broker.SubscribeOptions{
		Owner: userID,
		Scope: conversationID,
		Filter: func(ev events.Event) bool {
			return Admit(userID, conversationID, ev)
		},
	})
	if err != nil {
		return nil, err
	}

	// A removal published between the check above and the registration has
	// already run its revocation, so it is applied here instead.
	if conversationID != "" {
		if latest, ok := r.rosters[conversationID]; ok && latest.version > checkedAt && !events.Contains(latest.members, userID) {
			reason := fmt.Errorf("%w: not a participant of this conversation", common.ErrForbidden)
			r.broker.CloseWhere(kind, func(s *broker.Subscription) bool { return s == sub }, reason)
			return nil, reason
		}
	}
	log.Printf("User %s subscribed to %s %s", userID, kind, conversationID)
	return sub, nil
}

// Publish fans ev out and then revokes scoped subscriptions that lost their
// authorization because of it. An event committed before the newest published
// one of its conversation is narrowed to that newer roster first, so a user
// removed in between never receives it.
func (r *Router) Publish(ev events.Event) {
	r.mu.Lock()
	defer r.mu.Unlock()

	ev = r.order(ev)
	r.broker.Publish(ev)

	switch e := ev.(type) {
	case *events.ConversationUpdated:
		if len(e.RemovedUserIDs) > 0 {
			r.revoke(e.Conversation.ID, func(userID string) bool {
				return events.Contains(e.RemovedUserIDs, userID)
			})
		}
	case *events.ConversationDeleted:
		r.revoke(e.Conversation.ID, func(string) bool { return true })
	}
}

func (r *Router) order(ev events.Event) events.Event {
	id := ev.ConversationID()
	latest, seen := r.rosters[id]
	if seen && ev.Version() < latest.version {
		log.Printf("Narrowing stale %s on conversation %s (version %d < %d)", ev.Kind(), id, ev.Version(), latest.version)
		return narrow(ev, latest.members)
	}
	if !seen || ev.Version() > latest.version {
		r.rosters[id] = roster{version: ev.Version(), members: members(ev)}
	}
	return ev
}

// members is the roster an event was committed with.
func members(ev events.Event) []string {
	switch e := ev.(type) {
	case *events.ConversationCreated:
		return e.Conversation.ParticipantIDs()
	case *events.ConversationUpdated:
		return e.Conversation.ParticipantIDs()
	case *events.MessageSent:
		return e.ParticipantIDs
	case *events.MessageDeleted:
		return e.ParticipantIDs
	default:
		return nil
	}
}

// narrow returns a copy of ev whose recipients are limited to current.
// Removal notices are kept for users still absent from current: each removed
// user is owed exactly that one.
func narrow(ev events.Event, current []string) events.Event {
	switch e := ev.(type) {
	case *events.ConversationCreated:
		out := *e
		out.Conversation = keepParticipants(e.Conversation, current)
		return &out
	case *events.ConversationUpdated:
		out := *e
		out.Conversation = keepParticipants(e.Conversation, current)
		out.AddedUserIDs = intersect(e.AddedUserIDs, current)
		out.RemovedUserIDs = without(e.RemovedUserIDs, current)
		if !events.Contains(current, e.SenderID) {
			out.SenderID = ""
		}
		return &out
	case *events.ConversationDeleted:
		out := *e
		out.ParticipantIDs = intersect(e.ParticipantIDs, current)
		return &out
	case *events.MessageSent:
		out := *e
		out.ParticipantIDs = intersect(e.ParticipantIDs, current)
		return &out
	case *events.MessageDeleted:
		out := *e
		out.ParticipantIDs = intersect(e.ParticipantIDs, current)
		return &out
	default:
		return ev
	}
}

func keepParticipants(conv *dbmysql.Conversation, current []string) *dbmysql.Conversation {
	out := conv.Clone()
	kept := out.Participants[:0]
	for _, p := range out.Participants {
		if events.Contains(current, p.UserID) {
			kept = append(kept, p)
		}
	}
	out.Participants = kept
	return out
}

func intersect(ids, current []string) []string {
	var out []string
	for _, id := range ids {
		if events.Contains(current, id) {
			out = append(out, id)
		}
	}
	return out
}

func without(ids, current []string) []string {
	var out []string
	for _, id := range ids {
		if !events.Contains(current, id) {
			out = append(out, id)
		}
	}
	return out
}

func (r *Router) revoke(conversationID string, who func(userID string) bool) {
	reason := fmt.Errorf("%w: access to conversation %s ended", common.ErrForbidden, conversationID)
	closed := 0
	for _, kind := range []events.Kind{events.KindMessageSent, events.KindMessageDeleted} {
		closed += r.broker.CloseWhere(kind, func(s *broker.Subscription) bool {
			return s.Scope() == conversationID && who(s.Owner())
		}, reason)
	}
	if closed > 0 {
		log.Printf("Revoked %d subscriptions on conversation %s", closed, conversationID)
	}
}

// Admit is the admission table: it reports whether the subscriber userID,
// optionally scoped to conversationID, may receive ev.
func Admit(userID, conversationID string, ev events.Event) bool {
	return ev.Accept(admission{userID: userID, conversationID: conversationID})
}

type admission struct {
	userID         string
	conversationID string
}

var _ events.Visitor = admission{}

func (a admission) VisitConversationCreated(e *events.ConversationCreated) bool {
	return e.Conversation.HasParticipant(a.userID)
}

func (a admission) VisitConversationUpdated(e *events.ConversationUpdated) bool {
	sender := e.SenderID != "" && e.SenderID == a.userID
	switch {
	case e.Conversation.HasParticipant(a.userID) && !sender:
		return true
	case sender:
		return true
	default:
		return events.Contains(e.RemovedUserIDs, a.userID)
	}
}

func (a admission) VisitConversationDeleted(e *events.ConversationDeleted) bool {
	return events.Contains(e.ParticipantIDs, a.userID)
}

func (a admission) VisitMessageSent(e *events.MessageSent) bool {
	return e.Message.ConversationID == a.conversationID && events.Contains(e.ParticipantIDs, a.userID)
}

func (a admission) VisitMessageDeleted(e *events.MessageDeleted) bool {
	return e.Message.ConversationID == a.conversationID && events.Contains(e.ParticipantIDs, a.userID)
}
