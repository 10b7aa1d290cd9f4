// Package events defines the closed set of transient events published by the
// messaging core. Every consumer that must handle each kind implements Visitor,
// so adding a kind breaks the build of every consumer until it is handled.
package events

import (
	"gigmarket/internal/dbmysql"
)

type Kind string

const (
	KindConversationCreated Kind = "conversation_created"
	KindConversationUpdated Kind = "conversation_updated"
	KindConversationDeleted Kind = "conversation_deleted"
	KindMessageSent         Kind = "message_sent"
	KindMessageDeleted      Kind = "message_deleted"
)

// Kinds lists every topic of the broker.
var Kinds = []Kind{
	KindConversationCreated,
	KindConversationUpdated,
	KindConversationDeleted,
	KindMessageSent,
	KindMessageDeleted,
}

// Event is one committed change. Version is the conversation version the
// change was committed at; events of one conversation are ordered by it.
type Event interface {
	Kind() Kind
	ConversationID() string
	Version() uint64
	Accept(v Visitor) bool
}

type Visitor interface {
	VisitConversationCreated(e *ConversationCreated) bool
	VisitConversationUpdated(e *ConversationUpdated) bool
	VisitConversationDeleted(e *ConversationDeleted) bool
	VisitMessageSent(e *MessageSent) bool
	VisitMessageDeleted(e *MessageDeleted) bool
}

type ConversationCreated struct {
	Conversation *dbmysql.Conversation
}

// ConversationUpdated is published on membership changes and after every send.
// SenderID is set only when a send triggered it.
type ConversationUpdated struct {
	Conversation   *dbmysql.Conversation
	AddedUserIDs   []string
	RemovedUserIDs []string
	SenderID       string
}

// ConversationDeleted carries the roster as it was at deletion time.
type ConversationDeleted struct {
	Conversation   *dbmysql.Conversation
	ParticipantIDs []string
}

// MessageSent carries the recipients captured in the send transaction.
type MessageSent struct {
	Message        *dbmysql.Message
	ParticipantIDs []string
	ConvVersion    uint64
}

type MessageDeleted struct {
	Message        *dbmysql.Message
	ParticipantIDs []string
	ConvVersion    uint64
}

func (e *ConversationCreated) Kind() Kind { return KindConversationCreated }
func (e *ConversationUpdated) Kind() Kind { return KindConversationUpdated }
func (e *ConversationDeleted) Kind() Kind { return KindConversationDeleted }
func (e *MessageSent) Kind() Kind         { return KindMessageSent }
func (e *MessageDeleted) Kind() Kind      { return KindMessageDeleted }

func (e *ConversationCreated) ConversationID() string { return e.Conversation.ID }
func (e *ConversationUpdated) ConversationID() string { return e.Conversation.ID }
func (e *ConversationDeleted) ConversationID() string { return e.Conversation.ID }
func (e *MessageSent) ConversationID() string         { return e.Message.ConversationID }
func (e *MessageDeleted) ConversationID() string      { return e.Message.ConversationID }

func (e *ConversationCreated) Version() uint64 { return e.Conversation.Version }
func (e *ConversationUpdated) Version() uint64 { return e.Conversation.Version }
func (e *ConversationDeleted) Version() uint64 { return e.Conversation.Version }
func (e *MessageSent) Version() uint64         { return e.ConvVersion }
func (e *MessageDeleted) Version() uint64      { return e.ConvVersion }

func (e *ConversationCreated) Accept(v Visitor) bool { return v.VisitConversationCreated(e) }
func (e *ConversationUpdated) Accept(v Visitor) bool { return v.VisitConversationUpdated(e) }
func (e *ConversationDeleted) Accept(v Visitor) bool { return v.VisitConversationDeleted(e) }
func (e *MessageSent) Accept(v Visitor) bool         { return v.VisitMessageSent(e) }
func (e *MessageDeleted) Accept(v Visitor) bool      { return v.VisitMessageDeleted(e) }

// Contains reports whether id is in ids.
func Contains(ids []string, id string) bool {
	for _, candidate := range ids {
		if candidate == id {
			return true
		}
	}
	return false
}
