// Package reconcile keeps a client's local projection of conversations and
// messages consistent with the events the server pushes, merging optimistic
// sends with their confirmations by message id.
package reconcile

import (
	pb "gigmarket/api/v1/chat"
)

type State int

const (
	StatePending State = iota
	StateConfirmed
	StateFailed
)

func (s State) String() string {
	switch s {
	case StatePending:
		return "pending"
	case StateConfirmed:
		return "confirmed"
	case StateFailed:
		return "failed"
	}
	return "unknown"
}

// Entry is one message in the local timeline.
type Entry struct {
	Message *pb.Message
	State   State
	Err     error
}

// Outcome reports what applying an event did to the local view.
type Outcome int

const (
	Ignored Outcome = iota
	Inserted
	Replaced
	Suppressed
	Removed
	Evicted
)

func (o Outcome) String() string {
	return [...]string{"ignored", "inserted", "replaced", "suppressed", "removed", "evicted"}[o]
}

// Merge folds a confirmed message into a newest-first timeline. An entry with
// the same id is replaced in place and marked confirmed; an unknown message
// sent by self is suppressed; anything else is prepended.
func Merge(timeline []Entry, msg *pb.Message, self string) ([]Entry, Outcome) {
	if i := indexOf(timeline, msg.GetId()); i >= 0 {
		timeline[i] = Entry{Message: msg, State: StateConfirmed}
		return timeline, Replaced
	}
	if msg.GetSenderId() == self {
		return timeline, Suppressed
	}
	out := make([]Entry, 0, len(timeline)+1)
	out = append(out, Entry{Message: msg, State: StateConfirmed})
	return append(out, timeline...), Inserted
}

func indexOf(timeline []Entry, messageID string) int {
	for i := range timeline {
		if timeline[i].Message.GetId() == messageID {
			return i
		}
	}
	return -1
}

func contains(ids []string, id string) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}
