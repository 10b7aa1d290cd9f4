package repository

import (
	"gigmarket/internal/dbmysql"
)

// MembershipChange is the outcome of a participant update. Conversation holds
// the roster after the change.
type MembershipChange struct {
	Conversation *dbmysql.Conversation
	Added        []string
	Removed      []string
}

// AppendResult is the outcome of appending a message. Duplicate is set when
// the client-supplied id was already stored by the same sender, in which case
// nothing was written.
type AppendResult struct {
	Conversation *dbmysql.Conversation
	Message      *dbmysql.Message
	Duplicate    bool
}

// DeletedMessage carries the roster and conversation version captured in the
// delete transaction.
type DeletedMessage struct {
	Message        *dbmysql.Message
	ParticipantIDs []string
	Version        uint64
}

// DiffMembers computes added = requested - existing and removed = existing - requested,
// preserving the input order of each side.
func DiffMembers(existing, requested []string) (added, removed []string) {
	have := make(map[string]struct{}, len(existing))
	for _, id := range existing {
		have[id] = struct{}{}
	}
	want := make(map[string]struct{}, len(requested))
	for _, id := range requested {
		want[id] = struct{}{}
		if _, ok := have[id]; !ok {
			added = append(added, id)
		}
	}
	for _, id := range existing {
		if _, ok := want[id]; !ok {
			removed = append(removed, id)
		}
	}
	return added, removed
}

// applyMembership rewrites the in-memory roster after a committed change.
// Newly added participants join with no unread backlog.
func applyMembership(conv *dbmysql.Conversation, added, removed []string) {
	gone := make(map[string]struct{}, len(removed))
	for _, id := range removed {
		gone[id] = struct{}{}
	}
	kept := conv.Participants[:0]
	for _, p := range conv.Participants {
		if _, ok := gone[p.UserID]; !ok {
			kept = append(kept, p)
		}
	}
	conv.Participants = append(kept, NewParticipants(conv.ID, added, "")...)
}

// NewParticipants builds participant rows. When readerID is empty every row
// starts as read; otherwise only readerID does.
func NewParticipants(conversationID string, userIDs []string, readerID string) []dbmysql.Participant {
	rows := make([]dbmysql.Participant, 0, len(userIDs))
	for _, id := range userIDs {
		rows = append(rows, dbmysql.Participant{
			ConversationID:        conversationID,
			UserID:                id,
			HasSeenLatestMessages: readerID == "" || id == readerID,
		})
	}
	return rows
}

// markSent flips read flags the way a send does: sender true, everyone else false.
func markSent(conv *dbmysql.Conversation, msg *dbmysql.Message) {
	for i := range conv.Participants {
		conv.Participants[i].HasSeenLatestMessages = conv.Participants[i].UserID == msg.SenderID
	}
	id := msg.ID
	conv.LatestMessageID = &id
	conv.LatestMessage = msg.Clone()
}
