package common

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// NormalizeIDs trims, drops empties and deduplicates while keeping first-seen order.
func NormalizeIDs(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		id = strings.TrimSpace(id)
		if id == "" {
			continue
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

func ValidateID(field, id string) error {
	if strings.TrimSpace(id) == "" {
		return fmt.Errorf("%w: %s is required", ErrInvalidArgument, field)
	}
	if len(id) > 36 {
		return fmt.Errorf("%w: %s is too long", ErrInvalidArgument, field)
	}
	return nil
}

// ValidateClientMessageID accepts an empty id (server generates one) or a UUID
// in its canonical 36-character form. Braced and urn:uuid: forms are rejected
// so stored ids always fit the id column and pass ValidateID.
func ValidateClientMessageID(id string) error {
	if id == "" {
		return nil
	}
	parsed, err := uuid.Parse(id)
	if err != nil || parsed.String() != strings.ToLower(id) {
		return fmt.Errorf("%w: message id must be a UUID", ErrInvalidArgument)
	}
	return nil
}
