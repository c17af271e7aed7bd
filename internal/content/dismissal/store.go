// Package dismissal tracks which popups a client has permanently dismissed.
// The store is an explicit interface with injectable backends so resolution
// logic stays deterministic under test.
package dismissal

import "context"

// Store persists per-client dismissed popup ids. Dismiss is idempotent: a
// popup id appears at most once per client regardless of how many times it is
// dismissed.
type Store interface {
	Dismiss(ctx context.Context, clientID, popupID string) error
	Dismissed(ctx context.Context, clientID string) ([]string, error)
	Close() error
}

// Set converts a dismissed-id list into the lookup form the popup resolver
// consumes.
func Set(ids []string) map[string]bool {
	set := make(map[string]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}
	return set
}
