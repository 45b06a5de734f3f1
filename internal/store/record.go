// Package store implements the catalog and booking store: an in-memory
// copy of the user, property and booking collections backed by a small
// set of named persisted records. Each collection is serialized as one
// JSON record; the store owns the collections exclusively and every
// mutation is a read-modify-write of the whole record.
package store

import "context"

// Record key names. These are fixed identifiers of the persisted state
// layout; renaming one silently orphans previously persisted data (there
// is no schema version and no migration path).
const (
	recordUsers      = "realnest_users"
	recordProperties = "realnest_properties"
	recordBookings   = "realnest_bookings"
	recordSession    = "realnest_session"
)

// RecordStore persists named opaque records. Implementations must treat
// a missing record as (nil, false, nil), not as an error, and Delete of
// a missing record as a no-op.
type RecordStore interface {
	// Get returns the record body and whether it exists.
	Get(ctx context.Context, name string) ([]byte, bool, error)
	// Set creates or replaces the record.
	Set(ctx context.Context, name string, body []byte) error
	// Delete removes the record if present.
	Delete(ctx context.Context, name string) error
}
