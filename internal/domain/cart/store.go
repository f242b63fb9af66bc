package cart

import "context"

// Store persists one cart per key as a single serialized collection,
// replaced wholesale on every mutation. Concurrent writers to the same key
// race read-modify-write; last writer wins, matching the client-held
// storage this models.
type Store interface {
	Load(ctx context.Context, key string) ([]Booking, error)
	Save(ctx context.Context, key string, items []Booking) error
	Clear(ctx context.Context, key string) error
}
