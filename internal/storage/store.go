// Package storage provides the local key/value persistence store backing
// studyshare state. The layout mirrors the browser-origin design: a handful
// of named entries, each holding one JSON document. The only consistency
// guarantee is last-write-wins; there is no locking or versioning.
package storage

import "context"

// Well-known entry names.
const (
	// KeySessionUser holds the current-session public User, when logged in.
	KeySessionUser = "user"
	// KeyUsers holds the JSON array of registered StoredUser records.
	KeyUsers = "users"
	// KeyMaterials holds the JSON array of posted materials.
	KeyMaterials = "materials"
	// KeyStudySessions holds the JSON array of completed study sessions.
	KeyStudySessions = "studySessions"
)

// Store is a string-key → bytes-value store. Get returns (nil, nil) when the
// key is absent. Implementations must tolerate concurrent use but provide no
// guarantee beyond last-write-wins.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error

	// SetMany writes several entries in one shot. SQLite-backed stores apply
	// the batch transactionally; the contract for callers is only that either
	// write order is acceptable (last-write-wins).
	SetMany(ctx context.Context, entries map[string][]byte) error

	Delete(ctx context.Context, key string) error

	// Clear removes every entry. Used by the reset command and by tests.
	Clear(ctx context.Context) error
}
