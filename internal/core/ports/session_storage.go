package ports

import "context"

// SessionStorage is the persisted key/value surface behind a session store.
// It holds exactly two keys per session (token and serialized profile), read
// once at hydration and rewritten on every login and logout.
type SessionStorage interface {
	// Get returns the value for key and whether it was present.
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Remove(ctx context.Context, key string) error
}

// Storage keys for the credential pair.
const (
	StorageKeyToken   = "access_token"
	StorageKeyProfile = "user"
)
