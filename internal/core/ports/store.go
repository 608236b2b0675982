package ports

import "context"

// Persisted storage keys. All three live in the same durable namespace; the
// session service owns user and token, the cart service owns cart.
const (
	KeyUser  = "user"
	KeyToken = "token"
	KeyCart  = "cart"
)

// Store is the durable string key-value namespace backing the session and
// cart services across restarts. Implementations use last-writer-wins
// semantics; all writes originate from the single command goroutine.
type Store interface {
	// Get returns the stored value and whether the key was present.
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	// Delete removes the given keys; absent keys are not an error.
	Delete(ctx context.Context, keys ...string) error
}
