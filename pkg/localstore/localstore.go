// Package localstore provides the persistent key-value medium backing the
// data repository. Values are opaque byte strings keyed by collection name.
package localstore

// Store is the persistence contract: three logical keys (candidates,
// education posts, activities) hold JSON-encoded collections. A Store may
// fail on any call; callers treat persistence as best-effort and never let a
// failed write roll back in-memory state.
type Store interface {
	// Get returns the stored value and whether the key exists.
	Get(key string) ([]byte, bool, error)
	Set(key string, value []byte) error
	Delete(key string) error
	// Has reports key existence without reading the value.
	Has(key string) (bool, error)
	Close() error
}
