package kvstore

// KVStore is the persistent store the tracker writes through to: one
// JSON-serializable value per string key, surviving restarts. There are no
// transactions and no partial updates; every Set replaces the whole value.
type KVStore interface {
	// Get unmarshals the value stored under key into out. It returns false
	// and leaves out untouched when the key is absent.
	Get(key string, out any) (bool, error)
	// Set stores value under key, replacing any previous value.
	Set(key string, value any) error
	// Delete removes the key. Deleting an absent key is a no-op.
	Delete(key string) error
	// Keys lists all stored keys in lexical order.
	Keys() ([]string, error)
}
