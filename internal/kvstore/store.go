package kvstore

import (
	"database/sql"
	"encoding/json"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/playdata/internal/model"
)

// store persists key-value pairs in the kv table, one JSON document per key.
type store struct {
	db *sql.DB
	mu sync.RWMutex
}

// New creates a KVStore backed by the given database.
func New(db *sql.DB) KVStore {
	return &store{db: db}
}

func (s *store) Get(key string, out any) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var raw string
	err := s.db.QueryRow("SELECT value FROM kv WHERE key = ?", key).Scan(&raw)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, &model.StoreError{Op: "get", Key: key, Err: err}
	}
	if err := json.Unmarshal([]byte(raw), out); err != nil {
		log.Error("Stored value is not valid JSON", "key", key, "error", err)
		return false, &model.StoreError{Op: "get", Key: key, Err: err}
	}
	return true, nil
}

func (s *store) Set(key string, value any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := json.Marshal(value)
	if err != nil {
		return &model.StoreError{Op: "set", Key: key, Err: err}
	}
	_, err = s.db.Exec(`
		INSERT INTO kv (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value;
	`, key, string(raw))
	if err != nil {
		return &model.StoreError{Op: "set", Key: key, Err: err}
	}
	return nil
}

func (s *store) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.db.Exec("DELETE FROM kv WHERE key = ?", key); err != nil {
		return &model.StoreError{Op: "delete", Key: key, Err: err}
	}
	return nil
}

func (s *store) Keys() ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.Query("SELECT key FROM kv ORDER BY key")
	if err != nil {
		return nil, &model.StoreError{Op: "keys", Key: "", Err: err}
	}
	defer rows.Close()

	var keys []string
	for rows.Next() {
		var k string
		if err := rows.Scan(&k); err != nil {
			return nil, &model.StoreError{Op: "keys", Key: "", Err: err}
		}
		keys = append(keys, k)
	}
	return keys, rows.Err()
}
