package repos

import (
	"encoding/json"
	"errors"

	badger "github.com/dgraph-io/badger/v4"
)

// StateDB is the durable local state mirror: each store persists its
// whole collection as a JSON snapshot under its own key and hydrates
// from it on construction. No schema versioning; a snapshot that no
// longer decodes is treated as absent.
type StateDB struct{ db *badger.DB }

// OpenState opens the snapshot store at dir; an empty dir opens an
// in-memory instance (tests).
func OpenState(dir string) (*StateDB, error) {
	opts := badger.DefaultOptions(dir).WithLogger(nil)
	if dir == "" {
		opts = opts.WithInMemory(true)
	}
	db, err := badger.Open(opts)
	if err != nil {
		return nil, err
	}
	return &StateDB{db: db}, nil
}

func (s *StateDB) Close() error { return s.db.Close() }

func (s *StateDB) Save(key string, v any) error {
	body, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), body)
	})
}

// Load hydrates out from the snapshot under key; found is false when
// the key is absent or the stored snapshot fails to decode.
func (s *StateDB) Load(key string, out any) (bool, error) {
	var body []byte
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if err != nil {
			return err
		}
		body, err = item.ValueCopy(nil)
		return err
	})
	if err != nil {
		if errors.Is(err, badger.ErrKeyNotFound) {
			return false, nil
		}
		return false, err
	}
	if err := json.Unmarshal(body, out); err != nil {
		return false, nil
	}
	return true, nil
}

func (s *StateDB) Delete(key string) error {
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Delete([]byte(key))
	})
}
