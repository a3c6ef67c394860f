package repos

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// DocStore is the remote-document-store boundary: generic CRUD over
// named collections with ordering and equality filters. Every method
// returns an explicit error; callers decide whether to retry, surface,
// or degrade to an empty result. Reads are not guaranteed to observe a
// write made on another connection immediately.
type DocStore struct{ db *sqlx.DB }

func NewDocStore(db *sqlx.DB) *DocStore { return &DocStore{db: db} }

// Field names feed json_extract paths; keep them to a safe alphabet.
var reField = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9_]{0,40}$`)

func now() string { return time.Now().UTC().Format(time.RFC3339Nano) }

func orderClause(orderBy string, desc bool) (string, error) {
	if orderBy == "" {
		orderBy = "createdAt"
	}
	if !reField.MatchString(orderBy) {
		return "", fmt.Errorf("docstore: bad order field %q", orderBy)
	}
	dir := "ASC"
	if desc {
		dir = "DESC"
	}
	return fmt.Sprintf(`ORDER BY json_extract(body, '$.%s') %s`, orderBy, dir), nil
}

// Create inserts a record, assigning an id when none is supplied, and
// returns the assigned id. Timestamps are store-assigned.
func (s *DocStore) Create(collection, id string, v any) (string, error) {
	if id == "" {
		id = uuid.NewString()
	}
	body, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	ts := now()
	_, err = s.db.Exec(`
	  INSERT INTO documents(collection, id, body, created_at, updated_at)
	  VALUES(?,?,?,?,?)
	`, collection, id, string(body), ts, ts)
	if err != nil {
		return "", err
	}
	return id, nil
}

// GetByID unmarshals the record into out; found is false when the id
// is absent (absence is not an error).
func (s *DocStore) GetByID(collection, id string, out any) (bool, error) {
	var body string
	err := s.db.Get(&body, `SELECT body FROM documents WHERE collection=? AND id=?`, collection, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		return false, err
	}
	return true, json.Unmarshal([]byte(body), out)
}

func (s *DocStore) ListAll(collection, orderBy string, desc bool) ([]json.RawMessage, error) {
	oc, err := orderClause(orderBy, desc)
	if err != nil {
		return nil, err
	}
	var bodies []string
	if err := s.db.Select(&bodies, `SELECT body FROM documents WHERE collection=? `+oc, collection); err != nil {
		return nil, err
	}
	return rawAll(bodies), nil
}

func (s *DocStore) ListWhere(collection, field string, value any, orderBy string, desc bool) ([]json.RawMessage, error) {
	if !reField.MatchString(field) {
		return nil, fmt.Errorf("docstore: bad filter field %q", field)
	}
	oc, err := orderClause(orderBy, desc)
	if err != nil {
		return nil, err
	}
	var bodies []string
	q := fmt.Sprintf(`SELECT body FROM documents WHERE collection=? AND json_extract(body, '$.%s') = ? `, field) + oc
	if err := s.db.Select(&bodies, q, collection, value); err != nil {
		return nil, err
	}
	return rawAll(bodies), nil
}

// Update shallow-merges patch keys into the stored record. Returns
// false when the id is absent.
func (s *DocStore) Update(collection, id string, patch map[string]any) (bool, error) {
	var body string
	err := s.db.Get(&body, `SELECT body FROM documents WHERE collection=? AND id=?`, collection, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		return false, err
	}
	var rec map[string]any
	if err := json.Unmarshal([]byte(body), &rec); err != nil {
		return false, err
	}
	for k, v := range patch {
		rec[k] = v
	}
	merged, err := json.Marshal(rec)
	if err != nil {
		return false, err
	}
	_, err = s.db.Exec(`UPDATE documents SET body=?, updated_at=? WHERE collection=? AND id=?`,
		string(merged), now(), collection, id)
	return err == nil, err
}

// Delete returns false when the id was not present.
func (s *DocStore) Delete(collection, id string) (bool, error) {
	res, err := s.db.Exec(`DELETE FROM documents WHERE collection=? AND id=?`, collection, id)
	if err != nil {
		return false, err
	}
	n, _ := res.RowsAffected()
	return n > 0, nil
}

// Put writes a full record under a known id, inserting or replacing.
// Used by stores mirroring their in-memory collections.
func (s *DocStore) Put(collection, id string, v any) error {
	body, err := json.Marshal(v)
	if err != nil {
		return err
	}
	ts := now()
	_, err = s.db.Exec(`
	  INSERT INTO documents(collection, id, body, created_at, updated_at)
	  VALUES(?,?,?,?,?)
	  ON CONFLICT(collection, id) DO UPDATE SET body=excluded.body, updated_at=excluded.updated_at
	`, collection, id, string(body), ts, ts)
	return err
}

func rawAll(bodies []string) []json.RawMessage {
	out := make([]json.RawMessage, 0, len(bodies))
	for _, b := range bodies {
		out = append(out, json.RawMessage(b))
	}
	return out
}

// DecodeAll unmarshals a list result into typed records, skipping no
// rows: a decode failure aborts with the error.
func DecodeAll[T any](raw []json.RawMessage) ([]T, error) {
	out := make([]T, 0, len(raw))
	for _, r := range raw {
		var v T
		if err := json.Unmarshal(r, &v); err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}
