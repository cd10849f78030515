package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
)

// SQLStore persists collections in MySQL, one table per kind with one JSON
// document per record. A save replaces the whole collection inside a
// single transaction (DELETE followed by per-record INSERTs), so a load
// never observes half a collection; cross-kind operations remain
// non-atomic per the entity store contract. The auto-increment seq column
// preserves insertion order.
type SQLStore struct {
	db *sql.DB
}

// NewSQLStore wraps an existing database handle.
func NewSQLStore(db *sql.DB) *SQLStore {
	return &SQLStore{db: db}
}

// EnsureSchema creates the collection tables when they do not exist yet.
// Called once at startup.
func (s *SQLStore) EnsureSchema(ctx context.Context) error {
	for _, kind := range Kinds {
		q := fmt.Sprintf(
			"CREATE TABLE IF NOT EXISTS `%s` (seq BIGINT UNSIGNED AUTO_INCREMENT PRIMARY KEY, doc JSON NOT NULL)",
			kind)
		if _, err := s.db.ExecContext(ctx, q); err != nil {
			return fmt.Errorf("create table %s: %w", kind, err)
		}
	}
	return nil
}

// Load selects every document of the kind in insertion order and
// unmarshals the collection into dest.
func (s *SQLStore) Load(ctx context.Context, kind Kind, dest any) error {
	if err := checkKind(kind); err != nil {
		return err
	}
	q := fmt.Sprintf("SELECT doc FROM `%s` ORDER BY seq", kind)
	rows, err := s.db.QueryContext(ctx, q)
	if err != nil {
		return fmt.Errorf("load %s: %w", kind, err)
	}
	defer rows.Close()

	docs := make([]json.RawMessage, 0)
	for rows.Next() {
		var doc []byte
		if err := rows.Scan(&doc); err != nil {
			return fmt.Errorf("load %s: %w", kind, err)
		}
		docs = append(docs, json.RawMessage(doc))
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("load %s: %w", kind, err)
	}
	raw, err := json.Marshal(docs)
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, dest)
}

// Save replaces the collection for kind with records inside one
// transaction.
func (s *SQLStore) Save(ctx context.Context, kind Kind, records any) error {
	if err := checkKind(kind); err != nil {
		return err
	}
	raw, err := json.Marshal(records)
	if err != nil {
		return err
	}
	var docs []json.RawMessage
	if err := json.Unmarshal(raw, &docs); err != nil {
		return fmt.Errorf("save %s: records must be a slice: %w", kind, err)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()
	if _, err := tx.ExecContext(ctx, fmt.Sprintf("DELETE FROM `%s`", kind)); err != nil {
		return fmt.Errorf("save %s: %w", kind, err)
	}
	ins := fmt.Sprintf("INSERT INTO `%s` (doc) VALUES (?)", kind)
	for _, doc := range docs {
		if _, err := tx.ExecContext(ctx, ins, []byte(doc)); err != nil {
			return fmt.Errorf("save %s: %w", kind, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return err
	}
	committed = true
	return nil
}
