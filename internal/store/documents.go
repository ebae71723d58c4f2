package store

import (
	"context"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// containerDDL is embedded so the service can self-bootstrap its containers.
//
//go:embed container.sql
var containerDDL string

// ErrNotFound is returned when a delete targets a record that does not exist.
var ErrNotFound = errors.New("not found")

// DocumentStore is the durable persistence layer. Each container is a
// Postgres table holding flat JSON documents addressed by
// (partition_key, id); field queries go through jsonb expression indexes.
type DocumentStore struct {
	pool *pgxpool.Pool
}

// New creates a connection pool and fails fast if the store is unreachable.
func New(storeURL string) (*DocumentStore, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pool, err := pgxpool.New(ctx, storeURL)
	if err != nil {
		return nil, err
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	return &DocumentStore{pool: pool}, nil
}

// EnsureContainer creates the container table and one expression index per
// indexed document field. Safe to run multiple times.
func (s *DocumentStore) EnsureContainer(ctx context.Context, name string, indexFields ...string) error {
	table, err := containerIdent(name)
	if err != nil {
		return err
	}

	if _, err := s.pool.Exec(ctx, fmt.Sprintf(containerDDL, table)); err != nil {
		return fmt.Errorf("ensure container %s: %w", name, err)
	}

	for _, field := range indexFields {
		idx := pgx.Identifier{name + "_" + field + "_idx"}.Sanitize()
		ddl := fmt.Sprintf(
			"CREATE INDEX IF NOT EXISTS %s ON %s ((doc->>%s))",
			idx, table, quoteLiteral(field),
		)
		if _, err := s.pool.Exec(ctx, ddl); err != nil {
			return fmt.Errorf("ensure index on %s.%s: %w", name, field, err)
		}
	}

	return nil
}

// Ping is used by the readiness endpoint to validate store connectivity.
func (s *DocumentStore) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

// Close shuts down the connection pool.
func (s *DocumentStore) Close() {
	s.pool.Close()
}

// CreateItem writes one document keyed by (partitionKey, id). A record with
// the same key is overwritten: last write wins, matching the store-level
// concurrency contract.
func (s *DocumentStore) CreateItem(ctx context.Context, container, id, partitionKey string, doc any) error {
	table, err := containerIdent(container)
	if err != nil {
		return err
	}

	body, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("marshal document: %w", err)
	}

	_, err = s.pool.Exec(ctx, fmt.Sprintf(`
		INSERT INTO %s (partition_key, id, doc)
		VALUES ($1, $2, $3)
		ON CONFLICT (partition_key, id) DO UPDATE SET doc = EXCLUDED.doc
	`, table), partitionKey, id, body)

	return err
}

// QueryByField returns every document whose string field equals value,
// ordered by that field then id. No matches is an empty slice, not an error.
func (s *DocumentStore) QueryByField(ctx context.Context, container, field, value string) ([]json.RawMessage, error) {
	table, err := containerIdent(container)
	if err != nil {
		return nil, err
	}

	rows, err := s.pool.Query(ctx, fmt.Sprintf(`
		SELECT doc FROM %s
		WHERE doc->>$1 = $2
		ORDER BY doc->>$1, id
	`, table), field, value)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectDocs(rows)
}

// QueryByFieldRange returns every document whose string field falls in the
// inclusive range [lo, hi], ordered by that field then id.
func (s *DocumentStore) QueryByFieldRange(ctx context.Context, container, field, lo, hi string) ([]json.RawMessage, error) {
	table, err := containerIdent(container)
	if err != nil {
		return nil, err
	}

	rows, err := s.pool.Query(ctx, fmt.Sprintf(`
		SELECT doc FROM %s
		WHERE doc->>$1 >= $2 AND doc->>$1 <= $3
		ORDER BY doc->>$1, id
	`, table), field, lo, hi)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectDocs(rows)
}

// DeleteItem removes the record addressed by (partitionKey, id). It returns
// ErrNotFound when no such record exists.
func (s *DocumentStore) DeleteItem(ctx context.Context, container, id, partitionKey string) error {
	table, err := containerIdent(container)
	if err != nil {
		return err
	}

	tag, err := s.pool.Exec(ctx, fmt.Sprintf(
		"DELETE FROM %s WHERE partition_key = $1 AND id = $2", table,
	), partitionKey, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func collectDocs(rows pgx.Rows) ([]json.RawMessage, error) {
	docs := make([]json.RawMessage, 0)
	for rows.Next() {
		var doc []byte
		if err := rows.Scan(&doc); err != nil {
			return nil, err
		}
		docs = append(docs, json.RawMessage(doc))
	}
	return docs, rows.Err()
}

// containerIdent validates a container name and returns it quoted for use
// in SQL. Names come from code constants, not request input.
func containerIdent(name string) (string, error) {
	if strings.TrimSpace(name) == "" {
		return "", errors.New("container name required")
	}
	return pgx.Identifier{name}.Sanitize(), nil
}

// quoteLiteral escapes a string for use as a SQL literal in DDL, where
// positional parameters are not available.
func quoteLiteral(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}
