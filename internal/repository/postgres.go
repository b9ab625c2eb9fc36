package repository

import (
	"context"
	"database/sql"
	"errors"
)

// PostgresKV 用单张 kv_store 表承载同一份键值布局，作为 redis 之外的备选后端。
type PostgresKV struct {
	dbpool *sql.DB
}

func NewPostgresKV(dbpool *sql.DB) *PostgresKV {
	return &PostgresKV{dbpool: dbpool}
}

// EnsureSchema 在启动时建表，重复执行无副作用。
func (p *PostgresKV) EnsureSchema(ctx context.Context) error {
	query := `
		CREATE TABLE IF NOT EXISTS kv_store (
			key TEXT PRIMARY KEY,
			value JSONB NOT NULL
		)
	`

	_, err := p.dbpool.ExecContext(ctx, query)
	return err
}

func (p *PostgresKV) Get(ctx context.Context, key string) ([]byte, error) {
	query := `SELECT value FROM kv_store WHERE key = $1`

	var value []byte
	if err := p.dbpool.QueryRowContext(ctx, query, key).Scan(&value); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrKeyNotFound
		}
		return nil, err
	}
	return value, nil
}

func (p *PostgresKV) Set(ctx context.Context, key string, value []byte) error {
	query := `
		INSERT INTO kv_store (key, value)
		VALUES ($1, $2)
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value
	`

	_, err := p.dbpool.ExecContext(ctx, query, key, value)
	return err
}

func (p *PostgresKV) Delete(ctx context.Context, key string) error {
	query := `DELETE FROM kv_store WHERE key = $1`

	_, err := p.dbpool.ExecContext(ctx, query, key)
	return err
}
