package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

const defaultTimeout = 10 * time.Second

// Config captures the settings for establishing a Postgres pool.
type Config struct {
	URL      string
	MaxConns int32
	Timeout  time.Duration
}

// Connect opens a pgx pool, pings it and applies the schema.
func Connect(ctx context.Context, cfg Config) (*pgxpool.Pool, error) {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	poolCfg, err := pgxpool.ParseConfig(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("parse database url: %w", err)
	}
	if cfg.MaxConns > 0 {
		poolCfg.MaxConns = cfg.MaxConns
	}

	connectCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	pool, err := pgxpool.NewWithConfig(connectCtx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}
	if err := pool.Ping(connectCtx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("postgres ping: %w", err)
	}
	if err := migrate(connectCtx, pool); err != nil {
		pool.Close()
		return nil, err
	}
	return pool, nil
}

// migrate creates the per-role credential and profile tables. The unique
// email index on each credential table is what closes the signup race.
func migrate(ctx context.Context, pool *pgxpool.Pool) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS client (
			client_id BIGSERIAL PRIMARY KEY,
			email TEXT NOT NULL,
			password TEXT NOT NULL,
			role TEXT NOT NULL DEFAULT 'client' CHECK (role = 'client'),
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);`,
		`CREATE UNIQUE INDEX IF NOT EXISTS client_email_unique_idx ON client (email);`,
		`CREATE TABLE IF NOT EXISTS freelancer (
			freelancer_id BIGSERIAL PRIMARY KEY,
			email TEXT NOT NULL,
			password TEXT NOT NULL,
			role TEXT NOT NULL DEFAULT 'freelancer' CHECK (role = 'freelancer'),
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);`,
		`CREATE UNIQUE INDEX IF NOT EXISTS freelancer_email_unique_idx ON freelancer (email);`,
		`CREATE TABLE IF NOT EXISTS client_info (
			client_id BIGINT PRIMARY KEY REFERENCES client(client_id),
			name TEXT NOT NULL,
			age INT NOT NULL DEFAULT 0,
			gender TEXT NOT NULL DEFAULT '',
			photo_path TEXT NOT NULL DEFAULT '',
			company TEXT NOT NULL DEFAULT '',
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);`,
		`CREATE TABLE IF NOT EXISTS freelancer_info (
			freelancer_id BIGINT PRIMARY KEY REFERENCES freelancer(freelancer_id),
			name TEXT NOT NULL,
			age INT NOT NULL DEFAULT 0,
			gender TEXT NOT NULL DEFAULT '',
			photo_path TEXT NOT NULL DEFAULT '',
			headline TEXT NOT NULL DEFAULT '',
			skills TEXT[] NOT NULL DEFAULT '{}',
			hourly_rate NUMERIC(10,2) NOT NULL DEFAULT 0,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);`,
	}
	for _, stmt := range stmts {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("apply migrations: %w", err)
		}
	}
	return nil
}
