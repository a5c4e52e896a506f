package main

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
	"github.com/rs/zerolog/log"

	"github.com/mcdev12/contest-timer/go/internal/dbconfig"
	"github.com/mcdev12/contest-timer/go/internal/schema"
	"github.com/mcdev12/contest-timer/go/internal/timer"
	timerdb "github.com/mcdev12/contest-timer/go/internal/timer/db"
)

// Store is the timer storage selected by configuration.
type Store struct {
	Timer timer.TimerRepository
	DB    *sql.DB // nil for the memory store
	DSN   string  // set for Postgres; the outbox listener needs it
}

func (s *Store) Close() error {
	if s.DB == nil {
		return nil
	}
	return s.DB.Close()
}

func setupStore(ctx context.Context, cfg *Config) (*Store, error) {
	switch cfg.Store.Driver {
	case "postgres":
		return setupPostgres(ctx)
	case "sqlite":
		return setupSQLite(ctx, cfg.Store.SQLitePath)
	default:
		log.Warn().Msg("using in-memory timer store; state is lost on restart")
		return &Store{Timer: timer.NewMemoryRepository()}, nil
	}
}

func setupPostgres(ctx context.Context) (*Store, error) {
	dbConfig := dbconfig.NewConfigFromEnv()
	dsn := dbConfig.DSN()

	database, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to create database connection: %w", err)
	}
	if err := database.PingContext(ctx); err != nil {
		database.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	log.Info().Str("dsn", dbConfig.Redacted()).Msg("connected to database")

	if err := applyPostgresSchema(ctx, database); err != nil {
		database.Close()
		return nil, err
	}

	return &Store{
		Timer: timer.NewRepository(timerdb.New(database), database).WithOutbox(),
		DB:    database,
		DSN:   dsn,
	}, nil
}

// schemaLockID serializes schema setup across instances starting together.
const schemaLockID = 0x74696d6572

// applyPostgresSchema creates the tables and the outbox trigger if missing.
// Every statement is idempotent, so this is safe on every boot.
func applyPostgresSchema(ctx context.Context, database *sql.DB) error {
	tx, err := database.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin schema transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if _, err := tx.ExecContext(ctx, "SELECT pg_advisory_xact_lock($1)", schemaLockID); err != nil {
		return fmt.Errorf("failed to lock schema: %w", err)
	}
	if _, err := tx.ExecContext(ctx, schema.Postgres); err != nil {
		return fmt.Errorf("failed to apply postgres schema (run tools/migrate with an owner role if this user cannot create tables): %w", err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit schema: %w", err)
	}

	log.Info().Msg("postgres schema is up to date")
	return nil
}

func setupSQLite(ctx context.Context, path string) (*Store, error) {
	database, err := sql.Open("sqlite3", "file:"+path+"?_busy_timeout=5000&_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database: %w", err)
	}
	// One writer at a time; SQLite serializes them anyway.
	database.SetMaxOpenConns(1)

	if _, err := database.ExecContext(ctx, schema.SQLite); err != nil {
		database.Close()
		return nil, fmt.Errorf("failed to apply sqlite schema: %w", err)
	}

	log.Info().Str("path", path).Msg("opened sqlite database")
	return &Store{
		Timer: timer.NewRepository(timerdb.New(database), database),
		DB:    database,
	}, nil
}
