// Command migrate applies the Postgres schema and seeds the contest timer row.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mcdev12/contest-timer/go/internal/dbconfig"
	"github.com/mcdev12/contest-timer/go/internal/models"
	"github.com/mcdev12/contest-timer/go/internal/schema"
)

func main() {
	duration := flag.Int("duration", models.DefaultTotalDuration, "contest length in seconds for a newly seeded timer")
	skipSeed := flag.Bool("schema-only", false, "apply the schema without seeding the timer row")
	flag.Parse()

	if *duration <= 0 {
		fmt.Fprintf(os.Stderr, "duration must be positive, got %d\n", *duration)
		os.Exit(2)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	// 1) Connect using shared dbconfig
	cfg := dbconfig.NewConfigFromEnv()
	pool, err := pgxpool.New(ctx, cfg.DSN())
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to connect: %v\n", err)
		os.Exit(1)
	}
	defer pool.Close()

	// 2) Apply the schema; every statement is idempotent
	if _, err := pool.Exec(ctx, schema.Postgres); err != nil {
		fmt.Fprintf(os.Stderr, "apply schema: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Schema applied to %s\n", cfg.Redacted())

	if *skipSeed {
		return
	}

	// 3) Seed the timer row, keeping any existing one
	cmdTag, err := pool.Exec(ctx, `
        INSERT INTO timers (id, total_duration, start_time, paused, paused_remaining, version, updated_at)
        VALUES ($1, $2, NULL, TRUE, $2, 0, NOW())
        ON CONFLICT (id) DO NOTHING
    `, models.TimerID, *duration)
	if err != nil {
		fmt.Fprintf(os.Stderr, "seed timer: %v\n", err)
		os.Exit(1)
	}

	if cmdTag.RowsAffected() == 1 {
		fmt.Printf("Seeded timer %q with %ds\n", models.TimerID, *duration)
		return
	}

	var stored int
	if err := pool.QueryRow(ctx, `SELECT total_duration FROM timers WHERE id = $1`, models.TimerID).Scan(&stored); err != nil {
		fmt.Fprintf(os.Stderr, "read timer: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Timer %q already exists with %ds; left unchanged\n", models.TimerID, stored)
}
