// Package schema holds the DDL for the timer database.
package schema

import _ "embed"

// Postgres creates the timers table, the outbox table and its NOTIFY trigger.
//
//go:embed postgres.sql
var Postgres string

// SQLite creates the timers table. The outbox is Postgres only.
//
//go:embed sqlite.sql
var SQLite string
