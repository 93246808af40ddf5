package db

import (
	"context"
	"fmt"
	"log"
)

// Migration is one additive schema step. SQL must be safe to run twice.
type Migration struct {
	Version int
	Name    string
	SQL     string
}

// HealthLogMigrations builds the health_logs table. Later steps only add
// columns with defaults so rows written by an older schema stay readable.
var HealthLogMigrations = []Migration{
	{
		Version: 1,
		Name:    "create_health_logs",
		SQL: `
			CREATE TABLE IF NOT EXISTS health_logs (
				log_date        TEXT PRIMARY KEY,
				visceral_fat    DOUBLE PRECISION NOT NULL DEFAULT 0,
				skeletal_muscle DOUBLE PRECISION NOT NULL DEFAULT 0,
				bmi             DOUBLE PRECISION NOT NULL DEFAULT 0,
				resting_hr      INTEGER NOT NULL DEFAULT 0,
				bp_sys          INTEGER NOT NULL DEFAULT 0,
				bp_dia          INTEGER NOT NULL DEFAULT 0,
				actual_age      INTEGER NOT NULL DEFAULT 0,
				body_age        INTEGER NOT NULL DEFAULT 0,
				readiness_score INTEGER NOT NULL DEFAULT 0
			)
		`,
	},
	{
		Version: 2,
		Name:    "add_social_mode",
		SQL:     `ALTER TABLE health_logs ADD COLUMN IF NOT EXISTS social_mode BOOLEAN NOT NULL DEFAULT FALSE`,
	},
	{
		Version: 3,
		Name:    "add_micro_workouts",
		SQL:     `ALTER TABLE health_logs ADD COLUMN IF NOT EXISTS micro_workouts INTEGER NOT NULL DEFAULT 0`,
	},
	{
		Version: 4,
		Name:    "add_water_and_alcohol",
		SQL: `
			ALTER TABLE health_logs
				ADD COLUMN IF NOT EXISTS water_ml INTEGER NOT NULL DEFAULT 0,
				ADD COLUMN IF NOT EXISTS no_alcohol BOOLEAN NOT NULL DEFAULT FALSE
		`,
	},
	{
		Version: 5,
		Name:    "add_updated_at",
		SQL:     `ALTER TABLE health_logs ADD COLUMN IF NOT EXISTS updated_at TIMESTAMPTZ NOT NULL DEFAULT now()`,
	},
}

// Migrate applies every step whose version is not yet recorded, in slice order.
func Migrate(ctx context.Context, q Querier, steps []Migration) error {
	_, err := q.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version    INTEGER PRIMARY KEY,
			name       TEXT NOT NULL,
			applied_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)
	`)
	if err != nil {
		return fmt.Errorf("create schema_migrations: %w", err)
	}

	applied, err := appliedVersions(ctx, q)
	if err != nil {
		return fmt.Errorf("read schema_migrations: %w", err)
	}

	for _, step := range steps {
		if applied[step.Version] {
			continue
		}
		if _, err := q.Exec(ctx, step.SQL); err != nil {
			return fmt.Errorf("migration %d %s: %w", step.Version, step.Name, err)
		}
		_, err := q.Exec(ctx, `
			INSERT INTO schema_migrations (version, name)
			VALUES ($1,$2)
			ON CONFLICT (version) DO NOTHING
		`, step.Version, step.Name)
		if err != nil {
			return fmt.Errorf("record migration %d: %w", step.Version, err)
		}
		log.Printf("applied migration %d %s", step.Version, step.Name)
	}
	return nil
}

func appliedVersions(ctx context.Context, q Querier) (map[int]bool, error) {
	rows, err := q.Query(ctx, `SELECT version FROM schema_migrations ORDER BY version`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	applied := map[int]bool{}
	for rows.Next() {
		var v int
		if err := rows.Scan(&v); err != nil {
			return nil, err
		}
		applied[v] = true
	}
	return applied, rows.Err()
}
