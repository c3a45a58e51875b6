package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	log "github.com/sirupsen/logrus"
)

// Schema creates all training log tables. Every statement is idempotent.
// Foreign keys have no ON DELETE CASCADE. Repos remove dependent rows in the
// same transaction as their parent.
const Schema = `
CREATE TABLE IF NOT EXISTS trainees
(
    id           TEXT PRIMARY KEY,
    name         TEXT        NOT NULL,
    image        TEXT        NOT NULL,
    auth_user_id TEXT        NOT NULL UNIQUE,
    created_at   TIMESTAMPTZ NOT NULL DEFAULT now(),
    updated_at   TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS muscles
(
    id         TEXT PRIMARY KEY,
    name       TEXT        NOT NULL,
    trainee_id TEXT        NOT NULL REFERENCES trainees (id),
    created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
    updated_at TIMESTAMPTZ NOT NULL DEFAULT now(),
    CONSTRAINT muscles_trainee_id_name_unique UNIQUE (trainee_id, name)
);

CREATE TABLE IF NOT EXISTS exercises
(
    id         TEXT PRIMARY KEY,
    name       TEXT        NOT NULL,
    trainee_id TEXT        NOT NULL REFERENCES trainees (id),
    created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
    updated_at TIMESTAMPTZ NOT NULL DEFAULT now(),
    CONSTRAINT exercises_trainee_id_name_unique UNIQUE (trainee_id, name)
);

CREATE TABLE IF NOT EXISTS exercise_muscle_mappings
(
    exercise_id TEXT NOT NULL REFERENCES exercises (id),
    muscle_id   TEXT NOT NULL REFERENCES muscles (id),
    PRIMARY KEY (exercise_id, muscle_id)
);
CREATE INDEX IF NOT EXISTS ix_exercise_muscle_mappings_muscle_id ON exercise_muscle_mappings (muscle_id);

CREATE TABLE IF NOT EXISTS trainings
(
    id         TEXT PRIMARY KEY,
    date       TIMESTAMPTZ NOT NULL,
    trainee_id TEXT        NOT NULL REFERENCES trainees (id),
    created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
    updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
);
CREATE INDEX IF NOT EXISTS ix_trainings_trainee_id_created_at ON trainings (trainee_id, created_at);

CREATE TABLE IF NOT EXISTS training_records
(
    id          TEXT PRIMARY KEY,
    memo        TEXT    NOT NULL DEFAULT '',
    "order"     INTEGER NOT NULL,
    training_id TEXT    NOT NULL REFERENCES trainings (id),
    exercise_id TEXT    NOT NULL REFERENCES exercises (id)
);
CREATE INDEX IF NOT EXISTS ix_training_records_training_id ON training_records (training_id);
CREATE INDEX IF NOT EXISTS ix_training_records_exercise_id ON training_records (exercise_id);

CREATE TABLE IF NOT EXISTS training_sets
(
    id                       TEXT PRIMARY KEY,
    weight                   DOUBLE PRECISION NOT NULL,
    repetition               INTEGER          NOT NULL,
    rpe                      INTEGER,
    "order"                  INTEGER          NOT NULL,
    estimated_maximum_weight DOUBLE PRECISION NOT NULL,
    record_id                TEXT             NOT NULL REFERENCES training_records (id)
);
CREATE INDEX IF NOT EXISTS ix_training_sets_record_id ON training_sets (record_id);
CREATE INDEX IF NOT EXISTS ix_training_sets_estimated_maximum_weight ON training_sets (estimated_maximum_weight);
`

// Migrate applies Schema.
func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	if _, err := pool.Exec(ctx, Schema); err != nil {
		return fmt.Errorf("apply schema: %w", err)
	}
	log.Debugln("db schema applied")
	return nil
}
