package exercises

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"

	"github.com/2beens/traininglog/internal/db"
	"github.com/2beens/traininglog/internal/telemetry/tracing"
	"github.com/2beens/traininglog/internal/traininglog/ids"
	"github.com/2beens/traininglog/internal/traininglog/muscles"
)

// Only muscles owned by the trainee are mapped; already existing pairs are left alone.
const insertMappingsSQL = `
	INSERT INTO exercise_muscle_mappings (exercise_id, muscle_id)
	SELECT $1, m.id FROM muscles m
	WHERE m.id = ANY($2) AND m.trainee_id = $3
	ON CONFLICT DO NOTHING;`

const selectTargetsSQL = `
	SELECT m.id, m.name, m.trainee_id, m.created_at, m.updated_at
	FROM exercise_muscle_mappings emm
	JOIN muscles m ON m.id = emm.muscle_id
	WHERE emm.exercise_id = $1
	ORDER BY m.name;`

type Repo struct {
	db    *pgxpool.Pool
	newID ids.Generator
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db:    db,
		newID: ids.New,
	}
}

// Add inserts the exercise and its muscle mappings in one transaction and
// returns the stored exercise with its targets.
func (r *Repo) Add(ctx context.Context, traineeID string, in Input) (_ *Row, _ []muscles.Row, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.exercises.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(
		attribute.String("trainee.id", traineeID),
		attribute.Int("targets.count", len(in.Targets)),
	)

	id := r.newID()
	var row Row
	var targets []muscles.Row
	err = db.InTx(ctx, r.db, func(tx pgx.Tx) error {
		batch := &pgx.Batch{}
		batch.Queue(`
			INSERT INTO exercises (id, name, trainee_id)
			VALUES ($1, $2, $3)
			RETURNING id, name, trainee_id, created_at, updated_at;`,
			id, in.Name, traineeID,
		).QueryRow(func(pr pgx.Row) error {
			if err := scanExercise(pr, &row); err != nil {
				return fmt.Errorf("insert exercise: %w", err)
			}
			return nil
		})
		queueTargets(batch, traineeID, id, in.Targets, &targets)
		return db.SendBatch(ctx, tx, batch)
	})
	if err != nil {
		return nil, nil, err
	}
	return &row, targets, nil
}

// Update renames the exercise and replaces all of its muscle mappings in one transaction.
func (r *Repo) Update(ctx context.Context, traineeID, id string, in Input) (_ *Row, _ []muscles.Row, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.exercises.update")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("exercise.id", id))

	var row Row
	var targets []muscles.Row
	err = db.InTx(ctx, r.db, func(tx pgx.Tx) error {
		batch := &pgx.Batch{}
		batch.Queue(`
			UPDATE exercises SET name = $1, updated_at = now()
			WHERE id = $2 AND trainee_id = $3
			RETURNING id, name, trainee_id, created_at, updated_at;`,
			in.Name, id, traineeID,
		).QueryRow(func(pr pgx.Row) error {
			err := scanExercise(pr, &row)
			if errors.Is(err, pgx.ErrNoRows) {
				return ErrExerciseNotFound
			}
			if err != nil {
				return fmt.Errorf("update exercise: %w", err)
			}
			return nil
		})
		batch.Queue(`DELETE FROM exercise_muscle_mappings WHERE exercise_id = $1;`, id)
		queueTargets(batch, traineeID, id, in.Targets, &targets)
		return db.SendBatch(ctx, tx, batch)
	})
	if err != nil {
		return nil, nil, err
	}
	return &row, targets, nil
}

// Delete removes the exercise's mappings and then the exercise in one transaction.
func (r *Repo) Delete(ctx context.Context, traineeID, id string) (_ *Deleted, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.exercises.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("exercise.id", id))

	var deleted Deleted
	err = db.InTx(ctx, r.db, func(tx pgx.Tx) error {
		batch := &pgx.Batch{}
		batch.Queue(`
			DELETE FROM exercise_muscle_mappings
			WHERE exercise_id IN (SELECT id FROM exercises WHERE id = $1 AND trainee_id = $2);`,
			id, traineeID,
		)
		batch.Queue(`
			DELETE FROM exercises
			WHERE id = $1 AND trainee_id = $2
			RETURNING id, name;`,
			id, traineeID,
		).QueryRow(func(row pgx.Row) error {
			err := row.Scan(&deleted.ID, &deleted.Name)
			if errors.Is(err, pgx.ErrNoRows) {
				return ErrExerciseNotFound
			}
			if err != nil {
				return fmt.Errorf("delete exercise: %w", err)
			}
			return nil
		})
		return db.SendBatch(ctx, tx, batch)
	})
	if err != nil {
		return nil, err
	}
	return &deleted, nil
}

func (r *Repo) ListByTraineeID(ctx context.Context, traineeID string) (_ []Row, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.exercises.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("trainee.id", traineeID))

	rows, err := r.db.Query(ctx, `
		SELECT id, name, trainee_id, created_at, updated_at
		FROM exercises
		WHERE trainee_id = $1
		ORDER BY created_at DESC, id;`,
		traineeID,
	)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	exerciseRows := make([]Row, 0)
	for rows.Next() {
		var row Row
		if err := scanExercise(rows, &row); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		exerciseRows = append(exerciseRows, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}
	return exerciseRows, nil
}

// ListWithTargetsByTraineeID returns one row per (exercise, target) pair,
// newest exercise first.
func (r *Repo) ListWithTargetsByTraineeID(ctx context.Context, traineeID string) (_ []TargetRow, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.exercises.listwithtargets")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("trainee.id", traineeID))

	rows, err := r.db.Query(ctx, `
		SELECT
			e.id, e.name, e.trainee_id, e.created_at, e.updated_at,
			m.id, m.name, m.trainee_id, m.created_at, m.updated_at
		FROM exercises e
		LEFT JOIN exercise_muscle_mappings emm ON emm.exercise_id = e.id
		LEFT JOIN muscles m ON m.id = emm.muscle_id
		WHERE e.trainee_id = $1
		ORDER BY e.created_at DESC, e.id, m.name;`,
		traineeID,
	)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	joinRows := make([]TargetRow, 0)
	for rows.Next() {
		var jr TargetRow
		if err := rows.Scan(
			&jr.Exercise.ID, &jr.Exercise.Name, &jr.Exercise.TraineeID, &jr.Exercise.CreatedAt, &jr.Exercise.UpdatedAt,
			&jr.MuscleID, &jr.MuscleName, &jr.MuscleTraineeID, &jr.MuscleCreatedAt, &jr.MuscleUpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		joinRows = append(joinRows, jr)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}

	span.SetAttributes(attribute.Int("rows.count", len(joinRows)))
	return joinRows, nil
}

// queueTargets maps the exercise to the given muscles and reads the stored
// targets back. A requested id missing from the stored targets is not one of
// the trainee's muscles. Repeated ids and already mapped pairs are no-ops.
func queueTargets(batch *pgx.Batch, traineeID, exerciseID string, muscleIDs []string, targets *[]muscles.Row) {
	batch.Queue(insertMappingsSQL, exerciseID, muscleIDs, traineeID)
	batch.Queue(selectTargetsSQL, exerciseID).
		Query(func(rows pgx.Rows) error {
			stored := make(map[string]bool)
			for rows.Next() {
				var m muscles.Row
				if err := rows.Scan(&m.ID, &m.Name, &m.TraineeID, &m.CreatedAt, &m.UpdatedAt); err != nil {
					return fmt.Errorf("scan target: %w", err)
				}
				stored[m.ID] = true
				*targets = append(*targets, m)
			}
			if err := rows.Err(); err != nil {
				return err
			}
			for _, id := range muscleIDs {
				if !stored[id] {
					return ErrUnknownTargets
				}
			}
			return nil
		})
}

func scanExercise(row pgx.Row, dst *Row) error {
	return row.Scan(&dst.ID, &dst.Name, &dst.TraineeID, &dst.CreatedAt, &dst.UpdatedAt)
}
