package trainings

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
)

var (
	recordColumns = []string{"id", "memo", "order", "training_id", "exercise_id"}
	setColumns    = []string{"id", "weight", "repetition", "rpe", "order", "estimated_maximum_weight", "record_id"}
)

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

// Create stores the training with all its records and sets in one transaction.
// Every referenced exercise must belong to the trainee.
func (r *Repo) Create(ctx context.Context, traineeID string, in NewTraining) (_ *Written, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.trainings.create")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(
		attribute.String("trainee.id", traineeID),
		attribute.Int("sessions.count", len(in.Sessions)),
	)

	var w Written
	err = db.InTx(ctx, r.db, func(tx pgx.Tx) error {
		names, err := ownedExerciseNames(ctx, tx, traineeID, in.ExerciseIDs())
		if err != nil {
			return err
		}
		w.ExerciseNames = names

		if err := scanTraining(tx.QueryRow(ctx, `
			INSERT INTO trainings (id, date, trainee_id)
			VALUES ($1, $2, $3)
			RETURNING id, date, trainee_id, created_at, updated_at;`,
			r.newID(), in.Date, traineeID,
		), &w.Training); err != nil {
			return fmt.Errorf("insert training: %w", err)
		}

		w.Records, w.Sets = Flatten(w.Training.ID, in.Sessions, r.newID)
		return copyRows(ctx, tx, w.Records, w.Sets)
	})
	if err != nil {
		return nil, err
	}

	span.SetAttributes(attribute.String("training.id", w.Training.ID))
	return &w, nil
}

// Update changes the training date and replaces all of its records and sets
// in one transaction.
func (r *Repo) Update(ctx context.Context, traineeID, id string, in NewTraining) (_ *Written, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.trainings.update")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("training.id", id))

	var w Written
	err = db.InTx(ctx, r.db, func(tx pgx.Tx) error {
		names, err := ownedExerciseNames(ctx, tx, traineeID, in.ExerciseIDs())
		if err != nil {
			return err
		}
		w.ExerciseNames = names

		batch := &pgx.Batch{}
		batch.Queue(`
			UPDATE trainings SET date = $1, updated_at = now()
			WHERE id = $2 AND trainee_id = $3
			RETURNING id, date, trainee_id, created_at, updated_at;`,
			in.Date, id, traineeID,
		).QueryRow(func(row pgx.Row) error {
			err := scanTraining(row, &w.Training)
			if errors.Is(err, pgx.ErrNoRows) {
				return ErrTrainingNotFound
			}
			if err != nil {
				return fmt.Errorf("update training: %w", err)
			}
			return nil
		})
		batch.Queue(`
			DELETE FROM training_sets
			WHERE record_id IN (SELECT id FROM training_records WHERE training_id = $1);`,
			id,
		)
		batch.Queue(`DELETE FROM training_records WHERE training_id = $1;`, id)
		if err := db.SendBatch(ctx, tx, batch); err != nil {
			return err
		}

		w.Records, w.Sets = Flatten(w.Training.ID, in.Sessions, r.newID)
		return copyRows(ctx, tx, w.Records, w.Sets)
	})
	if err != nil {
		return nil, err
	}
	return &w, nil
}

// Delete reads the training's record ids, then removes its sets, records
// and the training itself in one transaction.
func (r *Repo) Delete(ctx context.Context, traineeID, id string) (_ *Deleted, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.trainings.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("training.id", id))

	var deleted Deleted
	err = db.InTx(ctx, r.db, func(tx pgx.Tx) error {
		rows, err := tx.Query(ctx, `
			SELECT r.id
			FROM training_records r
			JOIN trainings t ON t.id = r.training_id
			WHERE t.id = $1 AND t.trainee_id = $2;`,
			id, traineeID,
		)
		if err != nil {
			return fmt.Errorf("query record ids: %w", err)
		}
		recordIDs, err := pgx.CollectRows(rows, pgx.RowTo[string])
		if err != nil {
			return fmt.Errorf("collect record ids: %w", err)
		}
		span.SetAttributes(attribute.Int("records.count", len(recordIDs)))

		batch := &pgx.Batch{}
		batch.Queue(`DELETE FROM training_sets WHERE record_id = ANY($1);`, recordIDs)
		batch.Queue(`DELETE FROM training_records WHERE id = ANY($1);`, recordIDs)
		batch.Queue(`
			DELETE FROM trainings
			WHERE id = $1 AND trainee_id = $2
			RETURNING id, date;`,
			id, traineeID,
		).QueryRow(func(row pgx.Row) error {
			err := row.Scan(&deleted.ID, &deleted.Date)
			if errors.Is(err, pgx.ErrNoRows) {
				return ErrTrainingNotFound
			}
			if err != nil {
				return fmt.Errorf("delete training: %w", err)
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

// ListByTraineeID returns one row per set, newest training first and
// records and sets in their stored order.
func (r *Repo) ListByTraineeID(ctx context.Context, traineeID string) (_ []JoinRow, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.trainings.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("trainee.id", traineeID))

	rows, err := r.db.Query(ctx, `
		SELECT
			t.id, t.date, t.trainee_id, t.created_at, t.updated_at,
			r.id, r.memo, r."order", e.id, e.name,
			s.id, s.weight, s.repetition, s.rpe, s."order", s.estimated_maximum_weight
		FROM trainings t
		LEFT JOIN training_records r ON r.training_id = t.id
		LEFT JOIN exercises e ON e.id = r.exercise_id
		LEFT JOIN training_sets s ON s.record_id = r.id
		WHERE t.trainee_id = $1
		ORDER BY t.created_at DESC, t.id, r."order", s."order";`,
		traineeID,
	)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	joinRows := make([]JoinRow, 0)
	for rows.Next() {
		var jr JoinRow
		if err := rows.Scan(
			&jr.Training.ID, &jr.Training.Date, &jr.Training.TraineeID, &jr.Training.CreatedAt, &jr.Training.UpdatedAt,
			&jr.SessionID, &jr.Memo, &jr.SessionOrder, &jr.ExerciseID, &jr.ExerciseName,
			&jr.SetID, &jr.Weight, &jr.Repetition, &jr.RPE, &jr.SetOrder, &jr.EstimatedMaximumWeight,
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

// PersonalRecords returns the set with the highest estimated maximum weight
// for every exercise the trainee has logged, earliest date winning ties.
func (r *Repo) PersonalRecords(ctx context.Context, traineeID string) (_ []PersonalRecord, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.trainings.personalrecords")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("trainee.id", traineeID))

	rows, err := r.db.Query(ctx, `
		SELECT pr.exercise_id, pr.exercise_name, pr.estimated_maximum_weight, pr.weight, pr.repetition, pr.date
		FROM (
			SELECT DISTINCT ON (e.id)
				e.id AS exercise_id, e.name AS exercise_name,
				s.estimated_maximum_weight, s.weight, s.repetition, t.date
			FROM training_sets s
			JOIN training_records r ON r.id = s.record_id
			JOIN trainings t ON t.id = r.training_id
			JOIN exercises e ON e.id = r.exercise_id
			WHERE t.trainee_id = $1
			ORDER BY e.id, s.estimated_maximum_weight DESC, t.date
		) pr
		ORDER BY pr.exercise_name;`,
		traineeID,
	)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	records := make([]PersonalRecord, 0)
	for rows.Next() {
		var pr PersonalRecord
		if err := rows.Scan(
			&pr.Exercise.ID, &pr.Exercise.Name, &pr.EstimatedMaximumWeight, &pr.Weight, &pr.Repetition, &pr.Date,
		); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		records = append(records, pr)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}
	return records, nil
}

// ownedExerciseNames maps each exercise id to its name, failing with
// ErrForeignExercise if any id is not one of the trainee's exercises.
func ownedExerciseNames(ctx context.Context, tx pgx.Tx, traineeID string, exerciseIDs []string) (map[string]string, error) {
	rows, err := tx.Query(ctx, `
		SELECT id, name FROM exercises
		WHERE id = ANY($1) AND trainee_id = $2;`,
		exerciseIDs, traineeID,
	)
	if err != nil {
		return nil, fmt.Errorf("query exercises: %w", err)
	}
	defer rows.Close()

	names := make(map[string]string, len(exerciseIDs))
	for rows.Next() {
		var id, name string
		if err := rows.Scan(&id, &name); err != nil {
			return nil, fmt.Errorf("scan exercise: %w", err)
		}
		names[id] = name
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("exercises rows: %w", err)
	}

	if len(names) != len(exerciseIDs) {
		return nil, ErrForeignExercise
	}
	return names, nil
}

// copyRows bulk inserts records and then sets over the COPY protocol.
func copyRows(ctx context.Context, tx pgx.Tx, records []RecordRow, sets []SetRow) error {
	if _, err := tx.CopyFrom(ctx,
		pgx.Identifier{"training_records"},
		recordColumns,
		pgx.CopyFromSlice(len(records), func(i int) ([]any, error) {
			rec := records[i]
			return []any{rec.ID, rec.Memo, rec.Order, rec.TrainingID, rec.ExerciseID}, nil
		}),
	); err != nil {
		return fmt.Errorf("copy training records: %w", err)
	}

	if _, err := tx.CopyFrom(ctx,
		pgx.Identifier{"training_sets"},
		setColumns,
		pgx.CopyFromSlice(len(sets), func(i int) ([]any, error) {
			s := sets[i]
			return []any{s.ID, s.Weight, s.Repetition, s.RPE, s.Order, s.EstimatedMaximumWeight, s.RecordID}, nil
		}),
	); err != nil {
		return fmt.Errorf("copy training sets: %w", err)
	}
	return nil
}

func scanTraining(row pgx.Row, dst *Row) error {
	return row.Scan(&dst.ID, &dst.Date, &dst.TraineeID, &dst.CreatedAt, &dst.UpdatedAt)
}
