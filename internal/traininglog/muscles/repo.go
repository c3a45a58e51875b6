package muscles

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

func (r *Repo) Add(ctx context.Context, traineeID, name string) (_ *Muscle, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.muscles.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("trainee.id", traineeID))

	var m Muscle
	err = r.db.QueryRow(ctx, `
		INSERT INTO muscles (id, name, trainee_id)
		VALUES ($1, $2, $3)
		RETURNING id, name, trainee_id, created_at, updated_at;`,
		r.newID(), name, traineeID,
	).Scan(&m.ID, &m.Name, &m.TraineeID, &m.CreatedAt, &m.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("insert muscle: %w", err)
	}

	span.SetAttributes(attribute.String("muscle.id", m.ID))
	return &m, nil
}

func (r *Repo) Update(ctx context.Context, traineeID, id, name string) (_ *Muscle, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.muscles.update")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("muscle.id", id))

	var m Muscle
	err = r.db.QueryRow(ctx, `
		UPDATE muscles SET name = $1, updated_at = now()
		WHERE id = $2 AND trainee_id = $3
		RETURNING id, name, trainee_id, created_at, updated_at;`,
		name, id, traineeID,
	).Scan(&m.ID, &m.Name, &m.TraineeID, &m.CreatedAt, &m.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrMuscleNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("update muscle: %w", err)
	}
	return &m, nil
}

// Delete removes the muscle and every exercise mapping pointing at it in one transaction.
func (r *Repo) Delete(ctx context.Context, traineeID, id string) (_ *Deleted, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.muscles.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("muscle.id", id))

	var deleted Deleted
	err = db.InTx(ctx, r.db, func(tx pgx.Tx) error {
		batch := &pgx.Batch{}
		batch.Queue(`
			DELETE FROM exercise_muscle_mappings
			WHERE muscle_id IN (SELECT id FROM muscles WHERE id = $1 AND trainee_id = $2);`,
			id, traineeID,
		)
		batch.Queue(`
			DELETE FROM muscles
			WHERE id = $1 AND trainee_id = $2
			RETURNING id, name;`,
			id, traineeID,
		).QueryRow(func(row pgx.Row) error {
			if err := row.Scan(&deleted.ID, &deleted.Name); err != nil {
				if errors.Is(err, pgx.ErrNoRows) {
					return ErrMuscleNotFound
				}
				return fmt.Errorf("delete muscle: %w", err)
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
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.muscles.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("trainee.id", traineeID))

	rows, err := r.db.Query(ctx, `
		SELECT id, name, trainee_id, created_at, updated_at
		FROM muscles
		WHERE trainee_id = $1
		ORDER BY created_at DESC, id;`,
		traineeID,
	)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	muscleRows := make([]Row, 0)
	for rows.Next() {
		var row Row
		if err := rows.Scan(&row.ID, &row.Name, &row.TraineeID, &row.CreatedAt, &row.UpdatedAt); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		muscleRows = append(muscleRows, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}

	span.SetAttributes(attribute.Int("muscles.count", len(muscleRows)))
	return muscleRows, nil
}
