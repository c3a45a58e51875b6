package trainees

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"

	"github.com/2beens/traininglog/internal/telemetry/tracing"
	"github.com/2beens/traininglog/internal/traininglog/ids"
)

var ErrInvalidTrainee = errors.New("stored trainee is invalid")

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

// FindOrCreate returns the trainee linked to the profile's auth user id,
// creating it on first login. Name and image are only taken from the
// profile at creation time.
func (r *Repo) FindOrCreate(ctx context.Context, profile Profile) (_ *Trainee, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.trainees.findorcreate")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if _, err := r.db.Exec(ctx, `
		INSERT INTO trainees (id, name, image, auth_user_id)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (auth_user_id) DO NOTHING;`,
		r.newID(), profile.Name, profile.Image, profile.AuthUserID,
	); err != nil {
		return nil, fmt.Errorf("insert trainee: %w", err)
	}

	return r.get(ctx, `WHERE auth_user_id = $1`, profile.AuthUserID)
}

func (r *Repo) GetByID(ctx context.Context, id string) (_ *Trainee, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.trainees.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("trainee.id", id))

	return r.get(ctx, `WHERE id = $1`, id)
}

func (r *Repo) get(ctx context.Context, where string, arg string) (*Trainee, error) {
	var row Row
	err := r.db.QueryRow(ctx,
		`SELECT id, name, image, auth_user_id, created_at, updated_at FROM trainees `+where,
		arg,
	).Scan(&row.ID, &row.Name, &row.Image, &row.AuthUserID, &row.CreatedAt, &row.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrTraineeNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("query trainee: %w", err)
	}

	trainee, ok := Validate(row)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrInvalidTrainee, row.ID)
	}
	return &trainee, nil
}
