package exercises

import (
	"context"
	"errors"
	"fmt"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"

	"github.com/2beens/traininglog/internal/telemetry/metrics"
	"github.com/2beens/traininglog/internal/telemetry/tracing"
	"github.com/2beens/traininglog/internal/traininglog/muscles"
	"github.com/2beens/traininglog/internal/traininglog/result"
)

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=exercises_test

type exercisesRepo interface {
	Add(ctx context.Context, traineeID string, in Input) (*Row, []muscles.Row, error)
	Update(ctx context.Context, traineeID, id string, in Input) (*Row, []muscles.Row, error)
	Delete(ctx context.Context, traineeID, id string) (*Deleted, error)
	ListByTraineeID(ctx context.Context, traineeID string) ([]Row, error)
	ListWithTargetsByTraineeID(ctx context.Context, traineeID string) ([]TargetRow, error)
}

const entity = "exercise"

var errInvalidStored = errors.New("stored exercise failed validation")

type Service struct {
	repo    exercisesRepo
	metrics metrics.WriteRecorder
}

func NewService(repo exercisesRepo, metrics metrics.WriteRecorder) *Service {
	return &Service{
		repo:    repo,
		metrics: metrics,
	}
}

func (s *Service) CreateExercise(ctx context.Context, traineeID string, in Input) result.Result[WithTargets] {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.exercises.create")
	defer span.End()

	in, err := in.Normalize()
	if err != nil {
		return failure[WithTargets](s, "create", err)
	}

	row, targets, err := s.repo.Add(ctx, traineeID, in)
	if err != nil {
		return failure[WithTargets](s, "create", fmt.Errorf("add exercise [%s]: %w", in.Name, err))
	}

	ex, ok := ValidateWithTargets(*row, targets)
	if !ok {
		return failure[WithTargets](s, "create", fmt.Errorf("exercise [%s]: %w", row.ID, errInvalidStored))
	}

	span.SetAttributes(attribute.String("exercise.id", ex.ID))
	s.metrics.RecordWrite(entity, "create", true)
	return result.Success(ex)
}

func (s *Service) UpdateExercise(ctx context.Context, traineeID, id string, in Input) result.Result[WithTargets] {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.exercises.update")
	defer span.End()
	span.SetAttributes(attribute.String("exercise.id", id))

	in, err := in.Normalize()
	if err != nil {
		return failure[WithTargets](s, "update", err)
	}

	row, targets, err := s.repo.Update(ctx, traineeID, id, in)
	if err != nil {
		return failure[WithTargets](s, "update", fmt.Errorf("update exercise [%s]: %w", id, err))
	}

	ex, ok := ValidateWithTargets(*row, targets)
	if !ok {
		return failure[WithTargets](s, "update", fmt.Errorf("exercise [%s]: %w", id, errInvalidStored))
	}

	s.metrics.RecordWrite(entity, "update", true)
	return result.Success(ex)
}

func (s *Service) DeleteExercise(ctx context.Context, traineeID, id string) result.Result[Deleted] {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.exercises.delete")
	defer span.End()
	span.SetAttributes(attribute.String("exercise.id", id))

	deleted, err := s.repo.Delete(ctx, traineeID, id)
	if err != nil {
		return failure[Deleted](s, "delete", fmt.Errorf("delete exercise [%s]: %w", id, err))
	}

	s.metrics.RecordWrite(entity, "delete", true)
	return result.Success(*deleted)
}

func (s *Service) GetExercisesByTraineeID(ctx context.Context, traineeID string) (_ []Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.exercises.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := s.repo.ListByTraineeID(ctx, traineeID)
	if err != nil {
		return nil, fmt.Errorf("list exercises: %w", err)
	}

	exercises := make([]Exercise, 0, len(rows))
	for _, row := range rows {
		ex, ok := Validate(row)
		if !ok {
			log.Debugf("dropping invalid exercise row [%s]", row.ID)
			continue
		}
		exercises = append(exercises, ex)
	}

	s.metrics.RecordDroppedRows(entity, len(rows)-len(exercises))
	return exercises, nil
}

// GetExercisesWithTargetsByTraineeID lists the trainee's exercises with their
// target muscles. Exercises with no valid target are not listed.
func (s *Service) GetExercisesWithTargetsByTraineeID(ctx context.Context, traineeID string) (_ []WithTargets, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.exercises.listwithtargets")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := s.repo.ListWithTargetsByTraineeID(ctx, traineeID)
	if err != nil {
		return nil, fmt.Errorf("list exercises with targets: %w", err)
	}

	exercises, dropped := Aggregate(rows)
	if dropped > 0 {
		log.Debugf("dropped %d invalid exercise target rows for [%s]", dropped, traineeID)
	}

	s.metrics.RecordDroppedRows(entity, dropped)
	return exercises, nil
}

func failure[T any](s *Service, op string, err error) result.Result[T] {
	if result.Expected(err) {
		log.Warnf("%s %s: %s", op, entity, err)
	} else {
		log.Errorf("%s %s: %s", op, entity, err)
	}
	s.metrics.RecordWrite(entity, op, false)
	return result.Failure[T](err)
}
