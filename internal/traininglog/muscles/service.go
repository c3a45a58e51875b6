package muscles

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"

	"github.com/2beens/traininglog/internal/telemetry/metrics"
	"github.com/2beens/traininglog/internal/telemetry/tracing"
	"github.com/2beens/traininglog/internal/traininglog/result"
)

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=muscles_test

type musclesRepo interface {
	Add(ctx context.Context, traineeID, name string) (*Muscle, error)
	Update(ctx context.Context, traineeID, id, name string) (*Muscle, error)
	Delete(ctx context.Context, traineeID, id string) (*Deleted, error)
	ListByTraineeID(ctx context.Context, traineeID string) ([]Row, error)
}

const entity = "muscle"

type Service struct {
	repo    musclesRepo
	metrics metrics.WriteRecorder
}

func NewService(repo musclesRepo, metrics metrics.WriteRecorder) *Service {
	return &Service{
		repo:    repo,
		metrics: metrics,
	}
}

func (s *Service) CreateMuscle(ctx context.Context, traineeID string, in Input) result.Result[Muscle] {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.muscles.create")
	defer span.End()

	in, err := in.Normalize()
	if err != nil {
		return failure[Muscle](s, "create", err)
	}

	m, err := s.repo.Add(ctx, traineeID, in.Name)
	if err != nil {
		return failure[Muscle](s, "create", fmt.Errorf("add muscle [%s]: %w", in.Name, err))
	}

	span.SetAttributes(attribute.String("muscle.id", m.ID))
	s.metrics.RecordWrite(entity, "create", true)
	return result.Success(*m)
}

func (s *Service) UpdateMuscle(ctx context.Context, traineeID, id string, in Input) result.Result[Muscle] {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.muscles.update")
	defer span.End()
	span.SetAttributes(attribute.String("muscle.id", id))

	in, err := in.Normalize()
	if err != nil {
		return failure[Muscle](s, "update", err)
	}

	m, err := s.repo.Update(ctx, traineeID, id, in.Name)
	if err != nil {
		return failure[Muscle](s, "update", fmt.Errorf("update muscle [%s]: %w", id, err))
	}

	s.metrics.RecordWrite(entity, "update", true)
	return result.Success(*m)
}

func (s *Service) DeleteMuscle(ctx context.Context, traineeID, id string) result.Result[Deleted] {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.muscles.delete")
	defer span.End()
	span.SetAttributes(attribute.String("muscle.id", id))

	deleted, err := s.repo.Delete(ctx, traineeID, id)
	if err != nil {
		return failure[Deleted](s, "delete", fmt.Errorf("delete muscle [%s]: %w", id, err))
	}

	s.metrics.RecordWrite(entity, "delete", true)
	return result.Success(*deleted)
}

// GetMusclesByTraineeID lists the trainee's muscles, newest first.
// Rows that fail validation are left out.
func (s *Service) GetMusclesByTraineeID(ctx context.Context, traineeID string) (_ []Muscle, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.muscles.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := s.repo.ListByTraineeID(ctx, traineeID)
	if err != nil {
		return nil, fmt.Errorf("list muscles: %w", err)
	}

	muscles := make([]Muscle, 0, len(rows))
	for _, row := range rows {
		m, ok := Validate(row)
		if !ok {
			log.Debugf("dropping invalid muscle row [%s]", row.ID)
			continue
		}
		muscles = append(muscles, m)
	}

	s.metrics.RecordDroppedRows(entity, len(rows)-len(muscles))
	return muscles, nil
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
