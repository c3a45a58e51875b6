package trainings

import (
	"context"
	"errors"
	"fmt"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"

	"github.com/2beens/traininglog/internal/telemetry/metrics"
	"github.com/2beens/traininglog/internal/telemetry/tracing"
	"github.com/2beens/traininglog/internal/traininglog/ids"
	"github.com/2beens/traininglog/internal/traininglog/result"
)

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=trainings_test

type trainingsRepo interface {
	Create(ctx context.Context, traineeID string, in NewTraining) (*Written, error)
	Update(ctx context.Context, traineeID, id string, in NewTraining) (*Written, error)
	Delete(ctx context.Context, traineeID, id string) (*Deleted, error)
	ListByTraineeID(ctx context.Context, traineeID string) ([]JoinRow, error)
	PersonalRecords(ctx context.Context, traineeID string) ([]PersonalRecord, error)
}

const entity = "training"

var errInvalidStored = errors.New("stored training failed validation")

type Service struct {
	repo    trainingsRepo
	metrics metrics.WriteRecorder
}

func NewService(repo trainingsRepo, metrics metrics.WriteRecorder) *Service {
	return &Service{
		repo:    repo,
		metrics: metrics,
	}
}

func (s *Service) CreateTraining(ctx context.Context, traineeID string, in NewTraining) result.Result[Training] {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.trainings.create")
	defer span.End()

	in, err := in.Normalize()
	if err != nil {
		return failure[Training](s, "create", err)
	}

	w, err := s.repo.Create(ctx, traineeID, in)
	if err != nil {
		return failure[Training](s, "create", fmt.Errorf("create training: %w", err))
	}

	training, err := s.written("create", *w)
	if err != nil {
		return result.Failure[Training](err)
	}

	span.SetAttributes(attribute.String("training.id", training.ID))
	s.metrics.RecordWrite(entity, "create", true)
	return result.Success(training)
}

func (s *Service) UpdateTraining(ctx context.Context, traineeID, id string, in NewTraining) result.Result[Training] {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.trainings.update")
	defer span.End()
	span.SetAttributes(attribute.String("training.id", id))

	in, err := in.Normalize()
	if err != nil {
		return failure[Training](s, "update", err)
	}

	w, err := s.repo.Update(ctx, traineeID, id, in)
	if err != nil {
		return failure[Training](s, "update", fmt.Errorf("update training [%s]: %w", id, err))
	}

	training, err := s.written("update", *w)
	if err != nil {
		return result.Failure[Training](err)
	}

	s.metrics.RecordWrite(entity, "update", true)
	return result.Success(training)
}

func (s *Service) DeleteTraining(ctx context.Context, traineeID, id string) result.Result[Deleted] {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.trainings.delete")
	defer span.End()
	span.SetAttributes(attribute.String("training.id", id))

	deleted, err := s.repo.Delete(ctx, traineeID, id)
	if err != nil {
		return failure[Deleted](s, "delete", fmt.Errorf("delete training [%s]: %w", id, err))
	}

	s.metrics.RecordWrite(entity, "delete", true)
	return result.Success(*deleted)
}

// GetTrainingsByTraineeID lists the trainee's trainings, newest first, with
// sessions and sets in the order they were submitted.
func (s *Service) GetTrainingsByTraineeID(ctx context.Context, traineeID string) (_ []Training, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.trainings.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := s.repo.ListByTraineeID(ctx, traineeID)
	if err != nil {
		return nil, fmt.Errorf("list trainings: %w", err)
	}

	trainings, dropped := Aggregate(rows)
	if dropped > 0 {
		log.Debugf("dropped %d invalid training rows for [%s]", dropped, traineeID)
	}

	s.metrics.RecordDroppedRows(entity, dropped)
	return trainings, nil
}

func (s *Service) GetPersonalRecords(ctx context.Context, traineeID string) (_ []PersonalRecord, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.trainings.personalrecords")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	all, err := s.repo.PersonalRecords(ctx, traineeID)
	if err != nil {
		return nil, fmt.Errorf("personal records: %w", err)
	}

	records := make([]PersonalRecord, 0, len(all))
	for _, pr := range all {
		if !ids.Valid(pr.Exercise.ID) || pr.Exercise.Name == "" || !validWeight(pr.EstimatedMaximumWeight) {
			log.Debugf("dropping invalid personal record for exercise [%s]", pr.Exercise.ID)
			continue
		}
		records = append(records, pr)
	}
	s.metrics.RecordDroppedRows("personal_record", len(all)-len(records))
	return records, nil
}

// written validates what the repo stored and nests it into a training.
// The write is already committed here, so a training that fails validation
// is logged as stored-but-unreadable and still counted as a successful write.
func (s *Service) written(op string, w Written) (Training, error) {
	trainings, _ := Aggregate(w.JoinRows())
	if len(trainings) != 1 {
		err := fmt.Errorf("training [%s]: %w", w.Training.ID, errInvalidStored)
		log.Errorf("%s %s committed but unreadable: %s", op, entity, err)
		s.metrics.RecordWrite(entity, op, true)
		return Training{}, err
	}
	return trainings[0], nil
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
