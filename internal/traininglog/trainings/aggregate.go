package trainings

import (
	"github.com/2beens/traininglog/internal/traininglog/ids"
	"github.com/2beens/traininglog/internal/traininglog/rowagg"
)

// JoinRow is one row of trainings LEFT JOIN training_records LEFT JOIN
// exercises LEFT JOIN training_sets. Columns of the joined tables are nil
// when the join found nothing. RPE is nullable on its own.
type JoinRow struct {
	Training Row

	SessionID    *string
	Memo         *string
	SessionOrder *int
	ExerciseID   *string
	ExerciseName *string

	SetID                  *string
	Weight                 *float64
	Repetition             *int
	RPE                    *int
	SetOrder               *int
	EstimatedMaximumWeight *float64
}

func (r JoinRow) session(trainingID string) (Session, bool) {
	if r.SessionID == nil || !ids.Valid(*r.SessionID) || r.Memo == nil ||
		r.SessionOrder == nil || *r.SessionOrder < 0 {
		return Session{}, false
	}
	if r.ExerciseID == nil || !ids.Valid(*r.ExerciseID) || r.ExerciseName == nil || *r.ExerciseName == "" {
		return Session{}, false
	}
	return Session{
		ID:         *r.SessionID,
		Memo:       *r.Memo,
		Order:      *r.SessionOrder,
		TrainingID: trainingID,
		Exercise: ExerciseSummary{
			ID:   *r.ExerciseID,
			Name: *r.ExerciseName,
		},
		Sets: []Set{},
	}, true
}

func (r JoinRow) set() (Set, bool) {
	if r.SetID == nil || !ids.Valid(*r.SetID) ||
		r.Weight == nil || !validWeight(*r.Weight) ||
		r.Repetition == nil || *r.Repetition < 0 ||
		!validRPE(r.RPE) ||
		r.SetOrder == nil || *r.SetOrder < 0 ||
		r.EstimatedMaximumWeight == nil || !validWeight(*r.EstimatedMaximumWeight) {
		return Set{}, false
	}
	var rpe *int
	if r.RPE != nil {
		v := *r.RPE
		rpe = &v
	}
	return Set{
		ID:                     *r.SetID,
		Weight:                 *r.Weight,
		Repetition:             *r.Repetition,
		RPE:                    rpe,
		Order:                  *r.SetOrder,
		EstimatedMaximumWeight: *r.EstimatedMaximumWeight,
		RecordID:               *r.SessionID,
	}, true
}

type trainingAcc struct {
	training Training
	sessions *rowagg.OrderedMap[string, Session]
}

// Aggregate nests join rows into trainings, sessions and sets. A row with
// any missing or invalid part is skipped as a whole, so a training or
// session only shows up if at least one of its rows is complete.
// Trainings and sessions keep the position of their first row.
func Aggregate(rows []JoinRow) (_ []Training, dropped int) {
	grouped := rowagg.New[string, trainingAcc]()
	for _, row := range rows {
		training, ok := Validate(row.Training)
		if !ok {
			dropped++
			continue
		}
		session, ok := row.session(training.ID)
		if !ok {
			dropped++
			continue
		}
		set, ok := row.set()
		if !ok {
			dropped++
			continue
		}

		acc := grouped.GetOrInsert(training.ID, func() trainingAcc {
			return trainingAcc{
				training: training,
				sessions: rowagg.New[string, Session](),
			}
		})
		s := acc.sessions.GetOrInsert(session.ID, func() Session {
			return session
		})
		s.Sets = append(s.Sets, set)
	}

	trainings := make([]Training, 0, grouped.Len())
	for _, acc := range grouped.Values() {
		t := acc.training
		t.Sessions = acc.sessions.Values()
		trainings = append(trainings, t)
	}
	return trainings, dropped
}
