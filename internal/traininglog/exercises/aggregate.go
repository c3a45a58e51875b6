package exercises

import (
	"time"

	"github.com/2beens/traininglog/internal/traininglog/muscles"
	"github.com/2beens/traininglog/internal/traininglog/rowagg"
)

// TargetRow is one row of exercises LEFT JOIN mappings LEFT JOIN muscles.
// The muscle columns are NULL for an exercise without targets.
type TargetRow struct {
	Exercise        Row
	MuscleID        *string
	MuscleName      *string
	MuscleTraineeID *string
	MuscleCreatedAt *time.Time
	MuscleUpdatedAt *time.Time
}

func (r TargetRow) muscleRow() (muscles.Row, bool) {
	if r.MuscleID == nil || r.MuscleName == nil || r.MuscleTraineeID == nil ||
		r.MuscleCreatedAt == nil || r.MuscleUpdatedAt == nil {
		return muscles.Row{}, false
	}
	return muscles.Row{
		ID:        *r.MuscleID,
		Name:      *r.MuscleName,
		TraineeID: *r.MuscleTraineeID,
		CreatedAt: *r.MuscleCreatedAt,
		UpdatedAt: *r.MuscleUpdatedAt,
	}, true
}

// Aggregate groups join rows into exercises with their targets.
// A row whose exercise or muscle part is missing or invalid is skipped
// as a whole; the exercise still appears if another of its rows is valid.
// Exercises keep the position of their first valid row, targets keep row order.
func Aggregate(rows []TargetRow) (_ []WithTargets, dropped int) {
	grouped := rowagg.New[string, WithTargets]()
	for _, row := range rows {
		ex, ok := Validate(row.Exercise)
		if !ok {
			dropped++
			continue
		}
		mRow, ok := row.muscleRow()
		if !ok {
			dropped++
			continue
		}
		target, ok := muscles.Validate(mRow)
		if !ok {
			dropped++
			continue
		}

		acc := grouped.GetOrInsert(ex.ID, func() WithTargets {
			return WithTargets{Exercise: ex}
		})
		acc.Targets = append(acc.Targets, target)
	}
	return grouped.Values(), dropped
}
