package trainings

import (
	"github.com/2beens/traininglog/internal/traininglog/ids"
)

// RecordRow is one training_records row produced from a submitted session.
type RecordRow struct {
	ID         string
	Memo       string
	Order      int
	TrainingID string
	ExerciseID string
}

// SetRow is one training_sets row produced from a submitted set.
type SetRow struct {
	ID                     string
	Weight                 float64
	Repetition             int
	RPE                    *int
	Order                  int
	EstimatedMaximumWeight float64
	RecordID               string
}

// Flatten turns submitted sessions into record and set rows ready for bulk
// insert. Every record and set gets a fresh id from newID; positions in the
// input become the order columns. Exercise ids are passed through as given.
func Flatten(trainingID string, sessions []NewSession, newID ids.Generator) (records []RecordRow, sets []SetRow) {
	records = make([]RecordRow, 0, len(sessions))
	for i, s := range sessions {
		record := RecordRow{
			ID:         newID(),
			Memo:       s.Memo,
			Order:      i,
			TrainingID: trainingID,
			ExerciseID: s.ExerciseID,
		}
		records = append(records, record)

		for j, set := range s.Sets {
			sets = append(sets, SetRow{
				ID:                     newID(),
				Weight:                 set.Weight,
				Repetition:             set.Repetition,
				RPE:                    set.RPE,
				Order:                  j,
				EstimatedMaximumWeight: EstimateOneRepMax(set.Weight, set.Repetition),
				RecordID:               record.ID,
			})
		}
	}
	return records, sets
}

// Written is everything a create or update stored for one training.
// ExerciseNames maps the referenced exercise ids to their names.
type Written struct {
	Training      Row
	Records       []RecordRow
	Sets          []SetRow
	ExerciseNames map[string]string
}

// JoinRows lays the written rows out the way the list query returns them,
// records and sets in order.
func (w Written) JoinRows() []JoinRow {
	setsByRecord := make(map[string][]SetRow, len(w.Records))
	for _, s := range w.Sets {
		setsByRecord[s.RecordID] = append(setsByRecord[s.RecordID], s)
	}

	rows := make([]JoinRow, 0, len(w.Sets))
	for _, rec := range w.Records {
		name, known := w.ExerciseNames[rec.ExerciseID]
		for _, s := range setsByRecord[rec.ID] {
			jr := JoinRow{
				Training:               w.Training,
				SessionID:              &rec.ID,
				Memo:                   &rec.Memo,
				SessionOrder:           &rec.Order,
				ExerciseID:             &rec.ExerciseID,
				SetID:                  &s.ID,
				Weight:                 &s.Weight,
				Repetition:             &s.Repetition,
				RPE:                    s.RPE,
				SetOrder:               &s.Order,
				EstimatedMaximumWeight: &s.EstimatedMaximumWeight,
			}
			if known {
				jr.ExerciseName = &name
			}
			rows = append(rows, jr)
		}
	}
	return rows
}
