package trainings

import (
	"fmt"
	"math"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/2beens/traininglog/internal/traininglog/ids"
	"github.com/2beens/traininglog/internal/traininglog/result"
	"github.com/2beens/traininglog/internal/traininglog/validation"
)

const (
	MaxMemoLength = 100
	MaxRPE        = 10
	// MaxWeight and MaxRepetition keep the stored estimate finite and the
	// repetition count inside the INTEGER column.
	MaxWeight     = 10000
	MaxRepetition = 1000
)

var (
	ErrTrainingNotFound = fmt.Errorf("training %w", result.ErrNotFound)
	// ErrForeignExercise is returned when a session names an exercise the trainee does not own.
	ErrForeignExercise = fmt.Errorf("session exercise %w", result.ErrNotFound)
)

// Row is a training as scanned from the store, not yet validated.
type Row struct {
	ID        string
	Date      time.Time
	TraineeID string
	CreatedAt time.Time
	UpdatedAt time.Time
}

type Training struct {
	ID        string    `json:"id"`
	Date      time.Time `json:"date"`
	TraineeID string    `json:"traineeId"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
	Sessions  []Session `json:"sessions"`
}

// ExerciseSummary is the part of an exercise shown inside a session.
type ExerciseSummary struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Session is one exercise performed within a training, stored as a training record.
type Session struct {
	ID         string          `json:"id"`
	Memo       string          `json:"memo"`
	Order      int             `json:"order"`
	TrainingID string          `json:"trainingId"`
	Exercise   ExerciseSummary `json:"exercise"`
	Sets       []Set           `json:"sets"`
}

type Set struct {
	ID         string  `json:"id"`
	Weight     float64 `json:"weight"`
	Repetition int     `json:"repetition"`
	// RPE is nil when not entered.
	RPE                    *int    `json:"rpe"`
	Order                  int     `json:"order"`
	EstimatedMaximumWeight float64 `json:"estimatedMaximumWeight"`
	RecordID               string  `json:"recordId"`
}

type Deleted struct {
	ID   string    `json:"id"`
	Date time.Time `json:"date"`
}

// PersonalRecord is the best estimated one-rep max ever logged for an exercise.
type PersonalRecord struct {
	Exercise               ExerciseSummary `json:"exercise"`
	EstimatedMaximumWeight float64         `json:"estimatedMaximumWeight"`
	Weight                 float64         `json:"weight"`
	Repetition             int             `json:"repetition"`
	Date                   time.Time       `json:"date"`
}

// NewTraining is the payload of create and update requests.
type NewTraining struct {
	Date     time.Time    `json:"date"`
	Sessions []NewSession `json:"sessions"`
}

type NewSession struct {
	ExerciseID string   `json:"exerciseId"`
	Memo       string   `json:"memo"`
	Sets       []NewSet `json:"sets"`
}

type NewSet struct {
	Weight     float64 `json:"weight"`
	Repetition int     `json:"repetition"`
	RPE        *int    `json:"rpe"`
}

// Validate checks the training part of a row. Sessions are filled in by Aggregate.
func Validate(row Row) (Training, bool) {
	if !ids.Valid(row.ID) || !ids.Valid(row.TraineeID) || row.Date.IsZero() {
		return Training{}, false
	}
	return Training{
		ID:        row.ID,
		Date:      row.Date,
		TraineeID: row.TraineeID,
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
		Sessions:  []Session{},
	}, true
}

func validWeight(w float64) bool {
	return w >= 0 && !math.IsNaN(w) && !math.IsInf(w, 0)
}

func validRPE(rpe *int) bool {
	return rpe == nil || (*rpe >= 0 && *rpe <= MaxRPE)
}

// Normalize trims memos and reports every problem with the submission.
func (in NewTraining) Normalize() (NewTraining, error) {
	errs := validation.Errors{}

	if in.Date.IsZero() {
		errs.Add("date", "is required")
	}
	if len(in.Sessions) == 0 {
		errs.Add("sessions", "at least one session is required")
	}

	sessions := make([]NewSession, len(in.Sessions))
	for i, s := range in.Sessions {
		field := fmt.Sprintf("sessions[%d]", i)
		if !ids.Valid(s.ExerciseID) {
			errs.Add(field+".exerciseId", "invalid exercise id")
		}
		s.Memo = strings.TrimSpace(s.Memo)
		if utf8.RuneCountInString(s.Memo) > MaxMemoLength {
			errs.Add(field+".memo", "must be at most %d characters", MaxMemoLength)
		}
		if len(s.Sets) == 0 {
			errs.Add(field+".sets", "at least one set is required")
		}
		for j, set := range s.Sets {
			setField := fmt.Sprintf("%s.sets[%d]", field, j)
			if !validWeight(set.Weight) {
				errs.Add(setField+".weight", "must be a non-negative number")
			} else if set.Weight > MaxWeight {
				errs.Add(setField+".weight", "must be at most %d", MaxWeight)
			}
			if set.Repetition < 0 {
				errs.Add(setField+".repetition", "must not be negative")
			} else if set.Repetition > MaxRepetition {
				errs.Add(setField+".repetition", "must be at most %d", MaxRepetition)
			}
			if !validRPE(set.RPE) {
				errs.Add(setField+".rpe", "must be between 0 and %d", MaxRPE)
			}
		}
		sessions[i] = s
	}
	in.Sessions = sessions

	return in, errs.Err()
}

// ExerciseIDs returns the distinct exercise ids of the sessions in submission order.
func (in NewTraining) ExerciseIDs() []string {
	seen := make(map[string]bool, len(in.Sessions))
	exerciseIDs := make([]string, 0, len(in.Sessions))
	for _, s := range in.Sessions {
		if seen[s.ExerciseID] {
			continue
		}
		seen[s.ExerciseID] = true
		exerciseIDs = append(exerciseIDs, s.ExerciseID)
	}
	return exerciseIDs
}
