package exercises

import (
	"fmt"
	"strings"
	"time"

	"github.com/2beens/traininglog/internal/traininglog/ids"
	"github.com/2beens/traininglog/internal/traininglog/muscles"
	"github.com/2beens/traininglog/internal/traininglog/result"
	"github.com/2beens/traininglog/internal/traininglog/validation"
)

var (
	ErrExerciseNotFound = fmt.Errorf("exercise %w", result.ErrNotFound)
	// ErrUnknownTargets is returned when a target id does not name one of the trainee's muscles.
	ErrUnknownTargets = fmt.Errorf("target muscles %w", result.ErrNotFound)
)

// Row is an exercise as scanned from the store, not yet validated.
type Row struct {
	ID        string
	Name      string
	TraineeID string
	CreatedAt time.Time
	UpdatedAt time.Time
}

type Exercise struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	TraineeID string    `json:"traineeId"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// WithTargets is an exercise together with the muscles it trains.
type WithTargets struct {
	Exercise
	Targets []muscles.Muscle `json:"targets"`
}

type Deleted struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Input is the payload of create and update requests. Targets are muscle ids.
type Input struct {
	Name    string   `json:"name"`
	Targets []string `json:"targets"`
}

func Validate(row Row) (Exercise, bool) {
	if !ids.Valid(row.ID) || !ids.Valid(row.TraineeID) || row.Name == "" {
		return Exercise{}, false
	}
	return Exercise(row), true
}

// ValidateWithTargets validates the exercise and every target; one bad target
// rejects the whole exercise.
func ValidateWithTargets(row Row, targets []muscles.Row) (WithTargets, bool) {
	ex, ok := Validate(row)
	if !ok {
		return WithTargets{}, false
	}
	validTargets := make([]muscles.Muscle, 0, len(targets))
	for _, t := range targets {
		m, ok := muscles.Validate(t)
		if !ok {
			return WithTargets{}, false
		}
		validTargets = append(validTargets, m)
	}
	return WithTargets{Exercise: ex, Targets: validTargets}, true
}

// Normalize trims the name, drops duplicate targets and reports what is wrong with the input.
func (in Input) Normalize() (Input, error) {
	errs := validation.Errors{}

	in.Name = strings.TrimSpace(in.Name)
	if in.Name == "" {
		errs.Add("name", "must not be empty")
	}

	if len(in.Targets) == 0 {
		errs.Add("targets", "at least one target muscle is required")
	}
	seen := make(map[string]bool, len(in.Targets))
	targets := make([]string, 0, len(in.Targets))
	for i, id := range in.Targets {
		if !ids.Valid(id) {
			errs.Add(fmt.Sprintf("targets[%d]", i), "invalid muscle id")
			continue
		}
		if seen[id] {
			continue
		}
		seen[id] = true
		targets = append(targets, id)
	}
	in.Targets = targets

	return in, errs.Err()
}
