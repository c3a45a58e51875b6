package muscles

import (
	"fmt"
	"strings"
	"time"

	"github.com/2beens/traininglog/internal/traininglog/ids"
	"github.com/2beens/traininglog/internal/traininglog/result"
	"github.com/2beens/traininglog/internal/traininglog/validation"
)

var ErrMuscleNotFound = fmt.Errorf("muscle %w", result.ErrNotFound)

// Row is a muscle as scanned from the store, not yet validated.
type Row struct {
	ID        string
	Name      string
	TraineeID string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Muscle is a validated muscle. Outside of this package's repo it is
// only obtained through Validate.
type Muscle struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	TraineeID string    `json:"traineeId"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type Deleted struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Input is the payload of create and update requests.
type Input struct {
	Name string `json:"name"`
}

func Validate(row Row) (Muscle, bool) {
	if !ids.Valid(row.ID) || !ids.Valid(row.TraineeID) || row.Name == "" {
		return Muscle{}, false
	}
	return Muscle(row), true
}

// Normalize trims the input and reports what is wrong with it.
func (in Input) Normalize() (Input, error) {
	in.Name = strings.TrimSpace(in.Name)
	errs := validation.Errors{}
	if in.Name == "" {
		errs.Add("name", "must not be empty")
	}
	return in, errs.Err()
}
