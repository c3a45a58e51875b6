package trainees

import (
	"fmt"
	"net/url"
	"time"

	"github.com/2beens/traininglog/internal/traininglog/ids"
	"github.com/2beens/traininglog/internal/traininglog/result"
)

var ErrTraineeNotFound = fmt.Errorf("trainee %w", result.ErrNotFound)

// Row is a trainee as scanned from the store, not yet validated.
type Row struct {
	ID         string
	Name       string
	Image      string
	AuthUserID string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Trainee is a validated trainee. It can only be obtained through Validate.
type Trainee struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Image      string    `json:"image"`
	AuthUserID string    `json:"-"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// Profile is what the identity provider tells us about a user.
type Profile struct {
	AuthUserID string
	Name       string
	Image      string
}

func Validate(row Row) (Trainee, bool) {
	if !ids.Valid(row.ID) || row.Name == "" || row.AuthUserID == "" {
		return Trainee{}, false
	}
	if !validImageURL(row.Image) {
		return Trainee{}, false
	}
	return Trainee(row), true
}

func validImageURL(s string) bool {
	u, err := url.Parse(s)
	if err != nil {
		return false
	}
	return (u.Scheme == "https" || u.Scheme == "http") && u.Host != ""
}
