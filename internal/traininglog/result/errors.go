package result

import (
	"errors"
	"net/http"

	"github.com/2beens/traininglog/internal/traininglog/validation"
	"github.com/2beens/traininglog/pkg"
)

// ErrNotFound is wrapped by every entity specific not-found error.
var ErrNotFound = errors.New("not found")

// Expected reports whether err is a caller mistake (bad input, missing or
// duplicate row) rather than a store failure.
func Expected(err error) bool {
	var verrs validation.Errors
	return errors.As(err, &verrs) ||
		errors.Is(err, ErrNotFound) ||
		pkg.IsUniqueViolationError(err) ||
		pkg.IsForeignKeyViolationError(err)
}

// StatusCode maps the cause of a failed write to an HTTP status.
func StatusCode(err error) int {
	var verrs validation.Errors
	switch {
	case err == nil:
		return http.StatusOK
	case errors.As(err, &verrs):
		return http.StatusBadRequest
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case pkg.IsUniqueViolationError(err):
		return http.StatusConflict
	case pkg.IsForeignKeyViolationError(err):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

type failureResponse struct {
	Result Status            `json:"result"`
	Errors validation.Errors `json:"errors,omitempty"`
}

// WriteFailure answers a failed write with the status StatusCode picks.
// Validation failures list the offending fields.
func WriteFailure(w http.ResponseWriter, err error) {
	resp := failureResponse{Result: StatusFailure}
	var verrs validation.Errors
	if errors.As(err, &verrs) {
		resp.Errors = verrs
	}
	pkg.WriteJSON(w, resp, StatusCode(err))
}
