// Package result holds the tagged outcome every write operation returns.
package result

import "encoding/json"

type Status string

const (
	StatusSuccess Status = "success"
	StatusFailure Status = "failure"
)

// Result is either a success carrying Data or a failure carrying the
// underlying cause for logging and status mapping. The cause is never serialized.
type Result[T any] struct {
	Status Status
	Data   T
	err    error
}

func Success[T any](data T) Result[T] {
	return Result[T]{Status: StatusSuccess, Data: data}
}

func Failure[T any](err error) Result[T] {
	return Result[T]{Status: StatusFailure, err: err}
}

func (r Result[T]) OK() bool {
	return r.Status == StatusSuccess
}

// Err returns the cause of a failure, nil on success.
func (r Result[T]) Err() error {
	return r.err
}

func (r Result[T]) MarshalJSON() ([]byte, error) {
	if !r.OK() {
		return json.Marshal(struct {
			Result Status `json:"result"`
		}{Result: r.Status})
	}
	return json.Marshal(struct {
		Result Status `json:"result"`
		Data   T      `json:"data"`
	}{Result: r.Status, Data: r.Data})
}
