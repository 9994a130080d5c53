package hf

import (
	"encoding/json"

	"github.com/cockroachdb/errors"
)

// InnerResponse is a chat response from the router.
type InnerResponse struct {
	Model      string
	Candidates []Candidate
}

// Candidate represents one completion choice from the model.
type Candidate struct {
	Text         string
	FinishReason string
}

type Response[T any] struct {
	InnerResponse
}

func (r Response[T]) NumCandidates() int {
	return len(r.Candidates)
}

func (r Response[T]) Candidate(idx int) (*Candidate, error) {
	if idx > len(r.Candidates)-1 {
		return nil, errors.Newf("candidate %d does not exist (%d candidates)", idx, len(r.Candidates))
	}

	return &r.Candidates[idx], nil
}

// Get returns the candidate at idx decoded into T. When T is string, the
// completion text is returned as-is.
func (r Response[T]) Get(idx int) (T, error) {
	if idx > len(r.Candidates)-1 {
		return *new(T), errors.Newf("candidate %d does not exist (%d candidates)", idx, len(r.Candidates))
	}

	candidate := r.Candidates[idx]

	switch any(*new(T)).(type) {
	case string:
		return any(candidate.Text).(T), nil

	default:
		output := new(T)

		if err := json.Unmarshal([]byte(candidate.Text), output); err != nil {
			return *new(T), errors.Mark(errors.Wrap(err, "failed to decode response to schema"), ErrParse)
		}

		return *output, nil
	}
}
