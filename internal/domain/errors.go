package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors returned by the service layer. Handlers branch on these
// to pick the user-facing message; anything else is treated as a storage
// failure and reported generically.
var (
	ErrDecisionNotFound = errors.New("decision not found")
	ErrDuplicateVote    = errors.New("voter already has a vote for this decision")
	ErrAILimitExceeded  = errors.New("monthly AI usage limit exceeded")
	ErrNoInstallation   = errors.New("no installation found for workspace")
)

// AlreadyVotedError is returned when a voter already has a vote recorded
// for the decision. It carries the existing vote type so the response can
// tell the user what they voted.
type AlreadyVotedError struct {
	VoteType string
}

func (e *AlreadyVotedError) Error() string {
	return fmt.Sprintf("already voted: %s", e.VoteType)
}

// DecisionClosedError is returned for any vote or close attempt against a
// decision that already reached a terminal status.
type DecisionClosedError struct {
	Status string
}

func (e *DecisionClosedError) Error() string {
	return fmt.Sprintf("decision already closed (status: %s)", strings.ToUpper(e.Status))
}

// ValidationError marks caller mistakes (bad text length, unknown setting,
// out-of-range value). The message is safe to show to the user as-is.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NewValidationError builds a ValidationError with a formatted message.
func NewValidationError(format string, args ...any) *ValidationError {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}
