package service

import (
	"errors"
	"sort"
	"strings"
)

// --- Error Definitions ---
var (
	ErrPlanNotFound    = errors.New("plan not found")
	ErrWorkoutNotFound = errors.New("workout not found")
	ErrDayNotFound     = errors.New("workout day not found")
	ErrUserNotFound    = errors.New("user not found")
)

// ValidationError carries one message per violated field, mirroring the
// per-field errors the client form renders inline.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Fields))
	for field, msg := range e.Fields {
		msgs = append(msgs, field+": "+msg)
	}
	sort.Strings(msgs)
	return "validation failed: " + strings.Join(msgs, "; ")
}

// NewValidationError builds a ValidationError from field/message pairs.
func NewValidationError(fields map[string]string) *ValidationError {
	return &ValidationError{Fields: fields}
}
