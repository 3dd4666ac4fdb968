package usecase

import (
	"errors"
	"fmt"

	"taller_xpto/internal/domain/entities"
)

// Error taxonomy shared by all use cases. Every error is returned typed so
// the HTTP adapter can map it without string matching, and every rejected
// transition carries the specific human-readable reason the operator needs.

// ErrConcurrentUpdate is returned when the conditional write that commits a
// work-order mutation loses the version check to a concurrent writer.
var ErrConcurrentUpdate = errors.New("work order was modified concurrently")

// ValidationError rejects malformed input before any write.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

func newValidationError(format string, args ...any) *ValidationError {
	return &ValidationError{Msg: fmt.Sprintf(format, args...)}
}

// NotFoundError: a referenced entity does not exist.
type NotFoundError struct {
	Entity string
	ID     string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Entity, e.ID)
}

// InvalidStateError: an entity-local lifecycle operation was requested from
// a state that does not permit it.
type InvalidStateError struct {
	Entity  string
	ID      string
	Current string
	Op      string
}

func (e *InvalidStateError) Error() string {
	return fmt.Sprintf("%s %s: cannot %s from status %s", e.Entity, e.ID, e.Op, e.Current)
}

// IllegalTransitionError: the (current, target) pair has no edge in the
// work-order transition table, independent of guard conditions.
type IllegalTransitionError struct {
	From entities.OrderStatus
	To   entities.OrderStatus
}

func (e *IllegalTransitionError) Error() string {
	return fmt.Sprintf("illegal transition %s -> %s", e.From, e.To)
}

// GuardViolation: the transition is structurally legal but a cross-entity
// precondition is unmet. Reason is surfaced verbatim to the operator.
type GuardViolation struct {
	Target entities.OrderStatus
	Reason string
}

func (e *GuardViolation) Error() string {
	return fmt.Sprintf("transition to %s rejected: %s", e.Target, e.Reason)
}
