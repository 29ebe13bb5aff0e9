package domain

import (
	"errors"
	"fmt"
)

// Typed failures for the booking core. Every operation reports exactly
// one of these; nothing is retried or swallowed.

type NotFoundError struct {
	Resource string
	Err      error
}

func (e NotFoundError) Error() string {
	if e.Resource == "" {
		return "not found"
	}
	return fmt.Sprintf("%s not found", e.Resource)
}

func (e NotFoundError) Unwrap() error { return e.Err }

type ForbiddenError struct {
	Msg string
}

func (e ForbiddenError) Error() string {
	if e.Msg != "" {
		return e.Msg
	}
	return "forbidden"
}

// InvalidRangeError covers non-positive durations: checkout not after
// check-in, zero nights, non-positive extension days.
type InvalidRangeError struct {
	Msg string
}

func (e InvalidRangeError) Error() string {
	if e.Msg != "" {
		return e.Msg
	}
	return "invalid date range"
}

type CapacityExceededError struct {
	Guests   int
	Capacity int
}

func (e CapacityExceededError) Error() string {
	return fmt.Sprintf("guest count %d exceeds room capacity %d", e.Guests, e.Capacity)
}

// UnavailableError marks a room whose availability flag is off.
type UnavailableError struct {
	Resource string
}

func (e UnavailableError) Error() string {
	if e.Resource == "" {
		return "unavailable"
	}
	return fmt.Sprintf("%s is not available", e.Resource)
}

// ConflictError covers date-range overlaps and uniqueness violations.
type ConflictError struct {
	Resource string
	Msg      string
	Err      error
}

func (e ConflictError) Error() string {
	switch {
	case e.Msg != "" && e.Resource != "":
		return fmt.Sprintf("%s conflict: %s", e.Resource, e.Msg)
	case e.Msg != "":
		return e.Msg
	case e.Resource != "":
		return fmt.Sprintf("%s conflict", e.Resource)
	default:
		return "conflict"
	}
}

func (e ConflictError) Unwrap() error { return e.Err }

// InvalidOfferError marks an offer selection that is absent, inactive,
// or not assignable to the booked room.
type InvalidOfferError struct {
	OfferID uint
	Msg     string
}

func (e InvalidOfferError) Error() string {
	if e.Msg != "" {
		return fmt.Sprintf("offer %d: %s", e.OfferID, e.Msg)
	}
	return fmt.Sprintf("offer %d is not valid for this booking", e.OfferID)
}

// InvalidStateError marks an operation illegal for the booking's
// current status.
type InvalidStateError struct {
	Status string
	Op     string
}

func (e InvalidStateError) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("cannot %s a %s booking", e.Op, e.Status)
	}
	return fmt.Sprintf("operation not allowed in status %s", e.Status)
}

type ValidationError struct {
	Field string
	Msg   string
}

func (e ValidationError) Error() string {
	if e.Msg != "" && e.Field != "" {
		return fmt.Sprintf("%s: %s", e.Field, e.Msg)
	}
	if e.Msg != "" {
		return e.Msg
	}
	if e.Field != "" {
		return fmt.Sprintf("invalid %s", e.Field)
	}
	return "validation error"
}

type InternalError struct {
	Msg string
	Err error
}

func (e InternalError) Error() string {
	if e.Msg != "" {
		return e.Msg
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "internal error"
}

func (e InternalError) Unwrap() error { return e.Err }

func IsNotFound(err error) bool {
	var target NotFoundError
	return errors.As(err, &target)
}

func IsForbidden(err error) bool {
	var target ForbiddenError
	return errors.As(err, &target)
}

func IsInvalidRange(err error) bool {
	var target InvalidRangeError
	return errors.As(err, &target)
}

func IsCapacityExceeded(err error) bool {
	var target CapacityExceededError
	return errors.As(err, &target)
}

func IsUnavailable(err error) bool {
	var target UnavailableError
	return errors.As(err, &target)
}

func IsConflict(err error) bool {
	var target ConflictError
	return errors.As(err, &target)
}

func IsInvalidOffer(err error) bool {
	var target InvalidOfferError
	return errors.As(err, &target)
}

func IsInvalidState(err error) bool {
	var target InvalidStateError
	return errors.As(err, &target)
}

func IsValidation(err error) bool {
	var target ValidationError
	return errors.As(err, &target)
}
