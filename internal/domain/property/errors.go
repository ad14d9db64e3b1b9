package property

import (
	"errors"
	"fmt"

	apperrors "homeward/internal/shared/errors"
)

// ErrorKind discriminates property rule violations. One tagged error type
// replaces a class-per-rule hierarchy; callers switch on Kind.
type ErrorKind string

const (
	KindBadZip         ErrorKind = "bad_zip"
	KindBadState       ErrorKind = "bad_state"
	KindNotOwned       ErrorKind = "not_owned"
	KindHasOpenTickets ErrorKind = "has_open_tickets"
)

// DomainError is a property rule violation.
type DomainError struct {
	*apperrors.AppError
	Kind ErrorKind

	// OpenTickets carries the offending count for KindHasOpenTickets.
	OpenTickets int
}

func (e *DomainError) Unwrap() error {
	return e.AppError
}

func NewBadZipError(zipCode string) *DomainError {
	return &DomainError{
		AppError: apperrors.NewValidationError(fmt.Sprintf("invalid ZIP code format: %s", zipCode)),
		Kind:     KindBadZip,
	}
}

func NewBadStateError(state string) *DomainError {
	return &DomainError{
		AppError: apperrors.NewValidationError(
			fmt.Sprintf("invalid state code: %s", state),
			"must be a 2-letter US state code",
		),
		Kind: KindBadState,
	}
}

func NewNotOwnedError() *DomainError {
	return &DomainError{
		AppError: apperrors.NewForbiddenError("cannot perform this action on a property you do not own"),
		Kind:     KindNotOwned,
	}
}

func NewHasOpenTicketsError(count int) *DomainError {
	return &DomainError{
		AppError: apperrors.NewValidationError(
			fmt.Sprintf("cannot delete property with %d open ticket(s)", count),
			"close all tickets first",
		),
		Kind:        KindHasOpenTickets,
		OpenTickets: count,
	}
}

// IsKind reports whether err is a property DomainError of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr.Kind == kind
	}
	return false
}
