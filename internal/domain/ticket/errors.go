package ticket

import (
	"errors"
	"fmt"

	vo "homeward/internal/domain/ticket/valueobjects"
	uservo "homeward/internal/domain/user/valueobjects"
	apperrors "homeward/internal/shared/errors"
)

// ErrorKind discriminates ticket and comment rule violations.
type ErrorKind string

const (
	KindInvalidTransition     ErrorKind = "invalid_status_transition"
	KindAssigneeNotAuthorized ErrorKind = "assignee_not_authorized"
	KindNotInValidState       ErrorKind = "not_in_valid_state"
	KindNotYetAssigned        ErrorKind = "not_yet_assigned"
	KindEmptyComment          ErrorKind = "empty_comment"
	KindCommentNotAuthorized  ErrorKind = "comment_not_authorized"
	KindCannotMarkInternal    ErrorKind = "cannot_mark_internal"
)

// DomainError is a ticket or comment rule violation with a structured
// payload instead of one error type per rule.
type DomainError struct {
	*apperrors.AppError
	Kind ErrorKind

	// FromStatus/ToStatus are set for KindInvalidTransition; FromStatus also
	// carries the current status for KindNotInValidState.
	FromStatus vo.TicketStatus
	ToStatus   vo.TicketStatus

	// Role carries the offending role for KindAssigneeNotAuthorized and
	// KindCannotMarkInternal.
	Role uservo.Role
}

func (e *DomainError) Unwrap() error {
	return e.AppError
}

func NewInvalidTransitionError(from, to vo.TicketStatus) *DomainError {
	return &DomainError{
		AppError: apperrors.NewValidationError(
			fmt.Sprintf("invalid status transition from '%s' to '%s'", from, to),
		),
		Kind:       KindInvalidTransition,
		FromStatus: from,
		ToStatus:   to,
	}
}

func NewAssigneeNotAuthorizedError(role uservo.Role) *DomainError {
	return &DomainError{
		AppError: apperrors.NewValidationError(
			fmt.Sprintf("user with role '%s' cannot be assigned tickets", role),
			"only builders and admins can be assigned",
		),
		Kind: KindAssigneeNotAuthorized,
		Role: role,
	}
}

func NewNotInValidStateError(current vo.TicketStatus) *DomainError {
	return &DomainError{
		AppError: apperrors.NewValidationError(
			fmt.Sprintf("ticket with status '%s' cannot be assigned", current),
			"ticket must be in 'submitted' status",
		),
		Kind:       KindNotInValidState,
		FromStatus: current,
	}
}

func NewNotYetAssignedError() *DomainError {
	return &DomainError{
		AppError: apperrors.NewValidationError("ticket must be assigned before it can be reassigned"),
		Kind:     KindNotYetAssigned,
	}
}

func NewEmptyCommentError() *DomainError {
	return &DomainError{
		AppError: apperrors.NewValidationError("comment text cannot be empty"),
		Kind:     KindEmptyComment,
	}
}

func NewCommentNotAuthorizedError(reason string) *DomainError {
	return &DomainError{
		AppError: apperrors.NewForbiddenError("not authorized to perform this action", reason),
		Kind:     KindCommentNotAuthorized,
	}
}

func NewCannotMarkInternalError(role uservo.Role) *DomainError {
	return &DomainError{
		AppError: apperrors.NewValidationError(
			fmt.Sprintf("user with role '%s' cannot create internal comments", role),
			"only builders and admins can create internal comments",
		),
		Kind: KindCannotMarkInternal,
		Role: role,
	}
}

// IsKind reports whether err is a ticket DomainError of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr.Kind == kind
	}
	return false
}
