package ticket

import (
	"fmt"
	"strings"
	"time"

	uservo "homeward/internal/domain/user/valueobjects"
	"homeward/internal/shared/biztime"
)

// Comment belongs to a ticket. Internal comments are visible to builders and
// admins only; ticket-level view authorization is composed at the boundary,
// not here.
type Comment struct {
	id         uint
	ticketID   uint
	authorID   uint
	body       string
	isInternal bool
	createdAt  time.Time
	updatedAt  time.Time
}

// NewComment validates the body and, when isInternal is requested, the
// author's role. Callers that want to coerce rather than reject an
// unauthorized internal flag must do so before calling.
func NewComment(ticketID, authorID uint, body string, isInternal bool, authorRole uservo.Role) (*Comment, error) {
	if ticketID == 0 {
		return nil, fmt.Errorf("ticket ID is required")
	}
	if authorID == 0 {
		return nil, fmt.Errorf("author ID is required")
	}
	if strings.TrimSpace(body) == "" {
		return nil, NewEmptyCommentError()
	}
	if isInternal && !authorRole.CanCreateInternalComments() {
		return nil, NewCannotMarkInternalError(authorRole)
	}

	now := biztime.NowUTC()
	return &Comment{
		ticketID:   ticketID,
		authorID:   authorID,
		body:       body,
		isInternal: isInternal,
		createdAt:  now,
		updatedAt:  now,
	}, nil
}

func ReconstructComment(
	id uint,
	ticketID uint,
	authorID uint,
	body string,
	isInternal bool,
	createdAt, updatedAt time.Time,
) (*Comment, error) {
	if id == 0 {
		return nil, fmt.Errorf("comment ID cannot be zero")
	}
	if ticketID == 0 {
		return nil, fmt.Errorf("ticket ID is required")
	}
	if authorID == 0 {
		return nil, fmt.Errorf("author ID is required")
	}

	return &Comment{
		id:         id,
		ticketID:   ticketID,
		authorID:   authorID,
		body:       body,
		isInternal: isInternal,
		createdAt:  createdAt,
		updatedAt:  updatedAt,
	}, nil
}

func (c *Comment) ID() uint {
	return c.id
}

func (c *Comment) TicketID() uint {
	return c.ticketID
}

func (c *Comment) AuthorID() uint {
	return c.authorID
}

func (c *Comment) Body() string {
	return c.body
}

func (c *Comment) IsInternal() bool {
	return c.isInternal
}

func (c *Comment) IsPublic() bool {
	return !c.isInternal
}

func (c *Comment) CreatedAt() time.Time {
	return c.createdAt
}

func (c *Comment) UpdatedAt() time.Time {
	return c.updatedAt
}

func (c *Comment) SetID(id uint) error {
	if c.id != 0 {
		return fmt.Errorf("comment ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("comment ID cannot be zero")
	}
	c.id = id
	return nil
}

func (c *Comment) IsAuthoredBy(userID uint) bool {
	return c.authorID == userID
}

// CanBeEditedBy allows the author and admins.
func (c *Comment) CanBeEditedBy(userID uint, role uservo.Role) bool {
	return c.IsAuthoredBy(userID) || role.IsAdmin()
}

// CanBeDeletedBy allows the author and admins.
func (c *Comment) CanBeDeletedBy(userID uint, role uservo.Role) bool {
	return c.IsAuthoredBy(userID) || role.IsAdmin()
}

// CanBeViewedBy gates internal comments to builders and admins. Public
// comments are visible to anyone who can view the parent ticket; that check
// belongs to the caller.
func (c *Comment) CanBeViewedBy(role uservo.Role) bool {
	if c.isInternal {
		return role.IsStaff()
	}
	return true
}

func (c *Comment) EnsureCanBeEditedBy(userID uint, role uservo.Role) error {
	if !c.CanBeEditedBy(userID, role) {
		return NewCommentNotAuthorizedError("only the comment author or an admin can edit this comment")
	}
	return nil
}

func (c *Comment) EnsureCanBeDeletedBy(userID uint, role uservo.Role) error {
	if !c.CanBeDeletedBy(userID, role) {
		return NewCommentNotAuthorizedError("only the comment author or an admin can delete this comment")
	}
	return nil
}

// UpdateBody replaces the comment text after checking edit permission and
// re-validating non-emptiness.
func (c *Comment) UpdateBody(newBody string, userID uint, role uservo.Role) error {
	if err := c.EnsureCanBeEditedBy(userID, role); err != nil {
		return err
	}
	if strings.TrimSpace(newBody) == "" {
		return NewEmptyCommentError()
	}

	c.body = newBody
	c.updatedAt = biztime.NowUTC()
	return nil
}

// MarkAsInternal flips the internal flag on. The role check is on the acting
// user, independent of the original author; an admin may flip another user's
// comment.
func (c *Comment) MarkAsInternal(userID uint, role uservo.Role) error {
	if err := c.EnsureCanBeEditedBy(userID, role); err != nil {
		return err
	}
	if !role.CanCreateInternalComments() {
		return NewCannotMarkInternalError(role)
	}

	c.isInternal = true
	c.updatedAt = biztime.NowUTC()
	return nil
}

// MarkAsPublic flips the internal flag off; edit permission is sufficient.
func (c *Comment) MarkAsPublic(userID uint, role uservo.Role) error {
	if err := c.EnsureCanBeEditedBy(userID, role); err != nil {
		return err
	}

	c.isInternal = false
	c.updatedAt = biztime.NowUTC()
	return nil
}
