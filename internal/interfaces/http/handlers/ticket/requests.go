package ticket

import (
	"homeward/internal/application/ticket/usecases"
	"homeward/internal/shared/authorization"
)

type CreateTicketRequest struct {
	PropertyID  uint   `json:"property_id" binding:"required"`
	AreaOfIssue string `json:"area_of_issue" binding:"required,max=255"`
	Description string `json:"description" binding:"required,min=10"`
	ImagePath   string `json:"image_path" binding:"omitempty,max=500"`
}

func (r *CreateTicketRequest) ToCommand(actor authorization.Actor) usecases.CreateTicketCommand {
	return usecases.CreateTicketCommand{
		Actor:       actor,
		PropertyID:  r.PropertyID,
		AreaOfIssue: r.AreaOfIssue,
		Description: r.Description,
		ImagePath:   r.ImagePath,
	}
}

type AssignTicketRequest struct {
	AssigneeID uint `json:"assignee_id" binding:"required"`
}

type UpdateTicketStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=submitted assigned in_progress complete closed"`
}

type AddCommentRequest struct {
	Body       string `json:"body" binding:"required,min=3,max=1000"`
	IsInternal bool   `json:"is_internal"`
}

// ToCommand coerces an internal flag from a role that may not set one to
// false instead of rejecting the request. The domain API still rejects an
// unauthorized flag that reaches it directly.
func (r *AddCommentRequest) ToCommand(actor authorization.Actor, ticketID uint) usecases.AddCommentCommand {
	isInternal := r.IsInternal
	if isInternal && !actor.Role.CanCreateInternalComments() {
		isInternal = false
	}
	return usecases.AddCommentCommand{
		Actor:      actor,
		TicketID:   ticketID,
		Body:       r.Body,
		IsInternal: isInternal,
	}
}
