package dto

import (
	"homeward/internal/domain/ticket"
	"homeward/internal/shared/biztime"
)

type TicketDTO struct {
	ID           uint          `json:"id"`
	PropertyID   uint          `json:"property_id"`
	SubmitterID  uint          `json:"submitter_id"`
	AssigneeID   *uint         `json:"assignee_id,omitempty"`
	AreaOfIssue  string        `json:"area_of_issue"`
	Description  string        `json:"description"`
	ImagePath    string        `json:"image_path,omitempty"`
	Status       string        `json:"status"`
	NextStatuses []string      `json:"next_statuses"`
	Comments     []*CommentDTO `json:"comments,omitempty"`
	CreatedAt    string        `json:"created_at"`
	UpdatedAt    string        `json:"updated_at"`
}

type CommentDTO struct {
	ID         uint   `json:"id"`
	TicketID   uint   `json:"ticket_id"`
	AuthorID   uint   `json:"author_id"`
	Body       string `json:"body"`
	IsInternal bool   `json:"is_internal"`
	CreatedAt  string `json:"created_at"`
	UpdatedAt  string `json:"updated_at"`
}

func FromTicket(t *ticket.Ticket) *TicketDTO {
	next := t.ValidNextStatuses()
	nextStrs := make([]string, 0, len(next))
	for _, s := range next {
		nextStrs = append(nextStrs, s.String())
	}

	return &TicketDTO{
		ID:           t.ID(),
		PropertyID:   t.PropertyID(),
		SubmitterID:  t.SubmitterID(),
		AssigneeID:   t.AssigneeID(),
		AreaOfIssue:  t.AreaOfIssue(),
		Description:  t.Description(),
		ImagePath:    t.ImagePath(),
		Status:       t.Status().String(),
		NextStatuses: nextStrs,
		CreatedAt:    biztime.FormatRFC3339(t.CreatedAt()),
		UpdatedAt:    biztime.FormatRFC3339(t.UpdatedAt()),
	}
}

func FromTickets(tickets []*ticket.Ticket) []*TicketDTO {
	dtos := make([]*TicketDTO, 0, len(tickets))
	for _, t := range tickets {
		dtos = append(dtos, FromTicket(t))
	}
	return dtos
}

func FromComment(c *ticket.Comment) *CommentDTO {
	return &CommentDTO{
		ID:         c.ID(),
		TicketID:   c.TicketID(),
		AuthorID:   c.AuthorID(),
		Body:       c.Body(),
		IsInternal: c.IsInternal(),
		CreatedAt:  biztime.FormatRFC3339(c.CreatedAt()),
		UpdatedAt:  biztime.FormatRFC3339(c.UpdatedAt()),
	}
}

func FromComments(comments []*ticket.Comment) []*CommentDTO {
	dtos := make([]*CommentDTO, 0, len(comments))
	for _, c := range comments {
		dtos = append(dtos, FromComment(c))
	}
	return dtos
}
