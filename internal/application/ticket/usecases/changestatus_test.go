package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"homeward/internal/domain/ticket"
	ticketvo "homeward/internal/domain/ticket/valueobjects"
	"homeward/internal/shared/errors"
	"homeward/internal/shared/logger"
)

func TestChangeTicketStatusUseCase_Execute(t *testing.T) {
	t.Run("builder advances assigned to in_progress", func(t *testing.T) {
		ticketRepo := &mockTicketRepository{
			FindByIDFunc: func(ctx context.Context, ticketID uint) (*ticket.Ticket, error) {
				return storedTicket(t, ticketID, homeownerActor.ID, ticketvo.StatusAssigned, uintPtr(20)), nil
			},
		}
		dispatcher := &mockEventDispatcher{}
		uc := NewChangeTicketStatusUseCase(ticketRepo, dispatcher, logger.NewLogger())

		result, err := uc.Execute(context.Background(), ChangeTicketStatusCommand{
			Actor:    builderActor,
			TicketID: 5,
			Status:   "in_progress",
		})
		require.NoError(t, err)
		assert.Equal(t, "in_progress", result.Status)
		assert.Equal(t, []string{"complete"}, result.NextStatuses)
		assert.Contains(t, dispatcher.eventTypes(), ticket.EventTypeTicketStatusChanged)
	})

	t.Run("unrecognized status is a validation error", func(t *testing.T) {
		uc := NewChangeTicketStatusUseCase(&mockTicketRepository{}, &mockEventDispatcher{}, logger.NewLogger())

		_, err := uc.Execute(context.Background(), ChangeTicketStatusCommand{
			Actor:    builderActor,
			TicketID: 5,
			Status:   "on_hold",
		})
		require.Error(t, err)
		assert.True(t, errors.IsValidationError(err))
		assert.Contains(t, err.Error(), "invalid status: on_hold")
	})

	t.Run("skipping a step is rejected", func(t *testing.T) {
		updateCalled := false
		ticketRepo := &mockTicketRepository{
			FindByIDFunc: func(ctx context.Context, ticketID uint) (*ticket.Ticket, error) {
				return storedTicket(t, ticketID, homeownerActor.ID, ticketvo.StatusSubmitted, nil), nil
			},
			UpdateFunc: func(ctx context.Context, tk *ticket.Ticket) error {
				updateCalled = true
				return nil
			},
		}
		uc := NewChangeTicketStatusUseCase(ticketRepo, &mockEventDispatcher{}, logger.NewLogger())

		_, err := uc.Execute(context.Background(), ChangeTicketStatusCommand{
			Actor:    builderActor,
			TicketID: 5,
			Status:   "complete",
		})
		require.Error(t, err)
		assert.True(t, ticket.IsKind(err, ticket.KindInvalidTransition))
		assert.False(t, updateCalled)
	})

	t.Run("closed tickets cannot move", func(t *testing.T) {
		ticketRepo := &mockTicketRepository{
			FindByIDFunc: func(ctx context.Context, ticketID uint) (*ticket.Ticket, error) {
				return storedTicket(t, ticketID, homeownerActor.ID, ticketvo.StatusClosed, uintPtr(20)), nil
			},
		}
		uc := NewChangeTicketStatusUseCase(ticketRepo, &mockEventDispatcher{}, logger.NewLogger())

		_, err := uc.Execute(context.Background(), ChangeTicketStatusCommand{
			Actor:    adminActor,
			TicketID: 5,
			Status:   "submitted",
		})
		require.Error(t, err)
		assert.True(t, ticket.IsKind(err, ticket.KindInvalidTransition))
	})

	t.Run("homeowner cannot change status", func(t *testing.T) {
		ticketRepo := &mockTicketRepository{
			FindByIDFunc: func(ctx context.Context, ticketID uint) (*ticket.Ticket, error) {
				return storedTicket(t, ticketID, homeownerActor.ID, ticketvo.StatusAssigned, uintPtr(20)), nil
			},
		}
		uc := NewChangeTicketStatusUseCase(ticketRepo, &mockEventDispatcher{}, logger.NewLogger())

		_, err := uc.Execute(context.Background(), ChangeTicketStatusCommand{
			Actor:    homeownerActor,
			TicketID: 5,
			Status:   "in_progress",
		})
		require.Error(t, err)
		assert.True(t, errors.IsForbiddenError(err))
	})
}
