package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"homeward/internal/domain/ticket"
	ticketvo "homeward/internal/domain/ticket/valueobjects"
	"homeward/internal/domain/user"
	uservo "homeward/internal/domain/user/valueobjects"
	"homeward/internal/shared/errors"
	"homeward/internal/shared/logger"
)

func TestAssignTicketUseCase_Execute(t *testing.T) {
	cmd := AssignTicketCommand{Actor: builderActor, TicketID: 5, AssigneeID: 21}

	t.Run("builder assigns submitted ticket", func(t *testing.T) {
		updated := false
		ticketRepo := &mockTicketRepository{
			FindByIDFunc: func(ctx context.Context, ticketID uint) (*ticket.Ticket, error) {
				return storedTicket(t, ticketID, homeownerActor.ID, ticketvo.StatusSubmitted, nil), nil
			},
			UpdateFunc: func(ctx context.Context, tk *ticket.Ticket) error {
				updated = true
				return nil
			},
		}
		userRepo := &mockUserRepository{
			FindByIDFunc: func(ctx context.Context, id uint) (*user.User, error) {
				return storedUser(t, id, uservo.RoleBuilder), nil
			},
		}
		dispatcher := &mockEventDispatcher{}
		uc := NewAssignTicketUseCase(ticketRepo, userRepo, dispatcher, logger.NewLogger())

		result, err := uc.Execute(context.Background(), cmd)
		require.NoError(t, err)
		assert.True(t, updated)
		assert.Equal(t, "assigned", result.Status)
		require.NotNil(t, result.AssigneeID)
		assert.Equal(t, uint(21), *result.AssigneeID)
		assert.Contains(t, dispatcher.eventTypes(), ticket.EventTypeTicketAssigned)
		assert.Contains(t, dispatcher.eventTypes(), ticket.EventTypeTicketStatusChanged)
	})

	t.Run("homeowner cannot assign", func(t *testing.T) {
		ticketRepo := &mockTicketRepository{
			FindByIDFunc: func(ctx context.Context, ticketID uint) (*ticket.Ticket, error) {
				return storedTicket(t, ticketID, homeownerActor.ID, ticketvo.StatusSubmitted, nil), nil
			},
		}
		uc := NewAssignTicketUseCase(ticketRepo, &mockUserRepository{}, &mockEventDispatcher{}, logger.NewLogger())

		homeownerCmd := cmd
		homeownerCmd.Actor = homeownerActor

		_, err := uc.Execute(context.Background(), homeownerCmd)
		require.Error(t, err)
		assert.True(t, errors.IsForbiddenError(err))
	})

	t.Run("missing assignee maps to not found", func(t *testing.T) {
		ticketRepo := &mockTicketRepository{
			FindByIDFunc: func(ctx context.Context, ticketID uint) (*ticket.Ticket, error) {
				return storedTicket(t, ticketID, homeownerActor.ID, ticketvo.StatusSubmitted, nil), nil
			},
		}
		userRepo := &mockUserRepository{
			FindByIDFunc: func(ctx context.Context, id uint) (*user.User, error) {
				return nil, assert.AnError
			},
		}
		uc := NewAssignTicketUseCase(ticketRepo, userRepo, &mockEventDispatcher{}, logger.NewLogger())

		_, err := uc.Execute(context.Background(), cmd)
		require.Error(t, err)
		assert.True(t, errors.IsNotFoundError(err))
		assert.Contains(t, err.Error(), "assignee not found")
	})

	t.Run("homeowner assignee is rejected", func(t *testing.T) {
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
		userRepo := &mockUserRepository{
			FindByIDFunc: func(ctx context.Context, id uint) (*user.User, error) {
				return storedUser(t, id, uservo.RoleHomeowner), nil
			},
		}
		uc := NewAssignTicketUseCase(ticketRepo, userRepo, &mockEventDispatcher{}, logger.NewLogger())

		_, err := uc.Execute(context.Background(), cmd)
		require.Error(t, err)
		assert.True(t, ticket.IsKind(err, ticket.KindAssigneeNotAuthorized))
		assert.False(t, updateCalled)
	})

	t.Run("only submitted tickets can be assigned", func(t *testing.T) {
		ticketRepo := &mockTicketRepository{
			FindByIDFunc: func(ctx context.Context, ticketID uint) (*ticket.Ticket, error) {
				return storedTicket(t, ticketID, homeownerActor.ID, ticketvo.StatusInProgress, uintPtr(20)), nil
			},
		}
		userRepo := &mockUserRepository{
			FindByIDFunc: func(ctx context.Context, id uint) (*user.User, error) {
				return storedUser(t, id, uservo.RoleBuilder), nil
			},
		}
		uc := NewAssignTicketUseCase(ticketRepo, userRepo, &mockEventDispatcher{}, logger.NewLogger())

		_, err := uc.Execute(context.Background(), cmd)
		require.Error(t, err)
		assert.True(t, ticket.IsKind(err, ticket.KindNotInValidState))
	})
}
