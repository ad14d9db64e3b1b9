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

func TestGetTicketUseCase_Execute(t *testing.T) {
	ticketRepo := &mockTicketRepository{
		FindByIDFunc: func(ctx context.Context, ticketID uint) (*ticket.Ticket, error) {
			return storedTicket(t, ticketID, homeownerActor.ID, ticketvo.StatusAssigned, uintPtr(20)), nil
		},
	}
	commentRepo := &mockCommentRepository{
		ListByTicketFunc: func(ctx context.Context, ticketID uint) ([]*ticket.Comment, error) {
			return []*ticket.Comment{
				storedComment(t, 1, ticketID, homeownerActor.ID, false),
				storedComment(t, 2, ticketID, builderActor.ID, true),
			}, nil
		},
	}

	t.Run("submitter sees only public comments", func(t *testing.T) {
		uc := NewGetTicketUseCase(ticketRepo, commentRepo, logger.NewLogger())

		result, err := uc.Execute(context.Background(), GetTicketQuery{Actor: homeownerActor, TicketID: 5})
		require.NoError(t, err)
		require.Len(t, result.Comments, 1)
		assert.Equal(t, uint(1), result.Comments[0].ID)
		assert.False(t, result.Comments[0].IsInternal)
	})

	t.Run("staff see internal comments", func(t *testing.T) {
		uc := NewGetTicketUseCase(ticketRepo, commentRepo, logger.NewLogger())

		result, err := uc.Execute(context.Background(), GetTicketQuery{Actor: builderActor, TicketID: 5})
		require.NoError(t, err)
		assert.Len(t, result.Comments, 2)

		result, err = uc.Execute(context.Background(), GetTicketQuery{Actor: adminActor, TicketID: 5})
		require.NoError(t, err)
		assert.Len(t, result.Comments, 2)
	})

	t.Run("other homeowners are forbidden", func(t *testing.T) {
		uc := NewGetTicketUseCase(ticketRepo, commentRepo, logger.NewLogger())

		otherHomeowner := homeownerActor
		otherHomeowner.ID = 11

		_, err := uc.Execute(context.Background(), GetTicketQuery{Actor: otherHomeowner, TicketID: 5})
		require.Error(t, err)
		assert.True(t, errors.IsForbiddenError(err))
	})

	t.Run("missing ticket maps to not found", func(t *testing.T) {
		missingRepo := &mockTicketRepository{
			FindByIDFunc: func(ctx context.Context, ticketID uint) (*ticket.Ticket, error) {
				return nil, assert.AnError
			},
		}
		uc := NewGetTicketUseCase(missingRepo, commentRepo, logger.NewLogger())

		_, err := uc.Execute(context.Background(), GetTicketQuery{Actor: homeownerActor, TicketID: 404})
		require.Error(t, err)
		assert.True(t, errors.IsNotFoundError(err))
	})
}
