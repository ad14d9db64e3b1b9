package ticket

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vo "homeward/internal/domain/ticket/valueobjects"
	uservo "homeward/internal/domain/user/valueobjects"
)

func newValidTicket(t *testing.T) *Ticket {
	t.Helper()
	tk, err := NewTicket(1, 10, "Plumbing", "Kitchen sink leaks under the cabinet", "")
	require.NoError(t, err)
	return tk
}

func reconstructedTicket(t *testing.T, status vo.TicketStatus, assigneeID *uint) *Ticket {
	t.Helper()
	now := time.Now().UTC()
	tk, err := ReconstructTicket(
		1, 2, 10, assigneeID,
		"Electrical", "Outlet in master bedroom sparks",
		"", status, now, now,
	)
	require.NoError(t, err)
	return tk
}

func uintPtr(v uint) *uint { return &v }

func TestNewTicket_ValidInput(t *testing.T) {
	tk := newValidTicket(t)

	assert.Equal(t, uint(1), tk.PropertyID())
	assert.Equal(t, uint(10), tk.SubmitterID())
	assert.Equal(t, "Plumbing", tk.AreaOfIssue())
	assert.Equal(t, vo.StatusSubmitted, tk.Status(), "new ticket must start at 'submitted'")
	assert.Nil(t, tk.AssigneeID())
	assert.True(t, tk.IsOpen())
	assert.False(t, tk.IsAssigned())
	assert.False(t, tk.CreatedAt().IsZero())
	assert.Empty(t, tk.Events())
}

func TestNewTicket_Validation(t *testing.T) {
	tests := []struct {
		name        string
		propertyID  uint
		submitterID uint
		areaOfIssue string
		description string
		wantMsg     string
	}{
		{name: "missing property", propertyID: 0, submitterID: 1, areaOfIssue: "Roof", description: "Shingles missing after storm", wantMsg: "property ID is required"},
		{name: "missing submitter", propertyID: 1, submitterID: 0, areaOfIssue: "Roof", description: "Shingles missing after storm", wantMsg: "submitter ID is required"},
		{name: "missing area of issue", propertyID: 1, submitterID: 1, areaOfIssue: "", description: "Shingles missing after storm", wantMsg: "area of issue is required"},
		{name: "area of issue too long", propertyID: 1, submitterID: 1, areaOfIssue: strings.Repeat("a", 256), description: "Shingles missing after storm", wantMsg: "area of issue exceeds maximum length"},
		{name: "description too short", propertyID: 1, submitterID: 1, areaOfIssue: "Roof", description: "too short", wantMsg: "description must be at least 10 characters"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tk, err := NewTicket(tc.propertyID, tc.submitterID, tc.areaOfIssue, tc.description, "")
			require.Error(t, err)
			assert.Nil(t, tk)
			assert.Contains(t, err.Error(), tc.wantMsg)
		})
	}
}

func TestTicket_SetID_RecordsCreatedEvent(t *testing.T) {
	tk := newValidTicket(t)

	require.NoError(t, tk.SetID(5))
	assert.Equal(t, uint(5), tk.ID())

	events := tk.Events()
	require.Len(t, events, 1)
	assert.Equal(t, EventTypeTicketCreated, events[0].GetEventType())

	tk.ClearEvents()
	assert.Empty(t, tk.Events())

	assert.Error(t, tk.SetID(6))
}

func TestTicket_AssignTo(t *testing.T) {
	t.Run("assigns builder and transitions in one step", func(t *testing.T) {
		tk := reconstructedTicket(t, vo.StatusSubmitted, nil)

		err := tk.AssignTo(20, uservo.RoleBuilder)
		require.NoError(t, err)

		assert.Equal(t, vo.StatusAssigned, tk.Status())
		require.NotNil(t, tk.AssigneeID())
		assert.Equal(t, uint(20), *tk.AssigneeID())
		assert.True(t, tk.IsAssigned())

		eventTypes := make([]string, 0)
		for _, e := range tk.Events() {
			eventTypes = append(eventTypes, e.GetEventType())
		}
		assert.Contains(t, eventTypes, EventTypeTicketStatusChanged)
		assert.Contains(t, eventTypes, EventTypeTicketAssigned)
	})

	t.Run("admin can be assignee", func(t *testing.T) {
		tk := reconstructedTicket(t, vo.StatusSubmitted, nil)
		require.NoError(t, tk.AssignTo(30, uservo.RoleAdmin))
	})

	t.Run("homeowner cannot be assignee", func(t *testing.T) {
		tk := reconstructedTicket(t, vo.StatusSubmitted, nil)

		err := tk.AssignTo(20, uservo.RoleHomeowner)
		require.Error(t, err)
		assert.True(t, IsKind(err, KindAssigneeNotAuthorized))
		assert.Nil(t, tk.AssigneeID(), "failed assignment must not set assignee")
		assert.Equal(t, vo.StatusSubmitted, tk.Status())
	})

	t.Run("only submitted tickets can be assigned", func(t *testing.T) {
		for _, status := range []vo.TicketStatus{vo.StatusAssigned, vo.StatusInProgress, vo.StatusComplete, vo.StatusClosed} {
			tk := reconstructedTicket(t, status, uintPtr(20))

			err := tk.AssignTo(21, uservo.RoleBuilder)
			require.Error(t, err, "status %s", status)
			assert.True(t, IsKind(err, KindNotInValidState))
		}
	})

	t.Run("zero assignee rejected", func(t *testing.T) {
		tk := reconstructedTicket(t, vo.StatusSubmitted, nil)
		assert.Error(t, tk.AssignTo(0, uservo.RoleBuilder))
	})
}

func TestTicket_ReassignTo(t *testing.T) {
	t.Run("swaps assignee without touching status", func(t *testing.T) {
		tk := reconstructedTicket(t, vo.StatusInProgress, uintPtr(20))

		err := tk.ReassignTo(21, uservo.RoleBuilder)
		require.NoError(t, err)

		assert.Equal(t, uint(21), *tk.AssigneeID())
		assert.Equal(t, vo.StatusInProgress, tk.Status())
	})

	t.Run("unassigned ticket cannot be reassigned", func(t *testing.T) {
		tk := reconstructedTicket(t, vo.StatusSubmitted, nil)

		err := tk.ReassignTo(21, uservo.RoleBuilder)
		require.Error(t, err)
		assert.True(t, IsKind(err, KindNotYetAssigned))
	})

	t.Run("homeowner cannot be reassignee", func(t *testing.T) {
		tk := reconstructedTicket(t, vo.StatusAssigned, uintPtr(20))

		err := tk.ReassignTo(21, uservo.RoleHomeowner)
		require.Error(t, err)
		assert.True(t, IsKind(err, KindAssigneeNotAuthorized))
		assert.Equal(t, uint(20), *tk.AssigneeID())
	})
}

func TestTicket_TransitionTo(t *testing.T) {
	t.Run("rejects skipping forward", func(t *testing.T) {
		tk := reconstructedTicket(t, vo.StatusSubmitted, nil)

		err := tk.TransitionTo(vo.StatusComplete)
		require.Error(t, err)
		assert.True(t, IsKind(err, KindInvalidTransition))

		var domainErr *DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, vo.StatusSubmitted, domainErr.FromStatus)
		assert.Equal(t, vo.StatusComplete, domainErr.ToStatus)
	})

	t.Run("rejects moving out of closed", func(t *testing.T) {
		tk := reconstructedTicket(t, vo.StatusClosed, uintPtr(20))
		assert.Error(t, tk.TransitionTo(vo.StatusSubmitted))
		assert.Error(t, tk.TransitionTo(vo.StatusAssigned))
	})

	t.Run("records status changed event", func(t *testing.T) {
		tk := reconstructedTicket(t, vo.StatusAssigned, uintPtr(20))

		require.NoError(t, tk.StartProgress())
		events := tk.Events()
		require.Len(t, events, 1)
		assert.Equal(t, EventTypeTicketStatusChanged, events[0].GetEventType())
	})
}

func TestTicket_FullLifecycle(t *testing.T) {
	tk := reconstructedTicket(t, vo.StatusSubmitted, nil)

	require.NoError(t, tk.AssignTo(20, uservo.RoleBuilder))
	require.NoError(t, tk.StartProgress())
	assert.True(t, tk.IsInProgress())

	require.NoError(t, tk.MarkAsComplete())
	assert.True(t, tk.IsComplete())
	assert.True(t, tk.IsOpen(), "complete still counts as open")

	require.NoError(t, tk.Close())
	assert.True(t, tk.IsClosed())
	assert.False(t, tk.IsOpen())

	assert.Empty(t, tk.ValidNextStatuses())
}

func TestTicket_IsSubmittedBy(t *testing.T) {
	tk := reconstructedTicket(t, vo.StatusSubmitted, nil)
	assert.True(t, tk.IsSubmittedBy(10))
	assert.False(t, tk.IsSubmittedBy(11))
}
