package authorization

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"homeward/internal/domain/property"
	propertyvo "homeward/internal/domain/property/valueobjects"
	"homeward/internal/domain/ticket"
	ticketvo "homeward/internal/domain/ticket/valueobjects"
	uservo "homeward/internal/domain/user/valueobjects"
)

var (
	homeowner      = Actor{ID: 10, Role: uservo.RoleHomeowner}
	otherHomeowner = Actor{ID: 11, Role: uservo.RoleHomeowner}
	builder        = Actor{ID: 20, Role: uservo.RoleBuilder}
	admin          = Actor{ID: 30, Role: uservo.RoleAdmin}
)

func ownedProperty(t *testing.T, ownerID uint) *property.Property {
	t.Helper()
	state, ok := propertyvo.NewUSState("TX")
	require.True(t, ok)
	zip, ok := propertyvo.NewZipCode("78701")
	require.True(t, ok)

	now := time.Now().UTC()
	prop, err := property.ReconstructProperty(1, ownerID, "123 Main St", "Austin", state, zip, "", now, now)
	require.NoError(t, err)
	return prop
}

func submittedTicket(t *testing.T, submitterID uint) *ticket.Ticket {
	t.Helper()
	now := time.Now().UTC()
	tk, err := ticket.ReconstructTicket(
		1, 1, submitterID, nil,
		"Plumbing", "Kitchen sink leaks under the cabinet",
		"", ticketvo.StatusSubmitted, now, now,
	)
	require.NoError(t, err)
	return tk
}

func TestPropertyPolicy(t *testing.T) {
	policy := NewPropertyPolicy()
	prop := ownedProperty(t, homeowner.ID)

	t.Run("view any is open to all roles", func(t *testing.T) {
		assert.True(t, policy.ViewAny(homeowner))
		assert.True(t, policy.ViewAny(builder))
		assert.True(t, policy.ViewAny(admin))
	})

	t.Run("view requires ownership or admin", func(t *testing.T) {
		assert.True(t, policy.View(homeowner, prop))
		assert.True(t, policy.View(admin, prop))
		assert.False(t, policy.View(otherHomeowner, prop))
		assert.False(t, policy.View(builder, prop))
	})

	t.Run("only homeowners create properties", func(t *testing.T) {
		assert.True(t, policy.Create(homeowner))
		assert.False(t, policy.Create(builder))
		assert.False(t, policy.Create(admin))
	})

	t.Run("update and delete require ownership or admin", func(t *testing.T) {
		assert.True(t, policy.Update(homeowner, prop))
		assert.True(t, policy.Update(admin, prop))
		assert.False(t, policy.Update(otherHomeowner, prop))
		assert.False(t, policy.Update(builder, prop))

		assert.True(t, policy.Delete(homeowner, prop))
		assert.True(t, policy.Delete(admin, prop))
		assert.False(t, policy.Delete(otherHomeowner, prop))
		assert.False(t, policy.Delete(builder, prop))
	})

	t.Run("restore and force delete are admin only", func(t *testing.T) {
		assert.False(t, policy.Restore(homeowner, prop))
		assert.True(t, policy.Restore(admin, prop))
		assert.False(t, policy.ForceDelete(homeowner, prop))
		assert.True(t, policy.ForceDelete(admin, prop))
	})
}

func TestTicketPolicy(t *testing.T) {
	policy := NewTicketPolicy()
	tk := submittedTicket(t, homeowner.ID)

	t.Run("view allows staff and the submitter", func(t *testing.T) {
		assert.True(t, policy.View(homeowner, tk))
		assert.True(t, policy.View(builder, tk))
		assert.True(t, policy.View(admin, tk))
		assert.False(t, policy.View(otherHomeowner, tk))
	})

	t.Run("only homeowners create tickets", func(t *testing.T) {
		assert.True(t, policy.Create(homeowner))
		assert.False(t, policy.Create(builder))
		assert.False(t, policy.Create(admin))
	})

	t.Run("create for property requires owning it", func(t *testing.T) {
		prop := ownedProperty(t, homeowner.ID)

		assert.True(t, policy.CreateFor(homeowner, prop))
		assert.False(t, policy.CreateFor(otherHomeowner, prop))
		assert.False(t, policy.CreateFor(builder, prop), "builders cannot create tickets at all")
	})

	t.Run("update is staff only", func(t *testing.T) {
		assert.False(t, policy.Update(homeowner, tk), "even the submitter cannot manage status")
		assert.True(t, policy.Update(builder, tk))
		assert.True(t, policy.Update(admin, tk))
	})

	t.Run("delete is admin only", func(t *testing.T) {
		assert.False(t, policy.Delete(homeowner, tk))
		assert.False(t, policy.Delete(builder, tk))
		assert.True(t, policy.Delete(admin, tk))
	})
}
