package ticket

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	uservo "homeward/internal/domain/user/valueobjects"
)

func reconstructedComment(t *testing.T, authorID uint, isInternal bool) *Comment {
	t.Helper()
	now := time.Now().UTC()
	c, err := ReconstructComment(1, 2, authorID, "original body", isInternal, now, now)
	require.NoError(t, err)
	return c
}

func TestNewComment(t *testing.T) {
	t.Run("public comment from homeowner", func(t *testing.T) {
		c, err := NewComment(2, 10, "When will someone look at this?", false, uservo.RoleHomeowner)
		require.NoError(t, err)
		assert.Equal(t, uint(2), c.TicketID())
		assert.Equal(t, uint(10), c.AuthorID())
		assert.False(t, c.IsInternal())
		assert.True(t, c.IsPublic())
	})

	t.Run("internal comment from builder", func(t *testing.T) {
		c, err := NewComment(2, 20, "Needs a second opinion on the wiring", true, uservo.RoleBuilder)
		require.NoError(t, err)
		assert.True(t, c.IsInternal())
	})

	t.Run("internal comment from admin", func(t *testing.T) {
		_, err := NewComment(2, 30, "Escalating to the site supervisor", true, uservo.RoleAdmin)
		require.NoError(t, err)
	})

	t.Run("homeowner cannot mark internal", func(t *testing.T) {
		c, err := NewComment(2, 10, "sneaky internal note", true, uservo.RoleHomeowner)
		require.Error(t, err)
		assert.Nil(t, c)
		assert.True(t, IsKind(err, KindCannotMarkInternal))
	})

	t.Run("empty body rejected", func(t *testing.T) {
		for _, body := range []string{"", "   ", "\t\n"} {
			c, err := NewComment(2, 10, body, false, uservo.RoleHomeowner)
			require.Error(t, err)
			assert.Nil(t, c)
			assert.True(t, IsKind(err, KindEmptyComment))
		}
	})

	t.Run("missing ids rejected", func(t *testing.T) {
		_, err := NewComment(0, 10, "body text here", false, uservo.RoleHomeowner)
		assert.Error(t, err)

		_, err = NewComment(2, 0, "body text here", false, uservo.RoleHomeowner)
		assert.Error(t, err)
	})
}

func TestComment_EditAndDeletePermissions(t *testing.T) {
	c := reconstructedComment(t, 10, false)

	// author
	assert.True(t, c.CanBeEditedBy(10, uservo.RoleHomeowner))
	assert.True(t, c.CanBeDeletedBy(10, uservo.RoleHomeowner))

	// admin, not author
	assert.True(t, c.CanBeEditedBy(99, uservo.RoleAdmin))
	assert.True(t, c.CanBeDeletedBy(99, uservo.RoleAdmin))

	// builder, not author
	assert.False(t, c.CanBeEditedBy(20, uservo.RoleBuilder))
	assert.False(t, c.CanBeDeletedBy(20, uservo.RoleBuilder))

	err := c.EnsureCanBeEditedBy(20, uservo.RoleBuilder)
	require.Error(t, err)
	assert.True(t, IsKind(err, KindCommentNotAuthorized))

	err = c.EnsureCanBeDeletedBy(20, uservo.RoleBuilder)
	require.Error(t, err)
	assert.True(t, IsKind(err, KindCommentNotAuthorized))
}

func TestComment_Visibility(t *testing.T) {
	public := reconstructedComment(t, 10, false)
	internal := reconstructedComment(t, 20, true)

	assert.True(t, public.CanBeViewedBy(uservo.RoleHomeowner))
	assert.True(t, public.CanBeViewedBy(uservo.RoleBuilder))
	assert.True(t, public.CanBeViewedBy(uservo.RoleAdmin))

	assert.False(t, internal.CanBeViewedBy(uservo.RoleHomeowner))
	assert.True(t, internal.CanBeViewedBy(uservo.RoleBuilder))
	assert.True(t, internal.CanBeViewedBy(uservo.RoleAdmin))
}

func TestComment_UpdateBody(t *testing.T) {
	t.Run("author updates body", func(t *testing.T) {
		c := reconstructedComment(t, 10, false)
		require.NoError(t, c.UpdateBody("updated body", 10, uservo.RoleHomeowner))
		assert.Equal(t, "updated body", c.Body())
	})

	t.Run("non-author rejected", func(t *testing.T) {
		c := reconstructedComment(t, 10, false)
		err := c.UpdateBody("updated body", 20, uservo.RoleBuilder)
		require.Error(t, err)
		assert.True(t, IsKind(err, KindCommentNotAuthorized))
		assert.Equal(t, "original body", c.Body())
	})

	t.Run("empty body rejected", func(t *testing.T) {
		c := reconstructedComment(t, 10, false)
		err := c.UpdateBody("   ", 10, uservo.RoleHomeowner)
		require.Error(t, err)
		assert.True(t, IsKind(err, KindEmptyComment))
		assert.Equal(t, "original body", c.Body())
	})
}

func TestComment_MarkAsInternal(t *testing.T) {
	t.Run("admin flips another user's comment", func(t *testing.T) {
		c := reconstructedComment(t, 10, false)
		require.NoError(t, c.MarkAsInternal(99, uservo.RoleAdmin))
		assert.True(t, c.IsInternal())
	})

	t.Run("homeowner author cannot mark own comment internal", func(t *testing.T) {
		c := reconstructedComment(t, 10, false)
		err := c.MarkAsInternal(10, uservo.RoleHomeowner)
		require.Error(t, err)
		assert.True(t, IsKind(err, KindCannotMarkInternal))
		assert.False(t, c.IsInternal())
	})

	t.Run("builder without edit permission rejected", func(t *testing.T) {
		c := reconstructedComment(t, 10, false)
		err := c.MarkAsInternal(20, uservo.RoleBuilder)
		require.Error(t, err)
		assert.True(t, IsKind(err, KindCommentNotAuthorized))
	})
}

func TestComment_MarkAsPublic(t *testing.T) {
	c := reconstructedComment(t, 20, true)

	require.NoError(t, c.MarkAsPublic(20, uservo.RoleBuilder))
	assert.False(t, c.IsInternal())

	c2 := reconstructedComment(t, 20, true)
	err := c2.MarkAsPublic(10, uservo.RoleHomeowner)
	require.Error(t, err)
	assert.True(t, IsKind(err, KindCommentNotAuthorized))
}
