// Package authorization holds the per-entity access-control decisions. The
// policies are pure: they combine role, ownership, and entity state into a
// boolean and never raise errors; adapters translate a deny into a 403.
package authorization

import uservo "homeward/internal/domain/user/valueobjects"

// Actor is the authenticated identity performing an operation.
type Actor struct {
	ID   uint
	Role uservo.Role
}
