package auth

import "errors"

var ErrForbidden = errors.New("access denied")

// Policy decides whether id may act on something owned by ownerID.
type Policy func(id Identity, ownerID int64) bool

func IsAdmin(id Identity, _ int64) bool {
	return id.IsAdmin
}

func IsSelfOrAdmin(id Identity, ownerID int64) bool {
	return id.IsAdmin || id.StudentID == ownerID
}

// IsAuthorOrAdmin is IsSelfOrAdmin with the comment author as owner.
func IsAuthorOrAdmin(id Identity, authorID int64) bool {
	return IsSelfOrAdmin(id, authorID)
}

func AnyAuthenticated(Identity, int64) bool {
	return true
}

// Require returns ErrForbidden unless policy allows id on ownerID.
func Require(policy Policy, id Identity, ownerID int64) error {
	if !policy(id, ownerID) {
		return ErrForbidden
	}
	return nil
}
