package domain

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/contracts-backend/pkg/ctxutil"
)

// User is a staff member known to the system. Role is read-only here;
// it is managed by the identity provider.
type User struct {
	ID           uuid.UUID
	Email        string
	FirstName    string
	LastName     string
	Role         Role
	Department   *string
	IsActive     bool
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// FullName returns "First Last", trimmed when either part is empty.
func (u User) FullName() string {
	switch {
	case u.FirstName == "":
		return u.LastName
	case u.LastName == "":
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}

// Actor is the authenticated caller of an operation.
type Actor struct {
	ID         uuid.UUID
	Email      string
	Role       Role
	Department string
}

// ActorFromCtx builds the actor from the identity stored by the auth
// middleware. Returns false when the request is unauthenticated.
func ActorFromCtx(ctx context.Context) (Actor, bool) {
	id, ok := ctxutil.IdentityFromCtx(ctx)
	if !ok {
		return Actor{}, false
	}
	return Actor{
		ID:         id.UserID,
		Email:      id.Email,
		Role:       Role(id.Role),
		Department: id.Department,
	}, true
}

// IsSystem reports whether the actor is the zero value, i.e. a background job.
func (a Actor) IsSystem() bool {
	return a.ID == uuid.Nil
}

// UserSummary is the subset of User exposed alongside contracts and tasks.
type UserSummary struct {
	ID        uuid.UUID
	Email     string
	FirstName string
	LastName  string
	Role      Role
}

// Summary projects a User to a UserSummary.
func (u User) Summary() UserSummary {
	return UserSummary{
		ID:        u.ID,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Role:      u.Role,
	}
}
