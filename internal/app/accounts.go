package app

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/contracts-backend/internal/auth"
	"github.com/heartmarshall/contracts-backend/internal/domain"
)

type accountStore interface {
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Create(ctx context.Context, u *domain.User) (*domain.User, error)
}

type tokenIssuer interface {
	GenerateAccessToken(actor domain.Actor) (string, error)
}

// AdminInput describes the first administrator account.
type AdminInput struct {
	Email     string
	FirstName string
	LastName  string
	Password  string
}

// BootstrapAdmin creates an active admin account. An existing account with
// the same email is a conflict; it is never promoted or overwritten.
func BootstrapAdmin(ctx context.Context, users accountStore, input AdminInput, now time.Time) (*domain.User, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))
	if _, err := mail.ParseAddress(email); err != nil {
		return nil, domain.NewValidationError("email", "invalid email")
	}

	_, err := users.GetByEmail(ctx, email)
	switch {
	case err == nil:
		return nil, fmt.Errorf("user %s: %w", email, domain.ErrConflict)
	case !errors.Is(err, domain.ErrNotFound):
		return nil, fmt.Errorf("lookup user: %w", err)
	}

	hash, err := auth.HashPassword(input.Password)
	if err != nil {
		return nil, domain.NewValidationError("password", err.Error())
	}

	u, err := users.Create(ctx, &domain.User{
		ID:           uuid.New(),
		Email:        email,
		FirstName:    strings.TrimSpace(input.FirstName),
		LastName:     strings.TrimSpace(input.LastName),
		Role:         domain.RoleAdmin,
		IsActive:     true,
		PasswordHash: hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		return nil, fmt.Errorf("create admin: %w", err)
	}
	return u, nil
}

// IssueToken signs an access token for an existing active user. It backs the
// development `token` command; production tokens come from the identity
// provider.
func IssueToken(ctx context.Context, users accountStore, jwt tokenIssuer, email string) (string, error) {
	u, err := users.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		return "", fmt.Errorf("lookup user: %w", err)
	}
	if !u.IsActive {
		return "", fmt.Errorf("user %s is inactive: %w", u.Email, domain.ErrForbidden)
	}

	var dept string
	if u.Department != nil {
		dept = *u.Department
	}
	return jwt.GenerateAccessToken(domain.Actor{
		ID:         u.ID,
		Email:      u.Email,
		Role:       u.Role,
		Department: dept,
	})
}
