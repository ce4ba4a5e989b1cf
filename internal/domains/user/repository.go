package user

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines data access for the user domain.
type Repository interface {
	Create(ctx context.Context, u *User) (*User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	List(ctx context.Context, offset, limit int) ([]*User, int, error)
	Update(ctx context.Context, u *User) (*User, error)

	// ExistsByEmail reports whether any account owns the email.
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}
