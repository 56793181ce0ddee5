package interfaces

import (
	"context"

	"solar_marketplace/internal/domain/entities"
)

// IUserRepository abstracts persistence for users and their role profiles.
//
// CreateWithProfile writes both rows or neither; a taken email yields ErrDuplicate.
// Reads of unknown ids return a zero User (ID == "") and no error.

type IUserRepository interface {
	CreateWithProfile(ctx context.Context, u entities.User, p entities.Profile) (entities.User, error)
	GetByID(ctx context.Context, id string) (entities.User, error)
	GetByEmail(ctx context.Context, email string) (entities.User, error)
	ListByRole(ctx context.Context, role entities.Role, activeOnly bool) ([]entities.User, error)
	CountByRole(ctx context.Context, role entities.Role) (int, error)
	SetActive(ctx context.Context, id string, active bool) (entities.User, error)
	GetProfile(ctx context.Context, id string) (entities.Profile, error)
	UpdateVendorVerification(ctx context.Context, id string, status entities.VerificationStatus) (entities.Profile, error)
}
