package ports

import (
	"context"

	"github.com/google/uuid"

	"rushd/models"
)

// UserRepository resolves accounts. Authentication lives upstream; the
// single-user deployment path relies on GetOrCreateDefaultUser.
type UserRepository interface {
	GetOrCreateDefaultUser(ctx context.Context) (*models.User, error)
	GetUserByID(ctx context.Context, userID uuid.UUID) (*models.User, error)
}
