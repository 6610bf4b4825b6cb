package testkit

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"rushd/models"
)

// DemoUserID is the fixed account used by demo mode and tests
var DemoUserID = uuid.MustParse("c1a7e6a2-3f04-4b8e-9d21-5b6f08b3c2aa")

// InMemoryUserRepository serves the single demo user
type InMemoryUserRepository struct{}

// NewInMemoryUserRepository creates the demo user repository
func NewInMemoryUserRepository() *InMemoryUserRepository {
	return &InMemoryUserRepository{}
}

// GetOrCreateDefaultUser returns the fixed demo user
func (r *InMemoryUserRepository) GetOrCreateDefaultUser(context.Context) (*models.User, error) {
	now := time.Now()
	return &models.User{
		ID:        DemoUserID,
		Email:     "demo@rushd.local",
		Username:  "demo",
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// GetUserByID resolves only the demo user
func (r *InMemoryUserRepository) GetUserByID(_ context.Context, userID uuid.UUID) (*models.User, error) {
	if userID != DemoUserID {
		return nil, fmt.Errorf("user %s not found", userID)
	}
	return r.GetOrCreateDefaultUser(context.Background())
}
