package services

import (
	"context"

	"github.com/SscSPs/expense_tracker_app/internal/core/domain"
	"github.com/SscSPs/expense_tracker_app/internal/dto"
)

// UserReaderSvc defines read operations for user data
type UserReaderSvc interface {
	// GetUserByID retrieves a user the actor is allowed to see.
	GetUserByID(ctx context.Context, actor domain.Actor, userID string) (*domain.User, error)

	// ListUsers retrieves every user. Admin only.
	ListUsers(ctx context.Context, actor domain.Actor) ([]domain.User, error)

	// ListRoles retrieves the seeded roles.
	ListRoles(ctx context.Context) ([]domain.Role, error)
}

// UserWriterSvc defines write operations for user data
type UserWriterSvc interface {
	// CreateUser provisions a user, assigning the default role when none is given.
	CreateUser(ctx context.Context, req dto.CreateUserRequest) (*domain.User, error)

	// UpdateUser updates an existing user's profile.
	UpdateUser(ctx context.Context, actor domain.Actor, userID string, req dto.UpdateUserRequest) (*domain.User, error)
}

// UserLifecycleSvc defines operations for managing user lifecycle
type UserLifecycleSvc interface {
	// DeleteUser removes a user permanently. Admin only.
	DeleteUser(ctx context.Context, actor domain.Actor, userID string) error
}

// UserSvcFacade combines all user-related service interfaces
type UserSvcFacade interface {
	UserReaderSvc
	UserWriterSvc
	UserLifecycleSvc
}
