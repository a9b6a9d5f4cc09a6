package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/SscSPs/expense_tracker_app/internal/apperrors"
	"github.com/SscSPs/expense_tracker_app/internal/core/domain"
	portsrepo "github.com/SscSPs/expense_tracker_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/expense_tracker_app/internal/core/ports/services"
	"github.com/SscSPs/expense_tracker_app/internal/dto"
	"github.com/SscSPs/expense_tracker_app/internal/utils"
	"github.com/google/uuid"
)

// ErrUserExists is returned when signup hits an email that is already registered.
var ErrUserExists = apperrors.NewAppError(http.StatusBadRequest, "User with this email already exists", apperrors.ErrDuplicate)

type userService struct {
	BaseService
	userRepo portsrepo.UserRepositoryFacade
	roleRepo portsrepo.RoleReader
}

// NewUserService creates a new user service.
func NewUserService(userRepo portsrepo.UserRepositoryFacade, roleRepo portsrepo.RoleReader) portssvc.UserSvcFacade {
	return &userService{userRepo: userRepo, roleRepo: roleRepo}
}

var _ portssvc.UserSvcFacade = (*userService)(nil)

func (s *userService) CreateUser(ctx context.Context, req dto.CreateUserRequest) (*domain.User, error) {
	email := strings.TrimSpace(req.Email)

	// The unique index on LOWER(email) backs this up for case variants.
	existing, err := s.userRepo.FindUserByExactEmail(ctx, email)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		s.LogError(ctx, err, "Failed to check for existing user")
		return nil, fmt.Errorf("failed to check for existing user: %w", err)
	}
	if existing != nil {
		return nil, ErrUserExists
	}

	role, err := s.resolveRole(ctx, req.RoleID)
	if err != nil {
		return nil, err
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now().UTC()
	user := domain.User{
		UserID:       uuid.NewString(),
		FirstName:    strings.TrimSpace(req.FirstName),
		LastName:     strings.TrimSpace(req.LastName),
		Email:        email,
		PasswordHash: hash,
		RoleID:       role.RoleID,
		RoleName:     role.Name,
		IsActive:     true,
		Phone:        req.Phone,
		Address:      req.Address,
		Timestamps:   domain.Timestamps{CreatedAt: now, UpdatedAt: now},
	}

	if err := s.userRepo.SaveUser(ctx, user); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, ErrUserExists
		}
		s.LogError(ctx, err, "Failed to save user")
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	s.LogInfo(ctx, "User created", slog.String("user_id", user.UserID), slog.String("role", string(role.Name)))
	return &user, nil
}

// resolveRole returns the requested role, or the default user role when none is given.
func (s *userService) resolveRole(ctx context.Context, roleID string) (*domain.Role, error) {
	if roleID == "" {
		role, err := s.roleRepo.FindRoleByName(ctx, domain.RoleUser)
		if err != nil {
			return nil, fmt.Errorf("failed to load default role: %w", err)
		}
		return role, nil
	}
	role, err := s.roleRepo.FindRoleByID(ctx, roleID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.FieldErrors{"roleId": "role does not exist"}
		}
		return nil, fmt.Errorf("failed to load role: %w", err)
	}
	return role, nil
}

func (s *userService) GetUserByID(ctx context.Context, actor domain.Actor, userID string) (*domain.User, error) {
	if err := s.Authorize(ctx, actor, userID, "user"); err != nil {
		return nil, err
	}
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user %s: %w", userID, err)
	}
	return user, nil
}

func (s *userService) ListUsers(ctx context.Context, actor domain.Actor) ([]domain.User, error) {
	if !actor.IsAdmin() {
		return nil, fmt.Errorf("%w: only admins can list users", apperrors.ErrForbidden)
	}
	users, err := s.userRepo.FindUsers(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list users")
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

func (s *userService) ListRoles(ctx context.Context) ([]domain.Role, error) {
	roles, err := s.roleRepo.FindRoles(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list roles: %w", err)
	}
	return roles, nil
}

func (s *userService) UpdateUser(ctx context.Context, actor domain.Actor, userID string, req dto.UpdateUserRequest) (*domain.User, error) {
	if err := s.Authorize(ctx, actor, userID, "user"); err != nil {
		return nil, err
	}
	if !actor.IsAdmin() && (req.RoleID != nil || req.IsActive != nil) {
		return nil, fmt.Errorf("%w: only admins can change role or active status", apperrors.ErrForbidden)
	}

	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user %s: %w", userID, err)
	}

	if req.FirstName != nil {
		user.FirstName = strings.TrimSpace(*req.FirstName)
	}
	if req.LastName != nil {
		user.LastName = strings.TrimSpace(*req.LastName)
	}
	if req.Phone != nil {
		user.Phone = *req.Phone
	}
	if req.Address != nil {
		user.Address = *req.Address
	}
	if req.IsActive != nil {
		user.IsActive = *req.IsActive
	}
	if req.RoleID != nil && *req.RoleID != user.RoleID {
		role, err := s.resolveRole(ctx, *req.RoleID)
		if err != nil {
			return nil, err
		}
		user.RoleID = role.RoleID
		user.RoleName = role.Name
	}
	if user.FirstName == "" || user.LastName == "" {
		return nil, apperrors.FieldErrors{"name": "firstName and lastName must not be empty"}
	}
	user.UpdatedAt = time.Now().UTC()

	if err := s.userRepo.UpdateUser(ctx, *user); err != nil {
		s.LogError(ctx, err, "Failed to update user", slog.String("user_id", userID))
		return nil, fmt.Errorf("failed to update user: %w", err)
	}
	return user, nil
}

func (s *userService) DeleteUser(ctx context.Context, actor domain.Actor, userID string) error {
	if !actor.IsAdmin() {
		return fmt.Errorf("%w: only admins can delete users", apperrors.ErrForbidden)
	}
	if err := s.userRepo.DeleteUser(ctx, userID); err != nil {
		return fmt.Errorf("failed to delete user %s: %w", userID, err)
	}
	s.LogInfo(ctx, "User deleted", slog.String("user_id", userID), slog.String("deleted_by", actor.UserID))
	return nil
}
