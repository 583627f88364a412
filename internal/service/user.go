package service

import (
	"context"
	"errors"

	"ofppt/internal/apperr"
	"ofppt/internal/auth"
	"ofppt/internal/domain"
	"ofppt/internal/dto"
	"ofppt/internal/store"
)

// UserStore is the persistence used by UserService.
type UserStore interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	GetAll(ctx context.Context) ([]domain.User, error)
	Create(ctx context.Context, user *domain.User) (int64, error)
	Update(ctx context.Context, id int64, changes domain.UserChanges) (int64, error)
	Delete(ctx context.Context, id int64) (int64, error)
}

type PasswordHasher interface {
	HashPassword(password string) (string, error)
}

// UserService implements the CRUD operations on user records. It holds no state
// between calls; a new one may be built for every request.
type UserService struct {
	store  UserStore
	hasher PasswordHasher
}

func NewUserService(store UserStore, hasher PasswordHasher) *UserService {
	return &UserService{store: store, hasher: hasher}
}

func (s *UserService) Get(ctx context.Context, id int64) (*dto.UserResponse, *apperr.AppError) {
	user, err := s.store.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, apperr.NewNotFound("User not found")
		}
		return nil, apperr.NewInternal("Failed to fetch user", err)
	}
	resp := dto.NewUserResponse(*user)
	return &resp, nil
}

func (s *UserService) List(ctx context.Context) ([]dto.UserResponse, *apperr.AppError) {
	users, err := s.store.GetAll(ctx)
	if err != nil {
		return nil, apperr.NewInternal("Failed to fetch users", err)
	}
	resp := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		resp = append(resp, dto.NewUserResponse(u))
	}
	return resp, nil
}

// Create stores a new user. The request must already be validated.
func (s *UserService) Create(ctx context.Context, req dto.CreateUserRequest) (*dto.CreateUserResponse, *apperr.AppError) {
	hash, appErr := s.hash(req.Password)
	if appErr != nil {
		return nil, appErr
	}

	user := &domain.User{
		Username: req.Username,
		Email:    req.Email,
		Password: hash,
		Pin:      req.Pin,
		Role:     domain.DefaultRole,
	}
	if req.Role != nil {
		user.Role = *req.Role
	}

	id, err := s.store.Create(ctx, user)
	if err != nil {
		return nil, apperr.NewInternal("Failed to create user", err)
	}

	return &dto.CreateUserResponse{Message: "User created", ID: id}, nil
}

// Update applies a partial update. A missing row is not an error: the statement
// simply matches nothing.
func (s *UserService) Update(ctx context.Context, id int64, req dto.UpdateUserRequest) (*dto.MessageResponse, *apperr.AppError) {
	if req.Empty() {
		return nil, apperr.NewInvalidInput("No data provided for update")
	}

	changes := domain.UserChanges{
		Username: req.Username,
		Email:    req.Email,
		Pin:      req.Pin,
		Role:     req.Role,
	}
	if req.Password != nil {
		hash, appErr := s.hash(*req.Password)
		if appErr != nil {
			return nil, appErr
		}
		changes.Password = &hash
	}

	if _, err := s.store.Update(ctx, id, changes); err != nil {
		return nil, apperr.NewInternal("Failed to update user", err)
	}

	return &dto.MessageResponse{Message: "User updated"}, nil
}

func (s *UserService) Delete(ctx context.Context, id int64) (*dto.MessageResponse, *apperr.AppError) {
	n, err := s.store.Delete(ctx, id)
	if err != nil {
		return nil, apperr.NewInternal("Failed to delete user", err)
	}
	if n == 0 {
		return nil, apperr.NewNotFound("User not found")
	}
	return &dto.MessageResponse{Message: "User deleted"}, nil
}

func (s *UserService) hash(password string) (string, *apperr.AppError) {
	hash, err := s.hasher.HashPassword(password)
	if err != nil {
		if errors.Is(err, auth.ErrPasswordTooLong) {
			return "", apperr.NewInvalidInput("Password must be at most 72 bytes")
		}
		return "", apperr.NewInternal("Failed to hash password", err)
	}
	return hash, nil
}
