// Package service provides business logic layer for user module.
package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/footypool/prediction-pool/internal/user/model"
	"github.com/footypool/prediction-pool/internal/user/repository"
)

// Service defines the interface for user business logic operations.
type Service interface {
	// CreateUser creates a new participant with a unique access key.
	CreateUser(ctx context.Context, req *model.CreateUserRequest) (*model.CreateUserResponse, error)

	// ListUsers returns all participants.
	ListUsers(ctx context.Context) (*model.ListUsersResponse, error)

	// SetIsActive updates a participant's active flag (soft delete).
	SetIsActive(ctx context.Context, req *model.SetIsActiveRequest) (*model.SetIsActiveResponse, error)

	// GetByAccessKey authenticates a participant by opaque access key.
	GetByAccessKey(ctx context.Context, accessKey string) (*model.GetByAccessKeyResponse, error)
}

type service struct {
	repo   repository.Repository
	logger *zap.SugaredLogger
}

// New creates a new user service instance.
func New(repo repository.Repository, logger *zap.SugaredLogger) Service {
	return &service{repo: repo, logger: logger}
}

// CreateUser creates a new participant with a unique access key.
func (s *service) CreateUser(ctx context.Context, req *model.CreateUserRequest) (*model.CreateUserResponse, error) {
	s.logger.Debugw("CreateUser called", "name", req.Name)

	if req.Name == "" {
		return nil, model.ErrInvalidUserID
	}
	if req.AccessKey == "" {
		return nil, model.ErrInvalidAccessKey
	}

	user, err := s.repo.Create(ctx, req.Name, req.AccessKey)
	if err != nil {
		s.logger.Errorw("CreateUser failed", "name", req.Name, "error", err)
		return nil, err
	}

	s.logger.Infow("CreateUser completed", "user_id", user.UserID)
	return &model.CreateUserResponse{User: *user}, nil
}

// ListUsers returns all participants.
func (s *service) ListUsers(ctx context.Context) (*model.ListUsersResponse, error) {
	s.logger.Debugw("ListUsers called")

	users, err := s.repo.List(ctx)
	if err != nil {
		s.logger.Errorw("ListUsers failed", "error", err)
		return nil, err
	}

	return &model.ListUsersResponse{Users: users, Total: len(users)}, nil
}

// SetIsActive updates a participant's active flag.
func (s *service) SetIsActive(ctx context.Context, req *model.SetIsActiveRequest) (*model.SetIsActiveResponse, error) {
	s.logger.Debugw("SetIsActive called", "user_id", req.UserID)

	if req.UserID == "" {
		s.logger.Debugw("SetIsActive validation failed", "error", "empty user_id")
		return nil, model.ErrUserNotFound
	}

	if req.IsActive == nil {
		s.logger.Debugw("SetIsActive validation failed", "error", "is_active is nil")
		return nil, model.ErrInvalidIsActive
	}

	user, err := s.repo.UpdateIsActive(ctx, req.UserID, *req.IsActive)
	if err != nil {
		s.logger.Errorw("SetIsActive failed", "user_id", req.UserID, "error", err)
		return nil, err
	}

	s.logger.Infow("SetIsActive completed", "user_id", req.UserID, "new_state", *req.IsActive)
	return &model.SetIsActiveResponse{User: *user}, nil
}

// GetByAccessKey authenticates a participant by opaque access key.
func (s *service) GetByAccessKey(ctx context.Context, accessKey string) (*model.GetByAccessKeyResponse, error) {
	s.logger.Debugw("GetByAccessKey called")

	if accessKey == "" {
		return nil, model.ErrInvalidAccessKey
	}

	user, err := s.repo.GetByAccessKey(ctx, accessKey)
	if err != nil {
		return nil, err
	}

	return &model.GetByAccessKeyResponse{User: *user}, nil
}
