// Package repository provides data access layer for user module.
package repository

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/footypool/prediction-pool/internal/user/model"
)

// Repository defines the interface for user data access operations.
type Repository interface {
	// Create inserts a new user with a generated ID.
	Create(ctx context.Context, name, accessKey string) (*model.User, error)

	// GetByID finds a user by user_id.
	GetByID(ctx context.Context, userID string) (*model.User, error)

	// GetByAccessKey finds an active user by access key.
	GetByAccessKey(ctx context.Context, accessKey string) (*model.User, error)

	// List returns all users ordered by name.
	List(ctx context.Context) ([]model.User, error)

	// ListActive returns all active users ordered by name.
	ListActive(ctx context.Context) ([]model.User, error)

	// UpdateIsActive updates the user's is_active flag.
	UpdateIsActive(ctx context.Context, userID string, isActive bool) (*model.User, error)
}

type repository struct {
	db     *gorm.DB
	logger *zap.SugaredLogger
}

// New creates a new user repository instance.
func New(db *gorm.DB, logger *zap.SugaredLogger) Repository {
	return &repository{db: db, logger: logger}
}

// isUniqueViolation reports whether err is a unique constraint violation from
// either backing store.
func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "duplicate key") ||
		strings.Contains(msg, "UNIQUE constraint failed")
}

// Create inserts a new user with a generated ID.
func (r *repository) Create(ctx context.Context, name, accessKey string) (*model.User, error) {
	r.logger.Infow("Create user called", "name", name)

	user := model.User{
		UserID:    uuid.NewString(),
		Name:      name,
		AccessKey: accessKey,
		IsActive:  true,
	}

	if err := r.db.WithContext(ctx).Create(&user).Error; err != nil {
		if isUniqueViolation(err) {
			r.logger.Debugw("Create user duplicate access key", "name", name)
			return nil, model.ErrDuplicateAccessKey
		}
		r.logger.Errorw("Create user database error", "name", name, "error", err)
		return nil, err
	}

	r.logger.Infow("Create user completed", "user_id", user.UserID)
	return &user, nil
}

// GetByID finds a user by user_id.
func (r *repository) GetByID(ctx context.Context, userID string) (*model.User, error) {
	r.logger.Debugw("GetByID called", "user_id", userID)

	var user model.User
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&user).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			r.logger.Debugw("GetByID user not found", "user_id", userID)
			return nil, model.ErrUserNotFound
		}
		r.logger.Errorw("GetByID database error", "user_id", userID, "error", err)
		return nil, err
	}

	return &user, nil
}

// GetByAccessKey finds an active user by access key. Inactive users do not
// authenticate.
func (r *repository) GetByAccessKey(ctx context.Context, accessKey string) (*model.User, error) {
	r.logger.Debugw("GetByAccessKey called")

	var user model.User
	err := r.db.WithContext(ctx).
		Where("unique_access_key = ? AND is_active = ?", accessKey, true).
		First(&user).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			r.logger.Debugw("GetByAccessKey no active user for key")
			return nil, model.ErrUserNotFound
		}
		r.logger.Errorw("GetByAccessKey database error", "error", err)
		return nil, err
	}

	return &user, nil
}

// List returns all users ordered by name.
func (r *repository) List(ctx context.Context) ([]model.User, error) {
	r.logger.Debugw("List users called")

	var users []model.User
	err := r.db.WithContext(ctx).
		Order("name ASC").
		Find(&users).Error

	if err != nil {
		r.logger.Errorw("List users database error", "error", err)
		return nil, err
	}

	if users == nil {
		users = []model.User{}
	}

	r.logger.Debugw("List users completed", "count", len(users))
	return users, nil
}

// ListActive returns all active users ordered by name.
func (r *repository) ListActive(ctx context.Context) ([]model.User, error) {
	r.logger.Debugw("ListActive called")

	var users []model.User
	err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("name ASC").
		Find(&users).Error

	if err != nil {
		r.logger.Errorw("ListActive database error", "error", err)
		return nil, err
	}

	if users == nil {
		users = []model.User{}
	}

	r.logger.Debugw("ListActive completed", "count", len(users))
	return users, nil
}

// UpdateIsActive updates the user's is_active flag.
func (r *repository) UpdateIsActive(ctx context.Context, userID string, isActive bool) (*model.User, error) {
	r.logger.Infow("UpdateIsActive called", "user_id", userID, "new_state", isActive)

	result := r.db.WithContext(ctx).
		Model(&model.User{}).
		Where("user_id = ?", userID).
		Update("is_active", isActive)

	if result.Error != nil {
		r.logger.Errorw("UpdateIsActive database error", "user_id", userID, "error", result.Error)
		return nil, result.Error
	}

	if result.RowsAffected == 0 {
		r.logger.Debugw("UpdateIsActive user not found", "user_id", userID)
		return nil, model.ErrUserNotFound
	}

	var user model.User
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&user).Error

	if err != nil {
		r.logger.Errorw("UpdateIsActive failed to fetch updated user", "user_id", userID, "error", err)
		return nil, err
	}

	r.logger.Infow("UpdateIsActive completed", "user_id", userID, "new_state", isActive)
	return &user, nil
}
