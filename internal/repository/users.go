package repository

import (
	"context"
	"errors"
	"fmt"

	"money_tracker/internal/domain"

	"gorm.io/gorm"
)

// ErrEmailTaken is returned when the unique email index rejects an insert
var ErrEmailTaken = errors.New("email already taken")

// UserRepository persists users
type UserRepository struct {
	db *gorm.DB
}

// NewUserRepository wraps a GORM handle
func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Create inserts u and fills its generated fields
func (r *UserRepository) Create(ctx context.Context, u *domain.User) error {
	if err := r.db.WithContext(ctx).Create(u).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) { // Needs TranslateError on the gorm.Config
			return ErrEmailTaken
		}
		return fmt.Errorf("create user: %w", err)
	}
	return nil
}

// FindByID loads a user or returns a *domain.NotFoundError
func (r *UserRepository) FindByID(ctx context.Context, id uint) (*domain.User, error) {
	var u domain.User
	if err := r.db.WithContext(ctx).First(&u, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &domain.NotFoundError{Resource: "user", ID: id} // Becomes a 404
		}
		return nil, fmt.Errorf("find user %d: %w", id, err)
	}
	return &u, nil
}

// EmailExists reports whether any user already has email
func (r *UserRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&domain.User{}).Where("email = ?", email).Count(&n).Error; err != nil {
		return false, fmt.Errorf("count users by email: %w", err)
	}
	return n > 0, nil
}
