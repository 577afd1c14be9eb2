// User repository. Same conventions as the book repository: context-aware
// free functions over a *gorm.DB handle, ErrNotFound for missing rows.
package repo

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/knazaryan/go-books-backend/internal/domain"
)

// CreateUser inserts a new user row. The caller supplies the already hashed
// password and generated API key; this layer only persists. A unique
// violation on the username yields ErrDuplicate.
func CreateUser(ctx context.Context, db *gorm.DB, u *domain.User) error {
	if u.ID == "" {
		u.ID = domain.NewID()
	}
	if err := db.WithContext(ctx).Create(u).Error; err != nil {
		// glebarez/sqlite often returns plain-text errors for UNIQUE violations.
		low := strings.ToLower(err.Error())
		if errors.Is(err, gorm.ErrDuplicatedKey) ||
			strings.Contains(low, "unique constraint failed") ||
			strings.Contains(low, "constraint failed: unique") {
			return ErrDuplicate
		}
		return err
	}
	return nil
}

// GetUserByUsername fetches a user by exact username, or ErrNotFound.
func GetUserByUsername(ctx context.Context, db *gorm.DB, username string) (*domain.User, error) {
	var u domain.User
	if err := db.WithContext(ctx).Where("username = ?", username).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

// GetUserByAPIKey fetches a user by API key, or ErrNotFound.
func GetUserByAPIKey(ctx context.Context, db *gorm.DB, key string) (*domain.User, error) {
	var u domain.User
	if err := db.WithContext(ctx).Where("api_key = ?", key).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

// SaveUser persists all fields of an already loaded user row.
func SaveUser(ctx context.Context, db *gorm.DB, u *domain.User) error {
	return db.WithContext(ctx).Save(u).Error
}

// DeleteUser removes the user identified by username. The row is deleted
// outright, so the username is free for re-registration afterwards. Deleting
// a user that does not exist yields ErrNotFound.
func DeleteUser(ctx context.Context, db *gorm.DB, username string) error {
	res := db.WithContext(ctx).Where("username = ?", username).Delete(&domain.User{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
