package postgres

import (
	"context"
	"errors"

	"github.com/jwkang/minitweet/internal/domain"
	"gorm.io/gorm"
)

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *userRepository {
	return &userRepository{db: db}
}

// Create inserts the user inside its own transaction scope and returns the
// generated id. The scope commits on success and rolls back on any failure.
func (r *userRepository) Create(ctx context.Context, user *domain.User) (int64, error) {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(user).Error
	})
	if err != nil {
		return 0, translateError(err)
	}
	return user.ID, nil
}

func (r *userRepository) FindCredentialByEmail(ctx context.Context, email string) (*domain.Credential, error) {
	var cred domain.Credential
	err := r.db.WithContext(ctx).
		Model(&domain.User{}).
		Select("id AS user_id, hashed_password").
		Where("email = ?", email).
		Take(&cred).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		// a missing credential is a normal miss, not an error
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &cred, nil
}

func (r *userRepository) CreateFollow(ctx context.Context, userID, followUserID int64) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(&domain.Follow{
			UserID:       userID,
			FollowUserID: followUserID,
		}).Error
	})
	return translateError(err)
}

// DeleteFollow removes the edge if present and reports whether it existed,
// so callers can distinguish "removed" from "was never following".
func (r *userRepository) DeleteFollow(ctx context.Context, userID, unfollowUserID int64) (bool, error) {
	var found bool
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.
			Where("user_id = ? AND follow_user_id = ?", userID, unfollowUserID).
			Delete(&domain.Follow{})
		if res.Error != nil {
			return res.Error
		}
		found = res.RowsAffected > 0
		return nil
	})
	if err != nil {
		return false, translateError(err)
	}
	return found, nil
}
