package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/9jakitchen/backend/internal/models"
	"github.com/9jakitchen/backend/internal/types"
)

// PublicProfile is a user as shown to anyone, augmented with how many recipes
// they have published. The password hash is excluded by the model's json tags.
type PublicProfile struct {
	models.User
	RecipesCount int64 `json:"recipes_count"`
}

// ProfileService handles user profile operations
type ProfileService struct {
	db *gorm.DB
}

func NewProfileService(db *gorm.DB) *ProfileService {
	return &ProfileService{db: db}
}

// GetPublicProfile loads a user's public view by id.
func (s *ProfileService) GetPublicProfile(ctx context.Context, userID uuid.UUID) (*PublicProfile, error) {
	var user models.User
	if err := s.db.WithContext(ctx).First(&user, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	var count int64
	err := s.db.WithContext(ctx).
		Model(&models.Recipe{}).
		Where("user_id = ?", userID).
		Count(&count).Error
	if err != nil {
		return nil, err
	}

	return &PublicProfile{User: user, RecipesCount: count}, nil
}

// UpdateProfile applies the allow-listed self-service fields to the user's
// own record. Nil fields are left unchanged.
func (s *ProfileService) UpdateProfile(ctx context.Context, userID uuid.UUID, req *types.UpdateProfileRequest) (*models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).First(&user, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.Bio != nil {
		user.Bio = *req.Bio
	}
	if req.Location != nil {
		user.Location = *req.Location
	}

	if err := s.db.WithContext(ctx).Save(&user).Error; err != nil {
		return nil, err
	}

	return &user, nil
}
