package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/9jakitchen/backend/internal/models"
)

var (
	ErrAlreadyFavorited = errors.New("recipe already in favorites")
	ErrFavoriteNotFound = errors.New("favorite not found")
)

// FavoriteService tracks which recipes a user has saved. At most one favorite
// exists per (user, recipe) pair; a duplicate add is rejected, not deduplicated.
type FavoriteService struct {
	db *gorm.DB
}

func NewFavoriteService(db *gorm.DB) *FavoriteService {
	return &FavoriteService{db: db}
}

// List returns the user's favorites, newest first, each resolved to its
// recipe and the recipe's creator. Recipe is nil when the recipe has been
// deleted since the favorite was created.
func (s *FavoriteService) List(ctx context.Context, userID uuid.UUID) ([]models.Favorite, error) {
	var favorites []models.Favorite
	err := s.db.WithContext(ctx).
		Preload("Recipe.User").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&favorites).Error
	if err != nil {
		return nil, err
	}
	return favorites, nil
}

// Add creates the (user, recipe) favorite pair. The recipe must exist; the
// favorites table carries a foreign key to recipes, so a dangling insert
// would be rejected by the database anyway.
func (s *FavoriteService) Add(ctx context.Context, userID, recipeID uuid.UUID) (*models.Favorite, error) {
	var recipe models.Recipe
	if err := s.db.WithContext(ctx).Select("id").First(&recipe, "id = ?", recipeID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRecipeNotFound
		}
		return nil, err
	}

	var existing models.Favorite
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND recipe_id = ?", userID, recipeID).
		First(&existing).Error
	if err == nil {
		return nil, ErrAlreadyFavorited
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	favorite := models.Favorite{
		UserID:   userID,
		RecipeID: recipeID,
	}
	if err := s.db.WithContext(ctx).Create(&favorite).Error; err != nil {
		return nil, err
	}
	return &favorite, nil
}

// Remove deletes the (user, recipe) favorite pair.
func (s *FavoriteService) Remove(ctx context.Context, userID, recipeID uuid.UUID) error {
	result := s.db.WithContext(ctx).
		Where("user_id = ? AND recipe_id = ?", userID, recipeID).
		Delete(&models.Favorite{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrFavoriteNotFound
	}
	return nil
}

// IsFavorited reports whether the pair exists. Absence is a valid result,
// not an error.
func (s *FavoriteService) IsFavorited(ctx context.Context, userID, recipeID uuid.UUID) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).
		Model(&models.Favorite{}).
		Where("user_id = ? AND recipe_id = ?", userID, recipeID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
