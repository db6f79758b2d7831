package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/9jakitchen/backend/internal/models"
	"github.com/9jakitchen/backend/internal/types"
)

var (
	ErrRecipeNotFound = errors.New("recipe not found")
	ErrNotOwner       = errors.New("not the recipe owner")
)

// Categories is the fixed recipe category enumeration.
var Categories = []string{"Soups", "Rice Dishes", "Swallows", "Proteins", "Snacks", "Drinks", "Other"}

// Difficulties is the fixed difficulty enumeration.
var Difficulties = []string{"Easy", "Medium", "Hard"}

// CategoryAll is the sentinel meaning "no category filter".
const CategoryAll = "All"

// DefaultPageSize is the listing page size when the client sends none.
const DefaultPageSize = 12

// ValidCategory reports whether c is a member of the category enumeration.
func ValidCategory(c string) bool {
	for _, v := range Categories {
		if v == c {
			return true
		}
	}
	return false
}

// ValidDifficulty reports whether d is a member of the difficulty enumeration.
func ValidDifficulty(d string) bool {
	for _, v := range Difficulties {
		if v == d {
			return true
		}
	}
	return false
}

// RecipeService handles recipe operations
type RecipeService struct {
	db *gorm.DB
}

// NewRecipeService creates a new RecipeService instance
func NewRecipeService(db *gorm.DB) *RecipeService {
	return &RecipeService{db: db}
}

// ListRecipesParams are the optional filters of List.
type ListRecipesParams struct {
	Category string
	Search   string
	Page     int
	Limit    int
}

// CreateRecipeInput carries the validated fields of a new recipe.
type CreateRecipeInput struct {
	Title        string
	Description  string
	Category     string
	Ingredients  models.IngredientList
	Instructions models.InstructionList
	ImageURL     string
	CookingTime  int
	Servings     int
	Difficulty   string
}

// IsOwner reports whether actor created the recipe. Every mutating operation
// goes through this single predicate.
func IsOwner(actor uuid.UUID, recipe *models.Recipe) bool {
	return recipe.UserID == actor
}

// List returns one page of recipes, newest first, with creators attached,
// plus the total match count.
func (s *RecipeService) List(ctx context.Context, p ListRecipesParams) ([]models.Recipe, int64, error) {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.Limit < 1 {
		p.Limit = DefaultPageSize
	}

	query := s.db.WithContext(ctx).Model(&models.Recipe{})

	if p.Category != "" && p.Category != CategoryAll {
		query = query.Where("category = ?", p.Category)
	}

	if p.Search != "" {
		like := "%" + strings.ToLower(p.Search) + "%"
		query = query.Where("LOWER(title) LIKE ? OR LOWER(description) LIKE ?", like, like)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var recipes []models.Recipe
	err := query.
		Preload("User").
		Order("created_at DESC").
		Limit(p.Limit).
		Offset((p.Page - 1) * p.Limit).
		Find(&recipes).Error
	if err != nil {
		return nil, 0, err
	}

	return recipes, total, nil
}

// Get fetches a recipe by id with its creator attached and increments its
// view counter. The increment is a single atomic UPDATE so concurrent reads
// never lose counts.
func (s *RecipeService) Get(ctx context.Context, id uuid.UUID) (*models.Recipe, error) {
	var recipe models.Recipe
	if err := s.db.WithContext(ctx).Preload("User").First(&recipe, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRecipeNotFound
		}
		return nil, err
	}

	err := s.db.WithContext(ctx).
		Model(&models.Recipe{}).
		Where("id = ?", id).
		UpdateColumn("views", gorm.Expr("views + ?", 1)).Error
	if err != nil {
		return nil, err
	}

	recipe.Views++
	return &recipe, nil
}

// GetOwned loads a recipe without touching the view counter and verifies
// that actor is its creator.
func (s *RecipeService) GetOwned(ctx context.Context, id, actor uuid.UUID) (*models.Recipe, error) {
	var recipe models.Recipe
	if err := s.db.WithContext(ctx).First(&recipe, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRecipeNotFound
		}
		return nil, err
	}
	if !IsOwner(actor, &recipe) {
		return nil, ErrNotOwner
	}
	return &recipe, nil
}

// Create persists a new recipe owned by userID.
func (s *RecipeService) Create(ctx context.Context, userID uuid.UUID, in CreateRecipeInput) (*models.Recipe, error) {
	recipe := models.Recipe{
		UserID:       userID,
		Title:        in.Title,
		Description:  in.Description,
		Category:     in.Category,
		Ingredients:  in.Ingredients,
		Instructions: in.Instructions,
		ImageURL:     in.ImageURL,
		CookingTime:  in.CookingTime,
		Servings:     in.Servings,
		Difficulty:   in.Difficulty,
		Slug:         DeriveSlug(in.Title, time.Now()),
	}

	if err := s.db.WithContext(ctx).Create(&recipe).Error; err != nil {
		return nil, err
	}

	return s.reload(ctx, recipe.ID)
}

// Update applies a partial update on behalf of actor. Only the creator may
// update; the slug is regenerated only when the title changes.
func (s *RecipeService) Update(ctx context.Context, id, actor uuid.UUID, upd types.RecipeUpdate) (*models.Recipe, error) {
	var recipe models.Recipe
	if err := s.db.WithContext(ctx).First(&recipe, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRecipeNotFound
		}
		return nil, err
	}

	if !IsOwner(actor, &recipe) {
		return nil, ErrNotOwner
	}

	if upd.Title != nil && *upd.Title != recipe.Title {
		recipe.Title = *upd.Title
		recipe.Slug = DeriveSlug(recipe.Title, time.Now())
	}
	if upd.Description != nil {
		recipe.Description = *upd.Description
	}
	if upd.Category != nil {
		recipe.Category = *upd.Category
	}
	if upd.Ingredients != nil {
		recipe.Ingredients = *upd.Ingredients
	}
	if upd.Instructions != nil {
		recipe.Instructions = *upd.Instructions
	}
	if upd.ImageURL != nil {
		recipe.ImageURL = *upd.ImageURL
	}
	if upd.CookingTime != nil {
		recipe.CookingTime = *upd.CookingTime
	}
	if upd.Servings != nil {
		recipe.Servings = *upd.Servings
	}
	if upd.Difficulty != nil {
		recipe.Difficulty = *upd.Difficulty
	}

	if err := s.db.WithContext(ctx).Save(&recipe).Error; err != nil {
		return nil, err
	}

	return s.reload(ctx, recipe.ID)
}

// Delete removes a recipe on behalf of actor. Only the creator may delete.
// Favorites referencing the recipe are left in place.
func (s *RecipeService) Delete(ctx context.Context, id, actor uuid.UUID) error {
	var recipe models.Recipe
	if err := s.db.WithContext(ctx).First(&recipe, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrRecipeNotFound
		}
		return err
	}

	if !IsOwner(actor, &recipe) {
		return ErrNotOwner
	}

	return s.db.WithContext(ctx).Delete(&recipe).Error
}

// ListByUser returns all recipes owned by userID, newest first.
func (s *RecipeService) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.Recipe, error) {
	var recipes []models.Recipe
	err := s.db.WithContext(ctx).
		Preload("User").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&recipes).Error
	if err != nil {
		return nil, err
	}
	return recipes, nil
}

func (s *RecipeService) reload(ctx context.Context, id uuid.UUID) (*models.Recipe, error) {
	var recipe models.Recipe
	if err := s.db.WithContext(ctx).Preload("User").First(&recipe, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &recipe, nil
}
