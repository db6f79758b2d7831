package types

import "github.com/9jakitchen/backend/internal/models"

// RegisterRequest is the body of POST /api/auth/register.
type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

// LoginRequest is the body of POST /api/auth/login.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// UpdateProfileRequest is the allow-listed self-service profile update.
// Nil fields are left unchanged.
type UpdateProfileRequest struct {
	Name     *string `json:"name"`
	Bio      *string `json:"bio"`
	Location *string `json:"location"`
}

// RecipeUpdate is the allow-listed partial update of a recipe. Nil fields are
// left unchanged; the creator can never be changed through it.
type RecipeUpdate struct {
	Title        *string
	Description  *string
	Category     *string
	Ingredients  *models.IngredientList
	Instructions *models.InstructionList
	ImageURL     *string
	CookingTime  *int
	Servings     *int
	Difficulty   *string
}
