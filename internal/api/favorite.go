package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/9jakitchen/backend/internal/api/response"
	"github.com/9jakitchen/backend/internal/logger"
	"github.com/9jakitchen/backend/internal/middleware"
	"github.com/9jakitchen/backend/internal/service"
)

// FavoriteHandler handles the favorites endpoints. All routes require auth.
type FavoriteHandler struct {
	favoriteService *service.FavoriteService
}

func NewFavoriteHandler(favoriteService *service.FavoriteService) *FavoriteHandler {
	return &FavoriteHandler{favoriteService: favoriteService}
}

// List handles GET /favorites
func (h *FavoriteHandler) List(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		response.Unauthorized(c, "Not authenticated")
		return
	}

	favorites, err := h.favoriteService.List(c.Request.Context(), userID)
	if err != nil {
		logger.Error("failed to list favorites", logger.Err(err))
		response.InternalError(c, "Failed to fetch favorites")
		return
	}

	response.List(c, len(favorites), favorites)
}

// Add handles POST /favorites/:recipeId
func (h *FavoriteHandler) Add(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		response.Unauthorized(c, "Not authenticated")
		return
	}

	recipeID, err := uuid.Parse(c.Param("recipeId"))
	if err != nil {
		response.BadRequest(c, "Invalid recipe ID")
		return
	}

	favorite, err := h.favoriteService.Add(c.Request.Context(), userID, recipeID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrRecipeNotFound):
			response.NotFound(c, "Recipe not found")
		case errors.Is(err, service.ErrAlreadyFavorited):
			response.BadRequest(c, "Recipe already in favorites")
		default:
			logger.Error("failed to add favorite", logger.Err(err))
			response.InternalError(c, "Failed to add favorite")
		}
		return
	}

	response.CreatedWithMessage(c, "Recipe added to favorites", favorite)
}

// Remove handles DELETE /favorites/:recipeId
func (h *FavoriteHandler) Remove(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		response.Unauthorized(c, "Not authenticated")
		return
	}

	recipeID, err := uuid.Parse(c.Param("recipeId"))
	if err != nil {
		response.BadRequest(c, "Invalid recipe ID")
		return
	}

	if err := h.favoriteService.Remove(c.Request.Context(), userID, recipeID); err != nil {
		if errors.Is(err, service.ErrFavoriteNotFound) {
			response.NotFound(c, "Favorite not found")
			return
		}
		logger.Error("failed to remove favorite", logger.Err(err))
		response.InternalError(c, "Failed to remove favorite")
		return
	}

	response.Deleted(c, "Recipe removed from favorites")
}

// Check handles GET /favorites/check/:recipeId
func (h *FavoriteHandler) Check(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		response.Unauthorized(c, "Not authenticated")
		return
	}

	recipeID, err := uuid.Parse(c.Param("recipeId"))
	if err != nil {
		response.BadRequest(c, "Invalid recipe ID")
		return
	}

	favorited, err := h.favoriteService.IsFavorited(c.Request.Context(), userID, recipeID)
	if err != nil {
		logger.Error("failed to check favorite", logger.Err(err))
		response.InternalError(c, "Failed to check favorite")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"isFavorited": favorited,
	})
}
