package api

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/9jakitchen/backend/internal/api/response"
	"github.com/9jakitchen/backend/internal/logger"
	"github.com/9jakitchen/backend/internal/middleware"
	"github.com/9jakitchen/backend/internal/service"
	"github.com/9jakitchen/backend/internal/types"
)

// UserHandler handles the public profile and profile update endpoints.
type UserHandler struct {
	profileService *service.ProfileService
}

func NewUserHandler(profileService *service.ProfileService) *UserHandler {
	return &UserHandler{profileService: profileService}
}

// GetProfile handles GET /users/:id (public, no auth)
func (h *UserHandler) GetProfile(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid user ID")
		return
	}

	profile, err := h.profileService.GetPublicProfile(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			response.NotFound(c, "User not found")
			return
		}
		logger.Error("failed to fetch profile", logger.Err(err))
		response.InternalError(c, "Failed to fetch profile")
		return
	}

	response.OK(c, profile)
}

// UpdateProfile handles PUT /users/profile
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		response.Unauthorized(c, "Not authenticated")
		return
	}

	var req types.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	user, err := h.profileService.UpdateProfile(c.Request.Context(), userID, &req)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			response.NotFound(c, "User not found")
			return
		}
		logger.Error("failed to update profile", logger.Err(err))
		response.InternalError(c, "Failed to update profile")
		return
	}

	response.OK(c, user)
}
