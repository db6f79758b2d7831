package api

import (
	"encoding/json"
	"errors"
	"mime/multipart"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/9jakitchen/backend/internal/api/response"
	"github.com/9jakitchen/backend/internal/logger"
	"github.com/9jakitchen/backend/internal/middleware"
	"github.com/9jakitchen/backend/internal/models"
	"github.com/9jakitchen/backend/internal/service"
	"github.com/9jakitchen/backend/internal/types"
)

// RecipeHandler handles the recipe CRUD and listing endpoints.
type RecipeHandler struct {
	recipeService *service.RecipeService
	uploader      service.Uploader
}

func NewRecipeHandler(recipeService *service.RecipeService, uploader service.Uploader) *RecipeHandler {
	return &RecipeHandler{
		recipeService: recipeService,
		uploader:      uploader,
	}
}

// List handles GET /recipes
func (h *RecipeHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(service.DefaultPageSize)))
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = service.DefaultPageSize
	}

	params := service.ListRecipesParams{
		Category: c.Query("category"),
		Search:   c.Query("search"),
		Page:     page,
		Limit:    limit,
	}

	recipes, total, err := h.recipeService.List(c.Request.Context(), params)
	if err != nil {
		logger.Error("failed to list recipes", logger.Err(err))
		response.InternalError(c, "Failed to fetch recipes")
		return
	}

	response.Paged(c, response.NewPagination(page, limit, total), recipes)
}

// Get handles GET /recipes/:id
func (h *RecipeHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid recipe ID")
		return
	}

	recipe, err := h.recipeService.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrRecipeNotFound) {
			response.NotFound(c, "Recipe not found")
			return
		}
		logger.Error("failed to fetch recipe", logger.Err(err))
		response.InternalError(c, "Failed to fetch recipe")
		return
	}

	response.OK(c, recipe)
}

// Create handles POST /recipes (multipart form, optional image file)
func (h *RecipeHandler) Create(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		response.Unauthorized(c, "Not authenticated")
		return
	}

	title := strings.TrimSpace(c.PostForm("title"))
	description := strings.TrimSpace(c.PostForm("description"))
	category := c.PostForm("category")
	if title == "" || description == "" || category == "" {
		response.BadRequest(c, "Title, description and category are required")
		return
	}
	if !service.ValidCategory(category) {
		response.BadRequest(c, "Invalid category")
		return
	}

	difficulty := c.PostForm("difficulty")
	if difficulty == "" {
		difficulty = "Medium"
	}
	if !service.ValidDifficulty(difficulty) {
		response.BadRequest(c, "Invalid difficulty")
		return
	}

	var ingredients models.IngredientList
	if err := json.Unmarshal([]byte(c.PostForm("ingredients")), &ingredients); err != nil {
		response.BadRequest(c, "Invalid ingredients format")
		return
	}
	var instructions models.InstructionList
	if err := json.Unmarshal([]byte(c.PostForm("instructions")), &instructions); err != nil {
		response.BadRequest(c, "Invalid instructions format")
		return
	}

	cookingTime, err := strconv.Atoi(c.PostForm("cooking_time"))
	if err != nil {
		response.BadRequest(c, "Invalid cooking time")
		return
	}
	servings, err := strconv.Atoi(c.PostForm("servings"))
	if err != nil {
		response.BadRequest(c, "Invalid servings")
		return
	}

	imageURL := service.PlaceholderImageURL
	if file, err := c.FormFile("image"); err == nil {
		url, uploadErr := h.uploadImage(c, file)
		if uploadErr != nil {
			return // response already written
		}
		imageURL = url
	}

	recipe, err := h.recipeService.Create(c.Request.Context(), userID, service.CreateRecipeInput{
		Title:        title,
		Description:  description,
		Category:     category,
		Ingredients:  ingredients,
		Instructions: instructions,
		ImageURL:     imageURL,
		CookingTime:  cookingTime,
		Servings:     servings,
		Difficulty:   difficulty,
	})
	if err != nil {
		logger.Error("failed to create recipe", logger.Err(err))
		response.InternalError(c, "Failed to create recipe")
		return
	}

	response.Created(c, recipe)
}

// Update handles PUT /recipes/:id (multipart form, only sent fields change)
func (h *RecipeHandler) Update(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		response.Unauthorized(c, "Not authenticated")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid recipe ID")
		return
	}

	var upd types.RecipeUpdate

	if v, ok := c.GetPostForm("title"); ok {
		if strings.TrimSpace(v) == "" {
			response.BadRequest(c, "Title cannot be empty")
			return
		}
		upd.Title = &v
	}
	if v, ok := c.GetPostForm("description"); ok {
		upd.Description = &v
	}
	if v, ok := c.GetPostForm("category"); ok {
		if !service.ValidCategory(v) {
			response.BadRequest(c, "Invalid category")
			return
		}
		upd.Category = &v
	}
	if v, ok := c.GetPostForm("difficulty"); ok {
		if !service.ValidDifficulty(v) {
			response.BadRequest(c, "Invalid difficulty")
			return
		}
		upd.Difficulty = &v
	}
	if v, ok := c.GetPostForm("ingredients"); ok {
		var ingredients models.IngredientList
		if err := json.Unmarshal([]byte(v), &ingredients); err != nil {
			response.BadRequest(c, "Invalid ingredients format")
			return
		}
		upd.Ingredients = &ingredients
	}
	if v, ok := c.GetPostForm("instructions"); ok {
		var instructions models.InstructionList
		if err := json.Unmarshal([]byte(v), &instructions); err != nil {
			response.BadRequest(c, "Invalid instructions format")
			return
		}
		upd.Instructions = &instructions
	}
	if v, ok := c.GetPostForm("cooking_time"); ok {
		n, convErr := strconv.Atoi(v)
		if convErr != nil {
			response.BadRequest(c, "Invalid cooking time")
			return
		}
		upd.CookingTime = &n
	}
	if v, ok := c.GetPostForm("servings"); ok {
		n, convErr := strconv.Atoi(v)
		if convErr != nil {
			response.BadRequest(c, "Invalid servings")
			return
		}
		upd.Servings = &n
	}
	if file, fileErr := c.FormFile("image"); fileErr == nil {
		// Settle existence and ownership before paying for an upload.
		if _, err := h.recipeService.GetOwned(c.Request.Context(), id, userID); err != nil {
			switch {
			case errors.Is(err, service.ErrRecipeNotFound):
				response.NotFound(c, "Recipe not found")
			case errors.Is(err, service.ErrNotOwner):
				response.Forbidden(c, "Not authorized to update this recipe")
			default:
				logger.Error("failed to fetch recipe", logger.Err(err))
				response.InternalError(c, "Failed to update recipe")
			}
			return
		}

		url, uploadErr := h.uploadImage(c, file)
		if uploadErr != nil {
			return // response already written
		}
		upd.ImageURL = &url
	}

	recipe, err := h.recipeService.Update(c.Request.Context(), id, userID, upd)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrRecipeNotFound):
			response.NotFound(c, "Recipe not found")
		case errors.Is(err, service.ErrNotOwner):
			response.Forbidden(c, "Not authorized to update this recipe")
		default:
			logger.Error("failed to update recipe", logger.Err(err))
			response.InternalError(c, "Failed to update recipe")
		}
		return
	}

	response.OK(c, recipe)
}

// Delete handles DELETE /recipes/:id
func (h *RecipeHandler) Delete(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		response.Unauthorized(c, "Not authenticated")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid recipe ID")
		return
	}

	if err := h.recipeService.Delete(c.Request.Context(), id, userID); err != nil {
		switch {
		case errors.Is(err, service.ErrRecipeNotFound):
			response.NotFound(c, "Recipe not found")
		case errors.Is(err, service.ErrNotOwner):
			response.Forbidden(c, "Not authorized to delete this recipe")
		default:
			logger.Error("failed to delete recipe", logger.Err(err))
			response.InternalError(c, "Failed to delete recipe")
		}
		return
	}

	response.Deleted(c, "Recipe deleted")
}

// MyRecipes handles GET /recipes/user/my-recipes
func (h *RecipeHandler) MyRecipes(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		response.Unauthorized(c, "Not authenticated")
		return
	}

	recipes, err := h.recipeService.ListByUser(c.Request.Context(), userID)
	if err != nil {
		logger.Error("failed to list user recipes", logger.Err(err))
		response.InternalError(c, "Failed to fetch recipes")
		return
	}

	response.List(c, len(recipes), recipes)
}

// uploadImage validates and stores a multipart image file. On failure it
// writes the error response and returns a non-nil error.
func (h *RecipeHandler) uploadImage(c *gin.Context, file *multipart.FileHeader) (string, error) {
	if file.Size > service.MaxUploadSize {
		response.BadRequest(c, "Image must be smaller than 5MB")
		return "", errors.New("image too large")
	}

	contentType := file.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/") {
		response.BadRequest(c, "Only image files are allowed")
		return "", errors.New("not an image")
	}

	if h.uploader == nil {
		// No object storage configured; fall back to the placeholder.
		return service.PlaceholderImageURL, nil
	}

	src, err := file.Open()
	if err != nil {
		response.InternalError(c, "Failed to read image")
		return "", err
	}
	defer src.Close()

	url, err := h.uploader.UploadRecipeImage(c.Request.Context(), src, file.Filename, contentType, file.Size)
	if err != nil {
		logger.Error("failed to upload image", logger.Err(err))
		response.InternalError(c, "Failed to upload image")
		return "", err
	}

	return url, nil
}
