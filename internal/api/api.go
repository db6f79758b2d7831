package api

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/9jakitchen/backend/internal/middleware"
	"github.com/9jakitchen/backend/internal/service"
)

// Services bundles everything the HTTP layer needs. Redis and Uploader may be
// nil; the routes that need them degrade gracefully.
type Services struct {
	Auth     *service.AuthService
	Recipe   *service.RecipeService
	Favorite *service.FavoriteService
	Profile  *service.ProfileService
	Uploader service.Uploader
	Redis    *redis.Client
}

// RegisterRoutes mounts all API routes on the given group.
func RegisterRoutes(r *gin.RouterGroup, deps Services) {
	authHandler := NewAuthHandler(deps.Auth)
	recipeHandler := NewRecipeHandler(deps.Recipe, deps.Uploader)
	favoriteHandler := NewFavoriteHandler(deps.Favorite)
	userHandler := NewUserHandler(deps.Profile)

	requireAuth := middleware.AuthMiddleware(deps.Auth)

	auth := r.Group("/auth")
	{
		auth.POST("/register", authHandler.Register)
		auth.POST("/login", authHandler.Login)
		auth.GET("/me", requireAuth, authHandler.Me)
	}

	recipes := r.Group("/recipes")
	{
		recipes.GET("", recipeHandler.List)
		recipes.GET("/:id", recipeHandler.Get)

		createChain := []gin.HandlerFunc{requireAuth}
		if deps.Redis != nil {
			createChain = append(createChain, middleware.NewRecipeCreationRateLimiter(deps.Redis).Middleware())
		}
		recipes.POST("", append(createChain, recipeHandler.Create)...)

		recipes.PUT("/:id", requireAuth, recipeHandler.Update)
		recipes.DELETE("/:id", requireAuth, recipeHandler.Delete)
		recipes.GET("/user/my-recipes", requireAuth, recipeHandler.MyRecipes)
	}

	favorites := r.Group("/favorites", requireAuth)
	{
		favorites.GET("", favoriteHandler.List)
		favorites.POST("/:recipeId", favoriteHandler.Add)
		favorites.DELETE("/:recipeId", favoriteHandler.Remove)
		favorites.GET("/check/:recipeId", favoriteHandler.Check)
	}

	users := r.Group("/users")
	{
		users.GET("/:id", userHandler.GetProfile)
		users.PUT("/profile", requireAuth, userHandler.UpdateProfile)
	}
}
