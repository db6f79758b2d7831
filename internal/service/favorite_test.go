package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/9jakitchen/backend/internal/models"
)

func TestAddFavorite(t *testing.T) {
	db := newTestDB(t)
	svc := NewFavoriteService(db)
	user := createTestUser(t, db, "user@example.com")
	recipe := createTestRecipe(t, db, user.ID, "Egusi Soup", "Soups")

	favorite, err := svc.Add(testContext(), user.ID, recipe.ID)
	require.NoError(t, err)
	assert.Equal(t, user.ID, favorite.UserID)
	assert.Equal(t, recipe.ID, favorite.RecipeID)
}

func TestAddFavoriteDuplicate(t *testing.T) {
	db := newTestDB(t)
	svc := NewFavoriteService(db)
	user := createTestUser(t, db, "user@example.com")
	recipe := createTestRecipe(t, db, user.ID, "Egusi Soup", "Soups")

	_, err := svc.Add(testContext(), user.ID, recipe.ID)
	require.NoError(t, err)

	_, err = svc.Add(testContext(), user.ID, recipe.ID)
	assert.ErrorIs(t, err, ErrAlreadyFavorited)

	var count int64
	require.NoError(t, db.Model(&models.Favorite{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestAddFavoriteMissingRecipe(t *testing.T) {
	db := newTestDB(t)
	svc := NewFavoriteService(db)
	user := createTestUser(t, db, "user@example.com")

	_, err := svc.Add(testContext(), user.ID, uuid.New())
	assert.ErrorIs(t, err, ErrRecipeNotFound)

	var count int64
	require.NoError(t, db.Model(&models.Favorite{}).Count(&count).Error)
	assert.Equal(t, int64(0), count)
}

func TestListFavorites(t *testing.T) {
	db := newTestDB(t)
	svc := NewFavoriteService(db)
	cook := createTestUser(t, db, "cook@example.com")
	user := createTestUser(t, db, "user@example.com")
	r1 := createTestRecipe(t, db, cook.ID, "Egusi Soup", "Soups")
	r2 := createTestRecipe(t, db, cook.ID, "Jollof Rice", "Rice Dishes")

	_, err := svc.Add(testContext(), user.ID, r1.ID)
	require.NoError(t, err)
	_, err = svc.Add(testContext(), user.ID, r2.ID)
	require.NoError(t, err)

	favorites, err := svc.List(testContext(), user.ID)
	require.NoError(t, err)
	require.Len(t, favorites, 2)
	for _, f := range favorites {
		require.NotNil(t, f.Recipe)
		require.NotNil(t, f.Recipe.User)
		assert.Equal(t, cook.ID, f.Recipe.User.ID)
	}
}

func TestListFavoritesDeletedRecipe(t *testing.T) {
	db := newTestDB(t)
	svc := NewFavoriteService(db)
	recipes := NewRecipeService(db)
	cook := createTestUser(t, db, "cook@example.com")
	user := createTestUser(t, db, "user@example.com")
	recipe := createTestRecipe(t, db, cook.ID, "Egusi Soup", "Soups")

	_, err := svc.Add(testContext(), user.ID, recipe.ID)
	require.NoError(t, err)

	require.NoError(t, recipes.Delete(testContext(), recipe.ID, cook.ID))

	// The favorite survives the recipe; its recipe resolves to nil.
	favorites, err := svc.List(testContext(), user.ID)
	require.NoError(t, err)
	require.Len(t, favorites, 1)
	assert.Nil(t, favorites[0].Recipe)
}

func TestRemoveFavorite(t *testing.T) {
	db := newTestDB(t)
	svc := NewFavoriteService(db)
	user := createTestUser(t, db, "user@example.com")
	recipe := createTestRecipe(t, db, user.ID, "Egusi Soup", "Soups")

	_, err := svc.Add(testContext(), user.ID, recipe.ID)
	require.NoError(t, err)

	require.NoError(t, svc.Remove(testContext(), user.ID, recipe.ID))

	favorited, err := svc.IsFavorited(testContext(), user.ID, recipe.ID)
	require.NoError(t, err)
	assert.False(t, favorited)
}

func TestRemoveFavoriteMissing(t *testing.T) {
	db := newTestDB(t)
	svc := NewFavoriteService(db)
	user := createTestUser(t, db, "user@example.com")

	err := svc.Remove(testContext(), user.ID, uuid.New())
	assert.ErrorIs(t, err, ErrFavoriteNotFound)
}

func TestIsFavorited(t *testing.T) {
	db := newTestDB(t)
	svc := NewFavoriteService(db)
	user := createTestUser(t, db, "user@example.com")
	recipe := createTestRecipe(t, db, user.ID, "Egusi Soup", "Soups")

	favorited, err := svc.IsFavorited(testContext(), user.ID, recipe.ID)
	require.NoError(t, err)
	assert.False(t, favorited)

	_, err = svc.Add(testContext(), user.ID, recipe.ID)
	require.NoError(t, err)

	favorited, err = svc.IsFavorited(testContext(), user.ID, recipe.ID)
	require.NoError(t, err)
	assert.True(t, favorited)
}
