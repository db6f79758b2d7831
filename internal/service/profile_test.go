package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/9jakitchen/backend/internal/types"
)

func TestGetPublicProfile(t *testing.T) {
	db := newTestDB(t)
	svc := NewProfileService(db)
	user := createTestUser(t, db, "cook@example.com")

	createTestRecipe(t, db, user.ID, "Egusi Soup", "Soups")
	createTestRecipe(t, db, user.ID, "Jollof Rice", "Rice Dishes")

	profile, err := svc.GetPublicProfile(testContext(), user.ID)
	require.NoError(t, err)
	assert.Equal(t, user.ID, profile.ID)
	assert.Equal(t, int64(2), profile.RecipesCount)
}

func TestGetPublicProfileNotFound(t *testing.T) {
	svc := NewProfileService(newTestDB(t))

	_, err := svc.GetPublicProfile(testContext(), uuid.New())
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestUpdateProfile(t *testing.T) {
	db := newTestDB(t)
	svc := NewProfileService(db)
	user := createTestUser(t, db, "cook@example.com")

	name := "Ada O."
	bio := "Home cook from Lagos"
	updated, err := svc.UpdateProfile(testContext(), user.ID, &types.UpdateProfileRequest{
		Name: &name,
		Bio:  &bio,
	})
	require.NoError(t, err)
	assert.Equal(t, "Ada O.", updated.Name)
	assert.Equal(t, "Home cook from Lagos", updated.Bio)
	assert.Equal(t, user.Email, updated.Email)
}

func TestUpdateProfilePartial(t *testing.T) {
	db := newTestDB(t)
	svc := NewProfileService(db)
	user := createTestUser(t, db, "cook@example.com")

	location := "Abuja"
	updated, err := svc.UpdateProfile(testContext(), user.ID, &types.UpdateProfileRequest{
		Location: &location,
	})
	require.NoError(t, err)
	assert.Equal(t, user.Name, updated.Name)
	assert.Equal(t, "Abuja", updated.Location)
}

func TestUpdateProfileNotFound(t *testing.T) {
	svc := NewProfileService(newTestDB(t))

	name := "Nobody"
	_, err := svc.UpdateProfile(testContext(), uuid.New(), &types.UpdateProfileRequest{Name: &name})
	assert.ErrorIs(t, err, ErrUserNotFound)
}
