package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/9jakitchen/backend/internal/models"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Recipe{}, &models.Favorite{}))
	return db
}

func createTestUser(t *testing.T, db *gorm.DB, email string) *models.User {
	t.Helper()

	user := models.User{
		Name:         "Test User",
		Email:        email,
		PasswordHash: "not-a-real-hash",
	}
	require.NoError(t, db.Create(&user).Error)
	return &user
}

func createTestRecipe(t *testing.T, db *gorm.DB, userID uuid.UUID, title, category string) *models.Recipe {
	t.Helper()

	recipe := models.Recipe{
		UserID:      userID,
		Title:       title,
		Description: "A test recipe",
		Category:    category,
		Ingredients: models.IngredientList{
			{Name: "Salt", Quantity: "1", Unit: "tsp"},
		},
		Instructions: models.InstructionList{
			{StepNumber: 1, Text: "Mix everything"},
		},
		Difficulty: "Medium",
		Slug:       DeriveSlug(title, time.Now()),
	}
	require.NoError(t, db.Create(&recipe).Error)
	return &recipe
}

func testContext() context.Context {
	return context.Background()
}
