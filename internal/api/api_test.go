package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http/httptest"
	"net/textproto"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/9jakitchen/backend/internal/models"
	"github.com/9jakitchen/backend/internal/service"
)

// fakeUploader satisfies service.Uploader without talking to S3.
type fakeUploader struct {
	lastFilename string
}

func (f *fakeUploader) UploadRecipeImage(_ context.Context, r io.Reader, filename, _ string, _ int64) (string, error) {
	f.lastFilename = filename
	io.Copy(io.Discard, r)
	return "https://media.example.com/" + filename, nil
}

type testEnv struct {
	router   *gin.Engine
	db       *gorm.DB
	auth     *service.AuthService
	uploader *fakeUploader
}

func setupTest(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Recipe{}, &models.Favorite{}))

	auth := service.NewAuthService(db, "test-secret", time.Hour)
	uploader := &fakeUploader{}

	router := gin.New()
	RegisterRoutes(router.Group("/api"), Services{
		Auth:     auth,
		Recipe:   service.NewRecipeService(db),
		Favorite: service.NewFavoriteService(db),
		Profile:  service.NewProfileService(db),
		Uploader: uploader,
	})

	return &testEnv{router: router, db: db, auth: auth, uploader: uploader}
}

func (e *testEnv) registerUser(t *testing.T, email string) (uuid.UUID, string) {
	t.Helper()

	user, token, err := e.auth.Register(context.Background(), "Test User", email, "password123")
	require.NoError(t, err)
	return user.ID, token
}

func (e *testEnv) createRecipe(t *testing.T, userID uuid.UUID, title, category string) *models.Recipe {
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
		Slug:       service.DeriveSlug(title, time.Now()),
	}
	require.NoError(t, e.db.Create(&recipe).Error)
	return &recipe
}

func (e *testEnv) request(t *testing.T, method, path, token string, body io.Reader, contentType string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, path, body)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func (e *testEnv) requestJSON(t *testing.T, method, path, token string, payload interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewReader(raw)
	}
	return e.request(t, method, path, token, body, "application/json")
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()

	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

// recipeForm builds a multipart form with valid recipe fields, which callers
// may override or extend before the writer is closed.
func recipeForm(t *testing.T, fields map[string]string) (*bytes.Buffer, string) {
	t.Helper()

	defaults := map[string]string{
		"title":        "Jollof Rice",
		"description":  "Party staple",
		"category":     "Rice Dishes",
		"ingredients":  `[{"name":"Rice","quantity":"2","unit":"cups"}]`,
		"instructions": `[{"step_number":1,"text":"Cook the rice"}]`,
		"cooking_time": "45",
		"servings":     "6",
		"difficulty":   "Medium",
	}
	for k, v := range fields {
		if v == "" {
			delete(defaults, k)
		} else {
			defaults[k] = v
		}
	}

	buf := &bytes.Buffer{}
	mw := multipart.NewWriter(buf)
	for k, v := range defaults {
		require.NoError(t, mw.WriteField(k, v))
	}
	require.NoError(t, mw.Close())
	return buf, mw.FormDataContentType()
}

// recipeFormWithImage is recipeForm plus an image part with the given
// content type and payload.
func recipeFormWithImage(t *testing.T, contentType string, payload []byte) (*bytes.Buffer, string) {
	t.Helper()

	buf := &bytes.Buffer{}
	mw := multipart.NewWriter(buf)

	fields := map[string]string{
		"title":        "Jollof Rice",
		"description":  "Party staple",
		"category":     "Rice Dishes",
		"ingredients":  `[{"name":"Rice","quantity":"2","unit":"cups"}]`,
		"instructions": `[{"step_number":1,"text":"Cook the rice"}]`,
		"cooking_time": "45",
		"servings":     "6",
	}
	for k, v := range fields {
		require.NoError(t, mw.WriteField(k, v))
	}

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", `form-data; name="image"; filename="photo.png"`)
	header.Set("Content-Type", contentType)
	part, err := mw.CreatePart(header)
	require.NoError(t, err)
	_, err = part.Write(payload)
	require.NoError(t, err)

	require.NoError(t, mw.Close())
	return buf, mw.FormDataContentType()
}

func assertStatus(t *testing.T, w *httptest.ResponseRecorder, want int) {
	t.Helper()
	require.Equal(t, want, w.Code, "unexpected status, body: %s", w.Body.String())
}
