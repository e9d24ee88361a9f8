package controllers_test

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/newsroom/newsdesk/app/models"
	"github.com/newsroom/newsdesk/internal/pkg/newsservice"
	"github.com/newsroom/newsdesk/internal/pkg/router"
	"github.com/newsroom/newsdesk/internal/pkg/storage"
)

var pngHeader = []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A}

// memRepo is a minimal in-memory NewsRepository for handler tests.
type memRepo struct {
	mu     sync.Mutex
	nextID uint64
	items  map[uint64]*models.News
}

func newMemRepo() *memRepo {
	return &memRepo{items: map[uint64]*models.News{}}
}

func (r *memRepo) Create(news *models.News) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	news.ID = r.nextID
	news.CreatedAt = time.Now().Add(time.Duration(r.nextID) * time.Second)
	news.UpdatedAt = news.CreatedAt
	stored := *news
	r.items[news.ID] = &stored
	return nil
}

func (r *memRepo) GetByID(id uint64) (*models.News, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.items[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	news := *stored
	return &news, nil
}

func (r *memRepo) GetAll() ([]models.News, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	news := make([]models.News, 0, len(r.items))
	for _, stored := range r.items {
		news = append(news, *stored)
	}
	sort.Slice(news, func(i, j int) bool {
		if !news[i].Date.Equal(news[j].Date) {
			return news[i].Date.After(news[j].Date)
		}
		return news[i].CreatedAt.After(news[j].CreatedAt)
	})
	return news, nil
}

func (r *memRepo) Update(news *models.News) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := *news
	r.items[news.ID] = &stored
	return nil
}

func (r *memRepo) Delete(id uint64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.items, id)
	return nil
}

func (r *memRepo) Count() (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return int64(len(r.items)), nil
}

type envelope struct {
	Success bool                `json:"success"`
	Message string              `json:"message"`
	Data    json.RawMessage     `json:"data"`
	Errors  map[string][]string `json:"errors"`
	Error   string              `json:"error"`
}

func newTestApp(t *testing.T) (*fiber.App, string) {
	t.Helper()

	basePath := t.TempDir()
	svc := newsservice.New(newMemRepo(), storage.NewLocalBackend(basePath))
	app := fiber.New()
	router.InstallRouter(app, svc)
	return app, basePath
}

func validFields() map[string]string {
	return map[string]string{
		"date":     time.Now().AddDate(0, 0, -1).Format("2006-01-02"),
		"title":    "X",
		"category": "technology",
		"url":      "https://e.com",
	}
}

func multipartBody(t *testing.T, fields map[string]string, imageName string, image []byte) (*bytes.Buffer, string) {
	t.Helper()

	buf := &bytes.Buffer{}
	w := multipart.NewWriter(buf)
	for k, v := range fields {
		require.NoError(t, w.WriteField(k, v))
	}
	if imageName != "" {
		part, err := w.CreateFormFile("image", imageName)
		require.NoError(t, err)
		_, err = part.Write(image)
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())
	return buf, w.FormDataContentType()
}

func doMultipart(t *testing.T, app *fiber.App, method, target string, fields map[string]string, imageName string, image []byte) (*http.Response, envelope) {
	t.Helper()

	body, contentType := multipartBody(t, fields, imageName, image)
	req := httptest.NewRequest(method, target, body)
	req.Header.Set("Content-Type", contentType)
	return do(t, app, req)
}

func do(t *testing.T, app *fiber.App, req *http.Request) (*http.Response, envelope) {
	t.Helper()

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	var env envelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	return resp, env
}

func decodeNews(t *testing.T, env envelope) models.News {
	t.Helper()

	var news models.News
	require.NoError(t, json.Unmarshal(env.Data, &news))
	return news
}

func TestCreateNews(t *testing.T) {
	t.Parallel()

	app, _ := newTestApp(t)

	resp, env := doMultipart(t, app, fiber.MethodPost, "/api/news", validFields(), "", nil)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)
	assert.True(t, env.Success)
	assert.Equal(t, "News created successfully", env.Message)

	news := decodeNews(t, env)
	assert.Equal(t, "X", news.Title)
	assert.Equal(t, models.NewsStatusUnpublished, news.Status)
	assert.Nil(t, news.ImageURL)
}

func TestCreateNewsWithImage(t *testing.T) {
	t.Parallel()

	app, basePath := newTestApp(t)

	resp, env := doMultipart(t, app, fiber.MethodPost, "/api/news", validFields(), "photo.png", pngHeader)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	news := decodeNews(t, env)
	require.NotNil(t, news.ImageURL)
	assert.True(t, strings.HasPrefix(*news.ImageURL, "storage/news_images/"))
	assert.FileExists(t, filepath.Join(basePath, strings.TrimPrefix(*news.ImageURL, "storage/")))
}

func TestCreateNewsValidationFailed(t *testing.T) {
	t.Parallel()

	app, _ := newTestApp(t)

	fields := validFields()
	fields["title"] = ""
	fields["category"] = "weather"

	resp, env := doMultipart(t, app, fiber.MethodPost, "/api/news", fields, "", nil)
	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)
	assert.False(t, env.Success)
	assert.Equal(t, "Validation failed", env.Message)
	assert.Contains(t, env.Errors, "title")
	assert.Contains(t, env.Errors, "category")
}

func TestGetNewsNotFound(t *testing.T) {
	t.Parallel()

	app, _ := newTestApp(t)

	resp, env := do(t, app, httptest.NewRequest(fiber.MethodGet, "/api/news/99", nil))
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.False(t, env.Success)
	assert.Equal(t, "News not found", env.Message)

	resp, _ = do(t, app, httptest.NewRequest(fiber.MethodGet, "/api/news/abc", nil))
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestUpdateNewsViaMethodOverride(t *testing.T) {
	t.Parallel()

	app, _ := newTestApp(t)

	_, created := doMultipart(t, app, fiber.MethodPost, "/api/news", validFields(), "", nil)
	id := decodeNews(t, created).ID

	fields := validFields()
	fields["title"] = "Updated"
	fields["_method"] = "PUT"

	resp, env := doMultipart(t, app, fiber.MethodPost, "/api/news/"+strconv.FormatUint(id, 10), fields, "", nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.True(t, env.Success)
	assert.Equal(t, "Updated", decodeNews(t, env).Title)
}

func TestPublishAndUnpublishNews(t *testing.T) {
	t.Parallel()

	app, _ := newTestApp(t)

	_, created := doMultipart(t, app, fiber.MethodPost, "/api/news", validFields(), "", nil)
	target := "/api/news/" + strconv.FormatUint(decodeNews(t, created).ID, 10)

	resp, env := do(t, app, httptest.NewRequest(fiber.MethodPatch, target+"/publish", nil))
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, models.NewsStatusPublished, decodeNews(t, env).Status)

	// idempotent
	resp, env = do(t, app, httptest.NewRequest(fiber.MethodPatch, target+"/publish", nil))
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, models.NewsStatusPublished, decodeNews(t, env).Status)

	resp, env = do(t, app, httptest.NewRequest(fiber.MethodPatch, target+"/unpublish", nil))
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, models.NewsStatusUnpublished, decodeNews(t, env).Status)
}

func TestDeleteNews(t *testing.T) {
	t.Parallel()

	app, _ := newTestApp(t)

	_, created := doMultipart(t, app, fiber.MethodPost, "/api/news", validFields(), "", nil)
	target := "/api/news/" + strconv.FormatUint(decodeNews(t, created).ID, 10)

	resp, env := do(t, app, httptest.NewRequest(fiber.MethodDelete, target, nil))
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.True(t, env.Success)
	assert.Equal(t, "News deleted successfully", env.Message)

	resp, _ = do(t, app, httptest.NewRequest(fiber.MethodGet, target, nil))
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestListNews(t *testing.T) {
	t.Parallel()

	app, _ := newTestApp(t)

	older := validFields()
	older["date"] = time.Now().AddDate(0, 0, -2).Format("2006-01-02")
	older["title"] = "older"
	doMultipart(t, app, fiber.MethodPost, "/api/news", older, "", nil)

	newer := validFields()
	newer["title"] = "newer"
	doMultipart(t, app, fiber.MethodPost, "/api/news", newer, "", nil)

	resp, env := do(t, app, httptest.NewRequest(fiber.MethodGet, "/api/news", nil))
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.True(t, env.Success)

	var news []models.News
	require.NoError(t, json.Unmarshal(env.Data, &news))
	require.Len(t, news, 2)
	assert.Equal(t, "newer", news[0].Title)
	assert.Equal(t, "older", news[1].Title)
}
