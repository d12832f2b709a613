package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookcatalog-backend/internal/domains/author"
	"bookcatalog-backend/internal/domains/book"
	"bookcatalog-backend/internal/domains/favorite"
	"bookcatalog-backend/internal/shared/middleware"
)

type fakeFavoriteService struct {
	CreateFn     func(ctx context.Context, userID uuid.UUID, req *favorite.FavoriteRequest) ([]book.Book, error)
	ListByUserFn func(ctx context.Context, userID uuid.UUID) ([]favorite.Favorite, error)
	DeleteFn     func(ctx context.Context, userID uuid.UUID, req *favorite.FavoriteRequest) error
}

func (f *fakeFavoriteService) Create(ctx context.Context, userID uuid.UUID, req *favorite.FavoriteRequest) ([]book.Book, error) {
	if f.CreateFn != nil {
		return f.CreateFn(ctx, userID, req)
	}
	return []book.Book{}, nil
}

func (f *fakeFavoriteService) ListByUser(ctx context.Context, userID uuid.UUID) ([]favorite.Favorite, error) {
	if f.ListByUserFn != nil {
		return f.ListByUserFn(ctx, userID)
	}
	return []favorite.Favorite{}, nil
}

func (f *fakeFavoriteService) Delete(ctx context.Context, userID uuid.UUID, req *favorite.FavoriteRequest) error {
	if f.DeleteFn != nil {
		return f.DeleteFn(ctx, userID, req)
	}
	return nil
}

func setupFavoriteRouter(svc favorite.Service, userID uuid.UUID) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	authed := func(c *gin.Context) {
		if userID != uuid.Nil {
			c.Set(middleware.ContextUserIDKey, userID)
		}
		c.Next()
	}

	h := NewFavoriteHandler(svc)
	r.GET("/favorites", authed, h.List)
	r.POST("/favorites", authed, h.Create)
	r.DELETE("/favorites", authed, h.Delete)

	return r
}

func favoriteBody(t *testing.T, bookID uuid.UUID) *bytes.Reader {
	t.Helper()
	b, err := json.Marshal(favorite.FavoriteRequest{BookID: bookID})
	require.NoError(t, err)
	return bytes.NewReader(b)
}

func sampleBook() book.Book {
	about := "English novelist"
	return book.Book{
		ID:    uuid.New(),
		Title: "Nineteen Eighty-Four",
		Author: &author.Author{
			ID:    uuid.New(),
			Name:  "George Orwell",
			About: &about,
		},
	}
}

func TestFavoriteCreateHandler_Success(t *testing.T) {
	recommended := sampleBook()
	svc := &fakeFavoriteService{
		CreateFn: func(ctx context.Context, userID uuid.UUID, req *favorite.FavoriteRequest) ([]book.Book, error) {
			return []book.Book{recommended}, nil
		},
	}
	router := setupFavoriteRouter(svc, uuid.New())

	req, _ := http.NewRequest(http.MethodPost, "/favorites", favoriteBody(t, uuid.New()))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code, "body=%s", w.Body.String())

	var resp favorite.CreateResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Message)
	require.Len(t, resp.Recommendations, 1)
	assert.Equal(t, recommended.Title, resp.Recommendations[0].Title)
	assert.Equal(t, "George Orwell", resp.Recommendations[0].Author.Name)
}

func TestFavoriteCreateHandler_LimitReached(t *testing.T) {
	svc := &fakeFavoriteService{
		CreateFn: func(ctx context.Context, userID uuid.UUID, req *favorite.FavoriteRequest) ([]book.Book, error) {
			return nil, favorite.ErrFavoriteLimitReached
		},
	}
	router := setupFavoriteRouter(svc, uuid.New())

	req, _ := http.NewRequest(http.MethodPost, "/favorites", favoriteBody(t, uuid.New()))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Contains(t, body, "error")
}

func TestFavoriteCreateHandler_UnknownBook(t *testing.T) {
	svc := &fakeFavoriteService{
		CreateFn: func(ctx context.Context, userID uuid.UUID, req *favorite.FavoriteRequest) ([]book.Book, error) {
			return nil, book.ErrBookNotFound
		},
	}
	router := setupFavoriteRouter(svc, uuid.New())

	req, _ := http.NewRequest(http.MethodPost, "/favorites", favoriteBody(t, uuid.New()))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestFavoriteCreateHandler_NoUser(t *testing.T) {
	router := setupFavoriteRouter(&fakeFavoriteService{}, uuid.Nil)

	req, _ := http.NewRequest(http.MethodPost, "/favorites", favoriteBody(t, uuid.New()))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestFavoriteDeleteHandler_Success(t *testing.T) {
	userID := uuid.New()
	bookID := uuid.New()

	svc := &fakeFavoriteService{
		DeleteFn: func(ctx context.Context, gotUser uuid.UUID, req *favorite.FavoriteRequest) error {
			assert.Equal(t, userID, gotUser)
			assert.Equal(t, bookID, req.BookID)
			return nil
		},
	}
	router := setupFavoriteRouter(svc, userID)

	req, _ := http.NewRequest(http.MethodDelete, "/favorites", favoriteBody(t, bookID))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp favorite.MessageResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Message)
}

func TestFavoriteDeleteHandler_NotFavorited(t *testing.T) {
	svc := &fakeFavoriteService{
		DeleteFn: func(ctx context.Context, userID uuid.UUID, req *favorite.FavoriteRequest) error {
			return favorite.ErrFavoriteNotFound
		},
	}
	router := setupFavoriteRouter(svc, uuid.New())

	req, _ := http.NewRequest(http.MethodDelete, "/favorites", favoriteBody(t, uuid.New()))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestFavoriteListHandler_OwnOnly(t *testing.T) {
	userID := uuid.New()
	b := sampleBook()

	svc := &fakeFavoriteService{
		ListByUserFn: func(ctx context.Context, gotUser uuid.UUID) ([]favorite.Favorite, error) {
			assert.Equal(t, userID, gotUser)
			return []favorite.Favorite{
				{ID: uuid.New(), UserID: gotUser, BookID: b.ID, Book: &b},
			}, nil
		},
	}
	router := setupFavoriteRouter(svc, userID)

	req, _ := http.NewRequest(http.MethodGet, "/favorites", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp []favorite.FavoriteResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	assert.Equal(t, b.Title, resp[0].Book.Title)
}
