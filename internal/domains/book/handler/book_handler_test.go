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
)

type fakeBookService struct {
	CreateFn  func(ctx context.Context, req *book.CreateBookRequest) (*book.Book, error)
	GetByIDFn func(ctx context.Context, id uuid.UUID) (*book.Book, error)
	ListFn    func(ctx context.Context, search string) ([]book.Book, error)
	UpdateFn  func(ctx context.Context, id uuid.UUID, req *book.UpdateBookRequest) (*book.Book, error)
	DeleteFn  func(ctx context.Context, id uuid.UUID) error
}

func (f *fakeBookService) Create(ctx context.Context, req *book.CreateBookRequest) (*book.Book, error) {
	if f.CreateFn != nil {
		return f.CreateFn(ctx, req)
	}
	return nil, book.ErrBookNotFound
}

func (f *fakeBookService) GetByID(ctx context.Context, id uuid.UUID) (*book.Book, error) {
	if f.GetByIDFn != nil {
		return f.GetByIDFn(ctx, id)
	}
	return nil, book.ErrBookNotFound
}

func (f *fakeBookService) List(ctx context.Context, search string) ([]book.Book, error) {
	if f.ListFn != nil {
		return f.ListFn(ctx, search)
	}
	return []book.Book{}, nil
}

func (f *fakeBookService) Update(ctx context.Context, id uuid.UUID, req *book.UpdateBookRequest) (*book.Book, error) {
	if f.UpdateFn != nil {
		return f.UpdateFn(ctx, id, req)
	}
	return nil, book.ErrBookNotFound
}

func (f *fakeBookService) Delete(ctx context.Context, id uuid.UUID) error {
	if f.DeleteFn != nil {
		return f.DeleteFn(ctx, id)
	}
	return nil
}

func setupBookRouter(svc book.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	h := NewBookHandler(svc)
	r.GET("/books", h.List)
	r.POST("/books", h.Create)
	r.GET("/books/:id", h.Get)
	r.PUT("/books/:id", h.Update)
	r.DELETE("/books/:id", h.Delete)

	return r
}

func TestBookListHandler_PassesSearchQuery(t *testing.T) {
	svc := &fakeBookService{
		ListFn: func(ctx context.Context, search string) ([]book.Book, error) {
			assert.Equal(t, "orwell", search)
			return []book.Book{}, nil
		},
	}
	router := setupBookRouter(svc)

	req, _ := http.NewRequest(http.MethodGet, "/books?search=orwell", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, "[]", w.Body.String())
}

func TestBookGetHandler_EmbedsAuthor(t *testing.T) {
	b := &book.Book{
		ID:    uuid.New(),
		Title: "Homage to Catalonia",
		ISBN:  "9780156421171",
		Author: &author.Author{
			ID:   uuid.New(),
			Name: "George Orwell",
		},
	}

	svc := &fakeBookService{
		GetByIDFn: func(ctx context.Context, id uuid.UUID) (*book.Book, error) {
			assert.Equal(t, b.ID, id)
			return b, nil
		},
	}
	router := setupBookRouter(svc)

	req, _ := http.NewRequest(http.MethodGet, "/books/"+b.ID.String(), nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp book.BookResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, b.Title, resp.Title)
	assert.Equal(t, "George Orwell", resp.Author.Name)
	assert.NotEqual(t, uuid.Nil, resp.Author.ID, "author must be embedded, not referenced")
}

func TestBookGetHandler_MalformedID(t *testing.T) {
	router := setupBookRouter(&fakeBookService{})

	req, _ := http.NewRequest(http.MethodGet, "/books/not-a-uuid", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestBookCreateHandler_InvalidBody(t *testing.T) {
	router := setupBookRouter(&fakeBookService{})

	req, _ := http.NewRequest(http.MethodPost, "/books", bytes.NewReader([]byte("{not json")))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestBookCreateHandler_DuplicateISBN(t *testing.T) {
	svc := &fakeBookService{
		CreateFn: func(ctx context.Context, req *book.CreateBookRequest) (*book.Book, error) {
			return nil, book.ErrDuplicateISBN
		},
	}
	router := setupBookRouter(svc)

	body, err := json.Marshal(map[string]any{
		"title":            "Animal Farm",
		"description":      "A farm is taken over by its animals.",
		"author":           map[string]any{"name": "George Orwell"},
		"publication_date": "1945-08-17",
		"isbn":             "9780452284241",
		"num_pages":        112,
		"genre":            "Political satire",
	})
	require.NoError(t, err)

	req, _ := http.NewRequest(http.MethodPost, "/books", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var respBody map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &respBody))
	assert.Contains(t, respBody, "error")
}

func TestBookDeleteHandler_NoContent(t *testing.T) {
	svc := &fakeBookService{}
	router := setupBookRouter(svc)

	req, _ := http.NewRequest(http.MethodDelete, "/books/"+uuid.NewString(), nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
}
