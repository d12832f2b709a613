package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"bookcatalog-backend/internal/domains/book"
	"bookcatalog-backend/internal/shared/response"
)

type BookHandler struct {
	service book.Service
}

func NewBookHandler(service book.Service) *BookHandler {
	return &BookHandler{service: service}
}

// List handles GET /books. An optional ?search= query filters by title or
// author name.
func (h *BookHandler) List(c *gin.Context) {
	books, err := h.service.List(c.Request.Context(), c.Query("search"))
	if err != nil {
		response.Error(c, book.ToHTTPStatus(err), err.Error())
		return
	}

	response.JSON(c, http.StatusOK, book.ToResponses(books))
}

// Create handles POST /books with an embedded author payload.
func (h *BookHandler) Create(c *gin.Context) {
	var req book.CreateBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	created, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		response.Error(c, book.ToHTTPStatus(err), err.Error())
		return
	}

	response.JSON(c, http.StatusCreated, created.ToResponse())
}

// Get handles GET /books/:id.
func (h *BookHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	b, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		response.Error(c, book.ToHTTPStatus(err), err.Error())
		return
	}

	response.JSON(c, http.StatusOK, b.ToResponse())
}

// Update handles PUT and PATCH /books/:id. Both apply the provided fields
// and leave the rest untouched.
func (h *BookHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req book.UpdateBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	updated, err := h.service.Update(c.Request.Context(), id, &req)
	if err != nil {
		response.Error(c, book.ToHTTPStatus(err), err.Error())
		return
	}

	response.JSON(c, http.StatusOK, updated.ToResponse())
}

// Delete handles DELETE /books/:id.
func (h *BookHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, book.ToHTTPStatus(err), err.Error())
		return
	}

	c.Status(http.StatusNoContent)
}

func parseID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.NotFound(c, book.ErrBookNotFound.Error())
		return uuid.Nil, false
	}
	return id, true
}
