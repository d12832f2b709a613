package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bookcatalog-backend/internal/domains/book"
	"bookcatalog-backend/internal/domains/favorite"
	"bookcatalog-backend/internal/shared/middleware"
	"bookcatalog-backend/internal/shared/response"
)

type FavoriteHandler struct {
	service favorite.Service
}

func NewFavoriteHandler(service favorite.Service) *FavoriteHandler {
	return &FavoriteHandler{service: service}
}

// List handles GET /favorites, returning only the authenticated user's
// favorites with embedded books.
func (h *FavoriteHandler) List(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		response.Unauthorized(c, "authentication required")
		return
	}

	favorites, err := h.service.ListByUser(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, favorite.ToHTTPStatus(err), err.Error())
		return
	}

	response.JSON(c, http.StatusOK, favorite.ToResponses(favorites))
}

// Create handles POST /favorites. On success the response carries a
// confirmation message and same-author recommendations.
func (h *FavoriteHandler) Create(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		response.Unauthorized(c, "authentication required")
		return
	}

	var req favorite.FavoriteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	recommendations, err := h.service.Create(c.Request.Context(), userID, &req)
	if err != nil {
		response.Error(c, favorite.ToHTTPStatus(err), err.Error())
		return
	}

	response.JSON(c, http.StatusCreated, favorite.CreateResponse{
		Message:         "book added to favorites",
		Recommendations: book.ToResponses(recommendations),
	})
}

// Delete handles DELETE /favorites. The book id comes from the request
// body, not the URL.
func (h *FavoriteHandler) Delete(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		response.Unauthorized(c, "authentication required")
		return
	}

	var req favorite.FavoriteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	if err := h.service.Delete(c.Request.Context(), userID, &req); err != nil {
		response.Error(c, favorite.ToHTTPStatus(err), err.Error())
		return
	}

	response.JSON(c, http.StatusOK, favorite.MessageResponse{
		Message: "book removed from favorites",
	})
}
