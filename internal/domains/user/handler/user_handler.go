package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bookcatalog-backend/internal/domains/user"
	"bookcatalog-backend/internal/shared/response"
)

type UserHandler struct {
	service user.Service
}

func NewUserHandler(service user.Service) *UserHandler {
	return &UserHandler{service: service}
}

// Register handles POST /register and returns a refresh/access token pair
// with 201.
func (h *UserHandler) Register(c *gin.Context) {
	var req user.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	tokens, err := h.service.Register(c.Request.Context(), &req)
	if err != nil {
		response.Error(c, user.ToHTTPStatus(err), err.Error())
		return
	}

	response.JSON(c, http.StatusCreated, tokens)
}

// Login handles POST /login.
func (h *UserHandler) Login(c *gin.Context) {
	var req user.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	tokens, err := h.service.Login(c.Request.Context(), &req)
	if err != nil {
		response.Error(c, user.ToHTTPStatus(err), err.Error())
		return
	}

	response.JSON(c, http.StatusOK, tokens)
}

// Refresh handles POST /refresh, rotating the presented refresh token.
func (h *UserHandler) Refresh(c *gin.Context) {
	var req user.RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	tokens, err := h.service.Refresh(c.Request.Context(), &req)
	if err != nil {
		response.Error(c, user.ToHTTPStatus(err), err.Error())
		return
	}

	response.JSON(c, http.StatusOK, tokens)
}
