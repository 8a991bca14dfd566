package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"tastebite-backend/internal/domains/user/model"
	"tastebite-backend/internal/domains/user/service"
	"tastebite-backend/internal/shared/response"
)

type UserHandler struct {
	service service.ServiceInterface
}

func NewUserHandler(service service.ServiceInterface) *UserHandler {
	return &UserHandler{service: service}
}

// Signup handles POST /api/signup.
func (h *UserHandler) Signup(c *gin.Context) {
	var req model.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		response.ValidationFailed(c, err)
		return
	}

	auth, err := h.service.Signup(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, model.ErrEmailTaken) {
			response.Fail(c, http.StatusConflict, "Email is already registered")
			return
		}
		response.InternalServerError(c, "Failed to create account")
		return
	}

	response.OK(c, http.StatusCreated, auth, "Account created successfully")
}

// Login handles POST /api/login.
func (h *UserHandler) Login(c *gin.Context) {
	var req model.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		response.ValidationFailed(c, err)
		return
	}

	auth, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, model.ErrInvalidCredentials) {
			response.Unauthorized(c, "Invalid email or password")
			return
		}
		response.InternalServerError(c, "Failed to log in")
		return
	}

	response.OK(c, http.StatusOK, auth, "Logged in successfully")
}
