package handler

import (
	"errors"
	"log"
	"net/http"

	"jogging_tracker/internal/middleware"
	"jogging_tracker/internal/model"
	"jogging_tracker/internal/service"

	"github.com/gin-gonic/gin"
)

// AuthHandler handles authentication requests
type AuthHandler struct {
	service service.AuthService
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(s service.AuthService) *AuthHandler {
	return &AuthHandler{service: s}
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required,min=6"`
		Role     string `json:"role" binding:"omitempty,oneof=regular manager admin"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, model.KindValidation, "invalid request: "+err.Error())
		return
	}

	user, err := h.service.Register(c.Request.Context(), req.Email, req.Password, req.Role)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUserAlreadyExists):
			respondError(c, http.StatusConflict, model.KindValidation, err.Error())
		case errors.Is(err, service.ErrInvalidRole):
			respondError(c, http.StatusBadRequest, model.KindValidation, err.Error())
		default:
			log.Printf("Error during registration: %v", err)
			respondError(c, http.StatusInternalServerError, model.KindInternal, "failed to register user")
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "user registered successfully",
		"user_id": user.ID,
		"email":   user.Email,
		"role":    user.Role,
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, model.KindValidation, "invalid request: "+err.Error())
		return
	}

	user, token, err := h.service.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUserNotFound):
			respondError(c, http.StatusNotFound, model.KindAuthentication, err.Error())
		case errors.Is(err, service.ErrInvalidCredentials):
			respondError(c, http.StatusUnauthorized, model.KindAuthentication, err.Error())
		default:
			log.Printf("Error during login: %v", err)
			respondError(c, http.StatusInternalServerError, model.KindInternal, "failed to login")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "login successful",
		"user_id": user.ID,
		"role":    user.Role,
		"token":   token,
	})
}

func (h *AuthHandler) Logout(c *gin.Context) {
	tokenVal, exists := c.Get(middleware.AuthTokenKey)
	token, _ := tokenVal.(string)
	if !exists || token == "" {
		respondError(c, http.StatusBadRequest, model.KindValidation, "no token provided")
		return
	}

	if err := h.service.Logout(token); err != nil {
		log.Printf("Error during logout: %v", err)
		respondError(c, http.StatusInternalServerError, model.KindInternal, "failed to logout")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "user logged out successfully"})
}

// RegisterAuthRoutes registers auth routes
func (h *AuthHandler) RegisterAuthRoutes(r *gin.Engine, authMW gin.HandlerFunc) {
	r.POST("/register", h.Register)
	r.POST("/login", h.Login)
	r.POST("/logout", authMW, h.Logout)
}
