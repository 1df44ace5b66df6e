package handler

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"jogging_tracker/internal/model"
	"jogging_tracker/internal/service"

	"github.com/gin-gonic/gin"
)

// UserHandler handles staff account management requests
type UserHandler struct {
	service service.UserService
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(s service.UserService) *UserHandler {
	return &UserHandler{service: s}
}

// GetUsers lists regular users, or a single regular user when ?id is given
func (h *UserHandler) GetUsers(c *gin.Context) {
	if idParam := c.Query("id"); idParam != "" {
		id, err := strconv.Atoi(idParam)
		if err != nil {
			respondError(c, http.StatusBadRequest, model.KindValidation, "invalid user ID")
			return
		}
		user, err := h.service.GetUser(c.Request.Context(), id)
		if err != nil {
			if errors.Is(err, service.ErrUserNotFound) {
				respondError(c, http.StatusNotFound, model.KindNotFound, err.Error())
			} else {
				log.Printf("Error fetching user: %v", err)
				respondError(c, http.StatusInternalServerError, model.KindInternal, "failed to fetch user")
			}
			return
		}
		c.JSON(http.StatusOK, []model.User{*user})
		return
	}

	users, err := h.service.ListUsers(c.Request.Context())
	if err != nil {
		log.Printf("Error listing users: %v", err)
		respondError(c, http.StatusInternalServerError, model.KindInternal, "failed to list users")
		return
	}
	if users == nil {
		users = []model.User{}
	}
	c.JSON(http.StatusOK, users)
}

func (h *UserHandler) CreateUser(c *gin.Context) {
	var req model.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, model.KindValidation, "invalid request: "+err.Error())
		return
	}

	user, err := h.service.CreateUser(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUserAlreadyExists):
			respondError(c, http.StatusConflict, model.KindValidation, err.Error())
		case errors.Is(err, service.ErrInvalidRole):
			respondError(c, http.StatusBadRequest, model.KindValidation, err.Error())
		default:
			log.Printf("Error creating user: %v", err)
			respondError(c, http.StatusInternalServerError, model.KindInternal, "failed to create user")
		}
		return
	}
	c.JSON(http.StatusCreated, user)
}

func (h *UserHandler) UpdateUser(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusBadRequest, model.KindValidation, "invalid user ID")
		return
	}

	var req model.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, model.KindValidation, "invalid request: "+err.Error())
		return
	}

	user, err := h.service.UpdateUser(c.Request.Context(), id, req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUserNotFound):
			respondError(c, http.StatusNotFound, model.KindNotFound, err.Error())
		case errors.Is(err, service.ErrUserAlreadyExists):
			respondError(c, http.StatusConflict, model.KindValidation, err.Error())
		case errors.Is(err, service.ErrInvalidRole):
			respondError(c, http.StatusBadRequest, model.KindValidation, err.Error())
		default:
			log.Printf("Error updating user: %v", err)
			respondError(c, http.StatusInternalServerError, model.KindInternal, "failed to update user")
		}
		return
	}
	c.JSON(http.StatusOK, user)
}

func (h *UserHandler) DeleteUser(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusBadRequest, model.KindValidation, "invalid user ID")
		return
	}

	if err := h.service.DeleteUser(c.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			respondError(c, http.StatusNotFound, model.KindNotFound, err.Error())
		} else {
			log.Printf("Error deleting user: %v", err)
			respondError(c, http.StatusInternalServerError, model.KindInternal, "failed to delete user")
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "user deleted successfully"})
}

// RegisterUserRoutes registers account management routes behind the auth and
// staff role middlewares
func (h *UserHandler) RegisterUserRoutes(r *gin.Engine, authMW, staffMW gin.HandlerFunc) {
	users := r.Group("/users", authMW, staffMW)
	{
		users.GET("", h.GetUsers)
		users.POST("", h.CreateUser)
		users.PUT("/:id", h.UpdateUser)
		users.DELETE("/:id", h.DeleteUser)
	}
}
