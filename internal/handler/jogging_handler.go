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

// JoggingHandler handles jogging record requests
type JoggingHandler struct {
	service service.JoggingService
}

// NewJoggingHandler creates a new JoggingHandler
func NewJoggingHandler(s service.JoggingService) *JoggingHandler {
	return &JoggingHandler{service: s}
}

func (h *JoggingHandler) CreateJog(c *gin.Context) {
	userID, err := getAuthUserID(c)
	if err != nil {
		respondError(c, http.StatusUnauthorized, model.KindAuthentication, err.Error())
		return
	}

	var req model.CreateJoggingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, model.KindValidation, "invalid request: "+err.Error())
		return
	}

	jog, err := h.service.CreateJog(c.Request.Context(), userID, req)
	if err != nil {
		log.Printf("Error creating jogging record: %v", err)
		respondError(c, http.StatusInternalServerError, model.KindInternal, "failed to create jogging record")
		return
	}
	c.JSON(http.StatusCreated, jog)
}

func (h *JoggingHandler) ListJogs(c *gin.Context) {
	userID, err := getAuthUserID(c)
	if err != nil {
		respondError(c, http.StatusUnauthorized, model.KindAuthentication, err.Error())
		return
	}
	userRole, err := getAuthUserRole(c)
	if err != nil {
		respondError(c, http.StatusUnauthorized, model.KindAuthentication, err.Error())
		return
	}

	var filters model.JoggingFilters
	if fromParam := c.Query("from"); fromParam != "" {
		from, err := model.ParseDate(fromParam)
		if err != nil {
			respondError(c, http.StatusBadRequest, model.KindValidation, "invalid 'from' date, use YYYY-MM-DD")
			return
		}
		filters.From = &from
	}
	if toParam := c.Query("to"); toParam != "" {
		to, err := model.ParseDate(toParam)
		if err != nil {
			respondError(c, http.StatusBadRequest, model.KindValidation, "invalid 'to' date, use YYYY-MM-DD")
			return
		}
		filters.To = &to
	}

	jogs, err := h.service.ListJogs(c.Request.Context(), userID, userRole, filters)
	if err != nil {
		log.Printf("Error listing jogging records: %v", err)
		respondError(c, http.StatusInternalServerError, model.KindInternal, "failed to retrieve jogging records")
		return
	}
	if jogs == nil {
		jogs = []model.JoggingRecord{}
	}
	c.JSON(http.StatusOK, jogs)
}

func (h *JoggingHandler) WeeklyReport(c *gin.Context) {
	userID, err := getAuthUserID(c)
	if err != nil {
		respondError(c, http.StatusUnauthorized, model.KindAuthentication, err.Error())
		return
	}

	report, err := h.service.WeeklyReport(c.Request.Context(), userID)
	if err != nil {
		log.Printf("Error building weekly report: %v", err)
		respondError(c, http.StatusInternalServerError, model.KindInternal, "failed to build report")
		return
	}
	if report == nil {
		report = []model.WeeklyReportRow{}
	}
	c.JSON(http.StatusOK, report)
}

func (h *JoggingHandler) UpdateJog(c *gin.Context) {
	userID, err := getAuthUserID(c)
	if err != nil {
		respondError(c, http.StatusUnauthorized, model.KindAuthentication, err.Error())
		return
	}
	userRole, err := getAuthUserRole(c)
	if err != nil {
		respondError(c, http.StatusUnauthorized, model.KindAuthentication, err.Error())
		return
	}

	jogID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		respondError(c, http.StatusBadRequest, model.KindValidation, "invalid jogging record ID")
		return
	}

	var req model.UpdateJoggingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, model.KindValidation, "invalid request: "+err.Error())
		return
	}

	jog, err := h.service.UpdateJog(c.Request.Context(), jogID, userID, userRole, req)
	if err != nil {
		if errors.Is(err, service.ErrJogNotFound) {
			respondError(c, http.StatusNotFound, model.KindNotFound, err.Error())
		} else {
			log.Printf("Error updating jogging record: %v", err)
			respondError(c, http.StatusInternalServerError, model.KindInternal, "failed to update jogging record")
		}
		return
	}
	c.JSON(http.StatusOK, jog)
}

func (h *JoggingHandler) DeleteJog(c *gin.Context) {
	userID, err := getAuthUserID(c)
	if err != nil {
		respondError(c, http.StatusUnauthorized, model.KindAuthentication, err.Error())
		return
	}
	userRole, err := getAuthUserRole(c)
	if err != nil {
		respondError(c, http.StatusUnauthorized, model.KindAuthentication, err.Error())
		return
	}

	jogID, err := strconv.ParseInt(c.Query("id"), 10, 64)
	if err != nil {
		respondError(c, http.StatusBadRequest, model.KindValidation, "invalid jogging record ID")
		return
	}

	if err := h.service.DeleteJog(c.Request.Context(), jogID, userID, userRole); err != nil {
		if errors.Is(err, service.ErrJogNotFound) {
			respondError(c, http.StatusNotFound, model.KindNotFound, err.Error())
		} else {
			log.Printf("Error deleting jogging record: %v", err)
			respondError(c, http.StatusInternalServerError, model.KindInternal, "failed to delete jogging record")
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "jogging record deleted successfully"})
}

// RegisterJoggingRoutes registers jogging routes behind the auth middleware
func (h *JoggingHandler) RegisterJoggingRoutes(r *gin.Engine, authMW gin.HandlerFunc) {
	r.POST("/jogging", authMW, h.CreateJog)
	r.GET("/allJoggings", authMW, h.ListJogs)
	r.GET("/report", authMW, h.WeeklyReport)
	r.PUT("/jogging/:id", authMW, h.UpdateJog)
	r.DELETE("/jog", authMW, h.DeleteJog)
}
