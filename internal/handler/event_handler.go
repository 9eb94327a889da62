package handler

import (
	"errors"
	"net/http"
	"strings"

	"community-site-api/internal/model"
	"community-site-api/internal/service"
	apperrors "community-site-api/pkg/app_errors"
	"community-site-api/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type EventHandler struct {
	service service.EventService
}

func NewEventHandler(service service.EventService) *EventHandler {
	return &EventHandler{service: service}
}

func (h *EventHandler) RegisterRoutes(r *gin.Engine) {
	router := r.Group("/api")
	{
		router.GET("events", h.List)
		router.POST("events", h.Create)
		router.PUT("events/:id", h.Update)
		router.DELETE("events/:id", h.Delete)
	}
}

type CreateEventRequest struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Date        string  `json:"date"`
	Venue       string  `json:"venue"`
	Image       string  `json:"image"`
}

type UpdateEventRequest struct {
	Title       *string  `json:"title"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
	Date        *string  `json:"date"`
	Venue       *string  `json:"venue"`
	Image       *string  `json:"image"`
}

func (h *EventHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.List(c))
}

func (h *EventHandler) Create(c *gin.Context) {
	var req CreateEventRequest
	if err := BindJson(c, &req); err != nil {
		return
	}
	params := model.CreateEventParams{
		Title:       req.Title,
		Description: req.Description,
		Price:       req.Price,
		Date:        req.Date,
		Venue:       req.Venue,
		Image:       req.Image,
	}
	created, err := h.service.Create(c, params)
	if err != nil {
		h.handleError(c, err, "Create")
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *EventHandler) Update(c *gin.Context) {
	var req UpdateEventRequest
	if err := BindJson(c, &req); err != nil {
		return
	}
	input := model.UpdateEventInput{
		Title:       req.Title,
		Description: req.Description,
		Price:       req.Price,
		Date:        req.Date,
		Venue:       req.Venue,
		Image:       req.Image,
	}
	updated, err := h.service.Update(c, c.Param("id"), input)
	if err != nil {
		h.handleError(c, err, "Update")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Event updated successfully",
		"event":   updated,
	})
}

func (h *EventHandler) Delete(c *gin.Context) {
	deleted, err := h.service.Delete(c, c.Param("id"))
	if err != nil {
		h.handleError(c, err, "Delete")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":      "Event deleted successfully",
		"deletedEvent": deleted,
	})
}

func (h *EventHandler) handleError(c *gin.Context, err error, operation string) {
	log := logger.WithComponent("handler").With(zap.String("operation", operation), zap.Error(err))
	if verr, ok := apperrors.AsValidationError(err); ok {
		log.Warn("Missing required fields")
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Missing required fields",
			"details": strings.Join(verr.Fields, ", "),
		})
		return
	}
	switch {
	case errors.Is(err, apperrors.ErrInvalidID):
		log.Warn("Invalid event ID")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid event ID"})
	case errors.Is(err, apperrors.ErrEventNotFound):
		log.Warn("Event not found")
		c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
	default:
		log.Error("Store operation failed")
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   eventFailureMessage(operation),
			"details": err.Error(),
		})
	}
}

func eventFailureMessage(operation string) string {
	switch operation {
	case "Create":
		return "Failed to create event"
	case "Update":
		return "Failed to update event"
	case "Delete":
		return "Failed to delete event"
	default:
		return "Internal server error"
	}
}
