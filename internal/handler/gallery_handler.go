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

type GalleryHandler struct {
	service service.GalleryService
}

func NewGalleryHandler(service service.GalleryService) *GalleryHandler {
	return &GalleryHandler{service: service}
}

func (h *GalleryHandler) RegisterRoutes(r *gin.Engine) {
	router := r.Group("/api")
	{
		router.GET("gallery", h.List)
		router.POST("gallery", h.Create)
		router.PUT("gallery/:id", h.Update)
		router.DELETE("gallery/:id", h.Delete)
	}
}

type CreateGalleryItemRequest struct {
	Title     string `json:"title"`
	Category  string `json:"category"`
	Src       string `json:"src"`
	DriveLink string `json:"driveLink"`
}

type UpdateGalleryItemRequest struct {
	Title     *string `json:"title"`
	Category  *string `json:"category"`
	Src       *string `json:"src"`
	DriveLink *string `json:"driveLink"`
}

func (h *GalleryHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.List(c))
}

func (h *GalleryHandler) Create(c *gin.Context) {
	var req CreateGalleryItemRequest
	if err := BindJson(c, &req); err != nil {
		return
	}
	params := model.CreateGalleryItemParams{
		Title:     req.Title,
		Category:  req.Category,
		Src:       req.Src,
		DriveLink: req.DriveLink,
	}
	created, err := h.service.Create(c, params)
	if err != nil {
		h.handleError(c, err, "Create")
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *GalleryHandler) Update(c *gin.Context) {
	var req UpdateGalleryItemRequest
	if err := BindJson(c, &req); err != nil {
		return
	}
	params := model.UpdateGalleryItemParams{
		Title:     req.Title,
		Category:  req.Category,
		Src:       req.Src,
		DriveLink: req.DriveLink,
	}
	updated, err := h.service.Update(c, c.Param("id"), params)
	if err != nil {
		h.handleError(c, err, "Update")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Gallery item updated successfully",
		"item":    updated,
	})
}

func (h *GalleryHandler) Delete(c *gin.Context) {
	deleted, err := h.service.Delete(c, c.Param("id"))
	if err != nil {
		h.handleError(c, err, "Delete")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":     "Gallery item deleted successfully",
		"deletedItem": deleted,
	})
}

func (h *GalleryHandler) handleError(c *gin.Context, err error, operation string) {
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
		log.Warn("Invalid gallery item ID")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid gallery item ID"})
	case errors.Is(err, apperrors.ErrGalleryItemNotFound):
		log.Warn("Gallery item not found")
		c.JSON(http.StatusNotFound, gin.H{"error": "Gallery item not found"})
	default:
		log.Error("Store operation failed")
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   galleryFailureMessage(operation),
			"details": err.Error(),
		})
	}
}

func galleryFailureMessage(operation string) string {
	switch operation {
	case "Create":
		return "Failed to create gallery item"
	case "Update":
		return "Failed to update gallery item"
	case "Delete":
		return "Failed to delete gallery item"
	default:
		return "Internal server error"
	}
}
