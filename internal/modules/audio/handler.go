package audio

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strconv"

	"recordstudio/internal/domain"
	"recordstudio/internal/modules/orders"
	"recordstudio/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

// OrderGetter resolves the owning order for existence and ownership checks.
type OrderGetter interface {
	GetByID(ctx context.Context, id int64) (*domain.Order, error)
}

type Handler struct {
	service *Service
	orders  OrderGetter
}

func NewHandler(service *Service, orders OrderGetter) *Handler {
	return &Handler{service: service, orders: orders}
}

// RegisterRoutes mounts audio delivery endpoints. Uploading and deleting
// files is studio staff work; listing and downloading is for the order's
// owner (or an admin).
func (h *Handler) RegisterRoutes(user, admin *gin.RouterGroup) {
	user.GET("/orders/:id/audio", h.List)
	user.GET("/orders/:id/audio/:filename", h.Download)

	admin.POST("/orders/:id/audio", h.Upload)
	admin.DELETE("/orders/:id/audio/:filename", h.Delete)
}

func (h *Handler) resolveOrder(c *gin.Context) (*domain.Order, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid order ID")
		return nil, false
	}

	order, err := h.orders.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, orders.ErrOrderNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", ErrOrderNotFound.Error())
		} else {
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Unexpected failure")
		}
		return nil, false
	}
	return order, true
}

func (h *Handler) checkOwnership(c *gin.Context, order *domain.Order) bool {
	if c.GetString("role") == string(domain.RoleAdmin) {
		return true
	}
	if c.GetInt64("user_id") == order.UserID {
		return true
	}
	response.Error(c, http.StatusForbidden, "FORBIDDEN", ErrAccessDenied.Error())
	return false
}

func (h *Handler) Upload(c *gin.Context) {
	order, ok := h.resolveOrder(c)
	if !ok {
		return
	}

	header, err := c.FormFile("file")
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Missing file field")
		return
	}

	key, err := h.service.Upload(c.Request.Context(), order.ID, header)
	if err != nil {
		h.respondError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"key": key})
}

func (h *Handler) Download(c *gin.Context) {
	order, ok := h.resolveOrder(c)
	if !ok {
		return
	}
	if !h.checkOwnership(c, order) {
		return
	}

	rc, err := h.service.Download(c.Request.Context(), order.ID, c.Param("filename"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	defer rc.Close()

	c.Header("Content-Disposition", "attachment; filename="+cleanFilename(c.Param("filename")))
	c.Header("Content-Type", "application/octet-stream")
	c.Status(http.StatusOK)
	if _, err := io.Copy(c.Writer, rc); err != nil {
		// headers are gone at this point, nothing left to report
		return
	}
}

func (h *Handler) List(c *gin.Context) {
	order, ok := h.resolveOrder(c)
	if !ok {
		return
	}
	if !h.checkOwnership(c, order) {
		return
	}

	keys, err := h.service.List(c.Request.Context(), order.ID)
	if err != nil {
		h.respondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"files": keys})
}

func (h *Handler) Delete(c *gin.Context) {
	order, ok := h.resolveOrder(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), order.ID, c.Param("filename")); err != nil {
		h.respondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}

func (h *Handler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrFileNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", err.Error())
	case errors.Is(err, ErrEmptyFile),
		errors.Is(err, ErrFileTooLarge),
		errors.Is(err, ErrInvalidType),
		errors.Is(err, ErrInvalidName):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Unexpected failure")
	}
}
