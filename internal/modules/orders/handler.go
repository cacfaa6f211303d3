package orders

import (
	"errors"
	"net/http"
	"strconv"

	"recordstudio/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes mounts order endpoints. Creation and reads are open to any
// authenticated user, the rest is admin territory.
func (h *Handler) RegisterRoutes(user, admin *gin.RouterGroup) {
	user.POST("/orders", h.Create)
	user.GET("/orders/:id", h.GetByID)
	user.GET("/orders/user/:id", h.GetByUserID)

	admin.GET("/orders", h.GetAll)
	admin.GET("/orders/detail/:id", h.GetByDetailID)
	admin.PATCH("/orders/:id", h.Update)
	admin.DELETE("/orders/:id", h.Delete)
}

func (h *Handler) Create(c *gin.Context) {
	var req OrderCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, err)
		return
	}

	order, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, order)
}

func (h *Handler) GetByID(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	order, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, order)
}

func (h *Handler) GetByDetailID(c *gin.Context) {
	detailID, ok := parseID(c, "id")
	if !ok {
		return
	}

	order, err := h.service.GetByDetailID(c.Request.Context(), detailID)
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, order)
}

func (h *Handler) GetByUserID(c *gin.Context) {
	userID, ok := parseID(c, "id")
	if !ok {
		return
	}

	list, err := h.service.GetByUserID(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	if len(list) == 0 {
		response.Error(c, http.StatusNotFound, "NOT_FOUND", ErrOrderNotFound.Error())
		return
	}
	response.Success(c, http.StatusOK, list)
}

func (h *Handler) GetAll(c *gin.Context) {
	list, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	if len(list) == 0 {
		response.Error(c, http.StatusNotFound, "NOT_FOUND", ErrOrderNotFound.Error())
		return
	}
	response.Success(c, http.StatusOK, list)
}

func (h *Handler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req OrderUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, err)
		return
	}

	order, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, order)
}

func (h *Handler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}

func parseID(c *gin.Context, param string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(param), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid ID in path")
		return 0, false
	}
	return id, true
}

func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrOrderNotFound),
		errors.Is(err, ErrDetailNotFound),
		errors.Is(err, ErrServiceNotFound),
		errors.Is(err, ErrUserNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", err.Error())
	case errors.Is(err, ErrValidation):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Unexpected failure")
	}
}
