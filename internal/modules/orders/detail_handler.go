package orders

import (
	"net/http"

	"recordstudio/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

// DetailHandler exposes line-item level operations. After every mutation it
// asks the order service to recompute the stored total from the current
// detail set, the same function the order-level paths use.
type DetailHandler struct {
	details *DetailService
	orders  *Service
}

func NewDetailHandler(details *DetailService, orders *Service) *DetailHandler {
	return &DetailHandler{details: details, orders: orders}
}

func (h *DetailHandler) RegisterRoutes(admin *gin.RouterGroup) {
	// POST target is the owning order's ID.
	admin.POST("/details/:id", h.Create)
	admin.GET("/details", h.GetAll)
	admin.GET("/details/:id", h.GetByID)
	admin.GET("/details/order/:id", h.GetByOrderID)
	admin.PATCH("/details/:id", h.Update)
	admin.DELETE("/details/:id", h.Delete)
	admin.DELETE("/details/order/:id", h.DeleteByOrderID)
}

func (h *DetailHandler) Create(c *gin.Context) {
	orderID, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req DetailCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, err)
		return
	}

	order, err := h.orders.GetByID(c.Request.Context(), orderID)
	if err != nil {
		respondError(c, err)
		return
	}

	detail, err := h.details.Create(c.Request.Context(), order, req)
	if err != nil {
		respondError(c, err)
		return
	}

	if _, err := h.orders.RecalculatePrice(c.Request.Context(), order.ID); err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, detail)
}

func (h *DetailHandler) GetByID(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	detail, err := h.details.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, detail)
}

func (h *DetailHandler) GetByOrderID(c *gin.Context) {
	orderID, ok := parseID(c, "id")
	if !ok {
		return
	}

	list, err := h.details.GetByOrderID(c.Request.Context(), orderID)
	if err != nil {
		respondError(c, err)
		return
	}
	if len(list) == 0 {
		response.Error(c, http.StatusNotFound, "NOT_FOUND", ErrDetailNotFound.Error())
		return
	}
	response.Success(c, http.StatusOK, list)
}

func (h *DetailHandler) GetAll(c *gin.Context) {
	list, err := h.details.GetAll(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	if len(list) == 0 {
		response.Error(c, http.StatusNotFound, "NOT_FOUND", ErrDetailNotFound.Error())
		return
	}
	response.Success(c, http.StatusOK, list)
}

func (h *DetailHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req DetailUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, err)
		return
	}

	detail, err := h.details.Update(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}

	if _, err := h.orders.RecalculatePrice(c.Request.Context(), detail.OrderID); err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, detail)
}

func (h *DetailHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	order, err := h.orders.GetByDetailID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	if err := h.details.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}

	if _, err := h.orders.RecalculatePrice(c.Request.Context(), order.ID); err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}

func (h *DetailHandler) DeleteByOrderID(c *gin.Context) {
	orderID, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := h.details.DeleteByOrderID(c.Request.Context(), orderID); err != nil {
		respondError(c, err)
		return
	}

	if _, err := h.orders.RecalculatePrice(c.Request.Context(), orderID); err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}
