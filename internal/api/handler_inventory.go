package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hotel-frontoffice-backend/internal/model"
)

type createItemRequest struct {
	SKU          string  `json:"sku" binding:"required"`
	Name         string  `json:"name" binding:"required"`
	Category     string  `json:"category"`
	Unit         string  `json:"unit"`
	Quantity     float64 `json:"quantity" binding:"gte=0"`
	ReorderLevel float64 `json:"reorder_level" binding:"gte=0"`
	UnitCost     float64 `json:"unit_cost" binding:"gte=0"`
}

// CreateItem handles POST /api/inventory/items.
func (h *Handler) CreateItem(c *gin.Context) {
	var req createItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	item := model.InventoryItem{
		SKU:          req.SKU,
		Name:         req.Name,
		Category:     req.Category,
		Unit:         req.Unit,
		Quantity:     req.Quantity,
		ReorderLevel: req.ReorderLevel,
		UnitCost:     req.UnitCost,
	}
	if err := h.store.CreateItem(c.Request.Context(), &item); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, item)
}

// ListItems handles GET /api/inventory/items?low_stock=true.
func (h *Handler) ListItems(c *gin.Context) {
	items, err := h.store.ListItems(c.Request.Context(), c.Query("low_stock") == "true")
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

type movementRequest struct {
	Kind     string  `json:"kind" binding:"required,oneof=in out adjust"`
	Quantity float64 `json:"quantity" binding:"required,ne=0"`
	Reason   string  `json:"reason"`
}

// RecordMovement handles POST /api/inventory/items/:id/movements.
func (h *Handler) RecordMovement(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var req movementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	if req.Kind != model.MovementAdjust && req.Quantity < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "quantity must be positive for in and out movements"})
		return
	}

	m := model.StockMovement{ItemID: id, Kind: req.Kind, Quantity: req.Quantity, Reason: req.Reason}
	item, err := h.store.RecordMovement(c.Request.Context(), &m)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"movement": m, "item": item})
}

// ListMovements handles GET /api/inventory/items/:id/movements.
func (h *Handler) ListMovements(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	movements, err := h.store.ListMovements(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, movements)
}
