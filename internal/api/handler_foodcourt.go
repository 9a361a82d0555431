package api

import (
	"fmt"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"hotel-frontoffice-backend/internal/model"
	"hotel-frontoffice-backend/internal/store"
)

type menuItemRequest struct {
	Name      string  `json:"name" binding:"required"`
	Category  string  `json:"category"`
	Price     float64 `json:"price" binding:"required,gt=0"`
	Available *bool   `json:"available"`
}

func (r menuItemRequest) toModel() model.MenuItem {
	available := true
	if r.Available != nil {
		available = *r.Available
	}
	return model.MenuItem{Name: r.Name, Category: r.Category, Price: r.Price, Available: available}
}

// ListMenu handles GET /api/menu?available=true.
func (h *Handler) ListMenu(c *gin.Context) {
	items, err := h.store.ListMenuItems(c.Request.Context(), c.Query("available") == "true")
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

// CreateMenuItem handles POST /api/menu.
func (h *Handler) CreateMenuItem(c *gin.Context) {
	var req menuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	item := req.toModel()
	if err := h.store.CreateMenuItem(c.Request.Context(), &item); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, item)
}

// UpdateMenuItem handles PUT /api/menu/:id.
func (h *Handler) UpdateMenuItem(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var req menuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	item := req.toModel()
	item.ID = id
	if err := h.store.UpdateMenuItem(c.Request.Context(), &item); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

type orderItemRequest struct {
	MenuItemID uint `json:"menu_item_id" binding:"required"`
	Quantity   int  `json:"quantity" binding:"required,gt=0"`
}

type createOrderRequest struct {
	BookingID  *uint              `json:"booking_id"`
	TableLabel string             `json:"table_label"`
	Items      []orderItemRequest `json:"items" binding:"required,min=1,dive"`
}

// CreateOrder handles POST /api/orders. Prices come from the menu, tax from the food GST rate.
func (h *Handler) CreateOrder(c *gin.Context) {
	var req createOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	items := make([]store.OrderItem, 0, len(req.Items))
	for _, it := range req.Items {
		items = append(items, store.OrderItem{MenuItemID: it.MenuItemID, Quantity: it.Quantity})
	}

	order := model.FoodOrder{BookingID: req.BookingID, TableLabel: req.TableLabel}
	if err := h.store.CreateFoodOrder(c.Request.Context(), &order, items, h.tax.FoodRate()); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, order)
}

// ListOrders handles GET /api/orders.
func (h *Handler) ListOrders(c *gin.Context) {
	f := store.OrderFilter{Status: c.Query("status")}
	if raw := c.Query("booking_id"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid booking_id"})
			return
		}
		f.BookingID = uint(id)
	}
	orders, err := h.store.ListFoodOrders(c.Request.Context(), f)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, orders)
}

// PayOrder handles POST /api/orders/:id/pay. Walk-in orders are posted to the ledger here;
// orders charged to a room are settled on the booking invoice at checkout.
func (h *Handler) PayOrder(c *gin.Context) {
	order, ok := h.setOrderStatus(c, model.OrderPaid)
	if !ok {
		return
	}
	if order.BookingID == nil {
		entry := model.AccountEntry{
			Date:      h.now(),
			Kind:      model.EntryIncome,
			Category:  "food",
			Amount:    order.Total,
			Reference: fmt.Sprintf("ORDER-%d", order.ID),
			Memo:      order.TableLabel,
		}
		if err := h.store.CreateEntry(c.Request.Context(), &entry); err != nil {
			log.Printf("Failed to post income for order %d: %v", order.ID, err)
		}
	}
	c.JSON(http.StatusOK, order)
}

// CancelOrder handles POST /api/orders/:id/cancel.
func (h *Handler) CancelOrder(c *gin.Context) {
	order, ok := h.setOrderStatus(c, model.OrderCancelled)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, order)
}

func (h *Handler) setOrderStatus(c *gin.Context, status string) (model.FoodOrder, bool) {
	id, ok := paramID(c, "id")
	if !ok {
		return model.FoodOrder{}, false
	}
	order, err := h.store.SetFoodOrderStatus(c.Request.Context(), id, status)
	if err != nil {
		respondError(c, err)
		return model.FoodOrder{}, false
	}
	return order, true
}
