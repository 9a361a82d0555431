package api

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"hotel-frontoffice-backend/internal/model"
	"hotel-frontoffice-backend/internal/notification"
	"hotel-frontoffice-backend/internal/store"
)

type createBookingRequest struct {
	Stay
	RoomID      uint    `json:"room_id" binding:"required"`
	GuestName   string  `json:"guest_name" binding:"required"`
	GuestEmail  string  `json:"guest_email" binding:"omitempty,email"`
	GuestPhone  string  `json:"guest_phone"`
	Adults      int     `json:"adults" binding:"gte=0"`
	Children    int     `json:"children" binding:"gte=0"`
	NightlyRate float64 `json:"nightly_rate" binding:"gte=0"`
	Notes       string  `json:"notes"`
}

// CreateBooking handles POST /api/bookings.
func (h *Handler) CreateBooking(c *gin.Context) {
	var req createBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	in, out := req.Dates()

	b := model.Booking{
		RoomID:      req.RoomID,
		GuestName:   req.GuestName,
		GuestEmail:  strings.ToLower(req.GuestEmail),
		GuestPhone:  req.GuestPhone,
		CheckIn:     in,
		CheckOut:    out,
		Adults:      req.Adults,
		Children:    req.Children,
		NightlyRate: req.NightlyRate,
		Notes:       req.Notes,
	}
	if err := h.store.CreateBooking(c.Request.Context(), &b); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, b)
}

// ListBookings handles GET /api/bookings.
func (h *Handler) ListBookings(c *gin.Context) {
	f := store.BookingFilter{
		Status:     c.Query("status"),
		GuestEmail: strings.ToLower(c.Query("guest_email")),
	}
	if raw := c.Query("room_id"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid room_id"})
			return
		}
		f.RoomID = uint(id)
	}
	var ok bool
	if f.From, ok = queryDate(c, "from"); !ok {
		return
	}
	if f.To, ok = queryDate(c, "to"); !ok {
		return
	}

	bookings, err := h.store.ListBookings(c.Request.Context(), f)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, bookings)
}

// GetBooking handles GET /api/bookings/:id.
func (h *Handler) GetBooking(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	b, err := h.store.GetBooking(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

type updateBookingRequest struct {
	GuestName  *string `json:"guest_name" binding:"omitempty,min=1"`
	GuestEmail *string `json:"guest_email" binding:"omitempty,email"`
	GuestPhone *string `json:"guest_phone"`
	Adults     *int    `json:"adults" binding:"omitempty,gte=1"`
	Children   *int    `json:"children" binding:"omitempty,gte=0"`
	Notes      *string `json:"notes"`
}

// UpdateBooking handles PATCH /api/bookings/:id.
func (h *Handler) UpdateBooking(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var req updateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	if req.GuestEmail != nil {
		lower := strings.ToLower(*req.GuestEmail)
		req.GuestEmail = &lower
	}

	b, err := h.store.UpdateBooking(c.Request.Context(), id, store.BookingUpdate{
		GuestName:  req.GuestName,
		GuestEmail: req.GuestEmail,
		GuestPhone: req.GuestPhone,
		Adults:     req.Adults,
		Children:   req.Children,
		Notes:      req.Notes,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

// CancelBooking handles POST /api/bookings/:id/cancel.
func (h *Handler) CancelBooking(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	b, err := h.store.CancelBooking(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

// CheckIn handles POST /api/bookings/:id/check-in.
func (h *Handler) CheckIn(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	b, err := h.store.CheckIn(c.Request.Context(), id, h.now())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

// CheckOut handles POST /api/bookings/:id/check-out. The stay is invoiced and posted to the
// accounts ledger together with the status change, then housekeeping is alerted to clean the room.
func (h *Handler) CheckOut(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	out, err := h.store.CheckOut(c.Request.Context(), id, h.now(), h.tax)
	if err != nil {
		respondError(c, err)
		return
	}

	h.notify(notification.TaskAlert(out.Task, "Room ready for cleaning"))
	c.JSON(http.StatusOK, out)
}

// Invoice handles GET /api/bookings/:id/invoice.
func (h *Handler) Invoice(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	inv, err := h.store.BookingInvoice(c.Request.Context(), id, h.tax)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, inv)
}

// queryDate reads an optional YYYY-MM-DD query parameter, responding 400 when it is malformed.
func queryDate(c *gin.Context, key string) (time.Time, bool) {
	raw := c.Query(key)
	if raw == "" {
		return time.Time{}, true
	}
	t, err := time.Parse(dateLayout, raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + key + ", expected YYYY-MM-DD"})
		return time.Time{}, false
	}
	return t, true
}
