package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"hotel-frontoffice-backend/internal/model"
	"hotel-frontoffice-backend/internal/parse"
	"hotel-frontoffice-backend/internal/store"
)

type roomRequest struct {
	Number         string   `json:"number" binding:"required"`
	Type           string   `json:"type" binding:"required"`
	Wing           string   `json:"wing"`
	Floor          *int     `json:"floor" binding:"omitempty,gte=0"`
	BedType        string   `json:"bed_type"`
	ViewType       string   `json:"view_type"`
	SizeSqm        float64  `json:"size_sqm" binding:"gte=0"`
	Rate           float64  `json:"rate" binding:"required,gt=0"`
	Amenities      []string `json:"amenities"`
	Accessible     bool     `json:"is_accessible"`
	SmokingAllowed bool     `json:"is_smoking_allowed"`
	Balcony        bool     `json:"has_balcony"`
	Soundproof     bool     `json:"is_soundproof"`
	AirPurifier    bool     `json:"has_air_purifier"`
	Status         string   `json:"status" binding:"omitempty,oneof=available occupied cleaning maintenance"`
}

// toRoom builds the model, deriving wing and floor from the room number when they are omitted.
func (r roomRequest) toRoom() (model.Room, error) {
	room := model.Room{
		Number:         r.Number,
		Type:           r.Type,
		Wing:           r.Wing,
		BedType:        r.BedType,
		ViewType:       r.ViewType,
		SizeSqm:        r.SizeSqm,
		Rate:           r.Rate,
		Amenities:      model.StringList(r.Amenities),
		Accessible:     r.Accessible,
		SmokingAllowed: r.SmokingAllowed,
		Balcony:        r.Balcony,
		Soundproof:     r.Soundproof,
		AirPurifier:    r.AirPurifier,
		Status:         r.Status,
	}
	if r.Floor != nil {
		room.Floor = *r.Floor
		return room, nil
	}

	parsed, err := parse.ParseRoomNumber(r.Number)
	if err != nil {
		return model.Room{}, err
	}
	room.Floor = parsed.Floor
	if room.Wing == "" {
		room.Wing = parsed.Wing
	}
	return room, nil
}

// ListRooms handles GET /api/rooms.
func (h *Handler) ListRooms(c *gin.Context) {
	f := store.RoomFilter{Status: c.Query("status"), Type: c.Query("type")}
	if raw := c.Query("floor"); raw != "" {
		floor, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid floor"})
			return
		}
		f.Floor = &floor
	}

	rooms, err := h.store.ListRooms(c.Request.Context(), f)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, rooms)
}

// CreateRoom handles POST /api/rooms.
func (h *Handler) CreateRoom(c *gin.Context) {
	var req roomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	room, err := req.toRoom()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.store.CreateRoom(c.Request.Context(), &room); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, room)
}

// GetRoom handles GET /api/rooms/:id.
func (h *Handler) GetRoom(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	room, err := h.store.GetRoom(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, room)
}

// UpdateRoom handles PUT /api/rooms/:id.
func (h *Handler) UpdateRoom(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var req roomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	room, err := req.toRoom()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	existing, err := h.store.GetRoom(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	room.ID = id
	room.CreatedAt = existing.CreatedAt
	if room.Status == "" {
		room.Status = existing.Status
	}

	if err := h.store.UpdateRoom(c.Request.Context(), &room); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, room)
}

// DeleteRoom handles DELETE /api/rooms/:id.
func (h *Handler) DeleteRoom(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	if err := h.store.DeleteRoom(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

type roomStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=available occupied cleaning maintenance"`
}

// SetRoomStatus handles PATCH /api/rooms/:id/status.
func (h *Handler) SetRoomStatus(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var req roomStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	if err := h.store.SetRoomStatus(c.Request.Context(), id, req.Status); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": id, "status": req.Status})
}

// AvailableRooms handles GET /api/rooms/available?check_in=&check_out=.
func (h *Handler) AvailableRooms(c *gin.Context) {
	var stay Stay
	if err := c.ShouldBindQuery(&stay); err != nil {
		bindError(c, err)
		return
	}
	in, out := stay.Dates()
	rooms, err := h.store.AvailableRooms(c.Request.Context(), in, out)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, rooms)
}
