package api

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// guestEmail reads and validates the :email path parameter.
func guestEmail(c *gin.Context) (string, bool) {
	email := strings.ToLower(strings.TrimSpace(c.Param("email")))
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		if err := v.Var(email, "required,email"); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid email"})
			return "", false
		}
	}
	return email, true
}

// PutGuestPreferences handles PUT /api/guests/:email/preferences.
func (h *Handler) PutGuestPreferences(c *gin.Context) {
	email, ok := guestEmail(c)
	if !ok {
		return
	}
	var req preferencesBody
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	p := req.toModel(email)
	if err := h.store.UpsertGuestPreference(c.Request.Context(), &p); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

// GetGuestPreferences handles GET /api/guests/:email/preferences.
func (h *Handler) GetGuestPreferences(c *gin.Context) {
	email, ok := guestEmail(c)
	if !ok {
		return
	}
	p, err := h.store.GetGuestPreference(c.Request.Context(), email)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}
