package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"hotel-frontoffice-backend/internal/model"
	"hotel-frontoffice-backend/internal/store"
)

type createEntryRequest struct {
	Date      string  `json:"date" binding:"required,datetime=2006-01-02"`
	Kind      string  `json:"kind" binding:"required,oneof=income expense"`
	Category  string  `json:"category" binding:"required"`
	Amount    float64 `json:"amount" binding:"required,gt=0"`
	Reference string  `json:"reference"`
	Memo      string  `json:"memo"`
}

// CreateEntry handles POST /api/accounts/entries.
func (h *Handler) CreateEntry(c *gin.Context) {
	var req createEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	date, _ := time.Parse(dateLayout, req.Date)

	entry := model.AccountEntry{
		Date:      date,
		Kind:      req.Kind,
		Category:  req.Category,
		Amount:    req.Amount,
		Reference: req.Reference,
		Memo:      req.Memo,
	}
	if err := h.store.CreateEntry(c.Request.Context(), &entry); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, entry)
}

// entryFilter reads kind, from and to query parameters. to covers the whole day.
func entryFilter(c *gin.Context) (store.EntryFilter, bool) {
	f := store.EntryFilter{Kind: c.Query("kind")}
	var ok bool
	if f.From, ok = queryDate(c, "from"); !ok {
		return f, false
	}
	if f.To, ok = queryDate(c, "to"); !ok {
		return f, false
	}
	if !f.To.IsZero() {
		f.To = f.To.Add(24*time.Hour - time.Nanosecond)
	}
	return f, true
}

// ListEntries handles GET /api/accounts/entries.
func (h *Handler) ListEntries(c *gin.Context) {
	f, ok := entryFilter(c)
	if !ok {
		return
	}
	entries, err := h.store.ListEntries(c.Request.Context(), f)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, entries)
}

// AccountSummary handles GET /api/accounts/summary.
func (h *Handler) AccountSummary(c *gin.Context) {
	f, ok := entryFilter(c)
	if !ok {
		return
	}
	sum, err := h.store.Summary(c.Request.Context(), f)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, sum)
}
