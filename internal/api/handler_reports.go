package api

import (
	"bytes"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"hotel-frontoffice-backend/internal/report"
	"hotel-frontoffice-backend/internal/store"
)

// reportRange reads from/to, defaulting to the week starting today.
func (h *Handler) reportRange(c *gin.Context, defaultDays int) (time.Time, time.Time, bool) {
	from, ok := queryDate(c, "from")
	if !ok {
		return time.Time{}, time.Time{}, false
	}
	to, ok := queryDate(c, "to")
	if !ok {
		return time.Time{}, time.Time{}, false
	}
	if from.IsZero() {
		now := h.now().UTC()
		from = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	}
	if to.IsZero() {
		to = from.AddDate(0, 0, defaultDays-1)
	}
	return from, to, true
}

func sendWorkbook(c *gin.Context, name string, from, to time.Time, buf *bytes.Buffer) {
	filename := fmt.Sprintf("%s_%s_%s.xlsx", name, from.Format("20060102"), to.Format("20060102"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, report.ContentType, buf.Bytes())
}

// OccupancyReport handles GET /api/reports/occupancy. format=xlsx returns a workbook.
func (h *Handler) OccupancyReport(c *gin.Context) {
	from, to, ok := h.reportRange(c, 7)
	if !ok {
		return
	}
	days, err := h.store.Occupancy(c.Request.Context(), from, to)
	if err != nil {
		respondError(c, err)
		return
	}

	if c.Query("format") == "xlsx" {
		buf, err := report.Occupancy(days)
		if err != nil {
			respondError(c, err)
			return
		}
		sendWorkbook(c, "occupancy", from, to, buf)
		return
	}
	c.JSON(http.StatusOK, days)
}

// RevenueReport handles GET /api/reports/revenue. format=xlsx returns a workbook.
func (h *Handler) RevenueReport(c *gin.Context) {
	from, to, ok := h.reportRange(c, 30)
	if !ok {
		return
	}
	f := store.EntryFilter{From: from, To: to.Add(24*time.Hour - time.Nanosecond)}
	entries, err := h.store.ListEntries(c.Request.Context(), f)
	if err != nil {
		respondError(c, err)
		return
	}
	sum, err := h.store.Summary(c.Request.Context(), f)
	if err != nil {
		respondError(c, err)
		return
	}

	if c.Query("format") == "xlsx" {
		buf, err := report.Revenue(entries, sum)
		if err != nil {
			respondError(c, err)
			return
		}
		sendWorkbook(c, "revenue", from, to, buf)
		return
	}
	c.JSON(http.StatusOK, gin.H{"entries": entries, "summary": sum})
}
