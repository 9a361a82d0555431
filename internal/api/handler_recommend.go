package api

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"hotel-frontoffice-backend/internal/model"
	"hotel-frontoffice-backend/internal/recommend"
	"hotel-frontoffice-backend/internal/store"
)

type preferencesBody struct {
	BedType            string   `json:"bed_type"`
	ViewType           string   `json:"view_type"`
	Floor              *int     `json:"floor" binding:"omitempty,gte=0"`
	AccessibilityNeeds []string `json:"accessibility_needs"`
	Smoking            string   `json:"smoking_preference" binding:"smoking_pref"`
	Balcony            bool     `json:"balcony"`
	Soundproof         bool     `json:"soundproof"`
	AirPurifier        bool     `json:"air_purifier"`
}

func (p preferencesBody) toModel(email string) model.GuestPreference {
	return model.GuestPreference{
		GuestEmail:         email,
		BedType:            p.BedType,
		ViewType:           p.ViewType,
		Floor:              p.Floor,
		AccessibilityNeeds: model.StringList(p.AccessibilityNeeds),
		Smoking:            p.Smoking,
		Balcony:            p.Balcony,
		Soundproof:         p.Soundproof,
		AirPurifier:        p.AirPurifier,
	}
}

type recommendationRequest struct {
	Stay
	GuestEmail  string            `json:"guest_email" binding:"omitempty,email"`
	Preferences *preferencesBody  `json:"preferences"`
	Filters     recommend.Filters `json:"filters"`
	Limit       int               `json:"limit" binding:"gte=0,lte=100"`
}

type recommendationResponse struct {
	CheckIn     string                 `json:"check_in"`
	CheckOut    string                 `json:"check_out"`
	Source      string                 `json:"preferences_source"`
	Preferences recommend.Preferences  `json:"preferences"`
	MaxScore    int                    `json:"max_score"`
	Rooms       []recommend.ScoredRoom `json:"rooms"`
}

// Recommend handles POST /api/recommendations. Preferences come from the request body,
// or from the stored profile of guest_email when the body has none.
func (h *Handler) Recommend(c *gin.Context) {
	var req recommendationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	ctx := c.Request.Context()
	in, out := req.Dates()

	source := "none"
	var prefs recommend.Preferences
	switch {
	case req.Preferences != nil:
		source = "request"
		prefs = req.Preferences.toModel("").Preferences(in, out)
	case req.GuestEmail != "":
		stored, err := h.store.GetGuestPreference(ctx, strings.ToLower(req.GuestEmail))
		switch {
		case err == nil:
			source = "profile"
			prefs = stored.Preferences(in, out)
		case errors.Is(err, store.ErrNotFound):
			prefs = recommend.Preferences{CheckIn: in, CheckOut: out}
		default:
			respondError(c, err)
			return
		}
	default:
		prefs = recommend.Preferences{CheckIn: in, CheckOut: out}
	}

	rooms, err := h.store.AvailableRooms(ctx, in, out)
	if err != nil {
		respondError(c, err)
		return
	}

	limit := req.Limit
	if limit == 0 {
		limit = h.recommendLimit
	}

	c.JSON(http.StatusOK, recommendationResponse{
		CheckIn:     req.CheckIn,
		CheckOut:    req.CheckOut,
		Source:      source,
		Preferences: prefs,
		MaxScore:    recommend.MaxScore,
		Rooms:       recommend.Recommend(prefs, req.Filters, model.Candidates(rooms), limit),
	})
}
