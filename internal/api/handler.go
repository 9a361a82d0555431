package api

import (
	"time"

	"github.com/SherClockHolmes/webpush-go"

	"hotel-frontoffice-backend/internal/auth"
	"hotel-frontoffice-backend/internal/notification"
	"hotel-frontoffice-backend/internal/store"
	"hotel-frontoffice-backend/internal/tax"
)

// Notifier queues housekeeping alerts for staff devices.
type Notifier interface {
	Dispatch(alert notification.Alert) bool
}

// Handler holds shared dependencies for API handlers.
type Handler struct {
	store          store.Store
	tax            *tax.Calculator
	auth           *auth.Authenticator
	notifier       Notifier
	webpush        *webpush.Options
	recommendLimit int
	now            func() time.Time
}

// NewHandler creates a new API handler. notifier may be nil when push is disabled.
func NewHandler(s store.Store, calc *tax.Calculator, authn *auth.Authenticator, notifier Notifier, webpushOptions *webpush.Options, recommendLimit int) *Handler {
	return &Handler{
		store:          s,
		tax:            calc,
		auth:           authn,
		notifier:       notifier,
		webpush:        webpushOptions,
		recommendLimit: recommendLimit,
		now:            time.Now,
	}
}

func (h *Handler) notify(alert notification.Alert) {
	if h.notifier != nil {
		h.notifier.Dispatch(alert)
	}
}
