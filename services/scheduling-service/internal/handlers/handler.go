package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/trademate-pro/backend/services/scheduling-service/internal/outbox"
	"github.com/trademate-pro/backend/services/scheduling-service/internal/payments"
	"github.com/trademate-pro/backend/services/scheduling-service/internal/settings"
	"github.com/trademate-pro/backend/services/scheduling-service/internal/storage"
)

type Handler struct {
	repo       *storage.ScheduleRepository
	outboxRepo *outbox.Repository
	settings   settings.Provider
	deposits   *payments.DepositCollector
	logger     *slog.Logger

	// now is swapped in tests to pin the advance-window clock.
	now func() time.Time
}

func New(repo *storage.ScheduleRepository, outboxRepo *outbox.Repository, settingsProvider settings.Provider, deposits *payments.DepositCollector, logger *slog.Logger) *Handler {
	return &Handler{
		repo:       repo,
		outboxRepo: outboxRepo,
		settings:   settingsProvider,
		deposits:   deposits,
		logger:     logger,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

// writeEnvelopeError is used on the public endpoints, which wrap every
// response in a {success, ...} envelope for the booking widget.
func writeEnvelopeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]any{"success": false, "error": msg})
}
