package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/trademate-pro/backend/services/scheduling-service/internal/availability"
	"github.com/trademate-pro/backend/services/scheduling-service/internal/model"
	"github.com/trademate-pro/backend/services/scheduling-service/internal/outbox"
	"github.com/trademate-pro/backend/services/scheduling-service/internal/storage"
	"golang.org/x/crypto/bcrypt"
)

type bookRequest struct {
	CompanyID     string `json:"company_id"`
	EmployeeID    string `json:"employee_id"`
	CustomerName  string `json:"customer_name"`
	CustomerEmail string `json:"customer_email"`
	CustomerPhone string `json:"customer_phone"`
	JobType       string `json:"job_type"`
	Description   string `json:"description"`
	StartTime     string `json:"start_time"`
	DurationMins  int    `json:"duration_minutes"`
}

type bookResponse struct {
	Success       bool   `json:"success"`
	WorkOrderID   string `json:"work_order_id"`
	Status        string `json:"status"`
	PortalKey     string `json:"portal_key,omitempty"`
	DepositIntent string `json:"deposit_intent_id,omitempty"`
	DepositSecret string `json:"deposit_client_secret,omitempty"`
}

// Book creates a work order from a customer's slot selection. The selected
// slot is re-validated against live occupancy inside the booking transaction;
// losing the race returns 409 so the widget refreshes its slot list.
func (h *Handler) Book(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req bookRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeEnvelopeError(w, http.StatusBadRequest, "invalid json body")
		return
	}
	req.CompanyID = strings.TrimSpace(req.CompanyID)
	req.EmployeeID = strings.TrimSpace(req.EmployeeID)
	req.CustomerName = strings.TrimSpace(req.CustomerName)
	req.CustomerEmail = strings.TrimSpace(req.CustomerEmail)
	if req.CompanyID == "" || req.EmployeeID == "" || req.CustomerName == "" || req.CustomerEmail == "" {
		writeEnvelopeError(w, http.StatusBadRequest, "missing required fields")
		return
	}
	if req.DurationMins <= 0 || req.DurationMins > 24*60 {
		writeEnvelopeError(w, http.StatusBadRequest, "invalid duration_minutes")
		return
	}
	startTime, err := time.Parse(time.RFC3339, req.StartTime)
	if err != nil {
		writeEnvelopeError(w, http.StatusBadRequest, "invalid start_time")
		return
	}
	endTime := startTime.Add(time.Duration(req.DurationMins) * time.Minute)

	ctx := r.Context()
	cfg, err := h.settings.SchedulingConfig(ctx, req.CompanyID)
	if err != nil {
		h.logger.Error("settings lookup failed", "company_id", req.CompanyID, "err", err)
		writeEnvelopeError(w, http.StatusInternalServerError, "failed to load company settings")
		return
	}
	if !cfg.SelfSchedulingEnabled {
		writeEnvelopeError(w, http.StatusForbidden, "self-scheduling is disabled for this company")
		return
	}

	tx, err := h.repo.Begin(ctx)
	if err != nil {
		writeEnvelopeError(w, http.StatusInternalServerError, "db error")
		return
	}
	defer func() { _ = tx.Rollback(ctx) }()

	idempotencyKey := strings.TrimSpace(r.Header.Get("Idempotency-Key"))
	if idempotencyKey != "" {
		rec, exists, err := h.repo.LockIdempotencyKey(ctx, tx, req.CompanyID, idempotencyKey)
		if err != nil {
			writeEnvelopeError(w, http.StatusInternalServerError, "failed to lock idempotency key")
			return
		}
		if exists && rec.StatusCode > 0 && len(rec.ResponsePayload) > 0 {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(rec.StatusCode)
			_, _ = w.Write(rec.ResponsePayload)
			return
		}
	}

	stillOpen, err := h.slotStillOpen(ctx, cfg.Calendar, cfg.Buffer, req.CompanyID, req.EmployeeID, startTime, req.DurationMins)
	if err != nil {
		writeEnvelopeError(w, http.StatusInternalServerError, "failed to load calendar")
		return
	}
	if !stillOpen {
		if idempotencyKey != "" && h.finalizeIdempotencyError(ctx, tx, req.CompanyID, idempotencyKey, http.StatusConflict, "selected slot is no longer available") {
			_ = tx.Commit(ctx)
		}
		writeEnvelopeError(w, http.StatusConflict, "selected slot is no longer available")
		return
	}

	status := model.StatusPendingApproval
	if cfg.AutoApproveSelections {
		status = model.StatusScheduled
	}

	// Customers manage the resulting work order through a portal link; the
	// key is returned once and only its bcrypt hash is stored.
	portalKey := uuid.NewString()
	portalHash, err := bcrypt.GenerateFromPassword([]byte(portalKey), bcrypt.DefaultCost)
	if err != nil {
		writeEnvelopeError(w, http.StatusInternalServerError, "failed to issue portal key")
		return
	}

	var depositIntent, depositSecret string
	if cfg.DepositCents > 0 && h.deposits != nil && h.deposits.Enabled() {
		bookingKey := idempotencyKey
		if bookingKey == "" {
			bookingKey = uuid.NewString()
		}
		depositIntent, depositSecret, err = h.deposits.CreateDeposit(req.CompanyID, bookingKey, cfg.DepositCents, req.CustomerEmail)
		if err != nil {
			writeEnvelopeError(w, http.StatusBadGateway, "failed to create deposit")
			return
		}
	}

	wo := &model.WorkOrder{
		CompanyID:     req.CompanyID,
		EmployeeID:    req.EmployeeID,
		CustomerName:  req.CustomerName,
		CustomerEmail: req.CustomerEmail,
		CustomerPhone: strings.TrimSpace(req.CustomerPhone),
		JobType:       strings.TrimSpace(req.JobType),
		Description:   strings.TrimSpace(req.Description),
		StartTime:     startTime,
		EndTime:       endTime,
		Status:        status,
		DepositCents:  cfg.DepositCents,
		PaymentRef:    depositIntent,
		PortalKeyHash: string(portalHash),
	}

	id, err := h.repo.CreateWorkOrder(ctx, tx, wo)
	if err != nil {
		if storage.IsConflict(err) {
			writeEnvelopeError(w, http.StatusConflict, "selected slot is no longer available")
			return
		}
		writeEnvelopeError(w, http.StatusInternalServerError, "failed to create work order")
		return
	}

	evtPayload, err := json.Marshal(map[string]any{
		"work_order_id":  id,
		"company_id":     wo.CompanyID,
		"employee_id":    wo.EmployeeID,
		"customer_email": wo.CustomerEmail,
		"job_type":       wo.JobType,
		"status":         wo.Status,
		"deposit_cents":  wo.DepositCents,
		"start_time":     wo.StartTime.UTC().Format(time.RFC3339),
		"end_time":       wo.EndTime.UTC().Format(time.RFC3339),
	})
	if err != nil {
		writeEnvelopeError(w, http.StatusInternalServerError, "failed to build event payload")
		return
	}
	if err := h.outboxRepo.Insert(ctx, tx, outbox.Event{
		AggregateType: "work_order",
		AggregateID:   id,
		CompanyID:     wo.CompanyID,
		EventType:     outbox.TopicWorkOrderBooked,
		Payload:       evtPayload,
	}); err != nil {
		writeEnvelopeError(w, http.StatusInternalServerError, "failed to write outbox event")
		return
	}

	respBody, err := json.Marshal(bookResponse{
		Success:       true,
		WorkOrderID:   id,
		Status:        status,
		PortalKey:     portalKey,
		DepositIntent: depositIntent,
		DepositSecret: depositSecret,
	})
	if err != nil {
		writeEnvelopeError(w, http.StatusInternalServerError, "failed to build response")
		return
	}
	if idempotencyKey != "" {
		if err := h.repo.FinalizeIdempotency(ctx, tx, req.CompanyID, idempotencyKey, id, http.StatusCreated, respBody); err != nil {
			writeEnvelopeError(w, http.StatusInternalServerError, "failed to finalize idempotency key")
			return
		}
	}
	if err := tx.Commit(ctx); err != nil {
		writeEnvelopeError(w, http.StatusInternalServerError, "failed to commit")
		return
	}

	h.logger.Info("work order booked",
		"company_id", wo.CompanyID,
		"work_order_id", id,
		"employee_id", wo.EmployeeID,
		"status", status,
		"deposit_cents", wo.DepositCents,
	)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_, _ = w.Write(respBody)
}

// slotStillOpen recomputes availability for the selected day and checks the
// requested start is still offered for that technician.
func (h *Handler) slotStillOpen(ctx context.Context, cal availability.BusinessCalendar, buf availability.BufferPolicy, companyID, employeeID string, start time.Time, durationMins int) (bool, error) {
	occupancy, err := h.repo.OccupiedIntervals(ctx, companyID, start.AddDate(0, 0, -1), start.AddDate(0, 0, 2))
	if err != nil {
		return false, err
	}
	slots := availability.GenerateSlots(availability.SlotRequest{
		Calendar:        cal,
		Buffer:          buf,
		EmployeeIDs:     []string{employeeID},
		DurationMinutes: durationMins,
		RangeStart:      start,
		RangeEnd:        start,
	}, occupancy, h.now())
	for _, s := range slots {
		if s.Start.Equal(start) {
			return true, nil
		}
	}
	return false, nil
}

func (h *Handler) finalizeIdempotencyError(ctx context.Context, tx pgx.Tx, companyID, key string, statusCode int, msg string) bool {
	body, err := json.Marshal(map[string]any{"success": false, "error": msg})
	if err != nil {
		return false
	}
	if err := h.repo.FinalizeIdempotency(ctx, tx, companyID, key, "", statusCode, body); err != nil {
		h.logger.Error("failed to finalize idempotency (error)", "err", err)
		return false
	}
	return true
}
