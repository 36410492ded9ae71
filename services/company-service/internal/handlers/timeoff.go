package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/trademate-pro/backend/services/company-service/internal/outbox"
	"github.com/trademate-pro/backend/services/company-service/internal/storage"
)

// Time-off statuses. Only approved entries block availability downstream.
const (
	timeOffPending  = "PENDING"
	timeOffApproved = "APPROVED"
	timeOffDenied   = "DENIED"
)

type createTimeOffRequest struct {
	EmployeeID string `json:"employee_id"`
	StartTime  string `json:"start_time"`
	EndTime    string `json:"end_time"`
	Reason     string `json:"reason"`
	Approved   bool   `json:"approved"`
}

func (h *Handler) CreateTimeOff(w http.ResponseWriter, r *http.Request) {
	cid := companyID(r)
	if cid == "" {
		http.Error(w, "missing company id", http.StatusBadRequest)
		return
	}

	var req createTimeOffRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid json body", http.StatusBadRequest)
		return
	}
	req.EmployeeID = strings.TrimSpace(req.EmployeeID)
	if req.EmployeeID == "" {
		http.Error(w, "employee_id required", http.StatusBadRequest)
		return
	}
	start, err := time.Parse(time.RFC3339, req.StartTime)
	if err != nil {
		http.Error(w, "invalid start_time", http.StatusBadRequest)
		return
	}
	end, err := time.Parse(time.RFC3339, req.EndTime)
	if err != nil {
		http.Error(w, "invalid end_time", http.StatusBadRequest)
		return
	}
	if !end.After(start) {
		http.Error(w, "end_time must be after start_time", http.StatusBadRequest)
		return
	}

	status := timeOffPending
	if req.Approved {
		status = timeOffApproved
	}
	entry := storage.TimeOff{
		CompanyID:  cid,
		EmployeeID: req.EmployeeID,
		StartTime:  start,
		EndTime:    end,
		Status:     status,
		Reason:     strings.TrimSpace(req.Reason),
	}

	ctx := r.Context()
	tx, err := h.repo.Begin(ctx)
	if err != nil {
		http.Error(w, "db error", http.StatusInternalServerError)
		return
	}
	defer func() { _ = tx.Rollback(ctx) }()

	id, err := h.repo.CreateTimeOff(ctx, tx, entry)
	if err != nil {
		http.Error(w, "failed to create time off", http.StatusInternalServerError)
		return
	}
	entry.ID = id

	if err := h.emitTimeOffChanged(ctx, tx, entry, false); err != nil {
		http.Error(w, "failed to write outbox event", http.StatusInternalServerError)
		return
	}
	if err := tx.Commit(ctx); err != nil {
		http.Error(w, "failed to commit", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{"id": id, "status": status})
}

type timeOffDecisionRequest struct {
	EntryID string `json:"entry_id"`
	Approve bool   `json:"approve"`
}

// DecideTimeOff approves or denies a pending request and fans the change out
// to the scheduling replica.
func (h *Handler) DecideTimeOff(w http.ResponseWriter, r *http.Request) {
	cid := companyID(r)
	if cid == "" {
		http.Error(w, "missing company id", http.StatusBadRequest)
		return
	}

	var req timeOffDecisionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid json body", http.StatusBadRequest)
		return
	}
	req.EntryID = strings.TrimSpace(req.EntryID)
	if req.EntryID == "" {
		http.Error(w, "entry_id required", http.StatusBadRequest)
		return
	}

	ctx := r.Context()
	tx, err := h.repo.Begin(ctx)
	if err != nil {
		http.Error(w, "db error", http.StatusInternalServerError)
		return
	}
	defer func() { _ = tx.Rollback(ctx) }()

	entry, err := h.repo.GetTimeOffForUpdate(ctx, tx, cid, req.EntryID)
	if err != nil {
		if storage.IsNotFound(err) {
			http.Error(w, "time off entry not found", http.StatusNotFound)
			return
		}
		http.Error(w, "failed to load time off entry", http.StatusInternalServerError)
		return
	}

	status := timeOffDenied
	if req.Approve {
		status = timeOffApproved
	}
	if err := h.repo.SetTimeOffStatus(ctx, tx, cid, entry.ID, status); err != nil {
		http.Error(w, "failed to update time off entry", http.StatusInternalServerError)
		return
	}
	entry.Status = status

	if err := h.emitTimeOffChanged(ctx, tx, entry, false); err != nil {
		http.Error(w, "failed to write outbox event", http.StatusInternalServerError)
		return
	}
	if err := tx.Commit(ctx); err != nil {
		http.Error(w, "failed to commit", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"id": entry.ID, "status": status})
}

func (h *Handler) DeleteTimeOff(w http.ResponseWriter, r *http.Request) {
	cid := companyID(r)
	entryID := strings.TrimSpace(r.URL.Query().Get("entry_id"))
	if cid == "" || entryID == "" {
		http.Error(w, "company id and entry_id required", http.StatusBadRequest)
		return
	}

	ctx := r.Context()
	tx, err := h.repo.Begin(ctx)
	if err != nil {
		http.Error(w, "db error", http.StatusInternalServerError)
		return
	}
	defer func() { _ = tx.Rollback(ctx) }()

	entry, err := h.repo.GetTimeOffForUpdate(ctx, tx, cid, entryID)
	if err != nil {
		if storage.IsNotFound(err) {
			http.Error(w, "time off entry not found", http.StatusNotFound)
			return
		}
		http.Error(w, "failed to load time off entry", http.StatusInternalServerError)
		return
	}
	if err := h.repo.DeleteTimeOff(ctx, tx, cid, entryID); err != nil {
		http.Error(w, "failed to delete time off entry", http.StatusInternalServerError)
		return
	}

	if err := h.emitTimeOffChanged(ctx, tx, entry, true); err != nil {
		http.Error(w, "failed to write outbox event", http.StatusInternalServerError)
		return
	}
	if err := tx.Commit(ctx); err != nil {
		http.Error(w, "failed to commit", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) ListTimeOff(w http.ResponseWriter, r *http.Request) {
	cid := companyID(r)
	if cid == "" {
		http.Error(w, "missing company id", http.StatusBadRequest)
		return
	}

	now := time.Now().UTC()
	start := now.AddDate(0, -1, 0)
	end := now.AddDate(1, 0, 0)
	if raw := strings.TrimSpace(r.URL.Query().Get("from")); raw != "" {
		t, err := time.Parse("2006-01-02", raw)
		if err != nil {
			http.Error(w, "invalid from date", http.StatusBadRequest)
			return
		}
		start = t
	}
	if raw := strings.TrimSpace(r.URL.Query().Get("to")); raw != "" {
		t, err := time.Parse("2006-01-02", raw)
		if err != nil {
			http.Error(w, "invalid to date", http.StatusBadRequest)
			return
		}
		end = t.AddDate(0, 0, 1)
	}

	entries, err := h.repo.ListTimeOff(r.Context(), cid, start, end)
	if err != nil {
		http.Error(w, "failed to list time off", http.StatusInternalServerError)
		return
	}

	items := make([]map[string]any, 0, len(entries))
	for _, t := range entries {
		items = append(items, map[string]any{
			"id":          t.ID,
			"employee_id": t.EmployeeID,
			"start_time":  t.StartTime.UTC().Format(time.RFC3339),
			"end_time":    t.EndTime.UTC().Format(time.RFC3339),
			"status":      t.Status,
			"reason":      t.Reason,
		})
	}
	writeJSON(w, http.StatusOK, items)
}

func (h *Handler) emitTimeOffChanged(ctx context.Context, tx pgx.Tx, entry storage.TimeOff, deleted bool) error {
	payload, err := json.Marshal(map[string]any{
		"company_id":  entry.CompanyID,
		"entry_id":    entry.ID,
		"employee_id": entry.EmployeeID,
		"start_time":  entry.StartTime.UTC().Format(time.RFC3339),
		"end_time":    entry.EndTime.UTC().Format(time.RFC3339),
		"status":      entry.Status,
		"deleted":     deleted,
	})
	if err != nil {
		return err
	}
	return h.outboxRepo.Insert(ctx, tx, outbox.Event{
		AggregateType: "time_off",
		AggregateID:   entry.ID,
		CompanyID:     entry.CompanyID,
		EventType:     outbox.TopicTimeOffChanged,
		Payload:       payload,
	})
}
