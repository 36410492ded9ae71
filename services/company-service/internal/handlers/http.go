package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/trademate-pro/backend/libs/auth"
	"github.com/trademate-pro/backend/services/company-service/internal/outbox"
	"github.com/trademate-pro/backend/services/company-service/internal/storage"
)

type Handler struct {
	repo       *storage.Repository
	outboxRepo *outbox.Repository
	logger     *slog.Logger
}

func New(repo *storage.Repository, outboxRepo *outbox.Repository, logger *slog.Logger) *Handler {
	return &Handler{repo: repo, outboxRepo: outboxRepo, logger: logger}
}

// companyID prefers the verified token claim over the routing header.
func companyID(r *http.Request) string {
	if c := auth.ClaimsFromContext(r.Context()); c != nil && c.CompanyID != "" {
		return c.CompanyID
	}
	return strings.TrimSpace(r.Header.Get("X-Company-Id"))
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func (h *Handler) GetSettings(w http.ResponseWriter, r *http.Request) {
	cid := companyID(r)
	if cid == "" {
		http.Error(w, "missing company id", http.StatusBadRequest)
		return
	}

	s, err := h.repo.GetOrCreateSettings(r.Context(), cid)
	if err != nil {
		http.Error(w, "failed to load settings", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, settingsBody(s))
}

type updateSettingsRequest struct {
	Timezone              string `json:"timezone"`
	WorkingDays           []int  `json:"working_days"`
	DayStartMinute        int    `json:"day_start_minute"`
	DayEndMinute          int    `json:"day_end_minute"`
	SlotStepMinutes       int    `json:"slot_step_minutes"`
	BufferBeforeMinutes   int    `json:"buffer_before_minutes"`
	BufferAfterMinutes    int    `json:"buffer_after_minutes"`
	MinAdvanceHours       int    `json:"min_advance_hours"`
	MaxAdvanceDays        int    `json:"max_advance_days"`
	CapacityHoursPerDay   int    `json:"capacity_hours_per_day"`
	SelfSchedulingEnabled bool   `json:"self_scheduling_enabled"`
	AutoApproveSelections bool   `json:"auto_approve_selections"`
	DepositCents          int64  `json:"deposit_cents"`

	// Older admin clients send one shared buffer instead of the split pair.
	JobBufferMinutes int `json:"job_buffer_minutes"`
}

func (h *Handler) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	cid := companyID(r)
	if cid == "" {
		http.Error(w, "missing company id", http.StatusBadRequest)
		return
	}

	var req updateSettingsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid json body", http.StatusBadRequest)
		return
	}
	req.Timezone = strings.TrimSpace(req.Timezone)
	if req.Timezone == "" {
		req.Timezone = "UTC"
	}
	if _, err := time.LoadLocation(req.Timezone); err != nil {
		http.Error(w, "unknown timezone", http.StatusBadRequest)
		return
	}
	if req.DayStartMinute < 0 || req.DayEndMinute > 24*60 || req.DayEndMinute <= req.DayStartMinute {
		http.Error(w, "invalid business hours", http.StatusBadRequest)
		return
	}
	if req.SlotStepMinutes <= 0 || req.SlotStepMinutes > 240 {
		http.Error(w, "invalid slot_step_minutes", http.StatusBadRequest)
		return
	}
	if req.BufferBeforeMinutes < 0 || req.BufferAfterMinutes < 0 || req.JobBufferMinutes < 0 {
		http.Error(w, "invalid buffers", http.StatusBadRequest)
		return
	}
	if req.BufferBeforeMinutes == 0 && req.BufferAfterMinutes == 0 && req.JobBufferMinutes > 0 {
		req.BufferBeforeMinutes = req.JobBufferMinutes
		req.BufferAfterMinutes = req.JobBufferMinutes
	}
	if req.MinAdvanceHours < 0 || req.MaxAdvanceDays < 0 || req.CapacityHoursPerDay < 0 || req.DepositCents < 0 {
		http.Error(w, "invalid scheduling limits", http.StatusBadRequest)
		return
	}
	var days []int
	seen := map[int]bool{}
	for _, d := range req.WorkingDays {
		if d < 0 || d > 6 {
			http.Error(w, "invalid working_days", http.StatusBadRequest)
			return
		}
		if !seen[d] {
			seen[d] = true
			days = append(days, d)
		}
	}

	s := storage.CompanySettings{
		CompanyID:             cid,
		Timezone:              req.Timezone,
		WorkingDays:           days,
		DayStartMinute:        req.DayStartMinute,
		DayEndMinute:          req.DayEndMinute,
		SlotStepMinutes:       req.SlotStepMinutes,
		BufferBeforeMinutes:   req.BufferBeforeMinutes,
		BufferAfterMinutes:    req.BufferAfterMinutes,
		MinAdvanceHours:       req.MinAdvanceHours,
		MaxAdvanceDays:        req.MaxAdvanceDays,
		CapacityHoursPerDay:   req.CapacityHoursPerDay,
		SelfSchedulingEnabled: req.SelfSchedulingEnabled,
		AutoApproveSelections: req.AutoApproveSelections,
		DepositCents:          req.DepositCents,
	}

	ctx := r.Context()
	tx, err := h.repo.Begin(ctx)
	if err != nil {
		http.Error(w, "db error", http.StatusInternalServerError)
		return
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := h.repo.UpdateSettings(ctx, tx, s); err != nil {
		http.Error(w, "failed to update settings", http.StatusInternalServerError)
		return
	}

	payload, err := json.Marshal(settingsBody(s))
	if err != nil {
		http.Error(w, "failed to build event payload", http.StatusInternalServerError)
		return
	}
	if err := h.outboxRepo.Insert(ctx, tx, outbox.Event{
		AggregateType: "company_settings",
		AggregateID:   cid,
		CompanyID:     cid,
		EventType:     outbox.TopicSettingsUpdated,
		Payload:       payload,
	}); err != nil {
		http.Error(w, "failed to write outbox event", http.StatusInternalServerError)
		return
	}
	if err := tx.Commit(ctx); err != nil {
		http.Error(w, "failed to commit", http.StatusInternalServerError)
		return
	}

	h.logger.Info("company settings updated", "company_id", cid, "self_scheduling", s.SelfSchedulingEnabled)
	w.WriteHeader(http.StatusNoContent)
}

// settingsBody doubles as the HTTP response and the settings-updated event
// payload, so the scheduling cache consumes exactly what admins see.
func settingsBody(s storage.CompanySettings) map[string]any {
	days := s.WorkingDays
	if days == nil {
		days = []int{}
	}
	return map[string]any{
		"company_id":              s.CompanyID,
		"timezone":                s.Timezone,
		"working_days":            days,
		"day_start_minute":        s.DayStartMinute,
		"day_end_minute":          s.DayEndMinute,
		"slot_step_minutes":       s.SlotStepMinutes,
		"buffer_before_minutes":   s.BufferBeforeMinutes,
		"buffer_after_minutes":    s.BufferAfterMinutes,
		"min_advance_hours":       s.MinAdvanceHours,
		"max_advance_days":        s.MaxAdvanceDays,
		"capacity_hours_per_day":  s.CapacityHoursPerDay,
		"self_scheduling_enabled": s.SelfSchedulingEnabled,
		"auto_approve_selections": s.AutoApproveSelections,
		"deposit_cents":           s.DepositCents,
	}
}

func (h *Handler) CreateEmployee(w http.ResponseWriter, r *http.Request) {
	cid := companyID(r)
	if cid == "" {
		http.Error(w, "missing company id", http.StatusBadRequest)
		return
	}

	var req struct {
		Name  string `json:"name"`
		Trade string `json:"trade"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid json body", http.StatusBadRequest)
		return
	}
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		http.Error(w, "name required", http.StatusBadRequest)
		return
	}

	id, err := h.repo.CreateEmployee(r.Context(), cid, req.Name, strings.TrimSpace(req.Trade))
	if err != nil {
		http.Error(w, "failed to create employee", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{"id": id})
}

func (h *Handler) ListEmployees(w http.ResponseWriter, r *http.Request) {
	cid := companyID(r)
	if cid == "" {
		http.Error(w, "missing company id", http.StatusBadRequest)
		return
	}

	limit := 100
	if raw := strings.TrimSpace(r.URL.Query().Get("limit")); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 && n <= 500 {
			limit = n
		}
	}

	employees, err := h.repo.ListEmployees(r.Context(), cid, limit)
	if err != nil {
		http.Error(w, "failed to list employees", http.StatusInternalServerError)
		return
	}

	items := make([]map[string]any, 0, len(employees))
	for _, e := range employees {
		items = append(items, map[string]any{
			"id":        e.ID,
			"name":      e.Name,
			"trade":     e.Trade,
			"is_active": e.IsActive,
		})
	}
	writeJSON(w, http.StatusOK, items)
}

func (h *Handler) DeactivateEmployee(w http.ResponseWriter, r *http.Request) {
	cid := companyID(r)
	employeeID := strings.TrimSpace(r.URL.Query().Get("employee_id"))
	if cid == "" || employeeID == "" {
		http.Error(w, "company id and employee_id required", http.StatusBadRequest)
		return
	}

	if err := h.repo.DeactivateEmployee(r.Context(), cid, employeeID); err != nil {
		if storage.IsNotFound(err) {
			http.Error(w, "employee not found", http.StatusNotFound)
			return
		}
		http.Error(w, "failed to deactivate employee", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
