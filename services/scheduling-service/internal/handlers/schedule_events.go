package handlers

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/trademate-pro/backend/services/scheduling-service/internal/model"
)

type createScheduleEventRequest struct {
	EmployeeID string `json:"employee_id"`
	Title      string `json:"title"`
	EventType  string `json:"event_type"`
	StartTime  string `json:"start_time"`
	EndTime    string `json:"end_time"`
}

type scheduleEventItem struct {
	EventID    string `json:"event_id"`
	EmployeeID string `json:"employee_id"`
	Title      string `json:"title"`
	EventType  string `json:"event_type,omitempty"`
	StartTime  string `json:"start_time"`
	EndTime    string `json:"end_time"`
}

// ScheduleEvents handles internal calendar blocks: POST creates one, GET
// lists blocks overlapping a window. Blocks count as occupancy in slot math.
func (h *Handler) ScheduleEvents(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodPost:
		h.createScheduleEvent(w, r)
	case http.MethodGet:
		h.listScheduleEvents(w, r)
	default:
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}

func (h *Handler) createScheduleEvent(w http.ResponseWriter, r *http.Request) {
	companyID := strings.TrimSpace(r.Header.Get("X-Company-Id"))
	if companyID == "" {
		http.Error(w, "company id required", http.StatusBadRequest)
		return
	}

	var req createScheduleEventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid json body", http.StatusBadRequest)
		return
	}
	req.EmployeeID = strings.TrimSpace(req.EmployeeID)
	req.Title = strings.TrimSpace(req.Title)
	if req.EmployeeID == "" || req.Title == "" {
		http.Error(w, "employee_id and title required", http.StatusBadRequest)
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

	ev := &model.ScheduleEvent{
		CompanyID:  companyID,
		EmployeeID: req.EmployeeID,
		Title:      req.Title,
		EventType:  strings.TrimSpace(req.EventType),
		StartTime:  start,
		EndTime:    end,
	}
	id, err := h.repo.CreateScheduleEvent(r.Context(), ev)
	if err != nil {
		http.Error(w, "failed to create schedule event", http.StatusInternalServerError)
		return
	}

	h.logger.Info("schedule event created",
		"company_id", companyID,
		"event_id", id,
		"employee_id", ev.EmployeeID,
		"event_type", ev.EventType,
	)
	writeJSON(w, http.StatusCreated, scheduleEventItem{
		EventID:    id,
		EmployeeID: ev.EmployeeID,
		Title:      ev.Title,
		EventType:  ev.EventType,
		StartTime:  ev.StartTime.UTC().Format(time.RFC3339),
		EndTime:    ev.EndTime.UTC().Format(time.RFC3339),
	})
}

func (h *Handler) listScheduleEvents(w http.ResponseWriter, r *http.Request) {
	companyID := strings.TrimSpace(r.Header.Get("X-Company-Id"))
	if companyID == "" {
		companyID = strings.TrimSpace(r.URL.Query().Get("company_id"))
	}
	if companyID == "" {
		http.Error(w, "company id required", http.StatusBadRequest)
		return
	}

	now := h.now()
	start, ok := parseDay(r.URL.Query().Get("from"), time.UTC, now.AddDate(0, 0, -7))
	if !ok {
		http.Error(w, "invalid from date", http.StatusBadRequest)
		return
	}
	end, ok := parseDay(r.URL.Query().Get("to"), time.UTC, now.AddDate(0, 0, 30))
	if !ok {
		http.Error(w, "invalid to date", http.StatusBadRequest)
		return
	}

	events, err := h.repo.ListScheduleEvents(r.Context(), companyID, start, end.AddDate(0, 0, 1))
	if err != nil {
		http.Error(w, "failed to list schedule events", http.StatusInternalServerError)
		return
	}

	items := make([]scheduleEventItem, 0, len(events))
	for _, ev := range events {
		items = append(items, scheduleEventItem{
			EventID:    ev.ID,
			EmployeeID: ev.EmployeeID,
			Title:      ev.Title,
			EventType:  ev.EventType,
			StartTime:  ev.StartTime.UTC().Format(time.RFC3339),
			EndTime:    ev.EndTime.UTC().Format(time.RFC3339),
		})
	}
	writeJSON(w, http.StatusOK, items)
}
