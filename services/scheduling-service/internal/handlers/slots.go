package handlers

import (
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/trademate-pro/backend/services/scheduling-service/internal/availability"
)

type slotItem struct {
	StartTime       string `json:"start_time"`
	EndTime         string `json:"end_time"`
	DurationMinutes int    `json:"duration_minutes"`
	EmployeeID      string `json:"employee_id"`
}

type slotsDebug struct {
	Timezone        string `json:"timezone"`
	WorkingDays     []int  `json:"working_days"`
	DayStartMinute  int    `json:"day_start_minute"`
	DayEndMinute    int    `json:"day_end_minute"`
	SlotStepMinutes int    `json:"slot_step_minutes"`
	BufferBefore    int    `json:"buffer_before_minutes"`
	BufferAfter     int    `json:"buffer_after_minutes"`
	MinAdvanceHours int    `json:"min_advance_hours"`
	MaxAdvanceDays  int    `json:"max_advance_days"`
	Employees       int    `json:"employees"`
	BusyIntervals   int    `json:"busy_intervals"`
	ElapsedMs       int64  `json:"elapsed_ms"`
}

type slotsResponse struct {
	Success bool        `json:"success"`
	Slots   []slotItem  `json:"slots"`
	Debug   *slotsDebug `json:"debug,omitempty"`
}

// Slots is the public availability endpoint behind the customer booking
// widget. Degenerate inputs produce an empty slot list, never an error: the
// widget treats any non-envelope response as an outage.
func (h *Handler) Slots(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	started := h.now()

	q := r.URL.Query()
	companyID := strings.TrimSpace(q.Get("company_id"))
	if companyID == "" {
		writeEnvelopeError(w, http.StatusBadRequest, "company_id required")
		return
	}

	employeeIDs := splitCSV(q.Get("employee_ids"))
	if len(employeeIDs) == 0 {
		writeJSON(w, http.StatusOK, slotsResponse{Success: true, Slots: []slotItem{}})
		return
	}

	durationMins := 60
	if raw := strings.TrimSpace(q.Get("duration_minutes")); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 || n > 24*60 {
			writeEnvelopeError(w, http.StatusBadRequest, "invalid duration_minutes")
			return
		}
		durationMins = n
	}

	cfg, err := h.settings.SchedulingConfig(r.Context(), companyID)
	if err != nil {
		h.logger.Error("settings lookup failed", "company_id", companyID, "err", err)
		writeEnvelopeError(w, http.StatusInternalServerError, "failed to load company settings")
		return
	}
	if !cfg.SelfSchedulingEnabled {
		writeEnvelopeError(w, http.StatusForbidden, "self-scheduling is disabled for this company")
		return
	}

	loc := time.UTC
	if cfg.Calendar.Location != nil {
		loc = cfg.Calendar.Location
	}
	now := h.now()

	rangeStart, ok := parseDay(queryAlias(q, "range_start", "from"), loc, now)
	if !ok {
		writeEnvelopeError(w, http.StatusBadRequest, "invalid range_start date")
		return
	}
	rangeEnd, ok := parseDay(queryAlias(q, "range_end", "to"), loc, rangeStart.AddDate(0, 0, 6))
	if !ok {
		writeEnvelopeError(w, http.StatusBadRequest, "invalid range_end date")
		return
	}

	// Pad the occupancy window by a day each side so bookings that straddle
	// the range edges (or get widened by buffers) still block slots.
	occupancy, err := h.repo.OccupiedIntervals(r.Context(), companyID,
		rangeStart.AddDate(0, 0, -1), rangeEnd.AddDate(0, 0, 2))
	if err != nil {
		h.logger.Error("occupancy load failed", "company_id", companyID, "err", err)
		writeEnvelopeError(w, http.StatusInternalServerError, "failed to load calendar")
		return
	}

	slots := availability.GenerateSlots(availability.SlotRequest{
		Calendar:        cfg.Calendar,
		Buffer:          cfg.Buffer,
		EmployeeIDs:     employeeIDs,
		DurationMinutes: durationMins,
		RangeStart:      rangeStart,
		RangeEnd:        rangeEnd,
	}, occupancy, now)

	items := make([]slotItem, 0, len(slots))
	for _, s := range slots {
		items = append(items, slotItem{
			StartTime:       s.Start.UTC().Format(time.RFC3339),
			EndTime:         s.End.UTC().Format(time.RFC3339),
			DurationMinutes: durationMins,
			EmployeeID:      s.EmployeeID,
		})
	}

	resp := slotsResponse{Success: true, Slots: items}
	busyCount := 0
	for _, ivs := range occupancy {
		busyCount += len(ivs)
	}
	if isDebug(q.Get("debug")) {
		days := make([]int, 0, len(cfg.Calendar.WorkingDays))
		for _, d := range cfg.Calendar.WorkingDays {
			days = append(days, int(d))
		}
		resp.Debug = &slotsDebug{
			Timezone:        cfg.Timezone,
			WorkingDays:     days,
			DayStartMinute:  cfg.Calendar.DayStartMinute,
			DayEndMinute:    cfg.Calendar.DayEndMinute,
			SlotStepMinutes: cfg.Calendar.SlotStepMinutes,
			BufferBefore:    cfg.Buffer.BeforeMinutes,
			BufferAfter:     cfg.Buffer.AfterMinutes,
			MinAdvanceHours: cfg.Calendar.MinAdvanceHours,
			MaxAdvanceDays:  cfg.Calendar.MaxAdvanceDays,
			Employees:       len(employeeIDs),
			BusyIntervals:   busyCount,
			ElapsedMs:       h.now().Sub(started).Milliseconds(),
		}
	}

	h.logger.Info("slots computed",
		"company_id", companyID,
		"employees", len(employeeIDs),
		"duration_minutes", durationMins,
		"busy_intervals", busyCount,
		"slots", len(items),
	)
	writeJSON(w, http.StatusOK, resp)
}

// queryAlias returns the first non-empty value among the given query keys.
// The booking widget still sends the older from/to names.
func queryAlias(q url.Values, keys ...string) string {
	for _, k := range keys {
		if v := strings.TrimSpace(q.Get(k)); v != "" {
			return v
		}
	}
	return ""
}

func splitCSV(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// parseDay interprets a YYYY-MM-DD value as midnight in the company's
// timezone; an empty value falls back to the supplied default instant.
func parseDay(raw string, loc *time.Location, fallback time.Time) (time.Time, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return fallback, true
	}
	day, err := time.ParseInLocation("2006-01-02", raw, loc)
	if err != nil {
		return time.Time{}, false
	}
	return day, true
}

func isDebug(raw string) bool {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "1", "true", "yes":
		return true
	}
	return false
}
