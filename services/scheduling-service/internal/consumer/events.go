package consumer

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/trademate-pro/backend/services/scheduling-service/internal/model"
)

// Topics this service consumes from company-service.
const (
	TopicSettingsUpdated = "company.settings.updated.v1"
	TopicTimeOffChanged  = "company.timeoff.changed.v1"
)

type settingsWriter interface {
	UpsertCompanySettings(ctx context.Context, s model.CompanySettings) error
}

type timeOffWriter interface {
	UpsertTimeOff(ctx context.Context, entry model.TimeOffEntry) error
	DeleteTimeOff(ctx context.Context, companyID, entryID string) error
}

type settingsUpdated struct {
	CompanyID             string `json:"company_id"`
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
}

// NewSettingsUpdatedHandler applies company settings events to the local
// cache. Malformed payloads are logged and dropped so the topic keeps moving.
func NewSettingsUpdatedHandler(logger *slog.Logger, store settingsWriter) Handler {
	return func(ctx context.Context, msg kafka.Message) error {
		var evt settingsUpdated
		if err := json.Unmarshal(msg.Value, &evt); err != nil {
			logger.Error("invalid settings event", "err", err)
			return nil
		}
		if evt.CompanyID == "" {
			logger.Error("settings event missing company_id")
			return nil
		}
		return store.UpsertCompanySettings(ctx, model.CompanySettings{
			CompanyID:             evt.CompanyID,
			Timezone:              evt.Timezone,
			WorkingDays:           evt.WorkingDays,
			DayStartMinute:        evt.DayStartMinute,
			DayEndMinute:          evt.DayEndMinute,
			SlotStepMinutes:       evt.SlotStepMinutes,
			BufferBeforeMinutes:   evt.BufferBeforeMinutes,
			BufferAfterMinutes:    evt.BufferAfterMinutes,
			MinAdvanceHours:       evt.MinAdvanceHours,
			MaxAdvanceDays:        evt.MaxAdvanceDays,
			CapacityHoursPerDay:   evt.CapacityHoursPerDay,
			SelfSchedulingEnabled: evt.SelfSchedulingEnabled,
			AutoApproveSelections: evt.AutoApproveSelections,
			DepositCents:          evt.DepositCents,
		})
	}
}

type timeOffChanged struct {
	CompanyID  string `json:"company_id"`
	EntryID    string `json:"entry_id"`
	EmployeeID string `json:"employee_id"`
	StartTime  string `json:"start_time"`
	EndTime    string `json:"end_time"`
	Status     string `json:"status"`
	Deleted    bool   `json:"deleted"`
}

// NewTimeOffChangedHandler keeps the approved-PTO replica in sync. Deletes
// and non-approved statuses both remove the row; only approved entries block
// availability.
func NewTimeOffChangedHandler(logger *slog.Logger, store timeOffWriter) Handler {
	return func(ctx context.Context, msg kafka.Message) error {
		var evt timeOffChanged
		if err := json.Unmarshal(msg.Value, &evt); err != nil {
			logger.Error("invalid time-off event", "err", err)
			return nil
		}
		if evt.CompanyID == "" || evt.EntryID == "" {
			logger.Error("time-off event missing ids")
			return nil
		}
		if evt.Deleted || evt.Status != "APPROVED" {
			return store.DeleteTimeOff(ctx, evt.CompanyID, evt.EntryID)
		}

		start, err := time.Parse(time.RFC3339, evt.StartTime)
		if err != nil {
			logger.Error("invalid time-off start", "err", err)
			return nil
		}
		end, err := time.Parse(time.RFC3339, evt.EndTime)
		if err != nil {
			logger.Error("invalid time-off end", "err", err)
			return nil
		}
		return store.UpsertTimeOff(ctx, model.TimeOffEntry{
			ID:         evt.EntryID,
			CompanyID:  evt.CompanyID,
			EmployeeID: evt.EmployeeID,
			StartTime:  start,
			EndTime:    end,
			Status:     evt.Status,
		})
	}
}
