package settings

import (
	"context"
	"log/slog"
	"time"

	"github.com/trademate-pro/backend/services/scheduling-service/internal/availability"
	"github.com/trademate-pro/backend/services/scheduling-service/internal/model"
)

// SchedulingConfig is everything the slot engine and the booking flow need
// to know about one company.
type SchedulingConfig struct {
	Calendar              availability.BusinessCalendar
	Buffer                availability.BufferPolicy
	Timezone              string
	SelfSchedulingEnabled bool
	AutoApproveSelections bool
	DepositCents          int64
}

type Provider interface {
	SchedulingConfig(ctx context.Context, companyID string) (SchedulingConfig, error)
}

// Defaults applied when a company has never published settings. They match
// the onboarding values: 07:30-17:00, Monday through Friday, 15-minute
// granularity, 30-minute buffers, 1 hour lead time, 30-day horizon.
func DefaultSettings(companyID string) model.CompanySettings {
	return model.CompanySettings{
		CompanyID:           companyID,
		Timezone:            "UTC",
		WorkingDays:         []int{1, 2, 3, 4, 5},
		DayStartMinute:      7*60 + 30,
		DayEndMinute:        17 * 60,
		SlotStepMinutes:     15,
		BufferBeforeMinutes: 30,
		BufferAfterMinutes:  30,
		MinAdvanceHours:     1,
		MaxAdvanceDays:      30,
	}
}

type SettingsStore interface {
	GetCompanySettings(ctx context.Context, companyID string) (model.CompanySettings, bool, error)
}

// cacheProvider reads the locally replicated settings row and falls back to
// defaults when the company has not been seen yet.
type cacheProvider struct {
	store  SettingsStore
	logger *slog.Logger
}

func NewCacheProvider(store SettingsStore, logger *slog.Logger) Provider {
	return &cacheProvider{store: store, logger: logger}
}

func (p *cacheProvider) SchedulingConfig(ctx context.Context, companyID string) (SchedulingConfig, error) {
	s, found, err := p.store.GetCompanySettings(ctx, companyID)
	if err != nil {
		return SchedulingConfig{}, err
	}
	if !found {
		s = DefaultSettings(companyID)
	}
	return FromModel(s, p.logger), nil
}

// FromModel translates a cached settings row into the engine's calendar
// terms. An unknown timezone name degrades to UTC rather than failing the
// request.
func FromModel(s model.CompanySettings, logger *slog.Logger) SchedulingConfig {
	loc, err := time.LoadLocation(s.Timezone)
	if err != nil {
		if logger != nil {
			logger.Warn("unknown company timezone, using UTC", "company_id", s.CompanyID, "timezone", s.Timezone)
		}
		loc = time.UTC
	}

	days := make([]time.Weekday, 0, len(s.WorkingDays))
	for _, d := range s.WorkingDays {
		if d >= 0 && d <= 6 {
			days = append(days, time.Weekday(d))
		}
	}

	return SchedulingConfig{
		Calendar: availability.BusinessCalendar{
			WorkingDays:           days,
			DayStartMinute:        s.DayStartMinute,
			DayEndMinute:          s.DayEndMinute,
			SlotStepMinutes:       s.SlotStepMinutes,
			MinAdvanceHours:       s.MinAdvanceHours,
			MaxAdvanceDays:        s.MaxAdvanceDays,
			CapacityMinutesPerDay: s.CapacityHoursPerDay * 60,
			Location:              loc,
		},
		Buffer: availability.BufferPolicy{
			BeforeMinutes: s.BufferBeforeMinutes,
			AfterMinutes:  s.BufferAfterMinutes,
		},
		Timezone:              s.Timezone,
		SelfSchedulingEnabled: s.SelfSchedulingEnabled,
		AutoApproveSelections: s.AutoApproveSelections,
		DepositCents:          s.DepositCents,
	}
}
