package storage

import (
	"context"

	"github.com/trademate-pro/backend/libs/db"
	"github.com/trademate-pro/backend/services/scheduling-service/internal/model"
)

// SettingsRepository maintains the local replicas fed by company-service
// events: the scheduling configuration cache and the approved-PTO cache.
type SettingsRepository struct {
	pool *db.Pool
}

func NewSettingsRepository(pool *db.Pool) *SettingsRepository {
	return &SettingsRepository{pool: pool}
}

func (r *SettingsRepository) UpsertCompanySettings(ctx context.Context, s model.CompanySettings) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO company_settings_cache
			(company_id, timezone, working_days, day_start_minute, day_end_minute,
			 slot_step_minutes, buffer_before_minutes, buffer_after_minutes,
			 min_advance_hours, max_advance_days, capacity_hours_per_day,
			 self_scheduling_enabled, auto_approve_selections, deposit_cents)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		ON CONFLICT (company_id)
		DO UPDATE SET timezone = EXCLUDED.timezone,
		              working_days = EXCLUDED.working_days,
		              day_start_minute = EXCLUDED.day_start_minute,
		              day_end_minute = EXCLUDED.day_end_minute,
		              slot_step_minutes = EXCLUDED.slot_step_minutes,
		              buffer_before_minutes = EXCLUDED.buffer_before_minutes,
		              buffer_after_minutes = EXCLUDED.buffer_after_minutes,
		              min_advance_hours = EXCLUDED.min_advance_hours,
		              max_advance_days = EXCLUDED.max_advance_days,
		              capacity_hours_per_day = EXCLUDED.capacity_hours_per_day,
		              self_scheduling_enabled = EXCLUDED.self_scheduling_enabled,
		              auto_approve_selections = EXCLUDED.auto_approve_selections,
		              deposit_cents = EXCLUDED.deposit_cents,
		              updated_at = now()
	`, s.CompanyID, s.Timezone, s.WorkingDays, s.DayStartMinute, s.DayEndMinute,
		s.SlotStepMinutes, s.BufferBeforeMinutes, s.BufferAfterMinutes,
		s.MinAdvanceHours, s.MaxAdvanceDays, s.CapacityHoursPerDay,
		s.SelfSchedulingEnabled, s.AutoApproveSelections, s.DepositCents)
	return err
}

func (r *SettingsRepository) GetCompanySettings(ctx context.Context, companyID string) (model.CompanySettings, bool, error) {
	var s model.CompanySettings
	err := r.pool.QueryRow(ctx, `
		SELECT company_id::text, timezone, working_days, day_start_minute, day_end_minute,
			slot_step_minutes, buffer_before_minutes, buffer_after_minutes,
			min_advance_hours, max_advance_days, capacity_hours_per_day,
			self_scheduling_enabled, auto_approve_selections, deposit_cents, updated_at
		FROM company_settings_cache
		WHERE company_id = $1
	`, companyID).Scan(
		&s.CompanyID,
		&s.Timezone,
		&s.WorkingDays,
		&s.DayStartMinute,
		&s.DayEndMinute,
		&s.SlotStepMinutes,
		&s.BufferBeforeMinutes,
		&s.BufferAfterMinutes,
		&s.MinAdvanceHours,
		&s.MaxAdvanceDays,
		&s.CapacityHoursPerDay,
		&s.SelfSchedulingEnabled,
		&s.AutoApproveSelections,
		&s.DepositCents,
		&s.UpdatedAt,
	)
	if err != nil {
		if IsNotFound(err) {
			return model.CompanySettings{}, false, nil
		}
		return model.CompanySettings{}, false, err
	}
	return s, true, nil
}

func (r *SettingsRepository) UpsertTimeOff(ctx context.Context, entry model.TimeOffEntry) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO employee_time_off_cache (id, company_id, employee_id, start_time, end_time, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (id)
		DO UPDATE SET start_time = EXCLUDED.start_time,
		              end_time = EXCLUDED.end_time,
		              status = EXCLUDED.status,
		              updated_at = now()
	`, entry.ID, entry.CompanyID, entry.EmployeeID, entry.StartTime, entry.EndTime, entry.Status)
	return err
}

func (r *SettingsRepository) DeleteTimeOff(ctx context.Context, companyID, entryID string) error {
	_, err := r.pool.Exec(ctx, `
		DELETE FROM employee_time_off_cache
		WHERE id = $1 AND company_id = $2
	`, entryID, companyID)
	return err
}
