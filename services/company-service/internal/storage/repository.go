package storage

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/trademate-pro/backend/libs/db"
)

type Repository struct {
	pool *db.Pool
}

func NewRepository(pool *db.Pool) *Repository {
	return &Repository{pool: pool}
}

func (r *Repository) Begin(ctx context.Context) (pgx.Tx, error) {
	return r.pool.Begin(ctx)
}

func IsNotFound(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}

type CompanySettings struct {
	CompanyID             string
	Timezone              string
	WorkingDays           []int
	DayStartMinute        int
	DayEndMinute          int
	SlotStepMinutes       int
	BufferBeforeMinutes   int
	BufferAfterMinutes    int
	MinAdvanceHours       int
	MaxAdvanceDays        int
	CapacityHoursPerDay   int
	SelfSchedulingEnabled bool
	AutoApproveSelections bool
	DepositCents          int64
	UpdatedAt             time.Time
}

// GetOrCreateSettings creates the onboarding defaults on first read so a
// fresh company is schedulable before anyone touches the settings page.
func (r *Repository) GetOrCreateSettings(ctx context.Context, companyID string) (CompanySettings, error) {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO company_settings (company_id)
		VALUES ($1)
		ON CONFLICT (company_id) DO NOTHING
	`, companyID)
	if err != nil {
		return CompanySettings{}, err
	}

	var s CompanySettings
	err = r.pool.QueryRow(ctx, `
		SELECT company_id::text, timezone, working_days, day_start_minute, day_end_minute,
			slot_step_minutes, buffer_before_minutes, buffer_after_minutes,
			min_advance_hours, max_advance_days, capacity_hours_per_day,
			self_scheduling_enabled, auto_approve_selections, deposit_cents, updated_at
		FROM company_settings
		WHERE company_id = $1
	`, companyID).Scan(
		&s.CompanyID, &s.Timezone, &s.WorkingDays, &s.DayStartMinute, &s.DayEndMinute,
		&s.SlotStepMinutes, &s.BufferBeforeMinutes, &s.BufferAfterMinutes,
		&s.MinAdvanceHours, &s.MaxAdvanceDays, &s.CapacityHoursPerDay,
		&s.SelfSchedulingEnabled, &s.AutoApproveSelections, &s.DepositCents, &s.UpdatedAt,
	)
	return s, err
}

func (r *Repository) UpdateSettings(ctx context.Context, tx pgx.Tx, s CompanySettings) error {
	_, err := tx.Exec(ctx, `
		INSERT INTO company_settings
			(company_id, timezone, working_days, day_start_minute, day_end_minute,
			 slot_step_minutes, buffer_before_minutes, buffer_after_minutes,
			 min_advance_hours, max_advance_days, capacity_hours_per_day,
			 self_scheduling_enabled, auto_approve_selections, deposit_cents)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		ON CONFLICT (company_id) DO UPDATE
		SET timezone = EXCLUDED.timezone,
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

type Employee struct {
	ID        string
	CompanyID string
	Name      string
	Trade     string
	IsActive  bool
	CreatedAt time.Time
}

func (r *Repository) CreateEmployee(ctx context.Context, companyID, name, trade string) (string, error) {
	id := uuid.NewString()
	_, err := r.pool.Exec(ctx, `
		INSERT INTO employees (id, company_id, name, trade, is_active)
		VALUES ($1, $2, $3, $4, true)
	`, id, companyID, name, trade)
	if err != nil {
		return "", err
	}
	return id, nil
}

func (r *Repository) ListEmployees(ctx context.Context, companyID string, limit int) ([]Employee, error) {
	if limit <= 0 {
		limit = 100
	}
	rows, err := r.pool.Query(ctx, `
		SELECT id::text, company_id::text, name, COALESCE(trade, ''), is_active, created_at
		FROM employees
		WHERE company_id = $1
		ORDER BY created_at DESC
		LIMIT $2
	`, companyID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Employee
	for rows.Next() {
		var e Employee
		if err := rows.Scan(&e.ID, &e.CompanyID, &e.Name, &e.Trade, &e.IsActive, &e.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	if rows.Err() != nil {
		return nil, rows.Err()
	}
	return out, nil
}

func (r *Repository) DeactivateEmployee(ctx context.Context, companyID, employeeID string) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE employees
		SET is_active = false, updated_at = now()
		WHERE id = $1 AND company_id = $2
	`, employeeID, companyID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

type TimeOff struct {
	ID         string
	CompanyID  string
	EmployeeID string
	StartTime  time.Time
	EndTime    time.Time
	Status     string
	Reason     string
	CreatedAt  time.Time
}

func (r *Repository) CreateTimeOff(ctx context.Context, tx pgx.Tx, t TimeOff) (string, error) {
	id := uuid.NewString()
	_, err := tx.Exec(ctx, `
		INSERT INTO employee_time_off (id, company_id, employee_id, start_time, end_time, status, reason)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, id, t.CompanyID, t.EmployeeID, t.StartTime, t.EndTime, t.Status, t.Reason)
	if err != nil {
		return "", err
	}
	return id, nil
}

func (r *Repository) GetTimeOffForUpdate(ctx context.Context, tx pgx.Tx, companyID, entryID string) (TimeOff, error) {
	var t TimeOff
	err := tx.QueryRow(ctx, `
		SELECT id::text, company_id::text, employee_id::text, start_time, end_time, status, COALESCE(reason, ''), created_at
		FROM employee_time_off
		WHERE id = $1 AND company_id = $2
		FOR UPDATE
	`, entryID, companyID).Scan(&t.ID, &t.CompanyID, &t.EmployeeID, &t.StartTime, &t.EndTime, &t.Status, &t.Reason, &t.CreatedAt)
	return t, err
}

func (r *Repository) SetTimeOffStatus(ctx context.Context, tx pgx.Tx, companyID, entryID, status string) error {
	tag, err := tx.Exec(ctx, `
		UPDATE employee_time_off
		SET status = $3, updated_at = now()
		WHERE id = $1 AND company_id = $2
	`, entryID, companyID, status)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *Repository) DeleteTimeOff(ctx context.Context, tx pgx.Tx, companyID, entryID string) error {
	tag, err := tx.Exec(ctx, `
		DELETE FROM employee_time_off
		WHERE id = $1 AND company_id = $2
	`, entryID, companyID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *Repository) ListTimeOff(ctx context.Context, companyID string, start, end time.Time) ([]TimeOff, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id::text, company_id::text, employee_id::text, start_time, end_time, status, COALESCE(reason, ''), created_at
		FROM employee_time_off
		WHERE company_id = $1
			AND start_time < $3
			AND end_time > $2
		ORDER BY start_time ASC
	`, companyID, start, end)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []TimeOff
	for rows.Next() {
		var t TimeOff
		if err := rows.Scan(&t.ID, &t.CompanyID, &t.EmployeeID, &t.StartTime, &t.EndTime, &t.Status, &t.Reason, &t.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	if rows.Err() != nil {
		return nil, rows.Err()
	}
	return out, nil
}
