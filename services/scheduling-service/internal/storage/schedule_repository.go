package storage

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/trademate-pro/backend/libs/db"
	"github.com/trademate-pro/backend/services/scheduling-service/internal/availability"
	"github.com/trademate-pro/backend/services/scheduling-service/internal/model"
)

type ScheduleRepository struct {
	pool *db.Pool
}

type IdempotencyRecord struct {
	CompanyID       string
	IdempotencyKey  string
	WorkOrderID     string
	StatusCode      int
	ResponsePayload []byte
}

func NewScheduleRepository(pool *db.Pool) *ScheduleRepository {
	return &ScheduleRepository{pool: pool}
}

func (r *ScheduleRepository) Begin(ctx context.Context) (pgx.Tx, error) {
	return r.pool.Begin(ctx)
}

func (r *ScheduleRepository) LockIdempotencyKey(ctx context.Context, tx pgx.Tx, companyID, key string) (IdempotencyRecord, bool, error) {
	rec, err := r.selectIdempotencyForUpdate(ctx, tx, companyID, key)
	if err == nil {
		return rec, true, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return IdempotencyRecord{}, false, err
	}

	_, err = tx.Exec(ctx, `
		INSERT INTO booking_idempotency_keys (company_id, idempotency_key)
		VALUES ($1, $2)
		ON CONFLICT (company_id, idempotency_key) DO NOTHING
	`, companyID, key)
	if err != nil {
		return IdempotencyRecord{}, false, err
	}

	rec, err = r.selectIdempotencyForUpdate(ctx, tx, companyID, key)
	if err != nil {
		return IdempotencyRecord{}, false, err
	}
	return rec, false, nil
}

func (r *ScheduleRepository) FinalizeIdempotency(ctx context.Context, tx pgx.Tx, companyID, key, workOrderID string, statusCode int, response []byte) error {
	_, err := tx.Exec(ctx, `
		UPDATE booking_idempotency_keys
		SET work_order_id = $3,
			status_code = $4,
			response_payload = $5,
			updated_at = now()
		WHERE company_id = $1 AND idempotency_key = $2
	`, companyID, key, workOrderID, statusCode, response)
	return err
}

func (r *ScheduleRepository) CreateWorkOrder(ctx context.Context, tx pgx.Tx, wo *model.WorkOrder) (string, error) {
	var id string
	err := tx.QueryRow(ctx, `
		INSERT INTO work_orders
			(company_id, employee_id, customer_name, customer_email, customer_phone,
			 job_type, description, start_time, end_time, status, deposit_cents, payment_ref, portal_key_hash)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING id
	`, wo.CompanyID, wo.EmployeeID, wo.CustomerName, wo.CustomerEmail, wo.CustomerPhone,
		wo.JobType, wo.Description, wo.StartTime, wo.EndTime, wo.Status, wo.DepositCents, wo.PaymentRef, wo.PortalKeyHash).Scan(&id)
	if err != nil {
		return "", err
	}
	return id, nil
}

func (r *ScheduleRepository) GetWorkOrderForUpdate(ctx context.Context, tx pgx.Tx, companyID, workOrderID string) (model.WorkOrder, error) {
	var wo model.WorkOrder
	var cancelledAt *time.Time
	err := tx.QueryRow(ctx, `
		SELECT id, company_id, employee_id, customer_name, customer_email, customer_phone,
			job_type, COALESCE(description, ''), start_time, end_time, status,
			deposit_cents, COALESCE(payment_ref, ''), cancelled_at, COALESCE(cancellation_reason, ''), created_at
		FROM work_orders
		WHERE id = $1 AND company_id = $2
		FOR UPDATE
	`, workOrderID, companyID).Scan(
		&wo.ID,
		&wo.CompanyID,
		&wo.EmployeeID,
		&wo.CustomerName,
		&wo.CustomerEmail,
		&wo.CustomerPhone,
		&wo.JobType,
		&wo.Description,
		&wo.StartTime,
		&wo.EndTime,
		&wo.Status,
		&wo.DepositCents,
		&wo.PaymentRef,
		&cancelledAt,
		&wo.CancelReason,
		&wo.CreatedAt,
	)
	if err != nil {
		return model.WorkOrder{}, err
	}
	wo.CancelledAt = cancelledAt
	return wo, nil
}

func (r *ScheduleRepository) CancelWorkOrder(ctx context.Context, tx pgx.Tx, companyID, workOrderID, reason string) (time.Time, error) {
	var cancelledAt time.Time
	err := tx.QueryRow(ctx, `
		UPDATE work_orders
		SET status = 'cancelled',
			cancelled_at = now(),
			cancellation_reason = $3
		WHERE id = $1 AND company_id = $2
		RETURNING cancelled_at
	`, workOrderID, companyID, reason).Scan(&cancelledAt)
	return cancelledAt, err
}

func (r *ScheduleRepository) ListWorkOrders(ctx context.Context, companyID string, limit int) ([]model.WorkOrder, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := r.pool.Query(ctx, `
		SELECT id, company_id, employee_id, customer_name, customer_email, customer_phone,
			job_type, COALESCE(description, ''), start_time, end_time, status,
			deposit_cents, COALESCE(payment_ref, ''), cancelled_at, COALESCE(cancellation_reason, ''), created_at
		FROM work_orders
		WHERE company_id = $1
		ORDER BY start_time DESC
		LIMIT $2
	`, companyID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []model.WorkOrder
	for rows.Next() {
		var wo model.WorkOrder
		var cancelledAt *time.Time
		if err := rows.Scan(
			&wo.ID,
			&wo.CompanyID,
			&wo.EmployeeID,
			&wo.CustomerName,
			&wo.CustomerEmail,
			&wo.CustomerPhone,
			&wo.JobType,
			&wo.Description,
			&wo.StartTime,
			&wo.EndTime,
			&wo.Status,
			&wo.DepositCents,
			&wo.PaymentRef,
			&cancelledAt,
			&wo.CancelReason,
			&wo.CreatedAt,
		); err != nil {
			return nil, err
		}
		wo.CancelledAt = cancelledAt
		orders = append(orders, wo)
	}
	if rows.Err() != nil {
		return nil, rows.Err()
	}
	return orders, nil
}

func (r *ScheduleRepository) CreateScheduleEvent(ctx context.Context, ev *model.ScheduleEvent) (string, error) {
	var id string
	err := r.pool.QueryRow(ctx, `
		INSERT INTO schedule_events (company_id, employee_id, title, event_type, start_time, end_time)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`, ev.CompanyID, ev.EmployeeID, ev.Title, ev.EventType, ev.StartTime, ev.EndTime).Scan(&id)
	if err != nil {
		return "", err
	}
	return id, nil
}

func (r *ScheduleRepository) ListScheduleEvents(ctx context.Context, companyID string, start, end time.Time) ([]model.ScheduleEvent, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, company_id, employee_id, title, COALESCE(event_type, ''), start_time, end_time, created_at
		FROM schedule_events
		WHERE company_id = $1
			AND start_time < $3
			AND end_time > $2
		ORDER BY start_time ASC
	`, companyID, start, end)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []model.ScheduleEvent
	for rows.Next() {
		var ev model.ScheduleEvent
		if err := rows.Scan(&ev.ID, &ev.CompanyID, &ev.EmployeeID, &ev.Title, &ev.EventType, &ev.StartTime, &ev.EndTime, &ev.CreatedAt); err != nil {
			return nil, err
		}
		events = append(events, ev)
	}
	if rows.Err() != nil {
		return nil, rows.Err()
	}
	return events, nil
}

// OccupiedIntervals gathers everything that blocks a technician's calendar in
// [start, end): open work orders, internal schedule events, and approved PTO
// from the replicated time-off cache. Keyed by employee id.
func (r *ScheduleRepository) OccupiedIntervals(ctx context.Context, companyID string, start, end time.Time) (map[string][]availability.Interval, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT employee_id::text, start_time, end_time
		FROM work_orders
		WHERE company_id = $1
			AND status IN ('scheduled', 'in_progress')
			AND start_time < $3
			AND end_time > $2
		UNION ALL
		SELECT employee_id::text, start_time, end_time
		FROM schedule_events
		WHERE company_id = $1
			AND start_time < $3
			AND end_time > $2
		UNION ALL
		SELECT employee_id::text, start_time, end_time
		FROM employee_time_off_cache
		WHERE company_id = $1
			AND status = 'APPROVED'
			AND start_time < $3
			AND end_time > $2
	`, companyID, start, end)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	occupancy := make(map[string][]availability.Interval)
	for rows.Next() {
		var employeeID string
		var iv availability.Interval
		if err := rows.Scan(&employeeID, &iv.Start, &iv.End); err != nil {
			return nil, err
		}
		occupancy[employeeID] = append(occupancy[employeeID], iv)
	}
	if rows.Err() != nil {
		return nil, rows.Err()
	}
	return occupancy, nil
}

func IsConflict(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23P01"
}

func IsNotFound(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}

func (r *ScheduleRepository) selectIdempotencyForUpdate(ctx context.Context, tx pgx.Tx, companyID, key string) (IdempotencyRecord, error) {
	var rec IdempotencyRecord
	var responseText string
	err := tx.QueryRow(ctx, `
		SELECT company_id::text,
			idempotency_key,
			COALESCE(work_order_id::text, ''),
			COALESCE(status_code, 0),
			COALESCE(response_payload::text, '')
		FROM booking_idempotency_keys
		WHERE company_id = $1 AND idempotency_key = $2
		FOR UPDATE
	`, companyID, key).Scan(
		&rec.CompanyID,
		&rec.IdempotencyKey,
		&rec.WorkOrderID,
		&rec.StatusCode,
		&responseText,
	)
	if err != nil {
		return IdempotencyRecord{}, err
	}
	if responseText != "" {
		rec.ResponsePayload = []byte(responseText)
	}
	return rec, nil
}
