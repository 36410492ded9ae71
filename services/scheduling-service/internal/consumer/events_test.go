package consumer

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/trademate-pro/backend/services/scheduling-service/internal/model"
)

type recordingStore struct {
	settings []model.CompanySettings
	upserts  []model.TimeOffEntry
	deletes  []string
}

func (r *recordingStore) UpsertCompanySettings(_ context.Context, s model.CompanySettings) error {
	r.settings = append(r.settings, s)
	return nil
}

func (r *recordingStore) UpsertTimeOff(_ context.Context, e model.TimeOffEntry) error {
	r.upserts = append(r.upserts, e)
	return nil
}

func (r *recordingStore) DeleteTimeOff(_ context.Context, _, entryID string) error {
	r.deletes = append(r.deletes, entryID)
	return nil
}

func discard() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func TestSettingsUpdatedHandler(t *testing.T) {
	store := &recordingStore{}
	h := NewSettingsUpdatedHandler(discard(), store)

	msg := kafka.Message{Value: []byte(`{
		"company_id": "co-1",
		"timezone": "America/Denver",
		"working_days": [1,2,3],
		"day_start_minute": 480,
		"day_end_minute": 1020,
		"slot_step_minutes": 30,
		"buffer_before_minutes": 15,
		"buffer_after_minutes": 15,
		"min_advance_hours": 2,
		"max_advance_days": 14,
		"self_scheduling_enabled": true,
		"deposit_cents": 5000
	}`)}
	if err := h(context.Background(), msg); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(store.settings) != 1 {
		t.Fatalf("expected one upsert, got %d", len(store.settings))
	}
	got := store.settings[0]
	if got.CompanyID != "co-1" || got.Timezone != "America/Denver" || got.DepositCents != 5000 {
		t.Fatalf("payload not applied: %+v", got)
	}
	if !got.SelfSchedulingEnabled || got.MaxAdvanceDays != 14 {
		t.Fatalf("payload not applied: %+v", got)
	}
}

func TestSettingsUpdatedHandler_BadPayloadDropped(t *testing.T) {
	store := &recordingStore{}
	h := NewSettingsUpdatedHandler(discard(), store)

	for _, raw := range []string{`not json`, `{"timezone":"UTC"}`} {
		if err := h(context.Background(), kafka.Message{Value: []byte(raw)}); err != nil {
			t.Fatalf("bad payload must not poison the topic: %v", err)
		}
	}
	if len(store.settings) != 0 {
		t.Fatalf("expected no upserts, got %d", len(store.settings))
	}
}

func TestTimeOffChangedHandler_Approved(t *testing.T) {
	store := &recordingStore{}
	h := NewTimeOffChangedHandler(discard(), store)

	msg := kafka.Message{Value: []byte(`{
		"company_id": "co-1",
		"entry_id": "pto-1",
		"employee_id": "emp-1",
		"start_time": "2026-02-02T00:00:00Z",
		"end_time": "2026-02-06T00:00:00Z",
		"status": "APPROVED"
	}`)}
	if err := h(context.Background(), msg); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(store.upserts) != 1 {
		t.Fatalf("expected one upsert, got %d", len(store.upserts))
	}
	e := store.upserts[0]
	if e.EmployeeID != "emp-1" || !e.StartTime.Equal(time.Date(2026, 2, 2, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("entry not applied: %+v", e)
	}
}

func TestTimeOffChangedHandler_RevokedRemovesRow(t *testing.T) {
	store := &recordingStore{}
	h := NewTimeOffChangedHandler(discard(), store)

	cases := []string{
		`{"company_id":"co-1","entry_id":"pto-1","status":"APPROVED","deleted":true}`,
		`{"company_id":"co-1","entry_id":"pto-2","status":"PENDING"}`,
		`{"company_id":"co-1","entry_id":"pto-3","status":"DENIED"}`,
	}
	for _, raw := range cases {
		if err := h(context.Background(), kafka.Message{Value: []byte(raw)}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if len(store.deletes) != 3 || len(store.upserts) != 0 {
		t.Fatalf("expected 3 deletes, got deletes=%v upserts=%d", store.deletes, len(store.upserts))
	}
}
