package settings

import (
	"context"
	"testing"
	"time"

	"github.com/trademate-pro/backend/services/scheduling-service/internal/model"
)

type fakeStore struct {
	settings model.CompanySettings
	found    bool
	err      error
}

func (f *fakeStore) GetCompanySettings(_ context.Context, _ string) (model.CompanySettings, bool, error) {
	return f.settings, f.found, f.err
}

func TestCacheProvider_Defaults(t *testing.T) {
	p := NewCacheProvider(&fakeStore{}, nil)
	cfg, err := p.SchedulingConfig(context.Background(), "co-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Calendar.DayStartMinute != 7*60+30 || cfg.Calendar.DayEndMinute != 17*60 {
		t.Fatalf("unexpected default hours: %+v", cfg.Calendar)
	}
	if cfg.Calendar.SlotStepMinutes != 15 {
		t.Fatalf("expected 15-minute granularity, got %d", cfg.Calendar.SlotStepMinutes)
	}
	if cfg.Buffer.BeforeMinutes != 30 || cfg.Buffer.AfterMinutes != 30 {
		t.Fatalf("unexpected default buffers: %+v", cfg.Buffer)
	}
	if len(cfg.Calendar.WorkingDays) != 5 {
		t.Fatalf("expected Mon-Fri, got %v", cfg.Calendar.WorkingDays)
	}
	if cfg.SelfSchedulingEnabled {
		t.Fatal("self-scheduling must default to off")
	}
}

func TestCacheProvider_StoredSettings(t *testing.T) {
	store := &fakeStore{
		settings: model.CompanySettings{
			CompanyID:             "co-1",
			Timezone:              "America/Chicago",
			WorkingDays:           []int{2, 4, 9},
			DayStartMinute:        9 * 60,
			DayEndMinute:          18 * 60,
			SlotStepMinutes:       30,
			CapacityHoursPerDay:   8,
			SelfSchedulingEnabled: true,
		},
		found: true,
	}
	cfg, err := NewCacheProvider(store, nil).SchedulingConfig(context.Background(), "co-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Calendar.CapacityMinutesPerDay != 8*60 {
		t.Fatalf("capacity hours not converted: %d", cfg.Calendar.CapacityMinutesPerDay)
	}
	// Day 9 is not a weekday index and must be dropped.
	want := []time.Weekday{time.Tuesday, time.Thursday}
	if len(cfg.Calendar.WorkingDays) != len(want) {
		t.Fatalf("expected %v, got %v", want, cfg.Calendar.WorkingDays)
	}
	for i, d := range want {
		if cfg.Calendar.WorkingDays[i] != d {
			t.Fatalf("expected %v, got %v", want, cfg.Calendar.WorkingDays)
		}
	}
	if cfg.Calendar.Location == nil || cfg.Calendar.Location.String() != "America/Chicago" {
		t.Fatalf("timezone not loaded: %v", cfg.Calendar.Location)
	}
	if !cfg.SelfSchedulingEnabled {
		t.Fatal("self-scheduling flag lost")
	}
}

func TestFromModel_UnknownTimezoneFallsBackToUTC(t *testing.T) {
	cfg := FromModel(model.CompanySettings{CompanyID: "co-1", Timezone: "Mars/Olympus"}, nil)
	if cfg.Calendar.Location != time.UTC {
		t.Fatalf("expected UTC fallback, got %v", cfg.Calendar.Location)
	}
}
