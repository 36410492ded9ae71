package availability

import (
	"reflect"
	"testing"
	"time"
)

// Week of 2026-01-26: Monday. All scenario tests book against Tuesday the 27th.
var (
	monday  = time.Date(2026, 1, 26, 0, 0, 0, 0, time.UTC)
	tuesday = time.Date(2026, 1, 27, 0, 0, 0, 0, time.UTC)
)

func weekdayCalendar() BusinessCalendar {
	return BusinessCalendar{
		WorkingDays:     []time.Weekday{time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday},
		DayStartMinute:  8 * 60,
		DayEndMinute:    17 * 60,
		SlotStepMinutes: 30,
		MinAdvanceHours: 0,
		MaxAdvanceDays:  30,
	}
}

func singleTuesdayRequest(durationMins int) SlotRequest {
	return SlotRequest{
		Calendar:        weekdayCalendar(),
		EmployeeIDs:     []string{"emp-1"},
		DurationMinutes: durationMins,
		RangeStart:      tuesday,
		RangeEnd:        tuesday,
	}
}

func at(day time.Time, hour, min int) time.Time {
	return day.Add(time.Duration(hour)*time.Hour + time.Duration(min)*time.Minute)
}

func starts(slots []Slot) []time.Time {
	out := make([]time.Time, len(slots))
	for i, s := range slots {
		out[i] = s.Start
	}
	return out
}

func containsStart(slots []Slot, start time.Time) bool {
	for _, s := range slots {
		if s.Start.Equal(start) {
			return true
		}
	}
	return false
}

func TestGenerateSlots_OpenDay(t *testing.T) {
	now := at(monday, 7, 0)
	slots := GenerateSlots(singleTuesdayRequest(60), nil, now)

	// 08:00 through 16:00 at 30-minute steps; 16:30 would end past 17:00.
	if len(slots) != 17 {
		t.Fatalf("expected 17 slots, got %d: %v", len(slots), starts(slots))
	}
	if !slots[0].Start.Equal(at(tuesday, 8, 0)) {
		t.Fatalf("expected first slot 08:00, got %s", slots[0].Start)
	}
	if !slots[16].Start.Equal(at(tuesday, 16, 0)) {
		t.Fatalf("expected last slot 16:00, got %s", slots[16].Start)
	}
	for _, s := range slots {
		if !s.End.Equal(s.Start.Add(60 * time.Minute)) {
			t.Fatalf("slot end mismatch: %+v", s)
		}
		if s.EmployeeID != "emp-1" {
			t.Fatalf("unexpected employee: %+v", s)
		}
	}
}

func TestGenerateSlots_BookingExcludesOverlappingStarts(t *testing.T) {
	now := at(monday, 7, 0)
	occ := map[string][]Interval{
		"emp-1": {{Start: at(tuesday, 10, 0), End: at(tuesday, 11, 0)}},
	}
	slots := GenerateSlots(singleTuesdayRequest(60), occ, now)

	if len(slots) != 14 {
		t.Fatalf("expected 14 slots, got %d: %v", len(slots), starts(slots))
	}
	for _, excluded := range []time.Time{at(tuesday, 9, 30), at(tuesday, 10, 0), at(tuesday, 10, 30)} {
		if containsStart(slots, excluded) {
			t.Fatalf("start %s should be blocked by the 10:00-11:00 booking", excluded)
		}
	}
	// Half-open semantics: a 60-minute job starting 09:00 ends exactly at
	// the booking's start and does not conflict; 11:00 starts exactly at its end.
	for _, allowed := range []time.Time{at(tuesday, 9, 0), at(tuesday, 11, 0)} {
		if !containsStart(slots, allowed) {
			t.Fatalf("start %s should be open with zero buffer", allowed)
		}
	}
}

func TestGenerateSlots_BufferWidensExclusionZone(t *testing.T) {
	now := at(monday, 7, 0)
	occ := map[string][]Interval{
		"emp-1": {{Start: at(tuesday, 10, 0), End: at(tuesday, 11, 0)}},
	}
	req := singleTuesdayRequest(60)
	req.Buffer = BufferPolicy{BeforeMinutes: 15, AfterMinutes: 15}
	slots := GenerateSlots(req, occ, now)

	// Expanded block is [09:45, 11:15): 09:00 and 11:00 are now blocked too.
	if len(slots) != 12 {
		t.Fatalf("expected 12 slots, got %d: %v", len(slots), starts(slots))
	}
	for _, excluded := range []time.Time{at(tuesday, 9, 0), at(tuesday, 9, 30), at(tuesday, 10, 0), at(tuesday, 10, 30), at(tuesday, 11, 0)} {
		if containsStart(slots, excluded) {
			t.Fatalf("start %s should be blocked by the buffered booking", excluded)
		}
	}
	if !containsStart(slots, at(tuesday, 8, 30)) || !containsStart(slots, at(tuesday, 11, 30)) {
		t.Fatalf("buffer should widen exclusion by exactly one step each side, got %v", starts(slots))
	}
}

func TestGenerateSlots_MaxAdvanceCollapsesRange(t *testing.T) {
	req := singleTuesdayRequest(60)
	req.Calendar.MaxAdvanceDays = 0
	req.RangeEnd = tuesday.AddDate(0, 0, 30)

	// "Today" is Monday; the range starts Tuesday, so zero days survive.
	now := at(monday, 9, 0)
	if got := GenerateSlots(req, nil, now); len(got) != 0 {
		t.Fatalf("expected empty result, got %v", starts(got))
	}
}

func TestGenerateSlots_MinAdvanceExcludesEarlyStarts(t *testing.T) {
	req := singleTuesdayRequest(60)
	req.Calendar.MinAdvanceHours = 3

	// 09:30 Tuesday + 3h: nothing before 12:30 may be offered.
	now := at(tuesday, 9, 30)
	slots := GenerateSlots(req, nil, now)
	if len(slots) == 0 {
		t.Fatal("expected afternoon slots")
	}
	if !slots[0].Start.Equal(at(tuesday, 12, 30)) {
		t.Fatalf("expected first slot 12:30, got %s", slots[0].Start)
	}
}

func TestGenerateSlots_FirstEligibleEmployeeWins(t *testing.T) {
	now := at(monday, 7, 0)
	req := singleTuesdayRequest(60)
	req.EmployeeIDs = []string{"emp-1", "emp-2"}
	occ := map[string][]Interval{
		"emp-1": {{Start: at(tuesday, 10, 0), End: at(tuesday, 11, 0)}},
	}

	slots := GenerateSlots(req, occ, now)
	if len(slots) != 17 {
		t.Fatalf("expected full day via fallback employee, got %d", len(slots))
	}
	for _, s := range slots {
		overlapsBooking := s.Start.Before(at(tuesday, 11, 0)) && at(tuesday, 10, 0).Before(s.End)
		want := "emp-1"
		if overlapsBooking {
			want = "emp-2"
		}
		if s.EmployeeID != want {
			t.Fatalf("slot %s assigned to %s, want %s", s.Start, s.EmployeeID, want)
		}
	}
}

func TestGenerateSlots_DayFullyConsumed(t *testing.T) {
	now := at(monday, 7, 0)
	req := singleTuesdayRequest(60)
	req.RangeEnd = tuesday.AddDate(0, 0, 1) // Tuesday + Wednesday
	occ := map[string][]Interval{
		"emp-1": {{Start: at(tuesday, 0, 0), End: at(tuesday, 23, 59)}},
	}

	slots := GenerateSlots(req, occ, now)
	if len(slots) != 17 {
		t.Fatalf("expected Wednesday's 17 slots, got %d", len(slots))
	}
	for _, s := range slots {
		if s.Start.Before(tuesday.AddDate(0, 0, 1)) {
			t.Fatalf("slot on consumed day: %s", s.Start)
		}
	}
}

func TestGenerateSlots_SkipsNonWorkingDays(t *testing.T) {
	now := at(monday, 7, 0)
	req := singleTuesdayRequest(60)
	req.RangeStart = monday
	req.RangeEnd = monday.AddDate(0, 0, 6) // Mon..Sun

	slots := GenerateSlots(req, nil, now)
	if len(slots) != 5*17 {
		t.Fatalf("expected 85 slots over Mon-Fri, got %d", len(slots))
	}
	for _, s := range slots {
		if wd := s.Start.Weekday(); wd == time.Saturday || wd == time.Sunday {
			t.Fatalf("slot on weekend: %s", s.Start)
		}
	}
}

func TestGenerateSlots_InvalidInputsYieldEmpty(t *testing.T) {
	now := at(monday, 7, 0)

	cases := map[string]SlotRequest{
		"no employees": func() SlotRequest {
			r := singleTuesdayRequest(60)
			r.EmployeeIDs = nil
			return r
		}(),
		"zero duration": singleTuesdayRequest(0),
		"negative duration": singleTuesdayRequest(-30),
		"zero step": func() SlotRequest {
			r := singleTuesdayRequest(60)
			r.Calendar.SlotStepMinutes = 0
			return r
		}(),
		"inverted range": func() SlotRequest {
			r := singleTuesdayRequest(60)
			r.RangeStart = tuesday
			r.RangeEnd = monday
			return r
		}(),
		"degenerate day window": func() SlotRequest {
			r := singleTuesdayRequest(60)
			r.Calendar.DayStartMinute = 17 * 60
			r.Calendar.DayEndMinute = 8 * 60
			return r
		}(),
		"duration exceeds day": singleTuesdayRequest(10 * 60),
	}
	for name, req := range cases {
		if got := GenerateSlots(req, nil, now); len(got) != 0 {
			t.Fatalf("%s: expected empty result, got %d slots", name, len(got))
		}
	}
}

func TestGenerateSlots_Deterministic(t *testing.T) {
	now := at(monday, 7, 0)
	req := singleTuesdayRequest(60)
	req.EmployeeIDs = []string{"emp-1", "emp-2"}
	occ := map[string][]Interval{
		"emp-1": {
			{Start: at(tuesday, 13, 0), End: at(tuesday, 14, 30)},
			{Start: at(tuesday, 9, 0), End: at(tuesday, 10, 0)},
		},
		"emp-2": {{Start: at(tuesday, 8, 0), End: at(tuesday, 12, 0)}},
	}

	a := GenerateSlots(req, occ, now)
	b := GenerateSlots(req, occ, now)
	if !reflect.DeepEqual(a, b) {
		t.Fatal("identical inputs must produce identical output")
	}
}

func TestGenerateSlots_MonotonicDuration(t *testing.T) {
	now := at(monday, 7, 0)
	occ := map[string][]Interval{
		"emp-1": {
			{Start: at(tuesday, 9, 0), End: at(tuesday, 9, 45)},
			{Start: at(tuesday, 14, 0), End: at(tuesday, 15, 0)},
		},
	}

	prev := -1
	for _, dur := range []int{30, 60, 90, 120, 240} {
		n := len(GenerateSlots(singleTuesdayRequest(dur), occ, now))
		if prev >= 0 && n > prev {
			t.Fatalf("slot count grew from %d to %d when duration increased to %d", prev, n, dur)
		}
		prev = n
	}
}

func TestGenerateSlots_InvariantsHold(t *testing.T) {
	now := at(monday, 7, 0)
	req := singleTuesdayRequest(90)
	req.Buffer = BufferPolicy{BeforeMinutes: 30, AfterMinutes: 30}
	req.RangeStart = monday
	req.RangeEnd = monday.AddDate(0, 0, 4)
	req.Calendar.MinAdvanceHours = 24
	occ := map[string][]Interval{
		"emp-1": {
			{Start: at(tuesday, 10, 0), End: at(tuesday, 12, 0)},
			{Start: at(monday.AddDate(0, 0, 3), 8, 0), End: at(monday.AddDate(0, 0, 3), 13, 0)},
		},
	}

	slots := GenerateSlots(req, occ, now)
	if len(slots) == 0 {
		t.Fatal("expected some availability")
	}

	earliest := now.Add(24 * time.Hour)
	for i, s := range slots {
		if s.Start.Before(earliest) {
			t.Fatalf("slot %s violates min advance window", s.Start)
		}
		if s.Start.Before(req.RangeStart) || s.End.After(req.RangeEnd.AddDate(0, 0, 1)) {
			t.Fatalf("slot %s outside requested range", s.Start)
		}
		day := dayOf(s.Start, time.UTC)
		if s.Start.Before(at(day, 8, 0)) || s.End.After(at(day, 17, 0)) {
			t.Fatalf("slot %s outside business hours", s.Start)
		}
		for _, iv := range occ[s.EmployeeID] {
			blockedStart := iv.Start.Add(-30 * time.Minute)
			blockedEnd := iv.End.Add(30 * time.Minute)
			if s.Start.Before(blockedEnd) && blockedStart.Before(s.End) {
				t.Fatalf("slot %s intersects buffered occupancy %v", s.Start, iv)
			}
		}
		if i > 0 && slots[i-1].Start.After(s.Start) {
			t.Fatalf("slots out of order at index %d", i)
		}
	}
}

func TestGenerateSlots_CompanyTimezone(t *testing.T) {
	pst := time.FixedZone("PST", -8*3600)
	req := SlotRequest{
		Calendar: BusinessCalendar{
			WorkingDays:     []time.Weekday{time.Tuesday},
			DayStartMinute:  9 * 60,
			DayEndMinute:    12 * 60,
			SlotStepMinutes: 60,
			MaxAdvanceDays:  30,
			Location:        pst,
		},
		EmployeeIDs:     []string{"emp-1"},
		DurationMinutes: 60,
		RangeStart:      time.Date(2026, 1, 27, 0, 0, 0, 0, pst),
		RangeEnd:        time.Date(2026, 1, 27, 0, 0, 0, 0, pst),
	}

	// Range boundaries arrive in UTC; days must still be cut in company time.
	req.RangeStart = req.RangeStart.UTC()
	req.RangeEnd = req.RangeEnd.UTC()

	now := time.Date(2026, 1, 26, 12, 0, 0, 0, time.UTC)
	slots := GenerateSlots(req, nil, now)
	if len(slots) != 3 {
		t.Fatalf("expected 3 slots, got %d: %v", len(slots), starts(slots))
	}
	want := time.Date(2026, 1, 27, 9, 0, 0, 0, pst)
	if !slots[0].Start.Equal(want) {
		t.Fatalf("expected first slot %s, got %s", want, slots[0].Start)
	}
}

func TestGenerateSlots_CapacityGuard(t *testing.T) {
	now := at(monday, 7, 0)
	req := singleTuesdayRequest(120)
	req.Calendar.CapacityMinutesPerDay = 8 * 60
	occ := map[string][]Interval{
		"emp-1": {{Start: at(tuesday, 8, 0), End: at(tuesday, 15, 0)}}, // 7h booked
	}

	// 7h booked + 2h job exceeds the 8h cap even though 15:00-17:00 is free.
	if got := GenerateSlots(req, occ, now); len(got) != 0 {
		t.Fatalf("expected capacity guard to suppress slots, got %v", starts(got))
	}

	// A 1h job still fits both the cap and the open tail of the day.
	req.DurationMinutes = 60
	slots := GenerateSlots(req, occ, now)
	if len(slots) != 3 {
		t.Fatalf("expected 3 slots (15:00, 15:30, 16:00), got %v", starts(slots))
	}
}

func TestMergeIntervals(t *testing.T) {
	in := []Interval{
		{Start: at(tuesday, 13, 0), End: at(tuesday, 14, 0)},
		{Start: at(tuesday, 9, 0), End: at(tuesday, 10, 0)},
		{Start: at(tuesday, 9, 30), End: at(tuesday, 11, 0)},
	}
	got := mergeIntervals(in)
	if len(got) != 2 {
		t.Fatalf("expected 2 merged intervals, got %d", len(got))
	}
	if !got[0].Start.Equal(at(tuesday, 9, 0)) || !got[0].End.Equal(at(tuesday, 11, 0)) {
		t.Fatalf("bad merge: %+v", got[0])
	}
}
