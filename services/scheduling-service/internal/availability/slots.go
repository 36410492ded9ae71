// Package availability computes open appointment slots for field-service
// work. It is pure interval arithmetic: callers resolve company settings and
// load occupancy up front, then ask for slots. The generator never touches
// the database, the clock, or the environment; "now" is always injected.
package availability

import (
	"sort"
	"time"
)

// Interval is a half-open time range [Start, End). A booking that ends
// exactly when another starts does not conflict with it.
type Interval struct {
	Start time.Time
	End   time.Time
}

// BusinessCalendar describes a company's bookable hours. Day boundaries are
// minutes from local midnight so that the same calendar applies across DST
// transitions without re-deriving clock times.
type BusinessCalendar struct {
	WorkingDays     []time.Weekday
	DayStartMinute  int
	DayEndMinute    int
	SlotStepMinutes int
	MinAdvanceHours int
	MaxAdvanceDays  int

	// CapacityMinutesPerDay caps total booked work per employee per day.
	// Zero disables the guard.
	CapacityMinutesPerDay int

	// Location is the company timezone. Nil means UTC.
	Location *time.Location
}

func (c BusinessCalendar) location() *time.Location {
	if c.Location != nil {
		return c.Location
	}
	return time.UTC
}

func (c BusinessCalendar) worksOn(d time.Weekday) bool {
	for _, wd := range c.WorkingDays {
		if wd == d {
			return true
		}
	}
	return false
}

// BufferPolicy reserves guard time around every occupancy interval, e.g. for
// travel between job sites. Buffers widen the blocked interval; they never
// extend the requested duration.
type BufferPolicy struct {
	BeforeMinutes int
	AfterMinutes  int
}

// SlotRequest is one availability query. EmployeeIDs is an ordered candidate
// list: earlier entries win ties. RangeStart/RangeEnd bound the days
// considered (inclusive on both ends, interpreted in the calendar timezone).
type SlotRequest struct {
	Calendar        BusinessCalendar
	Buffer          BufferPolicy
	EmployeeIDs     []string
	DurationMinutes int
	RangeStart      time.Time
	RangeEnd        time.Time
}

// Slot is a bookable interval for a specific employee.
type Slot struct {
	Start      time.Time
	End        time.Time
	EmployeeID string
}

// GenerateSlots returns every open start time in the requested range, in
// chronological order. Assignment policy: at most one Slot is emitted per
// start time, assigned to the first employee in req.EmployeeIDs who is free
// for the full buffered interval.
//
// Invalid input (no employees, non-positive duration or step, inverted
// range) yields an empty result rather than an error: "no openings" is a
// valid answer and the function has no side effects to undo.
func GenerateSlots(req SlotRequest, occupancy map[string][]Interval, now time.Time) []Slot {
	cal := req.Calendar
	if len(req.EmployeeIDs) == 0 || req.DurationMinutes <= 0 || cal.SlotStepMinutes <= 0 {
		return nil
	}

	loc := cal.location()
	now = now.In(loc)
	duration := time.Duration(req.DurationMinutes) * time.Minute
	step := time.Duration(cal.SlotStepMinutes) * time.Minute

	// Advance-booking window: slots may not start before now+minAdvance
	// nor after the end of the day maxAdvance days out.
	earliestAllowed := now.Add(time.Duration(cal.MinAdvanceHours) * time.Hour)
	lastDay := dayOf(now.AddDate(0, 0, cal.MaxAdvanceDays), loc)

	firstDay := dayOf(req.RangeStart.In(loc), loc)
	endDay := dayOf(req.RangeEnd.In(loc), loc)
	if d := dayOf(earliestAllowed, loc); d.After(firstDay) {
		firstDay = d
	}
	if lastDay.Before(endDay) {
		endDay = lastDay
	}
	if firstDay.After(endDay) {
		return nil
	}

	blocked := expandOccupancy(req.EmployeeIDs, occupancy, req.Buffer)

	var slots []Slot
	for day := firstDay; !day.After(endDay); day = day.AddDate(0, 0, 1) {
		if !cal.worksOn(day.Weekday()) {
			continue
		}

		dayStart := time.Date(day.Year(), day.Month(), day.Day(), 0, cal.DayStartMinute, 0, 0, loc)
		dayEnd := time.Date(day.Year(), day.Month(), day.Day(), 0, cal.DayEndMinute, 0, 0, loc)
		if !dayEnd.After(dayStart) {
			continue
		}

		var booked map[string]int
		if cal.CapacityMinutesPerDay > 0 {
			booked = bookedMinutes(req.EmployeeIDs, occupancy, day, loc)
		}

		for start := dayStart; !start.Add(duration).After(dayEnd); start = start.Add(step) {
			if start.Before(earliestAllowed) {
				continue
			}
			end := start.Add(duration)
			for _, emp := range req.EmployeeIDs {
				if cal.CapacityMinutesPerDay > 0 && booked[emp]+req.DurationMinutes > cal.CapacityMinutesPerDay {
					continue
				}
				if overlapsAny(start, end, blocked[emp]) {
					continue
				}
				slots = append(slots, Slot{Start: start, End: end, EmployeeID: emp})
				break
			}
		}
	}
	return slots
}

// expandOccupancy widens each interval by the buffer policy, then sorts and
// merges the result per employee so the conflict scan can early-exit.
func expandOccupancy(employeeIDs []string, occupancy map[string][]Interval, buf BufferPolicy) map[string][]Interval {
	before := time.Duration(buf.BeforeMinutes) * time.Minute
	after := time.Duration(buf.AfterMinutes) * time.Minute

	out := make(map[string][]Interval, len(employeeIDs))
	for _, emp := range employeeIDs {
		src := occupancy[emp]
		if len(src) == 0 {
			continue
		}
		expanded := make([]Interval, 0, len(src))
		for _, iv := range src {
			if !iv.End.After(iv.Start) {
				continue
			}
			expanded = append(expanded, Interval{Start: iv.Start.Add(-before), End: iv.End.Add(after)})
		}
		out[emp] = mergeIntervals(expanded)
	}
	return out
}

// mergeIntervals sorts intervals by start and coalesces overlapping or
// touching neighbors. The input slice is modified in place.
func mergeIntervals(in []Interval) []Interval {
	if len(in) < 2 {
		return in
	}
	sort.Slice(in, func(i, j int) bool {
		if in[i].Start.Equal(in[j].Start) {
			return in[i].End.Before(in[j].End)
		}
		return in[i].Start.Before(in[j].Start)
	})
	merged := in[:1]
	for _, cur := range in[1:] {
		last := &merged[len(merged)-1]
		if cur.Start.After(last.End) {
			merged = append(merged, cur)
			continue
		}
		if cur.End.After(last.End) {
			last.End = cur.End
		}
	}
	return merged
}

// overlapsAny reports whether [start, end) intersects any of the sorted,
// merged intervals.
func overlapsAny(start, end time.Time, blocked []Interval) bool {
	for _, b := range blocked {
		if !b.Start.Before(end) {
			return false
		}
		if start.Before(b.End) {
			return true
		}
	}
	return false
}

// bookedMinutes totals raw (unbuffered) occupancy that falls on the given
// day, per employee. Used by the daily capacity guard.
func bookedMinutes(employeeIDs []string, occupancy map[string][]Interval, day time.Time, loc *time.Location) map[string]int {
	dayStart := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, loc)
	dayEnd := dayStart.AddDate(0, 0, 1)

	out := make(map[string]int, len(employeeIDs))
	for _, emp := range employeeIDs {
		total := time.Duration(0)
		for _, iv := range occupancy[emp] {
			s := maxTime(iv.Start, dayStart)
			e := minTime(iv.End, dayEnd)
			if e.After(s) {
				total += e.Sub(s)
			}
		}
		out[emp] = int(total / time.Minute)
	}
	return out
}

func dayOf(t time.Time, loc *time.Location) time.Time {
	t = t.In(loc)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
}

func maxTime(a, b time.Time) time.Time {
	if a.After(b) {
		return a
	}
	return b
}

func minTime(a, b time.Time) time.Time {
	if a.Before(b) {
		return a
	}
	return b
}
