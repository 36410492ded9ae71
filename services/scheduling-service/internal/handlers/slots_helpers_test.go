package handlers

import (
	"testing"
	"time"
)

func TestSplitCSV(t *testing.T) {
	got := splitCSV(" emp-1, ,emp-2,,emp-3 ")
	want := []string{"emp-1", "emp-2", "emp-3"}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}
	if out := splitCSV(""); out != nil {
		t.Fatalf("empty input should yield nil, got %v", out)
	}
}

func TestParseDay(t *testing.T) {
	chicago, err := time.LoadLocation("America/Chicago")
	if err != nil {
		t.Fatalf("load location: %v", err)
	}

	day, ok := parseDay("2026-03-10", chicago, time.Time{})
	if !ok {
		t.Fatal("expected valid parse")
	}
	want := time.Date(2026, 3, 10, 0, 0, 0, 0, chicago)
	if !day.Equal(want) {
		t.Fatalf("expected %s, got %s", want, day)
	}

	fallback := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	if day, ok := parseDay("  ", time.UTC, fallback); !ok || !day.Equal(fallback) {
		t.Fatalf("expected fallback, got %s ok=%v", day, ok)
	}

	if _, ok := parseDay("03/10/2026", time.UTC, fallback); ok {
		t.Fatal("expected parse failure for non-ISO date")
	}
}

func TestIsDebug(t *testing.T) {
	for _, raw := range []string{"1", "true", "TRUE", " yes "} {
		if !isDebug(raw) {
			t.Fatalf("%q should enable debug", raw)
		}
	}
	for _, raw := range []string{"", "0", "false", "no"} {
		if isDebug(raw) {
			t.Fatalf("%q should not enable debug", raw)
		}
	}
}
