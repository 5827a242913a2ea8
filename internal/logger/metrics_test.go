package logger

import (
	"testing"
	"time"
)

func TestMetrics_Counter(t *testing.T) {
	m := NewMetrics()

	m.IncrCounter("rows.skipped")
	m.IncrCounter("rows.skipped")
	m.AddCounter("rows.skipped", 3)

	if got := m.Snapshot().Counters["rows.skipped"]; got != 5 {
		t.Errorf("Counter = %v, want 5", got)
	}
}

func TestMetrics_Gauge(t *testing.T) {
	m := NewMetrics()

	m.SetGauge("contacts", 12)
	m.SetGauge("contacts", 40)

	if got := m.Snapshot().Gauges["contacts"]; got != 40 {
		t.Errorf("Gauge = %v, want 40", got)
	}
}

func TestMetrics_Timing(t *testing.T) {
	m := NewMetrics()

	m.RecordTiming("calendar", 100*time.Millisecond)
	m.RecordTiming("calendar", 200*time.Millisecond)
	m.RecordTiming("calendar", 150*time.Millisecond)

	stats, ok := m.Snapshot().Timings["calendar"]
	if !ok {
		t.Fatal("missing timing stats")
	}
	if stats.Count != 3 {
		t.Errorf("Count = %v, want 3", stats.Count)
	}
	if stats.Min != "100ms" {
		t.Errorf("Min = %v, want 100ms", stats.Min)
	}
	if stats.Max != "200ms" {
		t.Errorf("Max = %v, want 200ms", stats.Max)
	}
	if stats.Average != "150ms" {
		t.Errorf("Average = %v, want 150ms", stats.Average)
	}
}

func TestMetrics_SnapshotIsCopy(t *testing.T) {
	m := NewMetrics()
	m.IncrCounter("runs")

	snap := m.Snapshot()
	m.IncrCounter("runs")

	if snap.Counters["runs"] != 1 {
		t.Errorf("snapshot changed after update: %v", snap.Counters["runs"])
	}
}

func TestPackageLevelMetrics(t *testing.T) {
	IncrCounter("test")
	AddCounter("test", 2)
	SetGauge("test", 42.0)
	RecordTiming("test", time.Second)

	snap := MetricsSnapshot()
	if snap.Counters["test"] < 3 {
		t.Errorf("Counters[test] = %v, want at least 3", snap.Counters["test"])
	}
	if DefaultMetrics() == nil {
		t.Error("DefaultMetrics() returned nil")
	}
}
