package engine

import (
	"testing"
	"time"
)

func TestManualTime(t *testing.T) {
	startTime := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	mock := newManualTime(startTime)

	if !mock.Now().Equal(startTime) {
		t.Errorf("Expected initial time to be %v, got %v", startTime, mock.Now())
	}

	mock.Advance(30 * time.Minute)
	mock.Advance(15 * time.Minute)
	expected := startTime.Add(45 * time.Minute)
	if !mock.Now().Equal(expected) {
		t.Errorf("Expected time to be %v after multiple advances, got %v", expected, mock.Now())
	}
}

func TestPausableClockFreezes(t *testing.T) {
	startTime := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	mock := newManualTime(startTime)
	pc := NewPausableClock(mock)

	mock.Advance(time.Second)
	before := pc.Now()

	if !pc.Pause() {
		t.Fatal("Expected first Pause to succeed")
	}
	if pc.Pause() {
		t.Error("Expected second Pause to report no change")
	}

	mock.Advance(5 * time.Second)
	if !pc.Now().Equal(before) {
		t.Errorf("Expected frozen time %v while paused, got %v", before, pc.Now())
	}
	if pc.TotalPauseDuration() != 5*time.Second {
		t.Errorf("Expected ongoing pause of 5s, got %v", pc.TotalPauseDuration())
	}

	if !pc.Resume() {
		t.Fatal("Expected Resume to succeed")
	}
	mock.Advance(time.Second)

	// Paused interval is excluded from clock time
	want := startTime.Add(2 * time.Second)
	if !pc.Now().Equal(want) {
		t.Errorf("Expected %v after resume, got %v", want, pc.Now())
	}
	if pc.Resume() {
		t.Error("Expected Resume on running clock to report no change")
	}
}
