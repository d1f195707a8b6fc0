package globe

import (
	"testing"
	"time"
)

func TestManualClockAdvance(t *testing.T) {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	clock := NewManualClock(start)

	if !clock.Now().Equal(start) {
		t.Errorf("Expected initial time %v, got %v", start, clock.Now())
	}

	clock.Advance(time.Hour)
	if want := start.Add(time.Hour); !clock.Now().Equal(want) {
		t.Errorf("Expected %v after Advance, got %v", want, clock.Now())
	}
}

func TestManualClockFiresInOrder(t *testing.T) {
	clock := NewManualClock(time.Time{})
	var order []int

	clock.AfterFunc(30*time.Millisecond, func() { order = append(order, 3) })
	clock.AfterFunc(10*time.Millisecond, func() { order = append(order, 1) })
	clock.AfterFunc(20*time.Millisecond, func() { order = append(order, 2) })
	clock.AfterFunc(20*time.Millisecond, func() { order = append(order, 22) })

	clock.Advance(25 * time.Millisecond)
	if len(order) != 3 || order[0] != 1 || order[1] != 2 || order[2] != 22 {
		t.Errorf("Expected [1 2 22], got %v", order)
	}
	if clock.Pending() != 1 {
		t.Errorf("Expected 1 pending timer, got %d", clock.Pending())
	}

	clock.Advance(5 * time.Millisecond)
	if len(order) != 4 || order[3] != 3 {
		t.Errorf("Expected last timer to fire, got %v", order)
	}
}

func TestManualClockStop(t *testing.T) {
	clock := NewManualClock(time.Time{})
	fired := false
	timer := clock.AfterFunc(time.Second, func() { fired = true })

	if !timer.Stop() {
		t.Error("Expected Stop to report true for a pending timer")
	}
	if timer.Stop() {
		t.Error("Expected second Stop to report false")
	}
	clock.Advance(2 * time.Second)
	if fired {
		t.Error("Expected stopped timer not to fire")
	}
}

func TestManualClockNowInsideCallback(t *testing.T) {
	start := time.Time{}
	clock := NewManualClock(start)
	var seen time.Time
	clock.AfterFunc(40*time.Millisecond, func() { seen = clock.Now() })

	clock.Advance(time.Second)
	if want := start.Add(40 * time.Millisecond); !seen.Equal(want) {
		t.Errorf("Expected callback to observe %v, got %v", want, seen)
	}
}

func TestManualClockRearmFromCallback(t *testing.T) {
	clock := NewManualClock(time.Time{})
	count := 0
	var arm func()
	arm = func() {
		count++
		if count < 3 {
			clock.AfterFunc(10*time.Millisecond, arm)
		}
	}
	clock.AfterFunc(10*time.Millisecond, arm)

	clock.Advance(100 * time.Millisecond)
	if count != 3 {
		t.Errorf("Expected 3 chained firings, got %d", count)
	}
}
