package engine

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var epoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func newTestScheduler() (*ClockScheduler, *ManualClock) {
	clock := NewManualClock(epoch)
	return NewClockScheduler(clock, time.Millisecond, 16), clock
}

func TestSchedulerFirstFireAfterInterval(t *testing.T) {
	cs, clock := newTestScheduler()

	count := 0
	job := cs.Every("count", 10*time.Millisecond, func() { count++ })

	assert.Equal(t, 0, cs.RunDue(clock.Now()))
	assert.Equal(t, 0, cs.RunDue(clock.Advance(9*time.Millisecond)))
	assert.Equal(t, 1, cs.RunDue(clock.Advance(time.Millisecond)))
	assert.Equal(t, 1, count)
	assert.Equal(t, uint64(1), job.Fires())
	assert.Equal(t, "count", job.Name())

	// Same instant again: not due
	assert.Equal(t, 0, cs.RunDue(clock.Now()))
}

func TestSchedulerRegistrationOrder(t *testing.T) {
	cs, clock := newTestScheduler()

	var order []string
	cs.Every("a", 10*time.Millisecond, func() { order = append(order, "a") })
	cs.Every("b", 10*time.Millisecond, func() { order = append(order, "b") })

	cs.RunDue(clock.Advance(10 * time.Millisecond))
	assert.Equal(t, []string{"a", "b"}, order)
}

func TestSchedulerCancel(t *testing.T) {
	cs, clock := newTestScheduler()

	count := 0
	job := cs.Every("count", 10*time.Millisecond, func() { count++ })
	assert.Equal(t, 1, cs.Jobs())

	job.Cancel()
	job.Cancel()
	assert.False(t, job.Active())

	cs.RunDue(clock.Advance(10 * time.Millisecond))
	assert.Equal(t, 0, count)
	assert.Equal(t, 0, cs.Jobs())

	var nilJob *Job
	assert.NotPanics(t, func() { nilJob.Cancel() })
	assert.False(t, nilJob.Active())
}

// TestSchedulerCancelFromCallback verifies a job cancelled by an earlier job in the same pass does not fire
func TestSchedulerCancelFromCallback(t *testing.T) {
	cs, clock := newTestScheduler()

	var victim *Job
	victimRan := false
	cs.Every("killer", 10*time.Millisecond, func() { victim.Cancel() })
	victim = cs.Every("victim", 10*time.Millisecond, func() { victimRan = true })

	assert.Equal(t, 1, cs.RunDue(clock.Advance(10*time.Millisecond)))
	assert.False(t, victimRan)
}

// TestSchedulerAddFromCallback verifies a job added during a pass waits a full interval
func TestSchedulerAddFromCallback(t *testing.T) {
	cs, clock := newTestScheduler()

	childRuns := 0
	var parent *Job
	parent = cs.Every("parent", 10*time.Millisecond, func() {
		parent.Cancel()
		cs.Every("child", 10*time.Millisecond, func() { childRuns++ })
	})

	cs.RunDue(clock.Advance(10 * time.Millisecond))
	assert.Equal(t, 0, childRuns)

	cs.RunDue(clock.Advance(10 * time.Millisecond))
	assert.Equal(t, 1, childRuns)
}

// TestSchedulerDriftCorrection verifies a stalled job fires once and then resumes from now
func TestSchedulerDriftCorrection(t *testing.T) {
	cs, clock := newTestScheduler()

	count := 0
	cs.Every("frame", 10*time.Millisecond, func() { count++ })

	// Stall for 100ms: one fire, no burst
	assert.Equal(t, 1, cs.RunDue(clock.Advance(100*time.Millisecond)))
	assert.Equal(t, 0, cs.RunDue(clock.Advance(5*time.Millisecond)))
	assert.Equal(t, 1, cs.RunDue(clock.Advance(5*time.Millisecond)))
	assert.Equal(t, 2, count)
}

func TestSchedulerPostAndDrain(t *testing.T) {
	cs, _ := newTestScheduler()

	var got []int
	for i := 0; i < 3; i++ {
		require.True(t, cs.Post(func() { got = append(got, i) }))
	}

	assert.Equal(t, 3, cs.Drain())
	assert.Equal(t, []int{0, 1, 2}, got)
	assert.Equal(t, 0, cs.Drain())
}

func TestSchedulerRunProcessesPostedAndStops(t *testing.T) {
	cs := NewClockScheduler(SystemClock{}, time.Millisecond, 16)
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() { done <- cs.Run(ctx) }()

	ran := make(chan struct{})
	require.True(t, cs.Post(func() { close(ran) }))

	select {
	case <-ran:
	case <-time.After(2 * time.Second):
		t.Fatal("posted closure never ran")
	}

	// A second Run while the first is active is rejected
	assert.ErrorIs(t, cs.Run(ctx), ErrSchedulerRunning)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("scheduler did not stop")
	}

	assert.False(t, cs.Post(func() {}), "post after stop must be refused")
}

func TestSchedulerRunFiresJobs(t *testing.T) {
	cs := NewClockScheduler(SystemClock{}, time.Millisecond, 16)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	fired := make(chan struct{}, 1)
	cs.Every("ping", 5*time.Millisecond, func() {
		select {
		case fired <- struct{}{}:
		default:
		}
	})

	go cs.Run(ctx)

	select {
	case <-fired:
	case <-time.After(2 * time.Second):
		t.Fatal("job never fired under Run")
	}
	assert.Greater(t, cs.Passes(), uint64(0))
}
