package engine

import (
	"context"
	"errors"
	"slices"
	"sync"
	"sync/atomic"
	"time"
)

// ErrSchedulerRunning is returned by Run when the loop is already active
var ErrSchedulerRunning = errors.New("scheduler already running")

// Job is a periodic callback owned by a ClockScheduler
// Cancel is idempotent and takes effect before the next due check
type Job struct {
	name      string
	interval  time.Duration
	next      time.Time
	fn        func()
	cancelled bool
	fires     uint64
}

// Cancel stops the job; must be called from the scheduler goroutine
func (j *Job) Cancel() {
	if j != nil {
		j.cancelled = true
	}
}

// Active reports whether the job will fire again
func (j *Job) Active() bool {
	return j != nil && !j.cancelled
}

// Name returns the job label
func (j *Job) Name() string {
	return j.name
}

// Fires returns how many times the job has run
func (j *Job) Fires() uint64 {
	return j.fires
}

// ClockScheduler is the fixed-interval driver for the game
// All jobs and posted closures execute on the goroutine that calls Run (or RunDue/Drain in tests),
// so session state is only ever touched from one logical thread
type ClockScheduler struct {
	clock      Clock
	resolution time.Duration

	jobs []*Job

	posted   chan func()
	stopped  chan struct{}
	stopOnce sync.Once
	running  atomic.Bool

	tickCount atomic.Uint64
}

// NewClockScheduler creates a scheduler that checks deadlines every resolution
func NewClockScheduler(clock Clock, resolution time.Duration, queueSize int) *ClockScheduler {
	if clock == nil {
		clock = SystemClock{}
	}
	return &ClockScheduler{
		clock:      clock,
		resolution: resolution,
		posted:     make(chan func(), queueSize),
		stopped:    make(chan struct{}),
	}
}

// Now returns the scheduler clock time
func (cs *ClockScheduler) Now() time.Time {
	return cs.clock.Now()
}

// Every registers fn to run each interval, first run one interval from now
func (cs *ClockScheduler) Every(name string, interval time.Duration, fn func()) *Job {
	j := &Job{
		name:     name,
		interval: interval,
		next:     cs.clock.Now().Add(interval),
		fn:       fn,
	}
	cs.jobs = append(cs.jobs, j)
	return j
}

// Jobs returns the number of active jobs
func (cs *ClockScheduler) Jobs() int {
	n := 0
	for _, j := range cs.jobs {
		if j.Active() {
			n++
		}
	}
	return n
}

// RunDue fires every job whose deadline has passed, in registration order, and returns how many ran
// A job fires at most once per call; one that has fallen more than two intervals behind is
// rescheduled from now instead of bursting
func (cs *ClockScheduler) RunDue(now time.Time) int {
	// Callbacks may add or cancel jobs; iterate a snapshot
	snapshot := slices.Clone(cs.jobs)
	fired := 0

	for _, j := range snapshot {
		if j.cancelled || now.Before(j.next) {
			continue
		}

		j.fn()
		j.fires++
		fired++

		j.next = j.next.Add(j.interval)
		if now.Sub(j.next) > 2*j.interval {
			j.next = now.Add(j.interval)
		}
	}

	cs.jobs = slices.DeleteFunc(cs.jobs, func(j *Job) bool { return j.cancelled })
	cs.tickCount.Add(1)
	return fired
}

// Post queues fn to run on the scheduler goroutine
// Returns false if the scheduler has stopped
func (cs *ClockScheduler) Post(fn func()) bool {
	select {
	case <-cs.stopped:
		return false
	default:
	}

	select {
	case cs.posted <- fn:
		return true
	case <-cs.stopped:
		return false
	}
}

// Drain runs all currently queued closures on the caller's goroutine
func (cs *ClockScheduler) Drain() int {
	n := 0
	for {
		select {
		case fn := <-cs.posted:
			fn()
			n++
		default:
			return n
		}
	}
}

// Run drives jobs and posted closures until ctx is cancelled
// Returns nil on cancellation
func (cs *ClockScheduler) Run(ctx context.Context) error {
	if !cs.running.CompareAndSwap(false, true) {
		return ErrSchedulerRunning
	}
	defer cs.stopOnce.Do(func() { close(cs.stopped) })

	ticker := time.NewTicker(cs.resolution)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case fn := <-cs.posted:
			fn()
		case <-ticker.C:
			cs.RunDue(cs.clock.Now())
		}
	}
}

// Passes returns how many deadline checks have run
func (cs *ClockScheduler) Passes() uint64 {
	return cs.tickCount.Load()
}
