package sim

import (
	"sort"
	"time"
)

// TaskID identifies a scheduled task.
type TaskID uint64

type task struct {
	id    TaskID
	due   time.Duration
	epoch uint64
	fn    func()
}

// Scheduler runs delayed callbacks against simulation time.
//
// Every task is stamped with the epoch current when it was scheduled. Bump
// starts a new epoch; tasks from older epochs are dropped without running,
// so a timer armed before a reset can never touch the rebuilt world.
type Scheduler struct {
	now    time.Duration
	epoch  uint64
	nextID TaskID
	tasks  []task
}

// NewScheduler creates a scheduler at time zero, epoch zero.
func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// Now returns the current simulation time.
func (s *Scheduler) Now() time.Duration { return s.now }

// Epoch returns the current epoch.
func (s *Scheduler) Epoch() uint64 { return s.epoch }

// Pending returns the number of tasks that can still run.
func (s *Scheduler) Pending() int {
	n := 0
	for _, t := range s.tasks {
		if t.epoch == s.epoch {
			n++
		}
	}
	return n
}

// After schedules fn to run once delay has elapsed.
func (s *Scheduler) After(delay time.Duration, fn func()) TaskID {
	s.nextID++
	s.tasks = append(s.tasks, task{
		id:    s.nextID,
		due:   s.now + delay,
		epoch: s.epoch,
		fn:    fn,
	})
	return s.nextID
}

// Cancel removes a task. It reports whether the task was still scheduled.
func (s *Scheduler) Cancel(id TaskID) bool {
	for i, t := range s.tasks {
		if t.id == id {
			s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
			return true
		}
	}
	return false
}

// CancelAll drops every task.
func (s *Scheduler) CancelAll() {
	s.tasks = nil
}

// Bump starts a new epoch and returns it.
func (s *Scheduler) Bump() uint64 {
	s.epoch++
	return s.epoch
}

// Advance moves simulation time forward by dt.
func (s *Scheduler) Advance(dt time.Duration) {
	if dt > 0 {
		s.now += dt
	}
}

// RunDue runs every current-epoch task whose due time has passed, ordered by
// due time and then by scheduling order. Tasks scheduled by a running task
// wait for the next call. Returns the number of tasks run.
func (s *Scheduler) RunDue() int {
	var due []task
	n := 0
	for _, t := range s.tasks {
		switch {
		case t.epoch != s.epoch:
			// stale, drop
		case t.due <= s.now:
			due = append(due, t)
		default:
			s.tasks[n] = t
			n++
		}
	}
	clear(s.tasks[n:])
	s.tasks = s.tasks[:n]

	sort.SliceStable(due, func(i, j int) bool {
		if due[i].due != due[j].due {
			return due[i].due < due[j].due
		}
		return due[i].id < due[j].id
	})

	ran := 0
	for _, t := range due {
		// A task earlier in this batch may have bumped the epoch
		if t.epoch != s.epoch {
			continue
		}
		t.fn()
		ran++
	}
	return ran
}
