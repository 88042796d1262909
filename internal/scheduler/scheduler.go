// Package scheduler drives periodic game activities from a single
// cooperative loop. The platform feeds it the current time once per display
// refresh; due tasks run to completion inside that call, so callbacks never
// overlap and need no locking.
//
// The scheduler owns every task it runs. Close cancels all periodic tasks and
// the pending frame request together.
package scheduler

import "time"

// maxCatchUp bounds how many missed periods a task replays in one Advance.
// A stalled terminal would otherwise trigger a burst of spawns.
const maxCatchUp = 4

// TaskID identifies a periodic task.
type TaskID int

type task struct {
	id       TaskID
	interval time.Duration
	next     time.Time
	fn       func()
	stopped  bool
}

// Scheduler runs periodic tasks plus a one-shot "next frame" callback.
type Scheduler struct {
	now    time.Time
	tasks  []*task
	nextID TaskID
	frame  func()
	closed bool
}

// New creates a scheduler whose clock starts at start.
func New(start time.Time) *Scheduler {
	return &Scheduler{now: start}
}

// Now returns the time of the last Advance.
func (s *Scheduler) Now() time.Time {
	return s.now
}

// Every registers fn to run once per interval, first at now+interval.
// Returns -1 if the scheduler is closed or interval is not positive.
func (s *Scheduler) Every(interval time.Duration, fn func()) TaskID {
	if s.closed || interval <= 0 {
		return -1
	}
	s.nextID++
	s.tasks = append(s.tasks, &task{
		id:       s.nextID,
		interval: interval,
		next:     s.now.Add(interval),
		fn:       fn,
	})
	return s.nextID
}

// Stop cancels a periodic task. Unknown IDs are ignored.
func (s *Scheduler) Stop(id TaskID) {
	for i, t := range s.tasks {
		if t.id == id {
			t.stopped = true
			s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
			return
		}
	}
}

// RequestFrame schedules fn to run on the next Advance, replacing any
// pending request.
func (s *Scheduler) RequestFrame(fn func()) {
	if s.closed {
		return
	}
	s.frame = fn
}

// CancelFrame drops the pending frame request, if any.
func (s *Scheduler) CancelFrame() {
	s.frame = nil
}

// FramePending reports whether a frame callback is waiting.
func (s *Scheduler) FramePending() bool {
	return s.frame != nil
}

// Pending returns the number of live periodic tasks.
func (s *Scheduler) Pending() int {
	return len(s.tasks)
}

// Advance moves the clock to now and runs everything that is due: periodic
// tasks in registration order, then the pending frame callback. A callback
// may register, stop or request again; a frame requested during Advance runs
// on the following Advance.
func (s *Scheduler) Advance(now time.Time) {
	if s.closed {
		return
	}
	if now.After(s.now) {
		s.now = now
	}

	// Snapshot so tasks added by callbacks wait for the next Advance.
	due := make([]*task, len(s.tasks))
	copy(due, s.tasks)
	for _, t := range due {
		s.runTask(t)
		if s.closed {
			return
		}
	}

	if fn := s.frame; fn != nil {
		s.frame = nil
		fn()
	}
}

func (s *Scheduler) runTask(t *task) {
	fired := 0
	for !t.stopped && !t.next.After(s.now) {
		if fired == maxCatchUp {
			// Too far behind: re-anchor instead of replaying every period.
			t.next = s.now.Add(t.interval)
			return
		}
		t.next = t.next.Add(t.interval)
		fired++
		t.fn()
		if s.closed {
			return
		}
	}
}

// Close cancels every periodic task and the pending frame. Calling Close
// more than once is safe; later calls to any method are no-ops.
func (s *Scheduler) Close() {
	if s.closed {
		return
	}
	s.closed = true
	for _, t := range s.tasks {
		t.stopped = true
	}
	s.tasks = nil
	s.frame = nil
}

// Closed reports whether Close has been called.
func (s *Scheduler) Closed() bool {
	return s.closed
}
