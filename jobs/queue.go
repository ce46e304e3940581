package jobs

import (
	"fmt"
	"time"

	"github.com/gogpu/ggchart"
)

// Queue executes jobs on the UI goroutine. At most one animated job runs
// at a time; posting another freezes the running one where it is. Jobs
// posted before their view has dimensions wait for RunPending.
//
// Queue is not safe for concurrent use.
type Queue struct {
	pool    *Pool
	pending []Job

	active  Job
	started bool
}

// QueueOption configures a Queue.
type QueueOption func(*Queue)

// WithPool makes the queue recycle finished instant jobs into p.
func WithPool(p *Pool) QueueOption {
	return func(q *Queue) {
		q.pool = p
	}
}

// NewQueue creates an empty queue.
func NewQueue(opts ...QueueOption) *Queue {
	q := &Queue{}
	for _, opt := range opts {
		opt(q)
	}
	if q.pool == nil {
		q.pool = NewPool()
	}
	return q
}

// Pool returns the pool finished instant jobs are recycled into.
func (q *Queue) Pool() *Pool { return q.pool }

// Post runs an instant job immediately and schedules an animated one to
// start on the next Tick. A running animation is canceled first.
func (q *Queue) Post(j Job) {
	if j == nil {
		return
	}
	if !j.View().Viewport().HasChartDimens() {
		q.pending = append(q.pending, j)
		return
	}
	if j.Duration() <= 0 {
		j.step(time.Time{})
		q.finish(j, false)
		return
	}
	q.Cancel()
	q.active = j
	q.started = false
}

// Tick advances the running animation to now and reports whether it is
// still running afterwards.
func (q *Queue) Tick(now time.Time) bool {
	if q.active == nil {
		return false
	}
	j := q.active
	if !q.started {
		j.start(now)
		q.started = true
	}
	if j.step(now) {
		q.active = nil
		q.finish(j, false)
	}
	return q.active != nil
}

// Cancel stops the running animation at its current state.
func (q *Queue) Cancel() {
	if q.active == nil {
		return
	}
	j := q.active
	q.active = nil
	q.finish(j, true)
}

// Running reports whether an animation is in flight.
func (q *Queue) Running() bool { return q.active != nil }

// Pending returns the number of jobs waiting for view dimensions.
func (q *Queue) Pending() int { return len(q.pending) }

// RunPending posts the jobs held back for missing dimensions, in posting
// order. Jobs whose view still has no dimensions stay pending.
func (q *Queue) RunPending() {
	held := q.pending
	q.pending = nil
	for _, j := range held {
		q.Post(j)
	}
}

func (q *Queue) finish(j Job, canceled bool) {
	j.View().CalculateOffsets()
	ggchart.Logger().Debug("jobs: finished", "job", fmt.Sprintf("%T", j), "canceled", canceled)
	q.pool.Put(j)
}
