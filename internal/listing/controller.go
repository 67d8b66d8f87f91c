package listing

import (
	"context"
	"errors"
	"sync"

	"github.com/justsurfingit/jobby-board/internal/auth"
	"github.com/justsurfingit/jobby-board/internal/models"
)

var (
	ErrUnauthenticated = errors.New("listing: no session token")
	ErrRetryNotAllowed = errors.New("listing: retry is only available after a failure")
)

// Fetcher runs one job search. services.JobService satisfies it.
type Fetcher interface {
	SearchJobs(ctx context.Context, token string, filter models.Filter) ([]models.Job, error)
}

// Controller owns the Filter Selection and lifecycle State of one jobs view.
//
// Every trigger issues exactly one fetch with the filter as it stood when the
// trigger ran. Triggers are neither queued nor cancelled; results overwrite
// state in the order they resolve.
type Controller struct {
	fetcher Fetcher
	session auth.Session
	opts    Options

	mu          sync.Mutex
	filter      models.Filter
	state       State
	subscribers []func(State)
}

func NewController(fetcher Fetcher, session auth.Session, initial models.Filter, opts Options) *Controller {
	return &Controller{
		fetcher: fetcher,
		session: session,
		opts:    opts,
		filter:  initial.Clone(),
		state:   State{Status: StatusIdle, Filter: initial.Clone()},
	}
}

// Subscribe registers fn to receive every state the controller enters.
// fn runs on the goroutine that caused the transition, with the controller
// locked, so it must not call back into the controller.
func (c *Controller) Subscribe(fn func(State)) {
	c.mu.Lock()
	c.subscribers = append(c.subscribers, fn)
	c.mu.Unlock()
}

func (c *Controller) Snapshot() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshotLocked()
}

// Mount issues the first fetch of the view.
func (c *Controller) Mount(ctx context.Context) (State, error) {
	return c.trigger(ctx, nil)
}

// SetSearchText edits the pending search text without fetching.
func (c *Controller) SetSearchText(text string) {
	c.mu.Lock()
	c.filter.Search = text
	c.mu.Unlock()
}

// Search commits text and fetches.
func (c *Controller) Search(ctx context.Context, text string) (State, error) {
	return c.trigger(ctx, func(f *models.Filter) { f.Search = text })
}

func (c *Controller) ToggleEmploymentType(ctx context.Context, tag string) (State, error) {
	return c.trigger(ctx, func(f *models.Filter) { f.ToggleEmploymentType(tag) })
}

func (c *Controller) SetMinimumPackage(ctx context.Context, v int) (State, error) {
	return c.trigger(ctx, func(f *models.Filter) { f.SetMinimumPackage(v) })
}

// Retry re-issues the failed request with the same filter.
func (c *Controller) Retry(ctx context.Context) (State, error) {
	c.mu.Lock()
	if c.state.Status != StatusFailure {
		s := c.snapshotLocked()
		c.mu.Unlock()
		return s, ErrRetryNotAllowed
	}
	failed := c.state.Filter.Clone()
	c.mu.Unlock()
	return c.trigger(ctx, func(f *models.Filter) { *f = failed })
}

func (c *Controller) trigger(ctx context.Context, mutate func(*models.Filter)) (State, error) {
	token, ok := c.session.Get()
	if !ok {
		return c.Snapshot(), ErrUnauthenticated
	}

	c.mu.Lock()
	if mutate != nil {
		mutate(&c.filter)
	}
	c.state = Begin(c.state, c.filter)
	seq, filter := c.state.Seq, c.filter.Clone()
	c.notifyLocked()
	c.mu.Unlock()

	jobs, err := c.fetcher.SearchJobs(ctx, token, filter)

	c.mu.Lock()
	if err != nil {
		c.state = Fail(c.state, seq, err, c.opts)
	} else {
		c.state = Succeed(c.state, seq, jobs, c.opts)
	}
	c.notifyLocked()
	s := c.snapshotLocked()
	c.mu.Unlock()
	return s, nil
}

func (c *Controller) snapshotLocked() State {
	s := c.state
	s.Filter = s.Filter.Clone()
	if s.Jobs != nil {
		s.Jobs = append([]models.Job(nil), s.Jobs...)
	}
	return s
}

func (c *Controller) notifyLocked() {
	if len(c.subscribers) == 0 {
		return
	}
	s := c.snapshotLocked()
	for _, fn := range c.subscribers {
		fn(s)
	}
}
