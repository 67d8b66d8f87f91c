// Package listing is the request lifecycle behind the jobs page.
//
// State transitions are plain functions so they can be tested without any
// rendering. The Controller wires them to a Fetcher and a Session and is
// what the web handlers and the terminal client drive.
package listing

import (
	"github.com/justsurfingit/jobby-board/internal/models"
)

type Status string

const (
	StatusIdle       Status = "INITIAL"
	StatusInProgress Status = "IN_PROGRESS"
	StatusSuccess    Status = "SUCCESS"
	StatusFailure    Status = "FAILURE"
)

// State is one snapshot of the jobs page lifecycle.
// Seq counts requests begun so far; Jobs is only meaningful in StatusSuccess.
type State struct {
	Status Status
	Jobs   []models.Job
	Filter models.Filter
	Err    error
	Seq    uint64
}

// Options tweak how results are applied.
type Options struct {
	// DropStale ignores a result whose request was superseded by a newer one.
	// Off by default: whichever request resolves last wins.
	DropStale bool
}

// Begin enters InProgress for filter. The previous jobs are dropped so
// nothing stale shows while loading.
func Begin(s State, filter models.Filter) State {
	return State{
		Status: StatusInProgress,
		Filter: filter.Clone(),
		Seq:    s.Seq + 1,
	}
}

// Succeed replaces the collection with jobs, in the order received.
func Succeed(s State, seq uint64, jobs []models.Job, opts Options) State {
	if stale(s, seq, opts) {
		return s
	}
	if jobs == nil {
		jobs = []models.Job{}
	}
	s.Status = StatusSuccess
	s.Jobs = jobs
	s.Err = nil
	return s
}

// Fail enters Failure. The previous collection is discarded, not kept.
func Fail(s State, seq uint64, err error, opts Options) State {
	if stale(s, seq, opts) {
		return s
	}
	s.Status = StatusFailure
	s.Jobs = nil
	s.Err = err
	return s
}

func stale(s State, seq uint64, opts Options) bool {
	return opts.DropStale && seq < s.Seq
}
