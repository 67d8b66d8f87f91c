// Package views projects listing state onto what the jobs page shows.
// Project is pure; the HTML templates only read the Page it returns.
package views

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/justsurfingit/jobby-board/internal/listing"
	"github.com/justsurfingit/jobby-board/internal/models"
)

type Kind string

const (
	KindNone      Kind = "none"
	KindLoading   Kind = "loading"
	KindNoResults Kind = "no_results"
	KindJobs      Kind = "jobs"
	KindFailure   Kind = "failure"
)

const (
	NoJobsHeading  = "No Jobs Found"
	NoJobsMessage  = "We could not find any jobs. Try other filters"
	FailureHeading = "Oops! Something Went Wrong"
	FailureMessage = "We cannot seem to find the page you are looking for."
	RetryLabel     = "Retry"
)

// Option is one checkbox or radio in the filter panel. URL is where
// activating it leads.
type Option struct {
	ID      string
	Label   string
	Checked bool
	URL     string
}

type Page struct {
	Kind     Kind
	Jobs     []models.Job
	Heading  string
	Message  string
	Filter   models.Filter
	SelfURL  string
	RetryURL string
	// RetryLabel is empty unless the page offers a retry.
	RetryLabel string

	EmploymentOptions []Option
	SalaryOptions     []Option
}

// Project maps a lifecycle state to the page for it.
func Project(s listing.State) Page {
	p := Page{
		Filter:            s.Filter.Clone(),
		SelfURL:           JobsURL(s.Filter),
		EmploymentOptions: employmentOptions(s.Filter),
		SalaryOptions:     salaryOptions(s.Filter),
	}

	switch s.Status {
	case listing.StatusInProgress:
		p.Kind = KindLoading
	case listing.StatusSuccess:
		if len(s.Jobs) == 0 {
			p.Kind = KindNoResults
			p.Heading, p.Message = NoJobsHeading, NoJobsMessage
			break
		}
		p.Kind = KindJobs
		p.Jobs = append([]models.Job(nil), s.Jobs...)
	case listing.StatusFailure:
		p.Kind = KindFailure
		p.Heading, p.Message = FailureHeading, FailureMessage
		p.RetryURL, p.RetryLabel = JobsURL(s.Filter), RetryLabel
	default:
		p.Kind = KindNone
	}
	return p
}

// JobsURL is the jobs page address that reproduces filter.
func JobsURL(f models.Filter) string {
	q := url.Values{}
	if len(f.EmploymentTypes) > 0 {
		q.Set("employment_type", strings.Join(f.EmploymentTypes, ","))
	}
	if f.MinimumPackage != models.NoMinimumPackage {
		q.Set("minimum_package", strconv.Itoa(f.MinimumPackage))
	}
	if f.Search != "" {
		q.Set("search", f.Search)
	}
	if len(q) == 0 {
		return "/jobs"
	}
	return "/jobs?" + q.Encode()
}

func employmentOptions(f models.Filter) []Option {
	out := make([]Option, 0, len(models.EmploymentTypes))
	for _, t := range models.EmploymentTypes {
		next := f.Clone()
		next.ToggleEmploymentType(t.ID)
		out = append(out, Option{
			ID:      t.ID,
			Label:   t.Label,
			Checked: f.HasEmploymentType(t.ID),
			URL:     JobsURL(next),
		})
	}
	return out
}

func salaryOptions(f models.Filter) []Option {
	out := make([]Option, 0, len(models.SalaryRanges))
	for _, r := range models.SalaryRanges {
		next := f.Clone()
		next.SetMinimumPackage(r.ID)
		out = append(out, Option{
			ID:      strconv.Itoa(r.ID),
			Label:   r.Label,
			Checked: f.MinimumPackage == r.ID,
			URL:     JobsURL(next),
		})
	}
	return out
}
