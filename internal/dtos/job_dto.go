package dtos

import (
	"strconv"
	"strings"

	"github.com/justsurfingit/jobby-board/internal/models"
)

// JobPayload mirrors one entry of the search endpoint's "jobs" array.
type JobPayload struct {
	ID              string  `json:"id"`
	Title           string  `json:"title"`
	CompanyLogoURL  string  `json:"company_logo_url"`
	EmploymentType  string  `json:"employment_type"`
	Location        string  `json:"location"`
	JobDescription  string  `json:"job_description"`
	PackagePerAnnum string  `json:"package_per_annum"`
	Rating          float64 `json:"rating"`
}

type JobsResponse struct {
	Jobs []JobPayload `json:"jobs"`
}

// ToModel renames fields 1:1. Values are passed through untouched.
func (p JobPayload) ToModel() models.Job {
	return models.Job{
		ID:              p.ID,
		Title:           p.Title,
		CompanyLogoURL:  p.CompanyLogoURL,
		EmploymentType:  p.EmploymentType,
		Location:        p.Location,
		JobDescription:  p.JobDescription,
		PackagePerAnnum: p.PackagePerAnnum,
		Rating:          p.Rating,
	}
}

func (r JobsResponse) ToModels() []models.Job {
	jobs := make([]models.Job, 0, len(r.Jobs))
	for _, p := range r.Jobs {
		jobs = append(jobs, p.ToModel())
	}
	return jobs
}

// JobsQuery binds the jobs page query string.
// employment_type may be repeated or comma-joined.
type JobsQuery struct {
	Search         string   `form:"search"`
	EmploymentType []string `form:"employment_type"`
	MinimumPackage string   `form:"minimum_package"`
}

// Filter turns the query into a Filter Selection, dropping unknown tags,
// duplicates and non-enumerated salary thresholds.
func (q JobsQuery) Filter() models.Filter {
	f := models.Filter{Search: q.Search}
	for _, raw := range q.EmploymentType {
		for _, tag := range strings.Split(raw, ",") {
			tag = strings.TrimSpace(tag)
			if tag == "" || f.HasEmploymentType(tag) {
				continue
			}
			f.ToggleEmploymentType(tag)
		}
	}
	pkg, err := strconv.Atoi(strings.TrimSpace(q.MinimumPackage))
	if err != nil {
		pkg = models.NoMinimumPackage
	}
	f.SetMinimumPackage(pkg)
	return f
}
