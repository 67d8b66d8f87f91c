package views

import (
	"github.com/justsurfingit/jobby-board/internal/listing"
	"github.com/justsurfingit/jobby-board/internal/models"
)

// JSONPage is the projection served on the JSON api.
type JSONPage struct {
	Status  listing.Status `json:"status"`
	View    Kind           `json:"view"`
	Jobs    []models.Job   `json:"jobs"`
	Filter  models.Filter  `json:"filter"`
	Heading string         `json:"heading,omitempty"`
	Message string         `json:"message,omitempty"`
}

func ProjectJSON(s listing.State) JSONPage {
	p := Project(s)
	jobs := p.Jobs
	if jobs == nil {
		jobs = []models.Job{}
	}
	return JSONPage{
		Status:  s.Status,
		View:    p.Kind,
		Jobs:    jobs,
		Filter:  p.Filter,
		Heading: p.Heading,
		Message: p.Message,
	}
}
