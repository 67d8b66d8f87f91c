package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/justsurfingit/jobby-board/internal/dtos"
	"github.com/justsurfingit/jobby-board/internal/models"
)

type JobService struct {
	Client *APIClient
}

func NewJobService(client *APIClient) *JobService {
	return &JobService{Client: client}
}

// BuildSearchURL encodes the three filter dimensions exactly the way the
// search endpoint reads them. Tags keep their selection order and are
// joined with a literal comma.
func (s *JobService) BuildSearchURL(filter models.Filter) string {
	tags := make([]string, 0, len(filter.EmploymentTypes))
	for _, t := range filter.EmploymentTypes {
		tags = append(tags, url.QueryEscape(t))
	}
	return fmt.Sprintf("%s/jobs?employment_type=%s&minimum_package=%d&search=%s",
		s.Client.BaseURL,
		strings.Join(tags, ","),
		filter.MinimumPackage,
		url.QueryEscape(filter.Search),
	)
}

// SearchJobs runs one search with the given filter. Jobs come back in the
// order the API sent them. Every failure is a *RequestError.
func (s *JobService) SearchJobs(ctx context.Context, token string, filter models.Filter) ([]models.Job, error) {
	resp, err := s.Client.do(ctx, endpointJobs, http.MethodGet, s.BuildSearchURL(filter), nil, token)
	if err != nil {
		s.Client.record(endpointJobs, outcomeError, err)
		return nil, err
	}

	if !resp.ok() {
		msg, _ := resp.errorMessage()
		reqErr := &RequestError{Endpoint: endpointJobs, Status: resp.status, Message: msg}
		s.Client.record(endpointJobs, outcomeError, reqErr)
		return nil, reqErr
	}

	var parsed dtos.JobsResponse
	if err := json.Unmarshal(resp.body, &parsed); err != nil {
		reqErr := &RequestError{Endpoint: endpointJobs, Status: resp.status, Err: fmt.Errorf("decode jobs response: %w", err)}
		s.Client.record(endpointJobs, outcomeError, reqErr)
		return nil, reqErr
	}

	s.Client.record(endpointJobs, outcomeSuccess, nil)
	return parsed.ToModels(), nil
}
