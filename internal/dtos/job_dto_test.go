package dtos

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/justsurfingit/jobby-board/internal/models"
)

func TestJobsResponse_ToModels(t *testing.T) {
	raw := `{"jobs":[
		{"id":"b","title":"Backend Engineer","company_logo_url":"https://logo/b.png","employment_type":"Full Time","location":"Delhi","job_description":"Go","package_per_annum":"21 LPA","rating":4},
		{"id":"a","title":"Devops","company_logo_url":"https://logo/a.png","employment_type":"Internship","location":"Hyderabad","job_description":"k8s","package_per_annum":"10 LPA","rating":3.5}
	],"total":2}`

	var resp JobsResponse
	require.NoError(t, json.Unmarshal([]byte(raw), &resp))

	jobs := resp.ToModels()
	require.Len(t, jobs, 2)
	assert.Equal(t, models.Job{
		ID:              "b",
		Title:           "Backend Engineer",
		CompanyLogoURL:  "https://logo/b.png",
		EmploymentType:  "Full Time",
		Location:        "Delhi",
		JobDescription:  "Go",
		PackagePerAnnum: "21 LPA",
		Rating:          4,
	}, jobs[0])
	assert.Equal(t, "a", jobs[1].ID)
}

func TestJobsResponse_ToModelsEmpty(t *testing.T) {
	jobs := JobsResponse{}.ToModels()
	assert.NotNil(t, jobs)
	assert.Empty(t, jobs)
}

func TestJobsQuery_Filter(t *testing.T) {
	q := JobsQuery{
		Search:         "devops",
		EmploymentType: []string{"PARTTIME,FULLTIME", "PARTTIME", "BOGUS"},
		MinimumPackage: "2000000",
	}
	f := q.Filter()
	assert.Equal(t, "devops", f.Search)
	assert.Equal(t, []string{"PARTTIME", "FULLTIME"}, f.EmploymentTypes)
	assert.Equal(t, 2000000, f.MinimumPackage)
}

func TestJobsQuery_FilterDefaults(t *testing.T) {
	f := JobsQuery{MinimumPackage: "lots"}.Filter()
	assert.Empty(t, f.EmploymentTypes)
	assert.Equal(t, models.NoMinimumPackage, f.MinimumPackage)
	assert.Empty(t, f.Search)
}
