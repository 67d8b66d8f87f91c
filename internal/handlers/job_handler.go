package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/justsurfingit/jobby-board/internal/dtos"
	"github.com/justsurfingit/jobby-board/internal/listing"
	"github.com/justsurfingit/jobby-board/internal/middleware"
	"github.com/justsurfingit/jobby-board/internal/views"
)

type JobHandler struct {
	Fetcher listing.Fetcher
	Options listing.Options
}

func NewJobHandler(f listing.Fetcher, opts listing.Options) *JobHandler {
	return &JobHandler{Fetcher: f, Options: opts}
}

// mount builds the view for this request's filter and runs its first fetch.
// Each filter change in the browser is a new address, so a new mount.
func (h *JobHandler) mount(c *gin.Context) (listing.State, error) {
	var q dtos.JobsQuery
	_ = c.ShouldBindQuery(&q)

	ctrl := listing.NewController(h.Fetcher, middleware.SessionFrom(c), q.Filter(), h.Options)
	return ctrl.Mount(c.Request.Context())
}

// ListJobs is GET /jobs.
func (h *JobHandler) ListJobs(c *gin.Context) {
	state, err := h.mount(c)
	if errors.Is(err, listing.ErrUnauthenticated) {
		c.Redirect(http.StatusFound, middleware.LoginURL(c.Request.URL.RequestURI()))
		return
	}
	c.HTML(http.StatusOK, views.TemplateJobs, views.Project(state))
}

// ListJobsJSON is GET /api/v1/jobs.
func (h *JobHandler) ListJobsJSON(c *gin.Context) {
	state, err := h.mount(c)
	if errors.Is(err, listing.ErrUnauthenticated) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing session"})
		return
	}
	status := http.StatusOK
	if state.Status == listing.StatusFailure {
		status = http.StatusBadGateway
	}
	c.JSON(status, views.ProjectJSON(state))
}
