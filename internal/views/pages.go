package views

// LoginPage feeds login.html. The password is never echoed back.
type LoginPage struct {
	Username string
	ErrorMsg string
	Next     string
}

const (
	TemplateLogin    = "login.html"
	TemplateHome     = "home.html"
	TemplateJobs     = "jobs.html"
	TemplateNotFound = "not_found.html"
)
