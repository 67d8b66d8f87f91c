// Package fakeapi is an in-process stand-in for the remote job API used by tests.
package fakeapi

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"

	"github.com/justsurfingit/jobby-board/internal/dtos"
)

const (
	Username = "rahul"
	Password = "rahul@2021"
	Token    = "fake-jwt-token"

	MsgMismatch = "username and password didn't match"
	MsgInvalid  = "Username or password is invalid"
	MsgBadToken = "Invalid JWT Token"
)

// Job is a listing plus the fields the fake filters on.
type Job struct {
	Payload dtos.JobPayload
	Tag     string
	Package int
}

type Server struct {
	*httptest.Server

	mu       sync.Mutex
	jobs     []Job
	failJobs int
	queries  []string
	logins   int
}

func New() *Server {
	s := &Server{jobs: DefaultJobs()}
	mux := http.NewServeMux()
	mux.HandleFunc("/login", s.handleLogin)
	mux.HandleFunc("/jobs", s.handleJobs)
	s.Server = httptest.NewServer(mux)
	return s
}

func DefaultJobs() []Job {
	return []Job{
		{
			Payload: dtos.JobPayload{ID: "d6019453", Title: "Devops Engineer", CompanyLogoURL: "https://assets.example/netflix.png", EmploymentType: "Internship", Location: "Delhi", JobDescription: "Build pipelines", PackagePerAnnum: "10 LPA", Rating: 4},
			Tag:     "INTERNSHIP",
			Package: 1000000,
		},
		{
			Payload: dtos.JobPayload{ID: "bb95e51b", Title: "Backend Engineer", CompanyLogoURL: "https://assets.example/facebook.png", EmploymentType: "Full Time", Location: "Bangalore", JobDescription: "Write Go services", PackagePerAnnum: "21 LPA", Rating: 4.5},
			Tag:     "FULLTIME",
			Package: 2100000,
		},
		{
			Payload: dtos.JobPayload{ID: "2b40029d", Title: "Frontend Engineer", CompanyLogoURL: "https://assets.example/google.png", EmploymentType: "Part Time", Location: "Hyderabad", JobDescription: "Ship UI", PackagePerAnnum: "14 LPA", Rating: 3},
			Tag:     "PARTTIME",
			Package: 1400000,
		},
	}
}

// SetJobs replaces the listings the fake serves, in answer order.
func (s *Server) SetJobs(jobs []Job) {
	s.mu.Lock()
	s.jobs = jobs
	s.mu.Unlock()
}

// FailJobs makes the next n job searches answer 500.
func (s *Server) FailJobs(n int) {
	s.mu.Lock()
	s.failJobs = n
	s.mu.Unlock()
}

// Queries returns the raw query strings of every search received so far.
func (s *Server) Queries() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.queries...)
}

func (s *Server) Logins() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.logins
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	s.mu.Lock()
	s.logins++
	s.mu.Unlock()

	var req dtos.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, dtos.ErrorResponse{StatusCode: 400, ErrorMsg: MsgInvalid})
		return
	}
	switch {
	case req.Username == "" || req.Password == "":
		writeJSON(w, http.StatusBadRequest, dtos.ErrorResponse{StatusCode: 400, ErrorMsg: MsgInvalid})
	case req.Username != Username || req.Password != Password:
		writeJSON(w, http.StatusBadRequest, dtos.ErrorResponse{StatusCode: 400, ErrorMsg: MsgMismatch})
	default:
		writeJSON(w, http.StatusOK, dtos.LoginResponse{JWTToken: Token})
	}
}

func (s *Server) handleJobs(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	s.queries = append(s.queries, r.URL.RawQuery)
	fail := s.failJobs > 0
	if fail {
		s.failJobs--
	}
	jobs := append([]Job(nil), s.jobs...)
	s.mu.Unlock()

	if r.Header.Get("Authorization") != "Bearer "+Token {
		writeJSON(w, http.StatusUnauthorized, dtos.ErrorResponse{StatusCode: 401, ErrorMsg: MsgBadToken})
		return
	}
	if fail {
		writeJSON(w, http.StatusInternalServerError, dtos.ErrorResponse{StatusCode: 500, ErrorMsg: "internal error"})
		return
	}

	q := r.URL.Query()
	tags := map[string]bool{}
	for _, t := range strings.Split(q.Get("employment_type"), ",") {
		if t != "" {
			tags[t] = true
		}
	}
	minPkg, _ := strconv.Atoi(q.Get("minimum_package"))
	search := strings.ToLower(q.Get("search"))

	out := dtos.JobsResponse{Jobs: []dtos.JobPayload{}}
	for _, j := range jobs {
		if len(tags) > 0 && !tags[j.Tag] {
			continue
		}
		if j.Package < minPkg {
			continue
		}
		if search != "" && !strings.Contains(strings.ToLower(j.Payload.Title), search) {
			continue
		}
		out.Jobs = append(out.Jobs, j.Payload)
	}
	writeJSON(w, http.StatusOK, out)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
