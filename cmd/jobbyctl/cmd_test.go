package main

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/justsurfingit/jobby-board/internal/auth"
	"github.com/justsurfingit/jobby-board/internal/models"
	"github.com/justsurfingit/jobby-board/internal/testutil/fakeapi"
)

// run executes the CLI against api with a private session file.
func run(t *testing.T, api *fakeapi.Server, session string, args ...string) (string, string, error) {
	t.Helper()
	root := newRootCmd()
	var stdout, stderr bytes.Buffer
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(append([]string{"--api-url", api.URL, "--session-file", session}, args...))
	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

// ---------------------------------------------------------------------------
// constructors
// ---------------------------------------------------------------------------

func TestJobsCmd(t *testing.T) {
	cmd := jobsCmd()

	assert.Equal(t, "jobs", cmd.Use)
	assert.NotEmpty(t, cmd.Short)
	assert.NotNil(t, cmd.RunE)

	typeFlag := cmd.Flags().Lookup("type")
	require.NotNil(t, typeFlag)
	assert.Equal(t, "t", typeFlag.Shorthand)
	require.NotNil(t, cmd.Flags().Lookup("min-package"))
	require.NotNil(t, cmd.Flags().Lookup("search"))
}

func TestLoginCmd(t *testing.T) {
	cmd := loginCmd()

	assert.Equal(t, "login", cmd.Use)
	require.NotNil(t, cmd.Flags().Lookup("username"))
	require.NotNil(t, cmd.Flags().Lookup("password"))
}

// ---------------------------------------------------------------------------
// flows
// ---------------------------------------------------------------------------

func TestLoginJobsLogout(t *testing.T) {
	api := fakeapi.New()
	defer api.Close()
	session := filepath.Join(t.TempDir(), "session.json")

	out, _, err := run(t, api, session, "login", "-u", fakeapi.Username, "-p", fakeapi.Password)
	require.NoError(t, err)
	assert.Contains(t, out, "Logged in. Token saved to "+session)
	tok, ok := auth.NewFileSession(session).Get()
	require.True(t, ok)
	assert.Equal(t, fakeapi.Token, tok)

	out, stderr, err := run(t, api, session, "jobs", "--type", "full-time")
	require.NoError(t, err)
	assert.Contains(t, stderr, "Loading...")
	assert.Contains(t, out, "Backend Engineer")
	assert.NotContains(t, out, "Devops Engineer")
	assert.Equal(t, []string{"employment_type=FULLTIME&minimum_package=0&search="}, api.Queries())

	_, _, err = run(t, api, session, "logout")
	require.NoError(t, err)
	_, _, err = run(t, api, session, "jobs")
	assert.ErrorIs(t, err, errNotLoggedIn)
	assert.Len(t, api.Queries(), 1)
}

func TestLogin_RejectedPrintsServerMessage(t *testing.T) {
	api := fakeapi.New()
	defer api.Close()
	session := filepath.Join(t.TempDir(), "session.json")

	_, _, err := run(t, api, session, "login", "-u", fakeapi.Username, "-p", "bad")
	require.Error(t, err)
	assert.Equal(t, "*"+fakeapi.MsgMismatch, err.Error())
	_, ok := auth.NewFileSession(session).Get()
	assert.False(t, ok)
}

func TestJobs_NoResultsAndFailure(t *testing.T) {
	api := fakeapi.New()
	defer api.Close()
	session := filepath.Join(t.TempDir(), "session.json")
	require.NoError(t, auth.NewFileSession(session).Set(fakeapi.Token))

	out, _, err := run(t, api, session, "jobs", "--search", "astronaut")
	require.NoError(t, err)
	assert.Contains(t, out, "No Jobs Found")

	api.FailJobs(1)
	out, _, err = run(t, api, session, "jobs", "--search", "astronaut")
	assert.ErrorIs(t, err, errJobsFailed)
	assert.Contains(t, out, "Oops! Something Went Wrong")
}

func TestJobs_JSONAndYAML(t *testing.T) {
	api := fakeapi.New()
	defer api.Close()
	session := filepath.Join(t.TempDir(), "session.json")
	require.NoError(t, auth.NewFileSession(session).Set(fakeapi.Token))

	out, stderr, err := run(t, api, session, "jobs", "-o", "json", "--min-package", "2000000")
	require.NoError(t, err)
	assert.Empty(t, stderr)
	assert.Contains(t, out, `"status": "SUCCESS"`)
	assert.Contains(t, out, `"id": "bb95e51b"`)

	out, _, err = run(t, api, session, "jobs", "-o", "yaml")
	require.NoError(t, err)
	assert.Contains(t, out, "status: SUCCESS")
	assert.Contains(t, out, "title: Devops Engineer")
}

// ---------------------------------------------------------------------------
// buildFilter
// ---------------------------------------------------------------------------

func TestBuildFilter(t *testing.T) {
	f, err := buildFilter("go", []string{"Part Time", "FULLTIME", "part_time"}, 3000000)
	require.NoError(t, err)
	assert.Equal(t, []string{models.EmploymentPartTime, models.EmploymentFullTime}, f.EmploymentTypes)
	assert.Equal(t, 3000000, f.MinimumPackage)
	assert.Equal(t, "go", f.Search)

	_, err = buildFilter("", []string{"contract"}, 0)
	assert.Error(t, err)

	_, err = buildFilter("", nil, 123)
	assert.Error(t, err)
}
