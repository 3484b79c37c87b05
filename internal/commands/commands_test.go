package commands_test

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/jrsteele09/go-budget-client/internal/commands"
	"github.com/stretchr/testify/require"
)

type testFixture struct {
	server *httptest.Server
	out    *bytes.Buffer
	errOut *bytes.Buffer

	mu     sync.Mutex
	routes map[string]cannedResponse
	hits   map[string]int
}

type cannedResponse struct {
	status int
	body   string
}

func setupTestFixture(t *testing.T) *testFixture {
	t.Helper()
	t.Setenv("BUDGET_SESSION_STORE", "memory")
	t.Setenv("BUDGET_PASSWORD", "")

	f := &testFixture{
		out:    &bytes.Buffer{},
		errOut: &bytes.Buffer{},
		routes: map[string]cannedResponse{},
		hits:   map[string]int{},
	}
	f.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key := r.Method + " " + r.URL.Path
		f.mu.Lock()
		f.hits[key]++
		resp, ok := f.routes[key]
		f.mu.Unlock()
		if !ok {
			resp = cannedResponse{status: http.StatusNotFound, body: `{"detail":"Not found."}`}
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(resp.status)
		_, _ = w.Write([]byte(resp.body))
	}))
	t.Cleanup(f.server.Close)
	return f
}

func (f *testFixture) route(key string, status int, body string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.routes[key] = cannedResponse{status: status, body: body}
}

func (f *testFixture) hitCount(key string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.hits[key]
}

func (f *testFixture) run(t *testing.T, args ...string) error {
	t.Helper()
	app := commands.NewApp(&commands.Flags{}, "test (abc1234) now")
	app.Writer = f.out
	app.ErrWriter = f.errOut
	app.Reader = strings.NewReader("")

	argv := append([]string{
		"budgetctl",
		"--config", filepath.Join(t.TempDir(), "missing.yaml"),
		"--api-url", f.server.URL + "/api",
		"--log-level", "error",
	}, args...)
	return app.Run(context.Background(), argv)
}

func TestEventsList(t *testing.T) {
	f := setupTestFixture(t)
	f.route("GET /api/events/", http.StatusOK, `{
		"count": 30,
		"next": "http://x/api/events/?page=2",
		"previous": null,
		"results": [
			{"id": 7, "name": "Harambee", "event_date": "2025-12-01", "venue": "Hall", "total_budget": "150000.00", "is_funded": true}
		]
	}`)

	require.NoError(t, f.run(t, "events", "ls"))
	out := f.out.String()
	require.Contains(t, out, "Harambee")
	require.Contains(t, out, "150,000")
	require.Contains(t, out, "yes")
	require.Contains(t, out, "Showing 1 of 30 (page size 25)")
}

func TestEventsList_Empty(t *testing.T) {
	f := setupTestFixture(t)
	f.route("GET /api/events/", http.StatusOK, `[]`)

	require.NoError(t, f.run(t, "events", "ls"))
	require.Contains(t, f.out.String(), "Nothing found.")
}

func TestEventsRemove_Protected(t *testing.T) {
	f := setupTestFixture(t)
	f.route("DELETE /api/events/3/", http.StatusBadRequest,
		`{"detail":"Cannot delete this event because it has related records.","related_objects":["Pledge: Wanjiru","Budget item: Tents"]}`)

	err := f.run(t, "events", "rm", "3")
	require.Error(t, err)

	var rendered bytes.Buffer
	commands.RenderError(&rendered, err)
	require.Equal(t,
		"Cannot Delete: Cannot delete this event because it has related records.\nRelated items: Pledge: Wanjiru, Budget item: Tents\n",
		rendered.String())
}

func TestEventsShow_InvalidID(t *testing.T) {
	f := setupTestFixture(t)
	err := f.run(t, "events", "show", "abc")
	require.ErrorContains(t, err, `invalid event id "abc"`)
}

func TestPledgesCreate_Validation(t *testing.T) {
	f := setupTestFixture(t)
	f.route("POST /api/pledges/", http.StatusBadRequest,
		`{"phone_number":["Enter a valid phone number."],"amount_pledged":["Ensure this value is greater than 0."]}`)

	err := f.run(t, "pledges", "create", "--event", "3", "--name", "Wanjiru", "--phone", "07", "--amount", "1")
	require.Error(t, err)

	var rendered bytes.Buffer
	commands.RenderError(&rendered, err)
	require.Equal(t,
		"Validation Error: • Phone Number: Enter a valid phone number.\n• Amount Pledged: Ensure this value is greater than 0.\n",
		rendered.String())
}

func TestLogin(t *testing.T) {
	f := setupTestFixture(t)
	f.route("POST /api/login/", http.StatusOK,
		`{"access":"access-token","refresh":"refresh-token","user_id":4,"username":"alice"}`)

	require.NoError(t, f.run(t, "login", "--username", "alice", "--password", "secret1"))
	require.Contains(t, f.out.String(), "Welcome back, alice!")
}

func TestLogin_InvalidCredentials(t *testing.T) {
	f := setupTestFixture(t)
	f.route("POST /api/login/", http.StatusUnauthorized, `{"detail":"Invalid credentials."}`)

	err := f.run(t, "login", "--username", "alice", "--password", "wrong-password")
	require.Error(t, err)
	require.Zero(t, f.hitCount("POST /api/token/refresh/"))

	var rendered bytes.Buffer
	commands.RenderError(&rendered, err)
	require.Equal(t, "Error: Invalid credentials.\n", rendered.String())
	require.NotContains(t, f.errOut.String(), "session expired")
}

func TestSessionExpiredNotice(t *testing.T) {
	f := setupTestFixture(t)
	t.Setenv("BUDGET_SESSION_STORE", "file")
	t.Setenv("BUDGET_DATA_DIR", t.TempDir())
	f.route("POST /api/login/", http.StatusOK,
		`{"access":"access-token","refresh":"refresh-token","user_id":4,"username":"alice"}`)
	f.route("GET /api/events/", http.StatusUnauthorized, `{"detail":"Given token not valid for any token type"}`)
	f.route("POST /api/token/refresh/", http.StatusUnauthorized, `{"detail":"Token is blacklisted"}`)

	require.NoError(t, f.run(t, "login", "--username", "alice", "--password", "secret1"))
	require.NotContains(t, f.errOut.String(), "session expired")

	err := f.run(t, "events", "ls")
	require.Error(t, err)
	require.Equal(t, 1, f.hitCount("POST /api/token/refresh/"))
	require.Contains(t, f.errOut.String(), "session expired, run `budgetctl login`")
}

func TestActivity_FallsBackToPledgesAndEvents(t *testing.T) {
	f := setupTestFixture(t)
	f.route("GET /api/pledges/", http.StatusOK,
		`[{"id":1,"event":7,"name":"Wanjiru","amount_pledged":"2500.00","is_fulfilled":false}]`)
	f.route("GET /api/events/", http.StatusOK,
		`[{"id":7,"name":"Harambee","event_date":"2025-12-01","venue":null,"total_budget":"150000.00"}]`)

	require.NoError(t, f.run(t, "activity"))
	out := f.out.String()
	require.Equal(t, 1, f.hitCount("GET /api/recent-activities/"))
	require.Contains(t, out, "Wanjiru pledged for Harambee")
	require.Contains(t, out, "Venue not specified")
}

func TestDashboard(t *testing.T) {
	f := setupTestFixture(t)
	f.route("GET /api/dashboard/", http.StatusOK, `{
		"summary": {"total_events": 2, "active_events": 1, "funded_events": 1, "total_budget": "200000.00"},
		"upcoming_events": [{"id": 7, "name": "Harambee", "event_date": "2025-12-01", "total_budget": "150000.00", "percentage_covered": "40.00"}]
	}`)

	require.NoError(t, f.run(t, "dashboard"))
	out := f.out.String()
	require.Contains(t, out, "200,000")
	require.Contains(t, out, "Harambee")
	require.Contains(t, out, "40.00%")
}

func TestVersion(t *testing.T) {
	f := setupTestFixture(t)
	require.NoError(t, f.run(t, "version"))
	require.Contains(t, f.out.String(), "test (abc1234) now")
}

func TestRenderError_WithoutPayload(t *testing.T) {
	var out bytes.Buffer
	commands.RenderError(&out, errors.New("dial tcp: connection refused"))
	require.Equal(t, "Error: An unexpected error occurred\n  dial tcp: connection refused\n", out.String())
}
