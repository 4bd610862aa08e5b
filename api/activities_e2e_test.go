package api

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/International-Combat-Archery-Alliance/activity-signup/activities"
	"github.com/International-Combat-Archery-Alliance/activity-signup/memory"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	server, _ := newInstrumentedTestServer(t)
	return server
}

func newInstrumentedTestServer(t *testing.T) (*httptest.Server, *Metrics) {
	t.Helper()

	db, err := memory.NewDB(activities.DefaultCatalog()...)
	require.NoError(t, err)

	swagger, err := GetSwagger()
	require.NoError(t, err)
	swagger.Servers = nil

	registry := prometheus.NewRegistry()
	metrics := NewMetrics(registry)
	a := NewAPI(db, noopLogger, LOCAL, nil, metrics)

	server := httptest.NewServer(a.Handler(swagger, HandlerOptions{
		MetricsHandler: promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
	}))
	t.Cleanup(server.Close)

	return server, metrics
}

func participantURL(server *httptest.Server, activity, suffix, email string) string {
	return server.URL + "/activities/" + url.PathEscape(activity) + "/" + suffix + "?email=" + url.QueryEscape(email)
}

func doRequest(t *testing.T, method, target string) (*http.Response, map[string]any) {
	t.Helper()

	req, err := http.NewRequest(method, target, nil)
	require.NoError(t, err)

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var body map[string]any
	if strings.HasPrefix(resp.Header.Get("Content-Type"), "application/json") {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	}

	return resp, body
}

func getActivities(t *testing.T, server *httptest.Server) map[string]Activity {
	t.Helper()

	resp, err := http.Get(server.URL + "/activities")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var result map[string]Activity
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	return result
}

func TestActivitiesE2E(t *testing.T) {
	t.Run("List activities", func(t *testing.T) {
		server := newTestServer(t)

		resp, err := http.Get(server.URL + "/activities")
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.NotEmpty(t, resp.Header.Get(requestIdHeader))

		var raw map[string]map[string]any
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&raw))
		assert.Contains(t, raw, "Chess Club")
		assert.Contains(t, raw, "Programming Class")
		assert.Contains(t, raw, "Gym Class")

		for name, info := range raw {
			assert.IsType(t, "", info["description"], name)
			assert.IsType(t, "", info["schedule"], name)
			assert.IsType(t, float64(0), info["max_participants"], name)
			participants, ok := info["participants"].([]any)
			require.True(t, ok, name)
			for _, p := range participants {
				email, ok := p.(string)
				require.True(t, ok)
				assert.Contains(t, email, "@")
			}
		}
	})

	t.Run("Chess Club signup scenario", func(t *testing.T) {
		server := newTestServer(t)
		require.Len(t, getActivities(t, server)["Chess Club"].Participants, 2)

		resp, body := doRequest(t, http.MethodPost, participantURL(server, "Chess Club", "signup", "new@x.edu"))
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Contains(t, body["message"], "new@x.edu")

		participants := getActivities(t, server)["Chess Club"].Participants
		assert.Len(t, participants, 3)
		assert.Equal(t, "new@x.edu", participants[2])

		resp, body = doRequest(t, http.MethodPost, participantURL(server, "Chess Club", "signup", "new@x.edu"))
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Contains(t, strings.ToLower(body["detail"].(string)), "already signed up")
		assert.Len(t, getActivities(t, server)["Chess Club"].Participants, 3)
	})

	t.Run("Signup for unknown activity", func(t *testing.T) {
		server := newTestServer(t)
		before := getActivities(t, server)

		resp, body := doRequest(t, http.MethodPost, participantURL(server, "Nonexistent Club", "signup", "test@mergington.edu"))
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		assert.Contains(t, strings.ToLower(body["detail"].(string)), "not found")
		assert.Equal(t, before, getActivities(t, server))
	})

	t.Run("Signup with plus in email", func(t *testing.T) {
		server := newTestServer(t)

		resp, _ := doRequest(t, http.MethodPost, participantURL(server, "Programming Class", "signup", "user+test@mergington.edu"))
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Contains(t, getActivities(t, server)["Programming Class"].Participants, "user+test@mergington.edu")
	})

	t.Run("Signup multiple students", func(t *testing.T) {
		server := newTestServer(t)
		emails := []string{"alice@test.edu", "bob@test.edu", "charlie@test.edu"}

		for _, email := range emails {
			resp, _ := doRequest(t, http.MethodPost, participantURL(server, "Tennis Club", "signup", email))
			assert.Equal(t, http.StatusOK, resp.StatusCode)
		}

		assert.Equal(t, append([]string{"sarah@mergington.edu"}, emails...), getActivities(t, server)["Tennis Club"].Participants)
	})

	t.Run("Signup without email is rejected", func(t *testing.T) {
		server := newTestServer(t)

		resp, body := doRequest(t, http.MethodPost, server.URL+"/activities/Chess%20Club/signup")
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, string(InputValidationError), body["code"])
	})

	t.Run("Unregister", func(t *testing.T) {
		server := newTestServer(t)

		resp, body := doRequest(t, http.MethodDelete, participantURL(server, "Chess Club", "participants", "michael@mergington.edu"))
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Contains(t, body["message"], "Unregistered")
		assert.NotContains(t, getActivities(t, server)["Chess Club"].Participants, "michael@mergington.edu")
	})

	t.Run("Unregister twice", func(t *testing.T) {
		server := newTestServer(t)

		resp, _ := doRequest(t, http.MethodDelete, participantURL(server, "Basketball", "participants", "james@mergington.edu"))
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		resp, body := doRequest(t, http.MethodDelete, participantURL(server, "Basketball", "participants", "james@mergington.edu"))
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		assert.Contains(t, strings.ToLower(body["detail"].(string)), "not found")
	})

	t.Run("Unregister from unknown activity", func(t *testing.T) {
		server := newTestServer(t)

		resp, _ := doRequest(t, http.MethodDelete, participantURL(server, "Fake Club", "participants", "test@mergington.edu"))
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	t.Run("Signup and unregister round trip", func(t *testing.T) {
		server := newTestServer(t)
		before := getActivities(t, server)["Art Studio"]

		resp, _ := doRequest(t, http.MethodPost, participantURL(server, "Art Studio", "signup", "integration@test.edu"))
		require.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Contains(t, getActivities(t, server)["Art Studio"].Participants, "integration@test.edu")

		resp, _ = doRequest(t, http.MethodDelete, participantURL(server, "Art Studio", "participants", "integration@test.edu"))
		require.Equal(t, http.StatusOK, resp.StatusCode)

		assert.Equal(t, before, getActivities(t, server)["Art Studio"])
	})

	t.Run("Metrics are exposed", func(t *testing.T) {
		server := newTestServer(t)

		resp, _ := doRequest(t, http.MethodPost, participantURL(server, "Chess Club", "signup", "new@x.edu"))
		require.Equal(t, http.StatusOK, resp.StatusCode)

		metricsResp, err := http.Get(server.URL + "/metrics")
		require.NoError(t, err)
		defer metricsResp.Body.Close()
		assert.Equal(t, http.StatusOK, metricsResp.StatusCode)

		var sb strings.Builder
		_, err = io.Copy(&sb, metricsResp.Body)
		require.NoError(t, err)
		assert.Contains(t, sb.String(), `activity_signups_total{activity="Chess Club",result="success"} 1`)
	})
}

func TestMetricsE2E(t *testing.T) {
	t.Run("Unknown activity names share one series", func(t *testing.T) {
		server, metrics := newInstrumentedTestServer(t)

		for i := range 50 {
			name := fmt.Sprintf("junk-%d", i)

			resp, _ := doRequest(t, http.MethodPost, participantURL(server, name, "signup", "a@b.c"))
			require.Equal(t, http.StatusNotFound, resp.StatusCode)

			resp, _ = doRequest(t, http.MethodDelete, participantURL(server, name, "participants", "a@b.c"))
			require.Equal(t, http.StatusNotFound, resp.StatusCode)
		}

		assert.Equal(t, 1, testutil.CollectAndCount(metrics.Signups))
		assert.Equal(t, 1, testutil.CollectAndCount(metrics.Unregistrations))
		assert.Equal(t, 50.0, testutil.ToFloat64(metrics.Signups.WithLabelValues(unknownActivity, resultNotFound)))
		assert.Equal(t, 50.0, testutil.ToFloat64(metrics.Unregistrations.WithLabelValues(unknownActivity, resultNotFound)))
	})

	t.Run("Known activities keep their own label", func(t *testing.T) {
		server, metrics := newInstrumentedTestServer(t)

		resp, _ := doRequest(t, http.MethodPost, participantURL(server, "Chess Club", "signup", "new@x.edu"))
		require.Equal(t, http.StatusOK, resp.StatusCode)
		resp, _ = doRequest(t, http.MethodPost, participantURL(server, "Chess Club", "signup", "new@x.edu"))
		require.Equal(t, http.StatusBadRequest, resp.StatusCode)
		resp, _ = doRequest(t, http.MethodDelete, participantURL(server, "Chess Club", "participants", "nobody@x.edu"))
		require.Equal(t, http.StatusNotFound, resp.StatusCode)

		assert.Equal(t, 1.0, testutil.ToFloat64(metrics.Signups.WithLabelValues("Chess Club", resultSuccess)))
		assert.Equal(t, 1.0, testutil.ToFloat64(metrics.Signups.WithLabelValues("Chess Club", resultAlreadyEnrolled)))
		assert.Equal(t, 1.0, testutil.ToFloat64(metrics.Unregistrations.WithLabelValues("Chess Club", resultNotEnrolled)))
	})
}

func TestBoundaryE2E(t *testing.T) {
	server := newTestServer(t)
	client := &http.Client{
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}

	t.Run("Root redirects to landing page", func(t *testing.T) {
		resp, err := client.Get(server.URL + "/")
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusTemporaryRedirect, resp.StatusCode)
		assert.Equal(t, "/static/index.html", resp.Header.Get("Location"))
	})

	t.Run("Static assets", func(t *testing.T) {
		for _, path := range []string{"/static/index.html", "/static/app.js", "/static/styles.css"} {
			resp, err := client.Get(server.URL + path)
			require.NoError(t, err)
			resp.Body.Close()
			assert.Equal(t, http.StatusOK, resp.StatusCode, path)
		}

		resp, err := client.Get(server.URL + "/static/index.html")
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Contains(t, resp.Header.Get("Content-Type"), "text/html")
	})

	t.Run("Health check", func(t *testing.T) {
		resp, err := client.Get(server.URL + "/healthz")
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})
}
