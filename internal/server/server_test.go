package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/aevon-lab/traffic-dashboard/internal/auth"
	httperr "github.com/aevon-lab/traffic-dashboard/internal/core/errors"
	"github.com/aevon-lab/traffic-dashboard/internal/core/storage/memory"
	"github.com/aevon-lab/traffic-dashboard/internal/projection"
	"github.com/aevon-lab/traffic-dashboard/internal/traffic"
)

const (
	testSecret = "server-test-secret-0123"
	testIssuer = "traffic-dashboard"
)

type failingChecker struct{}

func (failingChecker) Ping(context.Context) error { return errors.New("connection refused") }

type panicRoutes struct{}

func (panicRoutes) RegisterRoutes(r gin.IRouter) {
	r.GET("/boom", func(*gin.Context) { panic("boom") })
}

func newTestServer(t *testing.T, health HealthChecker, extra ...RouteRegistrar) *Server {
	t.Helper()
	store := memory.New()
	if health == nil {
		health = store
	}
	registrars := append([]RouteRegistrar{
		traffic.NewService(store, traffic.ResetConfig{}, 64),
		projection.NewService(store),
	}, extra...)

	return New(
		Options{Addr: ":0", Mode: gin.TestMode, AllowOrigin: "https://dash.example.com"},
		health,
		auth.NewVerifier(testSecret, testIssuer).Middleware(),
		registrars...,
	)
}

func send(t *testing.T, s *Server, method, target, body string, authorized bool) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if authorized {
		token, err := auth.MintToken(testSecret, testIssuer, "tester", time.Minute)
		require.NoError(t, err)
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp := httptest.NewRecorder()
	s.Engine.ServeHTTP(resp, req)
	return resp
}

func errorBody(t *testing.T, resp *httptest.ResponseRecorder) httperr.ErrorResponse {
	t.Helper()
	var body httperr.ErrorResponse
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	require.False(t, body.Success)
	return body
}

func TestServer_TrafficRoutesRequireAuth(t *testing.T) {
	s := newTestServer(t, nil)

	for _, target := range []string{"/traffic", "/traffic/stats", "/traffic/series"} {
		resp := send(t, s, http.MethodGet, target, "", false)
		require.Equal(t, http.StatusUnauthorized, resp.Code, target)
		require.Equal(t, httperr.MsgUnauthorized, errorBody(t, resp).Error)
	}

	resp := send(t, s, http.MethodPost, "/traffic", `{"date":"2025-03-01","visits":1}`, false)
	require.Equal(t, http.StatusUnauthorized, resp.Code)
}

func TestServer_CreateThenRead(t *testing.T) {
	s := newTestServer(t, nil)

	created := send(t, s, http.MethodPost, "/traffic", `{"date":"2025-03-01","visits":120}`, true)
	require.Equal(t, http.StatusCreated, created.Code)

	list := send(t, s, http.MethodGet, "/traffic", "", true)
	require.Equal(t, http.StatusOK, list.Code)
	require.Contains(t, list.Body.String(), `"visits":120`)

	stats := send(t, s, http.MethodGet, "/traffic/stats", "", true)
	require.Equal(t, http.StatusOK, stats.Code)
	require.Contains(t, stats.Body.String(), `"total":120`)
}

func TestServer_MethodNotAllowed(t *testing.T) {
	s := newTestServer(t, nil)

	resp := send(t, s, http.MethodPatch, "/traffic", `{}`, true)
	require.Equal(t, http.StatusMethodNotAllowed, resp.Code)

	body := errorBody(t, resp)
	require.Equal(t, httperr.MsgMethodNotAllowed, body.Error)
	require.Equal(t, httperr.CodeMethodNotAllowed, body.Code)
}

func TestServer_UnknownRoute(t *testing.T) {
	s := newTestServer(t, nil)

	resp := send(t, s, http.MethodGet, "/nowhere", "", true)
	require.Equal(t, http.StatusNotFound, resp.Code)
	require.Equal(t, httperr.CodeNotFound, errorBody(t, resp).Code)
}

func TestServer_CORSPreflight(t *testing.T) {
	s := newTestServer(t, nil)

	resp := send(t, s, http.MethodOptions, "/traffic", "", false)
	require.Equal(t, http.StatusNoContent, resp.Code)
	require.Equal(t, "https://dash.example.com", resp.Header().Get("Access-Control-Allow-Origin"))
	require.Contains(t, resp.Header().Get("Access-Control-Allow-Methods"), http.MethodDelete)
	require.Contains(t, resp.Header().Get("Access-Control-Allow-Headers"), "Authorization")

	// Regular responses carry the headers too.
	resp = send(t, s, http.MethodGet, "/traffic", "", false)
	require.Equal(t, "https://dash.example.com", resp.Header().Get("Access-Control-Allow-Origin"))
}

func TestServer_RequestID(t *testing.T) {
	s := newTestServer(t, nil)

	resp := send(t, s, http.MethodGet, "/health", "", false)
	require.NotEmpty(t, resp.Header().Get(RequestIDKey))

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set(RequestIDKey, "req-42")
	rec := httptest.NewRecorder()
	s.Engine.ServeHTTP(rec, req)
	require.Equal(t, "req-42", rec.Header().Get(RequestIDKey))
}

func TestServer_Health(t *testing.T) {
	tests := []struct {
		name           string
		health         HealthChecker
		expectedStatus int
	}{
		{name: "store reachable", expectedStatus: http.StatusOK},
		{name: "store unreachable", health: failingChecker{}, expectedStatus: http.StatusServiceUnavailable},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := newTestServer(t, tc.health)
			resp := send(t, s, http.MethodGet, "/health", "", false)
			require.Equal(t, tc.expectedStatus, resp.Code)
		})
	}
}

func TestServer_Metrics(t *testing.T) {
	s := newTestServer(t, nil)
	send(t, s, http.MethodGet, "/traffic", "", true)

	resp := send(t, s, http.MethodGet, "/metrics", "", false)
	require.Equal(t, http.StatusOK, resp.Code)
	require.Contains(t, resp.Body.String(), "traffic_http_request_duration_seconds")
}

func TestServer_RecoversFromPanic(t *testing.T) {
	s := newTestServer(t, nil, panicRoutes{})

	resp := send(t, s, http.MethodGet, "/boom", "", true)
	require.Equal(t, http.StatusInternalServerError, resp.Code)
	require.Equal(t, httperr.CodeInternal, errorBody(t, resp).Code)
}
