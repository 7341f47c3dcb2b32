package main

import (
	"bytes"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/aevon-lab/traffic-dashboard/internal/auth"
	"github.com/aevon-lab/traffic-dashboard/internal/core/storage/memory"
	"github.com/aevon-lab/traffic-dashboard/internal/projection"
	"github.com/aevon-lab/traffic-dashboard/internal/server"
	"github.com/aevon-lab/traffic-dashboard/internal/traffic"
)

const (
	testSecret = "cli-test-secret-0123456"
	testIssuer = "traffic-dashboard"
)

func startAPI(t *testing.T) (url, token string) {
	t.Helper()
	store := memory.New()
	srv := server.New(
		server.Options{Mode: gin.TestMode},
		store,
		auth.NewVerifier(testSecret, testIssuer).Middleware(),
		traffic.NewService(store, traffic.ResetConfig{}, 64),
		projection.NewService(store),
	)
	ts := httptest.NewServer(srv.Engine)
	t.Cleanup(ts.Close)

	token, err := auth.MintToken(testSecret, testIssuer, "cli", time.Minute)
	require.NoError(t, err)
	return ts.URL, token
}

func runCLI(t *testing.T, url, token string, args ...string) (string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	global := []string{"-url", url, "-token", token, "-env-file", filepath.Join(t.TempDir(), "none.env")}
	err := run(t.Context(), append(global, args...), &stdout, &stderr)
	return stdout.String(), err
}

func TestCLI_AddListStatsSeries(t *testing.T) {
	url, token := startAPI(t)

	out, err := runCLI(t, url, token, "add", "-date", "2025-03-01", "-visits", "100")
	require.NoError(t, err)
	require.Contains(t, out, "created")

	_, err = runCLI(t, url, token, "add", "-date", "2025-03-08", "-visits", "50")
	require.NoError(t, err)

	out, err = runCLI(t, url, token, "list", "-sort", "visits", "-order", "asc")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 4)
	require.Contains(t, lines[1], "2025-03-08")
	require.Contains(t, lines[3], "2 entries")

	out, err = runCLI(t, url, token, "stats", "-from", "2025-03-05")
	require.NoError(t, err)
	require.Regexp(t, `total\s+150\s+50`, out)

	out, err = runCLI(t, url, token, "series", "-view", "weekly")
	require.NoError(t, err)
	require.Contains(t, out, "Week of Mar 2, 2025")
}

func TestCLI_ReportsRejections(t *testing.T) {
	url, token := startAPI(t)

	_, err := runCLI(t, url, token, "add", "-date", "2025-02-30", "-visits", "many")
	require.ErrorContains(t, err, "validation")
	require.ErrorContains(t, err, "visits must be a number")

	_, err = runCLI(t, url, token, "add", "-date", "2025-03-01", "-visits", "1")
	require.NoError(t, err)
	_, err = runCLI(t, url, token, "add", "-date", "2025-03-01", "-visits", "2")
	require.ErrorContains(t, err, "conflict")

	_, err = runCLI(t, url, token, "delete", "-id", "missing")
	require.ErrorContains(t, err, "not_found")

	_, err = runCLI(t, url, "", "list")
	require.Error(t, err)

	_, err = runCLI(t, url, token, "frobnicate")
	require.ErrorContains(t, err, "unknown command")
}

func TestCLI_Token(t *testing.T) {
	t.Setenv("TRAFFIC_AUTH__JWT_SECRET", testSecret)

	var stdout, stderr bytes.Buffer
	err := run(t.Context(), []string{
		"-config", filepath.Join(t.TempDir(), "missing.yaml"),
		"-env-file", filepath.Join(t.TempDir(), "none.env"),
		"token", "-subject", "alice", "-ttl", "5m",
	}, &stdout, &stderr)
	require.NoError(t, err)

	claims, err := auth.NewVerifier(testSecret, testIssuer).Verify(strings.TrimSpace(stdout.String()))
	require.NoError(t, err)
	require.Equal(t, "alice", claims.Subject)
}
