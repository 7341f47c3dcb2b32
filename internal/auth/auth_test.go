package auth

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"

	httperr "github.com/aevon-lab/traffic-dashboard/internal/core/errors"
)

const (
	testSecret = "test-secret-0123456789"
	testIssuer = "traffic-dashboard"
)

func TestMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	valid, err := MintToken(testSecret, testIssuer, "user-1", time.Minute)
	require.NoError(t, err)
	expired, err := MintToken(testSecret, testIssuer, "user-1", -time.Minute)
	require.NoError(t, err)
	wrongSecret, err := MintToken("another-secret-0123456789", testIssuer, "user-1", time.Minute)
	require.NoError(t, err)
	wrongIssuer, err := MintToken(testSecret, "someone-else", "user-1", time.Minute)
	require.NoError(t, err)

	tests := []struct {
		name           string
		header         string
		expectedStatus int
	}{
		{name: "no header", expectedStatus: http.StatusUnauthorized},
		{name: "wrong scheme", header: "Basic " + valid, expectedStatus: http.StatusUnauthorized},
		{name: "garbage token", header: "Bearer not-a-jwt", expectedStatus: http.StatusUnauthorized},
		{name: "expired", header: "Bearer " + expired, expectedStatus: http.StatusUnauthorized},
		{name: "wrong secret", header: "Bearer " + wrongSecret, expectedStatus: http.StatusUnauthorized},
		{name: "wrong issuer", header: "Bearer " + wrongIssuer, expectedStatus: http.StatusUnauthorized},
		{name: "valid", header: "Bearer " + valid, expectedStatus: http.StatusOK},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r := gin.New()
			r.GET("/traffic", NewVerifier(testSecret, testIssuer).Middleware(), func(c *gin.Context) {
				c.String(http.StatusOK, c.GetString(SubjectKey))
			})

			req := httptest.NewRequest(http.MethodGet, "/traffic", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			resp := httptest.NewRecorder()
			r.ServeHTTP(resp, req)

			require.Equal(t, tc.expectedStatus, resp.Code)
			if tc.expectedStatus == http.StatusOK {
				require.Equal(t, "user-1", resp.Body.String())
				return
			}

			var body httperr.ErrorResponse
			require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
			require.False(t, body.Success)
			require.Equal(t, "Unauthorized", body.Error)
		})
	}
}

func TestVerify_RejectsOtherAlgorithms(t *testing.T) {
	claims := &jwt.RegisteredClaims{
		Subject:   "user-1",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Minute)),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)

	_, err = NewVerifier(testSecret, "").Verify(token)
	require.Error(t, err)
}

func TestVerify_RequiresExpiry(t *testing.T) {
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, &jwt.RegisteredClaims{Subject: "user-1"}).
		SignedString([]byte(testSecret))
	require.NoError(t, err)

	_, err = NewVerifier(testSecret, "").Verify(token)
	require.Error(t, err)
}

func TestVerify_EmptyToken(t *testing.T) {
	_, err := NewVerifier(testSecret, "").Verify("")
	require.ErrorIs(t, err, ErrMissingToken)
}
