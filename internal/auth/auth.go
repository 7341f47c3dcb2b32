// Package auth verifies the bearer tokens that guard the traffic API.
package auth

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	httperr "github.com/aevon-lab/traffic-dashboard/internal/core/errors"
)

// SubjectKey is the gin context key holding the verified token subject.
const SubjectKey = "auth_subject"

const bearerPrefix = "Bearer "

// ErrMissingToken is returned when no bearer token is present.
var ErrMissingToken = errors.New("bearer token required")

// Verifier checks HS256 tokens signed with a shared secret.
type Verifier struct {
	secret []byte
	issuer string
}

// NewVerifier creates a Verifier. An empty issuer disables the iss check.
func NewVerifier(secret, issuer string) *Verifier {
	if secret == "" {
		panic("auth: secret must not be empty")
	}
	return &Verifier{secret: []byte(secret), issuer: issuer}
}

// Verify parses tokenString and returns its claims when the signature,
// expiry and issuer are valid.
func (v *Verifier) Verify(tokenString string) (*jwt.RegisteredClaims, error) {
	if tokenString == "" {
		return nil, ErrMissingToken
	}

	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	}
	if v.issuer != "" {
		opts = append(opts, jwt.WithIssuer(v.issuer))
	}

	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return v.secret, nil
	}, opts...)
	if err != nil {
		return nil, fmt.Errorf("invalid token: %w", err)
	}
	if !token.Valid {
		return nil, errors.New("invalid token")
	}
	return claims, nil
}

// Middleware rejects requests without a valid bearer token with 401.
func (v *Verifier) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, err := v.Verify(bearerToken(c.GetHeader("Authorization")))
		if err != nil {
			slog.Debug("[Auth] Rejected request", "path", c.Request.URL.Path, "error", err)
			c.AbortWithStatusJSON(http.StatusUnauthorized, httperr.New(httperr.CodeUnauthorized, httperr.MsgUnauthorized))
			return
		}

		c.Set(SubjectKey, claims.Subject)
		c.Next()
	}
}

func bearerToken(header string) string {
	if !strings.HasPrefix(header, bearerPrefix) {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(header, bearerPrefix))
}

// MintToken signs an HS256 token for subject that expires after ttl.
// It backs the development token command; production tokens come from the
// identity provider.
func MintToken(secret, issuer, subject string, ttl time.Duration) (string, error) {
	if secret == "" {
		return "", errors.New("secret must not be empty")
	}
	now := time.Now()
	claims := &jwt.RegisteredClaims{
		Subject:   subject,
		Issuer:    issuer,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}
