package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"activity-api/pkg/logger"
)

func adminHandler(t *testing.T, secret string) http.Handler {
	t.Helper()
	log, err := logger.New("error")
	require.NoError(t, err)

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	return AdminAuth(secret, log)(next)
}

func signToken(t *testing.T, secret string, method jwt.SigningMethod) string {
	t.Helper()
	token := jwt.NewWithClaims(method, jwt.MapClaims{
		"sub": "admin",
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func TestAdminAuth_EmptySecretDisablesGuard(t *testing.T) {
	h := adminHandler(t, "")

	req := httptest.NewRequest(http.MethodPost, "/init-data", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAdminAuth_ValidToken(t *testing.T) {
	const secret = "test-secret"
	h := adminHandler(t, secret)

	req := httptest.NewRequest(http.MethodPost, "/init-data", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, secret, jwt.SigningMethodHS256))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAdminAuth_Rejections(t *testing.T) {
	const secret = "test-secret"

	tests := []struct {
		name        string
		authHeader  string
		wantMessage string
	}{
		{
			name:        "missing header",
			wantMessage: "Missing admin token",
		},
		{
			name:        "non-bearer header",
			authHeader:  "Basic abc123",
			wantMessage: "Missing admin token",
		},
		{
			name:        "wrong secret",
			authHeader:  "Bearer " + signToken(t, "other-secret", jwt.SigningMethodHS256),
			wantMessage: "Invalid admin token",
		},
		{
			name:        "garbage token",
			authHeader:  "Bearer not.a.jwt",
			wantMessage: "Invalid admin token",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := adminHandler(t, secret)

			req := httptest.NewRequest(http.MethodPost, "/init-data", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusUnauthorized, rec.Code)

			var body map[string]interface{}
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, false, body["success"])
			assert.Equal(t, tt.wantMessage, body["message"])
		})
	}
}

func TestAdminAuth_ExpiredToken(t *testing.T) {
	const secret = "test-secret"
	h := adminHandler(t, secret)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "admin",
		"exp": time.Now().Add(-time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/init-data", nil)
	req.Header.Set("Authorization", "Bearer "+signed)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
