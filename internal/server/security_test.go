package server

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAuthMiddleware(t *testing.T) {
	apiKey := "secret-key"
	middleware := AuthMiddleware(apiKey, nil, NewSuspiciousActivityDetector())

	tests := []struct {
		name           string
		providedKey    string
		path           string
		expectedStatus int
	}{
		{
			name:           "Valid API Key",
			providedKey:    apiKey,
			path:           "/api/v1/leaderboard",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Invalid API Key",
			providedKey:    "wrong-key",
			path:           "/api/v1/leaderboard",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "Missing API Key",
			providedKey:    "",
			path:           "/api/v1/experiments",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "Public Path - Healthz",
			providedKey:    "",
			path:           "/healthz",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Public Path - Version",
			providedKey:    "",
			path:           "/version",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Public Path - Metrics",
			providedKey:    "",
			path:           "/metrics",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Public Path - Swagger",
			providedKey:    "",
			path:           "/swagger/index.html",
			expectedStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", tt.path, nil)
			if tt.providedKey != "" {
				req.Header.Set(HeaderAPIKey, tt.providedKey)
			}
			rec := httptest.NewRecorder()

			handler := middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusOK)
			}))

			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
		})
	}
}

func TestExtractIP(t *testing.T) {
	tests := []struct {
		name           string
		remoteAddr     string
		forwardedFor   string
		trustedProxies []string
		want           string
	}{
		{
			name:       "Direct connection",
			remoteAddr: "203.0.113.7:5100",
			want:       "203.0.113.7",
		},
		{
			name:           "Forwarded header from untrusted peer ignored",
			remoteAddr:     "203.0.113.7:5100",
			forwardedFor:   "198.51.100.1",
			trustedProxies: []string{"10.0.0.1"},
			want:           "203.0.113.7",
		},
		{
			name:           "Trusted proxy by exact address",
			remoteAddr:     "10.0.0.1:443",
			forwardedFor:   "198.51.100.1",
			trustedProxies: []string{"10.0.0.1"},
			want:           "198.51.100.1",
		},
		{
			name:           "Trusted proxy by CIDR block",
			remoteAddr:     "10.0.4.20:443",
			forwardedFor:   "198.51.100.1",
			trustedProxies: []string{"10.0.0.0/16"},
			want:           "198.51.100.1",
		},
		{
			name:           "Rightmost forwarded entry wins",
			remoteAddr:     "10.0.0.1:443",
			forwardedFor:   "198.51.100.1, 192.0.2.44",
			trustedProxies: []string{"10.0.0.1"},
			want:           "192.0.2.44",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/api/v1/leaderboard", nil)
			req.RemoteAddr = tt.remoteAddr
			if tt.forwardedFor != "" {
				req.Header.Set(HeaderForwardedFor, tt.forwardedFor)
			}

			assert.Equal(t, tt.want, extractIP(req, tt.trustedProxies))
		})
	}
}

func TestAuthMiddleware_RecordsFailedAttempts(t *testing.T) {
	detector := NewSuspiciousActivityDetector()
	middleware := AuthMiddleware("secret-key", nil, detector)

	handler := middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest("GET", "/api/v1/experiments", nil)
	req.RemoteAddr = "10.0.0.9:4321"
	req.Header.Set(HeaderAPIKey, "wrong-key")

	for i := 0; i < 3; i++ {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	}

	detector.mu.Lock()
	count := detector.failedAuthByIP["10.0.0.9"]
	detector.mu.Unlock()
	assert.Equal(t, 3, count)
}
