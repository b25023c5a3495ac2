package middleware

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dtaoOfficial/seminar-hall-backend/internal/delivery/http/helpers"
	"github.com/dtaoOfficial/seminar-hall-backend/internal/domain"
)

// fakeTokenVerifier implements domain.TokenVerifier for tests.
type fakeTokenVerifier struct {
	claims *domain.TokenClaims
	err    error
}

func (f *fakeTokenVerifier) Verify(_ string) (*domain.TokenClaims, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.claims, nil
}

func TestRequireAuth(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
	validClaims := &domain.TokenClaims{UserID: "user-123", Email: "ops@nhce.in", Role: domain.RoleAdmin}

	tests := []struct {
		name         string
		authHeader   string
		verifier     domain.TokenVerifier
		wantStatus   int
		wantBodyCode string
		nextCalled   bool
		wantEmail    string
	}{
		{
			name:       "valid token sets claims and calls next",
			authHeader: "Bearer valid-token",
			verifier:   &fakeTokenVerifier{claims: validClaims},
			wantStatus: http.StatusOK,
			nextCalled: true,
			wantEmail:  "ops@nhce.in",
		},
		{
			name:         "missing authorization header",
			authHeader:   "",
			verifier:     &fakeTokenVerifier{claims: validClaims},
			wantStatus:   http.StatusUnauthorized,
			wantBodyCode: helpers.ErrCodeUnauthorized,
			nextCalled:   false,
		},
		{
			name:         "invalid authorization format no Bearer prefix",
			authHeader:   "Basic abc",
			verifier:     &fakeTokenVerifier{claims: validClaims},
			wantStatus:   http.StatusUnauthorized,
			wantBodyCode: helpers.ErrCodeUnauthorized,
			nextCalled:   false,
		},
		{
			name:         "empty token after Bearer",
			authHeader:   "Bearer ",
			verifier:     &fakeTokenVerifier{claims: validClaims},
			wantStatus:   http.StatusUnauthorized,
			wantBodyCode: helpers.ErrCodeUnauthorized,
			nextCalled:   false,
		},
		{
			name:         "verifier returns error",
			authHeader:   "Bearer bad-token",
			verifier:     &fakeTokenVerifier{err: errors.New("invalid or expired token")},
			wantStatus:   http.StatusUnauthorized,
			wantBodyCode: helpers.ErrCodeUnauthorized,
			nextCalled:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			nextCalled := false
			var capturedEmail string
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true
				if claims, ok := ClaimsFromContext(r.Context()); ok {
					capturedEmail = claims.Email
				}
				w.WriteHeader(http.StatusOK)
			})
			wrap := RequireAuth(tt.verifier, logger)
			handler := wrap(next.ServeHTTP)

			req := httptest.NewRequest(http.MethodGet, "http://test/api/seminars", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			rr := httptest.NewRecorder()

			handler(rr, req)

			require.Equal(t, tt.wantStatus, rr.Code, "status code")
			assert.Equal(t, tt.nextCalled, nextCalled, "next handler called")
			if tt.nextCalled && tt.wantEmail != "" {
				assert.Equal(t, tt.wantEmail, capturedEmail, "email in context")
			}
			if tt.wantStatus != http.StatusOK && tt.wantBodyCode != "" {
				var envelope helpers.APIResponse
				require.NoError(t, json.NewDecoder(rr.Body).Decode(&envelope))
				require.NotNil(t, envelope.Error)
				assert.Equal(t, tt.wantBodyCode, envelope.Error.Code)
			}
		})
	}
}

func TestRequireAdmin(t *testing.T) {
	tests := []struct {
		name       string
		claims     *domain.TokenClaims
		wantStatus int
		nextCalled bool
	}{
		{
			name:       "admin passes through",
			claims:     &domain.TokenClaims{UserID: "u1", Email: "ops@nhce.in", Role: domain.RoleAdmin},
			wantStatus: http.StatusOK,
			nextCalled: true,
		},
		{
			name:       "department role is forbidden",
			claims:     &domain.TokenClaims{UserID: "u2", Email: "cse@nhce.in", Role: domain.RoleDepartment, Department: "CSE"},
			wantStatus: http.StatusForbidden,
			nextCalled: false,
		},
		{
			name:       "no claims in context",
			claims:     nil,
			wantStatus: http.StatusUnauthorized,
			nextCalled: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			nextCalled := false
			handler := RequireAdmin(func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodDelete, "http://test/api/users/u9", nil)
			if tt.claims != nil {
				req = req.WithContext(SetClaims(req.Context(), tt.claims))
			}
			rr := httptest.NewRecorder()

			handler(rr, req)

			require.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, tt.nextCalled, nextCalled)
		})
	}
}
