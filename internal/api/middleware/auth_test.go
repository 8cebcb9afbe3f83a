package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-DayCenterService/internal/domain"
)

func TestAuth(t *testing.T) {
	tests := []struct {
		name       string
		userID     string
		userRole   string
		wantStatus int
		wantID     int64
		wantRole   domain.ActorRole
	}{
		{name: "operator by default", userID: "12", wantStatus: http.StatusOK, wantID: 12, wantRole: domain.RoleOperator},
		{name: "explicit admin", userID: "12", userRole: "admin", wantStatus: http.StatusOK, wantID: 12, wantRole: domain.RoleAdmin},
		{name: "missing user id", wantStatus: http.StatusUnauthorized},
		{name: "non-numeric user id", userID: "abc", wantStatus: http.StatusUnauthorized},
		{name: "negative user id", userID: "-4", wantStatus: http.StatusUnauthorized},
		{name: "unknown role", userID: "12", userRole: "manager", wantStatus: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotID int64
			var gotRole domain.ActorRole
			var called bool

			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				called = true
				gotID, _ = GetUserID(r.Context())
				gotRole, _ = GetUserRole(r.Context())
			})

			req := httptest.NewRequest(http.MethodGet, "/api/v1/bookings/1", nil)
			if tt.userID != "" {
				req.Header.Set("X-User-ID", tt.userID)
			}
			if tt.userRole != "" {
				req.Header.Set("X-User-Role", tt.userRole)
			}

			rec := httptest.NewRecorder()
			Auth(next).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)

			if tt.wantStatus == http.StatusOK {
				require.True(t, called)
				assert.Equal(t, tt.wantID, gotID)
				assert.Equal(t, tt.wantRole, gotRole)
			} else {
				assert.False(t, called)
			}
		})
	}
}
