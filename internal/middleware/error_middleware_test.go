package middleware

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/mchellal/studia/internal/pkg/apperrors"
)

func TestHandleAPIError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name           string
		err            error
		wantStatus     int
		wantAuthHeader bool
	}{
		{
			name:           "invalid credentials",
			err:            apperrors.ErrInvalidCredentials,
			wantStatus:     http.StatusUnauthorized,
			wantAuthHeader: true,
		},
		{
			name:           "invalid token",
			err:            apperrors.ErrTokenInvalid,
			wantStatus:     http.StatusUnauthorized,
			wantAuthHeader: true,
		},
		{
			name:           "expired token",
			err:            apperrors.ErrTokenExpired,
			wantStatus:     http.StatusUnauthorized,
			wantAuthHeader: true,
		},
		{
			name:       "permission denied",
			err:        apperrors.ErrPermissionDenied,
			wantStatus: http.StatusForbidden,
		},
		{
			name:       "duplicate email",
			err:        apperrors.ErrEmailAlreadyExists,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "duplicate department",
			err:        apperrors.ErrDepartmentAlreadyExists,
			wantStatus: http.StatusConflict,
		},
		{
			name:       "student not found",
			err:        apperrors.ErrStudentNotFound,
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "formation not found",
			err:        apperrors.ErrFormationNotFound,
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "wrapped sentinel still matches",
			err:        fmt.Errorf("context: %w", apperrors.ErrDepartmentNotFound),
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "validation failure",
			err:        apperrors.ErrValidationFailed,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "unknown error",
			err:        fmt.Errorf("something unexpected"),
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(recorder)

			HandleAPIError(c, tt.err)

			assert.Equal(t, tt.wantStatus, recorder.Code)
			if tt.wantAuthHeader {
				assert.Equal(t, "Bearer", recorder.Header().Get("WWW-Authenticate"))
			} else {
				assert.Empty(t, recorder.Header().Get("WWW-Authenticate"))
			}
		})
	}
}
