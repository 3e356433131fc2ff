package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mchellal/studia/internal/app/models"
	"github.com/mchellal/studia/internal/app/models/dto"
	"github.com/mchellal/studia/internal/app/services"
	"github.com/mchellal/studia/internal/pkg/auth"
)

// Context keys set by the auth middleware
const (
	ContextStudentKey = "student"
	ContextAdminKey   = "admin"
)

// AuthMiddleware resolves bearer tokens to live principals
type AuthMiddleware struct {
	authService *services.AuthService
}

// NewAuthMiddleware creates a new AuthMiddleware
func NewAuthMiddleware(authService *services.AuthService) *AuthMiddleware {
	return &AuthMiddleware{
		authService: authService,
	}
}

// StudentAuth requires a valid student bearer token. The resolved live
// student record is stored in the request context.
func (m *AuthMiddleware) StudentAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, err := auth.ExtractBearerToken(c.GetHeader("Authorization"))
		if err != nil {
			abortUnauthorized(c)
			return
		}

		student, err := m.authService.CurrentStudent(c.Request.Context(), tokenString)
		if err != nil {
			// Malformed token, expired token, missing subject and deleted
			// account all collapse to the same response
			abortUnauthorized(c)
			return
		}

		c.Set(ContextStudentKey, student)
		c.Next()
	}
}

// AdminAuth requires a valid admin bearer token
func (m *AuthMiddleware) AdminAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, err := auth.ExtractBearerToken(c.GetHeader("Authorization"))
		if err != nil {
			abortUnauthorized(c)
			return
		}

		admin, err := m.authService.CurrentAdmin(c.Request.Context(), tokenString)
		if err != nil {
			abortUnauthorized(c)
			return
		}

		c.Set(ContextAdminKey, admin)
		c.Next()
	}
}

// CurrentStudent returns the student resolved by StudentAuth
func CurrentStudent(c *gin.Context) (*models.Student, bool) {
	value, exists := c.Get(ContextStudentKey)
	if !exists {
		return nil, false
	}
	student, ok := value.(*models.Student)
	return student, ok
}

// CurrentAdmin returns the admin resolved by AdminAuth
func CurrentAdmin(c *gin.Context) (*models.Admin, bool) {
	value, exists := c.Get(ContextAdminKey)
	if !exists {
		return nil, false
	}
	admin, ok := value.(*models.Admin)
	return admin, ok
}

// abortUnauthorized writes the single generic resolver failure response
func abortUnauthorized(c *gin.Context) {
	c.Header("WWW-Authenticate", "Bearer")
	errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Could not validate credentials")
	c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
}
