package api

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"fitbuddy/server/internal/repository"
	"fitbuddy/server/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "middleware-test-secret"

func init() {
	gin.SetMode(gin.TestMode)
}

func protectedRouter(secret string) *gin.Engine {
	router := gin.New()
	router.GET("/protected", AuthMiddleware(secret), func(c *gin.Context) {
		userID, err := getUserIDFromContext(c)
		if err != nil {
			abortWithError(c, http.StatusInternalServerError, err.Error())
			return
		}
		c.JSON(http.StatusOK, gin.H{"userId": userID})
	})
	return router
}

func signToken(t *testing.T, secret, userID string, expiresAt time.Time) string {
	t.Helper()
	claims := &jwtClaims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-time.Minute)),
			Issuer:    "fitbuddy",
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return token
}

func TestAuthMiddleware(t *testing.T) {
	router := protectedRouter(testSecret)

	do := func(header string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		return rec
	}

	t.Run("valid token", func(t *testing.T) {
		token := signToken(t, testSecret, "user-123", time.Now().Add(time.Hour))
		rec := do("Bearer " + token)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "user-123")
	})
	t.Run("missing header", func(t *testing.T) {
		assert.Equal(t, http.StatusUnauthorized, do("").Code)
	})
	t.Run("malformed header", func(t *testing.T) {
		assert.Equal(t, http.StatusUnauthorized, do("Token abc").Code)
	})
	t.Run("expired token", func(t *testing.T) {
		token := signToken(t, testSecret, "user-123", time.Now().Add(-time.Hour))
		rec := do("Bearer " + token)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Contains(t, rec.Body.String(), "expired")
	})
	t.Run("wrong secret", func(t *testing.T) {
		token := signToken(t, "other-secret", "user-123", time.Now().Add(time.Hour))
		assert.Equal(t, http.StatusUnauthorized, do("Bearer "+token).Code)
	})
}

func TestHandleServiceError(t *testing.T) {
	status := func(err error) int {
		rec := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(rec)
		handleServiceError(c, err)
		return rec.Code
	}

	assert.Equal(t, http.StatusNotFound, status(service.ErrPlanNotFound))
	assert.Equal(t, http.StatusNotFound, status(service.ErrWorkoutNotFound))
	assert.Equal(t, http.StatusNotFound, status(service.ErrDayNotFound))
	assert.Equal(t, http.StatusConflict, status(service.ErrToggleConflict))
	assert.Equal(t, http.StatusConflict, status(service.ErrUserAlreadyExists))
	assert.Equal(t, http.StatusUnauthorized, status(service.ErrAuthenticationFailed))
	assert.Equal(t, http.StatusBadRequest, status(service.ErrInvalidContentType))
	assert.Equal(t, http.StatusServiceUnavailable, status(repository.ErrUnavailable))
	assert.Equal(t, http.StatusInternalServerError, status(errors.New("boom")))

	t.Run("validation error carries fields", func(t *testing.T) {
		rec := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(rec)
		handleServiceError(c, service.NewValidationError(map[string]string{
			"planName": "Plan name is required",
		}))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "Validation failed")
		assert.Contains(t, rec.Body.String(), "planName")
	})
}
