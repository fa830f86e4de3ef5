package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/lautarocloudy/api-cuenta-corrientes/internal/core/domain"
	"github.com/lautarocloudy/api-cuenta-corrientes/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func newAuthRouter(extra ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	handlers := append([]gin.HandlerFunc{AuthMiddleware(testSecret)}, extra...)
	handlers = append(handlers, func(c *gin.Context) {
		userID, _ := GetUserIDFromContext(c)
		role, _ := GetRoleFromContext(c)
		c.JSON(http.StatusOK, gin.H{"user": userID, "role": role})
	})
	r.GET("/private", handlers...)
	return r
}

func doGet(r http.Handler, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/private", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthMiddleware(t *testing.T) {
	valid, err := utils.GenerateJWT("u1", string(domain.RoleAdmin), testSecret, time.Hour, "test")
	require.NoError(t, err)
	expired, err := utils.GenerateJWT("u1", string(domain.RoleAdmin), testSecret, -time.Minute, "test")
	require.NoError(t, err)
	forged, err := utils.GenerateJWT("u1", string(domain.RoleAdmin), "other-secret", time.Hour, "test")
	require.NoError(t, err)

	r := newAuthRouter()

	tests := []struct {
		name   string
		header string
		status int
	}{
		{"missing header", "", http.StatusUnauthorized},
		{"malformed header", "Token abc", http.StatusUnauthorized},
		{"garbage token", "Bearer abc.def.ghi", http.StatusForbidden},
		{"wrong signature", "Bearer " + forged, http.StatusForbidden},
		{"expired", "Bearer " + expired, http.StatusForbidden},
		{"valid", "Bearer " + valid, http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doGet(r, tt.header)
			assert.Equal(t, tt.status, w.Code)
		})
	}

	w := doGet(r, "Bearer "+valid)
	assert.JSONEq(t, `{"user":"u1","role":"admin"}`, w.Body.String())
}

func TestRequireRole(t *testing.T) {
	r := newAuthRouter(RequireRole(domain.RoleAdmin))

	userToken, err := utils.GenerateJWT("u2", string(domain.RoleUser), testSecret, time.Hour, "test")
	require.NoError(t, err)
	adminToken, err := utils.GenerateJWT("u1", string(domain.RoleAdmin), testSecret, time.Hour, "test")
	require.NoError(t, err)

	assert.Equal(t, http.StatusForbidden, doGet(r, "Bearer "+userToken).Code)
	assert.Equal(t, http.StatusOK, doGet(r, "Bearer "+adminToken).Code)
}

func TestRateLimit(t *testing.T) {
	lim, err := NewMemoryLimiter("2-M")
	require.NoError(t, err)

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/login", RateLimit(lim), func(c *gin.Context) { c.Status(http.StatusOK) })

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/login", nil))
		codes = append(codes, w.Code)
	}
	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)

	_, err = NewMemoryLimiter("five per minute")
	assert.Error(t, err)
}
