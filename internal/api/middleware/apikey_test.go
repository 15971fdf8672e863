package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestRequireAPIKey(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRouter := func(expected string) *gin.Engine {
		router := gin.New()
		router.GET("/export", RequireAPIKey(expected), func(ctx *gin.Context) {
			ctx.Status(http.StatusOK)
		})

		return router
	}

	t.Run("accepts the right key", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/export", nil)
		req.Header.Set("X-API-Key", "secret")
		resp := httptest.NewRecorder()
		newRouter("secret").ServeHTTP(resp, req)

		assert.Equal(t, http.StatusOK, resp.Code)
	})

	t.Run("rejects a wrong key", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/export", nil)
		req.Header.Set("X-API-Key", "wrong")
		resp := httptest.NewRecorder()
		newRouter("secret").ServeHTTP(resp, req)

		assert.Equal(t, http.StatusUnauthorized, resp.Code)
	})

	t.Run("rejects a missing key", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/export", nil)
		resp := httptest.NewRecorder()
		newRouter("secret").ServeHTTP(resp, req)

		assert.Equal(t, http.StatusUnauthorized, resp.Code)
	})

	t.Run("rejects everything when no key is configured", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/export", nil)
		req.Header.Set("X-API-Key", "")
		resp := httptest.NewRecorder()
		newRouter("").ServeHTTP(resp, req)

		assert.Equal(t, http.StatusUnauthorized, resp.Code)
	})
}
