package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestLogger(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newObservedLogger := func() (*zap.SugaredLogger, *observer.ObservedLogs) {
		core, logs := observer.New(zap.DebugLevel)
		return zap.New(core).Sugar(), logs
	}

	t.Run("logs successful request at info", func(t *testing.T) {
		log, logs := newObservedLogger()
		r := gin.New()
		r.Use(Logger(log))
		r.GET("/weeks/list", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{})
		})

		req := httptest.NewRequest(http.MethodGet, "/weeks/list?status=closed", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		entries := logs.All()
		assert.Len(t, entries, 1)
		assert.Equal(t, zap.InfoLevel, entries[0].Level)
		assert.Equal(t, "HTTP request", entries[0].Message)
	})

	t.Run("logs client error at warn", func(t *testing.T) {
		log, logs := newObservedLogger()
		r := gin.New()
		r.Use(Logger(log))
		r.GET("/missing", func(c *gin.Context) {
			c.JSON(http.StatusNotFound, gin.H{})
		})

		req := httptest.NewRequest(http.MethodGet, "/missing", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		entries := logs.All()
		assert.Len(t, entries, 1)
		assert.Equal(t, zap.WarnLevel, entries[0].Level)
	})

	t.Run("logs server error at error", func(t *testing.T) {
		log, logs := newObservedLogger()
		r := gin.New()
		r.Use(Logger(log))
		r.GET("/broken", func(c *gin.Context) {
			c.JSON(http.StatusInternalServerError, gin.H{})
		})

		req := httptest.NewRequest(http.MethodGet, "/broken", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		entries := logs.All()
		assert.Len(t, entries, 1)
		assert.Equal(t, zap.ErrorLevel, entries[0].Level)
	})
}
