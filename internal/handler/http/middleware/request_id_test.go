package middleware

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shenikar/incident_console/internal/apiclient"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(log *logrus.Logger) (*gin.Engine, *string) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(RequestID(), AccessLog(log))

	seen := new(string)
	router.GET("/ping", func(c *gin.Context) {
		*seen = apiclient.RequestIDFrom(c.Request.Context())
		c.String(http.StatusOK, "pong")
	})
	return router, seen
}

func TestRequestID_ReusesIncomingHeader(t *testing.T) {
	log := logrus.New()
	log.SetOutput(&bytes.Buffer{})
	router, seen := newTestRouter(log)

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(apiclient.RequestIDHeader, "abc-123")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, "abc-123", w.Header().Get(apiclient.RequestIDHeader))
	assert.Equal(t, "abc-123", *seen)
}

func TestRequestID_GeneratesWhenMissingOrTooLong(t *testing.T) {
	log := logrus.New()
	log.SetOutput(&bytes.Buffer{})
	router, seen := newTestRouter(log)

	for _, incoming := range []string{"", strings.Repeat("x", maxRequestIDLength+1)} {
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		if incoming != "" {
			req.Header.Set(apiclient.RequestIDHeader, incoming)
		}
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		got := w.Header().Get(apiclient.RequestIDHeader)
		_, err := uuid.Parse(got)
		require.NoError(t, err)
		assert.Equal(t, got, *seen)
	}
}

func TestAccessLog_WritesRequestFields(t *testing.T) {
	buf := &bytes.Buffer{}
	log := logrus.New()
	log.SetOutput(buf)
	log.SetFormatter(&logrus.JSONFormatter{})
	router, _ := newTestRouter(log)

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(apiclient.RequestIDHeader, "req-1")
	router.ServeHTTP(httptest.NewRecorder(), req)

	out := buf.String()
	assert.Contains(t, out, `"request_id":"req-1"`)
	assert.Contains(t, out, `"path":"/ping"`)
	assert.Contains(t, out, `"status":200`)
}
