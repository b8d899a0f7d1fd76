package middleware

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shenikar/incident_console/internal/apiclient"
	"github.com/sirupsen/logrus"
)

const maxRequestIDLength = 128

// RequestID - middleware, назначающий запросу идентификатор.
// Идентификатор из заголовка X-Request-ID переиспользуется, иначе генерируется uuid.
// Он возвращается в ответе и уходит в удаленный сервис вместе с контекстом.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := strings.TrimSpace(c.GetHeader(apiclient.RequestIDHeader))
		if id == "" || len(id) > maxRequestIDLength {
			id = uuid.NewString()
		}

		c.Header(apiclient.RequestIDHeader, id)
		c.Request = c.Request.WithContext(apiclient.WithRequestID(c.Request.Context(), id))

		c.Next()
	}
}

// AccessLog пишет одну запись на запрос
func AccessLog(log *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		started := time.Now()
		c.Next()

		entry := log.WithFields(logrus.Fields{
			"request_id":  apiclient.RequestIDFrom(c.Request.Context()),
			"http_method": c.Request.Method,
			"path":        c.Request.URL.Path,
			"status":      c.Writer.Status(),
			"duration":    time.Since(started).String(),
		})
		if c.Writer.Status() >= 500 {
			entry.Warn("Request completed with server error")
			return
		}
		entry.Info("Request completed")
	}
}
