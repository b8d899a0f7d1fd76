package v1

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shenikar/incident_console/internal/apiclient"
	"github.com/shenikar/incident_console/internal/service"
	"github.com/sirupsen/logrus"
)

// respondError переводит ошибку сервиса в HTTP-ответ
func respondError(c *gin.Context, log *logrus.Entry, err error) {
	var verr *service.ValidationError
	var reqErr *apiclient.RequestError
	var netErr *apiclient.NetworkError

	switch {
	case errors.As(err, &verr):
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: "validation failed", Fields: verr.Fields})
	case errors.Is(err, service.ErrMissingID):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	case errors.As(err, &reqErr):
		status := reqErr.StatusCode
		if status < http.StatusBadRequest || status >= http.StatusInternalServerError {
			status = http.StatusBadGateway
		}
		msg := reqErr.Detail
		if msg == "" {
			msg = http.StatusText(reqErr.StatusCode)
		}
		log.WithError(err).Warn("Incident service rejected request")
		c.JSON(status, ErrorResponse{Error: msg})
	case errors.Is(err, apiclient.ErrTimeout):
		log.WithError(err).Error("Incident service timed out")
		c.JSON(http.StatusGatewayTimeout, ErrorResponse{Error: "incident service timed out"})
	case errors.As(err, &netErr):
		log.WithError(err).Error("Incident service unavailable")
		c.JSON(http.StatusBadGateway, ErrorResponse{Error: "incident service unavailable"})
	default:
		log.WithError(err).Error("Unexpected error")
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
	}
}
