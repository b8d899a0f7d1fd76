package web

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/shenikar/incident_console/internal/apiclient"
	"github.com/shenikar/incident_console/internal/service"
)

var fieldLabels = map[string]string{
	"incident_title":        "Title",
	"date_of_incident":      "Date",
	"time_of_incident":      "Time",
	"persons_involved_type": "Persons Involved Type",
	"injury_damage_type":    "Injury/Damage Type",
}

// statusFor выбирает код ответа для страницы, отрисованной с ошибкой
func statusFor(err error) int {
	var verr *service.ValidationError
	var reqErr *apiclient.RequestError
	var netErr *apiclient.NetworkError

	switch {
	case errors.As(err, &verr):
		return http.StatusUnprocessableEntity
	case errors.Is(err, service.ErrMissingID):
		return http.StatusBadRequest
	case errors.As(err, &reqErr):
		if reqErr.StatusCode >= 400 && reqErr.StatusCode < 500 {
			return reqErr.StatusCode
		}
		return http.StatusBadGateway
	case errors.Is(err, apiclient.ErrTimeout):
		return http.StatusGatewayTimeout
	case errors.As(err, &netErr):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// describeError возвращает текст для пользователя
func describeError(err error) string {
	var verr *service.ValidationError
	var reqErr *apiclient.RequestError
	var netErr *apiclient.NetworkError

	switch {
	case errors.As(err, &verr):
		labels := make([]string, 0, len(verr.Fields))
		for _, f := range verr.Fields {
			if l, ok := fieldLabels[f]; ok {
				labels = append(labels, l)
			} else {
				labels = append(labels, f)
			}
		}
		return "Please fill in: " + strings.Join(labels, ", ") + "."
	case errors.As(err, &reqErr):
		if reqErr.Detail != "" {
			return reqErr.Detail
		}
		return fmt.Sprintf("The incident service rejected the request (%d %s).", reqErr.StatusCode, http.StatusText(reqErr.StatusCode))
	case errors.Is(err, apiclient.ErrTimeout):
		return "The incident service timed out. Please try again."
	case errors.As(err, &netErr):
		return "The incident service is unavailable."
	default:
		return "Unexpected error."
	}
}

// missingFields отмечает поля, которые нужно подсветить в форме
func missingFields(err error) map[string]bool {
	var verr *service.ValidationError
	if !errors.As(err, &verr) {
		return nil
	}
	missing := make(map[string]bool, len(verr.Fields))
	for _, f := range verr.Fields {
		missing[f] = true
	}
	return missing
}
