package apiclient

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sort"
	"strings"
)

// ErrTimeout - признак того, что запрос не уложился в таймаут.
// Проверяется через errors.Is(err, ErrTimeout).
var ErrTimeout = errors.New("request timed out")

// NetworkError - сбой транспорта: сервис недоступен или запрос превысил таймаут
type NetworkError struct {
	Method  string
	URL     string
	Err     error
	timeout bool
}

// NewNetworkError оборачивает ошибку транспорта и определяет, был ли это таймаут
func NewNetworkError(method, url string, err error) *NetworkError {
	return &NetworkError{Method: method, URL: url, Err: err, timeout: isTimeout(err)}
}

func (e *NetworkError) Error() string {
	if e.timeout {
		return fmt.Sprintf("apiclient: %s %s: %v: %v", e.Method, e.URL, ErrTimeout, e.Err)
	}
	return fmt.Sprintf("apiclient: %s %s: %v", e.Method, e.URL, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

func (e *NetworkError) Timeout() bool { return e.timeout }

func (e *NetworkError) Is(target error) bool {
	return target == ErrTimeout && e.timeout
}

// RequestError - ответ сервиса со статусом вне 2xx
type RequestError struct {
	Method     string
	URL        string
	StatusCode int
	Payload    json.RawMessage
	Detail     string
}

func (e *RequestError) Error() string {
	msg := fmt.Sprintf("apiclient: %s %s: %d %s", e.Method, e.URL, e.StatusCode, http.StatusText(e.StatusCode))
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	return msg
}

// StatusCode возвращает HTTP статус из ошибки сервиса или 0
func StatusCode(err error) int {
	var reqErr *RequestError
	if errors.As(err, &reqErr) {
		return reqErr.StatusCode
	}
	return 0
}

// Detail возвращает сообщение сервиса, если оно есть, иначе текст ошибки
func Detail(err error) string {
	var reqErr *RequestError
	if errors.As(err, &reqErr) && reqErr.Detail != "" {
		return reqErr.Detail
	}
	return err.Error()
}

const maxTextDetail = 200

// extractDetail достает сообщение об ошибке из тела ответа.
// Поддерживает {"detail": ...}, {"message": ...}, {"error": ...} и
// ошибки полей вида {"field": ["msg"]}.
func extractDetail(body []byte) string {
	body = bytes.TrimSpace(body)
	if len(body) == 0 {
		return ""
	}

	var obj map[string]json.RawMessage
	if err := json.Unmarshal(body, &obj); err != nil {
		if json.Valid(body) {
			return ""
		}
		text := string(body)
		if len(text) > maxTextDetail {
			text = text[:maxTextDetail]
		}
		return text
	}

	for _, key := range []string{"detail", "message", "error"} {
		var s string
		if raw, ok := obj[key]; ok && json.Unmarshal(raw, &s) == nil && s != "" {
			return s
		}
	}

	fields := make([]string, 0, len(obj))
	for k := range obj {
		fields = append(fields, k)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, field := range fields {
		msg := firstMessage(obj[field])
		if msg == "" {
			continue
		}
		if field == "non_field_errors" {
			parts = append(parts, msg)
		} else {
			parts = append(parts, field+": "+msg)
		}
	}
	return strings.Join(parts, "; ")
}

func firstMessage(raw json.RawMessage) string {
	var list []string
	if err := json.Unmarshal(raw, &list); err == nil && len(list) > 0 {
		return list[0]
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	return ""
}
