package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc, timeout time.Duration) (*Client, *httptest.Server) {
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})

	client, err := New(srv.URL+"/api/v1/incident_reporting", timeout, logger)
	require.NoError(t, err)
	return client, srv
}

func TestNew_RejectsRelativeURL(t *testing.T) {
	_, err := New("/api", time.Second, logrus.New())
	assert.Error(t, err)
}

func TestEndpoint(t *testing.T) {
	client, err := New("http://example.com/api/v1/incident_reporting/", time.Second, logrus.New())
	require.NoError(t, err)

	assert.Equal(t, "http://example.com/api/v1/incident_reporting/incidents/", client.Endpoint("incidents"))
	assert.Equal(t, "http://example.com/api/v1/incident_reporting/incidents/42/attachments/", client.Endpoint("incidents", "42", "attachments"))
}

func TestGet_SendsHeadersAndQuery(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/v1/incident_reporting/incidents/", r.URL.Path)
		assert.Equal(t, "2", r.URL.Query().Get("page"))
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		assert.Equal(t, "req-1", r.Header.Get(RequestIDHeader))
		_, _ = w.Write([]byte(`{"ok": true}`))
	}, time.Second)

	var out map[string]bool
	ctx := WithRequestID(context.Background(), "req-1")
	err := client.Get(ctx, client.Endpoint("incidents"), url.Values{"page": {"2"}}, &out)
	require.NoError(t, err)
	assert.True(t, out["ok"])
}

func TestPostAndPatch_EncodeJSONBody(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		_, _ = w.Write([]byte(`{"method": "` + r.Method + `", "title": "` + body["title"] + `"}`))
	}, time.Second)

	var out map[string]string
	require.NoError(t, client.Post(context.Background(), client.Endpoint("incidents"), map[string]string{"title": "a"}, &out))
	assert.Equal(t, map[string]string{"method": "POST", "title": "a"}, out)

	require.NoError(t, client.Patch(context.Background(), client.Endpoint("incidents", "1"), map[string]string{"title": "b"}, &out))
	assert.Equal(t, map[string]string{"method": "PATCH", "title": "b"}, out)
}

func TestDelete_NoContent(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		w.WriteHeader(http.StatusNoContent)
	}, time.Second)

	assert.NoError(t, client.Delete(context.Background(), client.Endpoint("incidents", "1")))
}

func TestRequestError_CarriesStatusAndPayload(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"incident_title": ["An incident with this title already exists."]}`))
	}, time.Second)

	err := client.Post(context.Background(), client.Endpoint("incidents"), map[string]string{}, nil)
	require.Error(t, err)

	var reqErr *RequestError
	require.True(t, errors.As(err, &reqErr))
	assert.Equal(t, http.StatusBadRequest, reqErr.StatusCode)
	assert.JSONEq(t, `{"incident_title": ["An incident with this title already exists."]}`, string(reqErr.Payload))
	assert.Equal(t, "incident_title: An incident with this title already exists.", reqErr.Detail)
	assert.Equal(t, http.StatusBadRequest, StatusCode(err))
	assert.False(t, errors.Is(err, ErrTimeout))
}

func TestRequestError_NonJSONBody(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream exploded", http.StatusBadGateway)
	}, time.Second)

	err := client.Get(context.Background(), client.Endpoint("incidents"), nil, nil)

	var reqErr *RequestError
	require.True(t, errors.As(err, &reqErr))
	assert.Nil(t, reqErr.Payload)
	assert.Equal(t, "upstream exploded", reqErr.Detail)
}

func TestTimeout_IsDistinctFromServerError(t *testing.T) {
	release := make(chan struct{})
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}, 50*time.Millisecond)
	defer close(release)

	err := client.Get(context.Background(), client.Endpoint("incidents"), nil, nil)
	require.Error(t, err)

	assert.True(t, errors.Is(err, ErrTimeout))
	var netErr *NetworkError
	require.True(t, errors.As(err, &netErr))
	assert.True(t, netErr.Timeout())
	assert.Equal(t, 0, StatusCode(err))
}

func TestUnreachable_IsNetworkErrorWithoutTimeout(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	addr := srv.URL
	srv.Close()

	client, err := New(addr, time.Second, logrus.New())
	require.NoError(t, err)

	err = client.Get(context.Background(), client.Endpoint("incidents"), nil, nil)
	var netErr *NetworkError
	require.True(t, errors.As(err, &netErr))
	assert.False(t, errors.Is(err, ErrTimeout))
}

func TestExtractDetail(t *testing.T) {
	cases := map[string]string{
		`{"detail": "Not found."}`:                        "Not found.",
		`{"message": "Incident deleted"}`:                 "Incident deleted",
		`{"non_field_errors": ["Bad date"]}`:              "Bad date",
		`{"b": ["second"], "a": ["first"]}`:               "a: first; b: second",
		`{"date_of_incident": "Date cannot be in future"}`: "date_of_incident: Date cannot be in future",
		`[]`: "",
		``:   "",
	}
	for body, want := range cases {
		assert.Equal(t, want, extractDetail([]byte(body)), body)
	}
}
