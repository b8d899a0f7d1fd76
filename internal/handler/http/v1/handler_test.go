package v1

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shenikar/incident_console/internal/apiclient"
	"github.com/shenikar/incident_console/internal/config"
	"github.com/shenikar/incident_console/internal/models"
	"github.com/shenikar/incident_console/internal/service"
	"github.com/shenikar/incident_console/internal/service/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const testMediaBase = "http://media.test/mediafiles"

// newTestHandler создает новый экземпляр Handler с мокированным сервисом
func newTestHandler(t *testing.T) (*Handler, *mocks.MockIncidentService, *gin.Engine) {
	ctrl := gomock.NewController(t)
	mockService := mocks.NewMockIncidentService(ctrl)

	logger := logrus.New()
	logger.SetOutput(io.Discard) // Отключаем вывод логов в тестах

	cfg := &config.Config{MediaBaseURL: testMediaBase}

	handler := NewHandler(mockService, logger, cfg)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	api := router.Group("/api/v1")
	handler.RegisterRoutes(api)

	return handler, mockService, router
}

// makeRequest - вспомогательная функция для выполнения HTTP-запросов
func makeRequest(router *gin.Engine, method, url string, body io.Reader, contentType string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, url, body)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func draftJSON(t *testing.T) *bytes.Buffer {
	body, err := json.Marshal(map[string]string{
		"incident_title":        "Forklift collision",
		"date_of_incident":      "2024-05-01",
		"time_of_incident":      "09:30",
		"persons_involved_type": "EMPLOYEE",
		"injury_damage_type":    "NEAR_MISS",
	})
	require.NoError(t, err)
	return bytes.NewBuffer(body)
}

func TestListIncidents_Success(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	count := 3
	page := &models.IncidentPage{
		Items: []*models.Incident{
			{ID: "1", Title: "Spill", AttachmentCount: &count},
			{ID: "2", Title: "Fire", Attachments: []*models.Attachment{{ID: "9", File: "a.pdf"}}},
		},
		Total: 12,
	}

	mockService.EXPECT().ListIncidents(gomock.Any(), 2, "spill").Return(page, nil)

	w := makeRequest(router, http.MethodGet, "/api/v1/incidents?page=2&search=spill", nil, "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp IncidentPageResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 12, resp.Total)
	assert.Equal(t, 2, resp.Page)
	require.Len(t, resp.Items, 2)
	assert.Equal(t, 3, resp.Items[0].AttachmentCount)
	assert.Equal(t, 1, resp.Items[1].AttachmentCount)
	assert.Equal(t, "Spill", resp.Items[0].Title)
	assert.Equal(t, testMediaBase+"/incidents/2/attachments/a.pdf", resp.Items[1].Attachments[0].FileURL)
}

func TestListIncidents_SkipsEmptyItems(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	page := &models.IncidentPage{
		Items: []*models.Incident{{ID: "1", Title: "Spill"}, nil, {Title: "No id"}},
		Total: 3,
	}

	mockService.EXPECT().ListIncidents(gomock.Any(), 1, "").Return(page, nil)

	w := makeRequest(router, http.MethodGet, "/api/v1/incidents", nil, "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp IncidentPageResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Items, 1)
	assert.Equal(t, models.ID("1"), resp.Items[0].ID)
	assert.Equal(t, 3, resp.Total)
}

func TestListIncidents_DefaultsToFirstPage(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().ListIncidents(gomock.Any(), 1, "").Return(&models.IncidentPage{}, nil)

	w := makeRequest(router, http.MethodGet, "/api/v1/incidents", nil, "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"items":[],"total":0,"page":1}`, w.Body.String())
}

func TestListIncidents_InvalidPage(t *testing.T) {
	_, _, router := newTestHandler(t)

	w := makeRequest(router, http.MethodGet, "/api/v1/incidents?page=abc", nil, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = makeRequest(router, http.MethodGet, "/api/v1/incidents?page=-1", nil, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListIncidents_ServiceUnavailable(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	netErr := apiclient.NewNetworkError(http.MethodGet, "http://api.test", errors.New("connection refused"))

	mockService.EXPECT().ListIncidents(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, fmt.Errorf("service: could not list incidents: %w", netErr))

	w := makeRequest(router, http.MethodGet, "/api/v1/incidents", nil, "")
	assert.Equal(t, http.StatusBadGateway, w.Code)
	assert.Contains(t, w.Body.String(), "incident service unavailable")
}

func TestGetIncident_NotFound(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	reqErr := &apiclient.RequestError{StatusCode: http.StatusNotFound, Detail: "Not found."}

	mockService.EXPECT().GetIncident(gomock.Any(), models.ID("404")).Return(nil, reqErr)

	w := makeRequest(router, http.MethodGet, "/api/v1/incidents/404", nil, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Not found.")
}

func TestGetIncident_ServerErrorBecomesBadGateway(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	reqErr := &apiclient.RequestError{StatusCode: http.StatusInternalServerError}

	mockService.EXPECT().GetIncident(gomock.Any(), models.ID("7")).Return(nil, reqErr)

	w := makeRequest(router, http.MethodGet, "/api/v1/incidents/7", nil, "")
	assert.Equal(t, http.StatusBadGateway, w.Code)
}

func TestCreateIncident_JSON(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	sub := &models.Submission{Record: &models.Incident{ID: "7", Title: "Forklift collision"}}

	mockService.EXPECT().
		CreateIncident(gomock.Any(), gomock.Any(), gomock.Nil()).
		DoAndReturn(func(_ context.Context, d *models.Draft, _ []models.PendingFile) (*models.Submission, error) {
			assert.Equal(t, "Forklift collision", d.Title)
			assert.Equal(t, models.WasteNotApplicable, d.WasteType)
			return sub, nil
		})

	w := makeRequest(router, http.MethodPost, "/api/v1/incidents", draftJSON(t), "application/json")
	require.Equal(t, http.StatusCreated, w.Code)

	var resp SubmissionResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, models.ID("7"), resp.Incident.ID)
	assert.Empty(t, resp.Uploads)
}

func TestCreateIncident_InvalidJSON(t *testing.T) {
	_, _, router := newTestHandler(t)

	w := makeRequest(router, http.MethodPost, "/api/v1/incidents", bytes.NewBufferString(`{"incident_title": "x"`), "application/json")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid request body")
}

func TestCreateIncident_ValidationError(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().CreateIncident(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, &service.ValidationError{Fields: []string{"incident_title"}})

	w := makeRequest(router, http.MethodPost, "/api/v1/incidents", bytes.NewBufferString(`{}`), "application/json")

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.JSONEq(t, `{"error":"validation failed","fields":["incident_title"]}`, w.Body.String())
}

func TestCreateIncident_MultipartFilesKeepOrder(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	body := &bytes.Buffer{}
	mw := multipart.NewWriter(body)
	require.NoError(t, mw.WriteField("incident_title", "Gas leak"))
	require.NoError(t, mw.WriteField("date_of_incident", "2024-05-01"))
	for _, name := range []string{"a.pdf", "b.jpg"} {
		fw, err := mw.CreateFormFile("files", name)
		require.NoError(t, err)
		_, err = fw.Write([]byte("content of " + name))
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())

	mockService.EXPECT().
		CreateIncident(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, d *models.Draft, files []models.PendingFile) (*models.Submission, error) {
			assert.Equal(t, "Gas leak", d.Title)
			require.Len(t, files, 2)
			assert.Equal(t, "a.pdf", files[0].Name)
			assert.Equal(t, "b.jpg", files[1].Name)

			rc, err := files[1].Open()
			require.NoError(t, err)
			defer rc.Close()
			content, err := io.ReadAll(rc)
			require.NoError(t, err)
			assert.Equal(t, "content of b.jpg", string(content))

			return &models.Submission{
				Record: &models.Incident{ID: "7"},
				Uploads: []models.UploadOutcome{
					{FileName: "a.pdf", Status: models.UploadUploaded, Attachment: &models.Attachment{ID: "1", File: "incidents/7/attachments/a.pdf"}},
					{FileName: "b.jpg", Status: models.UploadFailed, Error: "storage unavailable"},
				},
			}, nil
		})

	w := makeRequest(router, http.MethodPost, "/api/v1/incidents", body, mw.FormDataContentType())
	require.Equal(t, http.StatusCreated, w.Code)

	var resp SubmissionResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Uploads, 2)
	assert.Equal(t, models.UploadUploaded, resp.Uploads[0].Status)
	assert.Equal(t, testMediaBase+"/incidents/7/attachments/a.pdf", resp.Uploads[0].Attachment.FileURL)
	assert.Equal(t, models.UploadFailed, resp.Uploads[1].Status)
}

func TestCreateIncident_MultipartSkipsEmptyFilePart(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	body := &bytes.Buffer{}
	mw := multipart.NewWriter(body)
	require.NoError(t, mw.WriteField("incident_title", "Gas leak"))
	_, err := mw.CreateFormFile("files", "")
	require.NoError(t, err)
	fw, err := mw.CreateFormFile("files", "a.pdf")
	require.NoError(t, err)
	_, err = fw.Write([]byte("pdf"))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	mockService.EXPECT().
		CreateIncident(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ *models.Draft, files []models.PendingFile) (*models.Submission, error) {
			require.Len(t, files, 1)
			assert.Equal(t, "a.pdf", files[0].Name)
			return &models.Submission{
				Record:  &models.Incident{ID: "7"},
				Uploads: []models.UploadOutcome{{FileName: "a.pdf", Status: models.UploadUploaded}},
			}, nil
		})

	w := makeRequest(router, http.MethodPost, "/api/v1/incidents", body, mw.FormDataContentType())
	require.Equal(t, http.StatusCreated, w.Code)

	var resp SubmissionResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Uploads, 1)
	assert.Equal(t, models.UploadUploaded, resp.Uploads[0].Status)
}

func TestUpdateIncident_Success(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().
		UpdateIncident(gomock.Any(), models.ID("7"), gomock.Any(), gomock.Any()).
		Return(&models.Submission{Record: &models.Incident{ID: "7"}}, nil)

	w := makeRequest(router, http.MethodPatch, "/api/v1/incidents/7", draftJSON(t), "application/json")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestUpdateIncident_Timeout(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	netErr := apiclient.NewNetworkError(http.MethodPatch, "http://api.test", context.DeadlineExceeded)

	mockService.EXPECT().UpdateIncident(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, fmt.Errorf("service: could not update incident 7: %w", netErr))

	w := makeRequest(router, http.MethodPatch, "/api/v1/incidents/7", draftJSON(t), "application/json")
	assert.Equal(t, http.StatusGatewayTimeout, w.Code)
}

func TestDeleteIncident_Success(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().DeleteIncident(gomock.Any(), models.ID("7")).Return(nil)

	w := makeRequest(router, http.MethodDelete, "/api/v1/incidents/7", nil, "")
	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestListAttachments_BuildsMediaURL(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().ListAttachments(gomock.Any(), models.ID("42")).Return([]*models.Attachment{
		{ID: "1", File: "/mediafiles/incidents/42/attachments/report.pdf", FileSize: 1536, Type: models.AttachmentDocument},
	}, nil)

	w := makeRequest(router, http.MethodGet, "/api/v1/incidents/42/attachments", nil, "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp []AttachmentResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	assert.Equal(t, "report.pdf", resp[0].FileName)
	assert.Equal(t, "1.5 KB", resp[0].SizeLabel)
	assert.Equal(t, testMediaBase+"/incidents/42/attachments/report.pdf", resp[0].FileURL)
	assert.Equal(t, models.ID("42"), resp[0].IncidentID)
}

func TestListAttachments_EmptyIsArray(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().ListAttachments(gomock.Any(), models.ID("42")).Return([]*models.Attachment{}, nil)

	w := makeRequest(router, http.MethodGet, "/api/v1/incidents/42/attachments", nil, "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestDeleteAttachment_Success(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().DeleteAttachment(gomock.Any(), models.ID("7"), models.ID("100")).Return(nil)

	w := makeRequest(router, http.MethodDelete, "/api/v1/incidents/7/attachments/100", nil, "")
	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestGetChoices(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().ResolveChoices(gomock.Any()).Return(&models.ChoiceSet{
		Categories: []models.Choice{{Value: "FIRE", Label: "Fire"}},
	})

	w := makeRequest(router, http.MethodGet, "/api/v1/choices", nil, "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"categories":[{"value":"FIRE","label":"Fire"}]`)
}

func TestHealthCheck(t *testing.T) {
	_, _, router := newTestHandler(t)

	w := makeRequest(router, http.MethodGet, "/api/v1/system/health", nil, "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}
