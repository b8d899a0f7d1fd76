package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path"
	"strconv"
	"strings"

	"github.com/shenikar/incident_console/internal/models"
)

// IncidentAPI - типизированные операции REST контракта сервиса инцидентов
type IncidentAPI struct {
	client *Client
}

func NewIncidentAPI(client *Client) *IncidentAPI {
	return &IncidentAPI{client: client}
}

// ListIncidents запрашивает страницу списка. Страница за концом списка
// (сервис отвечает 404) возвращается пустой, а не ошибкой.
func (a *IncidentAPI) ListIncidents(ctx context.Context, q models.ListQuery) (*models.IncidentPage, error) {
	params := url.Values{}
	if q.Page > 0 {
		params.Set("page", strconv.Itoa(q.Page))
	}
	if q.Search != "" {
		params.Set("search", q.Search)
	}

	var raw json.RawMessage
	if err := a.client.Get(ctx, a.client.Endpoint("incidents"), params, &raw); err != nil {
		if q.Page > 1 && StatusCode(err) == http.StatusNotFound {
			return &models.IncidentPage{Items: []*models.Incident{}}, nil
		}
		return nil, err
	}
	return NormalizeListResponse(raw)
}

func (a *IncidentAPI) GetIncident(ctx context.Context, id models.ID) (*models.Incident, error) {
	incident := &models.Incident{}
	if err := a.client.Get(ctx, a.client.Endpoint("incidents", id.String()), nil, incident); err != nil {
		return nil, err
	}
	if incident.ID.IsZero() {
		incident.ID = id
	}
	return incident, nil
}

// CreateIncident отправляет полный набор полей. Ответ может быть
// обернут в {"message", "incident"} или быть самой записью.
func (a *IncidentAPI) CreateIncident(ctx context.Context, draft *models.Draft) (*models.Incident, error) {
	var raw json.RawMessage
	if err := a.client.Post(ctx, a.client.Endpoint("incidents"), draft, &raw); err != nil {
		return nil, err
	}
	incident := &models.Incident{}
	if err := unwrapRecord(raw, "incident", incident); err != nil {
		return nil, err
	}
	if incident.ID.IsZero() {
		return nil, errors.New("apiclient: created incident has no id")
	}
	return incident, nil
}

// UpdateIncident отправляет редактируемые поля частичным обновлением (PATCH)
func (a *IncidentAPI) UpdateIncident(ctx context.Context, id models.ID, draft *models.Draft) (*models.Incident, error) {
	var raw json.RawMessage
	if err := a.client.Patch(ctx, a.client.Endpoint("incidents", id.String()), draft, &raw); err != nil {
		return nil, err
	}
	incident := &models.Incident{}
	if err := unwrapRecord(raw, "incident", incident); err != nil {
		return nil, err
	}
	if incident.ID.IsZero() {
		incident.ID = id
	}
	return incident, nil
}

func (a *IncidentAPI) DeleteIncident(ctx context.Context, id models.ID) error {
	return a.client.Delete(ctx, a.client.Endpoint("incidents", id.String()))
}

func (a *IncidentAPI) GetChoices(ctx context.Context) (*models.ChoiceSet, error) {
	set := &models.ChoiceSet{}
	if err := a.client.Get(ctx, a.client.Endpoint("incidents", "choices"), nil, set); err != nil {
		return nil, err
	}
	return set, nil
}

func (a *IncidentAPI) ListAttachments(ctx context.Context, incidentID models.ID) ([]*models.Attachment, error) {
	var raw json.RawMessage
	if err := a.client.Get(ctx, a.client.Endpoint("incidents", incidentID.String(), "attachments"), nil, &raw); err != nil {
		return nil, err
	}
	attachments, _, err := normalizeList[*models.Attachment](raw, "attachments")
	if err != nil {
		return nil, fmt.Errorf("attachments of %s: %w", incidentID, err)
	}
	for _, att := range attachments {
		if att.IncidentID.IsZero() {
			att.IncidentID = incidentID
		}
	}
	return attachments, nil
}

// UploadAttachment загружает один файл к существующему инциденту
func (a *IncidentAPI) UploadAttachment(ctx context.Context, incidentID models.ID, fileName string, content io.Reader, attachmentType models.AttachmentType) (*models.Attachment, error) {
	var raw json.RawMessage
	fields := map[string]string{"attachment_type": string(attachmentType)}
	endpoint := a.client.Endpoint("incidents", incidentID.String(), "upload_attachment")
	if err := a.client.PostMultipart(ctx, endpoint, fields, "file", fileName, content, &raw); err != nil {
		return nil, err
	}
	att := &models.Attachment{}
	if len(bytes.TrimSpace(raw)) > 0 {
		if err := unwrapRecord(raw, "attachment", att); err != nil {
			return nil, err
		}
	}
	if att.IncidentID.IsZero() {
		att.IncidentID = incidentID
	}
	return att, nil
}

func (a *IncidentAPI) DeleteAttachment(ctx context.Context, id models.ID) error {
	return a.client.Delete(ctx, a.client.Endpoint("attachments", id.String()))
}

// NormalizeListResponse приводит ответ списка к {items, total}.
// Сервис отдает либо пагинированный конверт {"results", "count"}, либо голый массив.
func NormalizeListResponse(raw []byte) (*models.IncidentPage, error) {
	items, total, err := normalizeList[*models.Incident](raw, "")
	if err != nil {
		return nil, err
	}
	return &models.IncidentPage{Items: items, Total: total}, nil
}

// normalizeList принимает голый массив или объект со списком под "results"
// либо под itemsKey (список вложений приходит как {"count", "attachments"})
func normalizeList[T any](raw []byte, itemsKey string) ([]T, int, error) {
	trimmed := bytes.TrimSpace(raw)
	switch {
	case len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")):
		return []T{}, 0, nil

	case trimmed[0] == '[':
		items := []T{}
		if err := json.Unmarshal(trimmed, &items); err != nil {
			return nil, 0, fmt.Errorf("failed to decode list: %w", err)
		}
		return items, len(items), nil

	case trimmed[0] == '{':
		var envelope map[string]json.RawMessage
		if err := json.Unmarshal(trimmed, &envelope); err != nil {
			return nil, 0, fmt.Errorf("failed to decode paginated list: %w", err)
		}
		rawItems, ok := envelope["results"]
		if !ok && itemsKey != "" {
			rawItems, ok = envelope[itemsKey]
		}
		if !ok {
			return nil, 0, errors.New("paginated list has no results")
		}
		items := []T{}
		if err := json.Unmarshal(rawItems, &items); err != nil {
			return nil, 0, fmt.Errorf("failed to decode paginated list: %w", err)
		}
		if items == nil {
			items = []T{}
		}
		total := len(items)
		if rawCount, ok := envelope["count"]; ok {
			var count *int
			if err := json.Unmarshal(rawCount, &count); err != nil {
				return nil, 0, fmt.Errorf("failed to decode list count: %w", err)
			}
			if count != nil {
				total = *count
			}
		}
		return items, total, nil
	}
	return nil, 0, fmt.Errorf("unexpected list response shape: %.20q", trimmed)
}

// unwrapRecord декодирует raw[key], если это объект, иначе весь raw
func unwrapRecord(raw []byte, key string, dst any) error {
	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return fmt.Errorf("failed to decode %s response: %w", key, err)
	}
	if inner, ok := envelope[key]; ok {
		inner = bytes.TrimSpace(inner)
		if len(inner) > 0 && inner[0] == '{' {
			raw = inner
		}
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return fmt.Errorf("failed to decode %s: %w", key, err)
	}
	return nil
}

// MediaURL строит прямую ссылку на файл вложения:
// <mediaBase>/incidents/<incidentID>/attachments/<имя файла>
func MediaURL(mediaBase string, incidentID models.ID, file string) string {
	u, err := url.Parse(mediaBase)
	if err != nil || file == "" {
		return ""
	}
	u.RawPath = ""
	u.Path = strings.TrimRight(u.Path, "/") + "/incidents/" + incidentID.String() + "/attachments/" + path.Base(file)
	return u.String()
}
