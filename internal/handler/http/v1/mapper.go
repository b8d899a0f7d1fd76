package v1

import (
	"github.com/shenikar/incident_console/internal/apiclient"
	"github.com/shenikar/incident_console/internal/models"
)

// ModelToIncidentResponse преобразует доменную модель в DTO для ответа
func ModelToIncidentResponse(model *models.Incident, mediaBase string) *IncidentResponse {
	resp := &IncidentResponse{
		ID:              model.ID,
		IncidentNumber:  model.IncidentNumber,
		Draft:           *models.DraftFromIncident(model),
		AttachmentCount: model.NumAttachments(),
		ReportingDate:   model.ReportingDate,
		IsActive:        model.IsActive,
		CreatedAt:       model.CreatedAt,
		UpdatedAt:       model.UpdatedAt,
	}
	if len(model.Attachments) > 0 {
		resp.Attachments = ModelsToAttachmentResponses(model.Attachments, model.ID, mediaBase)
	}
	return resp
}

// ModelsToIncidentPageResponse пропускает пустые элементы и записи без id
func ModelsToIncidentPageResponse(page *models.IncidentPage, number int, mediaBase string) *IncidentPageResponse {
	items := make([]*IncidentResponse, 0, len(page.Items))
	for _, model := range page.Items {
		if model == nil || model.ID.IsZero() {
			continue
		}
		items = append(items, ModelToIncidentResponse(model, mediaBase))
	}
	return &IncidentPageResponse{Items: items, Total: page.Total, Page: number}
}

// ModelToAttachmentResponse строит ссылку на файл, если сервис ее не прислал
func ModelToAttachmentResponse(model *models.Attachment, incidentID models.ID, mediaBase string) *AttachmentResponse {
	if !model.IncidentID.IsZero() {
		incidentID = model.IncidentID
	}
	fileURL := model.FileURL
	if fileURL == "" && model.File != "" {
		fileURL = apiclient.MediaURL(mediaBase, incidentID, model.File)
	}
	return &AttachmentResponse{
		ID:          model.ID,
		IncidentID:  incidentID,
		FileName:    model.DisplayName(),
		FileURL:     fileURL,
		FileSize:    model.FileSize,
		SizeLabel:   model.HumanSize(),
		Type:        model.Type,
		Description: model.Description,
		UploadedAt:  model.UploadedAt,
	}
}

func ModelsToAttachmentResponses(list []*models.Attachment, incidentID models.ID, mediaBase string) []*AttachmentResponse {
	responses := make([]*AttachmentResponse, 0, len(list))
	for _, model := range list {
		if model == nil {
			continue
		}
		responses = append(responses, ModelToAttachmentResponse(model, incidentID, mediaBase))
	}
	return responses
}

// SubmissionToResponse переносит исходы загрузок в том же порядке
func SubmissionToResponse(sub *models.Submission, mediaBase string) *SubmissionResponse {
	resp := &SubmissionResponse{
		Incident: ModelToIncidentResponse(sub.Record, mediaBase),
		Uploads:  make([]UploadResponse, len(sub.Uploads)),
	}
	for i, u := range sub.Uploads {
		resp.Uploads[i] = UploadResponse{
			FileName: u.FileName,
			Size:     u.Size,
			Status:   u.Status,
			Error:    u.Error,
		}
		if u.Attachment != nil {
			resp.Uploads[i].Attachment = ModelToAttachmentResponse(u.Attachment, sub.Record.ID, mediaBase)
		}
	}
	return resp
}
