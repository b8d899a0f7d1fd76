package v1

import (
	"time"

	"github.com/shenikar/incident_console/internal/models"
)

// ListIncidentsQuery параметры списка инцидентов
type ListIncidentsQuery struct {
	Page   int    `form:"page" validate:"omitempty,min=1"`
	Search string `form:"search" validate:"max=255"`
}

// IncidentResponse DTO для ответа с информацией об инциденте
// @Description DTO для ответа с информацией об инциденте
type IncidentResponse struct {
	ID             models.ID `json:"id"`
	IncidentNumber string    `json:"incident_number,omitempty"`
	models.Draft

	AttachmentCount int                   `json:"attachment_count"`
	Attachments     []*AttachmentResponse `json:"attachments,omitempty"`
	ReportingDate   *time.Time            `json:"reporting_date,omitempty"`
	IsActive        *bool                 `json:"is_active,omitempty"`
	CreatedAt       *time.Time            `json:"created_at,omitempty"`
	UpdatedAt       *time.Time            `json:"updated_at,omitempty"`
}

// IncidentPageResponse нормализованная страница списка
// @Description Страница списка инцидентов
type IncidentPageResponse struct {
	Items []*IncidentResponse `json:"items"`
	Total int                 `json:"total"`
	Page  int                 `json:"page"`
}

// AttachmentResponse DTO вложения со ссылкой на файл
// @Description DTO вложения
type AttachmentResponse struct {
	ID          models.ID             `json:"id"`
	IncidentID  models.ID             `json:"incident"`
	FileName    string                `json:"filename"`
	FileURL     string                `json:"file_url"`
	FileSize    int64                 `json:"file_size"`
	SizeLabel   string                `json:"size_label"`
	Type        models.AttachmentType `json:"attachment_type"`
	Description string                `json:"description,omitempty"`
	UploadedAt  *time.Time            `json:"uploaded_at,omitempty"`
}

// UploadResponse исход загрузки одного файла
type UploadResponse struct {
	FileName   string              `json:"file_name"`
	Size       int64               `json:"size"`
	Status     models.UploadStatus `json:"status"`
	Error      string              `json:"error,omitempty"`
	Attachment *AttachmentResponse `json:"attachment,omitempty"`
}

// SubmissionResponse результат создания или обновления: запись и исходы загрузок
// @Description Результат отправки формы
type SubmissionResponse struct {
	Incident *IncidentResponse `json:"incident"`
	Uploads  []UploadResponse  `json:"uploads"`
}

// ErrorResponse тело ответа с ошибкой
type ErrorResponse struct {
	Error  string   `json:"error"`
	Fields []string `json:"fields,omitempty"`
}
