package service

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shenikar/incident_console/internal/models"
	"github.com/shenikar/incident_console/internal/store"
	"github.com/sirupsen/logrus"
)

// ValidationError перечисляет незаполненные обязательные поля черновика
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return "missing required fields: " + strings.Join(e.Fields, ", ")
}

// newValidator называет поля по json-тегам, как их видит сервис
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

func (s *incidentService) validateDraft(draft *models.Draft) error {
	if draft == nil {
		return &ValidationError{Fields: []string{"incident_title"}}
	}
	draft.Trim()
	if draft.WasteType == "" {
		draft.WasteType = models.WasteNotApplicable
	}

	err := s.validate.Struct(draft)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("service: could not validate draft: %w", err)
	}
	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, fe.Field())
	}
	return &ValidationError{Fields: fields}
}

// CreateIncident создает запись, затем по очереди загружает файлы.
// Ошибка создания возвращается целиком, ошибки загрузок - только в исходах.
func (s *incidentService) CreateIncident(ctx context.Context, draft *models.Draft, files []models.PendingFile) (*models.Submission, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "incident",
		"method":  "CreateIncident",
	})

	if err := s.validateDraft(draft); err != nil {
		log.WithError(err).Warn("Draft rejected before submit")
		return nil, err
	}

	log.WithField("title", draft.Title).Info("Attempting to create incident")
	record, err := s.api.CreateIncident(ctx, draft)
	if err != nil {
		log.WithError(err).Error("Failed to create incident in incident service")
		return nil, fmt.Errorf("service: could not create incident: %w", err)
	}
	s.invalidate(ctx, store.IncidentsPrefix)

	sub := &models.Submission{Record: record}
	sub.Uploads = s.uploadFiles(ctx, record.ID, files)

	log.WithFields(logrus.Fields{
		"incident_id": record.ID,
		"uploaded":    sub.Count(models.UploadUploaded),
		"skipped":     sub.Count(models.UploadSkipped),
		"failed":      sub.Count(models.UploadFailed),
	}).Info("Incident created successfully")
	return sub, nil
}

// UpdateIncident отправляет частичное обновление и догружает новые файлы
func (s *incidentService) UpdateIncident(ctx context.Context, id models.ID, draft *models.Draft, files []models.PendingFile) (*models.Submission, error) {
	if id.IsZero() {
		return nil, ErrMissingID
	}
	log := s.logger.WithFields(logrus.Fields{
		"service":     "incident",
		"method":      "UpdateIncident",
		"incident_id": id,
	})

	if err := s.validateDraft(draft); err != nil {
		log.WithError(err).Warn("Draft rejected before submit")
		return nil, err
	}

	record, err := s.api.UpdateIncident(ctx, id, draft)
	if err != nil {
		log.WithError(err).Error("Failed to update incident in incident service")
		return nil, fmt.Errorf("service: could not update incident %s: %w", id, err)
	}
	s.invalidate(ctx, store.IncidentsPrefix, store.IncidentKey(id), store.AttachmentsKey(id))

	sub := &models.Submission{Record: record}
	sub.Uploads = s.uploadFiles(ctx, id, files)

	log.WithFields(logrus.Fields{
		"uploaded": sub.Count(models.UploadUploaded),
		"skipped":  sub.Count(models.UploadSkipped),
		"failed":   sub.Count(models.UploadFailed),
	}).Info("Incident updated successfully")
	return sub, nil
}

// uploadFiles загружает файлы строго последовательно в порядке выбора.
// Файл больше MaxUploadSize пропускается без открытия.
func (s *incidentService) uploadFiles(ctx context.Context, incidentID models.ID, files []models.PendingFile) []models.UploadOutcome {
	if len(files) == 0 {
		return nil
	}
	log := s.logger.WithFields(logrus.Fields{
		"service":     "incident",
		"method":      "uploadFiles",
		"incident_id": incidentID,
	})

	outcomes := make([]models.UploadOutcome, 0, len(files))
	for _, f := range files {
		outcome := models.UploadOutcome{FileName: f.Name, Size: f.Size}

		if f.Size > models.MaxUploadSize {
			outcome.Status = models.UploadSkipped
			outcome.Error = fmt.Sprintf("file exceeds %s limit", models.HumanSize(models.MaxUploadSize))
			log.WithFields(logrus.Fields{"file": f.Name, "size": f.Size}).Warn("Skipping file: too large")
			outcomes = append(outcomes, outcome)
			continue
		}

		attachment, err := s.uploadOne(ctx, incidentID, f)
		if err != nil {
			outcome.Status = models.UploadFailed
			outcome.Error = err.Error()
			log.WithError(err).WithField("file", f.Name).Warn("Failed to upload attachment")
		} else {
			outcome.Status = models.UploadUploaded
			outcome.Attachment = attachment
		}
		outcomes = append(outcomes, outcome)
	}

	for _, o := range outcomes {
		if o.Status == models.UploadUploaded {
			s.invalidate(ctx, store.IncidentsPrefix, store.IncidentKey(incidentID), store.AttachmentsKey(incidentID))
			break
		}
	}
	return outcomes
}

func (s *incidentService) uploadOne(ctx context.Context, incidentID models.ID, f models.PendingFile) (*models.Attachment, error) {
	if f.Open == nil {
		return nil, errors.New("file content is not available")
	}
	content, err := f.Open()
	if err != nil {
		return nil, fmt.Errorf("could not open %s: %w", f.Name, err)
	}
	defer content.Close()

	return s.api.UploadAttachment(ctx, incidentID, f.Name, content, models.AttachmentDocument)
}
