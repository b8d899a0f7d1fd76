package service

import (
	"context"
	"fmt"

	"github.com/shenikar/incident_console/internal/models"
	"github.com/shenikar/incident_console/internal/store"
	"github.com/sirupsen/logrus"
)

// ListAttachments возвращает вложения инцидента. Без id запрос не выполняется.
func (s *incidentService) ListAttachments(ctx context.Context, incidentID models.ID) ([]*models.Attachment, error) {
	if incidentID.IsZero() {
		return nil, ErrMissingID
	}
	log := s.logger.WithFields(logrus.Fields{
		"service":     "incident",
		"method":      "ListAttachments",
		"incident_id": incidentID,
	})

	key := store.AttachmentsKey(incidentID)
	var cached []*models.Attachment
	if s.readCache(ctx, key, &cached, s.queryTTL) {
		return cached, nil
	}

	attachments, err := s.api.ListAttachments(ctx, incidentID)
	if err != nil {
		log.WithError(err).Warn("Failed to list attachments from incident service")
		return nil, fmt.Errorf("service: could not list attachments of %s: %w", incidentID, err)
	}

	s.writeCache(ctx, key, attachments, s.queryTTL)
	return attachments, nil
}

// DeleteAttachment удаляет вложение и сбрасывает только список вложений его инцидента
func (s *incidentService) DeleteAttachment(ctx context.Context, incidentID, attachmentID models.ID) error {
	if incidentID.IsZero() || attachmentID.IsZero() {
		return ErrMissingID
	}
	log := s.logger.WithFields(logrus.Fields{
		"service":       "incident",
		"method":        "DeleteAttachment",
		"incident_id":   incidentID,
		"attachment_id": attachmentID,
	})

	if err := s.api.DeleteAttachment(ctx, attachmentID); err != nil {
		log.WithError(err).Error("Failed to delete attachment in incident service")
		return fmt.Errorf("service: could not delete attachment %s: %w", attachmentID, err)
	}

	s.invalidate(ctx, store.AttachmentsKey(incidentID))
	log.Info("Attachment deleted successfully")
	return nil
}
