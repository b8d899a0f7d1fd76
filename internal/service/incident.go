package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/shenikar/incident_console/internal/config"
	"github.com/shenikar/incident_console/internal/models"
	"github.com/shenikar/incident_console/internal/store"
	"github.com/sirupsen/logrus"
)

//go:generate mockgen -source=incident.go -destination=mocks/mock_incident.go -package=mocks

// ErrMissingID возвращается, когда операция вызвана без идентификатора
var ErrMissingID = errors.New("service: identifier is required")

// IncidentAPI определяет контракт удаленного сервиса инцидентов
type IncidentAPI interface {
	ListIncidents(ctx context.Context, q models.ListQuery) (*models.IncidentPage, error)
	GetIncident(ctx context.Context, id models.ID) (*models.Incident, error)
	CreateIncident(ctx context.Context, draft *models.Draft) (*models.Incident, error)
	UpdateIncident(ctx context.Context, id models.ID, draft *models.Draft) (*models.Incident, error)
	DeleteIncident(ctx context.Context, id models.ID) error
	GetChoices(ctx context.Context) (*models.ChoiceSet, error)
	ListAttachments(ctx context.Context, incidentID models.ID) ([]*models.Attachment, error)
	UploadAttachment(ctx context.Context, incidentID models.ID, fileName string, content io.Reader, attachmentType models.AttachmentType) (*models.Attachment, error)
	DeleteAttachment(ctx context.Context, id models.ID) error
}

// IncidentService определяет контракт логики экранов консоли
type IncidentService interface {
	ListIncidents(ctx context.Context, page int, search string) (*models.IncidentPage, error)
	GetIncident(ctx context.Context, id models.ID) (*models.Incident, error)
	CreateIncident(ctx context.Context, draft *models.Draft, files []models.PendingFile) (*models.Submission, error)
	UpdateIncident(ctx context.Context, id models.ID, draft *models.Draft, files []models.PendingFile) (*models.Submission, error)
	DeleteIncident(ctx context.Context, id models.ID) error
	ListAttachments(ctx context.Context, incidentID models.ID) ([]*models.Attachment, error)
	DeleteAttachment(ctx context.Context, incidentID, attachmentID models.ID) error
	ResolveChoices(ctx context.Context) *models.ChoiceSet
}

type incidentService struct {
	api      IncidentAPI
	cache    store.Store
	logger   *logrus.Logger
	validate *validator.Validate

	queryTTL   time.Duration
	choicesTTL time.Duration
}

func NewIncidentService(api IncidentAPI, cache store.Store, logger *logrus.Logger, cfg *config.Config) IncidentService {
	return &incidentService{
		api:        api,
		cache:      cache,
		logger:     logger,
		validate:   newValidator(),
		queryTTL:   cfg.QueryStaleTime,
		choicesTTL: cfg.ChoicesTTL,
	}
}

// ListIncidents возвращает страницу списка. Страница меньше 1 считается первой.
func (s *incidentService) ListIncidents(ctx context.Context, page int, search string) (*models.IncidentPage, error) {
	if page < 1 {
		page = 1
	}
	search = strings.TrimSpace(search)

	log := s.logger.WithFields(logrus.Fields{
		"service": "incident",
		"method":  "ListIncidents",
		"page":    page,
		"search":  search,
	})

	key := store.IncidentsKey(page, search)
	cached := &models.IncidentPage{}
	if s.readCache(ctx, key, cached, s.queryTTL) {
		log.Debug("Incidents served from cache")
		return cached, nil
	}

	result, err := s.api.ListIncidents(ctx, models.ListQuery{Page: page, Search: search})
	if err != nil {
		log.WithError(err).Error("Failed to list incidents from incident service")
		return nil, fmt.Errorf("service: could not list incidents: %w", err)
	}

	s.writeCache(ctx, key, result, s.queryTTL)
	log.WithField("count", len(result.Items)).Info("Incidents listed successfully")
	return result, nil
}

// GetIncident получает инцидент по ID
func (s *incidentService) GetIncident(ctx context.Context, id models.ID) (*models.Incident, error) {
	if id.IsZero() {
		return nil, ErrMissingID
	}
	log := s.logger.WithFields(logrus.Fields{
		"service":     "incident",
		"method":      "GetIncident",
		"incident_id": id,
	})

	key := store.IncidentKey(id)
	cached := &models.Incident{}
	if s.readCache(ctx, key, cached, s.queryTTL) {
		return cached, nil
	}

	incident, err := s.api.GetIncident(ctx, id)
	if err != nil {
		log.WithError(err).Warn("Failed to get incident from incident service")
		return nil, fmt.Errorf("service: could not get incident %s: %w", id, err)
	}

	s.writeCache(ctx, key, incident, s.queryTTL)
	log.Info("Incident fetched successfully")
	return incident, nil
}

// DeleteIncident запрашивает удаление инцидента. Сервис удаляет мягко.
func (s *incidentService) DeleteIncident(ctx context.Context, id models.ID) error {
	if id.IsZero() {
		return ErrMissingID
	}
	log := s.logger.WithFields(logrus.Fields{
		"service":     "incident",
		"method":      "DeleteIncident",
		"incident_id": id,
	})
	log.Info("Attempting to delete incident")

	if err := s.api.DeleteIncident(ctx, id); err != nil {
		log.WithError(err).Error("Failed to delete incident in incident service")
		return fmt.Errorf("service: could not delete incident %s: %w", id, err)
	}

	s.invalidate(ctx, store.IncidentsPrefix, store.IncidentKey(id), store.AttachmentsKey(id))
	log.Info("Incident deleted successfully")
	return nil
}

// readCache возвращает true при попадании. Ошибки кеша считаются промахом.
func (s *incidentService) readCache(ctx context.Context, key string, dst any, ttl time.Duration) bool {
	if ttl <= 0 {
		return false
	}
	found, err := s.cache.Get(ctx, key, dst)
	if err != nil {
		s.logger.WithError(err).WithField("key", key).Warn("Failed to read cache")
		return false
	}
	return found
}

func (s *incidentService) writeCache(ctx context.Context, key string, value any, ttl time.Duration) {
	if err := s.cache.Set(ctx, key, value, ttl); err != nil {
		s.logger.WithError(err).WithField("key", key).Warn("Failed to write cache")
	}
}

// invalidate сбрасывает ключи после мутации. Ошибка кеша не отменяет мутацию.
func (s *incidentService) invalidate(ctx context.Context, prefixes ...string) {
	for _, prefix := range prefixes {
		if err := s.cache.Invalidate(ctx, prefix); err != nil {
			s.logger.WithError(err).WithField("key", prefix).Warn("Failed to invalidate cache")
		}
	}
}
