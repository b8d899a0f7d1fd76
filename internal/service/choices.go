package service

import (
	"context"

	"github.com/shenikar/incident_console/internal/choices"
	"github.com/shenikar/incident_console/internal/models"
	"github.com/shenikar/incident_console/internal/store"
)

// ResolveChoices возвращает перечисления с сервиса, а при любой ошибке -
// статическую таблицу. Результат в обоих случаях кешируется на choicesTTL.
func (s *incidentService) ResolveChoices(ctx context.Context) *models.ChoiceSet {
	cached := &models.ChoiceSet{}
	if s.readCache(ctx, store.ChoicesKey, cached, s.choicesTTL) {
		return cached
	}

	var resolved *models.ChoiceSet
	remote, err := s.api.GetChoices(ctx)
	if err != nil {
		s.logger.WithError(err).WithField("method", "ResolveChoices").Warn("Failed to load dynamic choices, using fallback")
		resolved = choices.Fallback()
	} else {
		resolved = choices.Merge(remote)
	}

	s.writeCache(ctx, store.ChoicesKey, resolved, s.choicesTTL)
	return resolved
}
