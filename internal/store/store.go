// Package store - кеш запросов консоли с явной инвалидацией.
//
// Значения хранятся в JSON. Ключи состоят из сегментов, разделенных ':',
// и Invalidate удаляет ключ prefix и все ключи под "prefix:".
package store

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/shenikar/incident_console/internal/models"
)

// Store определяет контракт кеша запросов
type Store interface {
	// Get декодирует значение ключа в dst. found=false при промахе или истекшем сроке.
	Get(ctx context.Context, key string, dst any) (found bool, err error)
	// Set сохраняет значение на ttl. При ttl <= 0 ничего не сохраняется.
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	Invalidate(ctx context.Context, prefix string) error
}

const (
	IncidentsPrefix = "incidents"
	ChoicesKey      = "choices"
)

// IncidentsKey - ключ страницы списка инцидентов
func IncidentsKey(page int, search string) string {
	return fmt.Sprintf("%s:page=%d:search=%s", IncidentsPrefix, page, url.QueryEscape(search))
}

// IncidentKey - ключ карточки инцидента
func IncidentKey(id models.ID) string {
	return "incident:" + url.QueryEscape(id.String())
}

// AttachmentsKey - ключ списка вложений одного инцидента
func AttachmentsKey(incidentID models.ID) string {
	return "attachments:" + url.QueryEscape(incidentID.String())
}

func matches(key, prefix string) bool {
	return key == prefix || strings.HasPrefix(key, prefix+":")
}
