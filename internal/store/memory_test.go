package store

import (
	"context"
	"testing"
	"time"

	"github.com/shenikar/incident_console/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_SetGet(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()
	page := &models.IncidentPage{Items: []*models.Incident{{ID: "1", Title: "Spill"}}, Total: 1}

	require.NoError(t, s.Set(ctx, IncidentsKey(1, ""), page, time.Minute))

	var got models.IncidentPage
	found, err := s.Get(ctx, IncidentsKey(1, ""), &got)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, *page, got)
}

func TestMemoryStore_ZeroTTLIsNotStored(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, ChoicesKey, "x", 0))
	assert.Equal(t, 0, s.Len())
}

func TestMemoryStore_Expiry(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return now }

	require.NoError(t, s.Set(ctx, ChoicesKey, "cached", 5*time.Minute))

	var v string
	found, _ := s.Get(ctx, ChoicesKey, &v)
	assert.True(t, found)

	now = now.Add(5 * time.Minute)
	found, err := s.Get(ctx, ChoicesKey, &v)
	require.NoError(t, err)
	assert.False(t, found)
	assert.Equal(t, 0, s.Len())
}

func TestMemoryStore_InvalidateBySegment(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	for _, key := range []string{
		IncidentsKey(1, ""),
		IncidentsKey(2, "fire"),
		AttachmentsKey("4"),
		AttachmentsKey("42"),
		IncidentKey("4"),
	} {
		require.NoError(t, s.Set(ctx, key, 1, time.Minute))
	}

	require.NoError(t, s.Invalidate(ctx, AttachmentsKey("4")))
	require.NoError(t, s.Invalidate(ctx, IncidentsPrefix))

	var v int
	found, _ := s.Get(ctx, AttachmentsKey("4"), &v)
	assert.False(t, found)
	found, _ = s.Get(ctx, IncidentsKey(2, "fire"), &v)
	assert.False(t, found)

	found, _ = s.Get(ctx, AttachmentsKey("42"), &v)
	assert.True(t, found, "sibling key with a longer id must survive")
	found, _ = s.Get(ctx, IncidentKey("4"), &v)
	assert.True(t, found)
}

func TestKeys_EscapeSeparators(t *testing.T) {
	assert.Equal(t, "incidents:page=3:search=a%3Ab+c", IncidentsKey(3, "a:b c"))
	assert.Equal(t, "attachments:x%3Ay", AttachmentsKey("x:y"))
	assert.False(t, matches(AttachmentsKey("x:y"), AttachmentsKey("x")))
}
