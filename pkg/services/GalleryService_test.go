package services

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/adampresley/scoutgallery/pkg/models"
	"github.com/adampresley/scoutgallery/pkg/storage"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestGalleryService(backend storage.Backend) GalleryService {
	return NewGalleryService(GalleryServiceConfig{
		Backend: backend,
	})
}

func assertCatalogComplete(t *testing.T, g models.Gallery) {
	t.Helper()

	for _, album := range models.Catalog {
		images, ok := g[string(album.ID)]
		assert.True(t, ok, "missing album %s", album.ID)
		assert.NotNil(t, images, "nil images for album %s", album.ID)
	}
}

func TestGalleryReadEmptySlot(t *testing.T) {
	service := newTestGalleryService(storage.NewMemoryBackend())

	g := service.Read(context.Background())

	assertCatalogComplete(t, g)
	assert.Len(t, g, len(models.Catalog))
	assert.False(t, g.HasImages())
}

func TestGalleryReadMalformedSlot(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{name: "not json", data: "{{{"},
		{name: "array", data: `["a","b"]`},
		{name: "string", data: `"gallery"`},
		{name: "number", data: `42`},
		{name: "null", data: `null`},
		{name: "empty", data: ``},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			backend := storage.NewMemoryBackend()
			require.NoError(t, backend.Put(context.Background(), DefaultGallerySlot, []byte(tt.data)))

			g := newTestGalleryService(backend).Read(context.Background())

			if diff := cmp.Diff(models.NewGallery(), g); diff != "" {
				t.Fatalf("unexpected gallery (-want +got):\n%s", diff)
			}
		})
	}
}

func TestGalleryReadBackendErrorRecovers(t *testing.T) {
	g := newTestGalleryService(failingBackend{}).Read(context.Background())

	if diff := cmp.Diff(models.NewGallery(), g); diff != "" {
		t.Fatalf("unexpected gallery (-want +got):\n%s", diff)
	}
}

func TestGalleryReadMigratesMissingAlbums(t *testing.T) {
	backend := storage.NewMemoryBackend()
	require.NoError(t, backend.Put(context.Background(), DefaultGallerySlot, []byte(`{"perkemahan": ["u1","u2"]}`)))

	g := newTestGalleryService(backend).Read(context.Background())

	want := models.NewGallery()
	want["perkemahan"] = []string{"u1", "u2"}

	if diff := cmp.Diff(want, g); diff != "" {
		t.Fatalf("unexpected gallery (-want +got):\n%s", diff)
	}
}

func TestGalleryReadKeepsUnknownAlbums(t *testing.T) {
	backend := storage.NewMemoryBackend()
	require.NoError(t, backend.Put(context.Background(), DefaultGallerySlot, []byte(`{"pramuka-lama": ["old"]}`)))

	g := newTestGalleryService(backend).Read(context.Background())

	assertCatalogComplete(t, g)
	assert.Equal(t, []string{"old"}, g["pramuka-lama"])
	assert.NotContains(t, g.AllURLs(), "old")
}

func TestGalleryReadMalformedEntries(t *testing.T) {
	backend := storage.NewMemoryBackend()
	data := `{"lomba":"oops","perkemahan":[1,2],"upacara":null,"old":{"a":1},"lainnya":["x"]}`
	require.NoError(t, backend.Put(context.Background(), DefaultGallerySlot, []byte(data)))

	g := newTestGalleryService(backend).Read(context.Background())

	assertCatalogComplete(t, g)
	assert.Empty(t, g.Images(models.AlbumLomba))
	assert.Empty(t, g.Images(models.AlbumPerkemahan))
	assert.Empty(t, g.Images(models.AlbumUpacara))
	assert.Equal(t, []string{"x"}, g.Images(models.AlbumLainnya))
	assert.NotContains(t, g, "old")
}

func TestGalleryWriteKeepsUndecodableUnknownEntries(t *testing.T) {
	ctx := context.Background()
	backend := storage.NewMemoryBackend()
	data := `{"legacy":{"note":"v1"},"notes":"free text","old":["o"],"lomba":["x"],"upacara":"oops"}`
	require.NoError(t, backend.Put(ctx, DefaultGallerySlot, []byte(data)))

	service := newTestGalleryService(backend)
	require.NoError(t, service.Write(ctx, service.Read(ctx)))

	stored, err := backend.Get(ctx, DefaultGallerySlot)
	require.NoError(t, err)

	var raw map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(stored, &raw))

	assert.Equal(t, `{"note":"v1"}`, string(raw["legacy"]))
	assert.Equal(t, `"free text"`, string(raw["notes"]))
	assert.Equal(t, `["o"]`, string(raw["old"]))
	assert.Equal(t, `["x"]`, string(raw["lomba"]))
	assert.Equal(t, `[]`, string(raw["upacara"]))
	assert.Len(t, raw, len(models.Catalog)+3)
}

func TestGalleryWriteKeepsUndecodableEntriesAcrossMutations(t *testing.T) {
	ctx := context.Background()
	backend := storage.NewMemoryBackend()
	require.NoError(t, backend.Put(ctx, DefaultGallerySlot, []byte(`{"legacy":{"note":"v1"},"lomba":["a","b"]}`)))

	service := newTestGalleryService(backend)

	_, err := service.RemoveImage(ctx, models.AlbumLomba, 0)
	require.NoError(t, err)

	first, err := backend.Get(ctx, DefaultGallerySlot)
	require.NoError(t, err)

	require.NoError(t, service.Write(ctx, service.Read(ctx)))

	second, err := backend.Get(ctx, DefaultGallerySlot)
	require.NoError(t, err)

	assert.Contains(t, string(first), `"legacy":{"note":"v1"}`)
	assert.Contains(t, string(first), `"lomba":["b"]`)
	assert.Equal(t, string(first), string(second))
}

func TestGalleryWriteReadIsIdempotent(t *testing.T) {
	ctx := context.Background()
	backend := storage.NewMemoryBackend()
	require.NoError(t, backend.Put(ctx, DefaultGallerySlot, []byte(`{"zz-old":["o"],"lomba":["b","a"]}`)))

	service := newTestGalleryService(backend)

	first := service.Read(ctx)
	require.NoError(t, service.Write(ctx, first))
	firstBytes, err := backend.Get(ctx, DefaultGallerySlot)
	require.NoError(t, err)

	second := service.Read(ctx)
	require.NoError(t, service.Write(ctx, second))
	secondBytes, err := backend.Get(ctx, DefaultGallerySlot)
	require.NoError(t, err)

	assert.Equal(t, string(firstBytes), string(secondBytes))

	if diff := cmp.Diff(first, second); diff != "" {
		t.Fatalf("gallery changed across write/read (-first +second):\n%s", diff)
	}
}

func TestGalleryAddImageThenRead(t *testing.T) {
	ctx := context.Background()
	service := newTestGalleryService(storage.NewMemoryBackend())

	g := service.Read(ctx)
	g.AddImage(models.AlbumLomba, "u1")
	g.AddImage(models.AlbumLomba, "u2")
	require.NoError(t, service.Write(ctx, g))

	g = service.Read(ctx)
	g.AddImage(models.AlbumLomba, "u3")
	require.NoError(t, service.Write(ctx, g))

	assert.Equal(t, []string{"u3", "u2", "u1"}, service.Read(ctx).Images(models.AlbumLomba))
}

func TestGalleryRemoveImage(t *testing.T) {
	ctx := context.Background()
	backend := storage.NewMemoryBackend()
	require.NoError(t, backend.Put(ctx, DefaultGallerySlot, []byte(`{"latgab":["a","b","c","d"]}`)))

	service := newTestGalleryService(backend)

	_, err := service.RemoveImage(ctx, models.AlbumLatgab, 2)
	require.NoError(t, err)

	assert.Equal(t, []string{"a", "b", "d"}, service.Read(ctx).Images(models.AlbumLatgab))
}

func TestGalleryRemoveImageOutOfRangeWritesNothing(t *testing.T) {
	ctx := context.Background()
	backend := storage.NewMemoryBackend()
	original := `{"latgab":["a"]}`
	require.NoError(t, backend.Put(ctx, DefaultGallerySlot, []byte(original)))

	service := newTestGalleryService(backend)

	_, err := service.RemoveImage(ctx, models.AlbumLatgab, 1)
	assert.ErrorIs(t, err, models.ErrImageIndexOutOfRange)

	stored, err := backend.Get(ctx, DefaultGallerySlot)
	require.NoError(t, err)
	assert.Equal(t, original, string(stored))
}

func TestGalleryWriteBackendError(t *testing.T) {
	err := newTestGalleryService(failingBackend{}).Write(context.Background(), models.NewGallery())
	assert.ErrorContains(t, err, "error saving gallery")
}

func TestGalleryCustomSlot(t *testing.T) {
	ctx := context.Background()
	backend := storage.NewMemoryBackend()
	service := NewGalleryService(GalleryServiceConfig{Backend: backend, Slot: "v3"})

	require.NoError(t, service.Write(ctx, models.NewGallery()))

	_, err := backend.Get(ctx, "v3")
	assert.NoError(t, err)

	_, err = backend.Get(ctx, DefaultGallerySlot)
	assert.ErrorIs(t, err, storage.ErrSlotNotFound)
}
