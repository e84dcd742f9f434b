package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGalleryHasEveryCatalogAlbum(t *testing.T) {
	g := NewGallery()

	assert.Len(t, g, len(Catalog))
	for _, album := range Catalog {
		images, ok := g[string(album.ID)]
		assert.True(t, ok, album.ID)
		assert.NotNil(t, images)
		assert.Empty(t, images)
	}
}

func TestEnsureCatalogKeepsExistingAndUnknownKeys(t *testing.T) {
	g := Gallery{
		"perkemahan": {"u1", "u2"},
		"old-album":  {"x"},
		"lomba":      nil,
	}

	g.EnsureCatalog()

	assert.Equal(t, []string{"u1", "u2"}, g["perkemahan"])
	assert.Equal(t, []string{"x"}, g["old-album"])
	assert.Equal(t, []string{}, g["lomba"])
	assert.Len(t, g, len(Catalog)+1)
}

func TestAddImagePrepends(t *testing.T) {
	g := NewGallery()
	g.AddImage(AlbumLomba, "a")
	g.AddImage(AlbumLomba, "b")

	assert.Equal(t, []string{"b", "a"}, g.Images(AlbumLomba))
}

func TestAddImageCreatesUnknownAlbum(t *testing.T) {
	g := NewGallery()
	g.AddImage(AlbumID("typo"), "a")

	assert.Equal(t, []string{"a"}, g["typo"])
}

func TestRemoveImage(t *testing.T) {
	g := Gallery{"upacara": {"a", "b", "c", "d"}}

	_, err := g.RemoveImage(AlbumUpacara, 1)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "c", "d"}, g.Images(AlbumUpacara))

	_, err = g.RemoveImage(AlbumUpacara, 2)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "c"}, g.Images(AlbumUpacara))
}

func TestRemoveImageOutOfRange(t *testing.T) {
	tests := []struct {
		name  string
		album AlbumID
		index int
	}{
		{name: "negative", album: AlbumUpacara, index: -1},
		{name: "past the end", album: AlbumUpacara, index: 2},
		{name: "missing album", album: AlbumLomba, index: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := Gallery{"upacara": {"a", "b"}}

			_, err := g.RemoveImage(tt.album, tt.index)
			assert.ErrorIs(t, err, ErrImageIndexOutOfRange)
			assert.Equal(t, []string{"a", "b"}, g.Images(AlbumUpacara))
		})
	}
}

func TestAllURLsSkipsUnknownAlbums(t *testing.T) {
	g := NewGallery()
	g["old-album"] = []string{"hidden"}
	g.AddImage(AlbumLainnya, "z")
	g.AddImage(AlbumPerkemahan, "a")

	assert.Equal(t, []string{"a", "z"}, g.AllURLs())
	assert.True(t, g.HasImages())
	assert.False(t, NewGallery().HasImages())
}

func TestParseAlbumID(t *testing.T) {
	id, ok := ParseAlbumID("")
	assert.True(t, ok)
	assert.Equal(t, AlbumLainnya, id)

	id, ok = ParseAlbumID("latgab")
	assert.True(t, ok)
	assert.Equal(t, AlbumLatgab, id)

	_, ok = ParseAlbumID("Latgab")
	assert.False(t, ok)

	album, ok := FindAlbum(AlbumHariBesar)
	assert.True(t, ok)
	assert.Equal(t, "Hari Besar Nasional", album.Name)
	assert.Len(t, Catalog, 9)
}
