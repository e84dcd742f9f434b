package models

import (
	"fmt"
	"testing"

	"github.com/adampresley/scoutgallery/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAlbumsFromGalleryOnlyListsAlbumsWithImages(t *testing.T) {
	g := models.NewGallery()
	g["old-album"] = []string{"hidden-forever"}
	g.AddImage(models.AlbumLainnya, "z")
	g.AddImage(models.AlbumPerkemahan, "a")

	albums := AlbumsFromGallery(g, 7, nil)

	require.Len(t, albums, 2)
	assert.Equal(t, "perkemahan", albums[0].ID)
	assert.Equal(t, "Perkemahan", albums[0].Name)
	assert.Equal(t, "lainnya", albums[1].ID)
	assert.Equal(t, "Lainnya", albums[1].Name)
}

func TestAlbumsFromGalleryHidesPastLimit(t *testing.T) {
	g := models.NewGallery()
	for i := 0; i < 9; i++ {
		g.AddImage(models.AlbumLomba, fmt.Sprintf("u%d", i))
	}

	albums := AlbumsFromGallery(g, 7, nil)

	require.Len(t, albums, 1)
	require.Len(t, albums[0].Images, 9)
	assert.True(t, albums[0].HasHidden)
	assert.False(t, albums[0].Images[6].Hidden)
	assert.True(t, albums[0].Images[7].Hidden)
	assert.True(t, albums[0].Images[8].Hidden)
	assert.Equal(t, "u8", albums[0].Images[0].URL)

	all := AlbumsFromGallery(g, 0, nil)
	assert.False(t, all[0].HasHidden)
}

func TestAlbumsFromGallerySwapsBrokenLinks(t *testing.T) {
	g := models.NewGallery()
	g.AddImage(models.AlbumUpacara, "good")
	g.AddImage(models.AlbumUpacara, "bad")

	albums := AlbumsFromGallery(g, 7, func(url string) bool {
		return url == "bad"
	})

	require.Len(t, albums[0].Images, 2)
	assert.Equal(t, PlaceholderImage, albums[0].Images[0].URL)
	assert.Equal(t, "bad", albums[0].Images[0].Original)
	assert.Equal(t, 0, albums[0].Images[0].Index)
	assert.Equal(t, "good", albums[0].Images[1].URL)
}
