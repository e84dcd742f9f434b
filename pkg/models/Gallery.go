package models

import (
	"fmt"
)

var (
	ErrImageIndexOutOfRange = fmt.Errorf("image index out of range")
)

/*
Gallery maps album IDs to image URLs, newest first. Keys outside the
catalog are carried along untouched but never rendered.
*/
type Gallery map[string][]string

/*
NewGallery returns a gallery with every catalog album mapped to an empty list.
*/
func NewGallery() Gallery {
	result := Gallery{}

	for _, album := range Catalog {
		result[string(album.ID)] = []string{}
	}

	return result
}

/*
EnsureCatalog adds an empty list for every catalog album that is missing
or nil.
*/
func (g Gallery) EnsureCatalog() Gallery {
	for _, album := range Catalog {
		if g[string(album.ID)] == nil {
			g[string(album.ID)] = []string{}
		}
	}

	return g
}

func (g Gallery) Images(albumID AlbumID) []string {
	return g[string(albumID)]
}

/*
AddImage prepends url to the album's list, creating the list if needed.
*/
func (g Gallery) AddImage(albumID AlbumID, url string) Gallery {
	key := string(albumID)
	existing := g[key]

	images := make([]string, 0, len(existing)+1)
	images = append(images, url)
	images = append(images, existing...)

	g[key] = images
	return g
}

/*
RemoveImage drops the entry at index from the album's list. An index
outside the list returns ErrImageIndexOutOfRange and leaves g alone.
*/
func (g Gallery) RemoveImage(albumID AlbumID, index int) (Gallery, error) {
	key := string(albumID)
	existing, ok := g[key]

	if !ok || index < 0 || index >= len(existing) {
		return g, fmt.Errorf("%w: album '%s', index %d", ErrImageIndexOutOfRange, albumID, index)
	}

	images := make([]string, 0, len(existing)-1)
	images = append(images, existing[:index]...)
	images = append(images, existing[index+1:]...)

	g[key] = images
	return g, nil
}

/*
AllURLs returns every URL filed under a catalog album, in catalog order.
*/
func (g Gallery) AllURLs() []string {
	result := []string{}

	for _, album := range Catalog {
		result = append(result, g[string(album.ID)]...)
	}

	return result
}

func (g Gallery) HasImages() bool {
	for _, album := range Catalog {
		if len(g[string(album.ID)]) > 0 {
			return true
		}
	}

	return false
}
