package models

import (
	"github.com/adampresley/scoutgallery/pkg/models"
)

const (
	PlaceholderImage = "/static/images/placeholder.svg"
)

var (
	EmptyGalleryPlaceholders = []string{
		"/static/images/placeholder3.svg",
		"/static/images/placeholder4.svg",
		"/static/images/placeholder5.svg",
	}
)

type Album struct {
	ID        string
	Name      string
	Images    []Image
	HasHidden bool
}

type Image struct {
	URL      string
	Original string
	Index    int
	Hidden   bool
}

/*
AlbumsFromGallery lists the catalog albums that have images, in catalog
order. Images past visibleLimit are flagged hidden; a limit of zero or
less shows everything. Broken URLs are swapped for the placeholder image
but keep their original URL and index for deleting.
*/
func AlbumsFromGallery(gallery models.Gallery, visibleLimit int, isBroken func(url string) bool) []Album {
	result := []Album{}

	for _, catalogAlbum := range models.Catalog {
		urls := gallery.Images(catalogAlbum.ID)

		if len(urls) == 0 {
			continue
		}

		album := Album{
			ID:     string(catalogAlbum.ID),
			Name:   catalogAlbum.Name,
			Images: make([]Image, 0, len(urls)),
		}

		for index, u := range urls {
			image := Image{
				URL:      u,
				Original: u,
				Index:    index,
				Hidden:   visibleLimit > 0 && index >= visibleLimit,
			}

			if isBroken != nil && isBroken(u) {
				image.URL = PlaceholderImage
			}

			if image.Hidden {
				album.HasHidden = true
			}

			album.Images = append(album.Images, image)
		}

		result = append(result, album)
	}

	return result
}
