package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/adampresley/scoutgallery/pkg/models"
	"github.com/adampresley/scoutgallery/pkg/storage"
)

const (
	DefaultGallerySlot = "pramuka_gallery_albums_v2"
)

type GalleryServicer interface {
	Read(ctx context.Context) models.Gallery
	Write(ctx context.Context, gallery models.Gallery) error
	RemoveImage(ctx context.Context, albumID models.AlbumID, index int) (models.Gallery, error)
}

type GalleryServiceConfig struct {
	Backend storage.Backend
	Slot    string
}

type GalleryService struct {
	backend storage.Backend
	slot    string
}

func NewGalleryService(config GalleryServiceConfig) GalleryService {
	if config.Slot == "" {
		config.Slot = DefaultGallerySlot
	}

	return GalleryService{
		backend: config.Backend,
		slot:    config.Slot,
	}
}

/*
Read loads the gallery from the backend. It never fails: a missing,
unreadable or malformed slot yields an empty gallery with every catalog
album present.
*/
func (s GalleryService) Read(ctx context.Context) models.Gallery {
	var (
		err  error
		data []byte
		raw  map[string]json.RawMessage
	)

	if data, err = s.backend.Get(ctx, s.slot); err != nil {
		if !errors.Is(err, storage.ErrSlotNotFound) {
			slog.Error("error reading gallery. starting from an empty gallery", "slot", s.slot, "error", err)
		}

		return models.NewGallery()
	}

	if err = json.Unmarshal(data, &raw); err != nil || raw == nil {
		slog.Warn("gallery slot is malformed. starting from an empty gallery", "slot", s.slot, "error", err)
		return models.NewGallery()
	}

	result := models.Gallery{}

	for key, value := range raw {
		var images []string

		if err = json.Unmarshal(value, &images); err != nil {
			if models.AlbumID(key).IsKnown() {
				slog.Warn("album in gallery slot is malformed. resetting it", "slot", s.slot, "key", key, "error", err)
			} else {
				slog.Warn("leaving undecodable entry in gallery slot", "slot", s.slot, "key", key)
			}

			continue
		}

		result[key] = images
	}

	return result.EnsureCatalog()
}

/*
Write replaces the stored gallery with gallery. Stored entries outside the
catalog that Read could not decode are written back as they were.
*/
func (s GalleryService) Write(ctx context.Context, gallery models.Gallery) error {
	var (
		err   error
		data  []byte
		entry json.RawMessage
	)

	entries := s.undecodedEntries(ctx, gallery)

	for key, images := range gallery {
		if entry, err = json.Marshal(images); err != nil {
			return fmt.Errorf("error encoding album '%s': %w", key, err)
		}

		entries[key] = entry
	}

	if data, err = json.Marshal(entries); err != nil {
		return fmt.Errorf("error encoding gallery: %w", err)
	}

	if err = s.backend.Put(ctx, s.slot, data); err != nil {
		return fmt.Errorf("error saving gallery: %w", err)
	}

	return nil
}

/*
RemoveImage deletes one image from a freshly read gallery and saves the
result. Nothing is written when the index is out of range.
*/
func (s GalleryService) RemoveImage(ctx context.Context, albumID models.AlbumID, index int) (models.Gallery, error) {
	var (
		err error
	)

	gallery := s.Read(ctx)

	if gallery, err = gallery.RemoveImage(albumID, index); err != nil {
		return gallery, err
	}

	if err = s.Write(ctx, gallery); err != nil {
		return gallery, err
	}

	return gallery, nil
}

/*
undecodedEntries returns the stored values for keys outside the catalog
that are not image lists and that gallery does not carry.
*/
func (s GalleryService) undecodedEntries(ctx context.Context, gallery models.Gallery) map[string]json.RawMessage {
	var (
		err    error
		data   []byte
		stored map[string]json.RawMessage
	)

	result := map[string]json.RawMessage{}

	if data, err = s.backend.Get(ctx, s.slot); err != nil {
		return result
	}

	if err = json.Unmarshal(data, &stored); err != nil {
		return result
	}

	for key, value := range stored {
		var images []string

		if _, ok := gallery[key]; ok || models.AlbumID(key).IsKnown() {
			continue
		}

		if json.Unmarshal(value, &images) == nil {
			continue
		}

		result[key] = value
	}

	return result
}
