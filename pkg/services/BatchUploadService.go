package services

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/adampresley/scoutgallery/pkg/models"
)

var (
	ErrBatchInProgress = fmt.Errorf("an upload batch is already running")
	ErrNoFilesSelected = fmt.Errorf("select at least one image")
	ErrUnknownAlbum    = fmt.Errorf("unknown album")
)

type BatchResult struct {
	AlbumID  models.AlbumID
	Uploaded int
	URLs     []string
	Failed   []string
}

type BatchUploadServicer interface {
	UploadBatch(ctx context.Context, albumID models.AlbumID, files []ImageFile, notifier Notifier) (BatchResult, error)
}

type BatchUploadServiceConfig struct {
	GalleryService       GalleryServicer
	ImagePipelineService ImagePipelineServicer
}

/*
BatchUploadService uploads files one after another and files the
resulting URLs under a single album. Only one batch runs at a time.
*/
type BatchUploadService struct {
	galleryService       GalleryServicer
	imagePipelineService ImagePipelineServicer
	running              *sync.Mutex
}

func NewBatchUploadService(config BatchUploadServiceConfig) BatchUploadService {
	return BatchUploadService{
		galleryService:       config.GalleryService,
		imagePipelineService: config.ImagePipelineService,
		running:              &sync.Mutex{},
	}
}

/*
UploadBatch processes files in order. A failed file is reported through
notifier and skipped. The gallery is saved once, and only when at least
one file made it.
*/
func (s BatchUploadService) UploadBatch(ctx context.Context, albumID models.AlbumID, files []ImageFile, notifier Notifier) (BatchResult, error) {
	var (
		err error
	)

	if albumID == "" {
		albumID = models.DefaultAlbum
	}

	result := BatchResult{
		AlbumID: albumID,
		URLs:    []string{},
		Failed:  []string{},
	}

	if len(files) == 0 {
		return result, ErrNoFilesSelected
	}

	if !s.running.TryLock() {
		return result, ErrBatchInProgress
	}

	defer s.running.Unlock()

	l := slog.With("album", albumID, "numFiles", len(files))
	l.Info("starting upload batch")

	gallery := s.galleryService.Read(ctx)

	for _, task := range newUploadTasks(files) {
		l.Debug("uploading file", "position", task.position+1, "file", task.file.Name)
		u := s.imagePipelineService.Upload(ctx, task.file, notifier)

		if u == "" {
			result.Failed = append(result.Failed, task.file.Name)
			continue
		}

		gallery.AddImage(albumID, u)
		result.URLs = append(result.URLs, u)
		result.Uploaded++
	}

	if result.Uploaded == 0 {
		l.Warn("upload batch finished without any uploads", "failed", len(result.Failed))
		return result, nil
	}

	if err = s.galleryService.Write(ctx, gallery); err != nil {
		l.Error("error saving gallery after upload batch", "error", err)
		return result, err
	}

	if notifier != nil {
		notifier.Notify(fmt.Sprintf("Successfully uploaded %d image(s)!", result.Uploaded))
	}

	l.Info("upload batch finished", "uploaded", result.Uploaded, "failed", len(result.Failed))
	return result, nil
}

type uploadTask struct {
	position int
	file     ImageFile
}

func newUploadTasks(files []ImageFile) []uploadTask {
	result := make([]uploadTask, 0, len(files))

	for index, file := range files {
		result = append(result, uploadTask{position: index, file: file})
	}

	return result
}
