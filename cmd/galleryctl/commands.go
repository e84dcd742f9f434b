package main

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"

	"github.com/adampresley/adamgokit/awsconfig"
	"github.com/adampresley/adamgokit/s3"
	"github.com/adampresley/scoutgallery/pkg/imagehost"
	"github.com/adampresley/scoutgallery/pkg/models"
	"github.com/adampresley/scoutgallery/pkg/services"
	"github.com/adampresley/scoutgallery/pkg/storage"
	"github.com/urfave/cli/v2"
)

func albumsAction(ctx *cli.Context) error {
	printCatalog(ctx.App.Writer)
	return nil
}

func listAction(ctx *cli.Context) error {
	var (
		err     error
		gallery services.GalleryServicer
	)

	if gallery, err = newGalleryService(ctx); err != nil {
		return err
	}

	only := models.AlbumID(ctx.String("album"))

	if only != "" && !only.IsKnown() {
		return fmt.Errorf("%w: %s", services.ErrUnknownAlbum, only)
	}

	printGallery(ctx.App.Writer, gallery.Read(ctx.Context), only)
	return nil
}

func uploadAction(ctx *cli.Context) error {
	var (
		err      error
		gallery  services.GalleryServicer
		pipeline services.ImagePipelineServicer
		files    []services.ImageFile
		result   services.BatchResult
	)

	albumID, ok := models.ParseAlbumID(ctx.String("album"))

	if !ok {
		return fmt.Errorf("%w: %s", services.ErrUnknownAlbum, ctx.String("album"))
	}

	if files, err = readImageFiles(ctx.Args().Slice()); err != nil {
		return err
	}

	if gallery, err = newGalleryService(ctx); err != nil {
		return err
	}

	if pipeline, err = newImagePipelineService(ctx); err != nil {
		return err
	}

	batch := services.NewBatchUploadService(services.BatchUploadServiceConfig{
		GalleryService:       gallery,
		ImagePipelineService: pipeline,
	})

	notifier := services.NotifierFunc(func(message string) {
		fmt.Fprintln(ctx.App.Writer, message)
	})

	if result, err = batch.UploadBatch(ctx.Context, albumID, files, notifier); err != nil {
		return err
	}

	for _, u := range result.URLs {
		fmt.Fprintln(ctx.App.Writer, u)
	}

	if result.Uploaded == 0 {
		return cli.Exit("no images were uploaded", 1)
	}

	return nil
}

func removeAction(ctx *cli.Context) error {
	var (
		err     error
		gallery services.GalleryServicer
	)

	albumID, ok := models.ParseAlbumID(ctx.String("album"))

	if !ok {
		return fmt.Errorf("%w: %s", services.ErrUnknownAlbum, ctx.String("album"))
	}

	if gallery, err = newGalleryService(ctx); err != nil {
		return err
	}

	if _, err = gallery.RemoveImage(ctx.Context, albumID, ctx.Int("index")); err != nil {
		return err
	}

	fmt.Fprintf(ctx.App.Writer, "removed image %d from %s\n", ctx.Int("index"), albumID)
	return nil
}

func newGalleryService(ctx *cli.Context) (services.GalleryServicer, error) {
	var (
		err      error
		s3Client s3.S3Client
		backend  storage.Backend
	)

	if ctx.String("storage") == storage.KindS3 {
		if s3Client, err = newS3Client(ctx); err != nil {
			return nil, err
		}
	}

	backend, err = storage.Open(storage.OpenConfig{
		Kind:     ctx.String("storage"),
		DataDir:  ctx.String("data-dir"),
		DSN:      ctx.String("dsn"),
		Bucket:   ctx.String("aws-bucket"),
		Prefix:   ctx.String("gallery-prefix"),
		S3Client: s3Client,
	})

	if err != nil {
		return nil, err
	}

	return services.NewGalleryService(services.GalleryServiceConfig{
		Backend: backend,
		Slot:    ctx.String("slot"),
	}), nil
}

func newImagePipelineService(ctx *cli.Context) (services.ImagePipelineServicer, error) {
	var (
		err      error
		s3Client s3.S3Client
		host     imagehost.Host
	)

	if ctx.String("image-host") == imagehost.KindS3 {
		if s3Client, err = newS3Client(ctx); err != nil {
			return nil, err
		}
	}

	host, err = imagehost.New(imagehost.NewConfig{
		Kind:          ctx.String("image-host"),
		CloudName:     ctx.String("cloud-name"),
		UploadPreset:  ctx.String("upload-preset"),
		Bucket:        ctx.String("aws-bucket"),
		Folder:        ctx.String("image-folder"),
		PublicBaseURL: ctx.String("image-base-url"),
		S3Client:      s3Client,
	})

	if err != nil {
		return nil, err
	}

	return services.NewImagePipelineService(services.ImagePipelineServiceConfig{
		Host:     host,
		MaxWidth: services.DefaultMaxWidth,
		Quality:  services.DefaultQuality,
	}), nil
}

func newS3Client(ctx *cli.Context) (s3.S3Client, error) {
	var (
		err error
	)

	awsConfig := &awsconfig.Config{
		Endpoint:        ctx.String("aws-endpoint"),
		Region:          ctx.String("aws-region"),
		AccessKeyID:     ctx.String("aws-access-key-id"),
		SecretAccessKey: ctx.String("aws-secret-access-key"),
	}

	if err = awsConfig.Load(); err != nil {
		return nil, fmt.Errorf("error loading aws config: %w", err)
	}

	return s3.NewClient(awsConfig)
}

func readImageFiles(paths []string) ([]services.ImageFile, error) {
	if len(paths) == 0 {
		return nil, services.ErrNoFilesSelected
	}

	result := make([]services.ImageFile, 0, len(paths))

	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("error reading image file '%s': %w", path, err)
		}

		result = append(result, services.ImageFile{
			Name:        filepath.Base(path),
			ContentType: http.DetectContentType(data),
			Data:        data,
		})
	}

	return result, nil
}

func printCatalog(w io.Writer) {
	for _, album := range models.Catalog {
		fmt.Fprintf(w, "%-16s %s\n", album.ID, album.Name)
	}
}

func printGallery(w io.Writer, gallery models.Gallery, only models.AlbumID) {
	for _, album := range models.Catalog {
		if only != "" && album.ID != only {
			continue
		}

		images := gallery.Images(album.ID)
		fmt.Fprintf(w, "%s (%d)\n", album.Name, len(images))

		for index, u := range images {
			fmt.Fprintf(w, "  %3d  %s\n", index, u)
		}
	}
}
