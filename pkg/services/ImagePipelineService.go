package services

import (
	"bytes"
	"context"
	"fmt"
	"image"
	_ "image/gif"
	"image/jpeg"
	_ "image/png"
	"log/slog"
	"math"

	"github.com/adampresley/scoutgallery/pkg/imagehost"
	"github.com/nfnt/resize"
	_ "golang.org/x/image/webp"
)

const (
	DefaultMaxWidth uint    = 800
	DefaultQuality  float64 = 0.8
)

/*
ImageFile is an in-memory file as selected by the administrator.
*/
type ImageFile struct {
	Name        string
	ContentType string
	Data        []byte
}

type ImagePipelineServicer interface {
	Compress(file ImageFile, maxWidth uint, quality float64) (ImageFile, error)
	Upload(ctx context.Context, file ImageFile, notifier Notifier) string
}

type ImagePipelineServiceConfig struct {
	Host     imagehost.Host
	MaxWidth uint
	Quality  float64
}

type ImagePipelineService struct {
	host     imagehost.Host
	maxWidth uint
	quality  float64
}

func NewImagePipelineService(config ImagePipelineServiceConfig) ImagePipelineService {
	if config.MaxWidth == 0 {
		config.MaxWidth = DefaultMaxWidth
	}

	if config.Quality <= 0 || config.Quality > 1 {
		config.Quality = DefaultQuality
	}

	return ImagePipelineService{
		host:     config.Host,
		maxWidth: config.MaxWidth,
		quality:  config.Quality,
	}
}

/*
Compress decodes file, scales it down to maxWidth when it is wider, and
re-encodes it as JPEG. The name is kept. Height follows the aspect ratio
and is truncated to whole pixels.
*/
func (s ImagePipelineService) Compress(file ImageFile, maxWidth uint, quality float64) (ImageFile, error) {
	var (
		err error
		img image.Image
		buf bytes.Buffer
	)

	if img, _, err = image.Decode(bytes.NewReader(file.Data)); err != nil {
		return ImageFile{}, fmt.Errorf("error decoding image '%s': %w", file.Name, err)
	}

	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	if width > int(maxWidth) {
		newHeight := uint(float64(height) * float64(maxWidth) / float64(width))
		newHeight = max(newHeight, 1)

		img = resize.Resize(maxWidth, newHeight, img, resize.Lanczos3)
	}

	if err = jpeg.Encode(&buf, img, &jpeg.Options{Quality: jpegQuality(quality)}); err != nil {
		return ImageFile{}, fmt.Errorf("error encoding image '%s': %w", file.Name, err)
	}

	return ImageFile{
		Name:        file.Name,
		ContentType: "image/jpeg",
		Data:        buf.Bytes(),
	}, nil
}

/*
Upload compresses file and sends it to the image host. On any failure
the notifier gets exactly one message and the result is an empty string.
*/
func (s ImagePipelineService) Upload(ctx context.Context, file ImageFile, notifier Notifier) string {
	var (
		err        error
		compressed ImageFile
		u          string
	)

	if compressed, err = s.Compress(file, s.maxWidth, s.quality); err != nil {
		s.reportFailure(file, err, notifier)
		return ""
	}

	u, err = s.host.Upload(
		ctx,
		compressed.Name,
		compressed.ContentType,
		bytes.NewReader(compressed.Data),
	)

	if err != nil {
		s.reportFailure(file, err, notifier)
		return ""
	}

	slog.Info("uploaded image", "file", file.Name, "originalBytes", len(file.Data), "compressedBytes", len(compressed.Data), "url", u)
	return u
}

func (s ImagePipelineService) reportFailure(file ImageFile, err error, notifier Notifier) {
	slog.Error("image upload failed", "file", file.Name, "error", err)

	if notifier != nil {
		notifier.Notify(fmt.Sprintf("Upload failed for %s: %s", file.Name, err.Error()))
	}
}

func jpegQuality(quality float64) int {
	q := int(math.Round(quality * 100))
	return min(max(q, 1), 100)
}
