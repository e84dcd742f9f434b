package imagehost

import (
	"context"
	"fmt"
	"io"
	"path"
	"path/filepath"
	"strings"

	"github.com/adampresley/adamgokit/s3"
	"github.com/google/uuid"
)

type S3HostConfig struct {
	Bucket        string
	Folder        string
	PublicBaseURL string
	S3Client      s3.S3Client
}

/*
S3Host puts images under <folder>/<uuid><ext>. URLs are built from
PublicBaseURL when set, otherwise the S3 client is asked for one.
*/
type S3Host struct {
	bucket        string
	folder        string
	publicBaseURL string
	s3Client      s3.S3Client
}

func NewS3Host(config S3HostConfig) S3Host {
	return S3Host{
		bucket:        config.Bucket,
		folder:        config.Folder,
		publicBaseURL: strings.TrimSuffix(config.PublicBaseURL, "/"),
		s3Client:      config.S3Client,
	}
}

func (h S3Host) Upload(ctx context.Context, fileName, contentType string, body io.Reader) (string, error) {
	var (
		err error
		u   string
	)

	key := path.Join(h.folder, uuid.NewString()+extension(fileName, contentType))

	if _, err = h.s3Client.Put(h.bucket, key, body); err != nil {
		return "", fmt.Errorf("error uploading image '%s' to S3: %w", fileName, err)
	}

	if h.publicBaseURL != "" {
		return h.publicBaseURL + "/" + key, nil
	}

	if u, err = h.s3Client.GetUrl(h.bucket, key); err != nil {
		return "", fmt.Errorf("error getting URL for '%s': %w", key, err)
	}

	return u, nil
}

func extension(fileName, contentType string) string {
	if contentType == "image/jpeg" {
		return ".jpg"
	}

	return strings.ToLower(filepath.Ext(fileName))
}
