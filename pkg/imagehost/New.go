package imagehost

import (
	"fmt"

	"github.com/adampresley/adamgokit/s3"
)

const (
	KindCloudinary = "cloudinary"
	KindS3         = "s3"
)

type NewConfig struct {
	Kind string

	CloudName    string
	UploadPreset string

	Bucket        string
	Folder        string
	PublicBaseURL string
	S3Client      s3.S3Client
}

func New(config NewConfig) (Host, error) {
	switch config.Kind {
	case KindCloudinary:
		if config.CloudName == "" || config.UploadPreset == "" {
			return nil, fmt.Errorf("the cloudinary image host needs a cloud name and an upload preset")
		}

		return NewCloudinaryHost(CloudinaryHostConfig{
			CloudName:    config.CloudName,
			UploadPreset: config.UploadPreset,
		}), nil

	case KindS3:
		if config.S3Client == nil {
			return nil, fmt.Errorf("the s3 image host needs an S3 client")
		}

		return NewS3Host(S3HostConfig{
			Bucket:        config.Bucket,
			Folder:        config.Folder,
			PublicBaseURL: config.PublicBaseURL,
			S3Client:      config.S3Client,
		}), nil
	}

	return nil, fmt.Errorf("unknown image host '%s'", config.Kind)
}
