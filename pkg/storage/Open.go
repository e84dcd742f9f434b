package storage

import (
	"fmt"

	"github.com/adampresley/adamgokit/s3"
)

const (
	KindFile   = "file"
	KindSQLite = "sqlite"
	KindS3     = "s3"
	KindMemory = "memory"
)

type OpenConfig struct {
	Kind     string
	DataDir  string
	DSN      string
	Bucket   string
	Prefix   string
	S3Client s3.S3Client
}

/*
Open builds the backend named by config.Kind.
*/
func Open(config OpenConfig) (Backend, error) {
	switch config.Kind {
	case KindFile:
		return NewFileBackend(config.DataDir)

	case KindSQLite:
		return OpenSQLite(config.DSN)

	case KindS3:
		if config.S3Client == nil {
			return nil, fmt.Errorf("the s3 storage backend needs an S3 client")
		}

		return NewS3Backend(S3BackendConfig{
			Bucket:   config.Bucket,
			Prefix:   config.Prefix,
			S3Client: config.S3Client,
		}), nil

	case KindMemory:
		return NewMemoryBackend(), nil
	}

	return nil, fmt.Errorf("unknown storage backend '%s'", config.Kind)
}
