package storage

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"path"

	"github.com/adampresley/adamgokit/s3"
	"github.com/adampresley/adamgokit/s3/getoptions"
)

type S3BackendConfig struct {
	Bucket   string
	Prefix   string
	S3Client s3.S3Client
}

/*
S3Backend keeps each slot as a JSON object at <prefix>/<slot>.json.
*/
type S3Backend struct {
	bucket   string
	prefix   string
	s3Client s3.S3Client
}

func NewS3Backend(config S3BackendConfig) S3Backend {
	return S3Backend{
		bucket:   config.Bucket,
		prefix:   config.Prefix,
		s3Client: config.S3Client,
	}
}

func (b S3Backend) Get(ctx context.Context, slot string) ([]byte, error) {
	var (
		err    error
		stat   *s3.ObjectMetadata
		object s3.GetObjectResponse
		data   []byte
	)

	key := b.key(slot)

	if stat, err = b.s3Client.StatObject(b.bucket, key); err != nil {
		return nil, fmt.Errorf("error retrieving metadata for slot '%s': %w", key, err)
	}

	if stat == nil {
		return nil, ErrSlotNotFound
	}

	object, err = b.s3Client.Get(
		b.bucket,
		key,
		getoptions.WithContext(ctx),
	)

	if err != nil {
		return nil, fmt.Errorf("error retrieving slot '%s': %w", key, err)
	}

	defer object.Body.Close()

	if data, err = io.ReadAll(object.Body); err != nil {
		return nil, fmt.Errorf("error reading slot '%s': %w", key, err)
	}

	return data, nil
}

func (b S3Backend) Put(ctx context.Context, slot string, data []byte) error {
	key := b.key(slot)

	if _, err := b.s3Client.Put(b.bucket, key, bytes.NewReader(data)); err != nil {
		return fmt.Errorf("error uploading slot '%s' to S3: %w", key, err)
	}

	return nil
}

func (b S3Backend) key(slot string) string {
	return path.Join(b.prefix, slot+".json")
}
