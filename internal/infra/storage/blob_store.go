// Package storage provides the key-value backends that hold carts and preferences.
package storage

import (
	"context"

	"storefront/internal/domain/repository"
	"storefront/internal/errors"

	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob" // file:// buckets
	_ "gocloud.dev/blob/memblob"  // mem:// buckets
	"gocloud.dev/gcerrors"
)

const contentTypeJSON = "application/json"

// blobStore implements repository.KeyValueStore on a gocloud bucket, one object per key.
type blobStore struct {
	bucket *blob.Bucket
}

// OpenBlobStore opens the bucket at url, e.g. "mem://" or "file:///var/lib/storefront".
func OpenBlobStore(ctx context.Context, url string) (*blob.Bucket, repository.KeyValueStore, error) {
	bucket, err := blob.OpenBucket(ctx, url)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "failed to open bucket %s", url)
	}

	return bucket, NewBlobStore(bucket), nil
}

// NewBlobStore wraps an already opened bucket. The caller owns closing it.
func NewBlobStore(bucket *blob.Bucket) repository.KeyValueStore {
	return &blobStore{bucket: bucket}
}

func (s *blobStore) Get(ctx context.Context, key string) ([]byte, error) {
	data, err := s.bucket.ReadAll(ctx, key)
	if err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil, repository.ErrKeyNotFound
		}

		return nil, errors.Wrapf(err, "failed to read %s", key)
	}

	return data, nil
}

func (s *blobStore) Set(ctx context.Context, key string, value []byte) error {
	if err := s.bucket.WriteAll(ctx, key, value, &blob.WriterOptions{ContentType: contentTypeJSON}); err != nil {
		return errors.Wrapf(err, "failed to write %s", key)
	}

	return nil
}

func (s *blobStore) Delete(ctx context.Context, key string) error {
	err := s.bucket.Delete(ctx, key)
	if err != nil && gcerrors.Code(err) != gcerrors.NotFound {
		return errors.Wrapf(err, "failed to delete %s", key)
	}

	return nil
}
