package artifact

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"path"
	"strings"

	"deck-finder/core/deck"
	"deck-finder/core/storage"

	"github.com/minio/minio-go/v7"
)

const contentTypeJSON = "application/json"

// BucketRepository keeps artifacts in an object storage bucket.
type BucketRepository struct {
	client storage.Client
	bucket string
	prefix string
}

// NewBucketRepository creates a repository storing objects under prefix in bucket.
func NewBucketRepository(client storage.Client, bucket, prefix string) *BucketRepository {
	return &BucketRepository{client: client, bucket: bucket, prefix: prefix}
}

func (r *BucketRepository) key(file string) string {
	if r.prefix == "" {
		return file
	}
	return path.Join(r.prefix, file)
}

// EnsureBucket creates the bucket when it does not exist yet.
func (r *BucketRepository) EnsureBucket(ctx context.Context) error {
	exists, err := r.client.BucketExists(ctx, r.bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket %s: %w", r.bucket, err)
	}
	if exists {
		return nil
	}
	if err := r.client.MakeBucket(ctx, r.bucket, minio.MakeBucketOptions{}); err != nil {
		return fmt.Errorf("failed to create bucket %s: %w", r.bucket, err)
	}
	return nil
}

func (r *BucketRepository) SaveShard(ctx context.Context, shard deck.Shard) error {
	return r.save(ctx, shard.Name, shard)
}

func (r *BucketRepository) SaveCatalog(ctx context.Context, catalog deck.Shard) error {
	return r.save(ctx, "", catalog)
}

func (r *BucketRepository) LoadShard(ctx context.Context, name string) (deck.Shard, error) {
	return r.load(ctx, name)
}

func (r *BucketRepository) LoadCatalog(ctx context.Context) (deck.Shard, error) {
	return r.load(ctx, "")
}

func (r *BucketRepository) DeleteShard(ctx context.Context, name string) error {
	if name == "" {
		return errCatalogName
	}
	for _, file := range []string{StoreFile(name), IndexFile(name)} {
		if err := r.client.RemoveObject(ctx, r.bucket, r.key(file), minio.RemoveObjectOptions{}); err != nil {
			return fmt.Errorf("failed to remove %s: %w", file, err)
		}
	}
	return nil
}

func (r *BucketRepository) ListShards(ctx context.Context) ([]string, error) {
	opts := minio.ListObjectsOptions{Prefix: r.key(""), Recursive: true}
	if r.prefix != "" && !strings.HasSuffix(opts.Prefix, "/") {
		opts.Prefix += "/"
	}

	var files []string
	for obj := range r.client.ListObjects(ctx, r.bucket, opts) {
		if obj.Err != nil {
			return nil, fmt.Errorf("failed to list artifacts: %w", obj.Err)
		}
		rel := strings.TrimPrefix(obj.Key, opts.Prefix)
		if strings.Contains(rel, "/") {
			continue
		}
		files = append(files, rel)
	}
	return pairedShards(files), nil
}

func (r *BucketRepository) save(ctx context.Context, shard string, s deck.Shard) error {
	store, index, err := encodeShard(s)
	if err != nil {
		return err
	}
	if err := r.put(ctx, StoreFile(shard), store); err != nil {
		return err
	}
	return r.put(ctx, IndexFile(shard), index)
}

func (r *BucketRepository) put(ctx context.Context, file string, data []byte) error {
	_, err := r.client.PutObject(ctx, r.bucket, r.key(file), bytes.NewReader(data), int64(len(data)),
		minio.PutObjectOptions{ContentType: contentTypeJSON})
	if err != nil {
		return fmt.Errorf("failed to upload %s: %w", file, err)
	}
	return nil
}

func (r *BucketRepository) load(ctx context.Context, shard string) (deck.Shard, error) {
	store, err := r.get(ctx, StoreFile(shard))
	if err != nil {
		return deck.Shard{}, err
	}
	index, err := r.get(ctx, IndexFile(shard))
	if err != nil {
		return deck.Shard{}, err
	}
	return DecodeShard(shardOrCatalog(shard), store, index)
}

func (r *BucketRepository) get(ctx context.Context, file string) ([]byte, error) {
	obj, err := r.client.GetObject(ctx, r.bucket, r.key(file), minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrUnavailable, file, err)
	}
	defer obj.Close()

	data, err := io.ReadAll(obj)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrUnavailable, file, err)
	}
	return data, nil
}
