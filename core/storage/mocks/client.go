package mocks

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/mock"
)

// Client is a testify mock of storage.Client backed by an in-memory bucket.
// Uploads accepted through AcceptPuts land in the bucket, ServeObjects reads
// them back and AcceptRemoves deletes them.
type Client struct {
	mock.Mock

	mu      sync.Mutex
	objects map[string][]byte
}

// NewClient returns a mock with an empty bucket.
func NewClient() *Client {
	return &Client{objects: make(map[string][]byte)}
}

// Objects returns a copy of every object currently held, by key.
func (m *Client) Objects() map[string][]byte {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make(map[string][]byte, len(m.objects))
	for k, v := range m.objects {
		out[k] = v
	}
	return out
}

// Seed stores an object directly, without an expectation.
func (m *Client) Seed(key string, data []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.objects == nil {
		m.objects = make(map[string][]byte)
	}
	m.objects[key] = data
}

// AcceptPuts accepts every upload to bucket and keeps its body.
func (m *Client) AcceptPuts(bucket string) *mock.Call {
	return m.On("PutObject", mock.Anything, bucket, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(minio.UploadInfo{}, nil)
}

// ServeObjects answers every download from bucket with the held object,
// or a NoSuchKey error.
func (m *Client) ServeObjects(bucket string) *mock.Call {
	return m.On("GetObject", mock.Anything, bucket, mock.Anything, mock.Anything).
		Return(func(key string) (io.ReadCloser, error) {
			m.mu.Lock()
			defer m.mu.Unlock()
			data, ok := m.objects[key]
			if !ok {
				return nil, fmt.Errorf("NoSuchKey: %s", key)
			}
			return io.NopCloser(bytes.NewReader(data)), nil
		}, nil)
}

// AcceptRemoves accepts every deletion from bucket. Missing keys are not an error.
func (m *Client) AcceptRemoves(bucket string) *mock.Call {
	return m.On("RemoveObject", mock.Anything, bucket, mock.Anything, mock.Anything).Return(nil)
}

// OnList answers a listing of bucket with opts by streaming objects.
func (m *Client) OnList(bucket string, opts interface{}, objects ...minio.ObjectInfo) *mock.Call {
	ch := make(chan minio.ObjectInfo, len(objects))
	for _, o := range objects {
		ch <- o
	}
	close(ch)
	return m.On("ListObjects", mock.Anything, bucket, opts).Return((<-chan minio.ObjectInfo)(ch))
}

// Keys wraps object keys for OnList.
func Keys(keys ...string) []minio.ObjectInfo {
	out := make([]minio.ObjectInfo, len(keys))
	for i, k := range keys {
		out[i] = minio.ObjectInfo{Key: k}
	}
	return out
}

func (m *Client) BucketExists(ctx context.Context, bucketName string) (bool, error) {
	args := m.Called(ctx, bucketName)
	return args.Bool(0), args.Error(1)
}

func (m *Client) MakeBucket(ctx context.Context, bucketName string, opts minio.MakeBucketOptions) error {
	return m.Called(ctx, bucketName, opts).Error(0)
}

func (m *Client) PutObject(ctx context.Context, bucketName, objectName string, reader io.Reader, objectSize int64, opts minio.PutObjectOptions) (minio.UploadInfo, error) {
	data, err := io.ReadAll(reader)
	if err != nil {
		return minio.UploadInfo{}, err
	}
	args := m.Called(ctx, bucketName, objectName, bytes.NewReader(data), objectSize, opts)
	if err := args.Error(1); err != nil {
		return minio.UploadInfo{}, err
	}
	m.Seed(objectName, data)
	info, _ := args.Get(0).(minio.UploadInfo)
	info.Key = objectName
	info.Size = int64(len(data))
	return info, nil
}

func (m *Client) GetObject(ctx context.Context, bucketName, objectName string, opts minio.GetObjectOptions) (io.ReadCloser, error) {
	args := m.Called(ctx, bucketName, objectName, opts)
	switch v := args.Get(0).(type) {
	case func(string) (io.ReadCloser, error):
		return v(objectName)
	case io.ReadCloser:
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *Client) RemoveObject(ctx context.Context, bucketName, objectName string, opts minio.RemoveObjectOptions) error {
	if err := m.Called(ctx, bucketName, objectName, opts).Error(0); err != nil {
		return err
	}
	m.mu.Lock()
	delete(m.objects, objectName)
	m.mu.Unlock()
	return nil
}

func (m *Client) ListObjects(ctx context.Context, bucketName string, opts minio.ListObjectsOptions) <-chan minio.ObjectInfo {
	args := m.Called(ctx, bucketName, opts)
	if ch, ok := args.Get(0).(<-chan minio.ObjectInfo); ok {
		return ch
	}
	ch := make(chan minio.ObjectInfo)
	close(ch)
	return ch
}
