package source

import (
	"context"
	"fmt"
	"io"

	"github.com/minio/minio-go/v7"

	"arkdata/core/storage"
)

// RemoteSource reads tables from an object storage bucket holding a mirror of
// the upstream game data repository, laid out as
// <region>/gamedata/excel/<table>.json.
type RemoteSource struct {
	client storage.Client
	bucket string
	region Region
}

// NewRemote creates a source over the given bucket and region.
func NewRemote(client storage.Client, bucket string, region Region) *RemoteSource {
	return &RemoteSource{client: client, bucket: bucket, region: region}
}

func (s *RemoteSource) objectName(table Table) string {
	return fmt.Sprintf("%s/gamedata/%s", s.region, table.Path())
}

// FetchTable downloads the table object.
func (s *RemoteSource) FetchTable(ctx context.Context, table Table) ([]byte, error) {
	obj, err := s.client.GetObject(ctx, s.bucket, s.objectName(table), minio.GetObjectOptions{})
	if err != nil {
		return nil, classifyStorageError(table, err)
	}
	defer obj.Close()

	// The client opens objects lazily, so missing keys surface on read.
	data, err := io.ReadAll(obj)
	if err != nil {
		return nil, classifyStorageError(table, err)
	}
	return data, nil
}

// StatTable checks the table object exists in the bucket.
func (s *RemoteSource) StatTable(ctx context.Context, table Table) error {
	if _, err := s.client.StatObject(ctx, s.bucket, s.objectName(table), minio.StatObjectOptions{}); err != nil {
		return classifyStorageError(table, err)
	}
	return nil
}

func classifyStorageError(table Table, err error) error {
	resp := minio.ToErrorResponse(err)
	if resp.Code == "NoSuchKey" || resp.Code == "NoSuchBucket" {
		return fmt.Errorf("table %s: %w", table, ErrNotFound)
	}
	return fmt.Errorf("table %s: %w: %v", table, ErrUnavailable, err)
}
