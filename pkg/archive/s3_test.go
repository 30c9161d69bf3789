package archive_test

import (
	"context"
	"io"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/smithy-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/vehiclekit/pkg/archive"
)

type mockS3Client struct {
	putObjectFunc func(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	inputs        []*s3.PutObjectInput
}

func (m *mockS3Client) PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	m.inputs = append(m.inputs, params)
	if m.putObjectFunc != nil {
		return m.putObjectFunc(ctx, params, optFns...)
	}
	return &s3.PutObjectOutput{}, nil
}

func newS3Archive(t *testing.T, cfg archive.S3Config, client *mockS3Client) *archive.S3 {
	t.Helper()
	arc, err := archive.NewS3(context.Background(), cfg, archive.WithS3Client(client))
	require.NoError(t, err)
	return arc
}

func TestNewS3(t *testing.T) {
	t.Parallel()

	t.Run("requires bucket and region", func(t *testing.T) {
		t.Parallel()
		_, err := archive.NewS3(context.Background(), archive.S3Config{Region: "us-east-1"})
		assert.ErrorIs(t, err, archive.ErrInvalidConfig)

		_, err = archive.NewS3(context.Background(), archive.S3Config{Bucket: "reports"})
		assert.ErrorIs(t, err, archive.ErrInvalidConfig)
	})
}

func TestS3Store(t *testing.T) {
	t.Parallel()

	cfg := archive.S3Config{Bucket: "reports", Region: "us-east-1"}

	t.Run("uploads with key, body, and content type", func(t *testing.T) {
		t.Parallel()
		client := &mockS3Client{}
		arc := newS3Archive(t, cfg, client)

		location, err := arc.Store(context.Background(), "fleet-20240315-093000.pdf", []byte("%PDF-1.4"))
		require.NoError(t, err)
		assert.Equal(t, "https://reports.s3.us-east-1.amazonaws.com/fleet-20240315-093000.pdf", location)

		require.Len(t, client.inputs, 1)
		in := client.inputs[0]
		assert.Equal(t, "reports", *in.Bucket)
		assert.Equal(t, "fleet-20240315-093000.pdf", *in.Key)
		assert.Equal(t, "application/pdf", *in.ContentType)

		body, err := io.ReadAll(in.Body)
		require.NoError(t, err)
		assert.Equal(t, []byte("%PDF-1.4"), body)
	})

	t.Run("prefix is prepended to the key", func(t *testing.T) {
		t.Parallel()
		client := &mockS3Client{}
		prefixed := cfg
		prefixed.Prefix = "archive/"
		arc := newS3Archive(t, prefixed, client)

		location, err := arc.Store(context.Background(), "fleet.csv", []byte("a,b"))
		require.NoError(t, err)
		assert.Equal(t, "https://reports.s3.us-east-1.amazonaws.com/archive/fleet.csv", location)
		assert.Equal(t, "archive/fleet.csv", *client.inputs[0].Key)
	})

	t.Run("custom endpoint shapes the location", func(t *testing.T) {
		t.Parallel()
		client := &mockS3Client{}
		compat := cfg
		compat.Endpoint = "https://minio.local:9000"
		compat.ForcePathStyle = true
		arc := newS3Archive(t, compat, client)

		location, err := arc.Store(context.Background(), "fleet.txt", []byte("x"))
		require.NoError(t, err)
		assert.Equal(t, "https://minio.local:9000/reports/fleet.txt", location)
	})

	t.Run("access denied maps to the sentinel", func(t *testing.T) {
		t.Parallel()
		client := &mockS3Client{
			putObjectFunc: func(context.Context, *s3.PutObjectInput, ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
				return nil, &smithy.GenericAPIError{Code: "AccessDenied", Message: "denied"}
			},
		}
		arc := newS3Archive(t, cfg, client)

		_, err := arc.Store(context.Background(), "fleet.pdf", []byte("x"))
		assert.ErrorIs(t, err, archive.ErrAccessDenied)
	})

	t.Run("missing bucket maps to the sentinel", func(t *testing.T) {
		t.Parallel()
		client := &mockS3Client{
			putObjectFunc: func(context.Context, *s3.PutObjectInput, ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
				return nil, &smithy.GenericAPIError{Code: "NoSuchBucket", Message: "gone"}
			},
		}
		arc := newS3Archive(t, cfg, client)

		_, err := arc.Store(context.Background(), "fleet.pdf", []byte("x"))
		assert.ErrorIs(t, err, archive.ErrBucketNotFound)
	})

	t.Run("rejects traversal names before any call", func(t *testing.T) {
		t.Parallel()
		client := &mockS3Client{}
		arc := newS3Archive(t, cfg, client)

		_, err := arc.Store(context.Background(), "../escape.pdf", []byte("x"))
		assert.ErrorIs(t, err, archive.ErrInvalidName)
		assert.Empty(t, client.inputs)
	})
}
