package archive

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"mime"
	"net/http"
	"path"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/smithy-go"
)

// S3Client is the subset of the S3 API the archive needs.
// Tests plug in mocks.
type S3Client interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// S3Config configures the S3 archive backend.
type S3Config struct {
	Bucket      string `env:"ARCHIVE_S3_BUCKET"`
	Region      string `env:"ARCHIVE_S3_REGION"`
	AccessKeyID string `env:"ARCHIVE_S3_ACCESS_KEY_ID"`
	SecretKey   string `env:"ARCHIVE_S3_SECRET_KEY"`
	// Endpoint targets S3-compatible services. Empty means AWS proper.
	Endpoint string `env:"ARCHIVE_S3_ENDPOINT"`
	// BaseURL overrides the public URL base for stored documents.
	BaseURL string `env:"ARCHIVE_S3_BASE_URL"`
	// ForcePathStyle is required by most S3-compatible services.
	ForcePathStyle bool `env:"ARCHIVE_S3_FORCE_PATH_STYLE"`
	// Prefix is prepended to every stored name, e.g. "reports".
	Prefix string `env:"ARCHIVE_S3_PREFIX"`
}

// S3Option configures the S3 archive.
type S3Option func(*s3Options)

type s3Options struct {
	client     S3Client
	httpClient *http.Client
}

// WithS3Client sets a pre-configured client, bypassing AWS config loading.
func WithS3Client(client S3Client) S3Option {
	return func(o *s3Options) {
		o.client = client
	}
}

// WithHTTPClient sets a custom HTTP client for S3 requests.
func WithHTTPClient(client *http.Client) S3Option {
	return func(o *s3Options) {
		o.httpClient = client
	}
}

// S3 stores documents in an S3 bucket.
// It is safe for concurrent use.
type S3 struct {
	client  S3Client
	bucket  string
	prefix  string
	baseURL string
}

// NewS3 creates an S3-backed archive.
func NewS3(ctx context.Context, cfg S3Config, opts ...S3Option) (*S3, error) {
	if cfg.Bucket == "" || cfg.Region == "" {
		return nil, ErrInvalidConfig
	}

	options := &s3Options{}
	for _, opt := range opts {
		opt(options)
	}

	client := options.client
	if client == nil {
		loadOpts := []func(*awsconfig.LoadOptions) error{
			awsconfig.WithRegion(cfg.Region),
		}
		if cfg.AccessKeyID != "" && cfg.SecretKey != "" {
			loadOpts = append(loadOpts, awsconfig.WithCredentialsProvider(
				credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretKey, ""),
			))
		}
		if options.httpClient != nil {
			loadOpts = append(loadOpts, awsconfig.WithHTTPClient(options.httpClient))
		}

		awsCfg, err := awsconfig.LoadDefaultConfig(ctx, loadOpts...)
		if err != nil {
			return nil, errors.Join(ErrInvalidConfig, err)
		}

		client = s3.NewFromConfig(awsCfg, func(o *s3.Options) {
			if cfg.Endpoint != "" {
				o.BaseEndpoint = aws.String(cfg.Endpoint)
			}
			o.UsePathStyle = cfg.ForcePathStyle
		})
	}

	baseURL := cfg.BaseURL
	if baseURL == "" {
		if cfg.Endpoint != "" {
			baseURL = fmt.Sprintf("%s/%s", strings.TrimSuffix(cfg.Endpoint, "/"), cfg.Bucket)
		} else {
			baseURL = fmt.Sprintf("https://%s.s3.%s.amazonaws.com", cfg.Bucket, cfg.Region)
		}
	}

	return &S3{
		client:  client,
		bucket:  cfg.Bucket,
		prefix:  strings.Trim(cfg.Prefix, "/"),
		baseURL: strings.TrimSuffix(baseURL, "/"),
	}, nil
}

// Store uploads the document and returns its public URL.
func (s *S3) Store(ctx context.Context, name string, data []byte) (string, error) {
	if !validName(name) {
		return "", fmt.Errorf("%w: %q", ErrInvalidName, name)
	}

	key := name
	if s.prefix != "" {
		key = s.prefix + "/" + name
	}

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType(name)),
	})
	if err != nil {
		return "", classifyS3Error(err)
	}

	return s.baseURL + "/" + key, nil
}

func contentType(name string) string {
	if ct := mime.TypeByExtension(path.Ext(name)); ct != "" {
		return ct
	}
	return "application/octet-stream"
}

// classifyS3Error maps service failures onto the package sentinels.
func classifyS3Error(err error) error {
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.ErrorCode() {
		case "AccessDenied":
			return errors.Join(ErrAccessDenied, err)
		case "NoSuchBucket":
			return errors.Join(ErrBucketNotFound, err)
		}
	}
	return errors.Join(ErrStoreFailed, err)
}
