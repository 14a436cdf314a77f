package wordlist

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"
)

// S3Client defines the S3 operations used by S3Source.
type S3Client interface {
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

// S3Config configures access to S3 or an S3-compatible service.
type S3Config struct {
	Region         string `env:"JWTCRACK_S3_REGION" envDefault:"us-east-1"`
	AccessKeyID    string `env:"JWTCRACK_S3_ACCESS_KEY_ID"`
	SecretKey      string `env:"JWTCRACK_S3_SECRET_KEY"`
	Endpoint       string `env:"JWTCRACK_S3_ENDPOINT"`                          // Optional: for S3-compatible services
	ForcePathStyle bool   `env:"JWTCRACK_S3_FORCE_PATH_STYLE" envDefault:"false"` // For MinIO and friends
}

// S3Option configures NewS3Client.
type S3Option func(*s3Options)

type s3Options struct {
	httpClient      *http.Client
	s3ConfigOptions []func(*config.LoadOptions) error
	s3ClientOptions []func(*s3.Options)
}

// WithHTTPClient sets a custom HTTP client for S3 requests.
func WithHTTPClient(client *http.Client) S3Option {
	return func(o *s3Options) {
		o.httpClient = client
	}
}

// WithS3ConfigOption adds a custom AWS config option.
func WithS3ConfigOption(option func(*config.LoadOptions) error) S3Option {
	return func(o *s3Options) {
		o.s3ConfigOptions = append(o.s3ConfigOptions, option)
	}
}

// WithS3ClientOption adds a custom S3 client option.
func WithS3ClientOption(option func(*s3.Options)) S3Option {
	return func(o *s3Options) {
		o.s3ClientOptions = append(o.s3ClientOptions, option)
	}
}

// NewS3Client builds an S3 client from cfg. Static credentials are used when
// both key fields are set; otherwise the default AWS credential chain applies.
func NewS3Client(ctx context.Context, cfg S3Config, opts ...S3Option) (*s3.Client, error) {
	if cfg.Region == "" {
		return nil, ErrInvalidConfig
	}

	options := &s3Options{}
	for _, opt := range opts {
		opt(options)
	}

	awsOptions := []func(*config.LoadOptions) error{
		config.WithRegion(cfg.Region),
	}

	if cfg.AccessKeyID != "" && cfg.SecretKey != "" {
		awsOptions = append(awsOptions,
			config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
				cfg.AccessKeyID,
				cfg.SecretKey,
				"",
			)),
		)
	}

	if options.httpClient != nil {
		awsOptions = append(awsOptions, config.WithHTTPClient(options.httpClient))
	}

	awsOptions = append(awsOptions, options.s3ConfigOptions...)

	awsConfig, err := config.LoadDefaultConfig(ctx, awsOptions...)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFailedToConfig, err)
	}

	return s3.NewFromConfig(awsConfig, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
		o.UsePathStyle = cfg.ForcePathStyle

		for _, opt := range options.s3ClientOptions {
			opt(o)
		}
	}), nil
}

// S3Source reads a word list stored as a single S3 object.
type S3Source struct {
	client S3Client
	bucket string
	key    string
}

// NewS3Source returns a source for the object named by rawURL (s3://bucket/key).
func NewS3Source(client S3Client, rawURL string) (*S3Source, error) {
	if client == nil {
		return nil, ErrInvalidConfig
	}

	bucket, key, err := ParseS3URL(rawURL)
	if err != nil {
		return nil, err
	}

	return &S3Source{client: client, bucket: bucket, key: key}, nil
}

// ParseS3URL splits an s3://bucket/key url into its bucket and object key.
func ParseS3URL(rawURL string) (bucket, key string, err error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", "", errors.Join(ErrInvalidS3URL, err)
	}
	if u.Scheme != "s3" || u.Host == "" {
		return "", "", fmt.Errorf("%w: %q", ErrInvalidS3URL, rawURL)
	}

	key = strings.TrimPrefix(u.Path, "/")
	if key == "" || strings.HasSuffix(key, "/") {
		return "", "", fmt.Errorf("%w: %q", ErrInvalidS3URL, rawURL)
	}

	return u.Host, key, nil
}

// Open starts downloading the object. The caller must close the returned body.
func (s *S3Source) Open(ctx context.Context) (io.ReadCloser, error) {
	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.key),
	})
	if err != nil {
		return nil, classifyS3Error(err, s.String())
	}
	if out.Body == nil {
		return io.NopCloser(strings.NewReader("")), nil
	}
	return out.Body, nil
}

func (s *S3Source) String() string {
	return "s3://" + s.bucket + "/" + s.key
}

// classifyS3Error converts AWS SDK errors to package errors for consistent handling.
func classifyS3Error(err error, object string) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: get %s", ErrOperationTimeout, object)
	}
	if errors.Is(err, context.Canceled) {
		return fmt.Errorf("%w: get %s", ErrOperationCanceled, object)
	}

	var nsk *types.NoSuchKey
	if errors.As(err, &nsk) {
		return fmt.Errorf("%w: %s", ErrObjectNotFound, object)
	}

	var nsb *types.NoSuchBucket
	if errors.As(err, &nsb) {
		return fmt.Errorf("%w: %s", ErrBucketNotFound, object)
	}

	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		code := apiErr.ErrorCode()
		switch code {
		case "AccessDenied", "Forbidden":
			return fmt.Errorf("%w: %s", ErrAccessDenied, object)
		case "SlowDown", "ServiceUnavailable", "RequestTimeout":
			return fmt.Errorf("%w: %s", ErrServiceUnavailable, object)
		case "NoSuchKey", "NotFound":
			return fmt.Errorf("%w: %s", ErrObjectNotFound, object)
		case "NoSuchBucket":
			return fmt.Errorf("%w: %s", ErrBucketNotFound, object)
		default:
			return fmt.Errorf("get %s failed (code: %s): %w", object, code, err)
		}
	}

	return fmt.Errorf("get %s failed: %w", object, err)
}
