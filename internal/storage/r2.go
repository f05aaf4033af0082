package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awshttp "github.com/aws/aws-sdk-go-v2/aws/transport/http"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"
)

// R2Storage implements Storage on Cloudflare R2 through the S3 API.
type R2Storage struct {
	client        *s3.Client
	presignClient *s3.PresignClient
	bucketName    string
	publicURL     string
	logger        *slog.Logger
}

// NewR2Storage creates an R2 client. The endpoint is derived from the account
// id unless cfg.Endpoint is set.
func NewR2Storage(cfg R2Config, logger *slog.Logger) (*R2Storage, error) {
	if cfg.BucketName == "" {
		return nil, fmt.Errorf("r2: bucket name is required")
	}

	region := cfg.Region
	if region == "" {
		region = "auto"
	}

	endpoint := cfg.Endpoint
	if endpoint == "" {
		if cfg.AccountID == "" {
			return nil, fmt.Errorf("r2: account id is required")
		}
		endpoint = fmt.Sprintf("https://%s.r2.cloudflarestorage.com", cfg.AccountID)
	}

	awsCfg := aws.Config{
		Region:      region,
		Credentials: credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(endpoint)
		o.UsePathStyle = true
		o.RequestChecksumCalculation = aws.RequestChecksumCalculationWhenRequired
		o.ResponseChecksumValidation = aws.ResponseChecksumValidationWhenRequired
	})

	logger.Info("initialized R2 storage",
		"bucket", cfg.BucketName,
		"endpoint", endpoint,
		"public_url", cfg.PublicURL,
	)

	return &R2Storage{
		client:        client,
		presignClient: s3.NewPresignClient(client),
		bucketName:    cfg.BucketName,
		publicURL:     strings.TrimSuffix(cfg.PublicURL, "/"),
		logger:        logger,
	}, nil
}

// Put stores data at the specified key. The body is buffered so the SDK can
// sign and checksum it; exported pages are small.
func (s *R2Storage) Put(ctx context.Context, key string, data io.Reader, opts PutOptions) error {
	if err := validateKey(key); err != nil {
		return &StorageError{Op: "Put", Key: key, Err: err}
	}

	if !opts.Overwrite {
		exists, err := s.Exists(ctx, key)
		if err != nil {
			return &StorageError{Op: "Put", Key: key, Err: fmt.Errorf("failed to check existence: %w", err)}
		}
		if exists {
			return &StorageError{Op: "Put", Key: key, Err: ErrKeyExists}
		}
	}

	src := data
	if opts.MaxSize > 0 {
		src = io.LimitReader(data, opts.MaxSize+1)
	}
	body, err := io.ReadAll(src)
	if err != nil {
		return &StorageError{Op: "Put", Key: key, Err: fmt.Errorf("failed to read data: %w", err)}
	}
	if opts.MaxSize > 0 && int64(len(body)) > opts.MaxSize {
		return &StorageError{Op: "Put", Key: key, Err: ErrTooLarge}
	}

	contentType := DetectContentType(opts.ContentType, key, nil)

	input := &s3.PutObjectInput{
		Bucket:        aws.String(s.bucketName),
		Key:           aws.String(key),
		Body:          bytes.NewReader(body),
		ContentLength: aws.Int64(int64(len(body))),
		ContentType:   aws.String(contentType),
	}
	if opts.CacheControl != "" {
		input.CacheControl = aws.String(opts.CacheControl)
	}

	result, err := s.client.PutObject(ctx, input)
	if err != nil {
		return &StorageError{Op: "Put", Key: key, Err: wrapS3Error(err)}
	}

	s.logger.Debug("stored object in R2",
		"key", key,
		"size", len(body),
		"etag", aws.ToString(result.ETag),
		"content_type", contentType,
	)

	return nil
}

// Get retrieves the data at the specified key.
func (s *R2Storage) Get(ctx context.Context, key string) (io.ReadCloser, ObjectInfo, error) {
	if err := validateKey(key); err != nil {
		return nil, ObjectInfo{}, &StorageError{Op: "Get", Key: key, Err: err}
	}

	result, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucketName),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, ObjectInfo{}, &StorageError{Op: "Get", Key: key, Err: wrapS3Error(err)}
	}

	info := ObjectInfo{
		Key:          key,
		Size:         aws.ToInt64(result.ContentLength),
		ContentType:  aws.ToString(result.ContentType),
		LastModified: aws.ToTime(result.LastModified),
		ETag:         aws.ToString(result.ETag),
	}

	return result.Body, info, nil
}

// Delete removes the object at the specified key.
func (s *R2Storage) Delete(ctx context.Context, key string) error {
	if err := validateKey(key); err != nil {
		return &StorageError{Op: "Delete", Key: key, Err: err}
	}

	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucketName),
		Key:    aws.String(key),
	})
	if err != nil {
		return &StorageError{Op: "Delete", Key: key, Err: wrapS3Error(err)}
	}

	s.logger.Debug("deleted object from R2", "key", key)
	return nil
}

// URL returns the public URL when expires is zero, otherwise a presigned GET
// URL valid for expires.
func (s *R2Storage) URL(ctx context.Context, key string, expires time.Duration) (string, error) {
	if err := validateKey(key); err != nil {
		return "", &StorageError{Op: "URL", Key: key, Err: err}
	}

	if expires == 0 {
		if s.publicURL == "" {
			return "", &StorageError{Op: "URL", Key: key, Err: ErrNoPublicURL}
		}
		return s.publicURL + "/" + key, nil
	}

	request, err := s.presignClient.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucketName),
		Key:    aws.String(key),
	}, s3.WithPresignExpires(expires))
	if err != nil {
		return "", &StorageError{Op: "URL", Key: key, Err: fmt.Errorf("failed to generate presigned URL: %w", err)}
	}

	return request.URL, nil
}

// Exists checks if an object exists at the specified key.
func (s *R2Storage) Exists(ctx context.Context, key string) (bool, error) {
	if err := validateKey(key); err != nil {
		return false, &StorageError{Op: "Exists", Key: key, Err: err}
	}

	_, err := s.client.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(s.bucketName),
		Key:    aws.String(key),
	})
	if err != nil {
		wrapped := wrapS3Error(err)
		if errors.Is(wrapped, ErrNotFound) {
			return false, nil
		}
		return false, &StorageError{Op: "Exists", Key: key, Err: wrapped}
	}

	return true, nil
}

// validateKey applies the same key rules as LocalStorage.
func validateKey(key string) error {
	if !fs.ValidPath(key) || key == "." {
		return ErrInvalidKey
	}
	return nil
}

// wrapS3Error maps S3 SDK errors to the storage sentinels.
func wrapS3Error(err error) error {
	var notFound *types.NotFound
	var noSuchKey *types.NoSuchKey
	if errors.As(err, &notFound) || errors.As(err, &noSuchKey) {
		return ErrNotFound
	}

	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.ErrorCode() {
		case "NotFound", "NoSuchKey":
			return ErrNotFound
		case "AccessDenied", "Forbidden":
			return ErrAccessDenied
		}
	}

	var respErr *awshttp.ResponseError
	if errors.As(err, &respErr) {
		switch respErr.HTTPStatusCode() {
		case http.StatusNotFound:
			return ErrNotFound
		case http.StatusForbidden:
			return ErrAccessDenied
		}
	}

	return fmt.Errorf("R2 operation failed: %w", err)
}
