package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	appcfg "citizens-voice-http-service/internal/infrastructure/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsCfg "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// S3Store uploads objects into a single S3 bucket, one folder per logical
// bucket. Objects are public-read via the bucket policy; URLs are derived,
// not presigned.
type S3Store struct {
	Client         *s3.Client
	Bucket         string
	Region         string
	PublicEndpoint string
}

// NewS3Store loads AWS configuration, honouring AWS_ENDPOINT_URL for
// localstack-style development endpoints.
func NewS3Store(ctx context.Context, cfg *appcfg.Config) (*S3Store, error) {
	if cfg.S3Bucket == "" {
		return nil, fmt.Errorf("S3_BUCKET is required for the s3 storage driver")
	}

	var opts []func(*awsCfg.LoadOptions) error
	opts = append(opts, awsCfg.WithRegion(cfg.S3Region))

	awsConfig, err := awsCfg.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	endpoint := os.Getenv("AWS_ENDPOINT_URL")
	client := s3.NewFromConfig(awsConfig, func(o *s3.Options) {
		if endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
			o.UsePathStyle = true
		}
	})

	return &S3Store{
		Client:         client,
		Bucket:         cfg.S3Bucket,
		Region:         cfg.S3Region,
		PublicEndpoint: strings.TrimRight(cfg.S3PublicEndpoint, "/"),
	}, nil
}

// Upload puts the object and returns its public URL
func (s *S3Store) Upload(ctx context.Context, bucket, key, contentType string, body io.Reader) (string, error) {
	objectKey := bucket + "/" + key
	input := &s3.PutObjectInput{
		Bucket:      aws.String(s.Bucket),
		Key:         aws.String(objectKey),
		Body:        body,
		ContentType: aws.String(contentType),
	}

	if _, err := s.Client.PutObject(ctx, input); err != nil {
		return "", fmt.Errorf("s3 put object: %w", err)
	}

	if s.PublicEndpoint != "" {
		return fmt.Sprintf("%s/%s", s.PublicEndpoint, objectKey), nil
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.Bucket, s.Region, objectKey), nil
}
