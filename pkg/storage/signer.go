package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// URLSigner converts an opaque storage locator into a time-boxed,
// credential-free access URL.
type URLSigner interface {
	SignedURL(ctx context.Context, locator string) (string, error)
}

// S3Signer mints presigned GET URLs against an S3-compatible backend
// (Wasabi in production). It never reads object contents.
type S3Signer struct {
	presign *s3.PresignClient
	ttl     time.Duration
}

type S3SignerConfig struct {
	Endpoint        string
	Region          string
	AccessKeyID     string
	SecretAccessKey string
	TTL             time.Duration
}

func NewS3Signer(ctx context.Context, cfg S3SignerConfig) (*S3Signer, error) {
	awsCfg, err := config.LoadDefaultConfig(ctx,
		config.WithRegion(cfg.Region),
		config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("load storage credentials: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
		// Wasabi and other S3-compatibles expect path-style addressing.
		o.UsePathStyle = true
	})

	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = time.Hour
	}

	return &S3Signer{
		presign: s3.NewPresignClient(client),
		ttl:     ttl,
	}, nil
}

func (s *S3Signer) SignedURL(ctx context.Context, locator string) (string, error) {
	bucket, key, err := ParseLocator(locator)
	if err != nil {
		return "", err
	}

	req, err := s.presign.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	}, s3.WithPresignExpires(s.ttl))
	if err != nil {
		return "", fmt.Errorf("presign %s/%s: %w", bucket, key, err)
	}

	return req.URL, nil
}
