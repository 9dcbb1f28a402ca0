package storage

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
)

type CloudflareR2SourceConfig struct {
	AccountID       string
	AccessKeyID     string
	SecretAccessKey string
	BucketName      string
	ObjectKey       string
}

// objectGetter - часть s3.Client, которая нужна источнику. Выделено для тестов.
type objectGetter interface {
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

type cloudflareR2Source struct {
	client     objectGetter
	bucketName string
	objectKey  string
}

// NewCloudflareR2Source читает JSON-снимок турниров из бакета Cloudflare R2.
func NewCloudflareR2Source(ctx context.Context, cfg CloudflareR2SourceConfig) (Source, error) {
	if cfg.AccountID == "" || cfg.AccessKeyID == "" || cfg.SecretAccessKey == "" || cfg.BucketName == "" || cfg.ObjectKey == "" {
		return nil, errors.New("invalid Cloudflare R2 configuration: all fields are required")
	}

	r2Resolver := aws.EndpointResolverWithOptionsFunc(func(service, region string, options ...interface{}) (aws.Endpoint, error) {
		return aws.Endpoint{
			URL:           fmt.Sprintf("https://%s.r2.cloudflarestorage.com", cfg.AccountID),
			SigningRegion: "auto",
		}, nil
	})

	sdkCfg, err := config.LoadDefaultConfig(ctx,
		config.WithEndpointResolverWithOptions(r2Resolver),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, "")),
		config.WithRegion("auto"), // R2 требует регион "auto"
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS SDK config for R2: %w", err)
	}

	return newCloudflareR2Source(s3.NewFromConfig(sdkCfg), cfg.BucketName, cfg.ObjectKey), nil
}

func newCloudflareR2Source(client objectGetter, bucketName, objectKey string) *cloudflareR2Source {
	return &cloudflareR2Source{
		client:     client,
		bucketName: bucketName,
		objectKey:  objectKey,
	}
}

func (s *cloudflareR2Source) Open(ctx context.Context) (io.ReadCloser, error) {
	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucketName),
		Key:    aws.String(s.objectKey),
	})
	if err != nil {
		var noSuchKey *types.NoSuchKey
		if errors.As(err, &noSuchKey) {
			return nil, fmt.Errorf("%w: object %s/%s", ErrSourceNotFound, s.bucketName, s.objectKey)
		}
		return nil, fmt.Errorf("%w: get object from R2 (key: %s): %v", ErrSourceUnavailable, s.objectKey, err)
	}
	return out.Body, nil
}

func (s *cloudflareR2Source) Name() string {
	return "r2:" + s.bucketName + "/" + s.objectKey
}
