package s3

//go:generate go run go.uber.org/mock/mockgen -source=./s3.go -destination=./mocks/s3_mock.go -package=mocks

import (
	"bytes"
	"context"
	"fmt"
	"hostel/config"
	"hostel/infras/otel"
	"hostel/shared/constant"
	"path"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsConfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/rs/zerolog/log"
)

const (
	otelAttrObjectKey = "object_key"
	otelAttrBucket    = "bucket"
	otelAttrSize      = "size"
)

// Storage keeps report archives in an S3 compatible bucket.
type Storage interface {
	Upload(ctx context.Context, directory, fileName, contentType string, data []byte) (url string, err error)
}

type storageImpl struct {
	client *s3.Client
	bucket string
	domain string
	otel   otel.Otel
}

func New(cfg *config.Config, otel otel.Otel) Storage {
	staticProvider := credentials.NewStaticCredentialsProvider(
		cfg.External.S3.AccessKeyID,
		cfg.External.S3.SecretAccessKey,
		"",
	)

	awsCfg, err := awsConfig.LoadDefaultConfig(
		context.Background(),
		awsConfig.WithCredentialsProvider(staticProvider),
	)
	if err != nil {
		log.Error().Err(err).Msg("failed to load s3 configuration")
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(cfg.External.S3.APIEndpoint)
		o.UsePathStyle = true
		o.Region = "auto"
	})

	domain := cfg.External.S3.PublicDomain
	if domain == constant.Empty {
		domain = strings.TrimSuffix(cfg.External.S3.APIEndpoint, "/") + "/" + cfg.External.S3.BucketName
	}

	return &storageImpl{
		client: client,
		bucket: cfg.External.S3.BucketName,
		domain: strings.TrimSuffix(domain, "/"),
		otel:   otel,
	}
}

// Upload stores data under directory/fileName and returns its public URL.
func (s *storageImpl) Upload(ctx context.Context, directory, fileName, contentType string, data []byte) (url string, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelS3ScopeName, constant.OtelS3ScopeName+".Upload")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	objectKey := path.Join(directory, fileName)

	scope.SetAttributes(map[string]any{
		otelAttrObjectKey: objectKey,
		otelAttrBucket:    s.bucket,
		otelAttrSize:      len(data),
	})

	reader := bytes.NewReader(data)

	_, err = s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(objectKey),
		Body:          reader,
		ContentType:   aws.String(contentType),
		ContentLength: aws.Int64(reader.Size()),
	})
	if err != nil {
		log.Error().Err(err).Str("key", objectKey).Msg("failed to upload object")

		return constant.Empty, fmt.Errorf("failed to upload object: %w", err)
	}

	return s.domain + "/" + objectKey, nil
}
