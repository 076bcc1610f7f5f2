package service

import (
	"bytes"
	"context"
	"fmt"
	"time"

	appconfig "careerworld/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/rs/zerolog/log"
)

const uploadTimeout = 30 * time.Second

// StorageService archives uploaded documents. Archival is independent of the
// analysis pipeline: callers catch and ignore failures.
type StorageService interface {
	UploadDocument(ctx context.Context, filename string, contents []byte, mimeType string) (string, error)
}

type s3StorageService struct {
	cfg *appconfig.Storage
}

func NewStorageService(cfg *appconfig.Config) StorageService {
	return &s3StorageService{cfg: &cfg.Storage}
}

func (s *s3StorageService) client(ctx context.Context) (*s3.Client, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(s.cfg.Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			s.cfg.AccessKey,
			s.cfg.SecretKey,
			"",
		)))
	if err != nil {
		return nil, err
	}

	return s3.NewFromConfig(cfg, func(o *s3.Options) {
		if s.cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(s.cfg.Endpoint)
		}
		o.UsePathStyle = s.cfg.Endpoint != ""
	}), nil
}

func (s *s3StorageService) UploadDocument(ctx context.Context, filename string, contents []byte, mimeType string) (string, error) {
	if s.cfg.Bucket == "" {
		return "", fmt.Errorf("storage bucket not configured")
	}

	ctx, cancel := context.WithTimeout(ctx, uploadTimeout)
	defer cancel()

	client, err := s.client(ctx)
	if err != nil {
		return "", fmt.Errorf("init storage client: %w", err)
	}

	key := fmt.Sprintf("resumes/%d-%s", time.Now().UnixNano(), filename)
	_, err = client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.cfg.Bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(contents),
		ContentType: aws.String(mimeType),
	})
	if err != nil {
		return "", fmt.Errorf("upload document: %w", err)
	}

	url := fmt.Sprintf("%s/%s/%s", s.cfg.Endpoint, s.cfg.Bucket, key)
	log.Info().Str("key", key).Msg("Document archived")
	return url, nil
}
