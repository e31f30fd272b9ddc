package storage

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
	"github.com/promoforge/adgen-backend/internal/config"
)

const (
	sourceVideoPrefix = "source-videos"
	videoContentType  = "video/mp4"
)

type awsRepository struct {
	client     *s3.Client
	httpClient *http.Client
	bucket     string
}

func NewAwsRepository(awsClient *s3.Client, cfg *config.Config) Storage {
	return &awsRepository{
		client:     awsClient,
		httpClient: &http.Client{Timeout: 5 * time.Minute},
		bucket:     cfg.S3.Bucket,
	}
}

// StoreFromURL downloads the source video and uploads it under a unique
// key in the input bucket. Returns the s3:// reference handed to the
// analysis provider.
func (a *awsRepository) StoreFromURL(ctx context.Context, sourceURL string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, sourceURL, nil)
	if err != nil {
		return "", fmt.Errorf("failed to build download request: %w", err)
	}

	res, err := a.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to download video: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		return "", fmt.Errorf("failed to download video: http %d", res.StatusCode)
	}

	key := fmt.Sprintf("%s/%s.mp4", sourceVideoPrefix, uuid.New())
	contentType := videoContentType
	if _, err = a.client.PutObject(
		ctx,
		&s3.PutObjectInput{
			Bucket:      &a.bucket,
			Key:         &key,
			Body:        res.Body,
			ContentType: &contentType,
		},
	); err != nil {
		return "", fmt.Errorf("failed to upload video: %w", err)
	}

	return fmt.Sprintf("s3://%s/%s", a.bucket, key), nil
}
