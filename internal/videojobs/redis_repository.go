package videojobs

import (
	"context"

	"github.com/promoforge/adgen-backend/internal/models"
)

// Pipeline channels. One consumer group per channel, at-least-once delivery.
const (
	IngestQueueKey = "ingest-and-analyze"
	RenderQueueKey = "render-video"
)

type QueueRepository interface {
	EnqueueJob(ctx context.Context, key string, msg *models.QueueMessage) error
	DequeueJob(ctx context.Context, key string) (*models.QueueMessage, error)
}
