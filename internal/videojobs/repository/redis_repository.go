package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/go-redis/redis/v8"
	"github.com/promoforge/adgen-backend/internal/models"
	"github.com/promoforge/adgen-backend/internal/videojobs"
)

type jobQueueRepo struct {
	redisClient *redis.Client
}

func NewJobQueueRepo(redisClient *redis.Client) videojobs.QueueRepository {
	return &jobQueueRepo{
		redisClient: redisClient,
	}
}

func (q *jobQueueRepo) EnqueueJob(ctx context.Context, key string, msg *models.QueueMessage) error {
	data, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to marshal queue message: %w", err)
	}
	if err := q.redisClient.LPush(ctx, key, data).Err(); err != nil {
		return fmt.Errorf("failed to enqueue job on %s: %w", key, err)
	}
	return nil
}

// DequeueJob blocks until a message arrives on the channel. Delivery is
// at-least-once: a consumer that dies mid-message loses no data only if
// the producer re-enqueues, so stage handlers guard on the job's entry
// state instead of assuming exactly-once.
func (q *jobQueueRepo) DequeueJob(ctx context.Context, key string) (*models.QueueMessage, error) {
	res, err := q.redisClient.BRPop(ctx, 0, key).Result()
	if err != nil {
		return nil, err
	}
	if len(res) < 2 {
		return nil, fmt.Errorf("malformed BRPOP reply on %s", key)
	}
	msg := &models.QueueMessage{}
	if err := json.Unmarshal([]byte(res[1]), msg); err != nil {
		return nil, fmt.Errorf("error unmarshalling queue message: %v", err)
	}
	return msg, nil
}
