package storage

import "context"

// Storage moves source videos into durable object storage.
type Storage interface {
	StoreFromURL(ctx context.Context, sourceURL string) (string, error)
}
