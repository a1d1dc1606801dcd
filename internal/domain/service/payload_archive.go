package service

import "context"

// PayloadArchive keeps raw upstream payloads for later inspection.
type PayloadArchive interface {
	Save(ctx context.Context, key string, payload []byte) error
	Close() error
}
