package service

import "context"

// SyncLock guarantees one scheduler cycle runs at a time across replicas.
type SyncLock interface {
	// Acquire returns false, without error, when another holder owns the lock.
	Acquire(ctx context.Context) (bool, error)
	Release(ctx context.Context) error
}
