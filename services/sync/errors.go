package sync

import (
	"context"
	"errors"
	"fmt"

	backupRepo "pcare/database/repository/backup"
	scheduleRepo "pcare/database/repository/schedule"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/x/mongo/driver/topology"
)

// ErrNotFound signals that the restore or delete target does not exist.
var ErrNotFound = errors.New("not found")

// ErrStorageUnavailable signals that the store could not be reached at all.
var ErrStorageUnavailable = errors.New("storage unavailable")

// StorageError wraps a store failure for an operation that reached the store
// but did not complete. Reads and writes are distinguished for diagnostics.
type StorageError struct {
	Op    string
	Write bool
	Err   error
}

func (e *StorageError) Error() string {
	kind := "read"
	if e.Write {
		kind = "write"
	}
	return fmt.Sprintf("%s: storage %s failed: %v", e.Op, kind, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }

// classify translates a repository error into the service taxonomy. Driver
// timeouts and server-selection failures mean the store is unreachable;
// anything else is a failed operation against a reachable store.
func classify(op string, write bool, err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, backupRepo.ErrNotFound), errors.Is(err, scheduleRepo.ErrNotFound):
		return fmt.Errorf("%s: %w", op, ErrNotFound)
	case isUnavailable(err):
		return fmt.Errorf("%s: %w: %v", op, ErrStorageUnavailable, err)
	default:
		return &StorageError{Op: op, Write: write, Err: err}
	}
}

func isUnavailable(err error) bool {
	if mongo.IsTimeout(err) || mongo.IsNetworkError(err) {
		return true
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var selErr topology.ServerSelectionError
	return errors.As(err, &selErr)
}
