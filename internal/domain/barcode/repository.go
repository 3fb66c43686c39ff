package barcode

import (
	"context"
)

// Repository - постоянное хранилище записей.
type Repository interface {
	Create(ctx context.Context, record *Record) error
	// List returns records ordered by payload ascending, ties broken by id.
	List(ctx context.Context) ([]Record, error)
	Get(ctx context.Context, id RecordID) (*Record, error)
	// Delete removes every matching record in one transaction and reports how many were removed.
	Delete(ctx context.Context, ids []RecordID) (int, error)
	FindByChecksum(ctx context.Context, checksum string) ([]Record, error)
}
