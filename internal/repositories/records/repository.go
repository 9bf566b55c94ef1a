package records

import (
	"context"

	"github.com/avasiljevs/gpavault/internal/models"
)

// Repository describes persistence for saved GPA records.
type Repository interface {
	// Append stores a new record and writes the assigned id back into it.
	Append(ctx context.Context, record *models.Record) error

	// ListByUser returns all records owned by userID, in no particular order.
	// Rows with an unparseable saved date are skipped with a warning rather
	// than failing the whole listing.
	ListByUser(ctx context.Context, userID string) ([]models.Record, error)

	// DeleteOne removes the record with the given id if it belongs to userID.
	// A missing record is success, not an error.
	DeleteOne(ctx context.Context, userID string, id int64) error

	// DeleteAll removes every record owned by userID.
	DeleteAll(ctx context.Context, userID string) error
}
