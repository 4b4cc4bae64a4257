package transactions

import (
	"context"

	"github.com/danunant/bbank/internal/models"
)

// Repository describes persistence operations for the append-only
// transaction log. Records are immutable: there is no update or delete.
type Repository interface {
	// Insert appends one transaction record.
	Insert(ctx context.Context, txn *models.Txn) error

	// GetByID returns a transaction by its identifier, or common.ErrorNotFound.
	GetByID(ctx context.Context, id string) (*models.Txn, error)

	// ListForAccounts returns every transaction whose source or destination
	// is one of the given account ids, newest first.
	ListForAccounts(ctx context.Context, accountIDs []string) ([]models.Txn, error)
}
