package accounts

import (
	"context"

	"github.com/danunant/bbank/internal/models"
)

// Repository describes persistence operations for Account records.
//
// UpdateBalance exists solely for the transfer engine; nothing else may
// change an account's balance. Update deliberately leaves balance, number
// and owner untouched.
type Repository interface {
	// Create inserts a new account. A routing-number collision yields
	// common.ErrorAccountNumberTaken.
	Create(ctx context.Context, account *models.Account) error

	// Update changes the mutable fields (display name and type) of an
	// existing account.
	Update(ctx context.Context, account *models.Account) error

	// UpdateBalance sets the balance of an account in minor units.
	UpdateBalance(ctx context.Context, id string, balanceSatang int64) error

	// GetByID returns the account with the given id, or common.ErrorNotFound.
	GetByID(ctx context.Context, id string) (*models.Account, error)

	// GetByNumber returns the account with the given routing number, or
	// common.ErrorNotFound.
	GetByNumber(ctx context.Context, number string) (*models.Account, error)

	// ListByOwner returns the owner's accounts in insertion order.
	ListByOwner(ctx context.Context, ownerID string) ([]models.Account, error)

	// NumberExists reports whether any account uses the given routing number.
	NumberExists(ctx context.Context, number string) (bool, error)

	// Delete removes an account record. Missing accounts yield
	// common.ErrorNotFound.
	Delete(ctx context.Context, id string) error
}
