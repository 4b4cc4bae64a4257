package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/danunant/bbank/internal/common"
	"github.com/danunant/bbank/internal/dbx"
	"github.com/danunant/bbank/internal/logging"
	"github.com/danunant/bbank/internal/models"
	"github.com/danunant/bbank/internal/repositories/accounts"
	"github.com/danunant/bbank/internal/repositories/transactions"
	"github.com/danunant/bbank/internal/store"
	"github.com/google/uuid"
)

// DefaultTransferDescription replaces a blank transfer description.
const DefaultTransferDescription = "Transfer"

// generateNumberAttempts bounds the retry loop for random account numbers.
const generateNumberAttempts = 32

// Session is the slice of AuthService the ledger needs: who is acting.
type Session interface {
	CurrentUser(ctx context.Context) (*models.User, error)
}

// LedgerService is the transfer engine plus the account lifecycle and the
// observable account/transaction feeds, all scoped to the current user.
//
// Balance mutation happens exclusively inside Transfer; SaveAccount never
// touches balances.
type LedgerService interface {
	// Transfer validates and atomically applies a funds movement. Business
	// rejections come back as a *models.TransferError; only unexpected
	// storage failures surface as other errors.
	Transfer(ctx context.Context, token, fromAccountID, toAccountNumber string, amountSatang int64, description string) (*models.Txn, error)

	// GetAccountByID returns an account, or common.ErrorNotFound.
	GetAccountByID(ctx context.Context, id string) (*models.Account, error)

	// SaveAccount upserts an account for the current user. A blank ID (or
	// an unknown one) creates the account with balance 0 and a validated or
	// generated routing number; an existing one has only its display name
	// and type updated.
	SaveAccount(ctx context.Context, account *models.Account) (*models.Account, error)

	// DeleteAccount removes one of the current user's accounts. The balance
	// must be exactly zero, enforced here rather than left to callers.
	DeleteAccount(ctx context.Context, id string) error

	// Accounts is the accounts-for-current-user feed, insertion-ordered.
	// Logged out it is empty.
	Accounts(ctx context.Context) ([]models.Account, error)

	// Transactions is the transactions-for-current-user feed, newest first:
	// every log entry touching any account the current user owns.
	Transactions(ctx context.Context) ([]models.Txn, error)

	// GetTransactionByID returns one log entry for receipt rendering, or
	// common.ErrorNotFound.
	GetTransactionByID(ctx context.Context, id string) (*models.Txn, error)

	// Watch returns a channel that receives a signal after any committed
	// mutation or current-user change. Signals coalesce; receivers re-read
	// the feeds instead of carrying payloads.
	Watch() <-chan struct{}
}

type ledgerService struct {
	db       *sql.DB
	accounts accounts.Repository
	txns     transactions.Repository
	repos    *store.Repositories
	session  Session
	notifier *Notifier
	log      logging.Logger

	// mu serializes the read-validate-write sequence of each transfer so
	// concurrent submissions cannot drain a source account past zero, and
	// guards the single-slot duplicate-token state.
	mu        sync.Mutex
	lastToken string
}

// NewLedgerService constructs the ledger bound to the database handle (for
// transactions), the repository set and the session.
func NewLedgerService(db *sql.DB, repos *store.Repositories, session Session, notifier *Notifier, log logging.Logger) LedgerService {
	return &ledgerService{
		db:       db,
		accounts: repos.Accounts,
		txns:     repos.Transactions,
		repos:    repos,
		session:  session,
		notifier: notifier,
		log:      log,
	}
}

// Transfer runs the fixed validation sequence and, if every check passes,
// applies both balance updates and the log insert in one SQL transaction.
// The duplicate-token guard is a single in-memory slot: it only catches a
// token equal to the immediately preceding applied one, and it forgets on
// restart. The guard slot is written only after the commit succeeds.
func (s *ledgerService) Transfer(ctx context.Context, token, fromAccountID, toAccountNumber string, amountSatang int64, description string) (*models.Txn, error) {
	user, err := s.session.CurrentUser(ctx)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if strings.TrimSpace(token) == "" {
		return nil, models.NewTransferError(models.TransferErrBadToken, "Invalid request token")
	}
	if token == s.lastToken {
		return nil, models.NewTransferError(models.TransferErrDuplicate, "This transfer was already processed.")
	}
	if amountSatang <= 0 {
		return nil, models.NewTransferError(models.TransferErrAmount, "Amount must be greater than 0")
	}

	from, err := s.accounts.GetByID(ctx, fromAccountID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, models.NewTransferError(models.TransferErrAuth, "Your account was not found.")
		}
		return nil, err
	}
	to, err := s.accounts.GetByNumber(ctx, toAccountNumber)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, models.NewTransferError(models.TransferErrNotFound, "Recipient account number not found.")
		}
		return nil, err
	}
	if from.ID == to.ID {
		return nil, models.NewTransferError(models.TransferErrSameAccount, "Choose a different recipient.")
	}
	if user == nil || from.OwnerID != user.ID {
		return nil, models.NewTransferError(models.TransferErrAuth, "Permission denied")
	}
	if from.Type == models.AccountTypeCredit {
		return nil, models.NewTransferError(models.TransferErrAuth, "Credit accounts cannot send transfers.")
	}
	if from.BalanceSatang < amountSatang {
		return nil, models.NewTransferError(models.TransferErrInsufficient, "Insufficient funds")
	}

	if strings.TrimSpace(description) == "" {
		description = DefaultTransferDescription
	}

	txn := &models.Txn{
		ID:            uuid.NewString(),
		FromAccountID: &from.ID,
		ToAccountID:   &to.ID,
		AmountSatang:  amountSatang,
		Description:   description,
		FromOwnerName: s.ownerName(ctx, from.OwnerID),
		ToOwnerName:   s.ownerName(ctx, to.OwnerID),
		At:            time.Now().UTC(),
	}

	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		accountsTx := accounts.NewSQLiteRepository(tx)
		txnsTx := transactions.NewSQLiteRepository(tx)

		if err := accountsTx.UpdateBalance(ctx, from.ID, from.BalanceSatang-amountSatang); err != nil {
			return err
		}
		if err := accountsTx.UpdateBalance(ctx, to.ID, to.BalanceSatang+amountSatang); err != nil {
			return err
		}
		return txnsTx.Insert(ctx, txn)
	})
	if err != nil {
		return nil, fmt.Errorf("transfer failed to commit: %w", err)
	}

	s.lastToken = token
	s.log.Info(ctx, "transfer committed",
		"txn", txn.ID, "from", from.ID, "to", to.ID, "amount", amountSatang)
	s.notifier.Broadcast()
	return txn, nil
}

// ownerName resolves a display name at write time. Missing owners produce
// an empty name rather than failing the transfer.
func (s *ledgerService) ownerName(ctx context.Context, ownerID string) string {
	owner, err := s.repos.Users.GetByID(ctx, ownerID)
	if err != nil {
		return ""
	}
	return owner.DisplayName
}

func (s *ledgerService) GetAccountByID(ctx context.Context, id string) (*models.Account, error) {
	return s.accounts.GetByID(ctx, id)
}

func (s *ledgerService) SaveAccount(ctx context.Context, account *models.Account) (*models.Account, error) {
	user, err := s.session.CurrentUser(ctx)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, common.ErrorUnauthorized
	}
	if strings.TrimSpace(account.Name) == "" {
		return nil, common.ErrorBlankField
	}
	if _, err := models.ParseAccountType(string(account.Type)); err != nil {
		return nil, err
	}

	if account.ID != "" {
		existing, err := s.accounts.GetByID(ctx, account.ID)
		if err != nil && !errors.Is(err, common.ErrorNotFound) {
			return nil, err
		}
		if existing != nil {
			if existing.OwnerID != user.ID {
				return nil, common.ErrorUnauthorized
			}
			existing.Name = account.Name
			existing.Type = account.Type
			if err := s.accounts.Update(ctx, existing); err != nil {
				return nil, err
			}
			s.notifier.Broadcast()
			return existing, nil
		}
	}

	number := account.Number
	if number == "" {
		if number, err = s.generateNumber(ctx); err != nil {
			return nil, err
		}
	} else if !models.ValidAccountNumber(number) {
		return nil, fmt.Errorf("account number must be %d digits", models.AccountNumberLength)
	}

	created := &models.Account{
		ID:            account.ID,
		OwnerID:       user.ID,
		Name:          account.Name,
		Type:          account.Type,
		Number:        number,
		BalanceSatang: 0,
	}
	if created.ID == "" {
		created.ID = uuid.NewString()
	}
	if err := s.accounts.Create(ctx, created); err != nil {
		return nil, err
	}
	s.log.Info(ctx, "account created", "account", created.ID, "number", created.Number)
	s.notifier.Broadcast()
	return created, nil
}

// generateNumber draws random fixed-length numbers until one is unused.
func (s *ledgerService) generateNumber(ctx context.Context) (string, error) {
	for i := 0; i < generateNumberAttempts; i++ {
		number := common.GenerateRandDigits(models.AccountNumberLength)
		exists, err := s.accounts.NumberExists(ctx, number)
		if err != nil {
			return "", err
		}
		if !exists {
			return number, nil
		}
	}
	return "", fmt.Errorf("could not allocate a unique account number")
}

// DeleteAccount enforces the zero-balance precondition itself instead of
// trusting callers. Historical transactions referencing the account are
// left untouched.
func (s *ledgerService) DeleteAccount(ctx context.Context, id string) error {
	user, err := s.session.CurrentUser(ctx)
	if err != nil {
		return err
	}
	if user == nil {
		return common.ErrorUnauthorized
	}

	account, err := s.accounts.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if account.OwnerID != user.ID {
		return common.ErrorUnauthorized
	}
	if account.BalanceSatang != 0 {
		return common.ErrorBalanceNotZero
	}

	if err := s.accounts.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info(ctx, "account deleted", "account", id)
	s.notifier.Broadcast()
	return nil
}

func (s *ledgerService) Accounts(ctx context.Context) ([]models.Account, error) {
	user, err := s.session.CurrentUser(ctx)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, nil
	}
	return s.accounts.ListByOwner(ctx, user.ID)
}

func (s *ledgerService) Transactions(ctx context.Context) ([]models.Txn, error) {
	owned, err := s.Accounts(ctx)
	if err != nil {
		return nil, err
	}
	if len(owned) == 0 {
		return nil, nil
	}

	ids := make([]string, len(owned))
	for i, a := range owned {
		ids[i] = a.ID
	}
	return s.txns.ListForAccounts(ctx, ids)
}

func (s *ledgerService) GetTransactionByID(ctx context.Context, id string) (*models.Txn, error) {
	return s.txns.GetByID(ctx, id)
}

func (s *ledgerService) Watch() <-chan struct{} {
	return s.notifier.Subscribe()
}
