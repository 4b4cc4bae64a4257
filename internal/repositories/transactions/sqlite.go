package transactions

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/danunant/bbank/internal/common"
	"github.com/danunant/bbank/internal/dbx"
	"github.com/danunant/bbank/internal/models"
)

// SQLiteRepository implements Repository using a DBTX (either *sql.DB or *sql.Tx).
// Timestamps are stored as integer unix nanoseconds so ordering stays exact.
type SQLiteRepository struct {
	db dbx.DBTX
}

// NewSQLiteRepository returns a new SQLiteRepository bound to the given DBTX.
func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) Insert(ctx context.Context, txn *models.Txn) error {
	query := `INSERT INTO transactions (id, from_account_id, to_account_id, amount_satang, description, from_owner_name, to_owner_name, at)
			values (?, ?, ?, ?, ?, ?, ?, ?)
	`
	_, err := r.db.ExecContext(ctx, query,
		txn.ID, nullable(txn.FromAccountID), nullable(txn.ToAccountID),
		txn.AmountSatang, txn.Description, txn.FromOwnerName, txn.ToOwnerName,
		txn.At.UnixNano())
	if err != nil {
		return fmt.Errorf("failed to insert transaction: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) GetByID(ctx context.Context, id string) (*models.Txn, error) {
	query := `select id, from_account_id, to_account_id, amount_satang, description, from_owner_name, to_owner_name, at
			from transactions where id = ?`
	row := r.db.QueryRowContext(ctx, query, id)

	txn, err := scanTxn(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("query row scan failed: %w", err)
	}
	return txn, nil
}

func (r *SQLiteRepository) ListForAccounts(ctx context.Context, accountIDs []string) ([]models.Txn, error) {
	if len(accountIDs) == 0 {
		return nil, nil
	}

	placeholders := strings.TrimSuffix(strings.Repeat("?,", len(accountIDs)), ",")
	query := fmt.Sprintf(`select id, from_account_id, to_account_id, amount_satang, description, from_owner_name, to_owner_name, at
			from transactions
			where from_account_id in (%[1]s) or to_account_id in (%[1]s)
			order by at desc, rowid desc`, placeholders)

	args := make([]any, 0, len(accountIDs)*2)
	for i := 0; i < 2; i++ {
		for _, id := range accountIDs {
			args = append(args, id)
		}
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to select transactions: %w", err)
	}
	defer rows.Close()

	var result []models.Txn
	for rows.Next() {
		txn, err := scanTxn(rows.Scan)
		if err != nil {
			return nil, err
		}
		result = append(result, *txn)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func scanTxn(scan func(dest ...any) error) (*models.Txn, error) {
	txn := &models.Txn{}
	var from, to sql.NullString
	var at int64
	if err := scan(&txn.ID, &from, &to, &txn.AmountSatang, &txn.Description,
		&txn.FromOwnerName, &txn.ToOwnerName, &at); err != nil {
		return nil, err
	}
	if from.Valid {
		txn.FromAccountID = &from.String
	}
	if to.Valid {
		txn.ToAccountID = &to.String
	}
	txn.At = time.Unix(0, at).UTC()
	return txn, nil
}

func nullable(s *string) any {
	if s == nil {
		return nil
	}
	return *s
}
