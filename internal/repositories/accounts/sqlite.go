package accounts

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/danunant/bbank/internal/common"
	"github.com/danunant/bbank/internal/dbx"
	"github.com/danunant/bbank/internal/models"
)

// SQLiteRepository implements Repository using a DBTX (either *sql.DB or *sql.Tx).
type SQLiteRepository struct {
	db dbx.DBTX
}

// NewSQLiteRepository returns a new SQLiteRepository bound to the given DBTX.
func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) Create(ctx context.Context, account *models.Account) error {
	query := `INSERT INTO accounts (id, owner_id, name, type, number, balance_satang)
			values (?, ?, ?, ?, ?, ?)
	`
	_, err := r.db.ExecContext(ctx, query,
		account.ID, account.OwnerID, account.Name, string(account.Type), account.Number, account.BalanceSatang)
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return common.ErrorAccountNumberTaken
		}
		return fmt.Errorf("failed to insert account: %w", err)
	}
	return nil
}

// Update changes name and type only. Owner, number and balance stay as stored.
func (r *SQLiteRepository) Update(ctx context.Context, account *models.Account) error {
	query := `update accounts set name = ?, type = ? where id = ?`
	res, err := r.db.ExecContext(ctx, query, account.Name, string(account.Type), account.ID)
	if err != nil {
		return fmt.Errorf("failed to update account: %w", err)
	}
	ra, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if ra != 1 {
		return common.ErrorNotFound
	}
	return nil
}

func (r *SQLiteRepository) UpdateBalance(ctx context.Context, id string, balanceSatang int64) error {
	query := `update accounts set balance_satang = ? where id = ?`
	res, err := r.db.ExecContext(ctx, query, balanceSatang, id)
	if err != nil {
		return fmt.Errorf("failed to update balance: %w", err)
	}
	ra, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if ra != 1 {
		return common.ErrorNotFound
	}
	return nil
}

func (r *SQLiteRepository) GetByID(ctx context.Context, id string) (*models.Account, error) {
	query := `select id, owner_id, name, type, number, balance_satang from accounts where id = ?`
	return r.scanOne(r.db.QueryRowContext(ctx, query, id))
}

func (r *SQLiteRepository) GetByNumber(ctx context.Context, number string) (*models.Account, error) {
	query := `select id, owner_id, name, type, number, balance_satang from accounts where number = ?`
	return r.scanOne(r.db.QueryRowContext(ctx, query, number))
}

func (r *SQLiteRepository) scanOne(row *sql.Row) (*models.Account, error) {
	a := &models.Account{}
	var typ string
	err := row.Scan(&a.ID, &a.OwnerID, &a.Name, &typ, &a.Number, &a.BalanceSatang)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("query row scan failed: %w", err)
	}
	a.Type, err = models.ParseAccountType(typ)
	if err != nil {
		return nil, err
	}
	return a, nil
}

// ListByOwner orders by rowid, which for this append-only table is
// insertion order.
func (r *SQLiteRepository) ListByOwner(ctx context.Context, ownerID string) ([]models.Account, error) {
	query := `select id, owner_id, name, type, number, balance_satang from accounts where owner_id = ? order by rowid`
	rows, err := r.db.QueryContext(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to select accounts: %w", err)
	}
	defer rows.Close()

	var result []models.Account
	for rows.Next() {
		var item models.Account
		var typ string
		if err := rows.Scan(&item.ID, &item.OwnerID, &item.Name, &typ, &item.Number, &item.BalanceSatang); err != nil {
			return nil, err
		}
		if item.Type, err = models.ParseAccountType(typ); err != nil {
			return nil, err
		}
		result = append(result, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *SQLiteRepository) NumberExists(ctx context.Context, number string) (bool, error) {
	query := `select exists(select 1 from accounts where number = ?)`
	var exists bool
	if err := r.db.QueryRowContext(ctx, query, number).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check account number: %w", err)
	}
	return exists, nil
}

func (r *SQLiteRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `delete from accounts where id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete account: %w", err)
	}
	ra, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if ra != 1 {
		return common.ErrorNotFound
	}
	return nil
}
