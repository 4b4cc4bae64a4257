// Package seed loads the demo users, accounts and transaction history on
// first run, so the client opens onto a populated dashboard. All demo PINs
// are 1234, stored salted and hashed like any registered user's.
package seed

import (
	"context"
	"fmt"
	"time"

	"github.com/danunant/bbank/internal/cryptox"
	"github.com/danunant/bbank/internal/logging"
	"github.com/danunant/bbank/internal/models"
	"github.com/danunant/bbank/internal/store"
	"github.com/google/uuid"
)

const demoPIN = "1234"

// Apply inserts the demo data set unless users already exist. It reports
// whether seeding happened.
func Apply(ctx context.Context, repos *store.Repositories, log logging.Logger) (bool, error) {
	n, err := repos.Users.Count(ctx)
	if err != nil {
		return false, fmt.Errorf("seed pre-check failed: %w", err)
	}
	if n > 0 {
		return false, nil
	}

	for _, u := range demoUsers() {
		if err := repos.Users.Create(ctx, u); err != nil {
			return false, fmt.Errorf("seeding user %s: %w", u.Username, err)
		}
	}
	for _, a := range demoAccounts() {
		if err := repos.Accounts.Create(ctx, a); err != nil {
			return false, fmt.Errorf("seeding account %s: %w", a.ID, err)
		}
	}
	for _, txn := range demoTxns() {
		if err := repos.Transactions.Insert(ctx, txn); err != nil {
			return false, fmt.Errorf("seeding transaction %s: %w", txn.ID, err)
		}
	}

	log.Info(ctx, "demo data seeded", "users", 3)
	return true, nil
}

func demoUser(id, username, displayName string) *models.User {
	salt := cryptox.GenerateSalt()
	return &models.User{
		ID:          id,
		Username:    username,
		DisplayName: displayName,
		PINHash:     cryptox.HashPIN([]byte(demoPIN), salt),
		Salt:        salt,
	}
}

func demoUsers() []*models.User {
	return []*models.User{
		demoUser("U1", "alice", "Alice Smith"),
		demoUser("U2", "bob", "Bob Johnson"),
		demoUser("U3", "test", "Test User"),
	}
}

func demoAccounts() []*models.Account {
	return []*models.Account{
		// Alice
		{ID: "A1", OwnerID: "U1", Name: "Main Checking", Type: models.AccountTypeChecking, Number: "1234567890", BalanceSatang: 2_500_000},
		{ID: "A2", OwnerID: "U1", Name: "Savings", Type: models.AccountTypeSavings, Number: "9876543210", BalanceSatang: 7_550_000},
		{ID: "A3", OwnerID: "U1", Name: "Credit Card", Type: models.AccountTypeCredit, Number: "5555881234", BalanceSatang: -520_000},

		// Bob
		{ID: "B1", OwnerID: "U2", Name: "Primary", Type: models.AccountTypeChecking, Number: "1112333334", BalanceSatang: 1_000_000},
		{ID: "B2", OwnerID: "U2", Name: "Vacation Fund", Type: models.AccountTypeSavings, Number: "2223444445", BalanceSatang: 150_000},

		// Test user
		{ID: "T1", OwnerID: "U3", Name: "Test Account", Type: models.AccountTypeChecking, Number: "0000000000", BalanceSatang: 100_000},
	}
}

func demoTxns() []*models.Txn {
	now := time.Now().UTC()
	day := 24 * time.Hour
	a1, a2 := "A1", "A2"
	b1, b2 := "B1", "B2"

	return []*models.Txn{
		// Alice
		{ID: uuid.NewString(), ToAccountID: &a1, AmountSatang: 500_000, Description: "Initial deposit", ToOwnerName: "Alice Smith", At: now.Add(-3 * day)},
		{ID: uuid.NewString(), FromAccountID: &a1, ToAccountID: &a2, AmountSatang: 120_000, Description: "Save for rain", FromOwnerName: "Alice Smith", ToOwnerName: "Alice Smith", At: now.Add(-2 * day)},
		{ID: uuid.NewString(), FromAccountID: &a1, AmountSatang: 30_000, Description: "Coffee shop", FromOwnerName: "Alice Smith", At: now.Add(-1 * day)},

		// Bob
		{ID: uuid.NewString(), ToAccountID: &b1, AmountSatang: 1_000_000, Description: "Paycheck", ToOwnerName: "Bob Johnson", At: now.Add(-2 * day)},
		{ID: uuid.NewString(), FromAccountID: &b1, ToAccountID: &b2, AmountSatang: 50_000, Description: "Move to vacation", FromOwnerName: "Bob Johnson", ToOwnerName: "Bob Johnson", At: now.Add(-1 * day)},
	}
}
