package cli

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/danunant/bbank/internal/common"
	"github.com/danunant/bbank/internal/format"
)

// History lists every transaction touching one of the current user's
// accounts, newest first. Amounts are signed from the user's point of view;
// a transfer between two owned accounts nets to zero and shows unsigned.
func (a *App) History(ctx context.Context) error {
	owned, err := a.ledger.Accounts(ctx)
	if err != nil {
		log.Println(err.Error())
		return err
	}
	ownedIDs := make(map[string]bool, len(owned))
	for _, acc := range owned {
		ownedIDs[acc.ID] = true
	}

	txns, err := a.ledger.Transactions(ctx)
	if err != nil {
		log.Println(err.Error())
		return err
	}
	if len(txns) == 0 {
		fmt.Println("No transactions yet.")
		return nil
	}

	for _, txn := range txns {
		outgoing := txn.FromAccountID != nil && ownedIDs[*txn.FromAccountID]
		incoming := txn.ToAccountID != nil && ownedIDs[*txn.ToAccountID]

		amount := txn.AmountSatang
		if outgoing && !incoming {
			amount = -amount
		}

		counterparty := ""
		switch {
		case outgoing && txn.ToOwnerName != "":
			counterparty = "to " + txn.ToOwnerName
		case incoming && txn.FromOwnerName != "":
			counterparty = "from " + txn.FromOwnerName
		}

		fmt.Printf("%s  %-24s %-20s %12s  %s\n",
			format.Timestamp(txn.At), txn.Description, counterparty, format.THB(amount), txn.ID)
	}
	return nil
}

// Receipt prints the receipt for one transaction by its id.
func (a *App) Receipt(ctx context.Context, id string) error {
	txn, err := a.ledger.GetTransactionByID(ctx, id)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			fmt.Println("No transaction with that id.")
			return nil
		}
		log.Println(err.Error())
		return err
	}

	RenderReceipt(os.Stdout, txn)
	return nil
}
