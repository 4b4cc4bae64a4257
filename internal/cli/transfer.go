package cli

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/danunant/bbank/internal/common"
	"github.com/danunant/bbank/internal/format"
	"github.com/danunant/bbank/internal/models"
)

// Transfer walks the user through one funds movement. A fresh request token
// is minted per submission, so retrying after a rejection is always allowed
// while an accidental double-submit of the same form is not.
func (a *App) Transfer(ctx context.Context) error {
	source, err := a.pickAccount(ctx, "Transfer from which account?")
	if err != nil || source == nil {
		return err
	}

	recipient, err := getSimpleText(a.reader, "Recipient account number", os.Stdout)
	if err != nil {
		return err
	}

	amountAnswer, err := getSimpleText(a.reader, "Amount (baht)", os.Stdout)
	if err != nil {
		return err
	}
	amount, err := ParseAmountSatang(amountAnswer)
	if err != nil {
		fmt.Println(err.Error())
		return nil
	}

	description, err := getSimpleText(a.reader, "Description (blank for default)", os.Stdout)
	if err != nil {
		return err
	}

	token, err := common.MakeRandHexString(16)
	if err != nil {
		return err
	}
	txn, err := a.ledger.Transfer(ctx, token, source.ID, format.PlainAccountNumber(recipient), amount, description)
	if err != nil {
		var te *models.TransferError
		if errors.As(err, &te) {
			fmt.Println(te.Message)
			return nil
		}
		log.Println(err.Error())
		return err
	}

	RenderReceipt(os.Stdout, txn)
	return nil
}
