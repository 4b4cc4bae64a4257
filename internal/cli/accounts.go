package cli

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/danunant/bbank/internal/common"
	"github.com/danunant/bbank/internal/format"
	"github.com/danunant/bbank/internal/models"
)

// ListAccounts prints the dashboard: every account the current user owns,
// in the order they were opened.
func (a *App) ListAccounts(ctx context.Context) error {
	owned, err := a.ledger.Accounts(ctx)
	if err != nil {
		log.Println(err.Error())
		return err
	}
	if len(owned) == 0 {
		fmt.Println("No accounts yet. Use 'open' to create one.")
		return nil
	}

	for i, acc := range owned {
		fmt.Printf("%d. %-20s %-8s %s  %s\n",
			i+1, acc.Name, acc.Type, format.AccountNumber(acc.Number), format.THB(acc.BalanceSatang))
	}
	return nil
}

// pickAccount lists the user's accounts and asks for a number from the list.
func (a *App) pickAccount(ctx context.Context, prompt string) (*models.Account, error) {
	owned, err := a.ledger.Accounts(ctx)
	if err != nil {
		return nil, err
	}
	if len(owned) == 0 {
		fmt.Println("No accounts yet. Use 'open' to create one.")
		return nil, nil
	}

	for i, acc := range owned {
		fmt.Printf("%d. %s (%s) %s\n", i+1, acc.Name, acc.Type, format.AccountNumber(acc.Number))
	}
	answer, err := getSimpleText(a.reader, prompt, os.Stdout)
	if err != nil {
		return nil, err
	}

	idx, err := strconv.Atoi(answer)
	if err != nil || idx < 1 || idx > len(owned) {
		fmt.Println("Pick a number from the list.")
		return nil, nil
	}
	return &owned[idx-1], nil
}

func (a *App) OpenAccount(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Account name", os.Stdout)
	if err != nil {
		return err
	}
	typeAnswer, err := getSimpleText(a.reader, "Account type (checking/savings/credit)", os.Stdout)
	if err != nil {
		return err
	}
	typ, err := models.ParseAccountType(typeAnswer)
	if err != nil {
		fmt.Println("Type must be checking, savings or credit.")
		return nil
	}

	created, err := a.ledger.SaveAccount(ctx, &models.Account{Name: name, Type: typ})
	if err != nil {
		if errors.Is(err, common.ErrorBlankField) {
			fmt.Println("Account name cannot be blank.")
			return nil
		}
		log.Println(err.Error())
		return err
	}

	fmt.Printf("Opened %s %s\n", created.Name, format.AccountNumber(created.Number))
	return nil
}

func (a *App) EditAccount(ctx context.Context) error {
	account, err := a.pickAccount(ctx, "Which account to edit?")
	if err != nil || account == nil {
		return err
	}

	name, err := getSimpleText(a.reader, fmt.Sprintf("New name (was %q)", account.Name), os.Stdout)
	if err != nil {
		return err
	}
	typeAnswer, err := getSimpleText(a.reader, fmt.Sprintf("New type (was %s)", account.Type), os.Stdout)
	if err != nil {
		return err
	}
	typ, err := models.ParseAccountType(typeAnswer)
	if err != nil {
		fmt.Println("Type must be checking, savings or credit.")
		return nil
	}

	account.Name = name
	account.Type = typ
	if _, err := a.ledger.SaveAccount(ctx, account); err != nil {
		if errors.Is(err, common.ErrorBlankField) {
			fmt.Println("Account name cannot be blank.")
			return nil
		}
		log.Println(err.Error())
		return err
	}

	fmt.Println("Saved.")
	return nil
}

func (a *App) CloseAccount(ctx context.Context) error {
	account, err := a.pickAccount(ctx, "Which account to close?")
	if err != nil || account == nil {
		return err
	}

	if err := a.ledger.DeleteAccount(ctx, account.ID); err != nil {
		if errors.Is(err, common.ErrorBalanceNotZero) {
			fmt.Println("Balance must be zero before closing. Transfer the funds out first.")
			return nil
		}
		log.Println(err.Error())
		return err
	}

	fmt.Printf("Closed %s.\n", format.AccountNumber(account.Number))
	return nil
}
