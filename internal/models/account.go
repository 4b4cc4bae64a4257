package models

import "fmt"

// AccountType classifies an account.
type AccountType string

const (
	AccountTypeChecking AccountType = "checking"
	AccountTypeSavings  AccountType = "savings"
	AccountTypeCredit   AccountType = "credit"
)

// AccountNumberLength is the fixed length of the user-facing routing number.
const AccountNumberLength = 10

// ParseAccountType converts a stored or user-supplied string into an
// AccountType, rejecting unknown values.
func ParseAccountType(s string) (AccountType, error) {
	switch AccountType(s) {
	case AccountTypeChecking, AccountTypeSavings, AccountTypeCredit:
		return AccountType(s), nil
	}
	return "", fmt.Errorf("unknown account type: %q", s)
}

// ValidAccountNumber reports whether s is a well-formed account number:
// exactly AccountNumberLength decimal digits.
func ValidAccountNumber(s string) bool {
	if len(s) != AccountNumberLength {
		return false
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

// Account is a single ledger account. BalanceSatang is an integer count of
// minor currency units; it is mutated only by the transfer engine.
// Number is the routing key used for transfers and is unique bank-wide.
type Account struct {
	ID            string
	OwnerID       string
	Name          string
	Type          AccountType
	Number        string
	BalanceSatang int64
}
