package models

import "time"

// Txn is one immutable entry of the transaction log. FromAccountID and
// ToAccountID are optional: a missing source is an external deposit, a
// missing destination is an external withdrawal. FromOwnerName and
// ToOwnerName are display names resolved once at creation time; they are
// deliberately never refreshed, so receipts keep the name the owner had
// when the transfer happened.
type Txn struct {
	ID            string
	FromAccountID *string
	ToAccountID   *string
	AmountSatang  int64
	Description   string
	FromOwnerName string
	ToOwnerName   string
	At            time.Time
}
