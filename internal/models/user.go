// Package models defines the core bank entities: users, accounts and
// transactions, plus the typed outcome of a transfer.
package models

// User is a registered client of the bank. PINHash and Salt hold the
// password-verification material produced at registration; the plaintext
// PIN is never stored.
type User struct {
	ID          string
	Username    string
	DisplayName string
	PINHash     []byte
	Salt        []byte
}
