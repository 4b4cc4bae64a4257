// Package cli provides the interactive BBank command-line client.
//
// It wires configuration, local storage, the banking services, and an
// interactive REPL. Typical flow: prompt for credentials, then execute user
// commands against the local ledger.
//
// Key features:
//   - Login / Register / Logout with a 4-digit PIN
//   - Accounts dashboard with baht-formatted balances
//   - Open / edit / close accounts
//   - Transfers with a printed receipt
//   - Transaction history, newest first
//
// The REPL is started via App.Root(ctx), which blocks until the user exits.
// See App and runREPL for details.
package cli
