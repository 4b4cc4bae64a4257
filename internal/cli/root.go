package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	ListAccounts(ctx context.Context) error
	OpenAccount(ctx context.Context) error
	EditAccount(ctx context.Context) error
	CloseAccount(ctx context.Context) error
	Transfer(ctx context.Context) error
	History(ctx context.Context) error
	Receipt(ctx context.Context, id string) error
}

// getStatus drains the change signal before rendering the prompt so an
// expired or switched session shows up without an explicit command.
func (a *App) getStatus() string {
	select {
	case <-a.changes:
		a.refreshUserName(context.Background())
	default:
	}
	if a.userName == "" {
		return ""
	}
	return fmt.Sprintf("(%s)", a.userName)
}

func (a *App) Root(ctx context.Context) {
	printlnFn("Welcome to BBank CLI (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)

	_ = a.Login(ctx)

	runREPL(ctx, a, a.getStatus, scanner)
}

// runREPL starts a simple read-eval-print loop for the banking CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Prompt & Commands
//
// The prompt shows the current status (from statusFn) and accepts commands:
//
//	Not logged in:
//	  - help           — show available commands
//	  - register       — create a user with a 4-digit PIN
//	  - login          — authenticate
//	  - exit | quit    — leave the program
//
//	Logged in:
//	  - help           — show available commands
//	  - accounts       — list your accounts with balances
//	  - open           — open a new account
//	  - edit           — rename an account or change its type
//	  - close          — close an empty account
//	  - transfer       — send money to another account number
//	  - history        — list transactions touching your accounts
//	  - receipt <id>   — print the receipt for one transaction
//	  - logout         — log out
//	  - exit | quit    — leave the program
//
// Any errors returned by command handlers are ignored here; handlers should
// log their own errors. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("bbank %s> ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: accounts, open, edit, close, transfer, history, receipt <id>, logout, exit")
			} else {
				printlnFn("Available commands: register, login, exit")
			}

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "a", "accounts":
			_ = a.ListAccounts(ctx)

		case "open":
			_ = a.OpenAccount(ctx)

		case "edit":
			_ = a.EditAccount(ctx)

		case "close":
			_ = a.CloseAccount(ctx)

		case "t", "transfer":
			_ = a.Transfer(ctx)

		case "h", "history":
			_ = a.History(ctx)

		case "receipt":
			if len(args) == 0 {
				printlnFn("Usage: receipt <id>")
				continue
			}
			_ = a.Receipt(ctx, args[0])

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
