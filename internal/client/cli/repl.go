package cli

import (
	"bufio"
	"context"
	"fmt"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	Sync(ctx context.Context) error
	FullSync(ctx context.Context) error
	Accounts(ctx context.Context, args []string) error
	Tags(ctx context.Context) error
	Transactions(ctx context.Context, args []string) error
	Suggest(ctx context.Context, args []string) error
	AddTx(ctx context.Context, args []string) error
	DelTx(ctx context.Context, args []string) error
	Help() error
}

// runREPL starts a simple read–eval–print loop for the zenkeeper CLI.
//
// It reads a line from the provided scanner, splits it into words (quotes
// group words with spaces), and dispatches the first word to methods on 'a'.
// The remaining words are passed to the command as flags. The loop exits on
// scanner EOF or when the user types "exit" or "quit".
//
// Commands:
//
//	help                 show available commands
//	sync                 fetch changes since the last sync
//	fullsync             drop the cache and download everything
//	accounts [-all]      list accounts with balances
//	tags                 list categories
//	tx | transactions    list transactions, see help for filters
//	suggest              ask the server for a payee/category suggestion
//	addtx                record an expense
//	deltx <id>           delete a transaction
//	exit | quit          leave the program
//
// Command errors are printed and the loop continues.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("zk %s> ", statusFn()))
		if !scanner.Scan() {
			return
		}
		parts, err := splitArgs(scanner.Text())
		if err != nil {
			printlnFn("Error:", err)
			continue
		}
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		switch cmd {
		case "help":
			err = a.Help()

		case "sync":
			err = a.Sync(ctx)

		case "fullsync":
			err = a.FullSync(ctx)

		case "accounts":
			err = a.Accounts(ctx, args)

		case "tags":
			err = a.Tags(ctx)

		case "tx", "transactions":
			err = a.Transactions(ctx, args)

		case "suggest":
			err = a.Suggest(ctx, args)

		case "addtx":
			err = a.AddTx(ctx, args)

		case "deltx":
			err = a.DelTx(ctx, args)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}

		if err != nil {
			printlnFn("Error:", err)
		}
	}
}
