package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context, args []string) error
	Logout(ctx context.Context) error
	Forget(ctx context.Context) error
	Balance(ctx context.Context) error
	List(ctx context.Context) error
	Create(ctx context.Context, args []string) error
	Buy(ctx context.Context, args []string) error
	Price(ctx context.Context, args []string) error
	Vaccine(ctx context.Context) error
	Monitor(ctx context.Context, args []string) error
}

// errUnknownCommand is returned by dispatch for anything it does not know.
type errUnknownCommand string

func (e errUnknownCommand) Error() string { return "unknown command: " + string(e) }

// dispatch runs one command. It reports whether the user asked to leave.
func dispatch(ctx context.Context, a execIface, cmd string, args []string) (bool, error) {
	switch cmd {
	case "help":
		if a.isLoggedIn() {
			printlnFn("Available commands: balance, list, create, buy, price, vaccine, monitor, logout, forget, exit")
		} else {
			printlnFn("Available commands: register, login, list, price, monitor, exit")
		}
		return false, nil
	case "register":
		return false, a.Register(ctx)
	case "login":
		return false, a.Login(ctx, args)
	case "logout":
		return false, a.Logout(ctx)
	case "forget":
		return false, a.Forget(ctx)
	case "balance":
		return false, a.Balance(ctx)
	case "l", "list":
		return false, a.List(ctx)
	case "create":
		return false, a.Create(ctx, args)
	case "buy":
		return false, a.Buy(ctx, args)
	case "price":
		return false, a.Price(ctx, args)
	case "vaccine":
		return false, a.Vaccine(ctx)
	case "monitor":
		return false, a.Monitor(ctx, args)
	case "exit", "quit":
		printlnFn("Bye!")
		return true, nil
	default:
		return false, errUnknownCommand(cmd)
	}
}

// runREPL starts a simple read-eval-print loop for the exchange CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command and dispatches it. Errors are printed and the loop goes on. The
// loop exits on scanner EOF or when the user types "exit" or "quit".
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("vaccx %s > ", statusFn()))
		if !scanner.Scan() {
			return
		}
		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 {
			continue
		}

		exit, err := dispatch(ctx, a, parts[0], parts[1:])
		if err != nil {
			printlnFn("Error:", err)
		}
		if exit {
			return
		}
	}
}
