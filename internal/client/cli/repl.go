package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Signup(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	WhoAmI(ctx context.Context) error
	Insight(ctx context.Context, args []string) error
	Stats(ctx context.Context) error
}

// runREPL starts a simple read-eval-print loop for the Lumina CLI.
//
// It reads a line from reader, parses the first token as the command, and
// dispatches to methods on 'a'. The loop exits on EOF or when the user types
// "exit" or "quit".
//
// Prompt & Commands
//
//	Not logged in:
//	  - help           - show available commands
//	  - signup         - create an account and log in
//	  - login          - authenticate
//	  - exit | quit    - leave the program
//
//	Logged in:
//	  - help           - show available commands
//	  - insight [cat]  - motivation (default), productivity or learning
//	  - whoami         - show the current user
//	  - stats          - insight outcomes in this process
//	  - logout         - log out
//	  - exit | quit    - leave the program
//
// Handler errors are printed and the loop continues.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		printlnFn(fmt.Sprintf("lumina%s> ", statusFn()))
		line, err := reader.ReadString('\n')
		if err != nil && (!errors.Is(err, io.EOF) || line == "") {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: insight [motivation|productivity|learning], whoami, stats, logout, exit")
			} else {
				printlnFn("Available commands: signup, login, exit")
			}

		case "signup", "login":
			if a.isLoggedIn() {
				printlnFn("Already logged in, logout first.")
				continue
			}
			if cmd == "signup" {
				report(a.Signup(ctx))
			} else {
				report(a.Login(ctx))
			}

		case "insight", "whoami", "stats", "logout":
			if !a.isLoggedIn() {
				printlnFn("Please login first.")
				continue
			}
			switch cmd {
			case "insight":
				report(a.Insight(ctx, args))
			case "whoami":
				report(a.WhoAmI(ctx))
			case "stats":
				report(a.Stats(ctx))
			case "logout":
				report(a.Logout(ctx))
			}

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}

func report(err error) {
	if err != nil {
		printlnFn("Error:", err)
	}
}
