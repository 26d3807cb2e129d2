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
	isLoggedIn(ctx context.Context) bool
	Go(ctx context.Context, target string) error
	Signup(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Whoami(ctx context.Context) error
	Chat(ctx context.Context) error
	Continue(ctx context.Context, chatID string) error
	History(ctx context.Context) error
	Show(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
	Contact(ctx context.Context) error
	report(ctx context.Context, err error)
}

// runREPL starts a simple read-eval-print loop for the RelatioNest CLI.
//
// It reads a line from reader, parses the first token as the command, and
// dispatches to methods on 'a'. Errors returned by command handlers are
// passed to a.report. The loop exits on EOF, when the context is cancelled,
// or when the user types "exit" or "quit".
//
// Prompt & Commands
//
// The prompt shows the current status (from statusFn) and accepts commands:
//
//	Always:
//	  - help              - show available commands
//	  - go <path>         - open a view, e.g. go /about
//	  - home              - open the landing view
//	  - about | faq | privacy | contact
//	  - exit | quit       - leave the program
//
//	Not logged in:
//	  - login | signup
//
//	Logged in:
//	  - chat              - ask the advisor
//	  - continue [id]     - follow up on the last or given chat
//	  - history           - list past chats
//	  - show <id>         - read a chat
//	  - delete <id>       - delete a chat
//	  - whoami            - session details
//	  - logout
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		if ctx.Err() != nil {
			printlnFn("Bye!")
			return
		}

		printlnFn(fmt.Sprintf("relationest %s> ", statusFn()))
		line, err := reader.ReadString('\n')
		if err != nil && line == "" {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, arg := parts[0], ""
		if len(parts) > 1 {
			arg = parts[1]
		}

		var cmdErr error

		switch cmd {
		case "help":
			if a.isLoggedIn(ctx) {
				printlnFn("Available commands: chat, continue [id], history, show <id>, delete <id>, whoami, logout, go <path>, home, about, faq, privacy, contact, exit")
			} else {
				printlnFn("Available commands: login, signup, go <path>, home, about, faq, privacy, contact, exit")
			}

		case "go":
			if arg == "" {
				printlnFn("Usage: go <path>")
				continue
			}
			cmdErr = a.Go(ctx, arg)
		case "home":
			cmdErr = a.Go(ctx, "/")
		case "about", "faq", "privacy":
			cmdErr = a.Go(ctx, "/"+cmd)

		case "signup", "register":
			cmdErr = a.Signup(ctx)
		case "login":
			cmdErr = a.Login(ctx)
		case "logout":
			cmdErr = a.Logout(ctx)
		case "whoami":
			cmdErr = a.Whoami(ctx)

		case "chat":
			cmdErr = a.Chat(ctx)
		case "continue":
			cmdErr = a.Continue(ctx, arg)
		case "history":
			cmdErr = a.History(ctx)
		case "show":
			if arg == "" {
				printlnFn("Usage: show <id>")
				continue
			}
			cmdErr = a.Show(ctx, arg)
		case "delete":
			if arg == "" {
				printlnFn("Usage: delete <id>")
				continue
			}
			cmdErr = a.Delete(ctx, arg)
		case "contact":
			cmdErr = a.Contact(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}

		a.report(ctx, cmdErr)
	}
}
