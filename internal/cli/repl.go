package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"

	"github.com/campusfind/campusfind/internal/models"
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
	Report(ctx context.Context) error
	Browse(ctx context.Context, search, category string) error
	Claim(ctx context.Context, id string) error
	Ask(ctx context.Context, id string) error
	Confirm(ctx context.Context, id string) error
	Mine(ctx context.Context) error
	Inbox(ctx context.Context) error
	Read(ctx context.Context, id string) error
	Theme(ctx context.Context, name string) error
}

// runREPL starts a simple read–eval–print loop for the CampusFind CLI.
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
//	Anyone:
//	  - help               — show available commands
//	  - list               — list available items
//	  - search <text>      — list items matching location or date
//	  - filter <category>  — list items of one category
//	  - categories         — show the category set
//	  - claim <id>         — claim an item by answering its security question
//	  - ask <id>           — send a contact request to the finder
//	  - theme [light|dark] — show or set the UI theme
//	  - register | login   — account commands
//	  - exit | quit        — leave the program
//
//	Logged in, additionally:
//	  - report             — report a found item
//	  - mine               — list items you reported
//	  - inbox              — show your notifications
//	  - read <id>          — mark a notification as read
//	  - confirm <id>       — confirm you contacted the claimant of your item
//	  - logout             — log out
//
// Any errors returned by command handlers are ignored here; handlers should
// log their own errors. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("cf> %s > ", statusFn()))
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
			printlnFn("Available commands: list, search <text>, filter <category>, categories, claim <id>, ask <id>, theme [light|dark], exit")
			if a.isLoggedIn() {
				printlnFn("Account commands: report, mine, inbox, read <id>, confirm <id>, logout")
			} else {
				printlnFn("Account commands: register, login")
			}

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "report":
			_ = a.Report(ctx)

		case "l", "list":
			_ = a.Browse(ctx, "", "")

		case "search":
			if len(args) == 0 {
				printlnFn("Usage: search <text>")
				continue
			}
			_ = a.Browse(ctx, strings.Join(args, " "), "")

		case "filter":
			if len(args) == 0 {
				printlnFn("Usage: filter <category>")
				continue
			}
			_ = a.Browse(ctx, "", args[0])

		case "categories":
			for _, c := range models.Categories {
				printlnFn(fmt.Sprintf("%s %s — %s", c.Icon, c.ID, c.Name))
			}

		case "claim":
			if len(args) == 0 {
				printlnFn("Usage: claim <id>")
				continue
			}
			_ = a.Claim(ctx, args[0])

		case "ask":
			if len(args) == 0 {
				printlnFn("Usage: ask <id>")
				continue
			}
			_ = a.Ask(ctx, args[0])

		case "confirm":
			if len(args) == 0 {
				printlnFn("Usage: confirm <id>")
				continue
			}
			_ = a.Confirm(ctx, args[0])

		case "mine":
			_ = a.Mine(ctx)

		case "inbox":
			_ = a.Inbox(ctx)

		case "read":
			if len(args) == 0 {
				printlnFn("Usage: read <id>")
				continue
			}
			_ = a.Read(ctx, args[0])

		case "theme":
			name := ""
			if len(args) > 0 {
				name = args[0]
			}
			_ = a.Theme(ctx, name)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
