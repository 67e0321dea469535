package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
)

func (a *App) getStatus() string {
	if a.account != nil && a.isLoggedIn() {
		return fmt.Sprintf("(%s)", a.account.Email)
	}
	return ""
}

// Root runs the read-eval-print loop. Errors from command handlers are
// reported by the handlers themselves; the loop only dispatches.
func (a *App) Root(ctx context.Context) {

	fmt.Fprintln(a.out, "Welcome to Gatekeeper CLI (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)

	for {
		fmt.Fprintf(a.out, "gk %s> ", a.getStatus())
		if !scanner.Scan() {
			break
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}

		cmd := parts[0]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				fmt.Fprintln(a.out, "Available commands: me, logout, ping, exit")
			} else {
				fmt.Fprintln(a.out, "Available commands: register, login, reset, ping, exit")
			}
		case "register":
			a.Register(ctx)
		case "login":
			a.Login(ctx)
		case "reset":
			a.Reset(ctx)
		case "me":
			a.Me(ctx)
		case "logout":
			a.Logout(ctx)
		case "ping":
			a.Ping(ctx)
		case "exit", "quit":
			fmt.Fprintln(a.out, "Bye!")
			return
		default:
			fmt.Fprintln(a.out, "Unknown command:", cmd)
		}
	}
}
