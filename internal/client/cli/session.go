package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/ndmitriev/gatekeeper/internal/client/client"
)

func (a *App) Me(ctx context.Context) {

	account, err := a.service.Me(ctx)
	if err != nil {
		if errors.Is(err, client.ErrUnauthorized) {
			fmt.Fprintln(a.out, "Not logged in (session missing or expired)")
			a.account = nil
			return
		}
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}

	fmt.Fprintf(a.out, "id: %s\nemail: %s\nrole: %s\n", account.ID, account.Email, account.Role)
}

func (a *App) Logout(ctx context.Context) {

	if err := a.service.Logout(ctx); err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
	}
	a.account = nil
	fmt.Fprintln(a.out, "Logged out")
}

func (a *App) Ping(ctx context.Context) {

	if err := a.service.Ping(ctx); err != nil {
		fmt.Fprintf(a.out, "Server unreachable: %v\n", err)
		return
	}
	fmt.Fprintln(a.out, "Server is up")
}
