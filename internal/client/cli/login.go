package cli

import (
	"context"
	"fmt"

	"github.com/ndmitriev/gatekeeper/internal/shared"
)

func (a *App) Login(ctx context.Context) {

	email, err := GetSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}

	password, err := GetPassword("Enter password", a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}
	defer shared.WipeByteArray(password)

	account, err := a.service.Login(ctx, email, string(password))
	if err != nil {
		fmt.Fprintf(a.out, "Login unsuccessful: %v\n", err)
		return
	}

	a.account = account
	fmt.Fprintf(a.out, "Logged in as %s\n", account.Email)
}
