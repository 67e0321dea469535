package cli

import (
	"context"
	"fmt"

	"github.com/ndmitriev/gatekeeper/internal/shared"
)

func (a *App) Register(ctx context.Context) {

	fullName, err := GetSimpleText(a.reader, "Enter full name", a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}

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

	account, err := a.service.Register(ctx, fullName, email, string(password))
	if err != nil {
		fmt.Fprintf(a.out, "Registration unsuccessful: %v\n", err)
		return
	}

	fmt.Fprintf(a.out, "Registered %s. You can now log in.\n", account.Email)
}
