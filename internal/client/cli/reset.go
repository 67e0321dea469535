package cli

import (
	"context"
	"fmt"

	"github.com/ndmitriev/gatekeeper/internal/shared"
)

// Reset walks the user through the password recovery flow: request a code,
// confirm it, then set a new password. When the server answers on the mock
// channel, the code is printed so recovery still works without a mail gateway.
func (a *App) Reset(ctx context.Context) {

	email, err := GetSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}

	info, err := a.service.SendResetCode(ctx, email)
	if err != nil {
		fmt.Fprintf(a.out, "Could not send reset code: %v\n", err)
		return
	}

	if info.Channel == shared.ChannelMock {
		fmt.Fprintf(a.out, "No mail gateway configured; your code is %s\n", info.Code)
	} else {
		fmt.Fprintf(a.out, "A reset code was sent to %s (valid until %s)\n", email, info.ExpiresAt.Format("15:04:05"))
	}

	// the code is checked by ResetPassword itself; confirming it separately
	// would consume it before the new password is stored
	code, err := GetSimpleText(a.reader, "Enter the 6-digit code", a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}

	password, err := GetPassword("Enter new password", a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}
	defer shared.WipeByteArray(password)

	if err := a.service.ResetPassword(ctx, email, code, string(password)); err != nil {
		fmt.Fprintf(a.out, "Password reset unsuccessful: %v\n", err)
		return
	}

	fmt.Fprintln(a.out, "Password updated. You can now log in.")
}
