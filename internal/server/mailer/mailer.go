// Package mailer delivers password-reset codes to users. Delivery is best
// effort: the auth service falls back to a disclosed mock channel when no
// mailer is configured or when delivery fails.
package mailer

import (
	"context"
	"time"
)

// Mailer sends a reset code to the given address. Implementations own their
// network timeout discipline; callers only see the final error.
type Mailer interface {
	SendResetCode(ctx context.Context, email, code string, ttl time.Duration) error
}
