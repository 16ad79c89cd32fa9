package push

import "context"

// Service defines the push-notification collaborator. Every dispatch is
// best-effort: callers log failures and carry on, so implementations must
// never be load-bearing for protocol correctness.
type Service interface {
	// SendToToken delivers a push message to a single device token and
	// returns the provider's message id.
	SendToToken(ctx context.Context, token, title, body string, data map[string]string) (string, error)
}
