package assist

import "errors"

// ErrNotConfigured marks operations attempted without an AI provider.
// Distinct from transport failures: the caller can prompt for setup
// instead of suggesting a retry.
var ErrNotConfigured = errors.New("AI provider not configured")
