package common

import "time"

// AuthTokenHeaderName is the gRPC metadata key that may carry the session
// token when the request message has no auth field set.
const AuthTokenHeaderName = "auth_token"

const (
	// DefaultBalance is credited to every freshly registered user.
	DefaultBalance = 5.0

	// DefaultSessionTTL is how long a login token stays valid.
	DefaultSessionTTL = 600 * time.Second

	// DefaultListLimit is the number of public feed entries returned by List.
	DefaultListLimit = 250

	// DefaultLockStripes is the size of the lock arena.
	DefaultLockStripes = 4096

	TokenLength    = 30
	PasswordLength = 15
)
