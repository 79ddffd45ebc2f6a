package auth

import (
	"github.com/rs/zerolog/log"
)

// LogAuthAttempt records an authentication attempt.
// authType: Local|Logout|...
// identifier: username, email or user ID (optional)
// message: additional info (optional)
func LogAuthAttempt(authType string, success bool, identifier string, message string) {
	event := log.Info()
	if !success {
		event = log.Warn()
	}
	event = event.Str("auth_type", authType).Bool("success", success)
	if identifier != "" {
		event = event.Str("identifier", identifier)
	}
	if message != "" {
		event = event.Str("reason", message)
	}
	event.Msg("Authentication attempt")
}
