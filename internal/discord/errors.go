package discord

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"
)

const (
	codeUnauthorized         = 40001
	codeVerificationRequired = 40002
)

// authErrorCodes are Discord API error codes that indicate authentication problems
var authErrorCodes = map[int]string{
	codeUnauthorized:         "Authentication token is invalid. Please refresh DISCORD_TOKEN.",
	codeVerificationRequired: "The account must be verified before it can use the API.",
}

const unauthorizedMessage = "Authentication token is invalid or expired. Please refresh DISCORD_TOKEN."

// AuthError represents a Discord authentication error with guidance for resolution
type AuthError struct {
	Code    int
	Message string
}

func (e *AuthError) Error() string {
	return fmt.Sprintf("DISCORD AUTHENTICATION ERROR: %s (code: %d)", e.Message, e.Code)
}

// matchAuthError checks if an error is a Discord authentication failure.
// Returns nil if no auth error is found.
func matchAuthError(err error) *AuthError {
	var restErr *discordgo.RESTError
	if !errors.As(err, &restErr) {
		return nil
	}
	if restErr.Message != nil {
		if message, ok := authErrorCodes[restErr.Message.Code]; ok {
			return &AuthError{Code: restErr.Message.Code, Message: message}
		}
	}
	if restErr.Response != nil && restErr.Response.StatusCode == http.StatusUnauthorized {
		return &AuthError{Code: codeUnauthorized, Message: unauthorizedMessage}
	}
	return nil
}

// WrapError checks for auth errors and returns an enhanced error with logging.
// This should be called at the dispatch boundary (chat commands, MCP tools)
// to give callers a clear message.
func WrapError(logger *zap.Logger, operation string, err error) error {
	if err == nil {
		return nil
	}

	if authErr := matchAuthError(err); authErr != nil {
		logger.Error("Discord authentication failed",
			zap.String("operation", operation),
			zap.String("guidance", authErr.Message),
			zap.Error(err))
		return authErr
	}

	return fmt.Errorf("%s: %w", operation, err)
}
