package conversation

import (
	"errors"

	"github.com/BaSui01/clarity/llm"
)

const (
	quotaErrorMessage = "Sorry, we've reached our daily AI conversation limit. Please try again later or contact support to increase the quota."
	authErrorMessage  = "Authentication issue with AI service. Please contact support."
)

// userFacingMessage maps a provider failure to the text shown to the
// client. Quota and rate-limit failures get the daily-limit message,
// auth failures point at support, everything else is truncated so raw
// upstream detail never reaches the client verbatim.
func userFacingMessage(err error) string {
	var lerr *llm.Error
	if errors.As(err, &lerr) {
		switch lerr.Code {
		case llm.ErrRateLimited, llm.ErrQuotaExceeded:
			return quotaErrorMessage
		case llm.ErrUnauthorized, llm.ErrForbidden:
			return authErrorMessage
		}
	}

	detail := err.Error()
	if len(detail) > 100 {
		detail = detail[:100]
	}
	return "Sorry, there was an unexpected error: " + detail + "..."
}
