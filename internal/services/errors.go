package services

import (
	"net/http"
	"strings"

	"github.com/Jeff9497/Job8earch/internal/clients/openrouter"
	"github.com/pkg/errors"
)

// ErrorCategory labels a classified gateway failure. The category never
// reaches the UI directly; it selects the user-facing message and the
// metrics label.
type ErrorCategory string

const (
	ErrorConfiguration       ErrorCategory = "configuration"
	ErrorConsentRequired     ErrorCategory = "consent_required"
	ErrorModelUnavailable    ErrorCategory = "model_unavailable"
	ErrorRateLimited         ErrorCategory = "rate_limited"
	ErrorInsufficientCredits ErrorCategory = "insufficient_credits"
	ErrorInvalidCredential   ErrorCategory = "invalid_credential"
	ErrorEndpointNotFound    ErrorCategory = "endpoint_not_found"
	ErrorMalformedResponse   ErrorCategory = "malformed_response"
	ErrorGenericAPI          ErrorCategory = "api"
	ErrorUnexpected          ErrorCategory = "unexpected"
)

const (
	msgMissingKey = "OpenRouter API key is not configured. Please set OPENROUTER_API_KEY."
	msgConsent    = "Privacy Settings Issue: Please visit https://openrouter.ai/settings/privacy " +
		"and enable prompt training to use free models."
	msgModelUnavailable = "Model not available. The selected model may not be accessible with your current settings."
	msgRateLimited      = "Rate limit exceeded. Please wait a moment before trying again."
	msgNoCredits        = "Insufficient credits. Please add credits to your OpenRouter account."
	msgInvalidKey       = "Invalid API key. Please check your OpenRouter API key configuration."
	msgEndpointNotFound = "API endpoint not found. Please check your OpenRouter configuration."
	msgMalformed        = "Received an unexpected response from the AI service. Please try again."
	msgUnexpected       = "Failed to get AI response. Please try again."
)

// classifyError maps a transport failure to a category and a user-facing
// message. Known upstream failure modes are recognized by substrings of the
// structured error message, in priority order; the exact upstream wording is
// not guaranteed by the provider, so all matching lives here.
func classifyError(err error) (ErrorCategory, string) {

	var apiErr *openrouter.APIError
	if errors.As(err, &apiErr) {
		if apiErr.Message != "" {
			return classifyUpstreamMessage(apiErr.Message)
		}
		switch apiErr.StatusCode {
		case http.StatusUnauthorized:
			return ErrorInvalidCredential, msgInvalidKey
		case http.StatusNotFound:
			return ErrorEndpointNotFound, msgEndpointNotFound
		default:
			return ErrorUnexpected, msgUnexpected
		}
	}

	if errors.Is(err, openrouter.ErrMalformedResponse) {
		return ErrorMalformedResponse, msgMalformed
	}

	return ErrorUnexpected, msgUnexpected
}

func classifyUpstreamMessage(message string) (ErrorCategory, string) {
	lowered := strings.ToLower(message)
	switch {
	case strings.Contains(lowered, "data policy"):
		return ErrorConsentRequired, msgConsent
	case strings.Contains(lowered, "no endpoints found"):
		return ErrorModelUnavailable, msgModelUnavailable
	case strings.Contains(lowered, "rate limit"):
		return ErrorRateLimited, msgRateLimited
	case strings.Contains(lowered, "insufficient credits"):
		return ErrorInsufficientCredits, msgNoCredits
	default:
		return ErrorGenericAPI, "API Error: " + message
	}
}
