package openrouter

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrMalformedResponse marks a 2xx reply whose body did not contain the
// expected completion shape. Safe to retry once.
var ErrMalformedResponse = errors.New("malformed response from OpenRouter API")

type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Completion is the extracted result of a chat completion call. Model echoes
// the model reported by the API and may be empty.
type Completion struct {
	Content string
	Model   string
}

type ModelPricing struct {
	Prompt     string `json:"prompt"`
	Completion string `json:"completion"`
}

type Model struct {
	ID      string       `json:"id"`
	Name    string       `json:"name"`
	Pricing ModelPricing `json:"pricing"`
}

// IsFree reports whether the provider prices both prompt and completion
// tokens at zero.
func (m Model) IsFree() bool {
	return m.Pricing.Prompt == "0" && m.Pricing.Completion == "0"
}

// APIError is a non-2xx reply. Message holds the structured upstream error
// message when the body carried one, otherwise it is empty and only the
// status code is meaningful.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("request failed with status %d", e.StatusCode)
	}
	return fmt.Sprintf("request failed with status %d: %s", e.StatusCode, e.Message)
}

type chatCompletionRequest struct {
	Model       string    `json:"model"`
	Messages    []Message `json:"messages"`
	Temperature float64   `json:"temperature"`
	MaxTokens   int       `json:"max_tokens"`
}

type chatCompletionResponse struct {
	Model   string `json:"model"`
	Choices []struct {
		Message Message `json:"message"`
	} `json:"choices"`
}

type listModelsResponse struct {
	Data []Model `json:"data"`
}

type errorEnvelope struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}
