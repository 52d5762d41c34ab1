package openrouter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/pkg/errors"
	"github.com/samber/lo"
	log "github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
)

const (
	DefaultBaseURL = "https://openrouter.ai/api/v1"

	appReferer = "https://job8earch.com"
	appTitle   = "Job8earch"
)

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

type Client struct {
	httpClient  HTTPClient
	apiKey      string
	baseURL     string
	rateLimiter *rate.Limiter
}

func NewClient(apiKey string, timeout time.Duration) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		apiKey:     apiKey,
		baseURL:    DefaultBaseURL,
	}
}

func (c *Client) SetHTTPClient(client HTTPClient) {
	c.httpClient = client
}

func (c *Client) SetBaseURL(baseURL string) {
	c.baseURL = baseURL
}

func (c *Client) SetRateLimit(maxRequestsPerMinute float32) {
	c.rateLimiter = rate.NewLimiter(rate.Limit(maxRequestsPerMinute/60), 1)
}

// ChatCompletion posts one completion request. A well-formed 2xx reply with
// an empty choice list is retried once before ErrMalformedResponse is
// returned.
func (c *Client) ChatCompletion(ctx context.Context, model string, messages []Message,
	temperature float64, maxTokens int) (*Completion, error) {

	request := chatCompletionRequest{
		Model:       model,
		Messages:    messages,
		Temperature: temperature,
		MaxTokens:   maxTokens,
	}

	var completion *Completion
	var err error

	_, _, _ = lo.AttemptWhileWithDelay(2, time.Second, func(i int, _ time.Duration) (error, bool) {
		if i > 0 {
			log.Warn("openrouter returned a malformed completion, retrying...")
		}
		completion, err = c.tryChatCompletion(ctx, request)
		return err, errors.Is(err, ErrMalformedResponse)
	})

	return completion, err
}

func (c *Client) tryChatCompletion(ctx context.Context, request chatCompletionRequest) (*Completion, error) {

	body, err := c.sendRequest(ctx, http.MethodPost, "/chat/completions", request)
	if err != nil {
		return nil, err
	}

	var response chatCompletionResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}

	if len(response.Choices) == 0 {
		return nil, ErrMalformedResponse
	}

	return &Completion{
		Content: response.Choices[0].Message.Content,
		Model:   response.Model,
	}, nil
}

func (c *Client) ListModels(ctx context.Context) ([]Model, error) {

	body, err := c.sendRequest(ctx, http.MethodGet, "/models", nil)
	if err != nil {
		return nil, err
	}

	var response listModelsResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	if response.Data == nil {
		return nil, ErrMalformedResponse
	}

	return response.Data, nil
}

func (c *Client) sendRequest(ctx context.Context, method, path string, payload any) ([]byte, error) {

	if c.rateLimiter != nil {
		if err := c.rateLimiter.Wait(ctx); err != nil {
			return nil, err
		}
	}

	var reqBody io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("error encoding request: %v", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return nil, fmt.Errorf("error creating request: %v", err)
	}

	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("HTTP-Referer", appReferer)
	req.Header.Set("X-Title", appTitle)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("error sending request: %w", err)
	}
	defer resp.Body.Close()

	return c.handleResponse(resp)
}

func (c *Client) handleResponse(resp *http.Response) ([]byte, error) {
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("error reading response body: %v", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		var envelope errorEnvelope
		if json.Unmarshal(body, &envelope) == nil {
			apiErr.Message = envelope.Error.Message
		}
		return nil, apiErr
	}

	return body, nil
}
