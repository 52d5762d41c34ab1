package services

import (
	"context"
	"time"

	"github.com/Jeff9497/Job8earch/internal/clients/openrouter"
	"github.com/Jeff9497/Job8earch/internal/entities"
	"github.com/Jeff9497/Job8earch/internal/logger"
	"github.com/Jeff9497/Job8earch/internal/metrics"
	log "github.com/sirupsen/logrus"
)

// Generation parameters are fixed policy, not caller-configurable.
const (
	chatTemperature = 0.7
	chatMaxTokens   = 2000
)

const defaultSystemPrompt = "You are a helpful AI assistant. Provide clear, accurate, and helpful responses."

// allowedModels is the fixed model allow-list offered to callers. An unknown
// model id falls back to the configured default.
var allowedModels = []entities.ModelInfo{
	{ID: "google/gemma-3n-e2b-it:free", Name: "Google: Gemma 3n 2B (Free)"},
	{ID: "tencent/hunyuan-a13b-instruct:free", Name: "Tencent: Hunyuan A13B (Free)"},
	{ID: "tngtech/deepseek-r1t2-chimera:free", Name: "TNG: DeepSeek R1T2 Chimera (Free)"},
	{ID: "openrouter/cypher-alpha:free", Name: "Cypher Alpha (Free)"},
	{ID: "mistralai/mistral-small-3.2-24b-instruct:free", Name: "Mistral: Small 3.2 24B (Free)"},
}

type completionClient interface {
	ChatCompletion(ctx context.Context, model string, messages []openrouter.Message,
		temperature float64, maxTokens int) (*openrouter.Completion, error)
}

// ChatService is the single point of contact with the completion API. It owns
// request shaping and error normalization; no raw error ever crosses its
// boundary.
type ChatService struct {
	client       completionClient
	apiKey       string
	defaultModel string
}

func NewChatService(client completionClient, apiKey, defaultModel string) *ChatService {
	return &ChatService{
		client:       client,
		apiKey:       apiKey,
		defaultModel: defaultModel,
	}
}

// Send performs one completion round trip. A missing credential fails before
// any transport call.
func (s *ChatService) Send(ctx context.Context, request entities.ChatRequest) entities.ChatResult {

	if s.apiKey == "" {
		log.WithField(logger.ErrorTypeField, logger.ErrorTypeChatAPI).Error("chat requested without a configured API key")
		metrics.ChatRequestsCounter.WithLabelValues(string(ErrorConfiguration), "none").Inc()
		return entities.ChatResult{Error: msgMissingKey}
	}

	model := s.resolveModel(request.Model)

	var messages []openrouter.Message
	if request.SystemPrompt != "" {
		messages = append(messages, openrouter.Message{Role: string(entities.RoleSystem), Content: request.SystemPrompt})
	}
	messages = append(messages, openrouter.Message{Role: string(entities.RoleUser), Content: request.UserMessage})

	start := time.Now()
	completion, err := s.client.ChatCompletion(ctx, model, messages, chatTemperature, chatMaxTokens)
	metrics.ChatRequestDuration.Observe(time.Since(start).Seconds())

	if err != nil {
		category, message := classifyError(err)
		log.WithField(logger.ErrorTypeField, logger.ErrorTypeChatAPI).
			Errorf("chat completion failed (%v): %v", category, err)
		metrics.ChatRequestsCounter.WithLabelValues(string(category), model).Inc()
		return entities.ChatResult{Error: message}
	}

	metrics.ChatRequestsCounter.WithLabelValues("success", model).Inc()

	responseModel := completion.Model
	if responseModel == "" {
		responseModel = model
	}

	return entities.ChatResult{
		Success: true,
		Content: completion.Content,
		Model:   responseModel,
	}
}

// ChatReply is the general-chat shape returned to the conversation UI.
type ChatReply struct {
	Success   bool      `json:"success"`
	Response  string    `json:"response,omitempty"`
	Model     string    `json:"model,omitempty"`
	Timestamp time.Time `json:"timestamp"`
	Error     string    `json:"error,omitempty"`
}

// Chat answers a free-form message. A caller-supplied context replaces the
// generic assistant persona.
func (s *ChatService) Chat(ctx context.Context, message, persona, model string) ChatReply {

	if persona == "" {
		persona = defaultSystemPrompt
	}

	result := s.Send(ctx, entities.ChatRequest{
		UserMessage:  message,
		SystemPrompt: persona,
		Model:        model,
	})

	if !result.Success {
		return ChatReply{Error: result.Error, Timestamp: time.Now().UTC()}
	}

	return ChatReply{
		Success:   true,
		Response:  result.Content,
		Model:     result.Model,
		Timestamp: time.Now().UTC(),
	}
}

// Models returns the fixed allow-list. No network call.
func (s *ChatService) Models() []entities.ModelInfo {
	models := make([]entities.ModelInfo, len(allowedModels))
	copy(models, allowedModels)
	return models
}

func (s *ChatService) resolveModel(id string) string {
	if id == "" {
		return s.defaultModel
	}
	for _, model := range allowedModels {
		if model.ID == id {
			return id
		}
	}
	return s.defaultModel
}
