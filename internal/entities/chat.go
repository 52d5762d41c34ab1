package entities

import "time"

type ChatRole string

const (
	RoleSystem    ChatRole = "system"
	RoleUser      ChatRole = "user"
	RoleAssistant ChatRole = "assistant"
)

// ChatRequest is one outbound completion request. An empty SystemPrompt means
// no system message is sent; an empty Model selects the configured default.
type ChatRequest struct {
	UserMessage  string
	SystemPrompt string
	Model        string
}

// ChatResult is the uniform gateway outcome. On failure Error carries a
// classified, human-readable message; raw errors never cross this boundary.
type ChatResult struct {
	Success bool   `json:"success"`
	Content string `json:"content,omitempty"`
	Model   string `json:"model,omitempty"`
	Error   string `json:"error,omitempty"`
}

// ChatMessage is one conversation log entry, owned by the session layer.
type ChatMessage struct {
	Role      ChatRole  `json:"role"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
	IsError   bool      `json:"error,omitempty"`
	Model     string    `json:"model,omitempty"`
}

type ModelInfo struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
