package dto

import "github.com/spec-kit/hrdesk/internal/domain"

// ChatRequest carries one user message.
type ChatRequest struct {
	Message string `json:"message" validate:"required,max=4000"`
}

// ChatResponse is the reply for one completed turn.
type ChatResponse struct {
	Reply          string `json:"reply"`
	Category       string `json:"category,omitempty"`
	Status         string `json:"status,omitempty"`
	FollowUpPrompt string `json:"follow_up_prompt,omitempty"`
	Closed         bool   `json:"closed,omitempty"`
}

// TranscriptResponse returns the session transcript.
type TranscriptResponse struct {
	SessionID string           `json:"session_id"`
	Messages  []domain.Message `json:"messages"`
}
