package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/hrdesk/internal/api/dto"
	"github.com/spec-kit/hrdesk/internal/auth"
	"github.com/spec-kit/hrdesk/internal/chat"
	apperrors "github.com/spec-kit/hrdesk/pkg/util"
)

// ChatHandler exposes the chat turn and transcript endpoints.
type ChatHandler struct {
	chat *chat.Service
}

// NewChatHandler constructs handler.
func NewChatHandler(chatService *chat.Service) *ChatHandler {
	return &ChatHandler{chat: chatService}
}

// Message handles POST /chat/messages: one full pipeline turn.
func (h *ChatHandler) Message(c *fiber.Ctx) error {
	sess, ok := auth.SessionFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("no active session")
	}

	var req dto.ChatRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if err := dto.Validate(req); err != nil {
		return err
	}

	result, err := h.chat.Turn(c.UserContext(), sess, req.Message)
	if err != nil {
		return apperrors.MapError(err)
	}

	resp := dto.ChatResponse{
		Reply:  result.Reply,
		Closed: result.Closed,
	}
	if !result.Closed {
		resp.Category = result.Category
		resp.Status = string(result.Status)
		resp.FollowUpPrompt = result.FollowUpPrompt
	}
	return c.JSON(fiber.Map{"data": resp})
}

// Transcript handles GET /chat/transcript.
func (h *ChatHandler) Transcript(c *fiber.Ctx) error {
	sess, ok := auth.SessionFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("no active session")
	}
	return c.JSON(fiber.Map{
		"data": dto.TranscriptResponse{
			SessionID: sess.ID,
			Messages:  sess.Transcript,
		},
	})
}
