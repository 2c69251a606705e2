package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/weatherchat/backend/internal/chat"
	"github.com/weatherchat/backend/internal/domain"
)

// Handler contains all HTTP handlers.
type Handler struct {
	manager *chat.Manager
}

// NewHandler creates a new handler.
func NewHandler(manager *chat.Manager) *Handler {
	return &Handler{manager: manager}
}

// HealthCheck returns service health status.
func (h *Handler) HealthCheck(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":   "ok",
		"service":  "weatherchat-backend",
		"sessions": h.manager.Count(),
	})
}

type createSessionRequest struct {
	Language     string `json:"language"`
	ThinkingMode *bool  `json:"thinking_mode"`
}

// CreateSession starts a new conversation and returns its welcome message.
func (h *Handler) CreateSession(c *fiber.Ctx) error {
	var req createSessionRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}
	}

	thinkingMode := true
	if req.ThinkingMode != nil {
		thinkingMode = *req.ThinkingMode
	}

	session := h.manager.Create(domain.ParseLanguage(req.Language), thinkingMode)
	log.Info().Str("session", session.ID).Msg("session created")

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success":    true,
		"session_id": session.ID,
		"data":       session.Messages(),
	})
}

func (h *Handler) session(c *fiber.Ctx) (*chat.Session, error) {
	session, ok := h.manager.Get(c.Params("id"))
	if !ok {
		return nil, fiber.NewError(fiber.StatusNotFound, "Session not found")
	}
	return session, nil
}

// GetMessages returns the conversation history.
func (h *Handler) GetMessages(c *fiber.Ctx) error {
	session, err := h.session(c)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"success": true,
		"state":   session.State(),
		"data":    session.Messages(),
	})
}

type postMessageRequest struct {
	Content string `json:"content"`
}

// PostMessage processes one user query turn.
func (h *Handler) PostMessage(c *fiber.Ctx) error {
	session, err := h.session(c)
	if err != nil {
		return err
	}

	var req postMessageRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if req.Content == "" {
		return fiber.NewError(fiber.StatusBadRequest, "Message content is required")
	}

	appended, err := session.ProcessQuery(c.Context(), req.Content)
	if err != nil {
		if errors.Is(err, chat.ErrBusy) {
			return fiber.NewError(fiber.StatusConflict, "Session is processing another query")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to process query")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    appended,
	})
}

type setLanguageRequest struct {
	Language string `json:"language"`
}

// SetLanguage switches the session language and returns the re-rendered
// history.
func (h *Handler) SetLanguage(c *fiber.Ctx) error {
	session, err := h.session(c)
	if err != nil {
		return err
	}

	var req setLanguageRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}

	messages := session.SetLanguage(c.Context(), domain.ParseLanguage(req.Language))
	return c.JSON(fiber.Map{
		"success": true,
		"data":    messages,
	})
}

// ClearMessages resets the conversation.
func (h *Handler) ClearMessages(c *fiber.Ctx) error {
	session, err := h.session(c)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"success": true,
		"data":    session.Clear(),
	})
}
