package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/vipmudancas/mirante/internal/api/metrics"
	"github.com/vipmudancas/mirante/internal/core/domain"
	"github.com/vipmudancas/mirante/internal/core/ports"
)

// AssistantHandler exposes the sales assistant. Every endpoint answers 200
// once the request is valid; provider trouble only changes the answer source.
type AssistantHandler struct {
	assistant ports.AssistantService
}

func NewAssistantHandler(assistant ports.AssistantService) *AssistantHandler {
	return &AssistantHandler{assistant: assistant}
}

// bindAndValidate decodes the body into req and runs its validation tags.
func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, msgInvalidPayload)
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return nil
}

// AnalyzeClient classifies a prospective client into a sales tier.
//
// @Summary      Classify a client
// @Tags         assistant
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      analyzeClientRequest  true  "Client profile"
// @Success      200   {object}  analyzeClientResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /analisar-cliente [post]
func (h *AssistantHandler) AnalyzeClient(c echo.Context) error {
	var req analyzeClientRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	res := h.assistant.ClassifyClient(c.Request().Context(), domain.ClientProfile{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Company: req.Company,
	})
	metrics.AssistantRequestsTotal.WithLabelValues("classify_client", string(res.Source)).Inc()
	metrics.ClientTiersTotal.WithLabelValues(string(res.Tier)).Inc()

	return c.JSON(http.StatusOK, analyzeClientResponse{
		Tier:       string(res.Tier),
		Rationale:  res.Rationale,
		AnalyzedBy: domain.AssistantName,
	})
}

// SuggestAction proposes the next sales step for a client.
//
// @Summary      Suggest next action
// @Tags         assistant
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      suggestActionRequest  true  "Client situation"
// @Success      200   {object}  suggestActionResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /sugerir-acao [post]
func (h *AssistantHandler) SuggestAction(c echo.Context) error {
	var req suggestActionRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	res := h.assistant.SuggestAction(c.Request().Context(), domain.ActionContext{
		Status:           req.Status,
		Tier:             req.Tier,
		DaysSinceContact: req.DaysSinceContact,
	})
	metrics.AssistantRequestsTotal.WithLabelValues("suggest_action", string(res.Source)).Inc()

	return c.JSON(http.StatusOK, suggestActionResponse{
		Suggestion:  res.Suggestion,
		GeneratedBy: domain.AssistantName,
	})
}

// GenerateMessage writes a client message for WhatsApp, email or SMS.
//
// @Summary      Generate a client message
// @Tags         assistant
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      generateMessageRequest  true  "Message request"
// @Success      200   {object}  generateMessageResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /gerar-mensagem [post]
func (h *AssistantHandler) GenerateMessage(c echo.Context) error {
	var req generateMessageRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	res := h.assistant.GenerateMessage(c.Request().Context(), domain.MessageRequest{
		Channel:    domain.Channel(req.Channel),
		ClientName: req.ClientName,
		Context:    req.Context,
	})
	metrics.AssistantRequestsTotal.WithLabelValues("generate_message", string(res.Source)).Inc()

	return c.JSON(http.StatusOK, generateMessageResponse{
		Channel:     string(res.Channel),
		Message:     res.Message,
		GeneratedBy: domain.AssistantName,
	})
}

// Chat answers a free-form question from the team.
//
// @Summary      Chat with the assistant
// @Tags         assistant
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      chatRequest  true  "Question"
// @Success      200   {object}  chatResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /chat [post]
func (h *AssistantHandler) Chat(c echo.Context) error {
	var req chatRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	res := h.assistant.Chat(c.Request().Context(), domain.ChatRequest{
		Question: req.Question,
		Context:  req.Context,
	})
	metrics.AssistantRequestsTotal.WithLabelValues("chat", string(res.Source)).Inc()

	return c.JSON(http.StatusOK, chatResponse{
		Reply:     res.Reply,
		Assistant: domain.AssistantName,
	})
}
