package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/talentoplus/talento-api/internal/application/assistant"
	"github.com/talentoplus/talento-api/internal/application/dto"
	"github.com/talentoplus/talento-api/internal/application/usecase"
)

// DashboardHandler expone los conteos del dashboard y el asistente de
// preguntas en lenguaje natural.
type DashboardHandler struct {
	uc        *usecase.DashboardUseCase
	assistant *assistant.UseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *usecase.DashboardUseCase, assistantUC *assistant.UseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc, assistant: assistantUC}
}

// Summary devuelve los conteos de empleados por estado.
func (h *DashboardHandler) Summary(c *fiber.Ctx) error {
	out, err := h.uc.GetSummary(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Ask responde una pregunta en lenguaje natural sobre los datos. La respuesta
// siempre es 200 con un texto; los fallos del asistente van dentro del texto.
func (h *DashboardHandler) Ask(c *fiber.Ctx) error {
	var in dto.AskRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Question == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "question es requerido"})
	}
	answer := h.assistant.Ask(c.Context(), in.Question)
	return c.JSON(dto.AskResponse{Answer: answer})
}
