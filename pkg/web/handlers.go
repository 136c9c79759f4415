// Package web provides HTTP handlers and REST API endpoints for the
// translation pipeline.
package web

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v3"

	"github.com/flowlift/flowlift/pkg/services"
)

type APIHandlers struct {
	translationService *services.Translation
	validator          *validator.Validate
}

func NewAPIHandlers(translationService *services.Translation, validator *validator.Validate) *APIHandlers {
	return &APIHandlers{
		translationService: translationService,
		validator:          validator,
	}
}

// ParseWorkflow decodes a workflow document and returns the normalized IR.
func (h *APIHandlers) ParseWorkflow(c fiber.Ctx) error {
	var req ParseRequest
	if err := c.Bind().JSON(&req); err != nil {
		return badRequest(c, "Invalid JSON format")
	}

	if err := h.validator.Struct(req); err != nil {
		return badRequest(c, err.Error())
	}

	workflow, err := h.translationService.Parse(c.Context(), req.Document)
	if err != nil {
		return handleServiceError(c, err)
	}

	return c.JSON(workflow)
}

// TranslateWorkflow runs the full pipeline and returns the IR, the mapping
// partition, the trigger descriptors and the persisted report.
func (h *APIHandlers) TranslateWorkflow(c fiber.Ctx) error {
	var req TranslateRequest
	if err := c.Bind().JSON(&req); err != nil {
		return badRequest(c, "Invalid JSON format")
	}

	if err := h.validator.Struct(req); err != nil {
		return badRequest(c, err.Error())
	}

	result, err := h.translationService.Translate(c.Context(), services.TranslateRequest{
		Document:     req.Document,
		MappingTable: req.MappingTable,
		Overrides:    req.Overrides,
		BaseURL:      req.BaseURL,
	})
	if err != nil {
		return handleServiceError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(result)
}

func (h *APIHandlers) GetReports(c fiber.Ctx) error {
	reports, err := h.translationService.ListReports(c.Context())
	if err != nil {
		return handleServiceError(c, err)
	}

	return c.JSON(fiber.Map{
		"reports":     reports,
		"total_count": len(reports),
	})
}

func (h *APIHandlers) GetReport(c fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return badRequest(c, "Report ID is required")
	}

	report, err := h.translationService.GetReport(c.Context(), id)
	if err != nil {
		return handleServiceError(c, err)
	}

	return c.JSON(report)
}

func (h *APIHandlers) DeleteReport(c fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return badRequest(c, "Report ID is required")
	}

	if err := h.translationService.DeleteReport(c.Context(), id); err != nil {
		return handleServiceError(c, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

func (h *APIHandlers) HealthCheck(c fiber.Ctx) error {
	message, healthy := h.translationService.HealthCheck(c.Context())

	status := fiber.StatusOK
	if !healthy {
		status = fiber.StatusServiceUnavailable
	}

	return c.Status(status).JSON(fiber.Map{
		"healthy": healthy,
		"message": message,
	})
}
