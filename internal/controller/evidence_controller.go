package controller

import (
	"pdf-evidence-be/internal/dto"
	"pdf-evidence-be/internal/pkg/serverutils"
	"pdf-evidence-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IEvidenceController interface {
	RegisterRoutes(r fiber.Router)
	List(ctx *fiber.Ctx) error
	Select(ctx *fiber.Ctx) error
	Deselect(ctx *fiber.Ctx) error
	Toggle(ctx *fiber.Ctx) error
	Clear(ctx *fiber.Ctx) error
}

type evidenceController struct {
	evidenceService service.IEvidenceService
}

func NewEvidenceController(evidenceService service.IEvidenceService) IEvidenceController {
	return &evidenceController{
		evidenceService: evidenceService,
	}
}

func (c *evidenceController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/evidence/v1")
	h.Use(serverutils.ClientIDMiddleware)
	h.Get("", c.List)
	h.Post("select", c.Select)
	h.Post("deselect", c.Deselect)
	h.Post("toggle", c.Toggle)
	h.Delete("selection", c.Clear)
}

func (c *evidenceController) List(ctx *fiber.Ctx) error {
	clientIdStr := ctx.Locals("client_id").(string)
	clientId, _ := uuid.Parse(clientIdStr)

	res, err := c.evidenceService.List(ctx.Context(), clientId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list evidence", res))
}

func (c *evidenceController) Select(ctx *fiber.Ctx) error {
	clientIdStr := ctx.Locals("client_id").(string)
	clientId, _ := uuid.Parse(clientIdStr)

	var req dto.SelectEvidenceRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.evidenceService.Select(ctx.Context(), clientId, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Evidence selected", res))
}

func (c *evidenceController) Deselect(ctx *fiber.Ctx) error {
	clientIdStr := ctx.Locals("client_id").(string)
	clientId, _ := uuid.Parse(clientIdStr)

	var req dto.SelectEvidenceRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.evidenceService.Deselect(ctx.Context(), clientId, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Evidence deselected", res))
}

func (c *evidenceController) Toggle(ctx *fiber.Ctx) error {
	clientIdStr := ctx.Locals("client_id").(string)
	clientId, _ := uuid.Parse(clientIdStr)

	var req dto.ToggleEvidenceRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.evidenceService.Toggle(ctx.Context(), clientId, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Evidence toggled", res))
}

func (c *evidenceController) Clear(ctx *fiber.Ctx) error {
	clientIdStr := ctx.Locals("client_id").(string)
	clientId, _ := uuid.Parse(clientIdStr)

	res, err := c.evidenceService.Clear(ctx.Context(), clientId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Selection cleared", res))
}
