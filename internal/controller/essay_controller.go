package controller

import (
	"pdf-evidence-be/internal/dto"
	"pdf-evidence-be/internal/pkg/serverutils"
	"pdf-evidence-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IEssayController interface {
	RegisterRoutes(r fiber.Router)
	Generate(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	Reorder(ctx *fiber.Ctx) error
	Clear(ctx *fiber.Ctx) error
}

type essayController struct {
	essayService service.IEssayService
}

func NewEssayController(essayService service.IEssayService) IEssayController {
	return &essayController{
		essayService: essayService,
	}
}

func (c *essayController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/essay/v1")
	h.Use(serverutils.ClientIDMiddleware)
	h.Post("generate", c.Generate)
	h.Get("", c.Show)
	h.Put("reorder", c.Reorder)
	h.Delete("", c.Clear)
}

func (c *essayController) Generate(ctx *fiber.Ctx) error {
	clientIdStr := ctx.Locals("client_id").(string)
	clientId, _ := uuid.Parse(clientIdStr)

	var req dto.GenerateEssayRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.essayService.Generate(ctx.Context(), clientId, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Essay generated", res))
}

func (c *essayController) Show(ctx *fiber.Ctx) error {
	clientIdStr := ctx.Locals("client_id").(string)
	clientId, _ := uuid.Parse(clientIdStr)

	res, err := c.essayService.Show(ctx.Context(), clientId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success show essay", res))
}

func (c *essayController) Reorder(ctx *fiber.Ctx) error {
	clientIdStr := ctx.Locals("client_id").(string)
	clientId, _ := uuid.Parse(clientIdStr)

	var req dto.ReorderParagraphsRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.essayService.Reorder(ctx.Context(), clientId, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Paragraphs reordered", res))
}

func (c *essayController) Clear(ctx *fiber.Ctx) error {
	clientIdStr := ctx.Locals("client_id").(string)
	clientId, _ := uuid.Parse(clientIdStr)

	res, err := c.essayService.Clear(ctx.Context(), clientId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Essay cleared", res))
}
