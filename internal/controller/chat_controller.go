package controller

import (
	"pdf-evidence-be/internal/dto"
	"pdf-evidence-be/internal/pkg/serverutils"
	"pdf-evidence-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IChatController interface {
	RegisterRoutes(r fiber.Router)
	Start(ctx *fiber.Ctx) error
	Send(ctx *fiber.Ctx) error
	History(ctx *fiber.Ctx) error
	Reset(ctx *fiber.Ctx) error
}

type chatController struct {
	chatService service.IChatService
}

func NewChatController(chatService service.IChatService) IChatController {
	return &chatController{
		chatService: chatService,
	}
}

func (c *chatController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/chat/v1")
	h.Use(serverutils.ClientIDMiddleware)
	h.Post("session", c.Start)
	h.Post("message", c.Send)
	h.Get("history", c.History)
	h.Delete("", c.Reset)
}

func (c *chatController) Start(ctx *fiber.Ctx) error {
	clientIdStr := ctx.Locals("client_id").(string)
	clientId, _ := uuid.Parse(clientIdStr)

	res, err := c.chatService.Start(ctx.Context(), clientId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Chat session ready", res))
}

func (c *chatController) Send(ctx *fiber.Ctx) error {
	clientIdStr := ctx.Locals("client_id").(string)
	clientId, _ := uuid.Parse(clientIdStr)

	var req dto.SendChatMessageRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.chatService.Send(ctx.Context(), clientId, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Message sent", res))
}

func (c *chatController) History(ctx *fiber.Ctx) error {
	clientIdStr := ctx.Locals("client_id").(string)
	clientId, _ := uuid.Parse(clientIdStr)

	res, err := c.chatService.History(ctx.Context(), clientId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success chat history", res))
}

func (c *chatController) Reset(ctx *fiber.Ctx) error {
	clientIdStr := ctx.Locals("client_id").(string)
	clientId, _ := uuid.Parse(clientIdStr)

	res, err := c.chatService.Reset(ctx.Context(), clientId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Chat reset", res))
}
