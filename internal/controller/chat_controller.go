package controller

import (
	"coverquote-be/internal/dto"
	"coverquote-be/internal/pkg/serverutils"
	"coverquote-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IChatController interface {
	RegisterRoutes(r fiber.Router)
	SendMessage(ctx *fiber.Ctx) error
	History(ctx *fiber.Ctx) error
	Clear(ctx *fiber.Ctx) error
	Retrieve(ctx *fiber.Ctx) error
	Jurisdiction(ctx *fiber.Ctx) error
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
	h.Post("message", c.SendMessage)
	h.Get("history", c.History)
	h.Post("clear", c.Clear)
	h.Get("retrieve", c.Retrieve)
	h.Get("jurisdiction", c.Jurisdiction)
}

// sessionID reads the client session header, minting a fresh id when absent
// so a first message needs no handshake.
func sessionID(ctx *fiber.Ctx) string {
	if id := ctx.Get("X-Session-Id"); id != "" {
		return id
	}
	return uuid.NewString()
}

func (c *chatController) SendMessage(ctx *fiber.Ctx) error {
	var req dto.SendChatRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	res, err := c.chatService.SendChat(ctx.Context(), sessionID(ctx), &req)
	if err != nil {
		return err
	}

	ctx.Set("X-Session-Id", res.SessionID)
	return ctx.JSON(serverutils.SuccessResponse("Success process chat", res))
}

func (c *chatController) History(ctx *fiber.Ctx) error {
	res, err := c.chatService.GetHistory(ctx.Context(), sessionID(ctx))
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get history", res))
}

func (c *chatController) Clear(ctx *fiber.Ctx) error {
	if err := c.chatService.ClearSession(ctx.Context(), sessionID(ctx)); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success clear session", nil))
}

func (c *chatController) Retrieve(ctx *fiber.Ctx) error {
	var req dto.RetrieveRequest
	if err := ctx.QueryParser(&req); err != nil {
		return err
	}

	res, err := c.chatService.Retrieve(ctx.Context(), sessionID(ctx), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success retrieve guidelines", res))
}

func (c *chatController) Jurisdiction(ctx *fiber.Ctx) error {
	res, err := c.chatService.JurisdictionDebug(ctx.Context(), sessionID(ctx))
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success infer jurisdiction", res))
}
