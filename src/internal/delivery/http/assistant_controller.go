package http

import (
	"skillswitch-service/src/internal/delivery/http/middleware"
	"skillswitch-service/src/internal/model"
	"skillswitch-service/src/internal/usecase"
	"skillswitch-service/src/pkg/log"
	"skillswitch-service/src/pkg/utils"

	"github.com/gofiber/fiber/v2"
)

type AssistantController struct {
	Log     log.Log
	UseCase *usecase.AssistantUseCase
}

func NewAssistantController(useCase *usecase.AssistantUseCase, logger log.Log) *AssistantController {
	return &AssistantController{
		Log:     logger,
		UseCase: useCase,
	}
}

func (c *AssistantController) Chat(ctx *fiber.Ctx) error {
	auth := middleware.GetUser(ctx)

	request := new(model.ChatRequest)
	if err := ctx.BodyParser(request); err != nil {
		c.Log.Error("AssistantController.Chat", "Failed to parse request body", "error", err.Error())
		return utils.ResponseError(err, ctx)
	}
	request.UserID = auth.UserID
	result := c.UseCase.Chat(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "Chat", fiber.StatusOK, ctx)
}
