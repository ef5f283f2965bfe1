package http

import (
	"skillswitch-service/src/internal/delivery/http/middleware"
	"skillswitch-service/src/internal/model"
	"skillswitch-service/src/internal/usecase"
	"skillswitch-service/src/pkg/log"
	"skillswitch-service/src/pkg/utils"

	"github.com/gofiber/fiber/v2"
)

type SafeZoneController struct {
	Log     log.Log
	UseCase *usecase.SafeZoneUseCase
}

func NewSafeZoneController(useCase *usecase.SafeZoneUseCase, logger log.Log) *SafeZoneController {
	return &SafeZoneController{
		Log:     logger,
		UseCase: useCase,
	}
}

func (c *SafeZoneController) List(ctx *fiber.Ctx) error {
	result := c.UseCase.List(ctx.Context())
	return utils.Response(result.Data, "Safe Zones", fiber.StatusOK, ctx)
}

func (c *SafeZoneController) Check(ctx *fiber.Ctx) error {
	auth := middleware.GetUser(ctx)

	request := new(model.CheckLocationRequest)
	if len(ctx.Body()) > 0 {
		if err := ctx.BodyParser(request); err != nil {
			c.Log.Error("SafeZoneController.Check", "Failed to parse request body", "error", err.Error())
			return utils.ResponseError(err, ctx)
		}
	}
	request.UserID = auth.UserID
	result := c.UseCase.Check(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "Safe Zone Check", fiber.StatusOK, ctx)
}
