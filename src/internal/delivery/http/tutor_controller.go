package http

import (
	"skillswitch-service/src/internal/delivery/http/middleware"
	"skillswitch-service/src/internal/model"
	"skillswitch-service/src/internal/usecase"
	"skillswitch-service/src/pkg/log"
	"skillswitch-service/src/pkg/utils"

	"github.com/gofiber/fiber/v2"
)

type TutorController struct {
	Log     log.Log
	UseCase *usecase.TutorUseCase
}

func NewTutorController(useCase *usecase.TutorUseCase, logger log.Log) *TutorController {
	return &TutorController{
		Log:     logger,
		UseCase: useCase,
	}
}

func (c *TutorController) List(ctx *fiber.Ctx) error {
	auth := middleware.GetUser(ctx)

	result := c.UseCase.List(ctx.Context(), &model.GetUserRequest{ID: auth.UserID})
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "Tutors", fiber.StatusOK, ctx)
}

func (c *TutorController) Match(ctx *fiber.Ctx) error {
	auth := middleware.GetUser(ctx)

	request := new(model.MatchRequest)
	if err := ctx.BodyParser(request); err != nil {
		c.Log.Error("TutorController.Match", "Failed to parse request body", "error", err.Error())
		return utils.ResponseError(err, ctx)
	}
	request.UserID = auth.UserID
	result := c.UseCase.Search(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "Match", fiber.StatusOK, ctx)
}
