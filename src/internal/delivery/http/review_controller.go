package http

import (
	"skillswitch-service/src/internal/delivery/http/middleware"
	"skillswitch-service/src/internal/model"
	"skillswitch-service/src/internal/usecase"
	"skillswitch-service/src/pkg/log"
	"skillswitch-service/src/pkg/utils"

	"github.com/gofiber/fiber/v2"
)

type ReviewController struct {
	Log     log.Log
	UseCase *usecase.ReviewUseCase
}

func NewReviewController(useCase *usecase.ReviewUseCase, logger log.Log) *ReviewController {
	return &ReviewController{
		Log:     logger,
		UseCase: useCase,
	}
}

func (c *ReviewController) Create(ctx *fiber.Ctx) error {
	auth := middleware.GetUser(ctx)

	request := new(model.CreateReviewRequest)
	if err := ctx.BodyParser(request); err != nil {
		c.Log.Error("ReviewController.Create", "Failed to parse request body", "error", err.Error())
		return utils.ResponseError(err, ctx)
	}
	request.ReviewerID = auth.UserID
	result := c.UseCase.Create(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "Review Submitted", fiber.StatusCreated, ctx)
}

func (c *ReviewController) ListForUser(ctx *fiber.Ctx) error {
	result := c.UseCase.ListForUser(ctx.Context(), &model.ListReviewsRequest{RevieweeID: ctx.Params("id")})
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "Reviews", fiber.StatusOK, ctx)
}

func (c *ReviewController) MarkHelpful(ctx *fiber.Ctx) error {
	result := c.UseCase.MarkHelpful(ctx.Context(), &model.MarkHelpfulRequest{ID: ctx.Params("id")})
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "Marked Helpful", fiber.StatusOK, ctx)
}
