package http

import (
	"skillswitch-service/src/internal/delivery/http/middleware"
	"skillswitch-service/src/internal/model"
	"skillswitch-service/src/internal/usecase"
	"skillswitch-service/src/pkg/log"
	"skillswitch-service/src/pkg/utils"

	"github.com/gofiber/fiber/v2"
)

type MarketplaceController struct {
	Log     log.Log
	UseCase *usecase.MarketplaceUseCase
}

func NewMarketplaceController(useCase *usecase.MarketplaceUseCase, logger log.Log) *MarketplaceController {
	return &MarketplaceController{
		Log:     logger,
		UseCase: useCase,
	}
}

func (c *MarketplaceController) ListResources(ctx *fiber.Ctx) error {
	request := new(model.ListResourcesRequest)
	if err := ctx.QueryParser(request); err != nil {
		c.Log.Error("MarketplaceController.ListResources", "Failed to parse query", "error", err.Error())
		return utils.ResponseError(err, ctx)
	}
	result := c.UseCase.ListResources(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "Resources", fiber.StatusOK, ctx)
}

func (c *MarketplaceController) Download(ctx *fiber.Ctx) error {
	auth := middleware.GetUser(ctx)

	result := c.UseCase.Download(ctx.Context(), &model.DownloadResourceRequest{UserID: auth.UserID, ID: ctx.Params("id")})
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "Download", fiber.StatusOK, ctx)
}

func (c *MarketplaceController) ListTools(ctx *fiber.Ctx) error {
	request := new(model.ListToolsRequest)
	if err := ctx.QueryParser(request); err != nil {
		c.Log.Error("MarketplaceController.ListTools", "Failed to parse query", "error", err.Error())
		return utils.ResponseError(err, ctx)
	}
	result := c.UseCase.ListTools(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "Tools", fiber.StatusOK, ctx)
}

func (c *MarketplaceController) ClickTool(ctx *fiber.Ctx) error {
	auth := middleware.GetUser(ctx)

	result := c.UseCase.ClickTool(ctx.Context(), &model.ToolClickRequest{UserID: auth.UserID, ID: ctx.Params("id")})
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "Tool Click", fiber.StatusOK, ctx)
}
