package http

import (
	"skillswitch-service/src/internal/delivery/http/middleware"
	"skillswitch-service/src/internal/entity"
	"skillswitch-service/src/internal/model"
	"skillswitch-service/src/internal/usecase"
	"skillswitch-service/src/pkg/log"
	"skillswitch-service/src/pkg/utils"

	"github.com/gofiber/fiber/v2"
)

type SessionController struct {
	Log     log.Log
	UseCase *usecase.SessionUseCase
}

func NewSessionController(useCase *usecase.SessionUseCase, logger log.Log) *SessionController {
	return &SessionController{
		Log:     logger,
		UseCase: useCase,
	}
}

func (c *SessionController) Create(ctx *fiber.Ctx) error {
	auth := middleware.GetUser(ctx)

	request := new(model.CreateSessionRequest)
	if err := ctx.BodyParser(request); err != nil {
		c.Log.Error("SessionController.Create", "Failed to parse request body", "error", err.Error())
		return utils.ResponseError(err, ctx)
	}
	request.StudentID = auth.UserID
	result := c.UseCase.Create(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "Session Requested", fiber.StatusCreated, ctx)
}

func (c *SessionController) List(ctx *fiber.Ctx) error {
	auth := middleware.GetUser(ctx)

	result := c.UseCase.ListForUser(ctx.Context(), &model.GetUserRequest{ID: auth.UserID})
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "Sessions", fiber.StatusOK, ctx)
}

func (c *SessionController) Pending(ctx *fiber.Ctx) error {
	auth := middleware.GetUser(ctx)

	result := c.UseCase.ListPending(ctx.Context(), &model.GetUserRequest{ID: auth.UserID})
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "Pending Sessions", fiber.StatusOK, ctx)
}

func (c *SessionController) Get(ctx *fiber.Ctx) error {
	auth := middleware.GetUser(ctx)

	result := c.UseCase.Get(ctx.Context(), &model.GetSessionRequest{ID: ctx.Params("id"), ActorID: auth.UserID})
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "Session", fiber.StatusOK, ctx)
}

func (c *SessionController) Accept(ctx *fiber.Ctx) error {
	return c.setStatus(ctx, entity.SessionAccepted, "Session Accepted")
}

func (c *SessionController) Reject(ctx *fiber.Ctx) error {
	return c.setStatus(ctx, entity.SessionRejected, "Session Rejected")
}

func (c *SessionController) Complete(ctx *fiber.Ctx) error {
	auth := middleware.GetUser(ctx)

	result := c.UseCase.Complete(ctx.Context(), &model.CompleteSessionRequest{ID: ctx.Params("id"), ActorID: auth.UserID})
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "Session Completed", fiber.StatusOK, ctx)
}

func (c *SessionController) Pricing(ctx *fiber.Ctx) error {
	request := new(model.PricingRequest)
	if err := ctx.QueryParser(request); err != nil {
		c.Log.Error("SessionController.Pricing", "Failed to parse query", "error", err.Error())
		return utils.ResponseError(err, ctx)
	}
	result := c.UseCase.Pricing(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "Pricing", fiber.StatusOK, ctx)
}

func (c *SessionController) setStatus(ctx *fiber.Ctx, status entity.SessionStatus, message string) error {
	auth := middleware.GetUser(ctx)

	request := &model.UpdateSessionStatusRequest{
		ID:      ctx.Params("id"),
		ActorID: auth.UserID,
		Status:  string(status),
	}
	result := c.UseCase.SetStatus(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, message, fiber.StatusOK, ctx)
}
