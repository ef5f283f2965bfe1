package http

import (
	"skillswitch-service/src/internal/delivery/http/middleware"
	"skillswitch-service/src/internal/model"
	"skillswitch-service/src/internal/usecase"
	"skillswitch-service/src/pkg/log"
	"skillswitch-service/src/pkg/utils"

	"github.com/gofiber/fiber/v2"
)

type UserController struct {
	Log       log.Log
	UseCase   *usecase.UserUseCase
	Assistant *usecase.AssistantUseCase
}

func NewUserController(useCase *usecase.UserUseCase, assistant *usecase.AssistantUseCase, logger log.Log) *UserController {
	return &UserController{
		Log:       logger,
		UseCase:   useCase,
		Assistant: assistant,
	}
}

func (c *UserController) Register(ctx *fiber.Ctx) error {
	request := new(model.RegisterUserRequest)
	if err := ctx.BodyParser(request); err != nil {
		c.Log.Error("UserController.Register", "Failed to parse request body", "error", err.Error())
		return utils.ResponseError(err, ctx)
	}
	result := c.UseCase.Register(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "Register", fiber.StatusCreated, ctx)
}

func (c *UserController) Login(ctx *fiber.Ctx) error {
	request := new(model.LoginUserRequest)
	if err := ctx.BodyParser(request); err != nil {
		c.Log.Error("UserController.Login", "Failed to parse request body", "error", err.Error())
		return utils.ResponseError(err, ctx)
	}
	result := c.UseCase.SignInWithCredentials(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "Login", fiber.StatusOK, ctx)
}

func (c *UserController) LoginWithProvider(ctx *fiber.Ctx) error {
	request := new(model.ProviderLoginRequest)
	if err := ctx.BodyParser(request); err != nil {
		c.Log.Error("UserController.LoginWithProvider", "Failed to parse request body", "error", err.Error())
		return utils.ResponseError(err, ctx)
	}
	result := c.UseCase.SignInWithProvider(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "Login", fiber.StatusOK, ctx)
}

// Session is public: a missing or dead token is reported as anonymous, not rejected.
func (c *UserController) Session(ctx *fiber.Ctx) error {
	result := c.UseCase.SessionState(ctx.Context(), middleware.BearerToken(ctx))
	return utils.Response(result.Data, "Session", fiber.StatusOK, ctx)
}

func (c *UserController) Logout(ctx *fiber.Ctx) error {
	auth := middleware.GetUser(ctx)

	request := &model.LogoutUserRequest{
		ID:        auth.UserID,
		SessionID: auth.SessionID,
	}
	result := c.UseCase.SignOut(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "Logout", fiber.StatusOK, ctx)
}

func (c *UserController) GetProfile(ctx *fiber.Ctx) error {
	auth := middleware.GetUser(ctx)

	request := &model.GetUserRequest{
		ID: auth.UserID,
	}
	result := c.UseCase.GetUser(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "GetProfile", fiber.StatusOK, ctx)
}

func (c *UserController) UpdateProfile(ctx *fiber.Ctx) error {
	auth := middleware.GetUser(ctx)

	request := new(model.UpdateUserRequest)
	if err := ctx.BodyParser(request); err != nil {
		c.Log.Error("UserController.UpdateProfile", "Failed to parse request body", "error", err.Error())
		return utils.ResponseError(err, ctx)
	}
	request.ID = auth.UserID
	result := c.UseCase.UpdateProfile(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "UpdateProfile", fiber.StatusOK, ctx)
}

func (c *UserController) Verify(ctx *fiber.Ctx) error {
	auth := middleware.GetUser(ctx)

	request := new(model.VerifyUserRequest)
	if err := ctx.BodyParser(request); err != nil {
		c.Log.Error("UserController.Verify", "Failed to parse request body", "error", err.Error())
		return utils.ResponseError(err, ctx)
	}
	request.ID = auth.UserID
	result := c.UseCase.Verify(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "Verify", fiber.StatusOK, ctx)
}

func (c *UserController) Transactions(ctx *fiber.Ctx) error {
	auth := middleware.GetUser(ctx)

	result := c.UseCase.Transactions(ctx.Context(), &model.GetUserRequest{ID: auth.UserID})
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "Transactions", fiber.StatusOK, ctx)
}

func (c *UserController) Suggestions(ctx *fiber.Ctx) error {
	auth := middleware.GetUser(ctx)

	result := c.Assistant.Suggestions(ctx.Context(), &model.SuggestionsRequest{UserID: auth.UserID})
	return utils.Response(result.Data, "Suggestions", fiber.StatusOK, ctx)
}
