package utils

import (
	"errors"

	httpError "skillswitch-service/src/pkg/http-error"

	"github.com/gofiber/fiber/v2"
)

type BaseResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data"`
	Message string      `json:"message"`
	Code    int         `json:"code"`
}

func Response(data interface{}, message string, code int, ctx *fiber.Ctx) error {
	return ctx.Status(code).JSON(BaseResponse{
		Success: true,
		Data:    data,
		Message: message,
		Code:    code,
	})
}

func ResponseError(err error, ctx *fiber.Ctx) error {
	var commonErr *httpError.CommonError
	if errors.As(err, &commonErr) {
		return ctx.Status(commonErr.Code).JSON(BaseResponse{
			Success: false,
			Data:    commonErr.Data,
			Message: commonErr.Message,
			Code:    commonErr.Code,
		})
	}

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return ctx.Status(fiberErr.Code).JSON(BaseResponse{
			Success: false,
			Message: fiberErr.Message,
			Code:    fiberErr.Code,
		})
	}

	return ctx.Status(fiber.StatusBadRequest).JSON(BaseResponse{
		Success: false,
		Message: err.Error(),
		Code:    fiber.StatusBadRequest,
	})
}
