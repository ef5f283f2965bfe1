package httperror

import "github.com/gofiber/fiber/v2"

// CommonError is the error shape every usecase returns to the delivery layer.
type CommonError struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

func (e *CommonError) Error() string {
	return e.Message
}

func NewBadRequest() *CommonError {
	return &CommonError{Code: fiber.StatusBadRequest, Message: "Bad Request"}
}

func NewUnauthorized() *CommonError {
	return &CommonError{Code: fiber.StatusUnauthorized, Message: "Unauthorized"}
}

func NewPaymentRequired() *CommonError {
	return &CommonError{Code: fiber.StatusPaymentRequired, Message: "Payment Required"}
}

func NewForbidden() *CommonError {
	return &CommonError{Code: fiber.StatusForbidden, Message: "Forbidden"}
}

func NewNotFound() *CommonError {
	return &CommonError{Code: fiber.StatusNotFound, Message: "Not Found"}
}

func NewConflict() *CommonError {
	return &CommonError{Code: fiber.StatusConflict, Message: "Conflict"}
}

func NewInternalServerError() *CommonError {
	return &CommonError{Code: fiber.StatusInternalServerError, Message: "Internal Server Error"}
}

// NewServiceUnavailable is used when a third-party integration has no credentials configured.
func NewServiceUnavailable() *CommonError {
	return &CommonError{Code: fiber.StatusServiceUnavailable, Message: "Service Unavailable"}
}
