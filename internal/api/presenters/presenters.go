package presenters

import (
	"github.com/gofiber/fiber/v2"
)

type (
	Response struct {
		Success bool        `json:"success"`
		Message string      `json:"message,omitempty"`
		Data    interface{} `json:"data,omitempty"`
		Error   *ErrorBody  `json:"error,omitempty"`
	}

	ErrorBody struct {
		Message string `json:"message"`
		Details string `json:"details,omitempty"`
	}
)

func SuccessResponse(c *fiber.Ctx, data interface{}, code int, message string) error {
	return c.Status(code).JSON(Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

func ErrorResponse(c *fiber.Ctx, code int, message string, err error) error {
	body := &ErrorBody{Message: message}
	if err != nil {
		body.Details = err.Error()
	}
	return c.Status(code).JSON(Response{
		Success: false,
		Error:   body,
	})
}
