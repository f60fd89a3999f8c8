package serverutils

import (
	"errors"

	"github.com/gofiber/fiber/v2"
)

// ErrBadRequest marks input-validation failures so the middleware maps them
// to a 400 instead of a 500.
var ErrBadRequest = errors.New("bad request")

// ErrorHandlerMiddleware converts errors escaping a handler into the JSON
// envelope. Nothing below this layer should terminate the process.
func ErrorHandlerMiddleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}

		status := fiber.StatusInternalServerError
		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			status = fiberErr.Code
		} else if errors.Is(err, ErrBadRequest) {
			status = fiber.StatusBadRequest
		}

		return ctx.Status(status).JSON(ErrorResponse(err.Error()))
	}
}
