package controller

import (
	"errors"
	"strings"

	"studysage-be/internal/dto"
	"studysage-be/internal/pkg/serverutils"

	"github.com/gofiber/fiber/v2"
)

// serviceError maps domain errors onto HTTP responses. Services signal
// authorization failures with "not found or access denied" messages and
// credit exhaustion with *dto.InsufficientCreditsError.
func serviceError(ctx *fiber.Ctx, err error) error {
	var credits *dto.InsufficientCreditsError
	if errors.As(err, &credits) {
		return ctx.Status(fiber.StatusPaymentRequired).JSON(serverutils.Response[*dto.InsufficientCreditsError]{
			Success: false,
			Code:    fiber.StatusPaymentRequired,
			Message: credits.Error(),
			Data:    credits,
		})
	}

	if strings.Contains(err.Error(), "not found") {
		return ctx.Status(fiber.StatusNotFound).JSON(serverutils.ErrorResponse(404, err.Error()))
	}

	return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
}
