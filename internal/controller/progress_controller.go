package controller

import (
	"strings"

	"studysage-be/internal/pkg/serverutils"
	"studysage-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IProgressController interface {
	RegisterRoutes(r fiber.Router)
	GetAll(ctx *fiber.Ctx) error
	Ratio(ctx *fiber.Ctx) error
	Toggle(ctx *fiber.Ctx) error
}

type progressController struct {
	service service.IProgressService
}

func NewProgressController(service service.IProgressService) IProgressController {
	return &progressController{service: service}
}

func (c *progressController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/progress/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Get("", c.GetAll)
	h.Get("/ratio", c.Ratio)
	h.Post("material/:materialId/toggle", c.Toggle)
}

func (c *progressController) GetAll(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	res, err := c.service.GetAll(ctx.Context(), userId)
	if err != nil {
		return serviceError(ctx, err)
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get progress", res))
}

func (c *progressController) Ratio(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	materialIds := make([]uuid.UUID, 0)
	for _, raw := range strings.Split(ctx.Query("material_ids"), ",") {
		raw = strings.TrimSpace(raw)
		if raw == "" {
			continue
		}
		id, err := uuid.Parse(raw)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid material id: "+raw)
		}
		materialIds = append(materialIds, id)
	}

	ratio, err := c.service.Ratio(ctx.Context(), userId, materialIds)
	if err != nil {
		return serviceError(ctx, err)
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get completion ratio", fiber.Map{
		"completion_ratio": ratio,
	}))
}

func (c *progressController) Toggle(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)
	materialId, err := uuid.Parse(ctx.Params("materialId"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid material id")
	}

	res, err := c.service.Toggle(ctx.Context(), userId, materialId)
	if err != nil {
		return serviceError(ctx, err)
	}

	return ctx.JSON(serverutils.SuccessResponse("Success toggle progress", res))
}
