package controller

import (
	"studysage-be/internal/dto"
	"studysage-be/internal/pkg/serverutils"
	"studysage-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IMaterialController interface {
	RegisterRoutes(r fiber.Router)
	GetAll(ctx *fiber.Ctx) error
	FindLatest(ctx *fiber.Ctx) error
	Generate(ctx *fiber.Ctx) error
	Review(ctx *fiber.Ctx) error
}

type materialController struct {
	service service.IMaterialService
}

func NewMaterialController(service service.IMaterialService) IMaterialController {
	return &materialController{service: service}
}

func (c *materialController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/material/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Get("", c.GetAll)
	h.Get("document/:documentId/:type", c.FindLatest)
	h.Post("document/:documentId/generate", c.Generate)
	h.Post(":materialId/review", c.Review)
}

func (c *materialController) GetAll(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	res, err := c.service.GetAll(ctx.Context(), userId)
	if err != nil {
		return serviceError(ctx, err)
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get materials", res))
}

func (c *materialController) FindLatest(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)
	documentId, err := uuid.Parse(ctx.Params("documentId"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid document id")
	}

	res, err := c.service.FindLatest(ctx.Context(), userId, documentId, ctx.Params("type"))
	if err != nil {
		return serviceError(ctx, err)
	}
	if res == nil {
		return ctx.Status(fiber.StatusNotFound).JSON(serverutils.ErrorResponse(404, "No material of this type yet"))
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get material", res))
}

func (c *materialController) Generate(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)
	documentId, err := uuid.Parse(ctx.Params("documentId"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid document id")
	}

	var req dto.GenerateMaterialRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.RequestGeneration(ctx.Context(), userId, documentId, req.Type)
	if err != nil {
		return serviceError(ctx, err)
	}

	return ctx.Status(fiber.StatusAccepted).JSON(serverutils.SuccessResponse("Generation queued", res))
}

func (c *materialController) Review(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)
	materialId, err := uuid.Parse(ctx.Params("materialId"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid material id")
	}

	var req dto.FlashcardReviewRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.Review(ctx.Context(), userId, materialId, req.Action)
	if err != nil {
		return serviceError(ctx, err)
	}

	return ctx.JSON(serverutils.SuccessResponse("Success review flashcard", res))
}
