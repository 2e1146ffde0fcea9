package controller

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"studysage-be/internal/pkg/serverutils"
	"studysage-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IDocumentController interface {
	RegisterRoutes(r fiber.Router)
	Upload(ctx *fiber.Ctx) error
	GetAll(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
}

type documentController struct {
	service   service.IDocumentService
	uploadDir string
}

func NewDocumentController(service service.IDocumentService, uploadDir string) IDocumentController {
	return &documentController{
		service:   service,
		uploadDir: uploadDir,
	}
}

func (c *documentController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/document/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Get("", c.GetAll)
	h.Post("", c.Upload)
	h.Delete(":id", c.Delete)
}

func (c *documentController) Upload(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Document file is required"))
	}

	input := &service.UploadDocumentInput{
		Filename: filepath.Base(fileHeader.Filename),
		FileType: strings.TrimPrefix(filepath.Ext(fileHeader.Filename), "."),
		FileSize: fileHeader.Size,
		IsGlobal: ctx.FormValue("is_global") == "true",
	}

	if sessionIdStr := ctx.FormValue("session_id"); sessionIdStr != "" {
		sessionId, err := uuid.Parse(sessionIdStr)
		if err != nil {
			return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid session_id"))
		}
		input.SessionId = &sessionId
	}

	if input.SessionId == nil && !input.IsGlobal {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Document needs a session_id or is_global=true"))
	}

	if pageCountStr := ctx.FormValue("page_count"); pageCountStr != "" {
		pageCount, err := strconv.Atoi(pageCountStr)
		if err != nil || pageCount < 1 {
			return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid page_count"))
		}
		input.PageCount = &pageCount
	}

	// Stored under a fresh id so colliding filenames never overwrite.
	input.FilePath = filepath.Join(c.uploadDir, fmt.Sprintf("%s_%s", uuid.New(), input.Filename))
	if err := ctx.SaveFile(fileHeader, input.FilePath); err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, "Failed to store file"))
	}

	res, err := c.service.Upload(ctx.Context(), userId, input)
	if err != nil {
		return serviceError(ctx, err)
	}

	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Success upload document", res))
}

func (c *documentController) GetAll(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	res, err := c.service.GetAll(ctx.Context(), userId)
	if err != nil {
		return serviceError(ctx, err)
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get all documents", res))
}

func (c *documentController) Delete(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid document id")
	}

	if err := c.service.Delete(ctx.Context(), userId, id); err != nil {
		return serviceError(ctx, err)
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Success delete document", nil))
}
