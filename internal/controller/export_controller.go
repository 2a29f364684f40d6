package controller

import (
	"brd-wizard-be/internal/pkg/serverutils"
	"brd-wizard-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IExportController interface {
	RegisterRoutes(r fiber.Router)
	Preview(ctx *fiber.Ctx) error
	Export(ctx *fiber.Ctx) error
}

type exportController struct {
	service service.IExportService
}

func NewExportController(service service.IExportService) IExportController {
	return &exportController{service: service}
}

func (c *exportController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/wizard/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Get("/session/:id/preview", c.Preview)
	h.Get("/session/:id/export", c.Export)
}

func (c *exportController) Preview(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)
	sessionId, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid session id")
	}

	res, err := c.service.Preview(ctx.Context(), userId, sessionId)
	if err != nil {
		return mapWizardError(err)
	}

	return ctx.JSON(serverutils.SuccessResponse("Success build preview", res))
}

func (c *exportController) Export(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)
	sessionId, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid session id")
	}

	res, err := c.service.Export(ctx.Context(), userId, sessionId, ctx.Query("format", "txt"))
	if err != nil {
		return mapWizardError(err)
	}

	ctx.Set(fiber.HeaderContentType, res.ContentType)
	ctx.Set(fiber.HeaderContentDisposition, `attachment; filename="`+res.FileName+`"`)
	return ctx.Send(res.Content)
}
