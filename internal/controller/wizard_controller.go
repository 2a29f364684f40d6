package controller

import (
	"errors"

	"brd-wizard-be/internal/dto"
	"brd-wizard-be/internal/pkg/serverutils"
	"brd-wizard-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IWizardController interface {
	RegisterRoutes(r fiber.Router)
	CreateSession(ctx *fiber.Ctx) error
	Resume(ctx *fiber.Ctx) error
	SubmitTurn(ctx *fiber.Ctx) error
	SubmitPdf(ctx *fiber.Ctx) error
}

type wizardController struct {
	service service.IWizardService
}

func NewWizardController(service service.IWizardService) IWizardController {
	return &wizardController{service: service}
}

func (c *wizardController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/wizard/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Post("/session", c.CreateSession)
	h.Get("/session/:id", c.Resume)
	h.Post("/session/:id/turn", c.SubmitTurn)
	h.Post("/session/:id/pdf", c.SubmitPdf)
}

func (c *wizardController) CreateSession(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	var req dto.CreateSessionRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	res, err := c.service.CreateSession(ctx.Context(), userId, &req)
	if err != nil {
		return mapWizardError(err)
	}

	return ctx.JSON(serverutils.SuccessResponse("Success create session", res))
}

func (c *wizardController) Resume(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)
	sessionId, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid session id")
	}

	res, err := c.service.Resume(ctx.Context(), userId, sessionId)
	if err != nil {
		return mapWizardError(err)
	}

	return ctx.JSON(serverutils.SuccessResponse("Success resume session", res))
}

func (c *wizardController) SubmitTurn(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)
	sessionId, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid session id")
	}

	var req dto.TurnRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.SubmitTurn(ctx.Context(), userId, sessionId, &req)
	if err != nil {
		return mapWizardError(err)
	}

	return ctx.JSON(serverutils.SuccessResponse("Success submit turn", res))
}

func (c *wizardController) SubmitPdf(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)
	sessionId, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid session id")
	}

	var req dto.PdfUploadRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.SubmitPdf(ctx.Context(), userId, sessionId, &req)
	if err != nil {
		return mapWizardError(err)
	}

	return ctx.JSON(serverutils.SuccessResponse("Success process pdf", res))
}

func mapWizardError(err error) error {
	switch {
	case errors.Is(err, service.ErrSessionNotFound):
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrGateClosed):
		return fiber.NewError(fiber.StatusConflict, err.Error())
	default:
		return err
	}
}
