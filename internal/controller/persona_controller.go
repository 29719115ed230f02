package controller

import (
	"errors"

	"rag-chat-be/internal/dto"
	"rag-chat-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IPersonaController interface {
	RegisterRoutes(r fiber.Router, authGuard fiber.Handler)
	Current(ctx *fiber.Ctx) error
	SetCustom(ctx *fiber.Ctx) error
	Presets(ctx *fiber.Ctx) error
	SetPreset(ctx *fiber.Ctx) error
}

type personaController struct {
	service service.IPersonaService
}

func NewPersonaController(service service.IPersonaService) IPersonaController {
	return &personaController{service: service}
}

func (c *personaController) RegisterRoutes(r fiber.Router, authGuard fiber.Handler) {
	h := r.Group("/system-prompt", authGuard)
	h.Get("/", c.Current)
	h.Post("/set", c.SetCustom)
	h.Get("/presets", c.Presets)
	h.Post("/preset", c.SetPreset)
}

func (c *personaController) Current(ctx *fiber.Ctx) error {
	return ok(ctx, "Current system prompt", dto.CurrentPersonaResponse{
		Prompt: c.service.Current(),
	})
}

func (c *personaController) SetCustom(ctx *fiber.Ctx) error {
	var req dto.SetPersonaRequest
	if err := ctx.BodyParser(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	if err := c.service.SetCustom(req.Prompt); err != nil {
		if errors.Is(err, service.ErrEmptyPersona) {
			return badRequest(ctx, err.Error())
		}
		return internalError(ctx, "Failed to update system prompt")
	}

	return ok(ctx, "System prompt updated", dto.CurrentPersonaResponse{
		Prompt: c.service.Current(),
	})
}

func (c *personaController) Presets(ctx *fiber.Ctx) error {
	presets := c.service.Presets()

	res := make([]dto.PersonaPresetResponse, 0, len(presets))
	for _, p := range presets {
		res = append(res, dto.PersonaPresetResponse{
			Id:     p.Id,
			Name:   p.Name,
			Prompt: p.Prompt,
		})
	}

	return ok(ctx, "Available presets", res)
}

func (c *personaController) SetPreset(ctx *fiber.Ctx) error {
	var req dto.SetPresetRequest
	if err := ctx.BodyParser(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}
	if err := validate.Struct(&req); err != nil {
		return badRequest(ctx, err.Error())
	}

	preset, err := c.service.SetPreset(req.Preset)
	if err != nil {
		if errors.Is(err, service.ErrUnknownPreset) {
			return badRequest(ctx, err.Error())
		}
		return internalError(ctx, "Failed to apply preset")
	}

	return ok(ctx, "Preset applied", dto.PersonaPresetResponse{
		Id:     preset.Id,
		Name:   preset.Name,
		Prompt: preset.Prompt,
	})
}
