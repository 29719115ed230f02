package controller

import (
	"errors"
	"io"
	"path/filepath"
	"strings"

	"rag-chat-be/internal/dto"
	"rag-chat-be/internal/service"
	"rag-chat-be/pkg/pdfx"
	"rag-chat-be/pkg/rag/chunker"

	"github.com/gofiber/fiber/v2"
)

type IUploadController interface {
	RegisterRoutes(r fiber.Router, authGuard fiber.Handler)
	Upload(ctx *fiber.Ctx) error
}

type uploadController struct {
	service service.IDocumentService
}

func NewUploadController(service service.IDocumentService) IUploadController {
	return &uploadController{service: service}
}

func (c *uploadController) RegisterRoutes(r fiber.Router, authGuard fiber.Handler) {
	r.Post("/upload", authGuard, c.Upload)
}

func (c *uploadController) Upload(ctx *fiber.Ctx) error {
	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		return badRequest(ctx, "Missing file")
	}

	if strings.ToLower(filepath.Ext(fileHeader.Filename)) != ".pdf" {
		return badRequest(ctx, "Only PDF files are supported")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return badRequest(ctx, "Failed to read file")
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return badRequest(ctx, "Failed to read file")
	}

	chunks, err := c.service.Ingest(ctx.Context(), data, fileHeader.Filename)
	if err != nil {
		switch {
		case errors.Is(err, pdfx.ErrUnreadableDocument),
			errors.Is(err, chunker.ErrEmptyDocument):
			return badRequest(ctx, err.Error())
		default:
			return internalError(ctx, "Failed to index document")
		}
	}

	return ok(ctx, "Document indexed", dto.UploadResponse{
		Chunks:   chunks,
		Filename: fileHeader.Filename,
	})
}
