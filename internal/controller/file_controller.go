package controller

import (
	"io"

	"pdf-evidence-be/internal/pkg/serverutils"
	"pdf-evidence-be/internal/service"
	"pdf-evidence-be/pkg/pipeline"

	"github.com/gofiber/fiber/v2"
)

type IFileController interface {
	RegisterRoutes(r fiber.Router)
	Upload(ctx *fiber.Ctx) error
	List(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
}

type fileController struct {
	fileService service.IFileService
}

func NewFileController(fileService service.IFileService) IFileController {
	return &fileController{
		fileService: fileService,
	}
}

func (c *fileController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/files/v1")
	h.Use(serverutils.ClientIDMiddleware)
	h.Post("upload", c.Upload)
	h.Get("", c.List)
	h.Delete(":name", c.Delete)
}

// Upload accepts a multipart batch under the "files" field. The response
// lists what was accepted and rejected; processing continues in the
// background.
func (c *fileController) Upload(ctx *fiber.Ctx) error {
	clientID := ctx.Locals("client_id").(string)

	form, err := ctx.MultipartForm()
	if err != nil {
		return serverutils.BadRequest("expected multipart form data")
	}

	fileHeaders := form.File["files"]
	if len(fileHeaders) == 0 {
		fileHeaders = form.File["file"]
	}

	inputs := make([]pipeline.Input, 0, len(fileHeaders))
	for _, fh := range fileHeaders {
		f, err := fh.Open()
		if err != nil {
			return serverutils.BadRequest("unreadable file: " + fh.Filename)
		}
		content, err := io.ReadAll(f)
		f.Close()
		if err != nil {
			return serverutils.BadRequest("unreadable file: " + fh.Filename)
		}
		inputs = append(inputs, pipeline.Input{
			FileName: fh.Filename,
			Size:     fh.Size,
			Content:  content,
		})
	}

	res, err := c.fileService.Upload(ctx.Context(), clientID, inputs)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Files queued", res))
}

func (c *fileController) List(ctx *fiber.Ctx) error {
	clientID := ctx.Locals("client_id").(string)

	res, err := c.fileService.List(ctx.Context(), clientID)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list files", res))
}

func (c *fileController) Delete(ctx *fiber.Ctx) error {
	clientID := ctx.Locals("client_id").(string)
	fileName := ctx.Params("name")

	res, err := c.fileService.Delete(ctx.Context(), clientID, fileName)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success delete file", res))
}
