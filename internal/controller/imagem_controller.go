package controller

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"imobiliaria-crm-be/internal/dto"
	"imobiliaria-crm-be/internal/pkg/apperror"
	"imobiliaria-crm-be/internal/pkg/serverutils"
	"imobiliaria-crm-be/internal/service"
)

// IImagemController nests under /imoveis/:imovelId so every image operation
// carries its parent property id.
type IImagemController interface {
	RegisterRoutes(r fiber.Router)
	Create(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	List(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
}

type imagemController struct {
	imagemService service.IImagemService
	baseURL       string
}

func NewImagemController(imagemService service.IImagemService, baseURL string) IImagemController {
	return &imagemController{
		imagemService: imagemService,
		baseURL:       baseURL,
	}
}

func (c *imagemController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/imoveis/:imovelId/imagens")
	h.Post("", c.Create)
	h.Get("", c.List)
	h.Get(":imagemId", c.Show)
	h.Put(":imagemId", c.Update)
	h.Delete(":imagemId", c.Delete)
}

func (c *imagemController) Create(ctx *fiber.Ctx) error {
	imovelId, err := serverutils.ParamUint(ctx, "imovelId")
	if err != nil {
		return err
	}

	var req dto.CreateImagemRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.imagemService.Create(ctx.Context(), imovelId, &req)
	if err != nil {
		return err
	}

	ctx.Set(fiber.HeaderLocation, fmt.Sprintf("%s/imoveis/%d/imagens/%d", c.baseURL, imovelId, res.Id))
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Imagem adicionada com sucesso.", res))
}

func (c *imagemController) Show(ctx *fiber.Ctx) error {
	imovelId, err := serverutils.ParamUint(ctx, "imovelId")
	if err != nil {
		return err
	}
	imagemId, err := serverutils.ParamUint(ctx, "imagemId")
	if err != nil {
		return err
	}

	res, err := c.imagemService.GetByID(ctx.Context(), imovelId, imagemId)
	if err != nil {
		return err
	}
	if res == nil {
		return apperror.NotFound("Imagem com ID %d não encontrada para o imóvel com ID %d", imagemId, imovelId)
	}
	return ctx.JSON(serverutils.SuccessResponse("Imagem encontrada.", res))
}

func (c *imagemController) List(ctx *fiber.Ctx) error {
	imovelId, err := serverutils.ParamUint(ctx, "imovelId")
	if err != nil {
		return err
	}

	res, err := c.imagemService.ListByImovel(ctx.Context(), imovelId)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Imagens listadas.", res))
}

func (c *imagemController) Update(ctx *fiber.Ctx) error {
	imovelId, err := serverutils.ParamUint(ctx, "imovelId")
	if err != nil {
		return err
	}
	imagemId, err := serverutils.ParamUint(ctx, "imagemId")
	if err != nil {
		return err
	}

	var req dto.UpdateImagemRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	res, err := c.imagemService.Update(ctx.Context(), imovelId, imagemId, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Imagem atualizada com sucesso.", res))
}

func (c *imagemController) Delete(ctx *fiber.Ctx) error {
	imovelId, err := serverutils.ParamUint(ctx, "imovelId")
	if err != nil {
		return err
	}
	imagemId, err := serverutils.ParamUint(ctx, "imagemId")
	if err != nil {
		return err
	}

	if err := c.imagemService.Delete(ctx.Context(), imovelId, imagemId); err != nil {
		return err
	}
	return ctx.SendStatus(fiber.StatusNoContent)
}
