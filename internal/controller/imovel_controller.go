package controller

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"imobiliaria-crm-be/internal/dto"
	"imobiliaria-crm-be/internal/pkg/apperror"
	"imobiliaria-crm-be/internal/pkg/serverutils"
	"imobiliaria-crm-be/internal/service"
)

type IImovelController interface {
	RegisterRoutes(r fiber.Router)
	Create(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	List(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
}

type imovelController struct {
	imovelService service.IImovelService
	baseURL       string
}

func NewImovelController(imovelService service.IImovelService, baseURL string) IImovelController {
	return &imovelController{
		imovelService: imovelService,
		baseURL:       baseURL,
	}
}

func (c *imovelController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/imoveis")
	h.Post("", c.Create)
	h.Get("", c.List)
	h.Get(":id", c.Show)
	h.Put(":id", c.Update)
	h.Delete(":id", c.Delete)
}

func (c *imovelController) Create(ctx *fiber.Ctx) error {
	var req dto.ImovelRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.imovelService.Create(ctx.Context(), &req)
	if err != nil {
		return err
	}

	ctx.Set(fiber.HeaderLocation, fmt.Sprintf("%s/imoveis/%d", c.baseURL, res.Id))
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Imóvel criado com sucesso.", res))
}

func (c *imovelController) Show(ctx *fiber.Ctx) error {
	id, err := serverutils.ParamUint(ctx, "id")
	if err != nil {
		return err
	}

	res, err := c.imovelService.GetByID(ctx.Context(), id)
	if err != nil {
		return err
	}
	if res == nil {
		return apperror.NotFound("Imóvel não encontrado com ID: %d", id)
	}
	return ctx.JSON(serverutils.SuccessResponse("Imóvel encontrado.", res))
}

func (c *imovelController) List(ctx *fiber.Ctx) error {
	res, err := c.imovelService.List(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Imóveis listados.", res))
}

func (c *imovelController) Update(ctx *fiber.Ctx) error {
	id, err := serverutils.ParamUint(ctx, "id")
	if err != nil {
		return err
	}

	var req dto.ImovelRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.imovelService.Update(ctx.Context(), id, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Imóvel atualizado com sucesso.", res))
}

func (c *imovelController) Delete(ctx *fiber.Ctx) error {
	id, err := serverutils.ParamUint(ctx, "id")
	if err != nil {
		return err
	}

	if err := c.imovelService.Delete(ctx.Context(), id); err != nil {
		return err
	}
	return ctx.SendStatus(fiber.StatusNoContent)
}
