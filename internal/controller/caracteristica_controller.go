package controller

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"imobiliaria-crm-be/internal/dto"
	"imobiliaria-crm-be/internal/pkg/apperror"
	"imobiliaria-crm-be/internal/pkg/serverutils"
	"imobiliaria-crm-be/internal/service"
)

type ICaracteristicaController interface {
	RegisterRoutes(r fiber.Router)
	Create(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	List(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
}

type caracteristicaController struct {
	caracteristicaService service.ICaracteristicaService
	baseURL               string
}

func NewCaracteristicaController(caracteristicaService service.ICaracteristicaService, baseURL string) ICaracteristicaController {
	return &caracteristicaController{
		caracteristicaService: caracteristicaService,
		baseURL:               baseURL,
	}
}

func (c *caracteristicaController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/caracteristicas")
	h.Post("", c.Create)
	h.Get("", c.List)
	h.Get(":id", c.Show)
	h.Put(":id", c.Update)
	h.Delete(":id", c.Delete)
}

func (c *caracteristicaController) Create(ctx *fiber.Ctx) error {
	var req dto.CaracteristicaRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.caracteristicaService.Create(ctx.Context(), &req)
	if err != nil {
		return err
	}

	ctx.Set(fiber.HeaderLocation, fmt.Sprintf("%s/caracteristicas/%d", c.baseURL, res.Id))
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Característica criada com sucesso.", res))
}

func (c *caracteristicaController) Show(ctx *fiber.Ctx) error {
	id, err := serverutils.ParamUint(ctx, "id")
	if err != nil {
		return err
	}

	res, err := c.caracteristicaService.GetByID(ctx.Context(), id)
	if err != nil {
		return err
	}
	if res == nil {
		return apperror.NotFound("Característica com ID %d não encontrada.", id)
	}
	return ctx.JSON(serverutils.SuccessResponse("Característica encontrada.", res))
}

func (c *caracteristicaController) List(ctx *fiber.Ctx) error {
	res, err := c.caracteristicaService.List(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Características listadas.", res))
}

func (c *caracteristicaController) Update(ctx *fiber.Ctx) error {
	id, err := serverutils.ParamUint(ctx, "id")
	if err != nil {
		return err
	}

	var req dto.CaracteristicaRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.caracteristicaService.Update(ctx.Context(), id, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Característica atualizada com sucesso.", res))
}

func (c *caracteristicaController) Delete(ctx *fiber.Ctx) error {
	id, err := serverutils.ParamUint(ctx, "id")
	if err != nil {
		return err
	}

	if err := c.caracteristicaService.Delete(ctx.Context(), id); err != nil {
		return err
	}
	return ctx.SendStatus(fiber.StatusNoContent)
}
