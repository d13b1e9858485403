package controller

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"imobiliaria-crm-be/internal/dto"
	"imobiliaria-crm-be/internal/pkg/apperror"
	"imobiliaria-crm-be/internal/pkg/serverutils"
	"imobiliaria-crm-be/internal/service"
)

type IClienteController interface {
	RegisterRoutes(r fiber.Router)
	Create(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	List(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
}

type clienteController struct {
	clienteService service.IClienteService
	baseURL        string
}

func NewClienteController(clienteService service.IClienteService, baseURL string) IClienteController {
	return &clienteController{
		clienteService: clienteService,
		baseURL:        baseURL,
	}
}

func (c *clienteController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/clientes")
	h.Post("", c.Create)
	h.Get("", c.List)
	h.Get(":id", c.Show)
	h.Put(":id", c.Update)
	h.Delete(":id", c.Delete)
}

func (c *clienteController) Create(ctx *fiber.Ctx) error {
	var req dto.ClienteRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.clienteService.Create(ctx.Context(), &req)
	if err != nil {
		return err
	}

	ctx.Set(fiber.HeaderLocation, fmt.Sprintf("%s/clientes/%d", c.baseURL, res.Id))
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Cliente criado com sucesso.", res))
}

func (c *clienteController) Show(ctx *fiber.Ctx) error {
	id, err := serverutils.ParamUint(ctx, "id")
	if err != nil {
		return err
	}

	res, err := c.clienteService.GetByID(ctx.Context(), id)
	if err != nil {
		return err
	}
	if res == nil {
		return apperror.NotFound("Cliente com ID %d não encontrado.", id)
	}
	return ctx.JSON(serverutils.SuccessResponse("Cliente encontrado.", res))
}

func (c *clienteController) List(ctx *fiber.Ctx) error {
	res, err := c.clienteService.List(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Clientes listados.", res))
}

func (c *clienteController) Update(ctx *fiber.Ctx) error {
	id, err := serverutils.ParamUint(ctx, "id")
	if err != nil {
		return err
	}

	var req dto.ClienteRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.clienteService.Update(ctx.Context(), id, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Cliente atualizado com sucesso.", res))
}

func (c *clienteController) Delete(ctx *fiber.Ctx) error {
	id, err := serverutils.ParamUint(ctx, "id")
	if err != nil {
		return err
	}

	if err := c.clienteService.Delete(ctx.Context(), id); err != nil {
		return err
	}
	return ctx.SendStatus(fiber.StatusNoContent)
}
