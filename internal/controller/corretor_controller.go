package controller

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"imobiliaria-crm-be/internal/dto"
	"imobiliaria-crm-be/internal/pkg/apperror"
	"imobiliaria-crm-be/internal/pkg/serverutils"
	"imobiliaria-crm-be/internal/service"
)

type ICorretorController interface {
	RegisterRoutes(r fiber.Router)
	Create(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	List(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
	ToggleAtivo(ctx *fiber.Ctx) error
}

type corretorController struct {
	corretorService service.ICorretorService
	baseURL         string
}

func NewCorretorController(corretorService service.ICorretorService, baseURL string) ICorretorController {
	return &corretorController{
		corretorService: corretorService,
		baseURL:         baseURL,
	}
}

func (c *corretorController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/corretores")
	h.Post("", c.Create)
	h.Get("", c.List)
	h.Get(":id", c.Show)
	h.Put(":id", c.Update)
	h.Patch(":id/ativo", c.ToggleAtivo)
	h.Delete(":id", c.Delete)
}

func (c *corretorController) Create(ctx *fiber.Ctx) error {
	var req dto.CreateCorretorRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	res, err := c.corretorService.Create(ctx.Context(), &req)
	if err != nil {
		return err
	}

	ctx.Set(fiber.HeaderLocation, fmt.Sprintf("%s/corretores/%d", c.baseURL, res.Id))
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Corretor criado com sucesso.", res))
}

func (c *corretorController) Show(ctx *fiber.Ctx) error {
	id, err := serverutils.ParamUint(ctx, "id")
	if err != nil {
		return err
	}

	res, err := c.corretorService.GetByID(ctx.Context(), id)
	if err != nil {
		return err
	}
	if res == nil {
		return apperror.NotFound("Corretor não encontrado com ID: %d", id)
	}
	return ctx.JSON(serverutils.SuccessResponse("Corretor encontrado.", res))
}

func (c *corretorController) List(ctx *fiber.Ctx) error {
	apenasAtivos := ctx.QueryBool("apenasAtivos", true)

	res, err := c.corretorService.List(ctx.Context(), apenasAtivos)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Corretores listados.", res))
}

func (c *corretorController) Update(ctx *fiber.Ctx) error {
	id, err := serverutils.ParamUint(ctx, "id")
	if err != nil {
		return err
	}

	var req dto.UpdateCorretorRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	res, err := c.corretorService.Update(ctx.Context(), id, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Corretor atualizado com sucesso.", res))
}

func (c *corretorController) ToggleAtivo(ctx *fiber.Ctx) error {
	id, err := serverutils.ParamUint(ctx, "id")
	if err != nil {
		return err
	}

	res, err := c.corretorService.ToggleAtivo(ctx.Context(), id)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Status do corretor alterado.", res))
}

func (c *corretorController) Delete(ctx *fiber.Ctx) error {
	id, err := serverutils.ParamUint(ctx, "id")
	if err != nil {
		return err
	}

	if err := c.corretorService.Delete(ctx.Context(), id); err != nil {
		return err
	}
	return ctx.SendStatus(fiber.StatusNoContent)
}
