package mapper

import (
	"imobiliaria-crm-be/internal/dto"
	"imobiliaria-crm-be/internal/entity"
	"imobiliaria-crm-be/internal/model"
)

type ClienteMapper struct {
	corretorMapper *CorretorMapper
}

func NewClienteMapper() *ClienteMapper {
	return &ClienteMapper{corretorMapper: NewCorretorMapper()}
}

func (m *ClienteMapper) ToEntity(model *model.Cliente) *entity.Cliente {
	if model == nil {
		return nil
	}
	return &entity.Cliente{
		Id:           model.Id,
		Nome:         model.Nome,
		Email:        model.Email,
		Telefone:     model.Telefone,
		Cpf:          model.Cpf,
		Observacoes:  model.Observacoes,
		DataCadastro: model.DataCadastro,
		CorretorId:   model.CorretorId,
		Corretor:     m.corretorMapper.ToEntity(model.Corretor),
	}
}

func (m *ClienteMapper) ToModel(entity *entity.Cliente) *model.Cliente {
	if entity == nil {
		return nil
	}
	// The association travels by id only; the synchronizer resolves it.
	return &model.Cliente{
		Id:           entity.Id,
		Nome:         entity.Nome,
		Email:        entity.Email,
		Telefone:     entity.Telefone,
		Cpf:          entity.Cpf,
		Observacoes:  entity.Observacoes,
		DataCadastro: entity.DataCadastro,
		CorretorId:   entity.CorretorId,
	}
}

func (m *ClienteMapper) ToEntities(models []*model.Cliente) []*entity.Cliente {
	entities := make([]*entity.Cliente, 0, len(models))
	for _, mdl := range models {
		entities = append(entities, m.ToEntity(mdl))
	}
	return entities
}

func (m *ClienteMapper) ToResponse(e *entity.Cliente) *dto.ClienteResponse {
	if e == nil {
		return nil
	}
	return &dto.ClienteResponse{
		Id:           e.Id,
		Nome:         e.Nome,
		Email:        e.Email,
		Telefone:     e.Telefone,
		Cpf:          e.Cpf,
		Observacoes:  e.Observacoes,
		DataCadastro: e.DataCadastro,
		CorretorId:   e.CorretorId,
		Corretor:     m.corretorMapper.ToResponse(e.Corretor),
	}
}
