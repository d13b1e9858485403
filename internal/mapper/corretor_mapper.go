package mapper

import (
	"imobiliaria-crm-be/internal/dto"
	"imobiliaria-crm-be/internal/entity"
	"imobiliaria-crm-be/internal/model"
)

type CorretorMapper struct{}

func NewCorretorMapper() *CorretorMapper {
	return &CorretorMapper{}
}

func (m *CorretorMapper) ToEntity(model *model.Corretor) *entity.Corretor {
	if model == nil {
		return nil
	}
	return &entity.Corretor{
		Id:           model.Id,
		Nome:         model.Nome,
		Cpf:          model.Cpf,
		Email:        model.Email,
		Telefone:     model.Telefone,
		Creci:        model.Creci,
		DataCadastro: model.DataCadastro,
		Ativo:        model.Ativo,
	}
}

func (m *CorretorMapper) ToModel(entity *entity.Corretor) *model.Corretor {
	if entity == nil {
		return nil
	}
	return &model.Corretor{
		Id:           entity.Id,
		Nome:         entity.Nome,
		Cpf:          entity.Cpf,
		Email:        entity.Email,
		Telefone:     entity.Telefone,
		Creci:        entity.Creci,
		DataCadastro: entity.DataCadastro,
		Ativo:        entity.Ativo,
	}
}

func (m *CorretorMapper) ToEntities(models []*model.Corretor) []*entity.Corretor {
	entities := make([]*entity.Corretor, 0, len(models))
	for _, mdl := range models {
		entities = append(entities, m.ToEntity(mdl))
	}
	return entities
}

func (m *CorretorMapper) ToResponse(e *entity.Corretor) *dto.CorretorResponse {
	if e == nil {
		return nil
	}
	return &dto.CorretorResponse{
		Id:           e.Id,
		Nome:         e.Nome,
		Cpf:          e.Cpf,
		Email:        e.Email,
		Telefone:     e.Telefone,
		Creci:        e.Creci,
		DataCadastro: e.DataCadastro,
		Ativo:        e.Ativo,
	}
}
