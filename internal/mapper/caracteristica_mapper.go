package mapper

import (
	"imobiliaria-crm-be/internal/dto"
	"imobiliaria-crm-be/internal/entity"
	"imobiliaria-crm-be/internal/model"
)

type CaracteristicaMapper struct{}

func NewCaracteristicaMapper() *CaracteristicaMapper {
	return &CaracteristicaMapper{}
}

func (m *CaracteristicaMapper) ToEntity(model *model.Caracteristica) *entity.Caracteristica {
	if model == nil {
		return nil
	}
	return &entity.Caracteristica{
		Id:   model.Id,
		Nome: model.Nome,
	}
}

func (m *CaracteristicaMapper) ToModel(entity *entity.Caracteristica) *model.Caracteristica {
	if entity == nil {
		return nil
	}
	return &model.Caracteristica{
		Id:   entity.Id,
		Nome: entity.Nome,
	}
}

func (m *CaracteristicaMapper) ToEntities(models []*model.Caracteristica) []*entity.Caracteristica {
	entities := make([]*entity.Caracteristica, 0, len(models))
	for _, mdl := range models {
		entities = append(entities, m.ToEntity(mdl))
	}
	return entities
}

func (m *CaracteristicaMapper) ToResponse(e *entity.Caracteristica) *dto.CaracteristicaResponse {
	if e == nil {
		return nil
	}
	return &dto.CaracteristicaResponse{
		Id:   e.Id,
		Nome: e.Nome,
	}
}

func (m *CaracteristicaMapper) ToResponses(entities []*entity.Caracteristica) []*dto.CaracteristicaResponse {
	responses := make([]*dto.CaracteristicaResponse, 0, len(entities))
	for _, e := range entities {
		responses = append(responses, m.ToResponse(e))
	}
	return responses
}
