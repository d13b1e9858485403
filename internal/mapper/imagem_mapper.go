package mapper

import (
	"imobiliaria-crm-be/internal/dto"
	"imobiliaria-crm-be/internal/entity"
	"imobiliaria-crm-be/internal/model"
)

type ImagemMapper struct{}

func NewImagemMapper() *ImagemMapper {
	return &ImagemMapper{}
}

func (m *ImagemMapper) ToEntity(model *model.Imagem) *entity.Imagem {
	if model == nil {
		return nil
	}
	return &entity.Imagem{
		Id:         model.Id,
		ImovelId:   model.ImovelId,
		Url:        model.Url,
		Legenda:    model.Legenda,
		Ordem:      model.Ordem,
		DataUpload: model.DataUpload,
	}
}

func (m *ImagemMapper) ToModel(entity *entity.Imagem) *model.Imagem {
	if entity == nil {
		return nil
	}
	return &model.Imagem{
		Id:         entity.Id,
		ImovelId:   entity.ImovelId,
		Url:        entity.Url,
		Legenda:    entity.Legenda,
		Ordem:      entity.Ordem,
		DataUpload: entity.DataUpload,
	}
}

func (m *ImagemMapper) ToEntities(models []*model.Imagem) []*entity.Imagem {
	entities := make([]*entity.Imagem, 0, len(models))
	for _, mdl := range models {
		entities = append(entities, m.ToEntity(mdl))
	}
	return entities
}

func (m *ImagemMapper) ToResponse(e *entity.Imagem) *dto.ImagemResponse {
	if e == nil {
		return nil
	}
	return &dto.ImagemResponse{
		Id:         e.Id,
		ImovelId:   e.ImovelId,
		Url:        e.Url,
		Legenda:    e.Legenda,
		Ordem:      e.Ordem,
		DataUpload: e.DataUpload,
	}
}

func (m *ImagemMapper) ToResponses(entities []*entity.Imagem) []*dto.ImagemResponse {
	responses := make([]*dto.ImagemResponse, 0, len(entities))
	for _, e := range entities {
		responses = append(responses, m.ToResponse(e))
	}
	return responses
}
