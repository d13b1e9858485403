package mapper

import (
	"imobiliaria-crm-be/internal/dto"
	"imobiliaria-crm-be/internal/entity"
	"imobiliaria-crm-be/internal/model"
)

type ImovelMapper struct {
	corretorMapper       *CorretorMapper
	imagemMapper         *ImagemMapper
	caracteristicaMapper *CaracteristicaMapper
}

func NewImovelMapper() *ImovelMapper {
	return &ImovelMapper{
		corretorMapper:       NewCorretorMapper(),
		imagemMapper:         NewImagemMapper(),
		caracteristicaMapper: NewCaracteristicaMapper(),
	}
}

// ToEntity maps the persisted shape back to the domain shape. Association
// collections always come out non-nil.
func (m *ImovelMapper) ToEntity(mdl *model.Imovel) *entity.Imovel {
	if mdl == nil {
		return nil
	}
	e := &entity.Imovel{
		Id:         mdl.Id,
		Codigo:     mdl.Codigo,
		Tipo:       mdl.Tipo,
		Finalidade: mdl.Finalidade,
		Endereco: &entity.Endereco{
			Logradouro:  mdl.Endereco.Logradouro,
			Bairro:      mdl.Endereco.Bairro,
			Cidade:      mdl.Endereco.Cidade,
			Estado:      mdl.Endereco.Estado,
			Cep:         mdl.Endereco.Cep,
			Complemento: mdl.Endereco.Complemento,
		},
		Preco:           mdl.Preco,
		ValorCondominio: mdl.ValorCondominio,
		ValorIptu:       mdl.ValorIptu,
		AreaTotal:       mdl.AreaTotal,
		AreaUtil:        mdl.AreaUtil,
		Quartos:         mdl.Quartos,
		Suites:          mdl.Suites,
		Banheiros:       mdl.Banheiros,
		VagasGaragem:    mdl.VagasGaragem,
		AnoConstrucao:   mdl.AnoConstrucao,
		Descricao:       mdl.Descricao,
		Status:          mdl.Status,
		Publicado:       mdl.Publicado,
		DataCadastro:    mdl.DataCadastro,
		DataAtualizacao: mdl.DataAtualizacao,
		CorretorId:      mdl.CorretorId,
		Corretor:        m.corretorMapper.ToEntity(mdl.Corretor),
		Imagens:         m.imagemMapper.ToEntities(mdl.Imagens),
		Caracteristicas: m.caracteristicaMapper.ToEntities(mdl.Caracteristicas),
	}
	return e
}

func (m *ImovelMapper) ToModel(e *entity.Imovel) *model.Imovel {
	if e == nil {
		return nil
	}
	mdl := &model.Imovel{
		Id:              e.Id,
		Codigo:          e.Codigo,
		Tipo:            e.Tipo,
		Finalidade:      e.Finalidade,
		Preco:           e.Preco,
		ValorCondominio: e.ValorCondominio,
		ValorIptu:       e.ValorIptu,
		AreaTotal:       e.AreaTotal,
		AreaUtil:        e.AreaUtil,
		Quartos:         e.Quartos,
		Suites:          e.Suites,
		Banheiros:       e.Banheiros,
		VagasGaragem:    e.VagasGaragem,
		AnoConstrucao:   e.AnoConstrucao,
		Descricao:       e.Descricao,
		Status:          e.Status,
		Publicado:       e.Publicado,
		DataCadastro:    e.DataCadastro,
		DataAtualizacao: e.DataAtualizacao,
		CorretorId:      e.CorretorId,
	}
	if e.Endereco != nil {
		mdl.Endereco = model.Endereco{
			Logradouro:  e.Endereco.Logradouro,
			Bairro:      e.Endereco.Bairro,
			Cidade:      e.Endereco.Cidade,
			Estado:      e.Endereco.Estado,
			Cep:         e.Endereco.Cep,
			Complemento: e.Endereco.Complemento,
		}
	}
	for _, c := range e.Caracteristicas {
		mdl.Caracteristicas = append(mdl.Caracteristicas, m.caracteristicaMapper.ToModel(c))
	}
	return mdl
}

func (m *ImovelMapper) ToEntities(models []*model.Imovel) []*entity.Imovel {
	entities := make([]*entity.Imovel, 0, len(models))
	for _, mdl := range models {
		entities = append(entities, m.ToEntity(mdl))
	}
	return entities
}

func (m *ImovelMapper) ToResponse(e *entity.Imovel) *dto.ImovelResponse {
	if e == nil {
		return nil
	}
	res := &dto.ImovelResponse{
		Id:              e.Id,
		Codigo:          e.Codigo,
		Tipo:            e.Tipo,
		Finalidade:      e.Finalidade,
		Preco:           e.Preco,
		ValorCondominio: e.ValorCondominio,
		ValorIptu:       e.ValorIptu,
		AreaTotal:       e.AreaTotal,
		AreaUtil:        e.AreaUtil,
		Quartos:         e.Quartos,
		Suites:          e.Suites,
		Banheiros:       e.Banheiros,
		VagasGaragem:    e.VagasGaragem,
		AnoConstrucao:   e.AnoConstrucao,
		Descricao:       e.Descricao,
		Status:          e.Status,
		Publicado:       e.Publicado,
		DataCadastro:    e.DataCadastro,
		DataAtualizacao: e.DataAtualizacao,
		CorretorId:      e.CorretorId,
		Corretor:        m.corretorMapper.ToResponse(e.Corretor),
		Imagens:         m.imagemMapper.ToResponses(e.Imagens),
		Caracteristicas: m.caracteristicaMapper.ToResponses(e.Caracteristicas),
	}
	if e.Endereco != nil {
		res.Endereco = &dto.EnderecoDTO{
			Logradouro:  e.Endereco.Logradouro,
			Bairro:      e.Endereco.Bairro,
			Cidade:      e.Endereco.Cidade,
			Estado:      e.Endereco.Estado,
			Cep:         e.Endereco.Cep,
			Complemento: e.Endereco.Complemento,
		}
	}
	return res
}
