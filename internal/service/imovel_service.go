package service

import (
	"context"
	"time"

	"imobiliaria-crm-be/internal/dto"
	"imobiliaria-crm-be/internal/entity"
	"imobiliaria-crm-be/internal/mapper"
	"imobiliaria-crm-be/internal/pkg/apperror"
	"imobiliaria-crm-be/internal/repository/unitofwork"
)

const statusDisponivel = "DISPONIVEL"

type IImovelService interface {
	Create(ctx context.Context, req *dto.ImovelRequest) (*dto.ImovelResponse, error)
	GetByID(ctx context.Context, id uint) (*dto.ImovelResponse, error)
	List(ctx context.Context) ([]*dto.ImovelResponse, error)
	Update(ctx context.Context, id uint, req *dto.ImovelRequest) (*dto.ImovelResponse, error)
	Delete(ctx context.Context, id uint) error
}

type imovelService struct {
	uowFactory unitofwork.RepositoryFactory
	mapper     *mapper.ImovelMapper
}

func NewImovelService(uowFactory unitofwork.RepositoryFactory) IImovelService {
	return &imovelService{
		uowFactory: uowFactory,
		mapper:     mapper.NewImovelMapper(),
	}
}

func (s *imovelService) Create(ctx context.Context, req *dto.ImovelRequest) (*dto.ImovelResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	if err := s.checarCodigoUnico(ctx, uow, req.Codigo, 0); err != nil {
		return nil, err
	}

	imovel := entity.Imovel{DataCadastro: time.Now()}
	s.aplicarDados(&imovel, req)
	if !hasText(imovel.Status) {
		imovel.Status = statusDisponivel
	}

	corretorId, corretorSupplied := req.CorretorId.Get()
	if err := s.sincronizarCorretor(ctx, uow, &imovel, corretorId, corretorSupplied); err != nil {
		return nil, err
	}
	if ids, ok := req.CaracteristicaIds.Get(); ok && len(ids) > 0 {
		caracteristicas, err := s.resolverCaracteristicas(ctx, uow, ids)
		if err != nil {
			return nil, err
		}
		imovel.Caracteristicas = caracteristicas
	}

	if err := uow.ImovelRepository().Create(ctx, &imovel); err != nil {
		return nil, err
	}
	return s.mapper.ToResponse(&imovel), nil
}

func (s *imovelService) checarCodigoUnico(ctx context.Context, uow unitofwork.UnitOfWork, codigo string, excludeID uint) error {
	existente, err := uow.ImovelRepository().FindByCodigo(ctx, codigo)
	if err != nil {
		return err
	}
	if existente != nil && existente.Id != excludeID {
		if excludeID != 0 {
			return apperror.Validation("Já existe outro imóvel com o código informado.")
		}
		return apperror.Validation("Já existe um imóvel com o código informado.")
	}
	return nil
}

// aplicarDados overwrites every scalar and embedded field: the payload is the
// complete desired state; associations are handled by the synchronizers.
func (s *imovelService) aplicarDados(imovel *entity.Imovel, req *dto.ImovelRequest) {
	imovel.Codigo = req.Codigo
	imovel.Tipo = req.Tipo
	imovel.Finalidade = req.Finalidade
	imovel.Preco = req.Preco
	imovel.ValorCondominio = req.ValorCondominio
	imovel.ValorIptu = req.ValorIptu
	imovel.AreaTotal = req.AreaTotal
	imovel.AreaUtil = req.AreaUtil
	imovel.Quartos = req.Quartos
	imovel.Suites = req.Suites
	imovel.Banheiros = req.Banheiros
	imovel.VagasGaragem = req.VagasGaragem
	imovel.AnoConstrucao = req.AnoConstrucao
	imovel.Descricao = req.Descricao
	imovel.Status = req.Status
	imovel.Publicado = req.Publicado

	if req.Endereco != nil {
		imovel.Endereco = &entity.Endereco{
			Logradouro:  req.Endereco.Logradouro,
			Bairro:      req.Endereco.Bairro,
			Cidade:      req.Endereco.Cidade,
			Estado:      req.Endereco.Estado,
			Cep:         req.Endereco.Cep,
			Complemento: req.Endereco.Complemento,
		}
	} else {
		imovel.Endereco = nil
	}
}

// sincronizarCorretor resolves and replaces the broker when an id is supplied
// and clears the reference otherwise. An omitted and an explicitly null
// corretorId both clear it.
func (s *imovelService) sincronizarCorretor(ctx context.Context, uow unitofwork.UnitOfWork, imovel *entity.Imovel, corretorId uint, supplied bool) error {
	if !supplied {
		imovel.CorretorId = nil
		imovel.Corretor = nil
		return nil
	}

	if imovel.CorretorId != nil && *imovel.CorretorId == corretorId {
		return nil
	}

	corretor, err := uow.CorretorRepository().FindByID(ctx, corretorId)
	if err != nil {
		return err
	}
	if corretor == nil {
		return apperror.NotFound("Corretor com ID %d não encontrado.", corretorId)
	}
	imovel.CorretorId = &corretor.Id
	imovel.Corretor = corretor
	return nil
}

// resolverCaracteristicas resolves the whole id set in one lookup. Resolving
// fewer rows than distinct ids means at least one id is dangling; nothing is
// applied in that case.
func (s *imovelService) resolverCaracteristicas(ctx context.Context, uow unitofwork.UnitOfWork, ids []uint) ([]*entity.Caracteristica, error) {
	distintos := make([]uint, 0, len(ids))
	vistos := make(map[uint]struct{}, len(ids))
	for _, id := range ids {
		if _, ok := vistos[id]; ok {
			continue
		}
		vistos[id] = struct{}{}
		distintos = append(distintos, id)
	}

	caracteristicas, err := uow.CaracteristicaRepository().FindByIDs(ctx, distintos)
	if err != nil {
		return nil, err
	}
	if len(caracteristicas) != len(distintos) {
		return nil, apperror.InvalidReference("Uma ou mais IDs de características são inválidas.")
	}
	return caracteristicas, nil
}

func (s *imovelService) GetByID(ctx context.Context, id uint) (*dto.ImovelResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	imovel, err := uow.ImovelRepository().FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if imovel == nil {
		return nil, nil
	}
	return s.mapper.ToResponse(imovel), nil
}

func (s *imovelService) List(ctx context.Context) ([]*dto.ImovelResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	imoveis, err := uow.ImovelRepository().FindAll(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.ImovelResponse, 0, len(imoveis))
	for _, i := range imoveis {
		result = append(result, s.mapper.ToResponse(i))
	}
	return result, nil
}

func (s *imovelService) Update(ctx context.Context, id uint, req *dto.ImovelRequest) (*dto.ImovelResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	repo := uow.ImovelRepository()

	imovel, err := repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if imovel == nil {
		return nil, apperror.NotFound("Imóvel não encontrado com ID: %d", id)
	}

	if err := s.checarCodigoUnico(ctx, uow, req.Codigo, id); err != nil {
		return nil, err
	}

	s.aplicarDados(imovel, req)

	corretorId, corretorSupplied := req.CorretorId.Get()
	if err := s.sincronizarCorretor(ctx, uow, imovel, corretorId, corretorSupplied); err != nil {
		return nil, err
	}
	if err := s.sincronizarCaracteristicas(ctx, uow, imovel, req); err != nil {
		return nil, err
	}

	if err := repo.Update(ctx, imovel); err != nil {
		return nil, err
	}
	return s.mapper.ToResponse(imovel), nil
}

// sincronizarCaracteristicas reconciles the feature set. A payload that never
// mentions caracteristicaIds (or sends null) leaves the current set untouched;
// an empty array clears it; a non-empty array replaces it after resolving
// every id.
func (s *imovelService) sincronizarCaracteristicas(ctx context.Context, uow unitofwork.UnitOfWork, imovel *entity.Imovel, req *dto.ImovelRequest) error {
	ids, ok := req.CaracteristicaIds.Get()
	if !ok {
		return nil
	}
	if len(ids) == 0 {
		imovel.Caracteristicas = []*entity.Caracteristica{}
		return nil
	}

	caracteristicas, err := s.resolverCaracteristicas(ctx, uow, ids)
	if err != nil {
		return err
	}
	imovel.Caracteristicas = caracteristicas
	return nil
}

// Delete removes the property, its images and its feature join rows in one
// transaction. The features themselves survive.
func (s *imovelService) Delete(ctx context.Context, id uint) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	exists, err := uow.ImovelRepository().ExistsByID(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return apperror.NotFound("Imóvel não encontrado com ID: %d", id)
	}

	if err := uow.Begin(ctx); err != nil {
		return err
	}
	if err := uow.ImagemRepository().DeleteByImovelID(ctx, id); err != nil {
		uow.Rollback()
		return err
	}
	if err := uow.ImovelRepository().ClearCaracteristicas(ctx, id); err != nil {
		uow.Rollback()
		return err
	}
	if err := uow.ImovelRepository().Delete(ctx, id); err != nil {
		uow.Rollback()
		return err
	}
	return uow.Commit()
}
