package service

import (
	"context"
	"strings"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"imobiliaria-crm-be/internal/dto"
	"imobiliaria-crm-be/internal/entity"
	"imobiliaria-crm-be/internal/mapper"
	"imobiliaria-crm-be/internal/pkg/apperror"
	"imobiliaria-crm-be/internal/repository/unitofwork"
)

const caracteristicaListKey = "caracteristicas:all"

type ICaracteristicaService interface {
	Create(ctx context.Context, req *dto.CaracteristicaRequest) (*dto.CaracteristicaResponse, error)
	GetByID(ctx context.Context, id uint) (*dto.CaracteristicaResponse, error)
	List(ctx context.Context) ([]*dto.CaracteristicaResponse, error)
	Update(ctx context.Context, id uint, req *dto.CaracteristicaRequest) (*dto.CaracteristicaResponse, error)
	Delete(ctx context.Context, id uint) error
}

// caracteristicaService caches the full tag list: it is small, read on every
// property form render, and invalidated wholesale on any write.
type caracteristicaService struct {
	uowFactory unitofwork.RepositoryFactory
	mapper     *mapper.CaracteristicaMapper
	cache      *gocache.Cache
}

func NewCaracteristicaService(uowFactory unitofwork.RepositoryFactory, cacheTTL time.Duration) ICaracteristicaService {
	return &caracteristicaService{
		uowFactory: uowFactory,
		mapper:     mapper.NewCaracteristicaMapper(),
		cache:      gocache.New(cacheTTL, 2*cacheTTL),
	}
}

func (s *caracteristicaService) Create(ctx context.Context, req *dto.CaracteristicaRequest) (*dto.CaracteristicaResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	repo := uow.CaracteristicaRepository()

	nome := strings.TrimSpace(req.Nome)
	if err := s.checarNomeUnico(ctx, uow, nome, 0); err != nil {
		return nil, err
	}

	caracteristica := entity.Caracteristica{Nome: nome}
	if err := repo.Create(ctx, &caracteristica); err != nil {
		return nil, err
	}
	s.cache.Flush()
	return s.mapper.ToResponse(&caracteristica), nil
}

// checarNomeUnico compares names case-insensitively so "Piscina" and "piscina"
// count as the same tag.
func (s *caracteristicaService) checarNomeUnico(ctx context.Context, uow unitofwork.UnitOfWork, nome string, excludeID uint) error {
	existente, err := uow.CaracteristicaRepository().FindByNomeIgnoreCase(ctx, nome)
	if err != nil {
		return err
	}
	if existente != nil && existente.Id != excludeID {
		return apperror.Validation("Já existe uma característica com o nome '%s'.", nome)
	}
	return nil
}

func (s *caracteristicaService) GetByID(ctx context.Context, id uint) (*dto.CaracteristicaResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	caracteristica, err := uow.CaracteristicaRepository().FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if caracteristica == nil {
		return nil, nil
	}
	return s.mapper.ToResponse(caracteristica), nil
}

func (s *caracteristicaService) List(ctx context.Context) ([]*dto.CaracteristicaResponse, error) {
	if cached, found := s.cache.Get(caracteristicaListKey); found {
		return cached.([]*dto.CaracteristicaResponse), nil
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	caracteristicas, err := uow.CaracteristicaRepository().FindAll(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.CaracteristicaResponse, 0, len(caracteristicas))
	for _, c := range caracteristicas {
		result = append(result, s.mapper.ToResponse(c))
	}
	s.cache.SetDefault(caracteristicaListKey, result)
	return result, nil
}

func (s *caracteristicaService) Update(ctx context.Context, id uint, req *dto.CaracteristicaRequest) (*dto.CaracteristicaResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	repo := uow.CaracteristicaRepository()

	caracteristica, err := repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if caracteristica == nil {
		return nil, apperror.NotFound("Característica com ID %d não encontrada.", id)
	}

	nome := strings.TrimSpace(req.Nome)
	if err := s.checarNomeUnico(ctx, uow, nome, id); err != nil {
		return nil, err
	}

	caracteristica.Nome = nome
	if err := repo.Update(ctx, caracteristica); err != nil {
		return nil, err
	}
	s.cache.Flush()
	return s.mapper.ToResponse(caracteristica), nil
}

func (s *caracteristicaService) Delete(ctx context.Context, id uint) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	repo := uow.CaracteristicaRepository()

	caracteristica, err := repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if caracteristica == nil {
		return apperror.NotFound("Característica com ID %d não encontrada.", id)
	}

	if err := repo.Delete(ctx, id); err != nil {
		return err
	}
	s.cache.Flush()
	return nil
}
