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

// IImagemService manages a property's images. Every operation scopes by the
// (imovelId, imagemId) pair so an image can never be read or edited through
// another property's route.
type IImagemService interface {
	Create(ctx context.Context, imovelId uint, req *dto.CreateImagemRequest) (*dto.ImagemResponse, error)
	GetByID(ctx context.Context, imovelId, imagemId uint) (*dto.ImagemResponse, error)
	ListByImovel(ctx context.Context, imovelId uint) ([]*dto.ImagemResponse, error)
	Update(ctx context.Context, imovelId, imagemId uint, req *dto.UpdateImagemRequest) (*dto.ImagemResponse, error)
	Delete(ctx context.Context, imovelId, imagemId uint) error
}

type imagemService struct {
	uowFactory unitofwork.RepositoryFactory
	mapper     *mapper.ImagemMapper
}

func NewImagemService(uowFactory unitofwork.RepositoryFactory) IImagemService {
	return &imagemService{
		uowFactory: uowFactory,
		mapper:     mapper.NewImagemMapper(),
	}
}

func (s *imagemService) checarImovel(ctx context.Context, uow unitofwork.UnitOfWork, imovelId uint) error {
	exists, err := uow.ImovelRepository().ExistsByID(ctx, imovelId)
	if err != nil {
		return err
	}
	if !exists {
		return apperror.NotFound("Imóvel não encontrado com ID: %d", imovelId)
	}
	return nil
}

func (s *imagemService) buscarImagem(ctx context.Context, uow unitofwork.UnitOfWork, imovelId, imagemId uint) (*entity.Imagem, error) {
	imagem, err := uow.ImagemRepository().FindByIDAndImovelID(ctx, imagemId, imovelId)
	if err != nil {
		return nil, err
	}
	if imagem == nil {
		return nil, apperror.NotFound("Imagem com ID %d não encontrada para o imóvel com ID %d", imagemId, imovelId)
	}
	return imagem, nil
}

func (s *imagemService) Create(ctx context.Context, imovelId uint, req *dto.CreateImagemRequest) (*dto.ImagemResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	if err := s.checarImovel(ctx, uow, imovelId); err != nil {
		return nil, err
	}

	imagem := entity.Imagem{
		ImovelId:   imovelId,
		Url:        req.Url,
		Legenda:    req.Legenda,
		DataUpload: time.Now(),
	}
	if req.Ordem != nil {
		imagem.Ordem = *req.Ordem
	}

	if err := uow.ImagemRepository().Create(ctx, &imagem); err != nil {
		return nil, err
	}
	return s.mapper.ToResponse(&imagem), nil
}

func (s *imagemService) GetByID(ctx context.Context, imovelId, imagemId uint) (*dto.ImagemResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	imagem, err := uow.ImagemRepository().FindByIDAndImovelID(ctx, imagemId, imovelId)
	if err != nil {
		return nil, err
	}
	if imagem == nil {
		return nil, nil
	}
	return s.mapper.ToResponse(imagem), nil
}

func (s *imagemService) ListByImovel(ctx context.Context, imovelId uint) ([]*dto.ImagemResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	if err := s.checarImovel(ctx, uow, imovelId); err != nil {
		return nil, err
	}

	imagens, err := uow.ImagemRepository().FindByImovelID(ctx, imovelId)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.ImagemResponse, 0, len(imagens))
	for _, img := range imagens {
		result = append(result, s.mapper.ToResponse(img))
	}
	return result, nil
}

// Update overwrites only the caption and display order, each only when the
// payload supplies it. Url and the parent property never change.
func (s *imagemService) Update(ctx context.Context, imovelId, imagemId uint, req *dto.UpdateImagemRequest) (*dto.ImagemResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	imagem, err := s.buscarImagem(ctx, uow, imovelId, imagemId)
	if err != nil {
		return nil, err
	}

	if req.Legenda != nil {
		imagem.Legenda = *req.Legenda
	}
	if req.Ordem != nil {
		imagem.Ordem = *req.Ordem
	}

	if err := uow.ImagemRepository().Update(ctx, imagem); err != nil {
		return nil, err
	}
	return s.mapper.ToResponse(imagem), nil
}

func (s *imagemService) Delete(ctx context.Context, imovelId, imagemId uint) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	imagem, err := s.buscarImagem(ctx, uow, imovelId, imagemId)
	if err != nil {
		return err
	}
	return uow.ImagemRepository().Delete(ctx, imagem.Id)
}
