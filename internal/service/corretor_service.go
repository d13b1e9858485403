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

type ICorretorService interface {
	Create(ctx context.Context, req *dto.CreateCorretorRequest) (*dto.CorretorResponse, error)
	GetByID(ctx context.Context, id uint) (*dto.CorretorResponse, error)
	List(ctx context.Context, apenasAtivos bool) ([]*dto.CorretorResponse, error)
	Update(ctx context.Context, id uint, req *dto.UpdateCorretorRequest) (*dto.CorretorResponse, error)
	Delete(ctx context.Context, id uint) error
	ToggleAtivo(ctx context.Context, id uint) (*dto.CorretorResponse, error)
}

type corretorService struct {
	uowFactory unitofwork.RepositoryFactory
	mapper     *mapper.CorretorMapper
}

func NewCorretorService(uowFactory unitofwork.RepositoryFactory) ICorretorService {
	return &corretorService{
		uowFactory: uowFactory,
		mapper:     mapper.NewCorretorMapper(),
	}
}

func (s *corretorService) Create(ctx context.Context, req *dto.CreateCorretorRequest) (*dto.CorretorResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	if err := s.validarNovoCorretor(ctx, uow, req); err != nil {
		return nil, err
	}

	corretor := entity.Corretor{
		Nome:         req.Nome,
		Cpf:          req.Cpf,
		Email:        req.Email,
		Telefone:     req.Telefone,
		Creci:        req.Creci,
		DataCadastro: time.Now(),
		Ativo:        true,
	}

	if err := uow.CorretorRepository().Create(ctx, &corretor); err != nil {
		return nil, err
	}

	return s.mapper.ToResponse(&corretor), nil
}

// validarNovoCorretor runs the checks in a fixed order: required fields and
// formats first, then the cross-record uniqueness scans. Nothing is written
// when any of them fails.
func (s *corretorService) validarNovoCorretor(ctx context.Context, uow unitofwork.UnitOfWork, req *dto.CreateCorretorRequest) error {
	if !hasText(req.Nome) {
		return apperror.Validation("O nome do corretor é obrigatório.")
	}
	if !hasText(req.Cpf) {
		return apperror.Validation("O CPF do corretor é obrigatório.")
	}
	if !isValidCpf(req.Cpf) {
		return apperror.Validation("Formato de CPF inválido. Use o formato XXX.XXX.XXX-XX.")
	}
	if !hasText(req.Email) {
		return apperror.Validation("O e-mail do corretor é obrigatório.")
	}
	if !isValidEmail(req.Email) {
		return apperror.Validation("Formato de e-mail inválido.")
	}

	repo := uow.CorretorRepository()
	if existente, err := repo.FindByCpf(ctx, req.Cpf); err != nil {
		return err
	} else if existente != nil {
		return apperror.Validation("CPF já cadastrado.")
	}
	if existente, err := repo.FindByEmail(ctx, req.Email); err != nil {
		return err
	} else if existente != nil {
		return apperror.Validation("E-mail já cadastrado.")
	}
	if hasText(req.Creci) {
		if existente, err := repo.FindByCreci(ctx, req.Creci); err != nil {
			return err
		} else if existente != nil {
			return apperror.Validation("CRECI já cadastrado.")
		}
	}
	return nil
}

func (s *corretorService) GetByID(ctx context.Context, id uint) (*dto.CorretorResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	corretor, err := uow.CorretorRepository().FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if corretor == nil {
		return nil, nil
	}
	return s.mapper.ToResponse(corretor), nil
}

func (s *corretorService) List(ctx context.Context, apenasAtivos bool) ([]*dto.CorretorResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	var (
		corretores []*entity.Corretor
		err        error
	)
	if apenasAtivos {
		corretores, err = uow.CorretorRepository().FindAtivos(ctx)
	} else {
		corretores, err = uow.CorretorRepository().FindAll(ctx)
	}
	if err != nil {
		return nil, err
	}

	result := make([]*dto.CorretorResponse, 0, len(corretores))
	for _, c := range corretores {
		result = append(result, s.mapper.ToResponse(c))
	}
	return result, nil
}

// Update overwrites a scalar field only when the payload carries a non-null,
// non-blank value for it. Uniqueness scans exclude the record's own id, so an
// unchanged value never collides with itself.
func (s *corretorService) Update(ctx context.Context, id uint, req *dto.UpdateCorretorRequest) (*dto.CorretorResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	repo := uow.CorretorRepository()

	corretor, err := repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if corretor == nil {
		return nil, apperror.NotFound("Corretor não encontrado com ID: %d", id)
	}

	if nome, ok := req.Nome.Get(); ok && hasText(nome) {
		corretor.Nome = nome
	}

	if cpf, ok := req.Cpf.Get(); ok && hasText(cpf) {
		if !isValidCpf(cpf) {
			return nil, apperror.Validation("Formato de CPF inválido. Use o formato XXX.XXX.XXX-XX.")
		}
		if existente, err := repo.FindByCpf(ctx, cpf); err != nil {
			return nil, err
		} else if existente != nil && existente.Id != id {
			return nil, apperror.Validation("CPF já cadastrado.")
		}
		corretor.Cpf = cpf
	}

	if email, ok := req.Email.Get(); ok && hasText(email) {
		if existente, err := repo.FindByEmail(ctx, email); err != nil {
			return nil, err
		} else if existente != nil && existente.Id != id {
			return nil, apperror.Validation("E-mail já cadastrado.")
		}
		corretor.Email = email
	}

	if telefone, ok := req.Telefone.Get(); ok && hasText(telefone) {
		corretor.Telefone = telefone
	}

	if creci, ok := req.Creci.Get(); ok && hasText(creci) {
		if existente, err := repo.FindByCreci(ctx, creci); err != nil {
			return nil, err
		} else if existente != nil && existente.Id != id {
			return nil, apperror.Validation("CRECI já cadastrado.")
		}
		corretor.Creci = creci
	}

	if ativo, ok := req.Ativo.Get(); ok {
		corretor.Ativo = ativo
	}

	if err := repo.Update(ctx, corretor); err != nil {
		return nil, err
	}
	return s.mapper.ToResponse(corretor), nil
}

func (s *corretorService) Delete(ctx context.Context, id uint) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	repo := uow.CorretorRepository()

	corretor, err := repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if corretor == nil {
		return apperror.NotFound("Corretor não encontrado com ID: %d", id)
	}
	return repo.Delete(ctx, id)
}

func (s *corretorService) ToggleAtivo(ctx context.Context, id uint) (*dto.CorretorResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	repo := uow.CorretorRepository()

	corretor, err := repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if corretor == nil {
		return nil, apperror.NotFound("Corretor não encontrado com ID: %d", id)
	}

	corretor.Ativo = !corretor.Ativo
	if err := repo.Update(ctx, corretor); err != nil {
		return nil, err
	}
	return s.mapper.ToResponse(corretor), nil
}
