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

type IClienteService interface {
	Create(ctx context.Context, req *dto.ClienteRequest) (*dto.ClienteResponse, error)
	GetByID(ctx context.Context, id uint) (*dto.ClienteResponse, error)
	List(ctx context.Context) ([]*dto.ClienteResponse, error)
	Update(ctx context.Context, id uint, req *dto.ClienteRequest) (*dto.ClienteResponse, error)
	Delete(ctx context.Context, id uint) error
}

type clienteService struct {
	uowFactory unitofwork.RepositoryFactory
	mapper     *mapper.ClienteMapper
}

func NewClienteService(uowFactory unitofwork.RepositoryFactory) IClienteService {
	return &clienteService{
		uowFactory: uowFactory,
		mapper:     mapper.NewClienteMapper(),
	}
}

func (s *clienteService) Create(ctx context.Context, req *dto.ClienteRequest) (*dto.ClienteResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	if err := s.checarUnicidade(ctx, uow, req, 0); err != nil {
		return nil, err
	}

	cliente := entity.Cliente{
		Nome:         req.Nome,
		Email:        req.Email,
		Telefone:     req.Telefone,
		Cpf:          req.Cpf,
		Observacoes:  req.Observacoes,
		DataCadastro: time.Now(),
	}

	if err := s.sincronizarCorretor(ctx, uow, &cliente, req); err != nil {
		return nil, err
	}

	if err := uow.ClienteRepository().Create(ctx, &cliente); err != nil {
		return nil, err
	}
	return s.mapper.ToResponse(&cliente), nil
}

// checarUnicidade scans CPF and (when supplied) e-mail against the whole
// collection, ignoring the record identified by excludeID.
func (s *clienteService) checarUnicidade(ctx context.Context, uow unitofwork.UnitOfWork, req *dto.ClienteRequest, excludeID uint) error {
	repo := uow.ClienteRepository()

	existente, err := repo.FindByCpf(ctx, req.Cpf)
	if err != nil {
		return err
	}
	if existente != nil && existente.Id != excludeID {
		if excludeID != 0 {
			return apperror.Validation("Já existe outro cliente com o CPF informado.")
		}
		return apperror.Validation("Já existe um cliente com o CPF informado.")
	}

	if hasText(req.Email) {
		existente, err := repo.FindByEmailIgnoreCase(ctx, req.Email)
		if err != nil {
			return err
		}
		if existente != nil && existente.Id != excludeID {
			if excludeID != 0 {
				return apperror.Validation("Já existe outro cliente com o e-mail informado.")
			}
			return apperror.Validation("Já existe um cliente com o e-mail informado.")
		}
	}
	return nil
}

// sincronizarCorretor resolves the broker when an id is supplied and clears
// the reference otherwise. An omitted and an explicitly null corretorId are
// deliberately not distinguished.
func (s *clienteService) sincronizarCorretor(ctx context.Context, uow unitofwork.UnitOfWork, cliente *entity.Cliente, req *dto.ClienteRequest) error {
	corretorId, ok := req.CorretorId.Get()
	if !ok {
		cliente.CorretorId = nil
		cliente.Corretor = nil
		return nil
	}

	if cliente.CorretorId != nil && *cliente.CorretorId == corretorId {
		return nil
	}

	corretor, err := uow.CorretorRepository().FindByID(ctx, corretorId)
	if err != nil {
		return err
	}
	if corretor == nil {
		return apperror.NotFound("Corretor com ID %d não encontrado.", corretorId)
	}
	cliente.CorretorId = &corretor.Id
	cliente.Corretor = corretor
	return nil
}

func (s *clienteService) GetByID(ctx context.Context, id uint) (*dto.ClienteResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	cliente, err := uow.ClienteRepository().FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if cliente == nil {
		return nil, nil
	}
	return s.mapper.ToResponse(cliente), nil
}

func (s *clienteService) List(ctx context.Context) ([]*dto.ClienteResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	clientes, err := uow.ClienteRepository().FindAll(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.ClienteResponse, 0, len(clientes))
	for _, c := range clientes {
		result = append(result, s.mapper.ToResponse(c))
	}
	return result, nil
}

// Update treats the payload as the complete desired state of the client's
// scalar fields; the broker association follows the synchronizer rules.
func (s *clienteService) Update(ctx context.Context, id uint, req *dto.ClienteRequest) (*dto.ClienteResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	repo := uow.ClienteRepository()

	cliente, err := repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if cliente == nil {
		return nil, apperror.NotFound("Cliente com ID %d não encontrado.", id)
	}

	if err := s.checarUnicidade(ctx, uow, req, id); err != nil {
		return nil, err
	}

	cliente.Nome = req.Nome
	cliente.Email = req.Email
	cliente.Telefone = req.Telefone
	cliente.Cpf = req.Cpf
	cliente.Observacoes = req.Observacoes

	if err := s.sincronizarCorretor(ctx, uow, cliente, req); err != nil {
		return nil, err
	}

	if err := repo.Update(ctx, cliente); err != nil {
		return nil, err
	}
	return s.mapper.ToResponse(cliente), nil
}

func (s *clienteService) Delete(ctx context.Context, id uint) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	repo := uow.ClienteRepository()

	cliente, err := repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if cliente == nil {
		return apperror.NotFound("Cliente com ID %d não encontrado.", id)
	}
	return repo.Delete(ctx, id)
}
