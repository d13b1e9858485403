package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"imobiliaria-crm-be/internal/dto"
	"imobiliaria-crm-be/internal/entity"
	"imobiliaria-crm-be/internal/pkg/apperror"
	"imobiliaria-crm-be/pkg/optional"
)

func novoImovelRequest() *dto.ImovelRequest {
	return &dto.ImovelRequest{
		Codigo:     "AP-001",
		Tipo:       "APARTAMENTO",
		Finalidade: "VENDA",
		Endereco: &dto.EnderecoDTO{
			Logradouro: "Rua das Flores, 100",
			Bairro:     "Centro",
			Cidade:     "São Paulo",
			Estado:     "SP",
			Cep:        "01000-000",
		},
		Preco: 450000,
	}
}

func seedCaracteristicas(t *testing.T, factory *fakeFactory, nomes ...string) []uint {
	t.Helper()
	ids := make([]uint, 0, len(nomes))
	for _, nome := range nomes {
		c := &entity.Caracteristica{Nome: nome}
		require.NoError(t, factory.uow.caracteristicas.Create(context.Background(), c))
		ids = append(ids, c.Id)
	}
	return ids
}

func TestImovelCreateDefaultStatus(t *testing.T) {
	factory := newFakeFactory()
	svc := NewImovelService(factory)

	res, err := svc.Create(context.Background(), novoImovelRequest())
	require.NoError(t, err)
	assert.Equal(t, "DISPONIVEL", res.Status)

	explicit := novoImovelRequest()
	explicit.Codigo = "AP-002"
	explicit.Status = "RESERVADO"
	res, err = svc.Create(context.Background(), explicit)
	require.NoError(t, err)
	assert.Equal(t, "RESERVADO", res.Status)
}

func TestImovelCreateDuplicateCodigo(t *testing.T) {
	factory := newFakeFactory()
	svc := NewImovelService(factory)

	_, err := svc.Create(context.Background(), novoImovelRequest())
	require.NoError(t, err)

	_, err = svc.Create(context.Background(), novoImovelRequest())
	require.Error(t, err)
	assert.True(t, apperror.IsValidation(err))
	assert.Len(t, factory.uow.imoveis.items, 1)
}

func TestImovelCreateComCaracteristicas(t *testing.T) {
	factory := newFakeFactory()
	svc := NewImovelService(factory)
	ids := seedCaracteristicas(t, factory, "Piscina", "Churrasqueira")

	req := novoImovelRequest()
	req.CaracteristicaIds = optional.Value(ids)

	res, err := svc.Create(context.Background(), req)
	require.NoError(t, err)
	assert.Len(t, res.Caracteristicas, 2)
}

func TestImovelCreateCaracteristicaInexistente(t *testing.T) {
	factory := newFakeFactory()
	svc := NewImovelService(factory)
	ids := seedCaracteristicas(t, factory, "Piscina", "Churrasqueira")

	req := novoImovelRequest()
	req.CaracteristicaIds = optional.Value(append(ids, 999))

	_, err := svc.Create(context.Background(), req)
	require.Error(t, err)
	assert.True(t, apperror.IsInvalidReference(err))
	assert.EqualError(t, err, "Uma ou mais IDs de características são inválidas.")
	assert.Empty(t, factory.uow.imoveis.items, "property must not be persisted")
}

func TestImovelCreateCorretorInexistente(t *testing.T) {
	factory := newFakeFactory()
	svc := NewImovelService(factory)

	req := novoImovelRequest()
	req.CorretorId = optional.Value(uint(42))

	_, err := svc.Create(context.Background(), req)
	require.Error(t, err)
	assert.True(t, apperror.IsNotFound(err))
	assert.Empty(t, factory.uow.imoveis.items)
}

func TestImovelUpdateCaracteristicasAusentesFicamIntactas(t *testing.T) {
	factory := newFakeFactory()
	svc := NewImovelService(factory)
	ids := seedCaracteristicas(t, factory, "Piscina", "Churrasqueira")

	req := novoImovelRequest()
	req.CaracteristicaIds = optional.Value(ids)
	created, err := svc.Create(context.Background(), req)
	require.NoError(t, err)
	require.Len(t, created.Caracteristicas, 2)

	update := novoImovelRequest()
	update.Descricao = "Reformado"
	res, err := svc.Update(context.Background(), created.Id, update)
	require.NoError(t, err)

	assert.Equal(t, "Reformado", res.Descricao)
	assert.Len(t, res.Caracteristicas, 2, "absent caracteristicaIds leaves the set untouched")
}

func TestImovelUpdateCaracteristicasVaziasLimpamTudo(t *testing.T) {
	factory := newFakeFactory()
	svc := NewImovelService(factory)
	ids := seedCaracteristicas(t, factory, "Piscina", "Churrasqueira")

	req := novoImovelRequest()
	req.CaracteristicaIds = optional.Value(ids)
	created, err := svc.Create(context.Background(), req)
	require.NoError(t, err)

	update := novoImovelRequest()
	update.CaracteristicaIds = optional.Value([]uint{})
	res, err := svc.Update(context.Background(), created.Id, update)
	require.NoError(t, err)

	assert.Empty(t, res.Caracteristicas, "present-and-empty set clears all associations")
}

func TestImovelUpdateCaracteristicaInexistenteNadaAplicado(t *testing.T) {
	factory := newFakeFactory()
	svc := NewImovelService(factory)
	ids := seedCaracteristicas(t, factory, "Piscina")

	req := novoImovelRequest()
	req.CaracteristicaIds = optional.Value(ids)
	created, err := svc.Create(context.Background(), req)
	require.NoError(t, err)

	update := novoImovelRequest()
	update.Descricao = "Tentativa"
	update.CaracteristicaIds = optional.Value([]uint{ids[0], 999})
	_, err = svc.Update(context.Background(), created.Id, update)
	require.Error(t, err)
	assert.True(t, apperror.IsInvalidReference(err))

	stored, err := factory.uow.imoveis.FindByID(context.Background(), created.Id)
	require.NoError(t, err)
	assert.Empty(t, stored.Descricao, "failed update must apply none of the changes")
	assert.Len(t, stored.Caracteristicas, 1)
}

func TestImovelUpdateCorretorOmitidoLimpaAssociacao(t *testing.T) {
	factory := newFakeFactory()
	svc := NewImovelService(factory)
	corretor := seedCorretor(t, factory)

	req := novoImovelRequest()
	req.CorretorId = optional.Value(corretor.Id)
	created, err := svc.Create(context.Background(), req)
	require.NoError(t, err)
	require.NotNil(t, created.CorretorId)

	update := novoImovelRequest()
	res, err := svc.Update(context.Background(), created.Id, update)
	require.NoError(t, err)
	assert.Nil(t, res.CorretorId, "omitted corretorId clears the broker")
}

func TestImovelDeleteCascata(t *testing.T) {
	factory := newFakeFactory()
	svc := NewImovelService(factory)
	ids := seedCaracteristicas(t, factory, "Piscina")

	req := novoImovelRequest()
	req.CaracteristicaIds = optional.Value(ids)
	created, err := svc.Create(context.Background(), req)
	require.NoError(t, err)

	img := &entity.Imagem{ImovelId: created.Id, Url: "https://cdn.example.com/1.jpg"}
	require.NoError(t, factory.uow.imagens.Create(context.Background(), img))

	require.NoError(t, svc.Delete(context.Background(), created.Id))

	assert.Empty(t, factory.uow.imoveis.items)
	assert.Empty(t, factory.uow.imagens.items, "owned images go with the property")
	assert.Contains(t, factory.uow.imagens.deletedByImovel, created.Id)
	assert.Contains(t, factory.uow.imoveis.clearedJoins, created.Id)
	assert.Len(t, factory.uow.caracteristicas.items, 1, "shared features survive")

	assert.Equal(t, 1, factory.uow.began)
	assert.Equal(t, 1, factory.uow.committed)
	assert.Zero(t, factory.uow.rolledBack)
}

func TestImovelDeleteMissing(t *testing.T) {
	factory := newFakeFactory()
	svc := NewImovelService(factory)

	err := svc.Delete(context.Background(), 5)
	require.Error(t, err)
	assert.True(t, apperror.IsNotFound(err))
	assert.Zero(t, factory.uow.began, "no transaction for a missing id")
}
