package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"imobiliaria-crm-be/internal/dto"
	"imobiliaria-crm-be/internal/pkg/apperror"
)

func seedImovel(t *testing.T, factory *fakeFactory, codigo string) uint {
	t.Helper()
	svc := NewImovelService(factory)
	req := novoImovelRequest()
	req.Codigo = codigo
	created, err := svc.Create(context.Background(), req)
	require.NoError(t, err)
	return created.Id
}

func TestImagemCreate(t *testing.T) {
	factory := newFakeFactory()
	svc := NewImagemService(factory)
	imovelId := seedImovel(t, factory, "AP-001")

	ordem := 3
	res, err := svc.Create(context.Background(), imovelId, &dto.CreateImagemRequest{
		Url:     "https://cdn.example.com/fachada.jpg",
		Legenda: "Fachada",
		Ordem:   &ordem,
	})
	require.NoError(t, err)

	assert.NotZero(t, res.Id)
	assert.Equal(t, imovelId, res.ImovelId)
	assert.Equal(t, 3, res.Ordem)
	assert.False(t, res.DataUpload.IsZero())
}

func TestImagemCreateImovelInexistente(t *testing.T) {
	factory := newFakeFactory()
	svc := NewImagemService(factory)

	_, err := svc.Create(context.Background(), 99, &dto.CreateImagemRequest{
		Url: "https://cdn.example.com/fachada.jpg",
	})
	require.Error(t, err)
	assert.True(t, apperror.IsNotFound(err))
	assert.Empty(t, factory.uow.imagens.items)
}

func TestImagemLookupScopedPorImovel(t *testing.T) {
	factory := newFakeFactory()
	svc := NewImagemService(factory)
	primeiro := seedImovel(t, factory, "AP-001")
	segundo := seedImovel(t, factory, "AP-002")

	created, err := svc.Create(context.Background(), primeiro, &dto.CreateImagemRequest{
		Url: "https://cdn.example.com/sala.jpg",
	})
	require.NoError(t, err)

	res, err := svc.GetByID(context.Background(), segundo, created.Id)
	require.NoError(t, err)
	assert.Nil(t, res, "an image id under another property never resolves")

	legenda := "Sala"
	_, err = svc.Update(context.Background(), segundo, created.Id, &dto.UpdateImagemRequest{
		Legenda: &legenda,
	})
	require.Error(t, err)
	assert.True(t, apperror.IsNotFound(err))

	err = svc.Delete(context.Background(), segundo, created.Id)
	require.Error(t, err)
	assert.True(t, apperror.IsNotFound(err))
	assert.Len(t, factory.uow.imagens.items, 1, "cross-property delete must not touch the image")
}

func TestImagemUpdateApenasCamposFornecidos(t *testing.T) {
	factory := newFakeFactory()
	svc := NewImagemService(factory)
	imovelId := seedImovel(t, factory, "AP-001")

	ordem := 1
	created, err := svc.Create(context.Background(), imovelId, &dto.CreateImagemRequest{
		Url:     "https://cdn.example.com/sala.jpg",
		Legenda: "Sala",
		Ordem:   &ordem,
	})
	require.NoError(t, err)

	novaOrdem := 5
	res, err := svc.Update(context.Background(), imovelId, created.Id, &dto.UpdateImagemRequest{
		Ordem: &novaOrdem,
	})
	require.NoError(t, err)

	assert.Equal(t, 5, res.Ordem)
	assert.Equal(t, "Sala", res.Legenda, "omitted caption keeps its value")
	assert.Equal(t, created.Url, res.Url, "url is immutable")
}

func TestImagemListPorImovel(t *testing.T) {
	factory := newFakeFactory()
	svc := NewImagemService(factory)
	primeiro := seedImovel(t, factory, "AP-001")
	segundo := seedImovel(t, factory, "AP-002")

	for i, url := range []string{"https://cdn.example.com/a.jpg", "https://cdn.example.com/b.jpg"} {
		ordem := 2 - i
		_, err := svc.Create(context.Background(), primeiro, &dto.CreateImagemRequest{Url: url, Ordem: &ordem})
		require.NoError(t, err)
	}
	_, err := svc.Create(context.Background(), segundo, &dto.CreateImagemRequest{Url: "https://cdn.example.com/c.jpg"})
	require.NoError(t, err)

	imagens, err := svc.ListByImovel(context.Background(), primeiro)
	require.NoError(t, err)
	require.Len(t, imagens, 2)
	assert.LessOrEqual(t, imagens[0].Ordem, imagens[1].Ordem, "ordered by ordem")
}

func TestImagemListImovelInexistente(t *testing.T) {
	svc := NewImagemService(newFakeFactory())

	_, err := svc.ListByImovel(context.Background(), 77)
	require.Error(t, err)
	assert.True(t, apperror.IsNotFound(err))
}
