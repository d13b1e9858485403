package service

import (
	"context"
	"sort"
	"strings"

	"imobiliaria-crm-be/internal/entity"
	"imobiliaria-crm-be/internal/repository/contract"
	"imobiliaria-crm-be/internal/repository/unitofwork"
)

// In-memory repository fakes. They honor the (nil, nil) not-found convention
// of the real implementations so services behave identically against them.

type fakeFactory struct {
	uow *fakeUnitOfWork
}

func newFakeFactory() *fakeFactory {
	return &fakeFactory{uow: &fakeUnitOfWork{
		corretores:      newFakeCorretorRepo(),
		clientes:        newFakeClienteRepo(),
		caracteristicas: newFakeCaracteristicaRepo(),
		imoveis:         newFakeImovelRepo(),
		imagens:         newFakeImagemRepo(),
	}}
}

func (f *fakeFactory) NewUnitOfWork(ctx context.Context) unitofwork.UnitOfWork {
	return f.uow
}

type fakeUnitOfWork struct {
	corretores      *fakeCorretorRepo
	clientes        *fakeClienteRepo
	caracteristicas *fakeCaracteristicaRepo
	imoveis         *fakeImovelRepo
	imagens         *fakeImagemRepo

	began      int
	committed  int
	rolledBack int
}

func (u *fakeUnitOfWork) Begin(ctx context.Context) error { u.began++; return nil }
func (u *fakeUnitOfWork) Commit() error                   { u.committed++; return nil }
func (u *fakeUnitOfWork) Rollback() error                 { u.rolledBack++; return nil }

func (u *fakeUnitOfWork) CorretorRepository() contract.CorretorRepository { return u.corretores }
func (u *fakeUnitOfWork) ClienteRepository() contract.ClienteRepository   { return u.clientes }
func (u *fakeUnitOfWork) CaracteristicaRepository() contract.CaracteristicaRepository {
	return u.caracteristicas
}
func (u *fakeUnitOfWork) ImovelRepository() contract.ImovelRepository { return u.imoveis }
func (u *fakeUnitOfWork) ImagemRepository() contract.ImagemRepository { return u.imagens }

// --- corretores ---

type fakeCorretorRepo struct {
	items  map[uint]*entity.Corretor
	nextID uint
}

func newFakeCorretorRepo() *fakeCorretorRepo {
	return &fakeCorretorRepo{items: map[uint]*entity.Corretor{}, nextID: 1}
}

func (r *fakeCorretorRepo) Create(ctx context.Context, c *entity.Corretor) error {
	c.Id = r.nextID
	r.nextID++
	cp := *c
	r.items[c.Id] = &cp
	return nil
}

func (r *fakeCorretorRepo) Update(ctx context.Context, c *entity.Corretor) error {
	cp := *c
	r.items[c.Id] = &cp
	return nil
}

func (r *fakeCorretorRepo) Delete(ctx context.Context, id uint) error {
	delete(r.items, id)
	return nil
}

func (r *fakeCorretorRepo) FindByID(ctx context.Context, id uint) (*entity.Corretor, error) {
	c, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (r *fakeCorretorRepo) FindAll(ctx context.Context) ([]*entity.Corretor, error) {
	return r.sorted(func(*entity.Corretor) bool { return true }), nil
}

func (r *fakeCorretorRepo) FindAtivos(ctx context.Context) ([]*entity.Corretor, error) {
	return r.sorted(func(c *entity.Corretor) bool { return c.Ativo }), nil
}

func (r *fakeCorretorRepo) sorted(keep func(*entity.Corretor) bool) []*entity.Corretor {
	out := make([]*entity.Corretor, 0, len(r.items))
	for _, c := range r.items {
		if keep(c) {
			cp := *c
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Id < out[j].Id })
	return out
}

func (r *fakeCorretorRepo) FindByCpf(ctx context.Context, cpf string) (*entity.Corretor, error) {
	return r.findBy(func(c *entity.Corretor) bool { return c.Cpf == cpf }), nil
}

func (r *fakeCorretorRepo) FindByEmail(ctx context.Context, email string) (*entity.Corretor, error) {
	return r.findBy(func(c *entity.Corretor) bool { return c.Email == email }), nil
}

func (r *fakeCorretorRepo) FindByCreci(ctx context.Context, creci string) (*entity.Corretor, error) {
	return r.findBy(func(c *entity.Corretor) bool { return c.Creci == creci }), nil
}

func (r *fakeCorretorRepo) findBy(match func(*entity.Corretor) bool) *entity.Corretor {
	for _, c := range r.items {
		if match(c) {
			cp := *c
			return &cp
		}
	}
	return nil
}

// --- clientes ---

type fakeClienteRepo struct {
	items  map[uint]*entity.Cliente
	nextID uint
}

func newFakeClienteRepo() *fakeClienteRepo {
	return &fakeClienteRepo{items: map[uint]*entity.Cliente{}, nextID: 1}
}

func (r *fakeClienteRepo) Create(ctx context.Context, c *entity.Cliente) error {
	c.Id = r.nextID
	r.nextID++
	cp := *c
	r.items[c.Id] = &cp
	return nil
}

func (r *fakeClienteRepo) Update(ctx context.Context, c *entity.Cliente) error {
	cp := *c
	r.items[c.Id] = &cp
	return nil
}

func (r *fakeClienteRepo) Delete(ctx context.Context, id uint) error {
	delete(r.items, id)
	return nil
}

func (r *fakeClienteRepo) FindByID(ctx context.Context, id uint) (*entity.Cliente, error) {
	c, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (r *fakeClienteRepo) FindAll(ctx context.Context) ([]*entity.Cliente, error) {
	out := make([]*entity.Cliente, 0, len(r.items))
	for _, c := range r.items {
		cp := *c
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Id < out[j].Id })
	return out, nil
}

func (r *fakeClienteRepo) FindByCpf(ctx context.Context, cpf string) (*entity.Cliente, error) {
	for _, c := range r.items {
		if c.Cpf == cpf {
			cp := *c
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeClienteRepo) FindByEmailIgnoreCase(ctx context.Context, email string) (*entity.Cliente, error) {
	for _, c := range r.items {
		if strings.EqualFold(c.Email, email) {
			cp := *c
			return &cp, nil
		}
	}
	return nil, nil
}

// --- caracteristicas ---

type fakeCaracteristicaRepo struct {
	items   map[uint]*entity.Caracteristica
	nextID  uint
	deleted []uint
}

func newFakeCaracteristicaRepo() *fakeCaracteristicaRepo {
	return &fakeCaracteristicaRepo{items: map[uint]*entity.Caracteristica{}, nextID: 1}
}

func (r *fakeCaracteristicaRepo) Create(ctx context.Context, c *entity.Caracteristica) error {
	c.Id = r.nextID
	r.nextID++
	cp := *c
	r.items[c.Id] = &cp
	return nil
}

func (r *fakeCaracteristicaRepo) Update(ctx context.Context, c *entity.Caracteristica) error {
	cp := *c
	r.items[c.Id] = &cp
	return nil
}

func (r *fakeCaracteristicaRepo) Delete(ctx context.Context, id uint) error {
	delete(r.items, id)
	r.deleted = append(r.deleted, id)
	return nil
}

func (r *fakeCaracteristicaRepo) FindByID(ctx context.Context, id uint) (*entity.Caracteristica, error) {
	c, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (r *fakeCaracteristicaRepo) FindAll(ctx context.Context) ([]*entity.Caracteristica, error) {
	out := make([]*entity.Caracteristica, 0, len(r.items))
	for _, c := range r.items {
		cp := *c
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Id < out[j].Id })
	return out, nil
}

func (r *fakeCaracteristicaRepo) FindByIDs(ctx context.Context, ids []uint) ([]*entity.Caracteristica, error) {
	out := make([]*entity.Caracteristica, 0, len(ids))
	for _, id := range ids {
		if c, ok := r.items[id]; ok {
			cp := *c
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeCaracteristicaRepo) FindByNomeIgnoreCase(ctx context.Context, nome string) (*entity.Caracteristica, error) {
	for _, c := range r.items {
		if strings.EqualFold(c.Nome, nome) {
			cp := *c
			return &cp, nil
		}
	}
	return nil, nil
}

// --- imoveis ---

type fakeImovelRepo struct {
	items        map[uint]*entity.Imovel
	nextID       uint
	clearedJoins []uint
	deleted      []uint
}

func newFakeImovelRepo() *fakeImovelRepo {
	return &fakeImovelRepo{items: map[uint]*entity.Imovel{}, nextID: 1}
}

func (r *fakeImovelRepo) Create(ctx context.Context, i *entity.Imovel) error {
	i.Id = r.nextID
	r.nextID++
	cp := *i
	r.items[i.Id] = &cp
	return nil
}

func (r *fakeImovelRepo) Update(ctx context.Context, i *entity.Imovel) error {
	cp := *i
	r.items[i.Id] = &cp
	return nil
}

func (r *fakeImovelRepo) Delete(ctx context.Context, id uint) error {
	delete(r.items, id)
	r.deleted = append(r.deleted, id)
	return nil
}

func (r *fakeImovelRepo) FindByID(ctx context.Context, id uint) (*entity.Imovel, error) {
	i, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	cp := *i
	return &cp, nil
}

func (r *fakeImovelRepo) FindAll(ctx context.Context) ([]*entity.Imovel, error) {
	out := make([]*entity.Imovel, 0, len(r.items))
	for _, i := range r.items {
		cp := *i
		out = append(out, &cp)
	}
	sort.Slice(out, func(a, b int) bool { return out[a].Id < out[b].Id })
	return out, nil
}

func (r *fakeImovelRepo) FindByCodigo(ctx context.Context, codigo string) (*entity.Imovel, error) {
	for _, i := range r.items {
		if i.Codigo == codigo {
			cp := *i
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeImovelRepo) ExistsByID(ctx context.Context, id uint) (bool, error) {
	_, ok := r.items[id]
	return ok, nil
}

func (r *fakeImovelRepo) ClearCaracteristicas(ctx context.Context, imovelID uint) error {
	if i, ok := r.items[imovelID]; ok {
		i.Caracteristicas = nil
	}
	r.clearedJoins = append(r.clearedJoins, imovelID)
	return nil
}

// --- imagens ---

type fakeImagemRepo struct {
	items           map[uint]*entity.Imagem
	nextID          uint
	deletedByImovel []uint
}

func newFakeImagemRepo() *fakeImagemRepo {
	return &fakeImagemRepo{items: map[uint]*entity.Imagem{}, nextID: 1}
}

func (r *fakeImagemRepo) Create(ctx context.Context, img *entity.Imagem) error {
	img.Id = r.nextID
	r.nextID++
	cp := *img
	r.items[img.Id] = &cp
	return nil
}

func (r *fakeImagemRepo) Update(ctx context.Context, img *entity.Imagem) error {
	cp := *img
	r.items[img.Id] = &cp
	return nil
}

func (r *fakeImagemRepo) Delete(ctx context.Context, id uint) error {
	delete(r.items, id)
	return nil
}

func (r *fakeImagemRepo) FindByIDAndImovelID(ctx context.Context, id, imovelID uint) (*entity.Imagem, error) {
	img, ok := r.items[id]
	if !ok || img.ImovelId != imovelID {
		return nil, nil
	}
	cp := *img
	return &cp, nil
}

func (r *fakeImagemRepo) FindByImovelID(ctx context.Context, imovelID uint) ([]*entity.Imagem, error) {
	out := make([]*entity.Imagem, 0)
	for _, img := range r.items {
		if img.ImovelId == imovelID {
			cp := *img
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Ordem != out[j].Ordem {
			return out[i].Ordem < out[j].Ordem
		}
		return out[i].Id < out[j].Id
	})
	return out, nil
}

func (r *fakeImagemRepo) DeleteByImovelID(ctx context.Context, imovelID uint) error {
	for id, img := range r.items {
		if img.ImovelId == imovelID {
			delete(r.items, id)
		}
	}
	r.deletedByImovel = append(r.deletedByImovel, imovelID)
	return nil
}
