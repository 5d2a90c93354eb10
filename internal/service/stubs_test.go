package service

import (
	"context"
	"sort"

	"github.com/Senai-SC-CTAI/sistema-epi-gabrielgv13/internal/dto"
	"github.com/Senai-SC-CTAI/sistema-epi-gabrielgv13/internal/model"
	"github.com/Senai-SC-CTAI/sistema-epi-gabrielgv13/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// In-memory repository stubs. DB() returns nil, which makes runTx call the
// transaction body directly, so services run their full logic without a
// database. Reads return copies to mirror GORM scanning into fresh structs.

// ── equipamento ──────────────────────────────────────────────────────────────

type fakeEquipamentoRepo struct {
	items map[uuid.UUID]*model.Equipamento
}

func newFakeEquipamentoRepo() *fakeEquipamentoRepo {
	return &fakeEquipamentoRepo{items: make(map[uuid.UUID]*model.Equipamento)}
}

func (r *fakeEquipamentoRepo) seed(nome, marca string, quantidade int) uuid.UUID {
	id := uuid.New()
	r.items[id] = &model.Equipamento{ID: id, Nome: nome, Marca: marca, Quantidade: quantidade}
	return id
}

func (r *fakeEquipamentoRepo) estoque(id uuid.UUID) int { return r.items[id].Quantidade }

func (r *fakeEquipamentoRepo) Create(_ context.Context, e *model.Equipamento) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	cp := *e
	r.items[e.ID] = &cp
	return nil
}

func (r *fakeEquipamentoRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Equipamento, error) {
	e, ok := r.items[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *e
	return &cp, nil
}

func (r *fakeEquipamentoRepo) List(_ context.Context, _ dto.EquipamentoFilter) ([]model.Equipamento, int64, error) {
	out := make([]model.Equipamento, 0, len(r.items))
	for _, e := range r.items {
		out = append(out, *e)
	}
	return out, int64(len(out)), nil
}

func (r *fakeEquipamentoRepo) Update(_ context.Context, e *model.Equipamento) error {
	cp := *e
	r.items[e.ID] = &cp
	return nil
}

func (r *fakeEquipamentoRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.items, id)
	return nil
}

func (r *fakeEquipamentoRepo) FindByIDForUpdateTx(_ *gorm.DB, id uuid.UUID) (*model.Equipamento, error) {
	return r.FindByID(context.Background(), id)
}

func (r *fakeEquipamentoRepo) AjustarEstoqueTx(_ *gorm.DB, id uuid.UUID, delta int) error {
	e, ok := r.items[id]
	if !ok || e.Quantidade+delta < 0 {
		return repository.ErrEstoqueNegativo
	}
	e.Quantidade += delta
	return nil
}

func (r *fakeEquipamentoRepo) DB() *gorm.DB { return nil }

// ── colaborador ──────────────────────────────────────────────────────────────

type fakeColaboradorRepo struct {
	items map[uuid.UUID]*model.Colaborador
}

func newFakeColaboradorRepo() *fakeColaboradorRepo {
	return &fakeColaboradorRepo{items: make(map[uuid.UUID]*model.Colaborador)}
}

func (r *fakeColaboradorRepo) seed(nome, email string) uuid.UUID {
	id := uuid.New()
	r.items[id] = &model.Colaborador{ID: id, Nome: nome, Email: email}
	return id
}

func (r *fakeColaboradorRepo) Create(_ context.Context, c *model.Colaborador) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	cp := *c
	r.items[c.ID] = &cp
	return nil
}

func (r *fakeColaboradorRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Colaborador, error) {
	c, ok := r.items[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *c
	return &cp, nil
}

func (r *fakeColaboradorRepo) FindByEmail(_ context.Context, email string) (*model.Colaborador, error) {
	for _, c := range r.items {
		if c.Email == email {
			cp := *c
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeColaboradorRepo) List(_ context.Context, _ dto.ColaboradorFilter) ([]model.Colaborador, int64, error) {
	out := make([]model.Colaborador, 0, len(r.items))
	for _, c := range r.items {
		out = append(out, *c)
	}
	return out, int64(len(out)), nil
}

func (r *fakeColaboradorRepo) Update(_ context.Context, c *model.Colaborador) error {
	cp := *c
	r.items[c.ID] = &cp
	return nil
}

func (r *fakeColaboradorRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.items, id)
	return nil
}

// ── emprestimo ───────────────────────────────────────────────────────────────

type fakeEmprestimoRepo struct {
	items         map[uuid.UUID]*model.Emprestimo
	equipamentos  *fakeEquipamentoRepo
	colaboradores *fakeColaboradorRepo
}

func newFakeEmprestimoRepo(eq *fakeEquipamentoRepo, col *fakeColaboradorRepo) *fakeEmprestimoRepo {
	return &fakeEmprestimoRepo{
		items:         make(map[uuid.UUID]*model.Emprestimo),
		equipamentos:  eq,
		colaboradores: col,
	}
}

// preload fills the association pointers the way the GORM Preload calls do.
func (r *fakeEmprestimoRepo) preload(e model.Emprestimo) model.Emprestimo {
	if c, ok := r.colaboradores.items[e.ColaboradorID]; ok {
		cp := *c
		e.Colaborador = &cp
	}
	if eq, ok := r.equipamentos.items[e.EquipamentoID]; ok {
		cp := *eq
		e.Equipamento = &cp
	}
	return e
}

func (r *fakeEmprestimoRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Emprestimo, error) {
	e, ok := r.items[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := r.preload(*e)
	return &cp, nil
}

func (r *fakeEmprestimoRepo) List(_ context.Context, filter dto.EmprestimoFilter) ([]model.Emprestimo, int64, error) {
	out := make([]model.Emprestimo, 0, len(r.items))
	for _, e := range r.items {
		if filter.Status != "" && e.Status != filter.Status {
			continue
		}
		out = append(out, r.preload(*e))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].DataEmprestimo.After(out[j].DataEmprestimo) })
	return out, int64(len(out)), nil
}

func (r *fakeEmprestimoRepo) ListDevolvidos(_ context.Context) ([]model.Emprestimo, error) {
	out := make([]model.Emprestimo, 0)
	for _, e := range r.items {
		if e.Status == model.StatusDevolvido {
			out = append(out, r.preload(*e))
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].DataDevolucaoReal.After(*out[j].DataDevolucaoReal)
	})
	return out, nil
}

func (r *fakeEmprestimoRepo) ListMovimentacoes(_ context.Context) ([]model.Emprestimo, error) {
	out := make([]model.Emprestimo, 0, len(r.items))
	for _, e := range r.items {
		out = append(out, r.preload(*e))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].DataEmprestimo.After(out[j].DataEmprestimo) })
	return out, nil
}

func (r *fakeEmprestimoRepo) CountByColaborador(_ context.Context, colaboradorID uuid.UUID) (int64, error) {
	var n int64
	for _, e := range r.items {
		if e.ColaboradorID == colaboradorID {
			n++
		}
	}
	return n, nil
}

func (r *fakeEmprestimoRepo) CountByEquipamento(_ context.Context, equipamentoID uuid.UUID) (int64, error) {
	var n int64
	for _, e := range r.items {
		if e.EquipamentoID == equipamentoID {
			n++
		}
	}
	return n, nil
}

func (r *fakeEmprestimoRepo) CreateTx(_ *gorm.DB, e *model.Emprestimo) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	cp := *e
	cp.Colaborador = nil
	cp.Equipamento = nil
	r.items[e.ID] = &cp
	return nil
}

func (r *fakeEmprestimoRepo) FindByIDTx(_ *gorm.DB, id uuid.UUID) (*model.Emprestimo, error) {
	e, ok := r.items[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *e
	return &cp, nil
}

func (r *fakeEmprestimoRepo) UpdateTx(_ *gorm.DB, e *model.Emprestimo) error {
	cp := *e
	cp.Colaborador = nil
	cp.Equipamento = nil
	r.items[e.ID] = &cp
	return nil
}

func (r *fakeEmprestimoRepo) DeleteTx(_ *gorm.DB, id uuid.UUID) error {
	delete(r.items, id)
	return nil
}

func (r *fakeEmprestimoRepo) DB() *gorm.DB { return nil }

// ── usuario ──────────────────────────────────────────────────────────────────

type fakeUsuarioRepo struct {
	items map[uuid.UUID]*model.Usuario
}

func newFakeUsuarioRepo() *fakeUsuarioRepo {
	return &fakeUsuarioRepo{items: make(map[uuid.UUID]*model.Usuario)}
}

func (r *fakeUsuarioRepo) Create(_ context.Context, u *model.Usuario) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	cp := *u
	r.items[u.ID] = &cp
	return nil
}

func (r *fakeUsuarioRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Usuario, error) {
	u, ok := r.items[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *u
	return &cp, nil
}

func (r *fakeUsuarioRepo) FindByEmail(_ context.Context, email string) (*model.Usuario, error) {
	for _, u := range r.items {
		if u.Email == email && u.Ativo {
			cp := *u
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeUsuarioRepo) List(_ context.Context) ([]model.Usuario, error) {
	out := make([]model.Usuario, 0, len(r.items))
	for _, u := range r.items {
		out = append(out, *u)
	}
	return out, nil
}

func (r *fakeUsuarioRepo) Update(_ context.Context, u *model.Usuario) error {
	cp := *u
	r.items[u.ID] = &cp
	return nil
}

func (r *fakeUsuarioRepo) SoftDelete(_ context.Context, id uuid.UUID) error {
	if u, ok := r.items[id]; ok {
		u.Ativo = false
	}
	return nil
}
