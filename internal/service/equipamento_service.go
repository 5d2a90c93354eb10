package service

import (
	"context"
	"errors"

	"github.com/Senai-SC-CTAI/sistema-epi-gabrielgv13/internal/dto"
	"github.com/Senai-SC-CTAI/sistema-epi-gabrielgv13/internal/model"
	"github.com/Senai-SC-CTAI/sistema-epi-gabrielgv13/internal/repository"

	"github.com/google/uuid"
)

var (
	// ErrQuantidadeEstoqueMinima is the user-facing message for an initial stock below 1.
	ErrQuantidadeEstoqueMinima = errors.New("A quantidade mínima em estoque é 1.")
	// ErrEquipamentoComEmprestimos blocks deletion while any loan, active or
	// returned, still references the equipment.
	ErrEquipamentoComEmprestimos = errors.New("não é possível excluir: equipamento possui empréstimos registrados")
)

type EquipamentoService interface {
	Criar(ctx context.Context, req dto.CriarEquipamentoRequest) (*dto.EquipamentoResponse, error)
	ObterPorID(ctx context.Context, id uuid.UUID) (*dto.EquipamentoResponse, error)
	Listar(ctx context.Context, filter dto.EquipamentoFilter) (*dto.EquipamentoListResponse, error)
	Atualizar(ctx context.Context, id uuid.UUID, req dto.AtualizarEquipamentoRequest) (*dto.EquipamentoResponse, error)
	Excluir(ctx context.Context, id uuid.UUID) error
}

type equipamentoService struct {
	repo           repository.EquipamentoRepository
	emprestimoRepo repository.EmprestimoRepository
}

func NewEquipamentoService(repo repository.EquipamentoRepository, emprestimoRepo repository.EmprestimoRepository) EquipamentoService {
	return &equipamentoService{repo: repo, emprestimoRepo: emprestimoRepo}
}

func (s *equipamentoService) Criar(ctx context.Context, req dto.CriarEquipamentoRequest) (*dto.EquipamentoResponse, error) {
	if req.Quantidade < 1 {
		return nil, ErrQuantidadeEstoqueMinima
	}
	equipamento := &model.Equipamento{
		Nome:       req.Nome,
		Marca:      req.Marca,
		Quantidade: req.Quantidade,
	}
	if err := s.repo.Create(ctx, equipamento); err != nil {
		return nil, err
	}
	return equipamentoToResponse(equipamento), nil
}

func (s *equipamentoService) ObterPorID(ctx context.Context, id uuid.UUID) (*dto.EquipamentoResponse, error) {
	equipamento, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.New("equipamento não encontrado")
	}
	return equipamentoToResponse(equipamento), nil
}

func (s *equipamentoService) Listar(ctx context.Context, filter dto.EquipamentoFilter) (*dto.EquipamentoListResponse, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = 20
	}
	equipamentos, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	items := make([]dto.EquipamentoResponse, 0, len(equipamentos))
	for i := range equipamentos {
		items = append(items, *equipamentoToResponse(&equipamentos[i]))
	}
	return &dto.EquipamentoListResponse{
		Data:  items,
		Total: total,
		Page:  filter.Page,
		Limit: filter.Limit,
	}, nil
}

func (s *equipamentoService) Atualizar(ctx context.Context, id uuid.UUID, req dto.AtualizarEquipamentoRequest) (*dto.EquipamentoResponse, error) {
	equipamento, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.New("equipamento não encontrado")
	}
	if req.Nome != nil {
		equipamento.Nome = *req.Nome
	}
	if req.Marca != nil {
		equipamento.Marca = *req.Marca
	}
	if req.Quantidade != nil {
		if *req.Quantidade < 0 {
			return nil, repository.ErrEstoqueNegativo
		}
		equipamento.Quantidade = *req.Quantidade
	}
	if err := s.repo.Update(ctx, equipamento); err != nil {
		return nil, err
	}
	return equipamentoToResponse(equipamento), nil
}

// Excluir mirrors the colaborador guard: any referencing loan blocks deletion.
func (s *equipamentoService) Excluir(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return errors.New("equipamento não encontrado")
	}
	n, err := s.emprestimoRepo.CountByEquipamento(ctx, id)
	if err != nil {
		return err
	}
	if n > 0 {
		return ErrEquipamentoComEmprestimos
	}
	return s.repo.Delete(ctx, id)
}

func equipamentoToResponse(e *model.Equipamento) *dto.EquipamentoResponse {
	return &dto.EquipamentoResponse{
		ID:         e.ID.String(),
		Nome:       e.Nome,
		Marca:      e.Marca,
		Quantidade: e.Quantidade,
	}
}
