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
	ErrEmailJaCadastrado = errors.New("Email já cadastrado.")
	// ErrColaboradorComEmprestimos blocks deletion while any loan, active or
	// returned, still references the colaborador.
	ErrColaboradorComEmprestimos = errors.New("não é possível excluir: colaborador possui empréstimos registrados")
)

type ColaboradorService interface {
	Criar(ctx context.Context, req dto.CriarColaboradorRequest) (*dto.ColaboradorResponse, error)
	ObterPorID(ctx context.Context, id uuid.UUID) (*dto.ColaboradorResponse, error)
	Listar(ctx context.Context, filter dto.ColaboradorFilter) (*dto.ColaboradorListResponse, error)
	Atualizar(ctx context.Context, id uuid.UUID, req dto.AtualizarColaboradorRequest) (*dto.ColaboradorResponse, error)
	Excluir(ctx context.Context, id uuid.UUID) error
}

type colaboradorService struct {
	repo           repository.ColaboradorRepository
	emprestimoRepo repository.EmprestimoRepository
}

func NewColaboradorService(repo repository.ColaboradorRepository, emprestimoRepo repository.EmprestimoRepository) ColaboradorService {
	return &colaboradorService{repo: repo, emprestimoRepo: emprestimoRepo}
}

func (s *colaboradorService) Criar(ctx context.Context, req dto.CriarColaboradorRequest) (*dto.ColaboradorResponse, error) {
	if _, err := s.repo.FindByEmail(ctx, req.Email); err == nil {
		return nil, ErrEmailJaCadastrado
	}
	colaborador := &model.Colaborador{
		Nome:   req.Nome,
		Email:  req.Email,
		Funcao: req.Funcao,
	}
	if err := s.repo.Create(ctx, colaborador); err != nil {
		return nil, err
	}
	return colaboradorToResponse(colaborador), nil
}

func (s *colaboradorService) ObterPorID(ctx context.Context, id uuid.UUID) (*dto.ColaboradorResponse, error) {
	colaborador, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.New("colaborador não encontrado")
	}
	return colaboradorToResponse(colaborador), nil
}

func (s *colaboradorService) Listar(ctx context.Context, filter dto.ColaboradorFilter) (*dto.ColaboradorListResponse, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = 20
	}
	colaboradores, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ColaboradorResponse, 0, len(colaboradores))
	for i := range colaboradores {
		items = append(items, *colaboradorToResponse(&colaboradores[i]))
	}
	return &dto.ColaboradorListResponse{
		Data:  items,
		Total: total,
		Page:  filter.Page,
		Limit: filter.Limit,
	}, nil
}

func (s *colaboradorService) Atualizar(ctx context.Context, id uuid.UUID, req dto.AtualizarColaboradorRequest) (*dto.ColaboradorResponse, error) {
	colaborador, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.New("colaborador não encontrado")
	}
	if req.Email != nil && *req.Email != colaborador.Email {
		if _, err := s.repo.FindByEmail(ctx, *req.Email); err == nil {
			return nil, ErrEmailJaCadastrado
		}
		colaborador.Email = *req.Email
	}
	if req.Nome != nil {
		colaborador.Nome = *req.Nome
	}
	if req.Funcao != nil {
		colaborador.Funcao = req.Funcao
	}
	if err := s.repo.Update(ctx, colaborador); err != nil {
		return nil, err
	}
	return colaboradorToResponse(colaborador), nil
}

// Excluir fails with a referential-integrity error while any emprestimo
// references the colaborador; active and returned loans both block deletion.
func (s *colaboradorService) Excluir(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return errors.New("colaborador não encontrado")
	}
	n, err := s.emprestimoRepo.CountByColaborador(ctx, id)
	if err != nil {
		return err
	}
	if n > 0 {
		return ErrColaboradorComEmprestimos
	}
	return s.repo.Delete(ctx, id)
}

func colaboradorToResponse(c *model.Colaborador) *dto.ColaboradorResponse {
	return &dto.ColaboradorResponse{
		ID:     c.ID.String(),
		Nome:   c.Nome,
		Email:  c.Email,
		Funcao: c.Funcao,
	}
}
