package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Senai-SC-CTAI/sistema-epi-gabrielgv13/internal/dto"
	"github.com/Senai-SC-CTAI/sistema-epi-gabrielgv13/internal/model"
	"github.com/Senai-SC-CTAI/sistema-epi-gabrielgv13/internal/repository"
	"github.com/Senai-SC-CTAI/sistema-epi-gabrielgv13/internal/worker"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	// ErrEmprestimoJaDevolvido rejects a second return of the same loan.
	ErrEmprestimoJaDevolvido = errors.New("o empréstimo já foi devolvido")
	// ErrQuantidadeMinima is the user-facing message for zero or negative quantities.
	ErrQuantidadeMinima = errors.New("A quantidade mínima para empréstimo é 1")
)

// EstoqueInsuficienteError reports a loan request that exceeds the current
// stock; it carries the stock observed at validation time so the caller can
// display it.
type EstoqueInsuficienteError struct{ EstoqueAtual int }

func (e *EstoqueInsuficienteError) Error() string {
	return fmt.Sprintf("Quantidade indisponível. Estoque atual: %d", e.EstoqueAtual)
}

type EmprestimoService interface {
	Criar(ctx context.Context, req dto.CriarEmprestimoRequest) (*dto.EmprestimoResponse, error)
	Devolver(ctx context.Context, id uuid.UUID) (*dto.EmprestimoResponse, error)
	Excluir(ctx context.Context, id uuid.UUID) error
	ObterPorID(ctx context.Context, id uuid.UUID) (*dto.EmprestimoResponse, error)
	Listar(ctx context.Context, filter dto.EmprestimoFilter) (*dto.EmprestimoListResponse, error)
	Historico(ctx context.Context) ([]dto.HistoricoItemResponse, error)
}

type emprestimoService struct {
	repo            repository.EmprestimoRepository
	equipamentoRepo repository.EquipamentoRepository
	colaboradorRepo repository.ColaboradorRepository
	prazoDias       int
	dispatcher      *worker.Dispatcher
}

func NewEmprestimoService(
	repo repository.EmprestimoRepository,
	equipamentoRepo repository.EquipamentoRepository,
	colaboradorRepo repository.ColaboradorRepository,
	prazoDias int,
	dispatcher *worker.Dispatcher,
) EmprestimoService {
	return &emprestimoService{
		repo:            repo,
		equipamentoRepo: equipamentoRepo,
		colaboradorRepo: colaboradorRepo,
		prazoDias:       prazoDias,
		dispatcher:      dispatcher,
	}
}

// runTx executes fn inside a GORM transaction when db is available,
// or calls fn(nil) directly when db is nil (unit test mode).
func runTx(ctx context.Context, db *gorm.DB, fn func(tx *gorm.DB) error) error {
	if db == nil {
		return fn(nil)
	}
	return db.WithContext(ctx).Transaction(fn)
}

// ── Criar ─────────────────────────────────────────────────────────────────────
// The stock check and decrement form one atomic unit: the equipment row is
// locked FOR UPDATE inside the transaction, so two concurrent creations against
// the same equipment cannot both pass the sufficiency check.

func (s *emprestimoService) Criar(ctx context.Context, req dto.CriarEmprestimoRequest) (*dto.EmprestimoResponse, error) {
	if req.Quantidade < 1 {
		return nil, ErrQuantidadeMinima
	}
	colaboradorID, err := uuid.Parse(req.ColaboradorID)
	if err != nil {
		return nil, fmt.Errorf("colaborador_id inválido: %w", err)
	}
	equipamentoID, err := uuid.Parse(req.EquipamentoID)
	if err != nil {
		return nil, fmt.Errorf("equipamento_id inválido: %w", err)
	}

	colaborador, err := s.colaboradorRepo.FindByID(ctx, colaboradorID)
	if err != nil {
		return nil, errors.New("colaborador não encontrado")
	}

	var emprestimo model.Emprestimo
	var equipamento *model.Equipamento
	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		equipamento, err = s.equipamentoRepo.FindByIDForUpdateTx(tx, equipamentoID)
		if err != nil {
			return errors.New("equipamento não encontrado")
		}

		// Boundary: requesting exactly the current stock is allowed.
		if req.Quantidade > equipamento.Quantidade {
			return &EstoqueInsuficienteError{EstoqueAtual: equipamento.Quantidade}
		}

		if err := s.equipamentoRepo.AjustarEstoqueTx(tx, equipamentoID, -req.Quantidade); err != nil {
			return err
		}

		agora := time.Now()
		emprestimo = model.Emprestimo{
			ColaboradorID:     colaboradorID,
			EquipamentoID:     equipamentoID,
			Quantidade:        req.Quantidade,
			DataEmprestimo:    agora,
			DataPrazo:         CalcularPrazo(agora, s.prazoDias),
			EstoqueDisponivel: equipamento.Quantidade - req.Quantidade,
			Status:            model.StatusEmprestado,
		}
		return s.repo.CreateTx(tx, &emprestimo)
	})
	if txErr != nil {
		return nil, txErr
	}

	emprestimo.Colaborador = colaborador
	emprestimo.Equipamento = equipamento
	// Post-commit stock view for the response.
	emprestimo.Equipamento.Quantidade = emprestimo.EstoqueDisponivel

	s.notificar(ctx, &emprestimo, "Empréstimo de EPI registrado")

	return emprestimoToResponse(&emprestimo), nil
}

// ── Devolver ──────────────────────────────────────────────────────────────────
// Terminal transition EMPRESTADO → DEVOLVIDO. Credits the reserved quantity
// back in the same transaction that flips the status. Snapshots of other
// active loans are deliberately left untouched: availability is derived from
// Equipamento.Quantidade on demand.

func (s *emprestimoService) Devolver(ctx context.Context, id uuid.UUID) (*dto.EmprestimoResponse, error) {
	var emprestimo *model.Emprestimo
	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		var err error
		emprestimo, err = s.repo.FindByIDTx(tx, id)
		if err != nil {
			return errors.New("empréstimo não encontrado")
		}
		if emprestimo.Status != model.StatusEmprestado {
			return ErrEmprestimoJaDevolvido
		}

		agora := time.Now()
		emprestimo.Status = model.StatusDevolvido
		emprestimo.DataDevolucaoReal = &agora
		if err := s.repo.UpdateTx(tx, emprestimo); err != nil {
			return err
		}
		return s.equipamentoRepo.AjustarEstoqueTx(tx, emprestimo.EquipamentoID, emprestimo.Quantidade)
	})
	if txErr != nil {
		return nil, txErr
	}

	if full, err := s.repo.FindByID(ctx, id); err == nil {
		emprestimo = full
	}
	s.notificar(ctx, emprestimo, "Devolução de EPI registrada")

	return emprestimoToResponse(emprestimo), nil
}

// ── Excluir ───────────────────────────────────────────────────────────────────
// Permanent removal. A still-active loan has its reservation credited back
// first (same stock effect as a return); an already-returned loan was credited
// on return and must not be credited twice.

func (s *emprestimoService) Excluir(ctx context.Context, id uuid.UUID) error {
	return runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		emprestimo, err := s.repo.FindByIDTx(tx, id)
		if err != nil {
			return errors.New("empréstimo não encontrado")
		}
		if emprestimo.Status == model.StatusEmprestado {
			if err := s.equipamentoRepo.AjustarEstoqueTx(tx, emprestimo.EquipamentoID, emprestimo.Quantidade); err != nil {
				return err
			}
		}
		return s.repo.DeleteTx(tx, id)
	})
}

func (s *emprestimoService) ObterPorID(ctx context.Context, id uuid.UUID) (*dto.EmprestimoResponse, error) {
	emprestimo, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.New("empréstimo não encontrado")
	}
	return emprestimoToResponse(emprestimo), nil
}

func (s *emprestimoService) Listar(ctx context.Context, filter dto.EmprestimoFilter) (*dto.EmprestimoListResponse, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = 20
	}
	emprestimos, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	items := make([]dto.EmprestimoResponse, 0, len(emprestimos))
	for i := range emprestimos {
		items = append(items, *emprestimoToResponse(&emprestimos[i]))
	}
	return &dto.EmprestimoListResponse{
		Data:  items,
		Total: total,
		Page:  filter.Page,
		Limit: filter.Limit,
	}, nil
}

// Historico projects the returned loans, most recent return first. Deleted
// loans are gone from the ledger and therefore never appear here.
func (s *emprestimoService) Historico(ctx context.Context) ([]dto.HistoricoItemResponse, error) {
	emprestimos, err := s.repo.ListDevolvidos(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.HistoricoItemResponse, 0, len(emprestimos))
	for i := range emprestimos {
		e := &emprestimos[i]
		devolucao := "-"
		if e.DataDevolucaoReal != nil {
			devolucao = FormatarDataLocal(*e.DataDevolucaoReal)
		}
		items = append(items, dto.HistoricoItemResponse{
			ID:             e.ID.String(),
			Colaborador:    nomeColaborador(e),
			Equipamento:    nomeEquipamento(e),
			Quantidade:     e.Quantidade,
			DataEmprestimo: FormatarDataLocal(e.DataEmprestimo),
			DataPrazo:      FormatarDataLocal(e.DataPrazo),
			DataDevolucao:  devolucao,
			Status:         model.StatusLabel(e.Status),
		})
	}
	return items, nil
}

// notificar enqueues a receipt email to the colaborador. Best-effort: the
// loan transaction has already committed and never depends on this.
func (s *emprestimoService) notificar(ctx context.Context, e *model.Emprestimo, assunto string) {
	if s.dispatcher == nil || e.Colaborador == nil {
		return
	}
	corpo := fmt.Sprintf(
		"Olá %s,\n\n%s: %d x %s.\nPrazo de devolução: %s.\n",
		e.Colaborador.Nome, assunto, e.Quantidade, nomeEquipamento(e),
		FormatarDataLocal(e.DataPrazo),
	)
	_ = s.dispatcher.EnqueueEmail(ctx, worker.EmailJobPayload{
		ToEmail: e.Colaborador.Email,
		Subject: assunto,
		Body:    corpo,
	})
}

func nomeColaborador(e *model.Emprestimo) string {
	if e.Colaborador != nil {
		return e.Colaborador.Nome
	}
	return ""
}

func nomeEquipamento(e *model.Emprestimo) string {
	if e.Equipamento != nil {
		return e.Equipamento.Nome
	}
	return ""
}

func emprestimoToResponse(e *model.Emprestimo) *dto.EmprestimoResponse {
	var devolucao *string
	if e.DataDevolucaoReal != nil {
		d := FormatarDataLocal(*e.DataDevolucaoReal)
		devolucao = &d
	}
	return &dto.EmprestimoResponse{
		ID:                e.ID.String(),
		ColaboradorID:     e.ColaboradorID.String(),
		Colaborador:       nomeColaborador(e),
		EquipamentoID:     e.EquipamentoID.String(),
		Equipamento:       nomeEquipamento(e),
		Quantidade:        e.Quantidade,
		DataEmprestimo:    FormatarDataLocal(e.DataEmprestimo),
		DataPrazo:         FormatarDataLocal(e.DataPrazo),
		DataDevolucaoReal: devolucao,
		EstoqueDisponivel: e.EstoqueDisponivel,
		Status:            e.Status,
	}
}
