package service

import (
	"context"
	"encoding/csv"
	"io"
	"strconv"

	"github.com/Senai-SC-CTAI/sistema-epi-gabrielgv13/internal/infra"
	"github.com/Senai-SC-CTAI/sistema-epi-gabrielgv13/internal/model"
	"github.com/Senai-SC-CTAI/sistema-epi-gabrielgv13/internal/repository"
)

// csvHeader defines the movement report columns, shared by CSV and PDF.
var csvHeader = []string{
	"ID",
	"Colaborador",
	"Equipamento",
	"Quantidade",
	"Data Empréstimo",
	"Data Prazo",
	"Data Devolução Real",
	"Estoque Disponível",
	"Status",
}

// RelatorioService produces the movement reports (every loan, most recent
// first) in CSV and PDF form. Read-only over the loan ledger.
type RelatorioService interface {
	MovimentacoesCSV(ctx context.Context, w io.Writer) error
	MovimentacoesPDF(ctx context.Context, w io.Writer) error
}

type relatorioService struct {
	emprestimoRepo repository.EmprestimoRepository
}

func NewRelatorioService(emprestimoRepo repository.EmprestimoRepository) RelatorioService {
	return &relatorioService{emprestimoRepo: emprestimoRepo}
}

// MovimentacoesCSV streams the report with a UTF-8 BOM so spreadsheet tools
// pick up the encoding, dates as DD/MM/YYYY HH:MM local time, and an empty
// string when the loan has not been returned.
func (s *relatorioService) MovimentacoesCSV(ctx context.Context, w io.Writer) error {
	emprestimos, err := s.emprestimoRepo.ListMovimentacoes(ctx)
	if err != nil {
		return err
	}

	if _, err := w.Write([]byte{0xEF, 0xBB, 0xBF}); err != nil {
		return err
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for i := range emprestimos {
		if err := cw.Write(movimentacaoRow(&emprestimos[i])); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func (s *relatorioService) MovimentacoesPDF(ctx context.Context, w io.Writer) error {
	emprestimos, err := s.emprestimoRepo.ListMovimentacoes(ctx)
	if err != nil {
		return err
	}
	rows := make([][]string, 0, len(emprestimos))
	for i := range emprestimos {
		rows = append(rows, movimentacaoRow(&emprestimos[i]))
	}
	return infra.GenerateMovimentacoesPDF(w, csvHeader, rows)
}

func movimentacaoRow(e *model.Emprestimo) []string {
	devolucao := ""
	if e.DataDevolucaoReal != nil {
		devolucao = FormatarDataLocal(*e.DataDevolucaoReal)
	}
	return []string{
		e.ID.String(),
		nomeColaborador(e),
		nomeEquipamento(e),
		strconv.Itoa(e.Quantidade),
		FormatarDataLocal(e.DataEmprestimo),
		FormatarDataLocal(e.DataPrazo),
		devolucao,
		strconv.Itoa(e.EstoqueDisponivel),
		model.StatusLabel(e.Status),
	}
}
