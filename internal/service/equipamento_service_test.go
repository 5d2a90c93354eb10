package service

import (
	"context"
	"testing"

	"github.com/Senai-SC-CTAI/sistema-epi-gabrielgv13/internal/dto"
	"github.com/Senai-SC-CTAI/sistema-epi-gabrielgv13/internal/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCriarEquipamentoQuantidadeMinima(t *testing.T) {
	eq := newFakeEquipamentoRepo()
	svc := NewEquipamentoService(eq, newFakeEmprestimoRepo(eq, newFakeColaboradorRepo()))

	_, err := svc.Criar(context.Background(), dto.CriarEquipamentoRequest{
		Nome: "Luva", Marca: "Ansell", Quantidade: 0,
	})

	assert.ErrorIs(t, err, ErrQuantidadeEstoqueMinima)
	assert.Equal(t, "A quantidade mínima em estoque é 1.", err.Error())
}

func TestCriarEquipamento(t *testing.T) {
	eq := newFakeEquipamentoRepo()
	svc := NewEquipamentoService(eq, newFakeEmprestimoRepo(eq, newFakeColaboradorRepo()))

	resp, err := svc.Criar(context.Background(), dto.CriarEquipamentoRequest{
		Nome: "Luva", Marca: "Ansell", Quantidade: 50,
	})

	require.NoError(t, err)
	assert.Equal(t, "Luva", resp.Nome)
	assert.Equal(t, 50, resp.Quantidade)
}

func TestAtualizarEquipamentoEstoqueNegativoRejeitado(t *testing.T) {
	eq := newFakeEquipamentoRepo()
	id := eq.seed("Capacete", "3M", 10)
	svc := NewEquipamentoService(eq, newFakeEmprestimoRepo(eq, newFakeColaboradorRepo()))

	negativo := -1
	_, err := svc.Atualizar(context.Background(), id, dto.AtualizarEquipamentoRequest{Quantidade: &negativo})

	assert.ErrorIs(t, err, repository.ErrEstoqueNegativo)
	assert.Equal(t, 10, eq.estoque(id))
}

func TestAtualizarEquipamentoPermiteZerarEstoque(t *testing.T) {
	eq := newFakeEquipamentoRepo()
	id := eq.seed("Capacete", "3M", 10)
	svc := NewEquipamentoService(eq, newFakeEmprestimoRepo(eq, newFakeColaboradorRepo()))

	zero := 0
	resp, err := svc.Atualizar(context.Background(), id, dto.AtualizarEquipamentoRequest{Quantidade: &zero})

	require.NoError(t, err)
	assert.Equal(t, 0, resp.Quantidade)
}

func TestExcluirEquipamentoComEmprestimosBloqueado(t *testing.T) {
	eq := newFakeEquipamentoRepo()
	col := newFakeColaboradorRepo()
	emp := newFakeEmprestimoRepo(eq, col)

	equipamentoID := eq.seed("Capacete", "3M", 10)
	colaboradorID := col.seed("Maria", "maria@empresa.com")

	emprestimoSvc := NewEmprestimoService(emp, eq, col, 7, nil)
	criado, err := emprestimoSvc.Criar(context.Background(), dto.CriarEmprestimoRequest{
		ColaboradorID: colaboradorID.String(),
		EquipamentoID: equipamentoID.String(),
		Quantidade:    1,
	})
	require.NoError(t, err)

	svc := NewEquipamentoService(eq, emp)
	err = svc.Excluir(context.Background(), equipamentoID)
	assert.ErrorIs(t, err, ErrEquipamentoComEmprestimos)

	// The guard holds even after the loan is returned.
	_, err = emprestimoSvc.Devolver(context.Background(), uuid.MustParse(criado.ID))
	require.NoError(t, err)
	err = svc.Excluir(context.Background(), equipamentoID)
	assert.ErrorIs(t, err, ErrEquipamentoComEmprestimos)
}

func TestExcluirEquipamentoSemEmprestimos(t *testing.T) {
	eq := newFakeEquipamentoRepo()
	id := eq.seed("Capacete", "3M", 10)
	svc := NewEquipamentoService(eq, newFakeEmprestimoRepo(eq, newFakeColaboradorRepo()))

	require.NoError(t, svc.Excluir(context.Background(), id))

	_, err := svc.ObterPorID(context.Background(), id)
	assert.Error(t, err)
}
