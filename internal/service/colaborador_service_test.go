package service

import (
	"context"
	"testing"

	"github.com/Senai-SC-CTAI/sistema-epi-gabrielgv13/internal/dto"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCriarColaboradorEmailDuplicado(t *testing.T) {
	col := newFakeColaboradorRepo()
	col.seed("Maria", "maria@empresa.com")
	svc := NewColaboradorService(col, newFakeEmprestimoRepo(newFakeEquipamentoRepo(), col))

	_, err := svc.Criar(context.Background(), dto.CriarColaboradorRequest{
		Nome: "Outra Maria", Email: "maria@empresa.com",
	})

	assert.ErrorIs(t, err, ErrEmailJaCadastrado)
	assert.Equal(t, "Email já cadastrado.", err.Error())
}

func TestAtualizarColaboradorEmailDeOutroRejeitado(t *testing.T) {
	col := newFakeColaboradorRepo()
	col.seed("Maria", "maria@empresa.com")
	joaoID := col.seed("João", "joao@empresa.com")
	svc := NewColaboradorService(col, newFakeEmprestimoRepo(newFakeEquipamentoRepo(), col))

	email := "maria@empresa.com"
	_, err := svc.Atualizar(context.Background(), joaoID, dto.AtualizarColaboradorRequest{Email: &email})

	assert.ErrorIs(t, err, ErrEmailJaCadastrado)
}

func TestAtualizarColaboradorMantendoProprioEmail(t *testing.T) {
	col := newFakeColaboradorRepo()
	id := col.seed("Maria", "maria@empresa.com")
	svc := NewColaboradorService(col, newFakeEmprestimoRepo(newFakeEquipamentoRepo(), col))

	nome := "Maria Souza"
	email := "maria@empresa.com"
	resp, err := svc.Atualizar(context.Background(), id, dto.AtualizarColaboradorRequest{
		Nome: &nome, Email: &email,
	})

	require.NoError(t, err)
	assert.Equal(t, "Maria Souza", resp.Nome)
}

func TestExcluirColaboradorComEmprestimosBloqueado(t *testing.T) {
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

	svc := NewColaboradorService(col, emp)
	err = svc.Excluir(context.Background(), colaboradorID)
	assert.ErrorIs(t, err, ErrColaboradorComEmprestimos)

	// Returned loans still reference the colaborador and keep blocking.
	_, err = emprestimoSvc.Devolver(context.Background(), uuid.MustParse(criado.ID))
	require.NoError(t, err)
	err = svc.Excluir(context.Background(), colaboradorID)
	assert.ErrorIs(t, err, ErrColaboradorComEmprestimos)
}

func TestExcluirColaboradorSemEmprestimos(t *testing.T) {
	col := newFakeColaboradorRepo()
	id := col.seed("Maria", "maria@empresa.com")
	svc := NewColaboradorService(col, newFakeEmprestimoRepo(newFakeEquipamentoRepo(), col))

	require.NoError(t, svc.Excluir(context.Background(), id))

	_, err := svc.ObterPorID(context.Background(), id)
	assert.Error(t, err)
}
