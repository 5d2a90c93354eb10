package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Senai-SC-CTAI/sistema-epi-gabrielgv13/internal/dto"
	"github.com/Senai-SC-CTAI/sistema-epi-gabrielgv13/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() { gin.SetMode(gin.TestMode) }

// stubEmprestimoService lets each test plug in just the method it exercises.
type stubEmprestimoService struct {
	criar    func(ctx context.Context, req dto.CriarEmprestimoRequest) (*dto.EmprestimoResponse, error)
	devolver func(ctx context.Context, id uuid.UUID) (*dto.EmprestimoResponse, error)
	excluir  func(ctx context.Context, id uuid.UUID) error
}

func (s *stubEmprestimoService) Criar(ctx context.Context, req dto.CriarEmprestimoRequest) (*dto.EmprestimoResponse, error) {
	return s.criar(ctx, req)
}

func (s *stubEmprestimoService) Devolver(ctx context.Context, id uuid.UUID) (*dto.EmprestimoResponse, error) {
	return s.devolver(ctx, id)
}

func (s *stubEmprestimoService) Excluir(ctx context.Context, id uuid.UUID) error {
	return s.excluir(ctx, id)
}

func (s *stubEmprestimoService) ObterPorID(context.Context, uuid.UUID) (*dto.EmprestimoResponse, error) {
	panic("not wired")
}

func (s *stubEmprestimoService) Listar(context.Context, dto.EmprestimoFilter) (*dto.EmprestimoListResponse, error) {
	panic("not wired")
}

func (s *stubEmprestimoService) Historico(context.Context) ([]dto.HistoricoItemResponse, error) {
	panic("not wired")
}

func setupEmprestimosRouter(svc service.EmprestimoService) *gin.Engine {
	r := gin.New()
	h := NewEmprestimosHandler(svc)
	r.POST("/v1/emprestimos", h.Criar)
	r.POST("/v1/emprestimos/:id/devolver", h.Devolver)
	r.DELETE("/v1/emprestimos/:id", h.Excluir)
	return r
}

func TestCriarEmprestimoEstoqueInsuficienteRetorna400(t *testing.T) {
	svc := &stubEmprestimoService{
		criar: func(context.Context, dto.CriarEmprestimoRequest) (*dto.EmprestimoResponse, error) {
			return nil, &service.EstoqueInsuficienteError{EstoqueAtual: 10}
		},
	}
	r := setupEmprestimosRouter(svc)

	body := `{"colaborador_id":"` + uuid.NewString() + `","equipamento_id":"` + uuid.NewString() + `","quantidade":15}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/v1/emprestimos", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Quantidade indisponível. Estoque atual: 10", resp["detail"])
}

func TestCriarEmprestimoPayloadInvalidoRetorna422(t *testing.T) {
	svc := &stubEmprestimoService{
		criar: func(context.Context, dto.CriarEmprestimoRequest) (*dto.EmprestimoResponse, error) {
			t.Fatal("serviço não deveria ser chamado")
			return nil, nil
		},
	}
	r := setupEmprestimosRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/v1/emprestimos", strings.NewReader(`{"quantidade":1}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestDevolverJaDevolvidoRetorna409(t *testing.T) {
	svc := &stubEmprestimoService{
		devolver: func(context.Context, uuid.UUID) (*dto.EmprestimoResponse, error) {
			return nil, service.ErrEmprestimoJaDevolvido
		},
	}
	r := setupEmprestimosRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/v1/emprestimos/"+uuid.NewString()+"/devolver", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestDevolverIDInvalidoRetorna400(t *testing.T) {
	r := setupEmprestimosRouter(&stubEmprestimoService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/v1/emprestimos/nao-e-uuid/devolver", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestExcluirEmprestimoRetorna204(t *testing.T) {
	svc := &stubEmprestimoService{
		excluir: func(context.Context, uuid.UUID) error { return nil },
	}
	r := setupEmprestimosRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/v1/emprestimos/"+uuid.NewString(), nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestExcluirEmprestimoInexistenteRetorna404(t *testing.T) {
	svc := &stubEmprestimoService{
		excluir: func(context.Context, uuid.UUID) error {
			return errNotFound("empréstimo não encontrado")
		},
	}
	r := setupEmprestimosRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/v1/emprestimos/"+uuid.NewString(), nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

type errNotFound string

func (e errNotFound) Error() string { return string(e) }
