package handler

import (
	"net/http"

	"github.com/Senai-SC-CTAI/sistema-epi-gabrielgv13/internal/apierror"
	"github.com/Senai-SC-CTAI/sistema-epi-gabrielgv13/internal/dto"
	"github.com/Senai-SC-CTAI/sistema-epi-gabrielgv13/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type EmprestimosHandler struct{ svc service.EmprestimoService }

func NewEmprestimosHandler(svc service.EmprestimoService) *EmprestimosHandler {
	return &EmprestimosHandler{svc: svc}
}

func (h *EmprestimosHandler) Criar(c *gin.Context) {
	var req dto.CriarEmprestimoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Criar(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *EmprestimosHandler) Listar(c *gin.Context) {
	var filter dto.EmprestimoFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	resp, err := h.svc.Listar(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Erro ao listar empréstimos"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *EmprestimosHandler) ObterPorID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID inválido"))
		return
	}
	resp, err := h.svc.ObterPorID(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, apierror.New("Empréstimo não encontrado"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Devolver flips an active loan to DEVOLVIDO and credits the stock back.
func (h *EmprestimosHandler) Devolver(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID inválido"))
		return
	}
	resp, err := h.svc.Devolver(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *EmprestimosHandler) Excluir(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID inválido"))
		return
	}
	if err := h.svc.Excluir(c.Request.Context(), id); err != nil {
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ── Historico Handler ────────────────────────────────────────────────────────

type HistoricoHandler struct{ svc service.EmprestimoService }

func NewHistoricoHandler(svc service.EmprestimoService) *HistoricoHandler {
	return &HistoricoHandler{svc: svc}
}

// Listar returns all returned loans, most recent return first.
func (h *HistoricoHandler) Listar(c *gin.Context) {
	items, err := h.svc.Historico(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Erro ao consultar histórico"))
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": items, "total": len(items)})
}
