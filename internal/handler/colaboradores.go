package handler

import (
	"net/http"

	"github.com/Senai-SC-CTAI/sistema-epi-gabrielgv13/internal/apierror"
	"github.com/Senai-SC-CTAI/sistema-epi-gabrielgv13/internal/dto"
	"github.com/Senai-SC-CTAI/sistema-epi-gabrielgv13/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ColaboradoresHandler struct{ svc service.ColaboradorService }

func NewColaboradoresHandler(svc service.ColaboradorService) *ColaboradoresHandler {
	return &ColaboradoresHandler{svc: svc}
}

func (h *ColaboradoresHandler) Criar(c *gin.Context) {
	var req dto.CriarColaboradorRequest
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

func (h *ColaboradoresHandler) Listar(c *gin.Context) {
	var filter dto.ColaboradorFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	resp, err := h.svc.Listar(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Erro ao listar colaboradores"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ColaboradoresHandler) ObterPorID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID inválido"))
		return
	}
	resp, err := h.svc.ObterPorID(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, apierror.New("Colaborador não encontrado"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ColaboradoresHandler) Atualizar(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID inválido"))
		return
	}
	var req dto.AtualizarColaboradorRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Atualizar(c.Request.Context(), id, req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ColaboradoresHandler) Excluir(c *gin.Context) {
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
