package handler

import (
	"net/http"

	"github.com/Senai-SC-CTAI/sistema-epi-gabrielgv13/internal/apierror"
	"github.com/Senai-SC-CTAI/sistema-epi-gabrielgv13/internal/service"

	"github.com/gin-gonic/gin"
)

type RelatoriosHandler struct{ svc service.RelatorioService }

func NewRelatoriosHandler(svc service.RelatorioService) *RelatoriosHandler {
	return &RelatoriosHandler{svc: svc}
}

// MovimentacoesCSV streams the full loan movement report as a CSV download.
func (h *RelatoriosHandler) MovimentacoesCSV(c *gin.Context) {
	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", `attachment; filename="movimentacoes_emprestimos.csv"`)
	if err := h.svc.MovimentacoesCSV(c.Request.Context(), c.Writer); err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Erro ao gerar relatório CSV"))
		return
	}
}

// MovimentacoesPDF streams the same report as a PDF download.
func (h *RelatoriosHandler) MovimentacoesPDF(c *gin.Context) {
	c.Header("Content-Type", "application/pdf")
	c.Header("Content-Disposition", `attachment; filename="movimentacoes_emprestimos.pdf"`)
	if err := h.svc.MovimentacoesPDF(c.Request.Context(), c.Writer); err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Erro ao gerar relatório PDF"))
		return
	}
}
