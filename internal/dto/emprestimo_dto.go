package dto

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CriarEmprestimoRequest struct {
	ColaboradorID string `json:"colaborador_id" validate:"required,uuid"`
	EquipamentoID string `json:"equipamento_id" validate:"required,uuid"`
	// Business minimum (quantidade >= 1) is validated in the service so the
	// caller gets the domain message, not a bare validator tag.
	Quantidade int `json:"quantidade"`
}

// ─── Filter / Pagination ─────────────────────────────────────────────────────

type EmprestimoFilter struct {
	Status        string `form:"status"         validate:"omitempty,oneof=EMPRESTADO DEVOLVIDO"`
	ColaboradorID string `form:"colaborador_id" validate:"omitempty,uuid"`
	EquipamentoID string `form:"equipamento_id" validate:"omitempty,uuid"`
	Page          int    `form:"page,default=1"   validate:"min=1"`
	Limit         int    `form:"limit,default=20" validate:"min=1,max=100"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type EmprestimoResponse struct {
	ID                string  `json:"id"`
	ColaboradorID     string  `json:"colaborador_id"`
	Colaborador       string  `json:"colaborador"`
	EquipamentoID     string  `json:"equipamento_id"`
	Equipamento       string  `json:"equipamento"`
	Quantidade        int     `json:"quantidade"`
	DataEmprestimo    string  `json:"data_emprestimo"`
	DataPrazo         string  `json:"data_prazo"`
	DataDevolucaoReal *string `json:"data_devolucao_real"`
	EstoqueDisponivel int     `json:"estoque_disponivel"`
	Status            string  `json:"status"`
}

type EmprestimoListResponse struct {
	Data  []EmprestimoResponse `json:"data"`
	Total int64                `json:"total"`
	Page  int                  `json:"page"`
	Limit int                  `json:"limit"`
}

// HistoricoItemResponse is one row of the returned-loans history view.
// Dates are pre-formatted DD/MM/YYYY HH:MM in local time, "-" when unset.
type HistoricoItemResponse struct {
	ID             string `json:"id"`
	Colaborador    string `json:"colaborador"`
	Equipamento    string `json:"equipamento"`
	Quantidade     int    `json:"quantidade"`
	DataEmprestimo string `json:"data_emprestimo"`
	DataPrazo      string `json:"data_prazo"`
	DataDevolucao  string `json:"data_devolucao"`
	Status         string `json:"status"`
}
