package dto

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CriarEquipamentoRequest struct {
	Nome  string `json:"nome"  validate:"required,min=2,max=120"`
	Marca string `json:"marca" validate:"required,min=1,max=120"`
	// Business minimum (quantidade >= 1) is validated in the service so the
	// caller gets the domain message, not a bare validator tag.
	Quantidade int `json:"quantidade"`
}

type AtualizarEquipamentoRequest struct {
	Nome  *string `json:"nome"  validate:"omitempty,min=2,max=120"`
	Marca *string `json:"marca" validate:"omitempty,min=1,max=120"`
	// Direct stock edit: min=0 so an admin can zero the stock but never
	// drive it negative.
	Quantidade *int `json:"quantidade" validate:"omitempty,min=0"`
}

// ─── Filter / Pagination ─────────────────────────────────────────────────────

type EquipamentoFilter struct {
	Nome  string `form:"nome"`
	Marca string `form:"marca"`
	Page  int    `form:"page,default=1"   validate:"min=1"`
	Limit int    `form:"limit,default=20" validate:"min=1,max=100"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type EquipamentoResponse struct {
	ID         string `json:"id"`
	Nome       string `json:"nome"`
	Marca      string `json:"marca"`
	Quantidade int    `json:"quantidade"`
}

type EquipamentoListResponse struct {
	Data  []EquipamentoResponse `json:"data"`
	Total int64                 `json:"total"`
	Page  int                   `json:"page"`
	Limit int                   `json:"limit"`
}
