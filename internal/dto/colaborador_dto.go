package dto

type CriarColaboradorRequest struct {
	Nome   string  `json:"nome"   validate:"required,min=2,max=120"`
	Email  string  `json:"email"  validate:"required,email"`
	Funcao *string `json:"funcao" validate:"omitempty,max=120"`
}

type AtualizarColaboradorRequest struct {
	Nome   *string `json:"nome"   validate:"omitempty,min=2,max=120"`
	Email  *string `json:"email"  validate:"omitempty,email"`
	Funcao *string `json:"funcao" validate:"omitempty,max=120"`
}

type ColaboradorFilter struct {
	Nome  string `form:"nome"`
	Page  int    `form:"page,default=1"   validate:"min=1"`
	Limit int    `form:"limit,default=20" validate:"min=1,max=100"`
}

type ColaboradorResponse struct {
	ID     string  `json:"id"`
	Nome   string  `json:"nome"`
	Email  string  `json:"email"`
	Funcao *string `json:"funcao"`
}

type ColaboradorListResponse struct {
	Data  []ColaboradorResponse `json:"data"`
	Total int64                 `json:"total"`
	Page  int                   `json:"page"`
	Limit int                   `json:"limit"`
}
