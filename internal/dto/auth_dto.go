package dto

type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

type LoginResponse struct {
	AccessToken  string          `json:"access_token"`
	RefreshToken string          `json:"refresh_token"`
	TokenType    string          `json:"token_type"`
	ExpiresIn    int             `json:"expires_in"`
	User         UsuarioResponse `json:"user"`
}

// RegistrarRequest is the self-registration payload. The password must be
// confirmed; mismatches are rejected before any persistence.
type RegistrarRequest struct {
	Nome            string `json:"nome"              validate:"required,min=2,max=120"`
	Email           string `json:"email"             validate:"required,email"`
	Password        string `json:"password"          validate:"required,min=6"`
	ConfirmPassword string `json:"confirm_password"  validate:"required"`
}

type CriarUsuarioRequest struct {
	Nome     string `json:"nome"     validate:"required,min=2,max=120"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Rol      string `json:"rol"      validate:"required,oneof=operador administrador"`
}

type AtualizarUsuarioRequest struct {
	Nome     string `json:"nome"     validate:"omitempty,min=2,max=120"`
	Password string `json:"password" validate:"omitempty,min=6"`
	Rol      string `json:"rol"      validate:"omitempty,oneof=operador administrador"`
}

type UsuarioResponse struct {
	ID    string `json:"id"`
	Nome  string `json:"nome"`
	Email string `json:"email"`
	Rol   string `json:"rol"`
	Ativo bool   `json:"ativo"`
}
