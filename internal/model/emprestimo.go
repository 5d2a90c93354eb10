package model

import (
	"time"

	"github.com/google/uuid"
)

// Loan lifecycle: created as EMPRESTADO, transitions once to DEVOLVIDO.
// Either state admits deletion, which removes the record permanently.
const (
	StatusEmprestado = "EMPRESTADO"
	StatusDevolvido  = "DEVOLVIDO"
)

// StatusLabel maps a status constant to its display label.
func StatusLabel(status string) string {
	switch status {
	case StatusEmprestado:
		return "Emprestado"
	case StatusDevolvido:
		return "Devolvido"
	}
	return status
}

// Emprestimo links a colaborador, an equipamento and a reserved quantity.
// EstoqueDisponivel is the equipment stock recorded immediately after this
// loan's creation. It is advisory bookkeeping only; current availability is always
// read from Equipamento.Quantidade.
type Emprestimo struct {
	ID                uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ColaboradorID     uuid.UUID `gorm:"type:uuid;not null;index"`
	EquipamentoID     uuid.UUID `gorm:"type:uuid;not null;index"`
	Quantidade        int       `gorm:"not null"`
	DataEmprestimo    time.Time `gorm:"not null"`
	DataPrazo         time.Time `gorm:"not null"`
	DataDevolucaoReal *time.Time
	EstoqueDisponivel int    `gorm:"not null"`
	Status            string `gorm:"type:varchar(20);not null;index"`
	CreatedAt         time.Time
	UpdatedAt         time.Time

	Colaborador *Colaborador `gorm:"foreignKey:ColaboradorID"`
	Equipamento *Equipamento `gorm:"foreignKey:EquipamentoID"`
}
