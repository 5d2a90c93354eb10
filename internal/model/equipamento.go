package model

import (
	"time"

	"github.com/google/uuid"
)

// Equipamento is a loanable EPI item (helmet, gloves, boots, …).
// Quantidade is the live available stock; every loan lifecycle transition
// adjusts it through EquipamentoRepository.AjustarEstoqueTx, never directly.
type Equipamento struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Nome       string    `gorm:"index;not null"`
	Marca      string    `gorm:"not null"`
	Quantidade int       `gorm:"not null;check:quantidade >= 0"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
