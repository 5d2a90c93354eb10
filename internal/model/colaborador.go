package model

import (
	"time"

	"github.com/google/uuid"
)

// Colaborador is an employee who can borrow EPI.
// Deletion is blocked while any emprestimo references the colaborador,
// regardless of the loan's status.
type Colaborador struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Nome      string    `gorm:"not null"`
	Email     string    `gorm:"uniqueIndex;not null"`
	Funcao    *string
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Colaborador) TableName() string { return "colaboradores" }
