package repository

import (
	"context"
	"errors"

	"github.com/Senai-SC-CTAI/sistema-epi-gabrielgv13/internal/dto"
	"github.com/Senai-SC-CTAI/sistema-epi-gabrielgv13/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ErrEstoqueNegativo is returned by AjustarEstoqueTx when the requested delta
// would drive the stock counter below zero. The write is not performed.
var ErrEstoqueNegativo = errors.New("ajuste rejeitado: estoque resultante seria negativo")

// EquipamentoRepository defines the data access contract for EPI items.
// Services depend on this interface, not on the concrete GORM implementation,
// enabling clean unit testing via in-memory stubs.
type EquipamentoRepository interface {
	Create(ctx context.Context, e *model.Equipamento) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Equipamento, error)
	List(ctx context.Context, filter dto.EquipamentoFilter) ([]model.Equipamento, int64, error)
	Update(ctx context.Context, e *model.Equipamento) error
	Delete(ctx context.Context, id uuid.UUID) error

	// FindByIDForUpdateTx reads the equipment row with a FOR UPDATE lock.
	// Callers must pass a live transaction so the stock-sufficiency check and
	// the subsequent delta are serialized per equipment row.
	FindByIDForUpdateTx(tx *gorm.DB, id uuid.UUID) (*model.Equipamento, error)

	// AjustarEstoqueTx is the ONLY operation that mutates quantidade.
	// It applies the delta atomically and fails closed with ErrEstoqueNegativo
	// when the resulting stock would be negative.
	AjustarEstoqueTx(tx *gorm.DB, id uuid.UUID, delta int) error

	// DB exposes the underlying *gorm.DB so services can open transactions.
	DB() *gorm.DB
}

type equipamentoRepo struct{ db *gorm.DB }

func NewEquipamentoRepository(db *gorm.DB) EquipamentoRepository {
	return &equipamentoRepo{db: db}
}

func (r *equipamentoRepo) Create(ctx context.Context, e *model.Equipamento) error {
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *equipamentoRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Equipamento, error) {
	var e model.Equipamento
	err := r.db.WithContext(ctx).First(&e, "id = ?", id).Error
	return &e, err
}

func (r *equipamentoRepo) List(ctx context.Context, filter dto.EquipamentoFilter) ([]model.Equipamento, int64, error) {
	var equipamentos []model.Equipamento
	var total int64

	q := r.db.WithContext(ctx).Model(&model.Equipamento{})
	if filter.Nome != "" {
		q = q.Where("nome ILIKE ?", "%"+filter.Nome+"%")
	}
	if filter.Marca != "" {
		q = q.Where("marca ILIKE ?", "%"+filter.Marca+"%")
	}

	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (filter.Page - 1) * filter.Limit
	err := q.Order("nome ASC").Limit(filter.Limit).Offset(offset).Find(&equipamentos).Error
	return equipamentos, total, err
}

func (r *equipamentoRepo) Update(ctx context.Context, e *model.Equipamento) error {
	return r.db.WithContext(ctx).Save(e).Error
}

func (r *equipamentoRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Equipamento{}, "id = ?", id).Error
}

func (r *equipamentoRepo) FindByIDForUpdateTx(tx *gorm.DB, id uuid.UUID) (*model.Equipamento, error) {
	var e model.Equipamento
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&e, "id = ?", id).Error
	return &e, err
}

func (r *equipamentoRepo) AjustarEstoqueTx(tx *gorm.DB, id uuid.UUID, delta int) error {
	res := tx.Model(&model.Equipamento{}).
		Where("id = ? AND quantidade + ? >= 0", id, delta).
		Update("quantidade", gorm.Expr("quantidade + ?", delta))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrEstoqueNegativo
	}
	return nil
}

func (r *equipamentoRepo) DB() *gorm.DB { return r.db }
