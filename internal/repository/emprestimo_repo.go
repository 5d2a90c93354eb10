package repository

import (
	"context"

	"github.com/Senai-SC-CTAI/sistema-epi-gabrielgv13/internal/dto"
	"github.com/Senai-SC-CTAI/sistema-epi-gabrielgv13/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type EmprestimoRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*model.Emprestimo, error)
	List(ctx context.Context, filter dto.EmprestimoFilter) ([]model.Emprestimo, int64, error)

	// ListDevolvidos feeds the history view: returned loans only, most recent
	// return first.
	ListDevolvidos(ctx context.Context) ([]model.Emprestimo, error)

	// ListMovimentacoes feeds the CSV/PDF reports: every loan, most recent
	// loan date first.
	ListMovimentacoes(ctx context.Context) ([]model.Emprestimo, error)

	CountByColaborador(ctx context.Context, colaboradorID uuid.UUID) (int64, error)
	CountByEquipamento(ctx context.Context, equipamentoID uuid.UUID) (int64, error)

	// Used inside transactions; callers must pass the tx instance
	CreateTx(tx *gorm.DB, e *model.Emprestimo) error
	FindByIDTx(tx *gorm.DB, id uuid.UUID) (*model.Emprestimo, error)
	UpdateTx(tx *gorm.DB, e *model.Emprestimo) error
	DeleteTx(tx *gorm.DB, id uuid.UUID) error

	// DB exposes the underlying *gorm.DB so services can open transactions.
	DB() *gorm.DB
}

type emprestimoRepo struct{ db *gorm.DB }

func NewEmprestimoRepository(db *gorm.DB) EmprestimoRepository {
	return &emprestimoRepo{db: db}
}

func (r *emprestimoRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Emprestimo, error) {
	var e model.Emprestimo
	err := r.db.WithContext(ctx).
		Preload("Colaborador").Preload("Equipamento").
		First(&e, "id = ?", id).Error
	return &e, err
}

func (r *emprestimoRepo) List(ctx context.Context, filter dto.EmprestimoFilter) ([]model.Emprestimo, int64, error) {
	var emprestimos []model.Emprestimo
	var total int64

	q := r.db.WithContext(ctx).Model(&model.Emprestimo{}).
		Preload("Colaborador").Preload("Equipamento")
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}
	if filter.ColaboradorID != "" {
		q = q.Where("colaborador_id = ?", filter.ColaboradorID)
	}
	if filter.EquipamentoID != "" {
		q = q.Where("equipamento_id = ?", filter.EquipamentoID)
	}

	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (filter.Page - 1) * filter.Limit
	err := q.Order("data_emprestimo DESC").Limit(filter.Limit).Offset(offset).Find(&emprestimos).Error
	return emprestimos, total, err
}

func (r *emprestimoRepo) ListDevolvidos(ctx context.Context) ([]model.Emprestimo, error) {
	var emprestimos []model.Emprestimo
	err := r.db.WithContext(ctx).
		Preload("Colaborador").Preload("Equipamento").
		Where("status = ?", model.StatusDevolvido).
		Order("data_devolucao_real DESC").
		Find(&emprestimos).Error
	return emprestimos, err
}

func (r *emprestimoRepo) ListMovimentacoes(ctx context.Context) ([]model.Emprestimo, error) {
	var emprestimos []model.Emprestimo
	err := r.db.WithContext(ctx).
		Preload("Colaborador").Preload("Equipamento").
		Order("data_emprestimo DESC").
		Find(&emprestimos).Error
	return emprestimos, err
}

func (r *emprestimoRepo) CountByColaborador(ctx context.Context, colaboradorID uuid.UUID) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Emprestimo{}).
		Where("colaborador_id = ?", colaboradorID).Count(&n).Error
	return n, err
}

func (r *emprestimoRepo) CountByEquipamento(ctx context.Context, equipamentoID uuid.UUID) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Emprestimo{}).
		Where("equipamento_id = ?", equipamentoID).Count(&n).Error
	return n, err
}

func (r *emprestimoRepo) CreateTx(tx *gorm.DB, e *model.Emprestimo) error {
	return tx.Create(e).Error
}

func (r *emprestimoRepo) FindByIDTx(tx *gorm.DB, id uuid.UUID) (*model.Emprestimo, error) {
	var e model.Emprestimo
	err := tx.First(&e, "id = ?", id).Error
	return &e, err
}

func (r *emprestimoRepo) UpdateTx(tx *gorm.DB, e *model.Emprestimo) error {
	return tx.Save(e).Error
}

func (r *emprestimoRepo) DeleteTx(tx *gorm.DB, id uuid.UUID) error {
	return tx.Delete(&model.Emprestimo{}, "id = ?", id).Error
}

func (r *emprestimoRepo) DB() *gorm.DB { return r.db }
