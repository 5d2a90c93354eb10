package repository

import (
	"context"

	"github.com/Senai-SC-CTAI/sistema-epi-gabrielgv13/internal/dto"
	"github.com/Senai-SC-CTAI/sistema-epi-gabrielgv13/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ColaboradorRepository interface {
	Create(ctx context.Context, c *model.Colaborador) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Colaborador, error)
	FindByEmail(ctx context.Context, email string) (*model.Colaborador, error)
	List(ctx context.Context, filter dto.ColaboradorFilter) ([]model.Colaborador, int64, error)
	Update(ctx context.Context, c *model.Colaborador) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type colaboradorRepo struct{ db *gorm.DB }

func NewColaboradorRepository(db *gorm.DB) ColaboradorRepository {
	return &colaboradorRepo{db: db}
}

func (r *colaboradorRepo) Create(ctx context.Context, c *model.Colaborador) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *colaboradorRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Colaborador, error) {
	var c model.Colaborador
	err := r.db.WithContext(ctx).First(&c, "id = ?", id).Error
	return &c, err
}

func (r *colaboradorRepo) FindByEmail(ctx context.Context, email string) (*model.Colaborador, error) {
	var c model.Colaborador
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&c).Error
	return &c, err
}

func (r *colaboradorRepo) List(ctx context.Context, filter dto.ColaboradorFilter) ([]model.Colaborador, int64, error) {
	var colaboradores []model.Colaborador
	var total int64

	q := r.db.WithContext(ctx).Model(&model.Colaborador{})
	if filter.Nome != "" {
		q = q.Where("nome ILIKE ?", "%"+filter.Nome+"%")
	}

	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (filter.Page - 1) * filter.Limit
	err := q.Order("nome ASC").Limit(filter.Limit).Offset(offset).Find(&colaboradores).Error
	return colaboradores, total, err
}

func (r *colaboradorRepo) Update(ctx context.Context, c *model.Colaborador) error {
	return r.db.WithContext(ctx).Save(c).Error
}

func (r *colaboradorRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Colaborador{}, "id = ?", id).Error
}
