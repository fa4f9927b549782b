package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"doctorsportal/internal/model"
)

type sqlServiceRepository struct {
	db *gorm.DB
}

// NewSQLServiceRepository builds a GORM-backed repository.
func NewSQLServiceRepository(db *gorm.DB) ServiceRepository {
	return &sqlServiceRepository{db: db}
}

func (r *sqlServiceRepository) List(ctx context.Context) ([]model.Service, error) {
	services := make([]model.Service, 0)
	if err := r.db.WithContext(ctx).Order("name").Find(&services).Error; err != nil {
		return nil, fmt.Errorf("list services: %w", err)
	}
	return services, nil
}

func (r *sqlServiceRepository) Names(ctx context.Context) ([]model.ServiceName, error) {
	names := make([]model.ServiceName, 0)
	if err := r.db.WithContext(ctx).Model(&model.Service{}).Select("id", "name").Order("name").Find(&names).Error; err != nil {
		return nil, fmt.Errorf("list service names: %w", err)
	}
	return names, nil
}

func (r *sqlServiceRepository) UpsertByName(ctx context.Context, service model.Service) error {
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoUpdates: clause.AssignmentColumns([]string{"slots"}),
	}).Create(&service).Error
	if err != nil {
		return fmt.Errorf("upsert service %q: %w", service.Name, err)
	}
	return nil
}
