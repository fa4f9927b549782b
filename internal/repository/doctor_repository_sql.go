package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"doctorsportal/internal/model"
)

type sqlDoctorRepository struct {
	db *gorm.DB
}

// NewSQLDoctorRepository builds a GORM-backed repository.
func NewSQLDoctorRepository(db *gorm.DB) DoctorRepository {
	return &sqlDoctorRepository{db: db}
}

func (r *sqlDoctorRepository) List(ctx context.Context) ([]model.Doctor, error) {
	doctors := make([]model.Doctor, 0)
	if err := r.db.WithContext(ctx).Find(&doctors).Error; err != nil {
		return nil, fmt.Errorf("list doctors: %w", err)
	}
	return doctors, nil
}

func (r *sqlDoctorRepository) Create(ctx context.Context, doctor model.Doctor) (*model.InsertResult, error) {
	doctor.ID = ""
	if err := r.db.WithContext(ctx).Create(&doctor).Error; err != nil {
		return nil, fmt.Errorf("create doctor: %w", err)
	}
	return &model.InsertResult{Acknowledged: true, InsertedID: doctor.ID}, nil
}

// DeleteByEmail removes at most one doctor, like the document store's DeleteOne.
func (r *sqlDoctorRepository) DeleteByEmail(ctx context.Context, email string) (*model.DeleteResult, error) {
	var doctor model.Doctor
	res := r.db.WithContext(ctx).Where("email = ?", email).Limit(1).Find(&doctor)
	if res.Error != nil {
		return nil, fmt.Errorf("delete doctor: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return &model.DeleteResult{Acknowledged: true}, nil
	}

	del := r.db.WithContext(ctx).Delete(&model.Doctor{}, "id = ?", doctor.ID)
	if del.Error != nil {
		return nil, fmt.Errorf("delete doctor: %w", del.Error)
	}
	return &model.DeleteResult{Acknowledged: true, DeletedCount: del.RowsAffected}, nil
}
