package service

import (
	"context"
	"strings"

	"doctorsportal/internal/errors"
	"doctorsportal/internal/model"
	"doctorsportal/internal/repository"
)

// DoctorService manages the doctor registry.
type DoctorService interface {
	List(ctx context.Context) ([]model.Doctor, error)
	Create(ctx context.Context, fields map[string]interface{}) (*model.InsertResult, error)
	Delete(ctx context.Context, email string) (*model.DeleteResult, error)
}

type doctorService struct {
	repo repository.DoctorRepository
}

// NewDoctorService creates a new doctor service.
func NewDoctorService(repo repository.DoctorRepository) DoctorService {
	return &doctorService{repo: repo}
}

func (s *doctorService) List(ctx context.Context) ([]model.Doctor, error) {
	return s.repo.List(ctx)
}

func (s *doctorService) Create(ctx context.Context, fields map[string]interface{}) (*model.InsertResult, error) {
	email, _ := fields["email"].(string)
	email = strings.TrimSpace(email)
	if email == "" {
		return nil, errors.ErrInvalidDoctor
	}

	return s.repo.Create(ctx, model.Doctor{
		Email:  email,
		Fields: sanitizeFields(fields, "email"),
	})
}

func (s *doctorService) Delete(ctx context.Context, email string) (*model.DeleteResult, error) {
	if email == "" {
		return nil, errors.ErrInvalidEmail
	}
	return s.repo.DeleteByEmail(ctx, email)
}
