package service

import (
	"context"
	"fmt"
	"time"

	"doctorsportal/internal/cache"
	"doctorsportal/internal/errors"
	"doctorsportal/internal/model"
	"doctorsportal/internal/repository"
)

const (
	servicesCacheKey = "services:all"
	servicesCacheTTL = 5 * time.Minute
)

// CatalogService serves the treatment catalog and its free slots.
type CatalogService interface {
	Names(ctx context.Context) ([]model.ServiceName, error)
	List(ctx context.Context) ([]model.Service, error)
	Available(ctx context.Context, date string) ([]model.Service, error)
	Seed(ctx context.Context, services []model.Service) (int, error)
}

type catalogService struct {
	services repository.ServiceRepository
	bookings repository.BookingRepository
	cache    *cache.Client
}

// NewCatalogService creates a new catalog service.
func NewCatalogService(services repository.ServiceRepository, bookings repository.BookingRepository, cache *cache.Client) CatalogService {
	return &catalogService{
		services: services,
		bookings: bookings,
		cache:    cache,
	}
}

func (s *catalogService) Names(ctx context.Context) ([]model.ServiceName, error) {
	return s.services.Names(ctx)
}

// List returns all services, from cache when possible.
func (s *catalogService) List(ctx context.Context) ([]model.Service, error) {
	var cached []model.Service
	if s.cache.GetJSON(ctx, servicesCacheKey, &cached) {
		return cached, nil
	}

	services, err := s.services.List(ctx)
	if err != nil {
		return nil, err
	}
	s.cache.SetJSON(ctx, servicesCacheKey, services, servicesCacheTTL)
	return services, nil
}

// Available returns every service with the slots still free on date.
func (s *catalogService) Available(ctx context.Context, date string) ([]model.Service, error) {
	if date == "" {
		return nil, errors.ErrMissingDate
	}

	services, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	bookings, err := s.bookings.ListByDate(ctx, date)
	if err != nil {
		return nil, err
	}
	return ComputeAvailability(date, services, bookings), nil
}

// Seed upserts services by name and drops the cached catalog.
func (s *catalogService) Seed(ctx context.Context, services []model.Service) (int, error) {
	count := 0
	for _, svc := range services {
		if svc.Name == "" {
			return count, fmt.Errorf("seed service #%d: name is required", count+1)
		}
		if err := s.services.UpsertByName(ctx, svc); err != nil {
			return count, err
		}
		count++
	}
	_ = s.cache.Delete(ctx, servicesCacheKey)
	return count, nil
}
