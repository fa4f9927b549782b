package main

import (
	"context"
	"strings"
	"sync"
	"testing"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"doctorsportal/internal/cache"
	"doctorsportal/internal/model"
	"doctorsportal/internal/repository"
	"doctorsportal/internal/service"
)

type memServices struct {
	mu       sync.Mutex
	services map[string]model.Service
	order    []string
	lists    int
}

func newMemServices(services ...model.Service) *memServices {
	m := &memServices{services: map[string]model.Service{}}
	for _, s := range services {
		_ = m.UpsertByName(context.Background(), s)
	}
	return m
}

func (m *memServices) List(context.Context) ([]model.Service, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.lists++
	out := make([]model.Service, 0, len(m.order))
	for _, name := range m.order {
		out = append(out, m.services[name])
	}
	return out, nil
}

func (m *memServices) Names(context.Context) ([]model.ServiceName, error) {
	return nil, nil
}

func (m *memServices) UpsertByName(_ context.Context, s model.Service) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.services[s.Name]; !ok {
		m.order = append(m.order, s.Name)
	}
	m.services[s.Name] = s
	return nil
}

func TestLoadServices(t *testing.T) {
	services, err := loadServices(strings.NewReader(`
- name: Teeth Cleaning
  slots: ["09:00", "10:00"]
- name: Oral Surgery
  slots: []
`))
	require.NoError(t, err)
	require.Len(t, services, 2)
	assert.Equal(t, "Teeth Cleaning", services[0].Name)
	assert.Equal(t, []string{"09:00", "10:00"}, services[0].Slots)
	assert.Empty(t, services[1].Slots)
}

func TestLoadServices_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "not a list", input: "name: Teeth Cleaning"},
		{name: "missing name", input: "- slots: [\"09:00\"]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := loadServices(strings.NewReader(tt.input))
			assert.Error(t, err)
		})
	}
}

func TestSeedCatalog_RefreshesServerCache(t *testing.T) {
	mr := miniredis.RunT(t)
	newCache := func() *cache.Client {
		return cache.NewFromRedis(redis.NewClient(&redis.Options{Addr: mr.Addr()}))
	}

	repo := newMemServices(model.Service{Name: "Cleaning", Slots: []string{"9:00"}})
	store := &repository.Store{Services: repo}

	server := service.NewCatalogService(repo, nil, newCache())
	before, err := server.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"9:00"}, before[0].Slots)

	n, err := seedCatalog(context.Background(), store, newCache(), []model.Service{
		{Name: "Cleaning", Slots: []string{"9:00", "10:00"}},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	after, err := server.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"9:00", "10:00"}, after[0].Slots)
	assert.Equal(t, 2, repo.lists)
}
