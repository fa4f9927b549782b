package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	apperrors "doctorsportal/internal/errors"
	"doctorsportal/internal/model"
)

func TestDoctorService_Create(t *testing.T) {
	t.Run("stores email and remaining fields", func(t *testing.T) {
		repo := new(MockDoctorRepository)
		repo.On("Create", mock.Anything, model.Doctor{
			Email:  "doc@x.com",
			Fields: map[string]interface{}{"name": "Dr. Who", "specialty": "Cleaning"},
		}).Return(&model.InsertResult{Acknowledged: true, InsertedID: "d-1"}, nil)

		res, err := NewDoctorService(repo).Create(context.Background(), map[string]interface{}{
			"email":     "doc@x.com",
			"name":      "Dr. Who",
			"specialty": "Cleaning",
			"_id":       "forged",
		})
		require.NoError(t, err)
		assert.Equal(t, "d-1", res.InsertedID)
		repo.AssertExpectations(t)
	})

	t.Run("email required", func(t *testing.T) {
		_, err := NewDoctorService(new(MockDoctorRepository)).Create(context.Background(), map[string]interface{}{"name": "x"})
		assert.ErrorIs(t, err, apperrors.ErrInvalidDoctor)
	})

	t.Run("non-string email rejected", func(t *testing.T) {
		_, err := NewDoctorService(new(MockDoctorRepository)).Create(context.Background(), map[string]interface{}{"email": 42})
		assert.ErrorIs(t, err, apperrors.ErrInvalidDoctor)
	})
}

func TestDoctorService_Delete(t *testing.T) {
	repo := new(MockDoctorRepository)
	repo.On("DeleteByEmail", mock.Anything, "doc@x.com").Return(&model.DeleteResult{Acknowledged: true, DeletedCount: 1}, nil)

	res, err := NewDoctorService(repo).Delete(context.Background(), "doc@x.com")
	require.NoError(t, err)
	assert.EqualValues(t, 1, res.DeletedCount)

	_, err = NewDoctorService(repo).Delete(context.Background(), "")
	assert.ErrorIs(t, err, apperrors.ErrInvalidEmail)
}
