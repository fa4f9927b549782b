package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"doctorsportal/internal/model"
)

type sqlUserRepository struct {
	db *gorm.DB
}

// NewSQLUserRepository builds a GORM-backed repository.
func NewSQLUserRepository(db *gorm.DB) UserRepository {
	return &sqlUserRepository{db: db}
}

func (r *sqlUserRepository) FindByEmail(ctx context.Context, email string) (model.User, bool, error) {
	var user model.User
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.User{}, false, nil
	}
	if err != nil {
		return model.User{}, false, fmt.Errorf("find user: %w", err)
	}
	return user, true, nil
}

func (r *sqlUserRepository) List(ctx context.Context) ([]model.User, error) {
	users := make([]model.User, 0)
	if err := r.db.WithContext(ctx).Find(&users).Error; err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

// Upsert merges profile fields into the stored profile so repeated logins
// with partial profiles keep earlier fields, like a document $set.
func (r *sqlUserRepository) Upsert(ctx context.Context, email string, profile map[string]interface{}) (*model.WriteResult, error) {
	result := &model.WriteResult{Acknowledged: true}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing model.User
		err := tx.Where("email = ?", email).First(&existing).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			user := model.User{Email: email, Profile: profile}
			res := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&user)
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 1 {
				result.UpsertedCount = 1
				result.UpsertedID = &user.ID
				return nil
			}
			// A concurrent first upsert inserted the row; a locking read sees it
			// past this transaction's snapshot.
			err = tx.Clauses(clause.Locking{Strength: "UPDATE"}).Where("email = ?", email).First(&existing).Error
		}
		if err != nil {
			return err
		}

		if existing.Profile == nil {
			existing.Profile = make(map[string]interface{}, len(profile))
		}
		for k, v := range profile {
			existing.Profile[k] = v
		}
		res := tx.Save(&existing)
		if res.Error != nil {
			return res.Error
		}
		result.MatchedCount = 1
		result.ModifiedCount = res.RowsAffected
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("upsert user: %w", err)
	}
	return result, nil
}

func (r *sqlUserRepository) SetRole(ctx context.Context, email string, role model.Role) (*model.WriteResult, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.User{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return nil, fmt.Errorf("set user role: %w", err)
	}

	res := r.db.WithContext(ctx).Model(&model.User{}).Where("email = ?", email).Update("role", role)
	if res.Error != nil {
		return nil, fmt.Errorf("set user role: %w", res.Error)
	}
	return &model.WriteResult{
		Acknowledged:  true,
		MatchedCount:  count,
		ModifiedCount: res.RowsAffected,
	}, nil
}
