package model

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Service is a bookable treatment with its daily time slots. Bookings refer
// to a service by Name.
type Service struct {
	ID    string   `json:"_id,omitempty" bson:"_id,omitempty" yaml:"-" gorm:"primaryKey;size:36"`
	Name  string   `json:"name" bson:"name" yaml:"name" gorm:"uniqueIndex;size:255;not null"`
	Slots []string `json:"slots" bson:"slots" yaml:"slots" gorm:"serializer:json;type:json"`
}

// ServiceName is the projection served by the name-only listing.
type ServiceName struct {
	ID   string `json:"_id,omitempty" bson:"_id,omitempty"`
	Name string `json:"name" bson:"name"`
}

// BeforeCreate sets a UUID before inserting into a SQL store.
func (s *Service) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}
