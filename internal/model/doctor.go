package model

import (
	"encoding/json"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Doctor is a clinic doctor identified by email. Any other fields supplied by
// the admin UI are kept as-is.
type Doctor struct {
	ID     string                 `json:"_id,omitempty" bson:"_id,omitempty" gorm:"primaryKey;size:36"`
	Email  string                 `json:"email" bson:"email" gorm:"index;size:255;not null"`
	Fields map[string]interface{} `json:"-" bson:",inline" gorm:"serializer:json;type:json"`
}

func (d Doctor) MarshalJSON() ([]byte, error) {
	doc := flatten(d.Fields)
	if d.ID != "" {
		doc["_id"] = d.ID
	}
	doc["email"] = d.Email
	return json.Marshal(doc)
}

// BeforeCreate sets a UUID before inserting into a SQL store.
func (d *Doctor) BeforeCreate(tx *gorm.DB) error {
	if d.ID == "" {
		d.ID = uuid.NewString()
	}
	return nil
}
