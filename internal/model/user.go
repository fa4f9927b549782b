package model

import (
	"encoding/json"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Role is the authorization level of a user. The zero value means no role
// was ever assigned.
type Role string

const (
	RolePatient Role = "patient"
	RoleAdmin   Role = "admin"
)

// User is a portal account keyed by email. Profile carries whatever fields the
// client registered with; in MongoDB they live inline in the user document.
type User struct {
	ID      string                 `json:"_id,omitempty" bson:"_id,omitempty" gorm:"primaryKey;size:36"`
	Email   string                 `json:"email" bson:"email" gorm:"uniqueIndex;size:255;not null"`
	Role    Role                   `json:"role,omitempty" bson:"role,omitempty" gorm:"size:20"`
	Profile map[string]interface{} `json:"-" bson:",inline" gorm:"serializer:json;type:json"`
}

// IsAdmin reports whether the user holds the admin role.
func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// MarshalJSON flattens the profile next to the fixed fields, matching the
// stored document shape.
func (u User) MarshalJSON() ([]byte, error) {
	doc := flatten(u.Profile)
	if u.ID != "" {
		doc["_id"] = u.ID
	}
	doc["email"] = u.Email
	if u.Role != "" {
		doc["role"] = u.Role
	}
	return json.Marshal(doc)
}

// BeforeCreate sets a UUID before inserting into a SQL store.
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}

func flatten(fields map[string]interface{}) map[string]interface{} {
	doc := make(map[string]interface{}, len(fields)+3)
	for k, v := range fields {
		doc[k] = v
	}
	return doc
}
