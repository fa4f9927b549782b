package model

import (
	"encoding/json"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Booking reserves one slot of a treatment for a patient on a date. At most
// one booking exists per (Treatment, Date, Patient). Extra keeps any other
// fields the client sent with the booking.
type Booking struct {
	ID          string                 `json:"_id,omitempty" bson:"_id,omitempty" gorm:"primaryKey;size:36"`
	Treatment   string                 `json:"treatment" bson:"treatment" gorm:"size:255;not null;uniqueIndex:idx_booking_once,priority:1"`
	Date        string                 `json:"date" bson:"date" gorm:"size:32;not null;uniqueIndex:idx_booking_once,priority:2;index"`
	Patient     string                 `json:"patient" bson:"patient" gorm:"size:255;not null;uniqueIndex:idx_booking_once,priority:3;index"`
	Slot        string                 `json:"slot" bson:"slot" gorm:"size:64;not null"`
	PatientName string                 `json:"patientName,omitempty" bson:"patientName,omitempty" gorm:"size:255"`
	Phone       string                 `json:"phone,omitempty" bson:"phone,omitempty" gorm:"size:64"`
	Extra       map[string]interface{} `json:"-" bson:",inline" gorm:"serializer:json;type:json"`
}

// TableName keeps the SQL table aligned with the document collection name.
func (Booking) TableName() string {
	return "booking"
}

// MarshalJSON flattens Extra next to the fixed fields, matching the stored
// document shape.
func (b Booking) MarshalJSON() ([]byte, error) {
	doc := flatten(b.Extra)
	if b.ID != "" {
		doc["_id"] = b.ID
	}
	doc["treatment"] = b.Treatment
	doc["date"] = b.Date
	doc["patient"] = b.Patient
	doc["slot"] = b.Slot
	if b.PatientName != "" {
		doc["patientName"] = b.PatientName
	}
	if b.Phone != "" {
		doc["phone"] = b.Phone
	}
	return json.Marshal(doc)
}

// BeforeCreate sets a UUID before inserting into a SQL store.
func (b *Booking) BeforeCreate(tx *gorm.DB) error {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	return nil
}

// BookingOutcome is the result of an attempt to book. Exactly one of
// Existing or Result is set.
type BookingOutcome struct {
	Created  bool
	Existing *Booking
	Result   *InsertResult
}
