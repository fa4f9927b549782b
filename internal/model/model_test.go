package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUser_MarshalJSONFlattensProfile(t *testing.T) {
	u := User{
		ID:      "u1",
		Email:   "p@x.com",
		Profile: map[string]interface{}{"name": "Pat"},
	}

	raw, err := json.Marshal(u)
	require.NoError(t, err)

	var doc map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &doc))
	assert.Equal(t, map[string]interface{}{"_id": "u1", "email": "p@x.com", "name": "Pat"}, doc)
	assert.False(t, u.IsAdmin())
}

func TestUser_MarshalJSONIncludesRole(t *testing.T) {
	raw, err := json.Marshal(User{Email: "a@x.com", Role: RoleAdmin})
	require.NoError(t, err)
	assert.JSONEq(t, `{"email":"a@x.com","role":"admin"}`, string(raw))
}

func TestDoctor_MarshalJSONFlattensFields(t *testing.T) {
	d := Doctor{Email: "doc@x.com", Fields: map[string]interface{}{"specialty": "Teeth Orthodontics"}}

	raw, err := json.Marshal(d)
	require.NoError(t, err)
	assert.JSONEq(t, `{"email":"doc@x.com","specialty":"Teeth Orthodontics"}`, string(raw))
}

func TestBooking_MarshalJSONKeepsExtraFields(t *testing.T) {
	b := Booking{
		ID:        "b1",
		Treatment: "Teeth Cleaning",
		Date:      "Jan 1, 2024",
		Patient:   "p@x.com",
		Slot:      "09:00",
		Extra:     map[string]interface{}{"price": 25.0, "treatmentId": "t-1"},
	}

	raw, err := json.Marshal(b)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"_id":"b1","treatment":"Teeth Cleaning","date":"Jan 1, 2024",
		"patient":"p@x.com","slot":"09:00","price":25,"treatmentId":"t-1"
	}`, string(raw))
}
