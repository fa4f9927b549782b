package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeFields(t *testing.T) {
	tests := []struct {
		name     string
		fields   map[string]interface{}
		reserved []string
		want     map[string]interface{}
	}{
		{
			name:   "keeps plain keys",
			fields: map[string]interface{}{"name": "Pat", "phone": "123"},
			want:   map[string]interface{}{"name": "Pat", "phone": "123"},
		},
		{
			name:     "drops reserved, operator and dotted keys",
			fields:   map[string]interface{}{"name": "Pat", "role": "admin", "_id": "x", "$set": 1, "a.b": 2, "": 3},
			reserved: []string{"role", "email"},
			want:     map[string]interface{}{"name": "Pat"},
		},
		{
			name:     "nothing left is nil",
			fields:   map[string]interface{}{"role": "admin"},
			reserved: []string{"role"},
		},
		{
			name: "nil input",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, sanitizeFields(tt.fields, tt.reserved...))
		})
	}
}
