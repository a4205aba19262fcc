package dto

import (
	"testing"

	"github.com/gin-gonic/gin/binding"
	"github.com/stretchr/testify/assert"
)

func TestMethodNameValidator(t *testing.T) {
	tests := []struct {
		method string
		valid  bool
	}{
		{"sov", true},
		{"null_payment", true},
		{"m2", true},
		{"", false},
		{"Sov", false},
		{"2sov", false},
		{"sov-token", false},
		{"sov/../admin", false},
		{"abcdefghijklmnopqrstuvwxyz0123456", false},
	}

	for _, tt := range tests {
		t.Run(tt.method, func(t *testing.T) {
			err := binding.Validator.ValidateStruct(&MethodURI{Method: tt.method})
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}
