package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateBaseURL(t *testing.T) {
	tests := []struct {
		input   string
		wantErr bool
	}{
		{"https://metabase.example.com", false},
		{"http://localhost:3000", false},
		{"https://metabase.example.com/sub/path", false},
		{"", true},
		{"metabase.example.com", true},
		{"/api/ee", true},
		{"https://", true},
		{"://broken", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			err := validateBaseURL(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestNotEmpty(t *testing.T) {
	assert.Error(t, notEmpty(""))
	assert.NoError(t, notEmpty("default"))
	assert.NoError(t, notEmpty(" "))
}
