package validate

import (
	"testing"

	"github.com/hay-kot/criterio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequired(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"valid name", "John Doe", false},
		{"empty string", "", true},
		{"only spaces", "   ", true},
		{"only tabs", "\t\t", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Required(tt.input)
			assert.Equal(t, tt.wantErr, err != nil, "Required(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
		})
	}
}

func TestEmail(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"valid", "johndoe@example.com", false},
		{"subdomain", "john@mail.example.com", false},
		{"empty", "", true},
		{"not an email", "not-valid-email", true},
		{"display name", "John <john@example.com>", true},
		{"missing domain", "john@", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Email(tt.input)
			assert.Equal(t, tt.wantErr, err != nil, "Email(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
		})
	}
}

func TestPassword(t *testing.T) {
	assert.NoError(t, Password("123456"))
	assert.Error(t, Password("12345"))
	assert.Error(t, Password(""))
}

func TestMatches(t *testing.T) {
	assert.NoError(t, Matches("123456")("123456"))
	assert.Error(t, Matches("123456")("1234567"))
}

func TestEmailField(t *testing.T) {
	err := EmailField("email", "nope")

	var fieldErrs criterio.FieldErrors
	require.ErrorAs(t, err, &fieldErrs)
	require.Len(t, fieldErrs, 1)
	assert.Equal(t, "email", fieldErrs[0].Field)
}
