package helpers

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateSlug(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"simple", "Red Shirt", "red-shirt"},
		{"punctuation runs", "  A/B  ", "a-b"},
		{"already slug", "red-shirt", "red-shirt"},
		{"mixed symbols", "50% Cotton & Wool!", "50-cotton-wool"},
		{"leading trailing", "--hello--", "hello"},
		{"empty", "", ""},
		{"only symbols", "///", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, GenerateSlug(tt.input))
		})
	}
}

func TestGenerateSlugDeterministic(t *testing.T) {
	first := GenerateSlug("Sleeve Length XL")
	second := GenerateSlug("Sleeve Length XL")
	assert.Equal(t, first, second)
}

func TestIsHexColor(t *testing.T) {
	assert.True(t, IsHexColor("#FF0000"))
	assert.True(t, IsHexColor("#a1b2c3"))
	assert.False(t, IsHexColor("FF0000"))
	assert.False(t, IsHexColor("#FF00"))
	assert.False(t, IsHexColor("#GGGGGG"))
	assert.False(t, IsHexColor("#FF0000FF"))
	assert.False(t, IsHexColor(""))
}

func TestNewValidatorHexColorTag(t *testing.T) {
	type form struct {
		Color string `validate:"omitempty,hexcolor6"`
	}

	v := NewValidator()

	require.NoError(t, v.Struct(&form{Color: "#00FF00"}))
	require.NoError(t, v.Struct(&form{Color: ""}))
	require.Error(t, v.Struct(&form{Color: "green"}))
}

func TestFormatValidationErrors(t *testing.T) {
	type form struct {
		FirstName string `validate:"required"`
		Email     string `validate:"required,email"`
	}

	v := NewValidator()
	err := v.Struct(&form{Email: "not-an-email"})
	require.Error(t, err)

	validationErrors, ok := err.(validator.ValidationErrors)
	require.True(t, ok)

	messages := FormatValidationErrors(validationErrors)
	assert.Contains(t, messages, "first_name")
	assert.Contains(t, messages, "email")
	assert.Equal(t, "FirstName is required.", messages["first_name"])
}

func TestPasswordHashRoundTrip(t *testing.T) {
	hashed := HashPassword("secret123")
	require.NotEmpty(t, hashed)
	assert.True(t, PasswordCompare(hashed, []byte("secret123")))
	assert.False(t, PasswordCompare(hashed, []byte("wrong")))
}
