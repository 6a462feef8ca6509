package handler

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/HackArena_Go/internal/domain"
)

func TestValidator_Reaction(t *testing.T) {
	v := GetValidator()

	for _, emoji := range domain.ReactionEmojis {
		assert.NoError(t, v.ValidateStruct(ReactRequest{Emoji: emoji}), emoji)
	}

	err := v.ValidateStruct(ReactRequest{Emoji: "🍕"})
	require.Error(t, err)
	assert.Equal(t, "Unsupported reaction", FormatValidationError(err)["emoji"])
}

func TestFormatValidationError_UsesJSONNames(t *testing.T) {
	err := GetValidator().ValidateStruct(RegisterPlayerRequest{Username: "ab", Password: ""})
	require.Error(t, err)

	fields := FormatValidationError(err)
	assert.Equal(t, "Must be at least 3", fields["username"])
	assert.Equal(t, "This field is required", fields["password"])
	assert.NotContains(t, fields, "Username")
}

func TestFormatValidationError_NonValidatorError(t *testing.T) {
	fields := FormatValidationError(errors.New("boom"))
	assert.Equal(t, "Invalid request format", fields["error"])
	assert.Nil(t, FormatValidationError(nil))
}

func TestValidator_Handle(t *testing.T) {
	err := GetValidator().ValidateStruct(RegisterPlayerRequest{Username: "zero cool", Password: "hunter22"})
	require.Error(t, err)
	assert.Equal(t, "Must not contain whitespace", FormatValidationError(err)["username"])

	assert.NoError(t, GetValidator().ValidateStruct(RegisterPlayerRequest{Username: "z3r0_c00l", Password: "hunter22"}))
}
