package validator

import (
	"testing"

	"github.com/gin-gonic/gin/binding"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type bloodGroupPayload struct {
	BloodGroup string `binding:"required,bloodgroup"`
}

func TestBloodGroupValidation(t *testing.T) {
	RegisterCustomValidations()

	for _, group := range []string{"A+", "AB-", "O+"} {
		assert.NoError(t, binding.Validator.ValidateStruct(bloodGroupPayload{BloodGroup: group}), group)
	}

	err := binding.Validator.ValidateStruct(bloodGroupPayload{BloodGroup: "C+"})
	require.Error(t, err)
	assert.Contains(t, FormatValidationError(err), "must be one of")
}

func TestFormatValidationErrorRequired(t *testing.T) {
	RegisterCustomValidations()

	err := binding.Validator.ValidateStruct(bloodGroupPayload{})
	require.Error(t, err)
	assert.Contains(t, FormatValidationError(err), "Blood group is required")
}
