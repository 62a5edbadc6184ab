// internal/utils/validator_test.go
package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type contactForm struct {
	CustomerName  string `validate:"required"`
	CustomerEmail string `validate:"required,email"`
}

func TestGetValidationErrors(t *testing.T) {
	err := ValidateStruct(&contactForm{CustomerEmail: "nope"})
	require.Error(t, err)

	errs := GetValidationErrors(err)
	require.Len(t, errs, 2)

	assert.Equal(t, "customer_name", errs[0].Field)
	assert.Equal(t, "required", errs[0].Tag)
	assert.Equal(t, "Customer Name is required", errs[0].Message)

	assert.Equal(t, "customer_email", errs[1].Field)
	assert.Equal(t, "Invalid email format", errs[1].Message)
}

func TestValidStructHasNoErrors(t *testing.T) {
	err := ValidateStruct(&contactForm{CustomerName: "Jordan", CustomerEmail: "jordan@example.com"})
	assert.NoError(t, err)
	assert.Empty(t, GetValidationErrors(err))
}
