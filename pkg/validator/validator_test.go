package validator

import (
	"errors"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Phone string `json:"phone" validate:"phonenumber"`
	Code  string `json:"code" validate:"numericcode"`
}

func TestRegister(t *testing.T) {
	v := validator.New()
	Register(v)

	assert.NoError(t, v.Struct(sample{Phone: "+1 (555) 010-9999", Code: "123456"}))
	assert.NoError(t, v.Struct(sample{Phone: "9990000000", Code: "0"}))

	err := v.Struct(sample{Phone: "call me", Code: "12ab"})
	require.Error(t, err)

	var verr validator.ValidationErrors
	require.True(t, errors.As(err, &verr))
	fields := []string{verr[0].Field(), verr[1].Field()}
	assert.ElementsMatch(t, []string{"phone", "code"}, fields)
}
