package validator

import (
	"testing"

	govalidator "github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
)

type signupInput struct {
	Username string `json:"username" validate:"required,min=3"`
	Email    string `json:"email" validate:"required,email"`
	AboutMe  string `validate:"max=10"`
}

func TestValidateStruct(t *testing.T) {
	v := govalidator.New(govalidator.WithRequiredStructEnabled())
	t.Run("valid", func(t *testing.T) {
		errs := ValidateStruct(v, signupInput{Username: "john", Email: "john@example.com"})
		assert.Nil(t, errs)
	})
	t.Run("keys use json tag", func(t *testing.T) {
		errs := ValidateStruct(v, signupInput{Username: "jo", Email: "not-an-email"})
		assert.Equal(t, "The minimum value is 3", errs["username"])
		assert.Equal(t, "Value must be a valid email address", errs["email"])
	})
	t.Run("keys fall back to snake case", func(t *testing.T) {
		errs := ValidateStruct(v, signupInput{
			Username: "john",
			Email:    "john@example.com",
			AboutMe:  "way too long about section",
		})
		assert.Equal(t, "The maximum value is 10", errs["about_me"])
	})
	t.Run("required message", func(t *testing.T) {
		errs := ValidateStruct(v, signupInput{})
		assert.Equal(t, "This field is required", errs["username"])
	})
}
