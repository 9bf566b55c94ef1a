package services

import (
	"errors"
	"strings"
	"unicode"

	"github.com/avasiljevs/gpavault/internal/common"
	"github.com/go-playground/validator/v10"
)

// signUpInput holds the fields checked before an account is created.
// The policy matches the form this replaces: passwords need eight characters
// and no spaces, usernames just need to be non-empty without spaces.
type signUpInput struct {
	Username string `validate:"required,nowhitespace"`
	Password string `validate:"required,min=8,nowhitespace"`
}

var signUpValidator = newSignUpValidator()

func newSignUpValidator() *validator.Validate {
	v := validator.New()
	// never fails: the tag name is a literal
	_ = v.RegisterValidation("nowhitespace", func(fl validator.FieldLevel) bool {
		return !strings.ContainsFunc(fl.Field().String(), unicode.IsSpace)
	})
	return v
}

// validateSignUp applies the sign-up checks in the order the original form
// did: confirmation first, then password policy, then username policy.
func validateSignUp(username, password, confirm string) error {
	if password != confirm {
		return common.ErrPasswordMismatch
	}

	if err := signUpValidator.Struct(signUpInput{Username: username, Password: password}); err != nil {
		var fieldErrs validator.ValidationErrors
		if !errors.As(err, &fieldErrs) {
			return common.ErrInternal
		}
		// password errors take precedence, matching the original check order
		for _, fe := range fieldErrs {
			if fe.Field() == "Password" {
				return common.ErrWeakPassword
			}
		}
		return common.ErrInvalidUsername
	}
	return nil
}
