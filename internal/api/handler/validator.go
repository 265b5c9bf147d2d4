package handler

import (
	"context"
	"errors"
	"regexp"

	"github.com/go-playground/validator/v10"

	"github.com/accountly/account-api/internal/core/ports"
)

// emailPattern accepts local-part @ domain-labels . tld(2-3 chars), labels
// separated by single dots or hyphens, no consecutive separators.
var emailPattern = regexp.MustCompile(`^\w+([.-]?\w+)*@\w+([.-]?\w+)*(\.\w{2,3})+$`)

// RegistrationValidator applies the ordered per-field rules for registration
// input. Rules short-circuit per field on the first failure; all fields are
// validated independently and every failing field is reported.
type RegistrationValidator struct {
	v     *validator.Validate
	users ports.UserService
}

func NewRegistrationValidator(users ports.UserService) *RegistrationValidator {
	v := validator.New()
	_ = v.RegisterValidation("account_email", validEmail)
	_ = v.RegisterValidation("account_password", validPassword)
	return &RegistrationValidator{v: v, users: users}
}

// Validate returns the collected field errors, or nil when the request is
// clean. The email-in-use lookup runs only after the syntactic email rules
// pass; a failing lookup itself is returned as a plain error.
func (rv *RegistrationValidator) Validate(ctx context.Context, req registerRequest) (*FieldErrors, error) {
	fieldErrs := &FieldErrors{}

	if err := rv.v.Struct(req); err != nil {
		var ve validator.ValidationErrors
		if !errors.As(err, &ve) {
			return nil, err
		}
		for _, fe := range ve {
			setFieldError(fieldErrs, fe)
		}
	}

	if fieldErrs.Email == "" {
		inUse, err := rv.users.EmailInUse(ctx, req.Email)
		if err != nil {
			return nil, err
		}
		if inUse {
			fieldErrs.Email = "Email in use"
		}
	}

	if fieldErrs.empty() {
		return nil, nil
	}
	return fieldErrs, nil
}

func setFieldError(dst *FieldErrors, fe validator.FieldError) {
	switch fe.Field() {
	case "Username":
		dst.Username = usernameMessage(fe.Tag())
	case "Email":
		dst.Email = emailMessage(fe.Tag())
	case "Password":
		dst.Password = passwordMessage(fe.Tag())
	}
}

func usernameMessage(tag string) string {
	if tag == "required" {
		return "Username cannot be null"
	}
	return "Must have min 4 and max 32 characters"
}

func emailMessage(tag string) string {
	if tag == "required" {
		return "Email cannot be null"
	}
	return "Email is not valid"
}

func passwordMessage(tag string) string {
	switch tag {
	case "required":
		return "Password cannot be null"
	case "min":
		return "Password must be at least 6 characters"
	default:
		return "Password must have at least 1 uppercase, 1 lowercase letter and 1 number"
	}
}

func validEmail(fl validator.FieldLevel) bool {
	return emailPattern.MatchString(fl.Field().String())
}

func validPassword(fl validator.FieldLevel) bool {
	var lower, upper, digit bool
	for _, r := range fl.Field().String() {
		switch {
		case r >= 'a' && r <= 'z':
			lower = true
		case r >= 'A' && r <= 'Z':
			upper = true
		case r >= '0' && r <= '9':
			digit = true
		}
	}
	return lower && upper && digit
}
