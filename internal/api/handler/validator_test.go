package handler

import (
	"context"
	"encoding/json"
	"strings"
	"testing"
)

func validateRequest(t *testing.T, rv *RegistrationValidator, req registerRequest) *FieldErrors {
	t.Helper()
	fieldErrs, err := rv.Validate(context.Background(), req)
	if err != nil {
		t.Fatalf("Validate returned error: %v", err)
	}
	return fieldErrs
}

func TestRegistrationValidator_FieldMessages(t *testing.T) {
	tests := []struct {
		field   string
		value   string
		message string
	}{
		{"username", "", "Username cannot be null"},
		{"username", "usr", "Must have min 4 and max 32 characters"},
		{"username", strings.Repeat("a", 33), "Must have min 4 and max 32 characters"},
		{"email", "", "Email cannot be null"},
		{"email", "mail.com", "Email is not valid"},
		{"email", "user.mail.com", "Email is not valid"},
		{"email", "user@mail", "Email is not valid"},
		{"password", "", "Password cannot be null"},
		{"password", "P4ssw", "Password must be at least 6 characters"},
		{"password", "alllowercase", "Password must have at least 1 uppercase, 1 lowercase letter and 1 number"},
		{"password", "ALLUPPERCASE", "Password must have at least 1 uppercase, 1 lowercase letter and 1 number"},
		{"password", "5478394857", "Password must have at least 1 uppercase, 1 lowercase letter and 1 number"},
		{"password", "lowerand123", "Password must have at least 1 uppercase, 1 lowercase letter and 1 number"},
		{"password", "lowerandUPPER", "Password must have at least 1 uppercase, 1 lowercase letter and 1 number"},
		{"password", "UPPER1234", "Password must have at least 1 uppercase, 1 lowercase letter and 1 number"},
	}

	for _, tc := range tests {
		t.Run(tc.field+"="+tc.value, func(t *testing.T) {
			req := registerRequest{
				Username: "user1",
				Email:    "user1@mail.com",
				Password: "P4ssword",
			}
			switch tc.field {
			case "username":
				req.Username = tc.value
			case "email":
				req.Email = tc.value
			case "password":
				req.Password = tc.value
			}

			fieldErrs := validateRequest(t, NewRegistrationValidator(&stubUserService{}), req)
			if fieldErrs == nil {
				t.Fatalf("expected a validation error")
			}

			var got string
			switch tc.field {
			case "username":
				got = fieldErrs.Username
			case "email":
				got = fieldErrs.Email
			case "password":
				got = fieldErrs.Password
			}
			if got != tc.message {
				t.Fatalf("expected %q, got %q", tc.message, got)
			}
		})
	}
}

func TestRegistrationValidator_ValidInput(t *testing.T) {
	fieldErrs := validateRequest(t, NewRegistrationValidator(&stubUserService{}), registerRequest{
		Username: "user1",
		Email:    "user1@mail.com",
		Password: "P4ssword",
	})
	if fieldErrs != nil {
		t.Fatalf("expected no errors, got %+v", fieldErrs)
	}
}

func TestRegistrationValidator_EmailInUse(t *testing.T) {
	stub := &stubUserService{
		emailInUseFn: func(ctx context.Context, email string) (bool, error) {
			return true, nil
		},
	}
	fieldErrs := validateRequest(t, NewRegistrationValidator(stub), registerRequest{
		Username: "user1",
		Email:    "user1@mail.com",
		Password: "P4ssword",
	})
	if fieldErrs == nil || fieldErrs.Email != "Email in use" {
		t.Fatalf("expected email-in-use error, got %+v", fieldErrs)
	}
}

func TestRegistrationValidator_SkipsLookupOnInvalidEmail(t *testing.T) {
	stub := &stubUserService{
		emailInUseFn: func(ctx context.Context, email string) (bool, error) {
			t.Fatalf("lookup must not run for a syntactically invalid email")
			return false, nil
		},
	}
	fieldErrs := validateRequest(t, NewRegistrationValidator(stub), registerRequest{
		Username: "user1",
		Email:    "mail.com",
		Password: "P4ssword",
	})
	if fieldErrs == nil || fieldErrs.Email != "Email is not valid" {
		t.Fatalf("expected invalid-email error, got %+v", fieldErrs)
	}
}

func TestRegistrationValidator_CollectsInDeclarationOrder(t *testing.T) {
	stub := &stubUserService{
		emailInUseFn: func(ctx context.Context, email string) (bool, error) {
			return true, nil
		},
	}
	fieldErrs := validateRequest(t, NewRegistrationValidator(stub), registerRequest{
		Username: "",
		Email:    "user1@mail.com",
		Password: "P4ssword",
	})
	if fieldErrs == nil {
		t.Fatalf("expected validation errors")
	}
	if fieldErrs.Username != "Username cannot be null" || fieldErrs.Email != "Email in use" {
		t.Fatalf("unexpected errors: %+v", fieldErrs)
	}

	// Struct encoding keeps username before email before password.
	encoded, err := json.Marshal(fieldErrs)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	body := string(encoded)
	if strings.Index(body, `"username"`) > strings.Index(body, `"email"`) {
		t.Fatalf("expected username before email, got %s", body)
	}
}
