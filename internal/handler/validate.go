package handler

// validate.go implements explicit request validation. Each request type
// gets a validate function returning a field->message map; an empty map
// means the request is acceptable. Handlers turn a non-empty map into a
// 400 response listing every offending field.

import (
	"regexp"
	"strings"
)

// fieldErrors maps a request field name to a human-readable problem.
type fieldErrors map[string]string

func (f fieldErrors) ok() bool { return len(f) == 0 }

// emailRx is deliberately loose: one @, something on both sides, a dot in
// the domain. Real validation happens when the reset mail is delivered.
var emailRx = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

func validEmail(s string) bool {
	return len(s) <= 50 && emailRx.MatchString(s)
}

func validateRegister(r registerReq) fieldErrors {
	errs := fieldErrors{}
	username := strings.TrimSpace(r.Username)
	if len(username) < 3 || len(username) > 50 {
		errs["username"] = "must be between 3 and 50 characters"
	}
	if len(r.Password) < 6 || len(r.Password) > 100 {
		errs["password"] = "must be between 6 and 100 characters"
	}
	if !validEmail(strings.TrimSpace(r.Email)) {
		errs["email"] = "must be a valid email address"
	}
	return errs
}

func validateLogin(r loginReq) fieldErrors {
	errs := fieldErrors{}
	if strings.TrimSpace(r.Email) == "" {
		errs["email"] = "is required"
	}
	if r.Password == "" {
		errs["password"] = "is required"
	}
	return errs
}

func validateForgotPassword(r forgotPasswordReq) fieldErrors {
	errs := fieldErrors{}
	if !validEmail(strings.TrimSpace(r.Email)) {
		errs["email"] = "must be a valid email address"
	}
	return errs
}

func validateResetPassword(r resetPasswordReq) fieldErrors {
	errs := fieldErrors{}
	if strings.TrimSpace(r.Token) == "" {
		errs["token"] = "is required"
	}
	if len(r.Password) < 6 {
		errs["password"] = "must be at least 6 characters"
	}
	return errs
}

func validateTask(r taskReq) fieldErrors {
	errs := fieldErrors{}
	if strings.TrimSpace(r.Title) == "" {
		errs["title"] = "is required"
	}
	if strings.TrimSpace(r.Description) == "" {
		errs["description"] = "is required"
	}
	return errs
}
