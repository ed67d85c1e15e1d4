package handler

import (
	"net/mail"
	"unicode/utf8"
)

// fieldError reports one violated input field. All violations are
// returned at once, not just the first.
type fieldError struct {
	Param string `json:"param"`
	Msg   string `json:"msg"`
}

func validEmail(s string) bool {
	addr, err := mail.ParseAddress(s)
	// Reject display-name forms like `Ann <a@x.com>`.
	return err == nil && addr.Address == s
}

func validateSignup(req createUserRequest) []fieldError {
	var errs []fieldError
	if !validEmail(req.Email) {
		errs = append(errs, fieldError{Param: "email", Msg: "enter a valid email"})
	}
	// Lengths are character counts, not bytes.
	if utf8.RuneCountInString(req.Name) < 3 {
		errs = append(errs, fieldError{Param: "name", Msg: "enter a valid name"})
	}
	if utf8.RuneCountInString(req.Password) < 5 {
		errs = append(errs, fieldError{Param: "password", Msg: "password must be at least 5 characters"})
	}
	return errs
}

func validateLogin(req loginRequest) []fieldError {
	var errs []fieldError
	if !validEmail(req.Email) {
		errs = append(errs, fieldError{Param: "email", Msg: "enter a valid email"})
	}
	if req.Password == "" {
		errs = append(errs, fieldError{Param: "password", Msg: "password cannot be blank"})
	}
	return errs
}
