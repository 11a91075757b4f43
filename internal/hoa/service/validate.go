package service

import (
	"strings"
	"time"
	"unicode"
)

const (
	dateLayout = "2006-01-02"
	timeLayout = "15:04"

	maxNameLength = 255
)

func required(field, value string) (string, error) {
	v := strings.TrimSpace(value)
	if v == "" {
		return "", validationf("%s is required", field)
	}
	return v, nil
}

func validDate(field, value string) error {
	if _, err := time.Parse(dateLayout, value); err != nil {
		return validationf("%s must be YYYY-MM-DD", field)
	}
	return nil
}

// validClock accepts an empty value.
func validClock(field, value string) error {
	if value == "" {
		return nil
	}
	if _, err := time.Parse(timeLayout, value); err != nil || len(value) != len(timeLayout) {
		return validationf("%s must be HH:MM", field)
	}
	return nil
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}

// checkPasswordPolicy requires eight characters with an upper case letter, a
// lower case letter and a digit, and names everything that is missing.
func checkPasswordPolicy(password string) error {
	var upper, lower, digit bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsLower(r):
			lower = true
		case unicode.IsDigit(r):
			digit = true
		}
	}

	var missing []string
	if len([]rune(password)) < 8 {
		missing = append(missing, "at least 8 characters")
	}
	if !upper {
		missing = append(missing, "one uppercase letter")
	}
	if !lower {
		missing = append(missing, "one lowercase letter")
	}
	if !digit {
		missing = append(missing, "one number")
	}
	if len(missing) > 0 {
		return validationf("password must contain %s", strings.Join(missing, ", "))
	}
	return nil
}
