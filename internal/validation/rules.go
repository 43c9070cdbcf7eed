// Package validation defines the input rules shared by both delivery
// adapters. Validators collect every failing rule rather than stopping at
// the first; callers report the full list.
package validation

import (
	"regexp"
	"strings"
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// Rules carries the configurable thresholds.
type Rules struct {
	PasswordMinLen int
	TitleMinLen    int
	ContentMinLen  int
}

// DefaultRules returns the thresholds used when no config override applies.
func DefaultRules() Rules {
	return Rules{
		PasswordMinLen: 5,
		TitleMinLen:    5,
		ContentMinLen:  5,
	}
}

// IsEmail reports whether s looks like an email address.
func IsEmail(s string) bool {
	return emailRegex.MatchString(strings.TrimSpace(s))
}

// Credentials validates an email/password pair and returns all violations.
func (r Rules) Credentials(email, password string) []string {
	var violations []string
	if !IsEmail(email) {
		violations = append(violations, "Email is invalid")
	}
	if password == "" || len(password) < r.PasswordMinLen {
		violations = append(violations, "Password is too short")
	}
	return violations
}

// Post validates post fields and returns all violations.
func (r Rules) Post(title, content, imageURL string) []string {
	var violations []string
	if len(strings.TrimSpace(title)) < r.TitleMinLen {
		violations = append(violations, "Title is too short")
	}
	if len(strings.TrimSpace(content)) < r.ContentMinLen {
		violations = append(violations, "Content is too short")
	}
	if strings.TrimSpace(imageURL) == "" {
		violations = append(violations, "Image url is empty")
	}
	return violations
}
