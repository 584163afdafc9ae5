package tools

import "regexp"

var emailRe = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// ValidateEmail aceita endereços plausíveis (não tenta cobrir RFC-5322 inteira).
func ValidateEmail(email string) bool {
	return emailRe.MatchString(email)
}
