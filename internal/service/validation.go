package service

import (
	"regexp"
	"strings"
)

// Fixed formats shared by the entity validators. The N positions of the CPF
// mask accept digits only.
var (
	cpfPattern   = regexp.MustCompile(`^[0-9]{3}\.[0-9]{3}\.[0-9]{3}-[0-9]{2}$`)
	emailPattern = regexp.MustCompile(`^[A-Za-z0-9+_.-]+@[A-Za-z0-9.-]+$`)
)

func isValidCpf(cpf string) bool {
	return cpfPattern.MatchString(cpf)
}

func isValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}

func hasText(s string) bool {
	return strings.TrimSpace(s) != ""
}
