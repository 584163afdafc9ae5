package tools

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateEmail(t *testing.T) {
	valid := []string{
		"john@example.com",
		"john.doe+tag@sub.example.co",
		"a_b%c@dominio.com.br",
	}
	for _, e := range valid {
		assert.True(t, ValidateEmail(e), e)
	}

	invalid := []string{
		"",
		"not-an-email",
		"missing@tld",
		"@example.com",
		"john@",
		"john doe@example.com",
	}
	for _, e := range invalid {
		assert.False(t, ValidateEmail(e), e)
	}
}
