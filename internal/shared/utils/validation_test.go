package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidEmail(t *testing.T) {
	valid := []string{"a@b.co", "user.name+tag@example.com", "x@sub.domain.org"}
	for _, e := range valid {
		assert.True(t, IsValidEmail(e), e)
	}

	invalid := []string{"", "plain", "@no-local.com", "no-at.com", "two@@x.com", "spaces in@x.com", "noext@host"}
	for _, e := range invalid {
		assert.False(t, IsValidEmail(e), e)
	}
}
