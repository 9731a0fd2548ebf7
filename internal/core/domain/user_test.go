package domain_test

import (
	"testing"

	"todolist/internal/core/domain"

	"github.com/stretchr/testify/assert"
)

func TestValidUsername(t *testing.T) {
	valid := []string{"bob", "alice_99", "A_b_1", "exactly15chars_"}

	for _, name := range valid {
		assert.True(t, domain.ValidUsername(name), name)
	}

	invalid := []string{
		"",
		"ab",                // too short
		"a!",                // illegal character and too short
		"user name",         // whitespace
		"sixteen_chars_ab",  // too long
		"tabs\tinside",      // control characters
		"dash-not-allowed",  // hyphen
		"ünïcode",           // non-ascii letters
	}

	for _, name := range invalid {
		assert.False(t, domain.ValidUsername(name), name)
	}
}
