package ir

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestShortHash(t *testing.T) {
	hexRe := regexp.MustCompile(`^[0-9a-f]{4}$`)

	first := ShortHash("CUSTOMER_ADDRESS_LINE_ONE")
	second := ShortHash("CUSTOMER_ADDRESS_LINE_ONE")
	other := ShortHash("CUSTOMER_ADDRESS_LINE_TWO")

	assert.Regexp(t, hexRe, first)
	assert.Equal(t, first, second, "hash must be deterministic")
	assert.NotEqual(t, first, other)
}
