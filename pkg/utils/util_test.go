package utils

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRandomBase36(t *testing.T) {
	s := RandomBase36(7)
	assert.Len(t, s, 7)
	assert.Regexp(t, regexp.MustCompile(`^[0-9a-z]{7}$`), s)
	assert.NotEqual(t, s, RandomBase36(7))
}

func TestGenHashID(t *testing.T) {
	a := GenHashID("salt", 1234567890123)
	b := GenHashID("salt", 1234567890124)
	assert.GreaterOrEqual(t, len(a), 8)
	assert.NotEqual(t, a, b)
	assert.Equal(t, a, GenHashID("salt", 1234567890123))
	assert.NotEqual(t, a, GenHashID("other", 1234567890123))
	assert.Regexp(t, regexp.MustCompile(`^[A-Z2-9]+$`), a)
}
