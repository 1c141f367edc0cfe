package random

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAlphaNumeric(t *testing.T) {
	t.Parallel()

	re := regexp.MustCompile(`^[a-zA-Z0-9]*$`)
	for _, n := range []int{0, 1, 16, 100} {
		s := AlphaNumeric(n)
		assert.Len(t, s, n)
		assert.Regexp(t, re, s)
	}
}
