package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatShortScale(t *testing.T) {
	cases := []struct {
		n        float64
		decimals int
		want     string
	}{
		{0, 1, "0.0"},
		{999, 1, "999.0"},
		{1234, 1, "1234.0"},
		{12345, 1, "12.3 thousand"},
		{1234567, 1, "1.2 million"},
		{200000000, 2, "200.00 million"},
		{3.5e9, 4, "3.5000 billion"},
		{2.5e24, 1, "2.5 septillion"},
		{5e27, 1, "5000.0 septillion"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, FormatShortScale(c.n, c.decimals), "n=%v", c.n)
	}
}
