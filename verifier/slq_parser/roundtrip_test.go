package slq_parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Re-serializing a parsed query and parsing the canonical form again must
// produce a structurally identical tree.
func TestCanonicalRoundTrip(t *testing.T) {
	tests := []string{
		"x",
		"true",
		"FALSE",
		"deadlock",
		"! deadlock",
		"not (x=1 && y=2)",
		"X x=1",
		"next x = 1",
		"x=1 U y=2",
		"a until b",
		"x=1 => y=2",
		"x=1 implies y=2 or z=3",
		"A G x<=10",
		"E <> x = 5",
		"[] x>0",
		"A x",
		"E F [t<=100] x>5",
		"Pr [#<=50] x+1=2",
		"P F [t<=10] x",
		"pr G [#<=5] x",
		"E F [fuel<=30] x>0",
		"[q<=3] x",
		"-x + 1 = 2",
		"x * 2 ^ 3 % 4 = 0",
		"(x+1)*2 = 4",
		"((x=1))",
		"((x)) = 1",
		"'a.b.c' < 10",
		`"proc.count" >= 3`,
		`"until" = 1`,
		"x /= 2",
		"x == 2",
		"1 <= x",
		"A F [t<=4294967295] x",
		"x = 2147483647",
		"x=1 & y=2 | z=3",
		"! x=1 & y=2",
		"deadlock or x < y and not z=0",
	}
	for _, text := range tests {
		first, err := Parse(text)
		require.NoError(t, err, "query: %s", text)
		canonical := first.String()
		second, err := Parse(canonical)
		require.NoError(t, err, "canonical of %q: %s", text, canonical)
		assert.Equal(t, first, second, "round trip of %q via %q", text, canonical)
		// canonicalization is idempotent
		assert.Equal(t, canonical, second.String(), "query: %s", text)
	}
}

func TestCanonicalForm(t *testing.T) {
	tests := [][2]string{
		{"x=1 and y=2", "x = 1 && y = 2"},
		{"x == 1 | y /= 2", "x = 1 || y != 2"},
		{"A<>x", "A F x"},
		{"E [] x", "E G x"},
		{"pr[#<=50]x+1=2", "Pr [#<=50] x + 1 = 2"},
		{"p F [t<=9] x", "P F [t<=9] x"},
		{"not x until y", "! x U y"},
		{"next x=1", "X x = 1"},
		{`'proc.count' = 3`, `proc.count = 3`},
		{`"true" = 1`, `"true" = 1`},
		{"( x + 1 ) * 2 = 4", "(x + 1) * 2 = 4"},
		{"x IMPLIES deadlock", "x => deadlock"},
	}
	for _, tc := range tests {
		text, want := tc[0], tc[1]
		q, err := Parse(text)
		require.NoError(t, err, "query: %s", text)
		assert.Equal(t, want, q.String(), "query: %s", text)
	}
}
