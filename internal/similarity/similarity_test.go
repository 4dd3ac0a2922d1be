package similarity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScoreIdentical(t *testing.T) {
	for _, s := range []string{"sunset", "a", "brookdale senior"} {
		assert.Equal(t, 1.0, Score(s, s), "Score(%q, %q)", s, s)
	}
}

func TestScoreBothEmpty(t *testing.T) {
	assert.Equal(t, 1.0, Score("", ""))
}

func TestScoreAgainstEmpty(t *testing.T) {
	// Distance equals the other string's length, so the score is 0.
	assert.Equal(t, 0.0, Score("", "sunset"))
	assert.Equal(t, 0.0, Score("sunset", ""))
}

func TestScoreKnownDistances(t *testing.T) {
	tests := []struct {
		a, b     string
		expected float64
	}{
		// edit distance 3 over max length 7
		{"kitten", "sitting", 4.0 / 7.0},
		// single substitution over length 6
		{"sunset", "sunsat", 5.0 / 6.0},
		// one insertion over length 9
		{"brookdale", "brookdal", 8.0 / 9.0},
		{"abc", "xyz", 0.0},
	}

	for _, tt := range tests {
		assert.InDelta(t, tt.expected, Score(tt.a, tt.b), 1e-9, "Score(%q, %q)", tt.a, tt.b)
	}
}

func TestScoreSymmetric(t *testing.T) {
	pairs := [][2]string{
		{"sunset manor", "sunset"},
		{"kitten", "sitting"},
		{"", "golden oaks"},
		{"a", "ab"},
	}

	for _, p := range pairs {
		assert.Equal(t, Score(p[0], p[1]), Score(p[1], p[0]), "Score(%q, %q) should be symmetric", p[0], p[1])
	}
}

func TestScoreRange(t *testing.T) {
	pairs := [][2]string{
		{"completely different", "x"},
		{"sunset", "sunrise"},
		{"", ""},
		{"a", "bbbbbbbbbbbbbbbb"},
	}

	for _, p := range pairs {
		score := Score(p[0], p[1])
		assert.GreaterOrEqual(t, score, 0.0)
		assert.LessOrEqual(t, score, 1.0)
	}
}

func TestScoreMonotonicInDistance(t *testing.T) {
	// Growing edit distance against a fixed base never raises the score.
	base := "brookdale"
	variants := []string{"brookdale", "brookdalx", "brookdaxx", "brookxxxx"}

	prev := 1.1
	for _, v := range variants {
		score := Score(base, v)
		assert.LessOrEqual(t, score, prev, "Score(%q, %q)", base, v)
		prev = score
	}
}
