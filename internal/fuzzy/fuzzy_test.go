package fuzzy

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRatio(t *testing.T) {
	s := NewScorer()

	tests := []struct {
		name string
		a, b string
		want int
	}{
		{"Identical", "rainer", "rainer", 100},
		{"Empty both", "", "", 100},
		{"One empty", "rainer", "", 0},
		{"Single insertion", "raner", "rainer", 83},
		{"Single substitution", "abcd", "abce", 75},
		{"Disjoint", "abc", "xyz", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, s.Ratio(tt.a, tt.b))
		})
	}
}

func TestRatioSymmetric(t *testing.T) {
	s := NewScorer()
	pairs := [][2]string{{"raner", "rainer"}, {"sala 315", "sala 316"}, {"", "x"}}
	for _, p := range pairs {
		assert.Equal(t, s.Ratio(p[0], p[1]), s.Ratio(p[1], p[0]))
	}
}

func TestPartialRatio(t *testing.T) {
	s := NewScorer()

	assert.Equal(t, 100, s.PartialRatio("joao", "professor joao da silva"))
	assert.Equal(t, 100, s.PartialRatio("professor joao da silva", "joao"))
	assert.Equal(t, 100, s.PartialRatio("", ""))
	assert.Equal(t, 0, s.PartialRatio("", "abc"))
	assert.GreaterOrEqual(t, s.PartialRatio("melli", "julio cesar melli"), 100)
}

func TestTokenSetRatio(t *testing.T) {
	s := NewScorer()

	assert.Equal(t, 100, s.TokenSetRatio("horario da biblioteca", "biblioteca horario da"))
	assert.Equal(t, 100, s.TokenSetRatio("sala sala 315", "sala 315"))
	assert.Greater(t, s.TokenSetRatio("qual o horario da biblioteca", "horario biblioteca"), 55)
	assert.Less(t, s.TokenSetRatio("receita de bolo", "horario biblioteca"), 55)
}

func TestNoopScorer(t *testing.T) {
	var s Scorer = NoopScorer{}
	assert.Zero(t, s.Ratio("a", "a"))
	assert.Zero(t, s.PartialRatio("a", "a"))
	assert.Zero(t, s.TokenSetRatio("a", "a"))
}

func TestBestMatch(t *testing.T) {
	s := NewScorer()
	names := []string{"fernanda moreira", "rainer messias bruno", "julio cesar melli"}

	got, score := BestMatch("rainer", names, s.PartialRatio)
	assert.Equal(t, "rainer messias bruno", got)
	assert.Equal(t, 100, score)

	got, score = BestMatch("x", nil, s.Ratio)
	assert.Empty(t, got)
	assert.Zero(t, score)
}
