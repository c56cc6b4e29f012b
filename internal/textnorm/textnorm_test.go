package textnorm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"Lowercase", "ONDE FICA", "onde fica"},
		{"Accents stripped", "onde é o refeitório?", "onde e o refeitorio?"},
		{"Cedilla", "informações", "informacoes"},
		{"Whitespace collapsed", "  sala   315  ", "sala 315"},
		{"Tabs and newlines", "sala\t315\nbloco b", "sala 315 bloco b"},
		{"Empty", "", ""},
		{"Only spaces", "   ", ""},
		{"Mixed", "  Onde FICA o Banheiro MASCULINO?  ", "onde fica o banheiro masculino?"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.input))
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{
		"Onde fica a coordenação?",
		"BANHEIRO MASCULINO (214)",
		"professor João  da Silva",
		"",
		"asdkjqwlzxwww",
	}
	for _, in := range inputs {
		once := Normalize(in)
		assert.Equal(t, once, Normalize(once), "normalize must be idempotent for %q", in)
	}
}

func TestTokens(t *testing.T) {
	assert.Equal(t, []string{"sala", "315", "bloco", "b"}, Tokens(" Sala  315 BLOCO b "))
	assert.Empty(t, Tokens("   "))
}

func TestContainsAny(t *testing.T) {
	assert.True(t, ContainsAny("Onde fica o refeitório?", "refeitorio", "cantina"))
	assert.False(t, ContainsAny("bom dia", "refeitorio", "cantina"))
}

func TestEqualsAny(t *testing.T) {
	assert.True(t, EqualsAny("  Olá ", "ola", "oi"))
	assert.False(t, EqualsAny("ola tudo bem", "ola", "oi"))
}
