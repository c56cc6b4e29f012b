package chat

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cadubot/cadu-go/internal/knowledge"
	"github.com/cadubot/cadu-go/internal/textnorm"
)

func TestFallbackAnswerByKeyword(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  string
	}{
		{"pricing", "quanto custa um curso aí", "R$ 200"},
		{"enrollment", "queria me inscrever", "Para se inscrever"},
		{"phone", "preciso ligar para a escola", knowledge.Phone},
		{"address", "onde vocês ficam", "Vila Prado"},
		{"opening hours", "a escola funciona aos sábados?", knowledge.OpeningHours},
		{"benefits", "quais as vantagens de estudar aí", "empregabilidade"},
		{"generic", "xpto qualquer coisa", "não tenho uma resposta pronta"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Contains(t, fallbackAnswer(textnorm.Normalize(tt.query)), tt.want)
		})
	}
}
