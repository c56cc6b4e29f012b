package delegate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cadubot/cadu-go/internal/knowledge"
	"github.com/cadubot/cadu-go/internal/logger"
)

func TestRankerTopReturnsRelevantSnippets(t *testing.T) {
	snippets := []string{
		"Biblioteca: acervo técnico. Horário: segunda a quinta das 8h30 às 22h.",
		"Refeitório: espaço para refeições com cantina.",
		"Curso: Mecatrônica Industrial. Modalidade presencial, período noturno.",
	}
	r, err := NewRanker(snippets, logger.New("error"))
	require.NoError(t, err)

	top := r.Top("qual o horário da biblioteca", 2)
	require.NotEmpty(t, top)
	assert.Contains(t, top[0], "Biblioteca")
}

func TestRankerTopBounded(t *testing.T) {
	store := knowledge.NewStore()
	r, err := NewRanker(store.Snippets(), logger.New("error"))
	require.NoError(t, err)

	top := r.Top("cursos de mecatrônica e informática", 3)
	assert.LessOrEqual(t, len(top), 3)
}

func TestRankerEmptyInputs(t *testing.T) {
	r, err := NewRanker(nil, logger.New("error"))
	require.NoError(t, err)
	assert.Nil(t, r.Top("qualquer pergunta", 5))

	full, err := NewRanker([]string{"doc"}, logger.New("error"))
	require.NoError(t, err)
	assert.Nil(t, full.Top("   ", 5))
	assert.Nil(t, full.Top("pergunta", 0))
}
