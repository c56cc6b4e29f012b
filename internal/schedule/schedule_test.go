package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cadubot/cadu-go/internal/config"
	"github.com/cadubot/cadu-go/internal/fuzzy"
	"github.com/cadubot/cadu-go/internal/textnorm"
)

func newResolver() *Resolver {
	return NewResolver(NewStore(), fuzzy.NewScorer(), config.DefaultThresholds())
}

func TestStoreViewsConsistent(t *testing.T) {
	s := NewStore()

	tt, ok := s.Room("315")
	require.True(t, ok)
	require.NotEmpty(t, tt["noite"]["terça"])
	assert.Equal(t, "Rainer", tt["noite"]["terça"][0].Professor)

	// The professor view carries the room number back.
	tt, ok = s.Professor("Rainer")
	require.True(t, ok)
	require.NotEmpty(t, tt["noite"]["terça"])
	assert.Equal(t, "315", tt["noite"]["terça"][0].Room)

	tt, ok = s.Class("MECATRO 2024")
	require.True(t, ok)
	assert.NotEmpty(t, tt["tarde"]["segunda"])

	_, ok = s.Room("999")
	assert.False(t, ok)
}

func TestFormatRoomSkipsEmptySlots(t *testing.T) {
	s := NewStore()
	tt, ok := s.Room("315")
	require.True(t, ok)

	out := FormatRoom("315", tt)
	assert.Contains(t, out, "Horarios da Sala 315:")
	assert.Contains(t, out, ValidityNote)
	assert.Contains(t, out, "Manhã:")
	assert.Contains(t, out, "Noite:")
	// Room 315 has no afternoon lessons, the period must not appear.
	assert.NotContains(t, out, "Tarde:")
	assert.Contains(t, out, "Terça-feira:")
	assert.NotContains(t, out, "Sexta-feira:")
	assert.Contains(t, out, "- Banco de Dados | Professor: Rainer | Turma: ADS 2024")
}

func TestFormatProfessorShowsRoom(t *testing.T) {
	s := NewStore()
	tt, ok := s.Professor("Claudemir")
	require.True(t, ok)

	out := FormatProfessor("Claudemir", tt)
	assert.Contains(t, out, "Horarios do Professor Claudemir:")
	assert.Contains(t, out, "| Sala: 328")
	assert.Contains(t, out, "Sábado:")
}

func TestFormatEmptyTimetable(t *testing.T) {
	assert.Empty(t, FormatRoom("315", Timetable{}))
	assert.Empty(t, FormatRoom("315", Timetable{"manhã": {}}))
}

func TestIsQuestion(t *testing.T) {
	r := newResolver()

	tests := []struct {
		message string
		want    bool
	}{
		{"sala 315 quem está na sala agora", true},
		{"quem tem aula na sala 315 hoje", true},
		{"tem aula na 334 de noite", true},
		{"horário do professor Rainer", true},
		{"onde está o professor raner", true},
		{"horários da turma ADS 2024", true},
		{"horario da turma ads-2024", true},
		{"quem dá aula de manhã na sala 223", true},
		// Location questions keep their own path.
		{"onde fica a sala 315", false},
		{"315", false},
		// Opening hours are not the school timetable.
		{"qual o horário de funcionamento da secretaria", false},
		{"que horas abre a biblioteca", false},
		{"onde fica o refeitório", false},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, r.IsQuestion(textnorm.Normalize(tc.message)), "message %q", tc.message)
	}
}

func TestAnswerByRoom(t *testing.T) {
	r := newResolver()

	out := r.Answer(textnorm.Normalize("sala 315 quem está na sala agora"))
	assert.Contains(t, out, "Horarios da Sala 315:")
	assert.Contains(t, out, TimetableURL)
	assert.NotContains(t, out, "Tarde:")
}

func TestAnswerByProfessorFuzzy(t *testing.T) {
	r := newResolver()

	// Exact name.
	out := r.Answer(textnorm.Normalize("horário do professor Rainer"))
	assert.Contains(t, out, "Horarios do Professor Rainer:")

	// Typo: "raner" still resolves to Rainer.
	out = r.Answer(textnorm.Normalize("onde está o professor raner"))
	assert.Contains(t, out, "Horarios do Professor Rainer:")
}

func TestAnswerByClass(t *testing.T) {
	r := newResolver()

	out := r.Answer(textnorm.Normalize("horários da turma ads 2024"))
	assert.Contains(t, out, "Horarios da Turma ADS 2024:")

	// Hyphenated spelling matches too.
	out = r.Answer(textnorm.Normalize("horario da turma ads-2024"))
	assert.Contains(t, out, "Horarios da Turma ADS 2024:")
}

func TestAnswerGeneric(t *testing.T) {
	r := newResolver()

	out := r.Answer(textnorm.Normalize("quais são os horários das aulas"))
	assert.Contains(t, out, "Horarios Escolares do SENAI Sao Carlos")
	assert.Contains(t, out, TimetableURL)
}

func TestAnswerUnknownRoomFallsThrough(t *testing.T) {
	r := newResolver()

	// Room 999 has no timetable; the answer still points at the system.
	out := r.Answer(textnorm.Normalize("tem aula na sala 999 hoje"))
	require.NotEmpty(t, out)
	assert.Contains(t, out, TimetableURL)
	assert.NotContains(t, out, "Horarios da Sala 999")
}

func TestNoopScorerDegradesGracefully(t *testing.T) {
	r := NewResolver(NewStore(), fuzzy.NoopScorer{}, config.DefaultThresholds())

	// Exact matches keep working without the fuzzy scorer.
	out := r.Answer(textnorm.Normalize("horário do professor Rainer"))
	assert.Contains(t, out, "Horarios do Professor Rainer:")

	// Typos no longer resolve, the generic pointer takes over.
	out = r.Answer(textnorm.Normalize("onde está o professor raner"))
	assert.Contains(t, out, "Horarios Escolares do SENAI Sao Carlos")
}
