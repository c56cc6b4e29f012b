package respond

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cadubot/cadu-go/internal/knowledge"
)

func TestCleanStripsRolePrefixes(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"Assistente: A biblioteca abre às 8h30.", "A biblioteca abre às 8h30."},
		{"Resposta: Olá!", "Olá!"},
		{"Assistente SENAI: Os cursos técnicos são presenciais.", "Os cursos técnicos são presenciais."},
		{"Sem prefixo nenhum.", "Sem prefixo nenhum."},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Clean(tt.in))
	}
}

func TestCleanCollapsesNewlines(t *testing.T) {
	in := "Primeira linha.\n\n\n\nSegunda linha.   \n  Terceira.  "
	want := "Primeira linha.\n\nSegunda linha.\nTerceira."
	assert.Equal(t, want, Clean(in))
}

func TestReplacePlaceholders(t *testing.T) {
	in := "Estamos em {endereco}. Ligue {telefone} ou escreva para {email}."
	out := ReplacePlaceholders(in)
	assert.Contains(t, out, knowledge.Address)
	assert.Contains(t, out, knowledge.Phone)
	assert.Contains(t, out, knowledge.Email)
	assert.NotContains(t, out, "{")
}

func TestFixBathroomRewritesWrongRoom(t *testing.T) {
	in := "O banheiro masculino fica na sala 204, dentro do setor de apoio.\nEle funciona o dia todo."
	out := FixBathroom(in)
	assert.Contains(t, out, "Sala 214")
	assert.Contains(t, out, "Sala 213")
	assert.NotContains(t, out, "sala 204")
	assert.Contains(t, out, "Ele funciona o dia todo.")
}

func TestFixBathroomLeavesCorrectAnswers(t *testing.T) {
	in := "O banheiro masculino do térreo é a Sala 214."
	assert.Equal(t, in, FixBathroom(in))

	in = "O setor de apoio fica na sala 204."
	assert.Equal(t, in, FixBathroom(in))
}

func TestPersonalizeInsertsName(t *testing.T) {
	out := Personalize("Olá! Sou o Cadu, como posso ajudar?", "Ana Paula Souza")
	assert.True(t, strings.HasPrefix(out, "Olá, Ana!"), "got %q", out)
	assert.Contains(t, out, Disclaimer)
}

func TestPersonalizeLowercasesSentenceOpener(t *testing.T) {
	out := Personalize("Olá! Tudo bem?", "Bruno")
	assert.True(t, strings.HasPrefix(out, "Olá, Bruno! tudo bem?"), "got %q", out)
}

func TestPersonalizeThanks(t *testing.T) {
	out := Personalize("De nada! Fico feliz em ajudar!", "Carla")
	assert.True(t, strings.HasPrefix(out, "De nada, Carla!"), "got %q", out)
}

func TestPersonalizeIdempotent(t *testing.T) {
	once := Personalize("Olá! Sou o Cadu.", "Davi")
	twice := Personalize(once, "Davi")
	assert.Equal(t, once, twice)
}

func TestPersonalizeWithoutName(t *testing.T) {
	out := Personalize("Olá! Sou o Cadu.", "  ")
	assert.True(t, strings.HasPrefix(out, "Olá! Sou o Cadu."), "got %q", out)
	assert.Contains(t, out, Disclaimer)
}

func TestPersonalizeCanonicalIdentity(t *testing.T) {
	out := Personalize("Sou um assistente virtual treinado para responder perguntas. Posso ajudar com os cursos.", "")
	assert.Contains(t, out, knowledge.BotIdentity)
	assert.NotContains(t, out, "assistente virtual treinado")
	assert.Contains(t, out, "Posso ajudar com os cursos.")
}

func TestAppendDisclaimerOnce(t *testing.T) {
	out := AppendDisclaimer(AppendDisclaimer("Resposta final."))
	assert.Equal(t, 1, strings.Count(out, "site oficial"))
}
