package delegate

import (
	"fmt"
	"strings"

	"github.com/cadubot/cadu-go/internal/history"
	"github.com/cadubot/cadu-go/internal/knowledge"
)

// systemPrompt pins the persona and the answering rules. The delegate
// only ever sees school questions, but the guardrails stay in the prompt
// because local models drift without them.
const systemPrompt = `Você é o Cadu, assistente virtual do SENAI São Carlos (Escola SENAI "Antonio A. Lobbe").

Regras:
1. Responda APENAS com base nas informações fornecidas abaixo. Não invente dados, salas, valores ou horários.
2. Responda sempre em português, de forma clara, cordial e objetiva (no máximo 4 parágrafos curtos).
3. Se a informação não estiver no contexto, diga que não tem certeza e indique a secretaria: telefone ` + knowledge.Phone + ` ou email ` + knowledge.Email + `.
4. Se a pergunta não for sobre o SENAI São Carlos, diga educadamente que só pode ajudar com assuntos da unidade.
5. Nunca se descreva como modelo de linguagem ou inteligência artificial; você é o Cadu, assistente virtual da escola.`

// buildUserPrompt assembles context snippets, recent conversation and the
// question into a single prompt. The same text serves the chat and the
// legacy completion endpoints.
func buildUserPrompt(question string, snippets []string, turns []history.Turn) string {
	var b strings.Builder

	b.WriteString("Informações do SENAI São Carlos:\n")
	if len(snippets) == 0 {
		b.WriteString(knowledge.FullStructure)
		b.WriteString("\n")
	}
	for _, s := range snippets {
		fmt.Fprintf(&b, "- %s\n", s)
	}

	if len(turns) > 0 {
		b.WriteString("\nConversa até agora:\n")
		for _, t := range turns {
			who := "Cadu"
			if t.IsUser() {
				who = "Aluno"
			}
			fmt.Fprintf(&b, "%s: %s\n", who, t.Content)
		}
	}

	fmt.Fprintf(&b, "\nPergunta do aluno: %s\n\nResposta do Cadu:", question)
	return b.String()
}
