package delegate

import (
	"context"
	"strings"

	"github.com/openai/openai-go/v3"
)

// Scope labels the pre-classification can return.
const (
	ScopeIn        = "in_scope"
	ScopeOut       = "out_of_scope"
	ScopeUncertain = "uncertain"
)

const scopePrompt = `Você é um classificador. Responda com exatamente uma das palavras:
in_scope - a pergunta é sobre o SENAI São Carlos (cursos, salas, horários, funcionários, contatos, eventos da escola)
out_of_scope - a pergunta não tem relação com a escola
uncertain - não dá para ter certeza

Responda somente a palavra, nada mais.`

// classifyScope asks the local backend whether the question belongs to
// the school domain. The call is cheap (temperature 0, a handful of
// tokens) and advisory: failures and unparseable output map to
// ScopeUncertain so the hint never blocks an answer on its own.
func (d *Delegate) classifyScope(ctx context.Context, question string) string {
	callCtx, cancel := context.WithTimeout(ctx, d.cfg.Timeout)
	defer cancel()

	resp, err := d.client.Chat.Completions.New(callCtx, openai.ChatCompletionNewParams{
		Model: d.cfg.Model,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(scopePrompt),
			openai.UserMessage(question),
		},
		Temperature: openai.Float(0),
		MaxTokens:   openai.Int(8),
	})
	if err != nil || len(resp.Choices) == 0 {
		return ScopeUncertain
	}
	return scopeFromCompletion(resp.Choices[0].Message.Content)
}

// scopeFromCompletion maps raw completion text onto a scope label.
// Local models pad the label with whitespace, punctuation or echo text,
// so matching is by containment with out_of_scope checked first
// (in_scope is a substring of it).
func scopeFromCompletion(s string) string {
	norm := strings.ToLower(strings.TrimSpace(s))
	switch {
	case strings.Contains(norm, ScopeOut):
		return ScopeOut
	case strings.Contains(norm, ScopeIn):
		return ScopeIn
	default:
		return ScopeUncertain
	}
}
