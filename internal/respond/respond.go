// Package respond post-processes every outgoing answer: cleaning of
// delegate output, placeholder substitution, factual corrections, user
// name personalization and the source disclaimer.
package respond

import (
	"regexp"
	"strings"

	"github.com/cadubot/cadu-go/internal/knowledge"
	"github.com/cadubot/cadu-go/internal/textnorm"
)

// Disclaimer is appended to every answer exactly once.
const Disclaimer = "\n\n(As informações deste chat são baseadas no site oficial https://sp.senai.br/unidade/saocarlos/ e na equipe gestora. Para mais informações, consulte os canais oficiais.)"

var (
	// Role prefixes language models tend to prepend to their output.
	rolePrefixes = []string{
		"Assistente SENAI:", "Assistente:", "Sistema:", "Chatbot:",
		"Resposta:", "SENAI:", "Bot:", "AI:",
	}

	multiNewlineRe = regexp.MustCompile(`\n{3,}`)
	identityRe     = regexp.MustCompile(`(?i)\bsou (um|uma) (assistente virtual|intelig[êe]ncia artificial|modelo de linguagem|chatbot|ia)\b[^.!?]*[.!?]?`)
	wrongBathRe    = regexp.MustCompile(`(?i)sala 20[0-9]`)
)

// Clean strips role prefixes and normalizes whitespace in generated text.
func Clean(answer string) string {
	lines := strings.Split(answer, "\n")
	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		for _, p := range rolePrefixes {
			if strings.HasPrefix(trimmed, p) {
				trimmed = strings.TrimSpace(strings.TrimPrefix(trimmed, p))
				break
			}
		}
		lines[i] = trimmed
	}
	out := strings.Join(lines, "\n")
	out = multiNewlineRe.ReplaceAllString(out, "\n\n")
	return strings.TrimSpace(out)
}

// ReplacePlaceholders fills the contact placeholders knowledge texts and
// prompts may carry.
func ReplacePlaceholders(answer string) string {
	r := strings.NewReplacer(
		"{endereco}", knowledge.Address,
		"{telefone}", knowledge.Phone,
		"{email}", knowledge.Email,
	)
	return r.Replace(answer)
}

// bathroomFacts is the canonical correction for hallucinated bathroom
// locations. Room 20x numbers next to "banheiro" are a recurring delegate
// mistake (the 20x corridor holds the support offices, not bathrooms).
const bathroomFacts = "Os banheiros principais ficam no corredor que começa no refeitório, no andar inferior. " +
	"O Banheiro Masculino é a Sala 214 e o Banheiro Feminino é a Sala 213."

// FixBathroom rewrites generated answers that misplace the bathrooms.
func FixBathroom(answer string) string {
	norm := textnorm.Normalize(answer)
	if !strings.Contains(norm, "banheiro") {
		return answer
	}
	if !wrongBathRe.MatchString(answer) && !strings.Contains(norm, "setor de apoio") {
		return answer
	}

	var kept []string
	for _, line := range strings.Split(answer, "\n") {
		ln := textnorm.Normalize(line)
		if strings.Contains(ln, "banheiro") && (wrongBathRe.MatchString(line) || strings.Contains(ln, "setor de apoio")) {
			continue
		}
		kept = append(kept, line)
	}
	rest := strings.TrimSpace(strings.Join(kept, "\n"))
	if rest == "" {
		return bathroomFacts
	}
	return bathroomFacts + "\n\n" + rest
}

// Personalize addresses the user by first name, pins the assistant
// identity to its canonical form and appends the disclaimer. Safe to call
// on already personalized text.
func Personalize(answer, userName string) string {
	out := identityRe.ReplaceAllString(answer, knowledge.BotIdentity)

	if name := FirstName(userName); name != "" {
		out = insertName(out, name)
	}
	return AppendDisclaimer(out)
}

// FirstName extracts the first name from a full user name.
func FirstName(userName string) string {
	fields := strings.Fields(userName)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}

var greetingPrefixes = []string{"Olá!", "Olá,", "Olá", "Oi!", "Oi,", "Oi", "Bem-vindo!", "Bem-vindo"}

func insertName(answer, name string) string {
	if strings.Contains(answer, ", "+name) {
		return answer
	}

	if strings.HasPrefix(answer, "De nada!") {
		return "De nada, " + name + "!" + strings.TrimPrefix(answer, "De nada!")
	}

	for _, g := range greetingPrefixes {
		if !strings.HasPrefix(answer, g) {
			continue
		}
		rest := strings.TrimPrefix(answer, g)
		base := strings.TrimRight(g, "!,")
		// "Olá Tudo bem?" reads wrong once the name lands in the middle.
		rest = lowercaseLead(rest)
		return base + ", " + name + "!" + rest
	}
	return answer
}

// lowercaseLead lowercases the first letter after the greeting unless it
// starts a proper name the answer already carries (kept simple: only the
// common sentence openers are lowered).
func lowercaseLead(rest string) string {
	trimmed := strings.TrimLeft(rest, " ")
	for _, opener := range []string{"Tudo", "Como", "Seja", "Que", "Em"} {
		if strings.HasPrefix(trimmed, opener) {
			lead := strings.ToLower(trimmed[:1]) + trimmed[1:]
			return " " + lead
		}
	}
	return rest
}

// AppendDisclaimer appends the source disclaimer exactly once.
func AppendDisclaimer(answer string) string {
	if strings.Contains(answer, Disclaimer) {
		return answer
	}
	return answer + Disclaimer
}
