// Package classify holds the cheap message predicates the engine runs
// before any knowledge lookup or delegate call: gibberish detection,
// small talk, location questions and the domain scope gate.
package classify

import (
	"regexp"
	"strings"

	"github.com/cadubot/cadu-go/internal/config"
	"github.com/cadubot/cadu-go/internal/fuzzy"
	"github.com/cadubot/cadu-go/internal/stringutil"
	"github.com/cadubot/cadu-go/internal/textnorm"
)

// Small talk kinds.
const (
	SmallTalkGreeting = "greeting"
	SmallTalkThanks   = "thanks"
	SmallTalkFarewell = "farewell"
	SmallTalkBotName  = "botname"
	SmallTalkAck      = "ack"
	SmallTalkOther    = "other"
)

var (
	nonWordRe      = regexp.MustCompile(`[^\p{L}\p{N}]`)
	consonantRunRe = regexp.MustCompile(`[bcdfghjklmnpqrstvwxyz]{4,}`)
	keyboardRuns   = []string{"asdf", "qwerty", "zxcv", "hjkl", "fghj", "dfgh"}
	vowels         = "aeiouáéíóúâêîôûàèìòùãõ"
	commonWords    = []string{
		"senai", "curso", "aula", "professor", "sala", "biblioteca", "secretaria",
		"o", "a", "de", "que", "e", "do", "da", "em", "um", "para", "com", "na",
		"qual", "onde", "como", "quando", "quem", "porque", "sobre",
		"informacao", "informação", "preciso", "quero", "gostaria", "pode",
		"me", "você", "voce", "eu", "ele", "ela", "nos", "eles", "elas",
	}
	greetings       = []string{"olá", "ola", "oi", "bom dia", "boa tarde", "boa noite"}
	placeWords      = []string{"area", "área", "sala", "banheiro", "biblioteca", "secretaria", "refeitorio"}
	smallTalkExtras = []string{
		"obrigado", "obrigada", "valeu", "agradeço", "agradeco",
		"tchau", "até mais", "ate mais", "flw", "falou", "até logo", "ate logo",
		"qual seu nome", "como você se chama", "quem é você",
		"beleza", "blz", "tá bom", "ta bom", "ok", "show",
	}
)

// Gibberish reports whether the message looks like keyboard noise:
// repeated characters, too few vowels, long consonant runs or keyboard
// patterns, with an escape hatch for common Portuguese and domain words.
func Gibberish(message string) bool {
	trimmed := strings.ToLower(strings.TrimSpace(message))
	if len([]rune(trimmed)) < 2 {
		return false
	}

	compact := nonWordRe.ReplaceAllString(trimmed, "")
	runes := []rune(compact)
	if len(runes) < 2 {
		return false
	}

	distinct := make(map[rune]bool, len(runes))
	for _, r := range runes {
		distinct[r] = true
	}
	if len(distinct) <= 2 && len(runes) > 3 {
		return true
	}

	vowelCount := 0
	for _, r := range runes {
		if strings.ContainsRune(vowels, r) {
			vowelCount++
		}
	}
	if len(runes) > 4 && float64(vowelCount)/float64(len(runes)) < 0.2 {
		return true
	}

	if !textnorm.ContainsAny(trimmed, commonWords...) && len(runes) > 3 {
		if consonantRunRe.MatchString(compact) {
			return true
		}
	}

	for _, pattern := range keyboardRuns {
		if strings.Contains(compact, pattern) {
			return true
		}
	}

	return false
}

// SmallTalk classifies greetings, thanks, farewells, bot-name questions
// and simple acknowledgements. Messages naming a place are never small
// talk, so "oi, onde fica a sala 315" keeps its location route.
func SmallTalk(message string) (string, bool) {
	lower := strings.ToLower(strings.TrimSpace(message))
	norm := textnorm.Normalize(message)

	if textnorm.ContainsAny(lower, placeWords...) || textnorm.ContainsAny(norm, "area", "sala", "banheiro", "biblioteca", "secretaria", "refeitorio") {
		return "", false
	}

	isSmallTalk := false
	for _, g := range greetings {
		gn := textnorm.Normalize(g)
		if lower == g || norm == gn ||
			strings.HasPrefix(lower, g+" ") || strings.HasPrefix(norm, gn+" ") ||
			strings.HasPrefix(lower, g+"!") || strings.HasPrefix(norm, gn+"!") ||
			strings.Contains(lower, g) || strings.Contains(norm, gn) {
			isSmallTalk = true
			break
		}
	}
	if !isSmallTalk {
		for _, w := range smallTalkExtras {
			if strings.Contains(lower, w) || strings.Contains(norm, textnorm.Normalize(w)) {
				isSmallTalk = true
				break
			}
		}
	}
	if !isSmallTalk {
		return "", false
	}

	switch {
	case textnorm.ContainsAny(norm, "ola", "oi", "bom dia", "boa tarde", "boa noite"):
		return SmallTalkGreeting, true
	case textnorm.ContainsAny(norm, "obrigado", "obrigada", "valeu", "agradeco", "perfeito", "show", "ok"):
		return SmallTalkThanks, true
	case textnorm.ContainsAny(norm, "tchau", "ate", "flw", "falou"):
		return SmallTalkFarewell, true
	case textnorm.ContainsAny(norm, "qual seu nome", "como voce se chama", "quem e voce", "quem e vc"):
		return SmallTalkBotName, true
	case textnorm.ContainsAny(norm, "beleza", "blz", "ta bom"):
		return SmallTalkAck, true
	default:
		return SmallTalkOther, true
	}
}

var (
	schedulePhrases = []string{
		"qual professor", "qual turma", "onde esta o professor",
		"professor esta", "turma esta", "que dia", "que periodo",
		"horario", "horarios",
		"quem vai dar aula", "quem vai dar", "quem da aula",
		"quem esta dando aula", "quem vai estar", "quem esta na sala",
		"quem tem aula", "quem vai estar na sala",
		"tem aula", "vai ter aula", "tem professor", "tem turma",
		"esta ocupada", "esta livre", "esta em uso", "esta sendo usada",
		"quem usa", "quem esta usando",
		"hoje", "agora", "neste momento", "neste horario", "nesta hora",
		"ocupada", "livre", "disponivel", "em uso", "sendo usada", "sendo utilizada",
	}
	contentTriggers = []string{"o que tem", "que tem", "que existe", "o que ha", "que coisas tem"}
	locationPhrases = []string{
		"onde fica", "onde esta", "fica onde", "como chegar", "como chego",
		"onde encontro", "como encontro", "sabe chegar", "sabe encontrar", "pode indicar o caminho",
	}
	locationTerms  = []string{"localizacao", "localiza", "localidade"}
	specificPlaces = []string{
		"setor de apoio", "setor apoio", "apoio", "qualidade de vida",
		"sala 204", "204", "biblioteca", "secretaria", "refeitorio",
		"banheiro", "coordenacao",
	}
	placeKeywords = []string{
		"banheiro", "sanitario", "sala", "biblioteca", "secretaria",
		"refeitorio", "laboratorio", "hidrante", "extintor", "coordenacao", "auditorio",
		"area", "area dois", "area 2",
		"setor de apoio", "setor apoio", "apoio", "qualidade de vida",
		"analise de qualidade de vida", "sala 204", "204",
	}
	areaTwoWords = []string{"area dois", "area 2", "area ii"}
	numberRe     = regexp.MustCompile(`\b\d{2,3}\b`)
)

// IsLocationQuestion reports whether the normalized message explicitly
// asks where something is. Timetable and content questions are excluded
// so they reach their own handlers.
func IsLocationQuestion(norm string, scorer fuzzy.Scorer, th config.Thresholds) bool {
	if norm == "" {
		return false
	}

	compact := strings.ReplaceAll(norm, " ", "")
	if stringutil.IsNumeric(compact) {
		return true
	}

	if textnorm.ContainsAny(norm, schedulePhrases...) {
		return false
	}
	if textnorm.ContainsAny(norm, contentTriggers...) {
		return false
	}

	tokens := textnorm.Tokens(norm)

	for _, phrase := range locationPhrases {
		if !strings.Contains(norm, phrase) {
			continue
		}
		if textnorm.ContainsAny(norm, specificPlaces...) {
			return true
		}
		// Compound questions that also ask about courses or prices go
		// to the delegate.
		hasExtra := false
		for _, tok := range tokens {
			if textnorm.EqualsAny(tok, "curso", "cursos", "valor", "valores", "quanto", "horario", "capacidade") {
				hasExtra = true
				break
			}
		}
		if textnorm.ContainsAny(norm, "quais sao", "me fale sobre", "conte sobre", "fale sobre") || (hasExtra && len(tokens) > 5) {
			return false
		}
		return true
	}

	hasNumber := numberRe.MatchString(norm)

	hasPlaceWord := false
	for _, kw := range placeKeywords {
		if strings.Contains(norm, kw) {
			hasPlaceWord = true
			break
		}
		for _, tok := range tokens {
			if scorer.Ratio(tok, kw) >= th.Typo {
				hasPlaceWord = true
				break
			}
		}
		if hasPlaceWord {
			break
		}
	}

	hasAreaTwo := textnorm.ContainsAny(norm, areaTwoWords...)

	if hasPlaceWord || hasAreaTwo {
		notContent := !textnorm.ContainsAny(norm,
			"o que tem", "que tem", "que existe", "o que ha", "que coisas tem",
			"conteudo", "tem o que", "tem que")
		notSchedule := !textnorm.ContainsAny(norm, "horario", "que horas", "quando", "periodo")
		if hasAreaTwo || (hasNumber || len(tokens) <= 3) && notContent && notSchedule {
			return true
		}
	}

	if textnorm.ContainsAny(norm, locationTerms...) && hasPlaceWord {
		return true
	}
	if hasNumber && hasPlaceWord {
		return true
	}

	return false
}
