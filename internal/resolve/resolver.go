// Package resolve answers questions from the embedded knowledge base:
// navigation to rooms, institutional facts, courses, staff and the fixed
// safety and administrative topics. Everything here is deterministic; a
// miss means the caller should try the delegate.
package resolve

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/cadubot/cadu-go/internal/config"
	"github.com/cadubot/cadu-go/internal/fuzzy"
	"github.com/cadubot/cadu-go/internal/knowledge"
	"github.com/cadubot/cadu-go/internal/textnorm"
)

// Resolver resolves user questions against the knowledge base.
type Resolver struct {
	store  *knowledge.Store
	scorer fuzzy.Scorer
	th     config.Thresholds
}

// NewResolver builds a resolver over the given store.
func NewResolver(store *knowledge.Store, scorer fuzzy.Scorer, th config.Thresholds) *Resolver {
	return &Resolver{store: store, scorer: scorer, th: th}
}

var (
	digitsOnlyRe  = regexp.MustCompile(`^\d{2,3}$`)
	parenNumberRe = regexp.MustCompile(`\((\d{3})\)`)
	roomNumberRe  = regexp.MustCompile(`\b\d{3}\b`)
	hasLetterRe   = regexp.MustCompile(`\p{L}`)

	// Questions that belong to the timetable handler, never to location.
	schedulePriority = []string{
		"quem esta na sala", "quem esta dando aula", "quem vai dar aula",
		"quem tem aula", "tem aula", "vai ter aula", "esta ocupada",
		"esta livre", "qual professor", "qual turma", "horario da sala",
		"horarios da sala",
	}

	// Questions about a place's contents or attributes, not its location.
	specificQuestions = []string{
		"qual a cor", "qual cor", "o que tem dentro", "o que tem na",
		"o que tem no", "quantos lugares", "qual a capacidade",
		"quantas pessoas", "qual o tamanho",
	}

	// Open-ended phrasings that deserve a generated answer.
	openEndedPhrases = []string{
		"me fale sobre", "conte sobre", "fale sobre", "explique",
		"detalhe", "me informe sobre", "informe sobre",
	}

	upstairsWords = []string{
		"primeiro andar", "1 andar", "andar de cima", "em cima",
		"parte de cima", "andar superior", "la em cima",
	}
	groundWords = []string{
		"terreo", "andar de baixo", "parte de baixo", "embaixo",
	}

	genderMasc = []string{"masculino", "masc", "homem", "homens"}
	genderFem  = []string{"feminino", "fem", "mulher", "mulheres"}
)

// Specific answers the query from the knowledge base. The second return
// is false when the question should fall through to the delegate.
func (r *Resolver) Specific(query string) (string, bool) {
	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		return knowledge.Canned(knowledge.AnswerPlaceNotFound), true
	}

	norm := textnorm.Normalize(trimmed)
	if digitsOnlyRe.MatchString(norm) {
		norm = "sala " + norm
	}
	if !hasLetterRe.MatchString(norm) && !roomNumberRe.MatchString(norm) {
		return knowledge.Canned(knowledge.AnswerPlaceNotFound), true
	}

	if textnorm.ContainsAny(norm, schedulePriority...) {
		return "", false
	}
	// Content questions about área dois and the refeitório have fixed
	// answers below; everything else goes to the delegate.
	if textnorm.ContainsAny(norm, specificQuestions...) &&
		!textnorm.ContainsAny(norm, "area dois", "area 2", "area ii", "refeitorio") {
		return "", false
	}
	if textnorm.ContainsAny(norm, openEndedPhrases...) && !r.compoundLocation(norm) {
		return "", false
	}

	norm = rewriteParenNumber(norm)

	for _, ru := range r.rules() {
		if ans, ok := ru.fn(norm); ok {
			return ans, true
		}
	}
	if isGreetingOnly(norm) {
		return knowledge.Canned(knowledge.AnswerGreeting), true
	}

	return "", false
}

// rule is one step of the resolution order. The name labels the rule in
// tests and debug output.
type rule struct {
	name string
	fn   func(norm string) (string, bool)
}

// rules returns the resolution order. Earlier rules win: área dois,
// visits, bathrooms and the upper-floor routes must beat plain keyword
// scoring, and keyword scoring must beat the fixed intents so
// "onde fica a secretaria" gets directions instead of opening hours.
func (r *Resolver) rules() []rule {
	return []rule{
		{"area_two", r.areaTwoAnswer},
		{"visit", r.visitAnswer},
		{"bathroom", r.bathroomAnswer},
		{"upstairs", upstairsRoute},
		{"location", r.locationAnswer},
		{"fixed_intent", r.fixedIntent},
		{"staff", r.staffAnswer},
	}
}

// compoundLocation reports whether an open-ended phrasing still carries a
// concrete place, e.g. "me fale sobre onde fica a biblioteca".
func (r *Resolver) compoundLocation(norm string) bool {
	if !textnorm.ContainsAny(norm, "onde fica", "onde esta", "como chegar", "como chego") {
		return false
	}
	for _, rm := range r.store.Rooms() {
		for _, kw := range rm.Keywords {
			if strings.Contains(norm, kw) {
				return true
			}
		}
	}
	return false
}

// rewriteParenNumber turns short messages like "banheiro (214) masculino"
// into "banheiro masculino 214" so the regular scoring can resolve them.
func rewriteParenNumber(norm string) string {
	m := parenNumberRe.FindStringSubmatch(norm)
	if m == nil {
		return norm
	}
	// Removing "(214)" can leave a double space; re-tokenizing collapses it
	// so keyword phrases still substring-match.
	rest := textnorm.Tokens(parenNumberRe.ReplaceAllString(norm, ""))
	if len(rest) > 3 {
		return norm
	}
	return strings.Join(rest, " ") + " " + m[1]
}

func (r *Resolver) areaTwoAnswer(norm string) (string, bool) {
	if !textnorm.ContainsAny(norm, "area dois", "area 2", "area ii") {
		return "", false
	}
	if textnorm.ContainsAny(norm, "o que tem", "que tem", "o que ha", "que fica") {
		return "A Área Dois concentra as oficinas e laboratórios de mecânica: a Oficina de Usinagem, " +
			"o Laboratório de Mecânica e a sala de Mecânica Automobilística (223). " +
			"Também ficam lá os sanitários da usinagem. Quer saber como chegar a algum deles?", true
	}
	return "A Área Dois fica nos fundos da escola. Para chegar:\n\n" +
		"- Passe pela catraca na entrada da escola\n" +
		"- Siga reto pelo corredor principal até o final\n" +
		"- Atravesse o pátio em direção aos galpões\n" +
		"- A Área Dois é o conjunto de oficinas à sua frente\n\n" +
		"Lá ficam a Oficina de Usinagem, o Laboratório de Mecânica e a sala de Mecânica Automobilística (223).", true
}

func (r *Resolver) visitAnswer(norm string) (string, bool) {
	wantsVisit := textnorm.ContainsAny(norm, "quero visitar", "posso visitar", "gostaria de visitar",
		"quero conhecer a escola", "gostaria de conhecer a escola", "agendar uma visita", "marcar uma visita")
	if !wantsVisit {
		return "", false
	}
	return fmt.Sprintf("Que ótimo que você quer conhecer o SENAI São Carlos! 😊\n\n"+
		"Para agendar uma visita, entre em contato com a nossa secretaria:\n\n"+
		"- Telefone: %s\n"+
		"- Email: %s\n\n"+
		"A equipe vai combinar o melhor dia e horário e te receber para apresentar a escola, "+
		"os laboratórios e os cursos. Será um prazer te receber!", knowledge.Phone, knowledge.Email), true
}

// bathroomAnswer disambiguates bathroom questions: the school has pairs on
// two floors plus the usinagem toilets, so gender and floor both matter.
func (r *Resolver) bathroomAnswer(norm string) (string, bool) {
	if !r.mentionsBathroom(norm) {
		return "", false
	}
	if !textnorm.ContainsAny(norm, "onde", "fica", "chegar", "chego", "encontro", "localiza", "banheiro", "sanitario") {
		return "", false
	}
	// An explicit room number already disambiguates; let scoring resolve it.
	if roomNumberRe.MatchString(norm) {
		return "", false
	}

	masc := textnorm.ContainsAny(norm, genderMasc...)
	fem := textnorm.ContainsAny(norm, genderFem...)
	upstairs := textnorm.ContainsAny(norm, upstairsWords...)

	if textnorm.ContainsAny(norm, "usinagem", "oficina") {
		return "Os sanitários da usinagem ficam na Área Dois, dentro da oficina:\n\n" +
			"- Atravesse o pátio até os galpões da Área Dois\n" +
			"- Entre na Oficina de Usinagem\n" +
			"- Os sanitários masculino e feminino ficam no fundo da oficina, à esquerda\n\n" +
			"Qualquer dúvida, estou à disposição!", true
	}

	if textnorm.ContainsAny(norm, groundWords...) {
		num := ""
		switch {
		case masc:
			num = "214"
		case fem:
			num = "213"
		}
		if num != "" {
			if rm, ok := r.store.RoomByNumber(num); ok {
				return r.formatRoom(rm), true
			}
		}
		return "No térreo temos os banheiros masculino (Sala 214) e feminino (Sala 213), " +
			"no corredor que começa no refeitório. Qual deles você procura?", true
	}

	if upstairs {
		if masc {
			return "O banheiro masculino do primeiro andar fica no corredor à esquerda da Escada Principal, " +
				"ao lado da Sala de Coordenação (326).\n\n" +
				"Suba a escada, vire à esquerda e siga até quase o final do corredor.", true
		}
		if fem {
			return "Suba pela Escada Principal — à sua frente estão os banheiros femininos e acessíveis (316, 314 e 313).\n\n" +
				"Qualquer dúvida, estou à disposição!", true
		}
	}

	switch {
	case masc:
		return "Temos banheiros masculinos em dois andares:\n\n" +
			"- **Térreo:** Sala 214, no corredor que começa no refeitório\n" +
			"- **1º andar:** no corredor à esquerda da Escada Principal, ao lado da Coordenação (326)\n\n" +
			"Qual deles você procura?", true
	case fem:
		return "Temos banheiros femininos em dois andares:\n\n" +
			"- **Térreo:** Sala 213, no corredor que começa no refeitório\n" +
			"- **1º andar:** Sala 316, em frente à Escada Principal\n\n" +
			"Qual deles você procura?", true
	default:
		return "Temos banheiros em mais de um lugar da escola! Me diga qual você procura:\n\n" +
			"- Banheiro **masculino** ou **feminino**?\n" +
			"- No **térreo** (corredor do refeitório) ou no **1º andar**?\n\n" +
			"Também temos banheiros acessíveis no 1º andar (salas 314 e 313) e sanitários na oficina de usinagem.", true
	}
}

func (r *Resolver) mentionsBathroom(norm string) bool {
	if textnorm.ContainsAny(norm, "banheiro", "sanitario", "toalete", "lavabo") {
		return true
	}
	for _, tok := range textnorm.Tokens(norm) {
		if len(tok) < 5 {
			continue
		}
		if r.scorer.Ratio(tok, "banheiro") >= r.th.Typo || r.scorer.Ratio(tok, "sanitario") >= r.th.Typo {
			return true
		}
	}
	return false
}

// locationAnswer scores every room's keywords against the message and
// formats the navigation answer for the best match. Longer keyword
// phrases win; qualifier and digit boosts break ties between rooms that
// share base keywords.
func (r *Resolver) locationAnswer(norm string) (string, bool) {
	// Require location intent so keyword overlap ("matricula" names both
	// the act and the secretaria desk) cannot hijack other questions.
	hasIntent := textnorm.ContainsAny(norm, "onde", "fica", "ficam", "chegar", "chego", "encontro", "localiza", "caminho") ||
		len(textnorm.Tokens(norm)) <= 2 ||
		roomNumberRe.MatchString(norm)
	if !hasIntent {
		return "", false
	}

	if ans, ok := r.priorityOverride(norm); ok {
		return ans, true
	}

	var best knowledge.Room
	bestScore := 0
	for _, rm := range r.store.Rooms() {
		score := 0
		for _, kw := range rm.Keywords {
			if !strings.Contains(norm, kw) {
				continue
			}
			score += len(kw)
			if strings.Contains(kw, "automobil") {
				score += 50
			}
			if strings.ContainsAny(kw, "0123456789") {
				score += r.th.DigitBoost
			}
		}
		if score == 0 {
			continue
		}
		for _, q := range rm.Qualifiers {
			if strings.Contains(norm, q) {
				score += r.th.QualifierBoost
			}
		}
		if score > bestScore {
			best, bestScore = rm, score
		}
	}

	if bestScore > 0 {
		return r.formatRoom(best), true
	}

	// A room number we do not know still deserves a helpful answer.
	if num := roomNumberRe.FindString(norm); num != "" && textnorm.ContainsAny(norm, "sala", "onde", "fica", "chegar") {
		if rm, ok := r.store.RoomByNumber(num); ok {
			return r.formatRoom(rm), true
		}
		return fmt.Sprintf("Não encontrei a sala %s no meu mapa da escola. "+
			"Ela pode ser uma sala de aula comum — nesse caso, pergunte na secretaria ou a qualquer funcionário, "+
			"que eles te orientam! Se quiser, posso te ajudar a chegar à secretaria, à biblioteca, ao refeitório ou aos laboratórios.", num), true
	}

	return "", false
}

// priorityOverride pins ambiguous words to their most-asked rooms.
func (r *Resolver) priorityOverride(norm string) (string, bool) {
	if strings.Contains(norm, "coordenacao") && !strings.Contains(norm, "estagio") {
		if rm, ok := r.store.RoomByID("coordenacao_326"); ok {
			return r.formatRoom(rm), true
		}
	}
	if textnorm.ContainsAny(norm, "sala do diretor", "sala diretor", "diretoria") ||
		(strings.Contains(norm, "diretor") && textnorm.ContainsAny(norm, "onde", "fica", "chegar", "sala")) {
		if rm, ok := r.store.RoomByID("sala_diretor_marcio"); ok {
			return r.formatRoom(rm), true
		}
	}
	return "", false
}

func (r *Resolver) formatRoom(rm knowledge.Room) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Para chegar ao %s:\n\n", rm.Name)
	for _, step := range rm.Navigation.Steps {
		fmt.Fprintf(&b, "- %s\n", step)
	}

	fmt.Fprintf(&b, "\nLocalização: %s, %s", rm.Location.Building, rm.Location.Floor)
	if n := rm.Location.Room; n != "" && n != "-" {
		fmt.Fprintf(&b, ", Sala %s", n)
	}
	if rm.Hours != "" {
		fmt.Fprintf(&b, "\n\nHorário de funcionamento: %s", rm.Hours)
	}
	if rm.Navigation.ExtraHints != "" {
		fmt.Fprintf(&b, "\n\nDica adicional: %s", rm.Navigation.ExtraHints)
	}
	b.WriteString("\n\nSe precisar de mais ajuda para encontrar, pode perguntar a qualquer funcionário no caminho!")
	return b.String()
}

var greetingOnlyRe = regexp.MustCompile(`^(ola|oi|bom dia|boa tarde|boa noite)[!. ]*$`)

func isGreetingOnly(norm string) bool {
	return greetingOnlyRe.MatchString(norm)
}
