package schedule

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/cadubot/cadu-go/internal/config"
	"github.com/cadubot/cadu-go/internal/fuzzy"
	"github.com/cadubot/cadu-go/internal/knowledge"
	"github.com/cadubot/cadu-go/internal/stringutil"
	"github.com/cadubot/cadu-go/internal/textnorm"
)

var (
	roomNumRe        = regexp.MustCompile(`\b(?:sala\s*)?(\d{3})\b`)
	compactRoomRe    = regexp.MustCompile(`sala(\d{3})`)
	shortRoomNumRe   = regexp.MustCompile(`\b\d{2,3}\b`)
	locationWords    = []string{"onde fica", "como chegar", "localizacao"}
	scheduleCtxWords = []string{
		"horario", "aula", "professor", "turma", "quem", "tem aula",
		"vai ter", "ocupada", "livre", "disponivel", "em uso", "hoje", "agora",
	}
	professorCtxWords = []string{
		"onde", "esta", "horario", "aula", "dando", "tem", "professor", "prof",
	}
	operatingHoursWords = []string{
		"horario de funcionamento", "horario de atendimento", "funcionamento",
		"atendimento", "que horas", "horario do senai", "horario da secretaria",
		"horario da biblioteca", "abre", "fecha", "quando abre", "quando fecha",
	}
	schedulePhrases = []string{
		"qual professor", "qual turma", "onde esta o professor",
		"professor esta", "turma esta", "que dia", "que periodo", "horario", "horarios",
		"quem vai dar aula", "quem vai dar", "quem da aula",
		"quem esta dando aula", "quem vai estar", "quem esta na sala",
		"quem tem aula", "quem vai estar na sala",
		"tem aula", "vai ter aula", "tem professor", "tem turma",
		"esta ocupada", "esta livre", "esta em uso", "esta sendo usada",
		"quem usa", "quem esta usando",
		"hoje", "agora", "neste momento", "neste horario", "nesta hora",
		"ocupada", "livre", "disponivel", "em uso", "sendo usada", "sendo utilizada",
	}
)

// Resolver answers timetable questions. Resolution tries room numbers
// first, then professor names (exact, then fuzzy for typos), then class
// names, and finally points at the live timetable system.
type Resolver struct {
	store  *Store
	scorer fuzzy.Scorer
	th     config.Thresholds
}

// NewResolver wires the store with the fuzzy scorer and thresholds.
func NewResolver(store *Store, scorer fuzzy.Scorer, th config.Thresholds) *Resolver {
	return &Resolver{store: store, scorer: scorer, th: th}
}

// IsQuestion reports whether the normalized message asks about the
// school timetable rather than opening hours or room locations.
func (r *Resolver) IsQuestion(norm string) bool {
	compact := strings.ReplaceAll(norm, " ", "")

	// Opening-hours questions go elsewhere unless a room, professor or
	// class is also mentioned.
	if textnorm.ContainsAny(norm, operatingHoursWords...) {
		if !shortRoomNumRe.MatchString(norm) &&
			!strings.Contains(norm, "professor") &&
			!strings.Contains(norm, "turma") &&
			!strings.Contains(norm, "aula") {
			return false
		}
	}

	// A bare number is a location question.
	if compact != "" && stringutil.IsNumeric(compact) {
		return false
	}

	if shortRoomNumRe.MatchString(norm) || compactRoomRe.MatchString(compact) {
		if textnorm.ContainsAny(norm, locationWords...) {
			return false
		}
		return textnorm.ContainsAny(norm, scheduleCtxWords...)
	}

	if name, ok := r.findProfessor(norm); ok && name != "" {
		if textnorm.ContainsAny(norm, professorCtxWords...) {
			return true
		}
	}

	if _, ok := r.store.FindClass(norm); ok {
		return true
	}

	hasPeriod := textnorm.ContainsAny(norm, "manha", "tarde", "noite")
	if hasPeriod && (shortRoomNumRe.MatchString(norm) || strings.Contains(norm, "sala")) {
		return true
	}
	if hasPeriod && strings.Contains(norm, "quem") && strings.Contains(norm, "aula") {
		return true
	}

	return textnorm.ContainsAny(norm, schedulePhrases...)
}

// Answer resolves the normalized message to a timetable response. The
// result always carries the live system pointer, even when nothing
// specific matched.
func (r *Resolver) Answer(norm string) string {
	if num, ok := r.findRoomNumber(norm); ok {
		if tt, found := r.store.Room(num); found {
			return FormatRoom(num, tt) + footer()
		}
	}

	if name, ok := r.findProfessor(norm); ok {
		if tt, found := r.store.Professor(name); found {
			return FormatProfessor(name, tt) + footer()
		}
	}

	if name, ok := r.store.FindClass(norm); ok {
		if tt, found := r.store.Class(name); found {
			return FormatClass(name, tt) + footer()
		}
	}

	return genericAnswer()
}

func (r *Resolver) findRoomNumber(norm string) (string, bool) {
	if m := roomNumRe.FindStringSubmatch(norm); m != nil {
		return m[1], true
	}
	compact := strings.ReplaceAll(norm, " ", "")
	if m := compactRoomRe.FindStringSubmatch(compact); m != nil {
		return m[1], true
	}
	return "", false
}

// findProfessor matches a professor name in the message, exact first,
// then token-level fuzzy so typos like "raner" still hit "rainer".
func (r *Resolver) findProfessor(norm string) (string, bool) {
	type candidate struct {
		name string
		key  string
	}
	candidates := make([]candidate, 0)
	for _, name := range r.store.Professors() {
		candidates = append(candidates, candidate{name: name, key: textnorm.Normalize(name)})
	}

	for _, c := range candidates {
		if strings.Contains(norm, c.key) {
			return c.name, true
		}
	}

	bestScore := 0
	bestName := ""
	for _, c := range candidates {
		if score := r.scorer.PartialRatio(c.key, norm); score >= r.th.Partial && score > bestScore {
			bestScore = score
			bestName = c.name
		}
		for _, tok := range textnorm.Tokens(norm) {
			if len(tok) < 3 {
				continue
			}
			if score := r.scorer.Ratio(tok, c.key); score >= r.th.Name && score > bestScore {
				bestScore = score
				bestName = c.name
			}
		}
	}
	if bestName != "" {
		return bestName, true
	}
	return "", false
}

func footer() string {
	return fmt.Sprintf(
		"\nPara consultar horarios atualizados e substituicoes, acesse:\n%s\n\nTelefone: %s\nEmail: %s",
		TimetableURL, knowledge.Phone, knowledge.Email,
	)
}

func genericAnswer() string {
	return fmt.Sprintf(
		"Horarios Escolares do SENAI Sao Carlos\n\n"+
			"Para consultar os horarios completos e atualizados de salas, professores e turmas, "+
			"acesse o sistema de horarios escolar:\n\n%s\n\n"+
			"No sistema voce pode:\n"+
			"- Ver horarios por sala\n"+
			"- Ver horarios por professor\n"+
			"- Ver horarios por turma\n"+
			"- Consultar substituicoes\n"+
			"- Ver informacoes atualizadas em tempo real\n\n"+
			"Os horarios sao atualizados regularmente. "+
			"Para informacoes especificas sobre uma sala, professor ou turma, "+
			"consulte diretamente no link acima.\n\n"+
			"Se precisar de ajuda para acessar o sistema ou tiver outras duvidas, "+
			"entre em contato:\nTelefone: %s\nEmail: %s",
		TimetableURL, knowledge.Phone, knowledge.Email,
	)
}
