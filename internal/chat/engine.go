// Package chat implements the message pipeline: classification, cached
// and rule-based answers first, the generative delegate last. Every path
// out of the engine is personalized and carries the source disclaimer.
package chat

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/cadubot/cadu-go/internal/cache"
	"github.com/cadubot/cadu-go/internal/classify"
	"github.com/cadubot/cadu-go/internal/config"
	"github.com/cadubot/cadu-go/internal/ctxutil"
	apperrors "github.com/cadubot/cadu-go/internal/errors"
	"github.com/cadubot/cadu-go/internal/fuzzy"
	"github.com/cadubot/cadu-go/internal/history"
	"github.com/cadubot/cadu-go/internal/knowledge"
	"github.com/cadubot/cadu-go/internal/logger"
	"github.com/cadubot/cadu-go/internal/metrics"
	"github.com/cadubot/cadu-go/internal/resolve"
	"github.com/cadubot/cadu-go/internal/respond"
	"github.com/cadubot/cadu-go/internal/schedule"
	"github.com/cadubot/cadu-go/internal/sentry"
	"github.com/cadubot/cadu-go/internal/textnorm"
)

// Generator produces an answer when no rule applies. Implemented by the
// delegate; stubbed in tests.
type Generator interface {
	Answer(ctx context.Context, question string, turns []history.Turn) (string, error)
}

// ClientLimiter gates generative calls per client key. Implemented by
// ratelimit.DelegateLimiter.
type ClientLimiter interface {
	Allow(key string) bool
}

// Routes, used as metric labels and debug output.
const (
	RouteGibberish  = "gibberish"
	RouteCache      = "cache"
	RouteSmallTalk  = "smalltalk"
	RouteKnowledge  = "knowledge"
	RouteSchedule   = "schedule"
	RouteContact    = "contact"
	RouteLocation   = "location"
	RouteDelegate   = "delegate"
	RouteOutOfScope = "out_of_scope"
	RouteFallback   = "fallback"
	RoutePanic      = "panic"
)

const gibberishAnswer = "Desculpe, não consegui entender sua mensagem. 🤔 " +
	"Pode escrever de novo? Se sua dúvida for sobre o SENAI São Carlos, " +
	"inclua o assunto (curso, horário, sala, secretaria) que eu te ajudo!"

// minDelegateLen rejects degenerate generated answers.
const minDelegateLen = 20

// Engine runs the answer pipeline. Safe for concurrent use.
type Engine struct {
	cache     *cache.Cache
	resolver  *resolve.Resolver
	schedule  *schedule.Resolver
	generator Generator
	genLimit  ClientLimiter
	scorer    fuzzy.Scorer
	th        config.Thresholds
	metrics   *metrics.Metrics
	log       *logger.Logger
	noStore   cache.NoStoreFunc

	historyWindow int
	historyMaxLen int
}

// Params bundles the engine dependencies.
type Params struct {
	Cache           *cache.Cache
	Store           *knowledge.Store
	Schedule        *schedule.Resolver
	Generator       Generator     // nil disables the delegate
	DelegateLimiter ClientLimiter // nil disables the delegate quota
	Scorer          fuzzy.Scorer
	Thresholds      config.Thresholds
	Metrics         *metrics.Metrics
	Log             *logger.Logger

	HistoryWindow int
	HistoryMaxLen int
}

// New builds the engine.
func New(p Params) *Engine {
	return &Engine{
		cache:         p.Cache,
		resolver:      resolve.NewResolver(p.Store, p.Scorer, p.Thresholds),
		schedule:      p.Schedule,
		generator:     p.Generator,
		genLimit:      p.DelegateLimiter,
		scorer:        p.Scorer,
		th:            p.Thresholds,
		metrics:       p.Metrics,
		log:           p.Log.WithModule("chat"),
		noStore:       NoStore(p.Schedule),
		historyWindow: p.HistoryWindow,
		historyMaxLen: p.HistoryMaxLen,
	}
}

// NoStore returns the predicate for answers that must never be cached:
// timetable questions are time-dependent and área dois answers depend on
// phrasing.
func NoStore(sched *schedule.Resolver) cache.NoStoreFunc {
	return func(query string) bool {
		norm := textnorm.Normalize(query)
		if sched.IsQuestion(norm) {
			return true
		}
		if textnorm.ContainsAny(norm, "professor", "professora", "docente") &&
			textnorm.ContainsAny(norm, "aula", "horario", "sala", "turma") {
			return true
		}
		return textnorm.ContainsAny(norm, "area dois", "area 2", "area ii")
	}
}

// Answer processes one user message given the prior turns and always
// returns a usable reply.
func (e *Engine) Answer(ctx context.Context, message string, turns []history.Turn) (answer string) {
	start := time.Now()
	route := RouteFallback

	defer func() {
		if r := recover(); r != nil {
			e.log.Errorf("panic while answering: %v", r)
			sentry.CaptureExceptionWithContext(ctx, fmt.Errorf("chat pipeline panic: %v", r))
			route = RoutePanic
			answer = respond.AppendDisclaimer(knowledge.Canned(knowledge.AnswerGeneralError))
		}
		status := "success"
		if route == RoutePanic {
			status = "error"
		}
		e.metrics.RecordChat(route, status, time.Since(start).Seconds())
	}()

	userName := history.UserName(turns)
	raw, r := e.resolve(ctx, message, turns)
	route = r

	return respond.Personalize(raw, userName)
}

// resolve picks the first pipeline stage that can answer. The returned
// text has no personalization yet.
func (e *Engine) resolve(ctx context.Context, message string, turns []history.Turn) (string, string) {
	trimmed := strings.TrimSpace(message)
	if trimmed == "" {
		return gibberishAnswer, RouteGibberish
	}
	norm := textnorm.Normalize(trimmed)

	if classify.Gibberish(trimmed) {
		return gibberishAnswer, RouteGibberish
	}

	noStore := e.noStore(trimmed)
	if ans, ok := e.cache.Lookup(trimmed, !noStore); ok {
		e.metrics.RecordCacheHit("memory")
		return ans, RouteCache
	}
	e.metrics.RecordCacheMiss()

	if kind, ok := classify.SmallTalk(trimmed); ok {
		return knowledge.Canned(cannedKeyFor(kind)), RouteSmallTalk
	}

	if ans, ok := libraryHours(norm); ok {
		e.put(trimmed, ans, noStore)
		return ans, RouteKnowledge
	}

	if e.schedule.IsQuestion(norm) {
		return e.schedule.Answer(norm), RouteSchedule
	}

	if ans, ok := contactAnswer(norm); ok {
		e.put(trimmed, ans, noStore)
		return ans, RouteContact
	}

	if ans, ok := e.resolver.Specific(trimmed); ok {
		e.put(trimmed, ans, noStore)
		return ans, RouteLocation
	}

	if !classify.InScope(trimmed, e.scorer, e.th) {
		return knowledge.Canned(knowledge.AnswerOutOfScope), RouteOutOfScope
	}

	if e.generator != nil {
		if e.genLimit != nil && !e.genLimit.Allow(ctxutil.ClientIP(ctx)) {
			return quotaAnswer(), RouteFallback
		}
		window := history.Window(turns, e.historyWindow, e.historyMaxLen)
		gen, err := e.generator.Answer(ctx, trimmed, window)
		if err == nil {
			ans := respond.FixBathroom(respond.ReplacePlaceholders(respond.Clean(gen)))
			if len([]rune(ans)) >= minDelegateLen {
				e.put(trimmed, ans, noStore)
				return ans, RouteDelegate
			}
		} else if apperrors.IsOutOfScope(err) {
			return knowledge.Canned(knowledge.AnswerOutOfScope), RouteOutOfScope
		} else if apperrors.IsDelegateUnavailable(err) {
			e.log.Warnf("no delegate backend reachable: %v", err)
		} else {
			e.log.Warnf("delegate failed: %v", err)
		}
	}

	return fallbackAnswer(norm), RouteFallback
}

func (e *Engine) put(message, answer string, noStore bool) {
	if noStore {
		return
	}
	e.cache.Put(message, answer)
}

func cannedKeyFor(kind string) string {
	switch kind {
	case classify.SmallTalkGreeting:
		return knowledge.AnswerGreeting
	case classify.SmallTalkThanks:
		return knowledge.AnswerThanks
	case classify.SmallTalkFarewell:
		return knowledge.AnswerFarewell
	case classify.SmallTalkBotName:
		return knowledge.AnswerBotName
	case classify.SmallTalkAck:
		return knowledge.AnswerAck
	default:
		return knowledge.AnswerGreeting
	}
}

// libraryHours answers the recurring library opening hours question.
// The library is the only place whose hours beat its location in demand.
func libraryHours(norm string) (string, bool) {
	if !strings.Contains(norm, "biblioteca") {
		return "", false
	}
	if !textnorm.ContainsAny(norm, "horario", "que horas", "abre", "fecha", "funciona", "aberta") {
		return "", false
	}
	return fmt.Sprintf("A Biblioteca funciona: %s.\n\n"+
		"Ela fica no corredor principal, antes da secretaria. Quer saber como chegar?", knowledge.LibraryHours), true
}

// contactAnswer resolves direct contact questions.
func contactAnswer(norm string) (string, bool) {
	switch {
	case textnorm.ContainsAny(norm, "telefone", "numero da secretaria", "whatsapp", "ligar"):
		return fmt.Sprintf("O telefone do SENAI São Carlos é %s. O atendimento da secretaria é de %s.",
			knowledge.Phone, knowledge.OpeningHours), true
	case textnorm.ContainsAny(norm, "email", "e mail"):
		return fmt.Sprintf("O email do SENAI São Carlos é %s. Se preferir, ligue %s.",
			knowledge.Email, knowledge.Phone), true
	case textnorm.ContainsAny(norm, "endereco", "cep"):
		return knowledge.Canned(knowledge.AnswerAddress), true
	case strings.Contains(norm, "contato"):
		return fmt.Sprintf("Você pode falar com o SENAI São Carlos pelos canais:\n\n"+
			"- Telefone: %s\n- Email: %s\n- Site: %s\n\nA secretaria atende: %s.",
			knowledge.Phone, knowledge.Email, knowledge.Website, knowledge.OpeningHours), true
	}
	return "", false
}

// quotaAnswer is returned when a client exhausted the generative quota.
// Rule-based answers keep working.
func quotaAnswer() string {
	return fmt.Sprintf("Você fez muitas perguntas abertas em pouco tempo, então vou dar uma pausa "+
		"nas respostas mais elaboradas. 😅 Perguntas sobre salas, horários, cursos e contatos "+
		"continuam funcionando normalmente! Se for urgente, fale com a secretaria: %s.", knowledge.Phone)
}
