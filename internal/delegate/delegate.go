// Package delegate generates answers for questions the rule pipeline
// cannot resolve, using a local OpenAI-compatible backend (LM Studio)
// with an optional hosted Gemini fallback.
package delegate

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
	"golang.org/x/sync/singleflight"
	"google.golang.org/genai"

	"github.com/cadubot/cadu-go/internal/config"
	apperrors "github.com/cadubot/cadu-go/internal/errors"
	"github.com/cadubot/cadu-go/internal/history"
	"github.com/cadubot/cadu-go/internal/knowledge"
	"github.com/cadubot/cadu-go/internal/logger"
	"github.com/cadubot/cadu-go/internal/textnorm"
)

// minAnswerLen filters truncated or degenerate backend output.
const minAnswerLen = 20

// snippetBudget bounds the prompt context.
const snippetBudget = 6

// Delegate is the generative answer backend. Safe for concurrent use.
type Delegate struct {
	client openai.Client
	gemini *genai.Client
	cfg    config.DelegateConfig
	ranker *Ranker
	log    *logger.Logger
	group  singleflight.Group
}

// New builds the delegate. The Gemini fallback is only wired when an API
// key is configured; without it the local chain is the whole delegate.
func New(ctx context.Context, cfg config.DelegateConfig, store *knowledge.Store, log *logger.Logger) (*Delegate, error) {
	ranker, err := NewRanker(store.Snippets(), log)
	if err != nil {
		return nil, fmt.Errorf("building snippet index: %w", err)
	}

	d := &Delegate{
		client: openai.NewClient(
			option.WithBaseURL(cfg.BaseURL),
			option.WithAPIKey("lm-studio"),
		),
		cfg:    cfg,
		ranker: ranker,
		log:    log.WithModule("delegate"),
	}

	if cfg.GeminiAPIKey != "" {
		client, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: cfg.GeminiAPIKey})
		if err != nil {
			return nil, fmt.Errorf("creating gemini fallback client: %w", err)
		}
		d.gemini = client
	}
	return d, nil
}

// Answer generates an answer for the question given the recent turns.
// Identical concurrent questions share one backend call.
func (d *Delegate) Answer(ctx context.Context, question string, turns []history.Turn) (string, error) {
	key := textnorm.Normalize(question)
	out, err, _ := d.group.Do(key, func() (any, error) {
		return d.answer(ctx, question, turns)
	})
	if err != nil {
		return "", err
	}
	return out.(string), nil
}

func (d *Delegate) answer(ctx context.Context, question string, turns []history.Turn) (string, error) {
	if scope := d.classifyScope(ctx, question); scope == ScopeOut {
		d.log.WithField("question", question).Debugf("scope check rejected question")
		return "", apperrors.ErrOutOfScope
	}

	snippets := d.ranker.Top(question, snippetBudget)
	prompt := buildUserPrompt(question, snippets, turns)

	start := time.Now()
	answer, err := d.chatCompletion(ctx, prompt)
	if err == nil {
		d.log.Debugf("chat completion answered in %s", time.Since(start))
		return answer, nil
	}
	d.log.Warnf("chat completion failed, trying legacy endpoint: %v", err)

	answer, legacyErr := d.legacyCompletion(ctx, prompt)
	if legacyErr == nil {
		return answer, nil
	}
	d.log.Warnf("legacy completion failed: %v", legacyErr)

	if d.gemini != nil {
		answer, geminiErr := d.geminiCompletion(ctx, prompt)
		if geminiErr == nil {
			return answer, nil
		}
		d.log.Warnf("gemini fallback failed: %v", geminiErr)
	}
	return "", fmt.Errorf("%w: %w", apperrors.ErrDelegateUnavailable, err)
}

func (d *Delegate) chatCompletion(ctx context.Context, prompt string) (string, error) {
	var answer string
	err := withRetry(ctx, d.cfg.MaxRetries, d.cfg.RetryDelay, func() error {
		callCtx, cancel := context.WithTimeout(ctx, d.cfg.Timeout)
		defer cancel()

		resp, err := d.client.Chat.Completions.New(callCtx, openai.ChatCompletionNewParams{
			Model: d.cfg.Model,
			Messages: []openai.ChatCompletionMessageParamUnion{
				openai.SystemMessage(systemPrompt),
				openai.UserMessage(prompt),
			},
			Temperature: openai.Float(0.7),
			MaxTokens:   openai.Int(700),
		})
		if err != nil {
			return fmt.Errorf("chat completion: %w", err)
		}
		if len(resp.Choices) == 0 {
			return ErrEmptyAnswer
		}
		answer = strings.TrimSpace(resp.Choices[0].Message.Content)
		if len([]rune(answer)) < minAnswerLen {
			return ErrEmptyAnswer
		}
		return nil
	})
	if err != nil {
		return "", apperrors.NewDelegateError("local", "/v1/chat/completions", statusCode(err), err)
	}
	return answer, nil
}

// legacyCompletion targets the pre-chat /v1/completions endpoint some
// local models only expose.
func (d *Delegate) legacyCompletion(ctx context.Context, prompt string) (string, error) {
	full := systemPrompt + "\n\n" + prompt

	var answer string
	err := withRetry(ctx, d.cfg.MaxRetries, d.cfg.RetryDelay, func() error {
		callCtx, cancel := context.WithTimeout(ctx, d.cfg.Timeout)
		defer cancel()

		resp, err := d.client.Completions.New(callCtx, openai.CompletionNewParams{
			Model: openai.CompletionNewParamsModel(d.cfg.Model),
			Prompt: openai.CompletionNewParamsPromptUnion{
				OfString: openai.String(full),
			},
			Temperature: openai.Float(0.7),
			MaxTokens:   openai.Int(700),
		})
		if err != nil {
			return fmt.Errorf("legacy completion: %w", err)
		}
		if len(resp.Choices) == 0 {
			return ErrEmptyAnswer
		}
		answer = strings.TrimSpace(resp.Choices[0].Text)
		if len([]rune(answer)) < minAnswerLen {
			return ErrEmptyAnswer
		}
		return nil
	})
	if err != nil {
		return "", apperrors.NewDelegateError("local", "/v1/completions", statusCode(err), err)
	}
	return answer, nil
}

func (d *Delegate) geminiCompletion(ctx context.Context, prompt string) (string, error) {
	cfg := &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(systemPrompt, genai.RoleUser),
		Temperature:       genai.Ptr[float32](0.7),
		MaxOutputTokens:   700,
	}

	resp, err := d.gemini.Models.GenerateContent(ctx, d.cfg.GeminiModel, genai.Text(prompt), cfg)
	if err != nil {
		return "", apperrors.NewDelegateError("gemini", d.cfg.GeminiModel, 0, err)
	}
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", ErrEmptyAnswer
	}

	var b strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if part.Text != "" {
			b.WriteString(part.Text)
		}
	}
	answer := strings.TrimSpace(b.String())
	if len([]rune(answer)) < minAnswerLen {
		return "", ErrEmptyAnswer
	}
	return answer, nil
}
