package delegate

import (
	"sort"
	"sync"

	"github.com/crawlab-team/bm25/bm25"

	"github.com/cadubot/cadu-go/internal/logger"
	"github.com/cadubot/cadu-go/internal/textnorm"
)

// Ranker selects the knowledge snippets most relevant to a question so
// the prompt stays bounded no matter how much the knowledge base grows.
type Ranker struct {
	okapi    *bm25.BM25Okapi
	snippets []string
	log      *logger.Logger
	mu       sync.RWMutex
}

// tokenizePT is the BM25 tokenizer: lowercase, accent-free words.
func tokenizePT(text string) []string {
	return textnorm.Tokens(text)
}

// NewRanker indexes the snippets. k1=1.5 and b=0.75 are the standard
// BM25 parameters.
func NewRanker(snippets []string, log *logger.Logger) (*Ranker, error) {
	r := &Ranker{snippets: snippets, log: log}
	if len(snippets) == 0 {
		return r, nil
	}

	okapi, err := bm25.NewBM25Okapi(snippets, tokenizePT, 1.5, 0.75, nil)
	if err != nil {
		return nil, err
	}
	r.okapi = okapi
	log.WithModule("delegate").Debugf("BM25 snippet index built: %d docs", len(snippets))
	return r, nil
}

// Top returns up to n snippets ranked by relevance to the question.
// Snippets that score zero are dropped; an empty result means the prompt
// should fall back to the general overview.
func (r *Ranker) Top(question string, n int) []string {
	if r == nil || r.okapi == nil || n <= 0 {
		return nil
	}

	query := tokenizePT(question)
	if len(query) == 0 {
		return nil
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	scores, err := r.okapi.GetScores(query)
	if err != nil {
		r.log.WithModule("delegate").Warnf("BM25 scoring failed: %v", err)
		return nil
	}

	type scored struct {
		idx   int
		score float64
	}
	ranked := make([]scored, 0, len(scores))
	for i, s := range scores {
		if s > 0 {
			ranked = append(ranked, scored{idx: i, score: s})
		}
	}
	sort.Slice(ranked, func(i, j int) bool { return ranked[i].score > ranked[j].score })

	if len(ranked) > n {
		ranked = ranked[:n]
	}
	out := make([]string, 0, len(ranked))
	for _, sc := range ranked {
		out = append(out, r.snippets[sc.idx])
	}
	return out
}
