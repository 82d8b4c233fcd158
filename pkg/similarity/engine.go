// Package similarity scores how alike two search keys are. It wraps the
// strutil metrics behind one Engine with a bounded LRU cache, so a query pass
// over a few hundred records reuses scores instead of recomputing them.
package similarity

import (
	"github.com/adrg/strutil"
	"github.com/adrg/strutil/metrics"
	lru "github.com/hashicorp/golang-lru/v2"
)

// Algorithm selects the metric used by Compare.
type Algorithm uint8

const (
	// JaroWinkler is classical Jaro with the Winkler prefix bonus
	// (scaling factor 0.1, common prefix capped at 4).
	JaroWinkler Algorithm = iota
	// Ngram is the Sørensen–Dice coefficient over rune windows of the
	// configured size. Operands are padded with two spaces on each side so
	// edge characters participate in as many windows as interior ones.
	Ngram
	// TokenCosine is cosine similarity of whitespace-token frequency
	// vectors. Token order does not matter.
	TokenCosine
)

const (
	// DefaultNgramSize is the window width for the Ngram metric.
	DefaultNgramSize = 3
	// DefaultCacheCapacity bounds the score cache.
	DefaultCacheCapacity = 4096

	ngramPadding = "  "
)

type cacheKey struct {
	alg  Algorithm
	a, b string
}

// Engine computes similarity scores between already-normalized keys. It does
// no normalization of its own. Safe for concurrent use: the metrics are
// stateless after construction and the cache synchronizes internally.
type Engine struct {
	ngramSize int
	jw        *metrics.JaroWinkler
	dice      *metrics.SorensenDice
	cache     *lru.Cache[cacheKey, float64]
}

// NewEngine creates an Engine. Non-positive ngramSize or cacheCapacity fall
// back to the defaults.
func NewEngine(ngramSize, cacheCapacity int) *Engine {
	if ngramSize <= 0 {
		ngramSize = DefaultNgramSize
	}
	if cacheCapacity <= 0 {
		cacheCapacity = DefaultCacheCapacity
	}

	jw := metrics.NewJaroWinkler()
	jw.CaseSensitive = true

	dice := metrics.NewSorensenDice()
	dice.CaseSensitive = true
	dice.NgramSize = ngramSize

	cache, _ := lru.New[cacheKey, float64](cacheCapacity)

	return &Engine{
		ngramSize: ngramSize,
		jw:        jw,
		dice:      dice,
		cache:     cache,
	}
}

// Compare returns a score in [0, 1]. It is symmetric in a and b and total:
// an empty operand scores 0 and no input panics.
func (e *Engine) Compare(a, b string, alg Algorithm) float64 {
	if a == "" || b == "" {
		return 0
	}
	if a > b {
		a, b = b, a
	}

	key := cacheKey{alg: alg, a: a, b: b}
	if score, ok := e.cache.Get(key); ok {
		return score
	}

	var score float64
	switch alg {
	case JaroWinkler:
		score = strutil.Similarity(a, b, e.jw)
	case Ngram:
		score = strutil.Similarity(ngramPadding+a+ngramPadding, ngramPadding+b+ngramPadding, e.dice)
	case TokenCosine:
		score = tokenCosine(a, b)
	}
	score = clamp01(score)

	e.cache.Add(key, score)
	return score
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
