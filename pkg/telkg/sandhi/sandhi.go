// Package sandhi implements the euphonic-junction rule engine. Joining two
// word forms runs a priority-ordered cascade of rules, each proposing zero
// or more candidate joined surface forms. Because several rules can fire on
// the same pair, the result is a set of plausible forms, not a single
// canonical one; callers must accept that ambiguity.
package sandhi

import (
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"sync"

	"github.com/granthika/telkg/pkg/telkg/internalerr"
	"github.com/granthika/telkg/pkg/telkg/script"
)

// Mode controls rule dispatch.
type Mode string

const (
	// ModeStrict stops after the first rule that emits a candidate.
	ModeStrict Mode = "strict"
	// ModeAdaptive runs every rule and unions the candidates.
	ModeAdaptive Mode = "adaptive"
	// ModePermissive behaves like adaptive; it exists so callers can widen
	// dispatch later without an API change.
	ModePermissive Mode = "permissive"
)

// ParseMode validates a mode string.
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case ModeStrict, ModeAdaptive, ModePermissive:
		return Mode(s), nil
	}
	return "", fmt.Errorf("%w: %q", internalerr.ErrInvalidMode, s)
}

// DefaultCacheLimit bounds the join cache. Once full, new pairs are computed
// but not stored; existing entries keep being served.
const DefaultCacheLimit = 50000

// ApplyFunc is a pure junction rule: given the leading and trailing word it
// proposes candidate joined forms, or nil for no match.
type ApplyFunc func(first, second string) []string

// Rule is a registered junction rule. Lower priority runs first.
type Rule struct {
	Name     string
	Priority int
	Apply    ApplyFunc
}

// CacheStats is a diagnostic snapshot of the join cache and rule activity.
type CacheStats struct {
	Size          int
	Hits          int64
	TotalRequests int64
	HitRate       float64
	RuleFirings   map[string]int64
}

// Engine is the junction rule engine. Safe for concurrent use.
type Engine struct {
	mode       Mode
	rules      []Rule
	cacheLimit int
	logger     *slog.Logger

	mu       sync.Mutex
	cache    map[[2]string][]string
	hits     int64
	requests int64
	firings  map[string]int64
}

// New creates an engine with the built-in rule set registered.
func New(mode Mode) (*Engine, error) {
	if _, err := ParseMode(string(mode)); err != nil {
		return nil, err
	}
	e := &Engine{
		mode:       mode,
		cacheLimit: DefaultCacheLimit,
		logger:     slog.Default().With("component", "sandhi"),
		cache:      make(map[[2]string][]string),
		firings:    make(map[string]int64),
	}
	e.registerBuiltinRules()
	return e, nil
}

// AddRule registers an extra rule and keeps dispatch order by priority.
func (e *Engine) AddRule(name string, priority int, fn ApplyFunc) {
	e.rules = append(e.rules, Rule{Name: name, Priority: priority, Apply: fn})
	sort.SliceStable(e.rules, func(i, j int) bool {
		return e.rules[i].Priority < e.rules[j].Priority
	})
}

// Join returns the candidate joined surface forms for the pair. Results are
// cached by (first, second); repeated calls serve the cached set without
// re-running any rule.
func (e *Engine) Join(first, second string) []string {
	pūrva := strings.TrimSpace(first)
	para := strings.TrimSpace(second)
	if pūrva == "" || para == "" {
		return []string{first + " " + second}
	}

	key := [2]string{pūrva, para}
	e.mu.Lock()
	if cached, ok := e.cache[key]; ok {
		e.hits++
		e.mu.Unlock()
		return cached
	}
	e.requests++
	e.mu.Unlock()

	candidates := newCandidateSet()
	fired := false
	for _, rule := range e.rules {
		forms := e.safeApply(rule, pūrva, para)
		if len(forms) == 0 {
			continue
		}
		fired = true
		candidates.addAll(forms)
		e.mu.Lock()
		e.firings[rule.Name]++
		e.mu.Unlock()
		if e.mode == ModeStrict {
			break
		}
	}

	if !fired {
		candidates.add(pūrva + " " + para)
		if script.StartsWithVowel(para) {
			candidates.add(pūrva + para)
		}
	} else if e.mode != ModeStrict {
		// The unjoined reading is always plausible; keep it alongside the
		// rule candidates.
		candidates.add(pūrva + " " + para)
	}

	result := candidates.slice()

	e.mu.Lock()
	if len(e.cache) < e.cacheLimit {
		e.cache[key] = result
	}
	e.mu.Unlock()

	return result
}

// safeApply runs one rule, converting a panic into a logged skip so a
// faulty rule never aborts the join.
func (e *Engine) safeApply(rule Rule, first, second string) (forms []string) {
	defer func() {
		if r := recover(); r != nil {
			e.logger.Debug("sandhi rule failed",
				"rule", rule.Name, "first", first, "second", second, "panic", r)
			forms = nil
		}
	}()
	return rule.Apply(first, second)
}

// CacheStats returns a snapshot of cache and rule-firing counters.
func (e *Engine) CacheStats() CacheStats {
	e.mu.Lock()
	defer e.mu.Unlock()

	firings := make(map[string]int64, len(e.firings))
	for name, n := range e.firings {
		firings[name] = n
	}
	total := e.hits + e.requests
	hitRate := 0.0
	if total > 0 {
		hitRate = float64(e.hits) / float64(total)
	}
	return CacheStats{
		Size:          len(e.cache),
		Hits:          e.hits,
		TotalRequests: total,
		HitRate:       hitRate,
		RuleFirings:   firings,
	}
}

// ClearCache drops every cached pair. Counters are kept.
func (e *Engine) ClearCache() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.cache = make(map[[2]string][]string)
}

// candidateSet keeps insertion order while deduplicating forms, so results
// are deterministic for a fixed rule order.
type candidateSet struct {
	seen  map[string]struct{}
	forms []string
}

func newCandidateSet() *candidateSet {
	return &candidateSet{seen: make(map[string]struct{})}
}

func (c *candidateSet) add(form string) {
	if _, ok := c.seen[form]; ok {
		return
	}
	c.seen[form] = struct{}{}
	c.forms = append(c.forms, form)
}

func (c *candidateSet) addAll(forms []string) {
	for _, f := range forms {
		c.add(f)
	}
}

func (c *candidateSet) slice() []string {
	return c.forms
}
