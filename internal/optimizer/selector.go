package optimizer

import (
	"fmt"
	"strings"
	"sync"

	"github.com/greeny34/alfred-fantasy-football-sub000/internal/logger"
	"github.com/greeny34/alfred-fantasy-football-sub000/internal/models"
)

// PathGenerator produces candidate completion sequences
type PathGenerator interface {
	Paths(roster models.RosterState, remaining int) []Sequence
}

// PathEvaluator scores one candidate sequence
type PathEvaluator interface {
	Evaluate(seq Sequence, roster models.RosterState, slot, startPick int) Evaluation
}

// StrategyStore records the winning strategy per (session, pick) with
// upsert semantics. Persistence failures are the store's concern; the
// selector never retries or surfaces them.
type StrategyStore interface {
	SaveStrategyState(record models.StrategyRecord) error
}

// Selector is the public entry point of the optimizer: it orchestrates
// generation and evaluation, memoizes results, and returns the best
// completion path for the current draft state.
type Selector struct {
	gen   PathGenerator
	eval  PathEvaluator
	store StrategyStore // optional
	opts  Options
	cache sync.Map // cache key -> models.OptimalPath
}

// NewSelector builds a selector. A nil store disables persistence.
func NewSelector(gen PathGenerator, eval PathEvaluator, store StrategyStore, opts Options) *Selector {
	return &Selector{gen: gen, eval: eval, store: store, opts: opts}
}

// OptimalStrategy computes the best roster completion path for a
// session's current state. Identical (roster, remaining, slot) inputs
// return the cached result; the computation is deterministic, so racing
// callers store the same value and the lost update is benign.
func (s *Selector) OptimalStrategy(session models.DraftSession, roster models.RosterState, nextPick int) models.OptimalPath {
	remaining := s.opts.RosterSize() - roster.Total()
	if remaining <= 0 {
		return models.OptimalPath{
			Sequence:   []models.Position{},
			Confidence: 1.0,
			Rationale:  "Draft complete",
		}
	}

	key := fmt.Sprintf("%s|%d|%d", roster.Signature(), remaining, session.UserSlot)
	if cached, ok := s.cache.Load(key); ok {
		path := cached.(models.OptimalPath)
		s.persist(session, nextPick, path)
		return path
	}

	candidates := s.gen.Paths(roster, remaining)
	if len(candidates) > s.opts.MaxCandidates {
		candidates = candidates[:s.opts.MaxCandidates]
	}

	var best *models.OptimalPath
	bestScore := 0.0
	for _, seq := range candidates {
		if len(seq) == 0 {
			continue
		}
		eval := s.eval.Evaluate(seq, roster, session.UserSlot, nextPick)
		score := eval.Value * eval.Confidence
		if best == nil || score > bestScore {
			bestScore = score
			best = &models.OptimalPath{
				Sequence:      seq,
				ExpectedValue: eval.Value,
				Confidence:    eval.Confidence,
				Rationale:     s.rationale(seq, roster, session.UserSlot),
				Targets:       eval.Targets,
			}
		}
	}

	if best == nil {
		return models.OptimalPath{
			Sequence:  []models.Position{},
			Rationale: "No valid paths found",
		}
	}

	s.cache.Store(key, *best)
	s.persist(session, nextPick, *best)
	return *best
}

// persist dispatches the strategy-state upsert so its latency or
// failure never stalls the optimizer's return path
func (s *Selector) persist(session models.DraftSession, pickNumber int, path models.OptimalPath) {
	if s.store == nil {
		return
	}

	next := path.Sequence
	if len(next) > 5 {
		next = next[:5]
	}
	record := models.StrategyRecord{
		SessionID:     session.ID,
		PickNumber:    pickNumber,
		NextPositions: next,
		FullSequence:  path.Sequence,
		Confidence:    path.Confidence * 100,
		ExpectedValue: path.ExpectedValue,
		Rationale:     path.Rationale,
	}

	go func() {
		if err := s.store.SaveStrategyState(record); err != nil {
			logger.Error("Failed to persist strategy state",
				"session", record.SessionID, "pick", record.PickNumber, "error", err)
		}
	}()
}

// rationale explains the winning sequence in terms of urgent needs, the
// shape of the next two picks, and the draft slot
func (s *Selector) rationale(seq Sequence, roster models.RosterState, slot int) string {
	var parts []string

	var urgent []string
	needs := roster.Outstanding(s.opts.Targets)
	for _, pos := range models.AllPositions {
		if needs[pos] >= 2 {
			urgent = append(urgent, fmt.Sprintf("%s(%d needed)", pos, needs[pos]))
		}
	}
	if len(urgent) > 0 {
		parts = append(parts, "Urgent needs: "+strings.Join(urgent, ", "))
	}

	if len(seq) >= 2 {
		first, second := seq[0], seq[1]
		if first == second {
			parts = append(parts, fmt.Sprintf("Double-tap %s strategy", first))
		} else if (first == models.RB && second == models.WR) || (first == models.WR && second == models.RB) {
			parts = append(parts, "Balanced RB/WR approach")
		}
	}

	switch {
	case slot == 1:
		parts = append(parts, "Pick 1: Lock elite talent early")
	case slot == s.opts.TeamCount:
		parts = append(parts, fmt.Sprintf("Pick %d: Leverage turn advantage", slot))
	case slot >= 6 && slot <= 9:
		parts = append(parts, "Mid-round: Target upside plays")
	}

	if len(parts) == 0 {
		return "Optimal value-based approach"
	}
	return strings.Join(parts, "; ")
}
