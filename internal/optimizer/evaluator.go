package optimizer

import (
	"fmt"

	"github.com/greeny34/alfred-fantasy-football-sub000/internal/catalog"
	"github.com/greeny34/alfred-fantasy-football-sub000/internal/models"
)

// Evaluation is the score of one candidate sequence
type Evaluation struct {
	Value      float64
	Confidence float64
	Targets    []string // per-step tier labels, e.g. "RB Tier 1"
}

// Evaluator scores a candidate sequence by simulating forward through
// its steps against a working copy of the roster
type Evaluator struct {
	catalog *catalog.Catalog
	params  *catalog.ParamTable
	opts    Options
}

// NewEvaluator builds an evaluator over the loaded reference tables
func NewEvaluator(cat *catalog.Catalog, params *catalog.ParamTable, opts Options) *Evaluator {
	return &Evaluator{catalog: cat, params: params, opts: opts}
}

// Evaluate walks the sequence from startPick, accumulating value and a
// confidence product. Missing tier data costs confidence but never
// aborts the walk; the working roster and pick advance either way.
// An empty sequence evaluates to value 0 at full confidence.
func (e *Evaluator) Evaluate(seq Sequence, roster models.RosterState, slot, startPick int) Evaluation {
	eval := Evaluation{Confidence: 1.0}

	working := roster
	pick := startPick

	for _, pos := range seq {
		tier, ok := e.catalog.BestAvailable(pos, pick)
		if !ok {
			eval.Confidence *= e.opts.MissingTierPenalty
			working = working.Add(pos)
			pick++
			continue
		}

		round := (pick-1)/e.opts.TeamCount + 1
		contribution := tier.BaseValue * tier.Scarcity * e.params.Multiplier(slot, round, pos)
		if working.Needs(pos, e.opts.Targets) {
			contribution *= e.opts.NeedBonus
		} else {
			contribution *= e.opts.DepthDiscount
		}

		eval.Value += contribution
		eval.Confidence *= tier.Availability(pick)
		eval.Targets = append(eval.Targets, fmt.Sprintf("%s %s", pos, tier.Name))

		working = working.Add(pos)
		pick++
	}

	return eval
}
