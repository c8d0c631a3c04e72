package catalog

import (
	"github.com/greeny34/alfred-fantasy-football-sub000/internal/models"
)

// Strategy parameter names recognized by the evaluator. Unknown names
// may exist in the table; they simply never multiply anything.
const (
	ParamRBBonusEarly = "rb_bonus_early"
	ParamWRBonusLate  = "wr_bonus_late"
	ParamUpsideBonus  = "upside_bonus"
	ParamNoQBPenalty  = "no_qb_penalty"
	ParamNoTEPenalty  = "no_te_penalty"
	ParamDSTBonus     = "dst_bonus"
	ParamKBonus       = "k_bonus"
)

// Wildcard matches any slot or any round when used as a key component
const Wildcard = 0

type paramKey struct {
	slot  int
	round int
}

// ParamTable holds strategy parameters keyed by (draft slot, round).
// A missing entry always means a neutral 1.0 multiplier.
type ParamTable struct {
	values map[paramKey]map[string]float64
}

// NewParamTable builds a table from a flat parameter list
func NewParamTable(params []models.StrategyParameter) *ParamTable {
	pt := &ParamTable{values: make(map[paramKey]map[string]float64)}
	for _, p := range params {
		key := paramKey{slot: p.Slot, round: p.Round}
		if pt.values[key] == nil {
			pt.values[key] = make(map[string]float64)
		}
		pt.values[key][p.Name] = p.Value
	}
	return pt
}

// DefaultParams returns the built-in strategy parameter table
func DefaultParams() *ParamTable {
	return NewParamTable(DefaultStrategyParameters())
}

// Lookup returns a named parameter for an exact (slot, round) key
func (pt *ParamTable) Lookup(slot, round int, name string) (float64, bool) {
	vals, ok := pt.values[paramKey{slot: slot, round: round}]
	if !ok {
		return 1.0, false
	}
	v, ok := vals[name]
	if !ok {
		return 1.0, false
	}
	return v, true
}

// Multiplier combines the slot-specific and round-specific adjustments
// that apply to drafting a position from the given slot in the given
// round. Absent parameters contribute a neutral 1.0.
func (pt *ParamTable) Multiplier(slot, round int, pos models.Position) float64 {
	mult := 1.0

	// Slot adjustments hold for every round of that slot
	if vals, ok := pt.values[paramKey{slot: slot, round: Wildcard}]; ok {
		switch {
		case pos == models.RB && has(vals, ParamRBBonusEarly):
			mult *= vals[ParamRBBonusEarly]
		case pos == models.WR && has(vals, ParamWRBonusLate):
			mult *= vals[ParamWRBonusLate]
		case has(vals, ParamUpsideBonus) && (pos == models.RB || pos == models.WR):
			mult *= vals[ParamUpsideBonus]
		}
	}

	// Round adjustments hold for every slot in that round
	if vals, ok := pt.values[paramKey{slot: Wildcard, round: round}]; ok {
		switch {
		case pos == models.QB && has(vals, ParamNoQBPenalty):
			mult *= vals[ParamNoQBPenalty]
		case pos == models.TE && has(vals, ParamNoTEPenalty):
			mult *= vals[ParamNoTEPenalty]
		case pos == models.DST && has(vals, ParamDSTBonus):
			mult *= vals[ParamDSTBonus]
		case pos == models.K && has(vals, ParamKBonus):
			mult *= vals[ParamKBonus]
		}
	}

	return mult
}

func has(vals map[string]float64, name string) bool {
	_, ok := vals[name]
	return ok
}
