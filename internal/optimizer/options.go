package optimizer

import (
	"github.com/greeny34/alfred-fantasy-football-sub000/internal/models"
)

// Options carries the tunable knobs of the optimizer. The caps and
// multipliers were chosen empirically; treat them as replaceable
// defaults rather than business rules.
type Options struct {
	Targets  models.Targets
	Ceilings models.Targets

	TeamCount int // league size, used for round math and slot remarks

	RBFrontload     int // RBs to front-load in the RB-heavy archetype
	RBDepthCap      int // max RBs in any one RB-heavy sequence
	WRFrontload     int // WRs to front-load in the WR-heavy archetype
	WRDepthCap      int // max WRs in any one WR-heavy sequence
	BalancedWindow  int // picks to alternate RB/WR in the balanced archetype
	ZeroRBFrontload int // WRs to front-load in the zero-RB archetype

	MaxPaths      int // candidate sequences returned by the generator
	MaxCandidates int // candidates the selector will evaluate

	NeedBonus          float64 // value multiplier for a still-needed position
	DepthDiscount      float64 // value multiplier for a depth pick
	MissingTierPenalty float64 // confidence multiplier when tier data is absent
}

// DefaultOptions returns the standard 10-team configuration
func DefaultOptions() Options {
	return Options{
		Targets:            models.DefaultTargets(),
		Ceilings:           models.DefaultCeilings(),
		TeamCount:          10,
		RBFrontload:        3,
		RBDepthCap:         5,
		WRFrontload:        4,
		WRDepthCap:         6,
		BalancedWindow:     4,
		ZeroRBFrontload:    3,
		MaxPaths:           10,
		MaxCandidates:      20,
		NeedBonus:          1.3,
		DepthDiscount:      0.8,
		MissingTierPenalty: 0.5,
	}
}

// RosterSize returns the total picks a complete roster takes
func (o Options) RosterSize() int {
	return o.Targets.TotalPicks()
}
