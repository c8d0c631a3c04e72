package catalog

import (
	"github.com/greeny34/alfred-fantasy-football-sub000/internal/models"
)

// Availability curves by tier depth. Elite bands evaporate fast and can
// drop to a low floor; deep bands linger on the board with a high floor.
var defaultCurves = []struct {
	floor float64
	decay float64
}{
	{0.30, 50},  // tier 1
	{0.50, 80},  // tier 2
	{0.70, 120}, // tier 3
	{0.75, 150}, // tier 4
	{0.80, 180}, // tier 5
}

func curve(tierNumber int) (float64, float64) {
	idx := tierNumber - 1
	if idx < 0 {
		idx = 0
	}
	if idx >= len(defaultCurves) {
		idx = len(defaultCurves) - 1
	}
	return defaultCurves[idx].floor, defaultCurves[idx].decay
}

func tier(pos models.Position, number int, name string, minRank, maxRank int, base, scarcity float64) models.PlayerTier {
	floor, decay := curve(number)
	return models.PlayerTier{
		Position:  pos,
		Number:    number,
		Name:      name,
		MinRank:   minRank,
		MaxRank:   maxRank,
		BaseValue: base,
		Scarcity:  scarcity,
		Floor:     floor,
		Decay:     decay,
	}
}

// DefaultTiers returns the built-in per-position tier table for a
// 10-team league
func DefaultTiers() []models.PlayerTier {
	return []models.PlayerTier{
		// QB: less critical in a 10-team league
		tier(models.QB, 1, "Elite", 1, 3, 85.0, 1.2),
		tier(models.QB, 2, "Tier 1", 4, 8, 75.0, 1.0),
		tier(models.QB, 3, "Tier 2", 9, 15, 65.0, 0.9),

		// RB: highest base values, scarcest position
		tier(models.RB, 1, "Elite", 1, 4, 120.0, 1.5),
		tier(models.RB, 2, "Tier 1", 5, 12, 100.0, 1.3),
		tier(models.RB, 3, "Tier 2", 13, 24, 80.0, 1.2),
		tier(models.RB, 4, "Tier 3", 25, 36, 65.0, 1.0),
		tier(models.RB, 5, "Dart Throws", 37, 60, 45.0, 0.8),

		// WR: high volume, good depth
		tier(models.WR, 1, "Elite", 1, 5, 110.0, 1.4),
		tier(models.WR, 2, "Tier 1", 6, 15, 95.0, 1.2),
		tier(models.WR, 3, "Tier 2", 16, 30, 80.0, 1.1),
		tier(models.WR, 4, "Tier 3", 31, 45, 65.0, 1.0),
		tier(models.WR, 5, "Depth", 46, 75, 50.0, 0.9),

		// TE: big cliff after the elite names
		tier(models.TE, 1, "Elite", 1, 3, 95.0, 1.8),
		tier(models.TE, 2, "Tier 1", 4, 8, 70.0, 1.2),
		tier(models.TE, 3, "Streaming", 9, 20, 55.0, 1.0),
		tier(models.TE, 4, "Deep", 21, 30, 40.0, 0.8),

		// K/DST: lowest priority, effectively always available
		tier(models.K, 1, "Top", 1, 5, 25.0, 1.0),
		tier(models.K, 2, "Streaming", 6, 20, 20.0, 1.0),
		tier(models.DST, 1, "Top", 1, 5, 30.0, 1.0),
		tier(models.DST, 2, "Streaming", 6, 15, 25.0, 1.0),
	}
}

// DefaultStrategyParameters returns the built-in (slot, round) multiplier
// table for a 10-team league
func DefaultStrategyParameters() []models.StrategyParameter {
	return []models.StrategyParameter{
		// Slot 1: lock RB talent early, lean WR later
		{Slot: 1, Round: Wildcard, Name: ParamRBBonusEarly, Value: 1.2},
		{Slot: 1, Round: Wildcard, Name: ParamWRBonusLate, Value: 1.1},
		{Slot: 1, Round: 1, Name: "must_take_elite", Value: 1.5},

		// Slots 2-5: balanced board
		{Slot: 2, Round: Wildcard, Name: "balanced_approach", Value: 1.0},
		{Slot: 3, Round: Wildcard, Name: "balanced_approach", Value: 1.0},
		{Slot: 4, Round: Wildcard, Name: "balanced_approach", Value: 1.0},
		{Slot: 5, Round: Wildcard, Name: "balanced_approach", Value: 1.0},

		// Slots 6-9: chase upside at RB/WR
		{Slot: 6, Round: Wildcard, Name: ParamUpsideBonus, Value: 1.3},
		{Slot: 7, Round: Wildcard, Name: ParamUpsideBonus, Value: 1.3},
		{Slot: 8, Round: Wildcard, Name: ParamUpsideBonus, Value: 1.3},
		{Slot: 9, Round: Wildcard, Name: ParamUpsideBonus, Value: 1.3},

		// Slot 10: back-to-back picks at the turn
		{Slot: 10, Round: Wildcard, Name: "turn_advantage", Value: 1.4},
		{Slot: 10, Round: Wildcard, Name: "position_run_starter", Value: 1.2},

		// Round adjustments for every slot
		{Slot: Wildcard, Round: 1, Name: ParamNoQBPenalty, Value: 0.7},
		{Slot: Wildcard, Round: 2, Name: ParamNoQBPenalty, Value: 0.8},
		{Slot: Wildcard, Round: 3, Name: ParamNoTEPenalty, Value: 0.9},
		{Slot: Wildcard, Round: 14, Name: ParamDSTBonus, Value: 1.1},
		{Slot: Wildcard, Round: 15, Name: ParamKBonus, Value: 1.1},
	}
}
