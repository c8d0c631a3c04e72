package catalog

import (
	"testing"

	"github.com/greeny34/alfred-fantasy-football-sub000/internal/models"
)

func TestDefaultTiersOrdered(t *testing.T) {
	cat := Default()

	for _, pos := range models.AllPositions {
		tiers := cat.Tiers(pos)
		if len(tiers) == 0 {
			t.Fatalf("no tiers for %s", pos)
		}
		for i := 1; i < len(tiers); i++ {
			if tiers[i].Number <= tiers[i-1].Number {
				t.Errorf("%s tiers not ordered: %d before %d", pos, tiers[i-1].Number, tiers[i].Number)
			}
		}
	}
}

func TestBestAvailableProgression(t *testing.T) {
	cat := Default()

	// Early picks should resolve the elite band, late picks deeper tiers
	early, ok := cat.BestAvailable(models.RB, 5)
	if !ok {
		t.Fatal("BestAvailable(RB, 5) reported no tier data")
	}
	if early.Number != 1 {
		t.Errorf("pick 5 resolved RB tier %d, want 1", early.Number)
	}

	mid, _ := cat.BestAvailable(models.RB, 60)
	if mid.Number <= early.Number {
		t.Errorf("pick 60 resolved RB tier %d, expected deeper than tier %d", mid.Number, early.Number)
	}

	// Deep in the draft every band has thinned; fall back to the deepest
	late, _ := cat.BestAvailable(models.RB, 200)
	tiers := cat.Tiers(models.RB)
	if late.Number != tiers[len(tiers)-1].Number {
		t.Errorf("pick 200 resolved RB tier %d, want deepest tier %d", late.Number, tiers[len(tiers)-1].Number)
	}
}

func TestBestAvailableTierDepthNeverRegresses(t *testing.T) {
	cat := Default()

	for _, pos := range models.AllPositions {
		prev := 0
		for pick := 1; pick <= 200; pick++ {
			tier, ok := cat.BestAvailable(pos, pick)
			if !ok {
				t.Fatalf("no tier data for %s", pos)
			}
			if tier.Number < prev {
				t.Fatalf("%s resolved tier %d at pick %d after tier %d", pos, tier.Number, pick, prev)
			}
			prev = tier.Number
		}
	}
}

func TestBestAvailableUnknownPosition(t *testing.T) {
	cat := New([]models.PlayerTier{})

	if _, ok := cat.BestAvailable(models.RB, 1); ok {
		t.Error("empty catalog should report no tier data")
	}
}

func TestSetDecay(t *testing.T) {
	cat := Default()

	if !cat.SetDecay(models.RB, 1, 40) {
		t.Fatal("SetDecay rejected a known (position, tier)")
	}
	tiers := cat.Tiers(models.RB)
	if tiers[0].Decay != 40 {
		t.Errorf("RB tier 1 decay = %v, want 40", tiers[0].Decay)
	}

	if cat.SetDecay(models.RB, 99, 40) {
		t.Error("SetDecay accepted an unknown tier")
	}
	if cat.SetDecay(models.RB, 1, 0) {
		t.Error("SetDecay accepted a non-positive decay")
	}
}

func TestMultiplierNeutralDefault(t *testing.T) {
	pt := DefaultParams()

	// Slot 3 round 5 has no applicable adjustments for RB
	if got := pt.Multiplier(3, 5, models.RB); got != 1.0 {
		t.Errorf("Multiplier(3, 5, RB) = %v, want 1.0", got)
	}
}

func TestMultiplierSlotAdjustments(t *testing.T) {
	pt := DefaultParams()

	// Slot 1 carries the early RB bonus in every round
	if got := pt.Multiplier(1, 4, models.RB); got != 1.2 {
		t.Errorf("Multiplier(1, 4, RB) = %v, want 1.2", got)
	}

	// Slots 6-9 carry the upside bonus for RB and WR
	if got := pt.Multiplier(7, 5, models.WR); got != 1.3 {
		t.Errorf("Multiplier(7, 5, WR) = %v, want 1.3", got)
	}
	if got := pt.Multiplier(7, 5, models.TE); got != 1.0 {
		t.Errorf("Multiplier(7, 5, TE) = %v, want 1.0", got)
	}
}

func TestMultiplierRoundAdjustments(t *testing.T) {
	pt := DefaultParams()

	tests := []struct {
		slot  int
		round int
		pos   models.Position
		want  float64
	}{
		{3, 1, models.QB, 0.7},   // round 1 QB discouraged
		{3, 2, models.QB, 0.8},   // round 2 QB discouraged
		{3, 3, models.TE, 0.9},   // round 3 TE discouraged
		{3, 14, models.DST, 1.1}, // DST window
		{3, 15, models.K, 1.1},   // K window
		{3, 4, models.QB, 1.0},   // no adjustment after round 2
	}

	for _, tt := range tests {
		if got := pt.Multiplier(tt.slot, tt.round, tt.pos); got != tt.want {
			t.Errorf("Multiplier(%d, %d, %s) = %v, want %v", tt.slot, tt.round, tt.pos, got, tt.want)
		}
	}
}

func TestMultiplierCombinesSlotAndRound(t *testing.T) {
	pt := NewParamTable([]models.StrategyParameter{
		{Slot: 6, Round: Wildcard, Name: ParamUpsideBonus, Value: 1.3},
		{Slot: Wildcard, Round: 1, Name: ParamNoQBPenalty, Value: 0.7},
	})

	// RB from slot 6 in round 1: only the upside bonus applies
	if got := pt.Multiplier(6, 1, models.RB); got != 1.3 {
		t.Errorf("Multiplier(6, 1, RB) = %v, want 1.3", got)
	}
	// QB from slot 6 in round 1: only the QB penalty applies
	if got := pt.Multiplier(6, 1, models.QB); got != 0.7 {
		t.Errorf("Multiplier(6, 1, QB) = %v, want 0.7", got)
	}
}

func TestLookup(t *testing.T) {
	pt := DefaultParams()

	v, ok := pt.Lookup(1, Wildcard, ParamRBBonusEarly)
	if !ok || v != 1.2 {
		t.Errorf("Lookup(1, wildcard, rb_bonus_early) = %v, %v; want 1.2, true", v, ok)
	}

	if _, ok := pt.Lookup(2, 7, "no_such_param"); ok {
		t.Error("Lookup found a parameter that does not exist")
	}
}
