package optimizer

import (
	"testing"

	"github.com/greeny34/alfred-fantasy-football-sub000/internal/catalog"
	"github.com/greeny34/alfred-fantasy-football-sub000/internal/models"
)

func newTestEvaluator() *Evaluator {
	return NewEvaluator(catalog.Default(), catalog.DefaultParams(), DefaultOptions())
}

func TestEvaluateEmptySequence(t *testing.T) {
	eval := newTestEvaluator()

	got := eval.Evaluate(Sequence{}, models.RosterState{}, 5, 5)
	if got.Value != 0 {
		t.Errorf("empty sequence value = %v, want 0", got.Value)
	}
	if got.Confidence != 1.0 {
		t.Errorf("empty sequence confidence = %v, want 1.0", got.Confidence)
	}
}

func TestEvaluateConfidenceMonotone(t *testing.T) {
	eval := newTestEvaluator()

	seq := Sequence{models.RB, models.WR, models.RB, models.QB, models.TE}
	prev := 1.0
	for n := 1; n <= len(seq); n++ {
		got := eval.Evaluate(seq[:n], models.RosterState{}, 5, 5)
		if got.Confidence > prev {
			t.Fatalf("confidence rose from %v to %v after adding a step", prev, got.Confidence)
		}
		prev = got.Confidence
	}
}

func TestEvaluateNeedBonusBeatsDepthDiscount(t *testing.T) {
	cat := catalog.Default()
	params := catalog.DefaultParams()
	opts := DefaultOptions()
	eval := NewEvaluator(cat, params, opts)

	seq := Sequence{models.RB}
	needy := models.RosterState{}
	stacked := models.RosterState{RB: 4} // at target, RB is depth now

	needyEval := eval.Evaluate(seq, needy, 3, 5)
	stackedEval := eval.Evaluate(seq, stacked, 3, 5)

	if needyEval.Value <= stackedEval.Value {
		t.Errorf("needed RB scored %v, depth RB scored %v; need bonus should win",
			needyEval.Value, stackedEval.Value)
	}
}

func TestEvaluateMissingTierPenalty(t *testing.T) {
	// Catalog that only knows RB: any other position costs confidence
	cat := catalog.New([]models.PlayerTier{
		{Position: models.RB, Number: 1, Name: "Elite", BaseValue: 100, Scarcity: 1.0, Floor: 0.3, Decay: 50},
	})
	opts := DefaultOptions()
	eval := NewEvaluator(cat, catalog.DefaultParams(), opts)

	got := eval.Evaluate(Sequence{models.WR}, models.RosterState{}, 5, 1)
	if got.Confidence != opts.MissingTierPenalty {
		t.Errorf("confidence = %v, want penalty %v", got.Confidence, opts.MissingTierPenalty)
	}
	if got.Value != 0 {
		t.Errorf("missing tier contributed value %v, want 0", got.Value)
	}

	// The walk must advance past the gap: a following RB step lands on
	// pick 2, not pick 1
	two := eval.Evaluate(Sequence{models.WR, models.RB}, models.RosterState{}, 5, 1)
	if len(two.Targets) != 1 {
		t.Fatalf("expected 1 resolved target, got %v", two.Targets)
	}
	if two.Value <= 0 {
		t.Error("RB step after the gap should still contribute value")
	}
}

func TestEvaluateSlotMultiplier(t *testing.T) {
	cat := catalog.Default()
	opts := DefaultOptions()

	// Identical single-RB path from a neutral slot and an upside slot
	neutral := NewEvaluator(cat, catalog.DefaultParams(), opts).
		Evaluate(Sequence{models.RB}, models.RosterState{}, 3, 55)
	upside := NewEvaluator(cat, catalog.DefaultParams(), opts).
		Evaluate(Sequence{models.RB}, models.RosterState{}, 7, 55)

	if upside.Value <= neutral.Value {
		t.Errorf("slot 7 value %v should exceed slot 3 value %v via the upside bonus",
			upside.Value, neutral.Value)
	}
}

func TestEvaluateEarlyQBPenalized(t *testing.T) {
	// Single flat QB tier so the only difference between picks is the
	// round multiplier
	cat := catalog.New([]models.PlayerTier{
		{Position: models.QB, Number: 1, Name: "Elite", BaseValue: 100, Scarcity: 1.0, Floor: 0.9, Decay: 1000},
	})
	eval := NewEvaluator(cat, catalog.DefaultParams(), DefaultOptions())

	// Pick 5 is round 1 (0.7 penalty), pick 35 is round 4 (no penalty)
	early := eval.Evaluate(Sequence{models.QB}, models.RosterState{}, 5, 5)
	late := eval.Evaluate(Sequence{models.QB}, models.RosterState{}, 5, 35)

	if early.Value >= late.Value {
		t.Errorf("round 1 QB value %v should be dampened below round 4 value %v",
			early.Value, late.Value)
	}
}

func TestEvaluateTargetsLabelSteps(t *testing.T) {
	eval := newTestEvaluator()

	got := eval.Evaluate(Sequence{models.RB, models.WR}, models.RosterState{}, 5, 5)
	if len(got.Targets) != 2 {
		t.Fatalf("expected 2 target labels, got %v", got.Targets)
	}
	if got.Targets[0] != "RB Elite" {
		t.Errorf("first target = %q, want %q", got.Targets[0], "RB Elite")
	}
}
