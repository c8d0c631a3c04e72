package optimizer

import (
	"testing"

	"github.com/greeny34/alfred-fantasy-football-sub000/internal/models"
)

func TestPathsExactLength(t *testing.T) {
	gen := NewGenerator(DefaultOptions())

	rosters := []models.RosterState{
		{},
		{RB: 2, WR: 1},
		{QB: 1, RB: 3, WR: 4, TE: 1},
		{QB: 2, RB: 4, WR: 5, TE: 2, K: 1},
	}

	for _, roster := range rosters {
		for remaining := 1; remaining <= 15-roster.Total(); remaining++ {
			paths := gen.Paths(roster, remaining)
			if len(paths) == 0 {
				t.Fatalf("no paths for roster %s remaining %d", roster.Signature(), remaining)
			}
			for _, seq := range paths {
				if len(seq) != remaining {
					t.Errorf("roster %s remaining %d: path length %d", roster.Signature(), remaining, len(seq))
				}
			}
		}
	}
}

func TestPathsZeroRemaining(t *testing.T) {
	gen := NewGenerator(DefaultOptions())

	paths := gen.Paths(models.RosterState{QB: 2, RB: 4, WR: 5, TE: 2, K: 1, DST: 1}, 0)
	if len(paths) != 1 {
		t.Fatalf("expected 1 path, got %d", len(paths))
	}
	if len(paths[0]) != 0 {
		t.Errorf("expected empty sequence, got %v", paths[0])
	}
}

func TestPathsInfeasibleTruncates(t *testing.T) {
	gen := NewGenerator(DefaultOptions())

	// Empty roster needs 15 picks; only 3 remain
	paths := gen.Paths(models.RosterState{}, 3)
	if len(paths) != 1 {
		t.Fatalf("expected single truncated path, got %d", len(paths))
	}
	seq := paths[0]
	if len(seq) != 3 {
		t.Fatalf("truncated path length %d, want 3", len(seq))
	}
	// Priority order front-loads running backs
	if seq.Count(models.RB) < 2 {
		t.Errorf("truncated path %v should lead with RB depth", seq)
	}
}

func TestPathsRespectNeeds(t *testing.T) {
	opts := DefaultOptions()
	gen := NewGenerator(opts)

	roster := models.RosterState{RB: 1, WR: 2}
	remaining := opts.RosterSize() - roster.Total()
	needs := roster.Outstanding(opts.Targets)

	for _, seq := range gen.Paths(roster, remaining) {
		for _, pos := range models.AllPositions {
			if seq.Count(pos) < needs[pos] {
				t.Errorf("path %v covers %d %s, need %d", seq, seq.Count(pos), pos, needs[pos])
			}
		}
	}
}

func TestPathsDeduplicated(t *testing.T) {
	gen := NewGenerator(DefaultOptions())

	paths := gen.Paths(models.RosterState{}, 15)
	seen := make(map[string]bool)
	for _, seq := range paths {
		key := seq.key()
		if seen[key] {
			t.Errorf("duplicate path %v", seq)
		}
		seen[key] = true
	}
}

func TestPathsBounded(t *testing.T) {
	opts := DefaultOptions()
	gen := NewGenerator(opts)

	paths := gen.Paths(models.RosterState{}, 15)
	if len(paths) > opts.MaxPaths {
		t.Errorf("generated %d paths, cap is %d", len(paths), opts.MaxPaths)
	}
}

func TestRBHeavyFrontloadsEmptyRoster(t *testing.T) {
	opts := DefaultOptions()
	arch := rbHeavy{opts}

	roster := models.RosterState{}
	seq, ok := arch.Produce(roster, roster.Outstanding(opts.Targets), 15)
	if !ok {
		t.Fatal("rbHeavy did not apply to an empty roster")
	}

	front := 0
	for _, pos := range seq[:3] {
		if pos == models.RB {
			front++
		}
	}
	if front < 2 || front > 3 {
		t.Errorf("rbHeavy opened with %d RBs in the first 3 picks, want 2-3 (%v)", front, seq[:3])
	}
}

func TestZeroRBDefersRunningBacks(t *testing.T) {
	opts := DefaultOptions()
	arch := zeroRB{opts}

	roster := models.RosterState{}
	seq, ok := arch.Produce(roster, roster.Outstanding(opts.Targets), 15)
	if !ok {
		t.Fatal("zeroRB did not apply to an empty roster")
	}
	for i := 0; i < 3; i++ {
		if seq[i] == models.RB {
			t.Errorf("zeroRB drafted RB at pick %d (%v)", i+1, seq[:3])
		}
	}
}

func TestZeroRBGates(t *testing.T) {
	opts := DefaultOptions()
	arch := zeroRB{opts}

	// Already holding an RB disqualifies the archetype
	roster := models.RosterState{RB: 1}
	if _, ok := arch.Produce(roster, roster.Outstanding(opts.Targets), 14); ok {
		t.Error("zeroRB applied to a roster that already has an RB")
	}

	// Too deep into the draft disqualifies it too
	late := models.RosterState{WR: 2, QB: 1, TE: 1}
	if _, ok := arch.Produce(late, late.Outstanding(opts.Targets), 11); ok {
		t.Error("zeroRB applied after 4 picks")
	}
}

func TestPathsHonorCeilings(t *testing.T) {
	opts := DefaultOptions()
	gen := NewGenerator(opts)

	roster := models.RosterState{QB: 1, RB: 2, WR: 2, TE: 1}
	remaining := opts.RosterSize() - roster.Total()

	for _, seq := range gen.Paths(roster, remaining) {
		for _, pos := range models.AllPositions {
			if roster.Count(pos)+seq.Count(pos) > opts.Ceilings[pos] {
				t.Errorf("path %v pushes %s past ceiling %d", seq, pos, opts.Ceilings[pos])
			}
		}
	}
}
