package optimizer

import (
	"strings"

	"github.com/greeny34/alfred-fantasy-football-sub000/internal/models"
)

// Sequence is an ordered list of future position picks
type Sequence []models.Position

func (s Sequence) key() string {
	parts := make([]string, len(s))
	for i, pos := range s {
		parts[i] = string(pos)
	}
	return strings.Join(parts, ",")
}

// Count returns how many picks in the sequence target a position
func (s Sequence) Count(pos models.Position) int {
	n := 0
	for _, p := range s {
		if p == pos {
			n++
		}
	}
	return n
}

// depthPriority orders the positions worth stockpiling once needs are met
var depthPriority = []models.Position{models.RB, models.WR, models.QB, models.TE}

// fallbackPriority orders positions by urgency when not every need fits
var fallbackPriority = []models.Position{models.RB, models.WR, models.QB, models.TE, models.K, models.DST}

// Archetype produces one candidate completion sequence for a roster, or
// reports that it does not apply to this draft situation
type Archetype interface {
	Name() string
	Produce(roster models.RosterState, needs map[models.Position]int, remaining int) (Sequence, bool)
}

// Generator produces a bounded, diverse set of candidate sequences that
// complete the roster within the remaining picks
type Generator struct {
	opts       Options
	archetypes []Archetype
}

// NewGenerator builds a generator with the standard archetype set
func NewGenerator(opts Options) *Generator {
	return &Generator{
		opts: opts,
		archetypes: []Archetype{
			needsFirst{opts},
			rbHeavy{opts},
			wrHeavy{opts},
			balanced{opts},
			zeroRB{opts},
		},
	}
}

// Paths returns up to MaxPaths deduplicated sequences, each exactly
// remaining picks long. Zero remaining picks yields one empty sequence.
// When outstanding need exceeds the remaining picks, a single truncated
// priority-ordered sequence is returned instead.
func (g *Generator) Paths(roster models.RosterState, remaining int) []Sequence {
	if remaining <= 0 {
		return []Sequence{{}}
	}

	needs := roster.Outstanding(g.opts.Targets)
	totalNeed := 0
	for _, n := range needs {
		totalNeed += n
	}

	if totalNeed > remaining {
		return []Sequence{truncatedFallback(needs, remaining)}
	}

	var paths []Sequence
	seen := make(map[string]bool)
	for _, arch := range g.archetypes {
		seq, ok := arch.Produce(roster, copyNeeds(needs), remaining)
		if !ok || len(seq) != remaining {
			continue
		}
		if key := seq.key(); !seen[key] {
			seen[key] = true
			paths = append(paths, seq)
		}
		if len(paths) >= g.opts.MaxPaths {
			break
		}
	}

	if len(paths) == 0 {
		paths = append(paths, truncatedFallback(needs, remaining))
	}
	return paths
}

// truncatedFallback takes as many of each needed position as fit, in
// fixed priority order
func truncatedFallback(needs map[models.Position]int, remaining int) Sequence {
	seq := make(Sequence, 0, remaining)
	for _, pos := range fallbackPriority {
		for i := 0; i < needs[pos] && len(seq) < remaining; i++ {
			seq = append(seq, pos)
		}
		if len(seq) >= remaining {
			break
		}
	}
	// Needs may still leave picks open when called on a feasible roster
	for i := 0; len(seq) < remaining; i++ {
		seq = append(seq, depthPriority[i%2]) // alternate RB/WR
	}
	return seq
}

// padDepth fills the sequence to length with depth picks, preferring the
// given positions and honoring roster ceilings. A position already at
// its ceiling (roster count plus picks in the sequence) is skipped.
func padDepth(seq Sequence, roster models.RosterState, remaining int, prefs []models.Position, ceilings models.Targets) Sequence {
	for len(seq) < remaining {
		placed := false
		for _, pos := range prefs {
			if roster.Count(pos)+seq.Count(pos) < ceilings[pos] {
				seq = append(seq, pos)
				placed = true
				break
			}
		}
		if !placed {
			for _, pos := range fallbackPriority {
				if roster.Count(pos)+seq.Count(pos) < ceilings[pos] {
					seq = append(seq, pos)
					placed = true
					break
				}
			}
		}
		if !placed {
			// Every ceiling hit; only possible with degenerate configs
			seq = append(seq, models.WR)
		}
	}
	return seq
}

// slack is how many picks remain beyond outstanding need
func slack(needs map[models.Position]int, remaining int) int {
	total := 0
	for _, n := range needs {
		total += n
	}
	return remaining - total
}

func copyNeeds(needs map[models.Position]int) map[models.Position]int {
	out := make(map[models.Position]int, len(needs))
	for pos, n := range needs {
		out[pos] = n
	}
	return out
}

// needsFirst fills every outstanding need in canonical order, then adds
// depth by cycling RB, WR, QB, TE
type needsFirst struct {
	opts Options
}

func (needsFirst) Name() string { return "needs-first" }

func (a needsFirst) Produce(roster models.RosterState, needs map[models.Position]int, remaining int) (Sequence, bool) {
	seq := make(Sequence, 0, remaining)
	for _, pos := range models.AllPositions {
		for i := 0; i < needs[pos]; i++ {
			seq = append(seq, pos)
		}
	}
	if len(seq) > remaining {
		return nil, false
	}
	return padCycle(seq, roster, remaining, a.opts.Ceilings), true
}

// padCycle adds depth picks by cycling RB, WR, QB, TE, skipping any
// position already at its ceiling
func padCycle(seq Sequence, roster models.RosterState, remaining int, ceilings models.Targets) Sequence {
	skips := 0
	for i := 0; len(seq) < remaining; i++ {
		pos := depthPriority[i%len(depthPriority)]
		if roster.Count(pos)+seq.Count(pos) < ceilings[pos] {
			seq = append(seq, pos)
			skips = 0
			continue
		}
		skips++
		if skips >= len(depthPriority) {
			return padDepth(seq, roster, remaining, depthPriority, ceilings)
		}
	}
	return seq
}

// rbHeavy front-loads running backs before filling the rest of the
// roster, then pads with RB depth up to a cap
type rbHeavy struct {
	opts Options
}

func (rbHeavy) Name() string { return "rb-heavy" }

func (a rbHeavy) Produce(roster models.RosterState, needs map[models.Position]int, remaining int) (Sequence, bool) {
	rbNeed := needs[models.RB]
	if rbNeed == 0 {
		return nil, false
	}

	seq := make(Sequence, 0, remaining)
	// One extra RB up front when the roster has slack for it; the
	// frontload must never crowd out another position's need
	front := rbNeed
	if slack(needs, remaining) > 0 {
		front++
	}
	if front > a.opts.RBFrontload {
		front = a.opts.RBFrontload
	}
	for i := 0; i < front; i++ {
		seq = append(seq, models.RB)
	}
	for _, pos := range models.AllPositions {
		if pos == models.RB {
			continue
		}
		for i := 0; i < needs[pos]; i++ {
			seq = append(seq, pos)
		}
	}
	for len(seq) < remaining {
		if seq.Count(models.RB) < a.opts.RBDepthCap &&
			roster.RB+seq.Count(models.RB) < a.opts.Ceilings[models.RB] {
			seq = append(seq, models.RB)
		} else {
			seq = padDepth(seq, roster, len(seq)+1, []models.Position{models.WR, models.QB, models.TE}, a.opts.Ceilings)
		}
	}
	return seq[:remaining], true
}

// wrHeavy is the receiver-first mirror of rbHeavy
type wrHeavy struct {
	opts Options
}

func (wrHeavy) Name() string { return "wr-heavy" }

func (a wrHeavy) Produce(roster models.RosterState, needs map[models.Position]int, remaining int) (Sequence, bool) {
	wrNeed := needs[models.WR]
	if wrNeed == 0 {
		return nil, false
	}

	seq := make(Sequence, 0, remaining)
	front := wrNeed
	if slack(needs, remaining) > 0 {
		front++
	}
	if front > a.opts.WRFrontload {
		front = a.opts.WRFrontload
	}
	for i := 0; i < front; i++ {
		seq = append(seq, models.WR)
	}
	for _, pos := range models.AllPositions {
		if pos == models.WR {
			continue
		}
		for i := 0; i < needs[pos]; i++ {
			seq = append(seq, pos)
		}
	}
	for len(seq) < remaining {
		if seq.Count(models.WR) < a.opts.WRDepthCap &&
			roster.WR+seq.Count(models.WR) < a.opts.Ceilings[models.WR] {
			seq = append(seq, models.WR)
		} else {
			seq = padDepth(seq, roster, len(seq)+1, []models.Position{models.RB, models.QB, models.TE}, a.opts.Ceilings)
		}
	}
	return seq[:remaining], true
}

// balanced alternates RB and WR over the opening window, fills the rest
// of the needs, then alternates depth
type balanced struct {
	opts Options
}

func (balanced) Name() string { return "balanced" }

func (a balanced) Produce(roster models.RosterState, needs map[models.Position]int, remaining int) (Sequence, bool) {
	seq := make(Sequence, 0, remaining)
	rbNeed := needs[models.RB]
	wrNeed := needs[models.WR]

	window := a.opts.BalancedWindow
	if window > remaining {
		window = remaining
	}
	for i := 0; i < window; i++ {
		if i%2 == 0 && rbNeed > 0 {
			seq = append(seq, models.RB)
			rbNeed--
		} else if wrNeed > 0 {
			seq = append(seq, models.WR)
			wrNeed--
		} else if rbNeed > 0 {
			seq = append(seq, models.RB)
			rbNeed--
		} else {
			break
		}
	}

	for _, pos := range models.AllPositions {
		if pos == models.RB || pos == models.WR {
			continue
		}
		for i := 0; i < needs[pos]; i++ {
			seq = append(seq, pos)
		}
	}
	for i := 0; i < rbNeed; i++ {
		seq = append(seq, models.RB)
	}
	for i := 0; i < wrNeed; i++ {
		seq = append(seq, models.WR)
	}

	for len(seq) < remaining {
		if len(seq)%2 == 0 {
			seq = padDepth(seq, roster, len(seq)+1, []models.Position{models.RB, models.WR}, a.opts.Ceilings)
		} else {
			seq = padDepth(seq, roster, len(seq)+1, []models.Position{models.WR, models.RB}, a.opts.Ceilings)
		}
	}
	return seq[:remaining], true
}

// zeroRB defers running backs entirely while the roster still has none,
// front-loading receivers and slotting in TE/QB before circling back
type zeroRB struct {
	opts Options
}

func (zeroRB) Name() string { return "zero-rb" }

func (a zeroRB) Produce(roster models.RosterState, needs map[models.Position]int, remaining int) (Sequence, bool) {
	if roster.RB > 0 || roster.Total() >= 4 || needs[models.WR] == 0 {
		return nil, false
	}

	seq := make(Sequence, 0, remaining)
	front := needs[models.WR]
	if front > a.opts.ZeroRBFrontload {
		front = a.opts.ZeroRBFrontload
	}
	for i := 0; i < front; i++ {
		seq = append(seq, models.WR)
	}
	for i := 0; i < needs[models.TE]; i++ {
		seq = append(seq, models.TE)
	}
	for i := 0; i < needs[models.QB]; i++ {
		seq = append(seq, models.QB)
	}
	for i := 0; i < needs[models.RB]; i++ {
		seq = append(seq, models.RB)
	}
	for i := front; i < needs[models.WR]; i++ {
		seq = append(seq, models.WR)
	}
	for i := 0; i < needs[models.K]; i++ {
		seq = append(seq, models.K)
	}
	for i := 0; i < needs[models.DST]; i++ {
		seq = append(seq, models.DST)
	}
	seq = padDepth(seq, roster, remaining, []models.Position{models.WR, models.RB}, a.opts.Ceilings)
	return seq, true
}
