package catalog

import (
	"sort"

	"github.com/greeny34/alfred-fantasy-football-sub000/internal/models"
)

// DefaultAvailabilityThreshold is the minimum undamped availability a
// tier must hold at a pick to be treated as the likely target there.
const DefaultAvailabilityThreshold = 0.5

// Catalog holds the per-position value tiers. It is loaded once at
// startup and treated as read-only afterwards.
type Catalog struct {
	tiers     map[models.Position][]models.PlayerTier
	threshold float64
}

// New builds a catalog from a flat tier list, ordering each position's
// tiers by tier number (1 = best)
func New(tiers []models.PlayerTier) *Catalog {
	c := &Catalog{
		tiers:     make(map[models.Position][]models.PlayerTier),
		threshold: DefaultAvailabilityThreshold,
	}
	for _, t := range tiers {
		c.tiers[t.Position] = append(c.tiers[t.Position], t)
	}
	for pos := range c.tiers {
		sort.Slice(c.tiers[pos], func(i, j int) bool {
			return c.tiers[pos][i].Number < c.tiers[pos][j].Number
		})
	}
	return c
}

// Default returns a catalog seeded with the built-in tier table
func Default() *Catalog {
	return New(DefaultTiers())
}

// SetThreshold overrides the availability threshold. Call before serving.
func (c *Catalog) SetThreshold(threshold float64) {
	if threshold > 0 && threshold < 1 {
		c.threshold = threshold
	}
}

// Tiers returns the ordered tiers for a position
func (c *Catalog) Tiers(pos models.Position) []models.PlayerTier {
	return c.tiers[pos]
}

// BestAvailable resolves the most-likely-available tier for a position
// at an overall pick number: the best tier whose undamped availability
// (1 - pick/decay) still clears the threshold, falling back to the
// deepest tier once every band has likely thinned out. The boolean is
// false when the catalog has no tier data for the position at all.
func (c *Catalog) BestAvailable(pos models.Position, pick int) (models.PlayerTier, bool) {
	tiers := c.tiers[pos]
	if len(tiers) == 0 {
		return models.PlayerTier{}, false
	}
	for _, t := range tiers {
		if t.Decay <= 0 {
			continue
		}
		if 1.0-float64(pick)/t.Decay >= c.threshold {
			return t, true
		}
	}
	return tiers[len(tiers)-1], true
}

// SetDecay overrides one tier's decay constant, used by startup
// calibration before the catalog goes read-only. Returns false when the
// (position, tier) pair is unknown.
func (c *Catalog) SetDecay(pos models.Position, tierNumber int, decay float64) bool {
	if decay <= 0 {
		return false
	}
	for i, t := range c.tiers[pos] {
		if t.Number == tierNumber {
			c.tiers[pos][i].Decay = decay
			return true
		}
	}
	return false
}
