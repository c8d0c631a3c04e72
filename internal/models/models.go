package models

import (
	"fmt"
	"strings"
)

// Position is a fantasy roster position category
type Position string

const (
	QB  Position = "QB"
	RB  Position = "RB"
	WR  Position = "WR"
	TE  Position = "TE"
	K   Position = "K"
	DST Position = "DST"
)

// AllPositions lists every position category in canonical order
var AllPositions = []Position{QB, RB, WR, TE, K, DST}

// Targets maps each position to a roster count
type Targets map[Position]int

// DefaultTargets returns the standard 15-player roster composition
func DefaultTargets() Targets {
	return Targets{QB: 2, RB: 4, WR: 5, TE: 2, K: 1, DST: 1}
}

// DefaultCeilings returns the per-position hard roster limits
func DefaultCeilings() Targets {
	return Targets{QB: 3, RB: 6, WR: 7, TE: 3, K: 1, DST: 1}
}

// TotalPicks returns the sum of all position counts
func (t Targets) TotalPicks() int {
	total := 0
	for _, count := range t {
		total += count
	}
	return total
}

// RosterState is an immutable snapshot of roster position counts.
// Add returns a new state so callers can explore branches without
// copying defensively.
type RosterState struct {
	QB  int `json:"qb"`
	RB  int `json:"rb"`
	WR  int `json:"wr"`
	TE  int `json:"te"`
	K   int `json:"k"`
	DST int `json:"dst"`
}

// Count returns the number of rostered players at a position
func (r RosterState) Count(pos Position) int {
	switch pos {
	case QB:
		return r.QB
	case RB:
		return r.RB
	case WR:
		return r.WR
	case TE:
		return r.TE
	case K:
		return r.K
	case DST:
		return r.DST
	}
	return 0
}

// Total returns the roster size
func (r RosterState) Total() int {
	return r.QB + r.RB + r.WR + r.TE + r.K + r.DST
}

// Add returns a new RosterState with one more player at the position
func (r RosterState) Add(pos Position) RosterState {
	next := r
	switch pos {
	case QB:
		next.QB++
	case RB:
		next.RB++
	case WR:
		next.WR++
	case TE:
		next.TE++
	case K:
		next.K++
	case DST:
		next.DST++
	}
	return next
}

// Needs reports whether the roster is still short of the target at a position
func (r RosterState) Needs(pos Position, targets Targets) bool {
	return r.Count(pos) < targets[pos]
}

// Outstanding returns per-position need (target minus current, floored at 0)
func (r RosterState) Outstanding(targets Targets) map[Position]int {
	needs := make(map[Position]int, len(AllPositions))
	for _, pos := range AllPositions {
		need := targets[pos] - r.Count(pos)
		if need < 0 {
			need = 0
		}
		needs[pos] = need
	}
	return needs
}

// Signature returns a stable cache key for the roster composition.
// Identical counts always produce identical signatures because positions
// are serialized in canonical order.
func (r RosterState) Signature() string {
	var sb strings.Builder
	for i, pos := range AllPositions {
		if i > 0 {
			sb.WriteByte('.')
		}
		fmt.Fprintf(&sb, "%s%d", pos, r.Count(pos))
	}
	return sb.String()
}

// PlayerTier is a contiguous band of talent rank within one position.
// Availability at a given overall pick decays linearly down to Floor:
// elite tiers carry small decay constants and low floors, deep tiers the
// opposite.
type PlayerTier struct {
	Position  Position `json:"position"`
	Number    int      `json:"tierNumber"` // 1 = best
	Name      string   `json:"tierName"`
	MinRank   int      `json:"minRank"`
	MaxRank   int      `json:"maxRank"`
	BaseValue float64  `json:"baseValue"`
	Scarcity  float64  `json:"scarcityMultiplier"`
	Floor     float64  `json:"confidenceFloor"`
	Decay     float64  `json:"decayConstant"`
}

// Availability returns the confidence that a player from this tier is
// still on the board at the given overall pick number. Monotone
// non-increasing in pick.
func (t PlayerTier) Availability(pick int) float64 {
	if t.Decay <= 0 {
		return t.Floor
	}
	conf := 1.0 - float64(pick)/t.Decay
	if conf < t.Floor {
		return t.Floor
	}
	return conf
}

// StrategyParameter is a named scalar multiplier keyed by draft slot and
// round. Zero on either axis is a wildcard.
type StrategyParameter struct {
	Slot  int     `json:"draftSlot"`
	Round int     `json:"roundNumber"`
	Name  string  `json:"parameterName"`
	Value float64 `json:"parameterValue"`
}

// OptimalPath is the recommended completion strategy for a roster
type OptimalPath struct {
	Sequence      []Position `json:"sequence"`
	ExpectedValue float64    `json:"expectedValue"`
	Confidence    float64    `json:"confidence"` // 0..1
	Rationale     string     `json:"rationale"`
	Targets       []string   `json:"targets,omitempty"` // per-step tier labels
}

// StrategyRecord is the persisted form of a winning strategy, one row
// per (session, pick) with upsert semantics
type StrategyRecord struct {
	SessionID     string     `json:"sessionId"`
	PickNumber    int        `json:"pickNumber"`
	NextPositions []Position `json:"nextPositions"` // first 5 of the sequence
	FullSequence  []Position `json:"fullSequence"`
	Confidence    float64    `json:"confidence"` // 0..100
	ExpectedValue float64    `json:"expectedValue"`
	Rationale     string     `json:"rationale"`
}

// DraftSession describes one live draft
type DraftSession struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	TeamCount int    `json:"teamCount"`
	UserSlot  int    `json:"userSlot"` // 1..TeamCount
}

// DraftPick records one selection in a session
type DraftPick struct {
	SessionID  string   `json:"sessionId"`
	PickNumber int      `json:"pickNumber"`
	Round      int      `json:"round"`
	Position   Position `json:"position"`
	PlayerName string   `json:"playerName"`
	TeamSlot   int      `json:"teamSlot"`
	UserPick   bool     `json:"userPick"`
}
