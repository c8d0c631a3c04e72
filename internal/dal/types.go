package dal

import "github.com/greeny34/alfred-fantasy-football-sub000/internal/models"

// StrategyStore defines the persistence boundary for draft sessions,
// recorded picks, the optimizer reference tables, and winning strategy
// states
type StrategyStore interface {
	CreateSession(name string, teamCount, userSlot int) (*models.DraftSession, error)
	Session(sessionID string) (*models.DraftSession, error)
	RecordPick(pick models.DraftPick) error
	// DraftState returns the user's roster composition and the next
	// overall pick number for a session
	DraftState(sessionID string) (models.RosterState, int, error)
	SaveStrategyState(record models.StrategyRecord) error
	StrategyState(sessionID string, pickNumber int) (*models.StrategyRecord, error)
	LoadTiers() ([]models.PlayerTier, error)
	LoadStrategyParameters() ([]models.StrategyParameter, error)
	Close() error
}
