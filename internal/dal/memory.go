package dal

import (
	"fmt"
	"sync"

	"github.com/greeny34/alfred-fantasy-football-sub000/internal/catalog"
	"github.com/greeny34/alfred-fantasy-football-sub000/internal/models"
)

// MemoryStore implements StrategyStore with in-memory storage, used for
// local development and tests
type MemoryStore struct {
	mu         sync.RWMutex
	sessions   map[string]models.DraftSession
	picks      map[string][]models.DraftPick
	strategies map[string]models.StrategyRecord // sessionID|pick -> record
}

// NewMemoryStore creates an in-memory strategy store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		sessions:   make(map[string]models.DraftSession),
		picks:      make(map[string][]models.DraftPick),
		strategies: make(map[string]models.StrategyRecord),
	}
}

func strategyKey(sessionID string, pickNumber int) string {
	return fmt.Sprintf("%s|%d", sessionID, pickNumber)
}

func (m *MemoryStore) CreateSession(name string, teamCount, userSlot int) (*models.DraftSession, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	session := models.DraftSession{
		ID:        genID("session"),
		Name:      name,
		TeamCount: teamCount,
		UserSlot:  userSlot,
	}
	m.sessions[session.ID] = session
	return &session, nil
}

func (m *MemoryStore) Session(sessionID string) (*models.DraftSession, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	session, ok := m.sessions[sessionID]
	if !ok {
		return nil, fmt.Errorf("session not found")
	}
	return &session, nil
}

func (m *MemoryStore) RecordPick(pick models.DraftPick) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.sessions[pick.SessionID]; !ok {
		return fmt.Errorf("session not found")
	}
	m.picks[pick.SessionID] = append(m.picks[pick.SessionID], pick)
	return nil
}

func (m *MemoryStore) DraftState(sessionID string) (models.RosterState, int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if _, ok := m.sessions[sessionID]; !ok {
		return models.RosterState{}, 0, fmt.Errorf("session not found")
	}

	var roster models.RosterState
	maxPick := 0
	for _, pick := range m.picks[sessionID] {
		if pick.UserPick {
			roster = roster.Add(pick.Position)
		}
		if pick.PickNumber > maxPick {
			maxPick = pick.PickNumber
		}
	}
	return roster, maxPick + 1, nil
}

func (m *MemoryStore) SaveStrategyState(record models.StrategyRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	// Upsert: a later computation for the same pick overwrites
	m.strategies[strategyKey(record.SessionID, record.PickNumber)] = record
	return nil
}

func (m *MemoryStore) StrategyState(sessionID string, pickNumber int) (*models.StrategyRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	record, ok := m.strategies[strategyKey(sessionID, pickNumber)]
	if !ok {
		return nil, fmt.Errorf("strategy state not found")
	}
	return &record, nil
}

func (m *MemoryStore) LoadTiers() ([]models.PlayerTier, error) {
	return catalog.DefaultTiers(), nil
}

func (m *MemoryStore) LoadStrategyParameters() ([]models.StrategyParameter, error) {
	return catalog.DefaultStrategyParameters(), nil
}

func (m *MemoryStore) Close() error {
	return nil
}
