package dal

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"

	"github.com/greeny34/alfred-fantasy-football-sub000/internal/catalog"
	"github.com/greeny34/alfred-fantasy-football-sub000/internal/models"
)

// SQLiteStore implements StrategyStore using SQLite
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore creates a new SQLite strategy store
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, err
	}

	store := &SQLiteStore{db: db}
	if err := store.initSchema(); err != nil {
		return nil, err
	}
	return store, nil
}

func (s *SQLiteStore) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS draft_sessions (
		session_id TEXT PRIMARY KEY,
		session_name TEXT NOT NULL,
		team_count INTEGER NOT NULL,
		user_slot INTEGER NOT NULL
	);

	CREATE TABLE IF NOT EXISTS draft_picks (
		session_id TEXT NOT NULL,
		pick_number INTEGER NOT NULL,
		round_number INTEGER NOT NULL,
		position TEXT NOT NULL,
		player_name TEXT,
		team_slot INTEGER NOT NULL,
		is_user_pick INTEGER NOT NULL DEFAULT 0,
		PRIMARY KEY (session_id, pick_number),
		FOREIGN KEY (session_id) REFERENCES draft_sessions(session_id)
	);

	CREATE TABLE IF NOT EXISTS draft_strategy_states (
		session_id TEXT NOT NULL,
		pick_number INTEGER NOT NULL,
		next_positions TEXT NOT NULL,
		full_sequence TEXT NOT NULL,
		confidence_score REAL NOT NULL,
		expected_points REAL NOT NULL,
		reasoning TEXT,
		PRIMARY KEY (session_id, pick_number)
	);

	CREATE TABLE IF NOT EXISTS position_tier_values (
		position TEXT NOT NULL,
		tier_number INTEGER NOT NULL,
		tier_name TEXT NOT NULL,
		min_rank INTEGER NOT NULL,
		max_rank INTEGER NOT NULL,
		base_value REAL NOT NULL,
		scarcity_multiplier REAL NOT NULL DEFAULT 1.0,
		confidence_floor REAL NOT NULL,
		decay_constant REAL NOT NULL,
		PRIMARY KEY (position, tier_number)
	);

	CREATE TABLE IF NOT EXISTS strategy_parameters (
		draft_slot INTEGER NOT NULL,
		round_number INTEGER NOT NULL,
		parameter_name TEXT NOT NULL,
		parameter_value REAL NOT NULL,
		PRIMARY KEY (draft_slot, round_number, parameter_name)
	);
	`

	if _, err := s.db.Exec(schema); err != nil {
		return err
	}

	// Seed the reference tables if empty
	var count int
	if err := s.db.QueryRow("SELECT COUNT(*) FROM position_tier_values").Scan(&count); err != nil {
		return err
	}
	if count == 0 {
		if err := s.seedReferenceData(); err != nil {
			return err
		}
	}

	return nil
}

func (s *SQLiteStore) seedReferenceData() error {
	for _, t := range catalog.DefaultTiers() {
		_, err := s.db.Exec(`
			INSERT INTO position_tier_values
			(position, tier_number, tier_name, min_rank, max_rank, base_value, scarcity_multiplier, confidence_floor, decay_constant)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		`, t.Position, t.Number, t.Name, t.MinRank, t.MaxRank, t.BaseValue, t.Scarcity, t.Floor, t.Decay)
		if err != nil {
			return err
		}
	}

	for _, p := range catalog.DefaultStrategyParameters() {
		_, err := s.db.Exec(`
			INSERT INTO strategy_parameters (draft_slot, round_number, parameter_name, parameter_value)
			VALUES (?, ?, ?, ?)
		`, p.Slot, p.Round, p.Name, p.Value)
		if err != nil {
			return err
		}
	}

	return nil
}

func (s *SQLiteStore) CreateSession(name string, teamCount, userSlot int) (*models.DraftSession, error) {
	session := &models.DraftSession{
		ID:        genID("session"),
		Name:      name,
		TeamCount: teamCount,
		UserSlot:  userSlot,
	}

	_, err := s.db.Exec(`
		INSERT INTO draft_sessions (session_id, session_name, team_count, user_slot)
		VALUES (?, ?, ?, ?)
	`, session.ID, session.Name, session.TeamCount, session.UserSlot)
	if err != nil {
		return nil, err
	}
	return session, nil
}

func (s *SQLiteStore) Session(sessionID string) (*models.DraftSession, error) {
	var session models.DraftSession
	err := s.db.QueryRow(`
		SELECT session_id, session_name, team_count, user_slot
		FROM draft_sessions WHERE session_id = ?
	`, sessionID).Scan(&session.ID, &session.Name, &session.TeamCount, &session.UserSlot)
	if err != nil {
		return nil, err
	}
	return &session, nil
}

func (s *SQLiteStore) RecordPick(pick models.DraftPick) error {
	userPick := 0
	if pick.UserPick {
		userPick = 1
	}
	_, err := s.db.Exec(`
		INSERT INTO draft_picks (session_id, pick_number, round_number, position, player_name, team_slot, is_user_pick)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, pick.SessionID, pick.PickNumber, pick.Round, pick.Position, pick.PlayerName, pick.TeamSlot, userPick)
	return err
}

func (s *SQLiteStore) DraftState(sessionID string) (models.RosterState, int, error) {
	var roster models.RosterState

	rows, err := s.db.Query(`
		SELECT position, COUNT(*) FROM draft_picks
		WHERE session_id = ? AND is_user_pick = 1
		GROUP BY position
	`, sessionID)
	if err != nil {
		return roster, 0, err
	}
	defer rows.Close()

	for rows.Next() {
		var pos models.Position
		var count int
		if err := rows.Scan(&pos, &count); err != nil {
			return roster, 0, err
		}
		for i := 0; i < count; i++ {
			roster = roster.Add(pos)
		}
	}

	var nextPick int
	err = s.db.QueryRow(`
		SELECT COALESCE(MAX(pick_number), 0) + 1 FROM draft_picks WHERE session_id = ?
	`, sessionID).Scan(&nextPick)
	if err != nil {
		return roster, 0, err
	}

	return roster, nextPick, nil
}

func (s *SQLiteStore) SaveStrategyState(record models.StrategyRecord) error {
	_, err := s.db.Exec(`
		INSERT INTO draft_strategy_states
		(session_id, pick_number, next_positions, full_sequence, confidence_score, expected_points, reasoning)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (session_id, pick_number) DO UPDATE SET
			next_positions = excluded.next_positions,
			full_sequence = excluded.full_sequence,
			confidence_score = excluded.confidence_score,
			expected_points = excluded.expected_points,
			reasoning = excluded.reasoning
	`, record.SessionID, record.PickNumber, marshalSequence(record.NextPositions),
		marshalSequence(record.FullSequence), record.Confidence, record.ExpectedValue, record.Rationale)
	if err != nil {
		return fmt.Errorf("failed to save strategy state: %w", err)
	}
	return nil
}

func (s *SQLiteStore) StrategyState(sessionID string, pickNumber int) (*models.StrategyRecord, error) {
	record := models.StrategyRecord{SessionID: sessionID, PickNumber: pickNumber}
	var nextPositions, fullSequence string
	err := s.db.QueryRow(`
		SELECT next_positions, full_sequence, confidence_score, expected_points, reasoning
		FROM draft_strategy_states WHERE session_id = ? AND pick_number = ?
	`, sessionID, pickNumber).Scan(&nextPositions, &fullSequence, &record.Confidence, &record.ExpectedValue, &record.Rationale)
	if err != nil {
		return nil, err
	}
	record.NextPositions = unmarshalSequence(nextPositions)
	record.FullSequence = unmarshalSequence(fullSequence)
	return &record, nil
}

func (s *SQLiteStore) LoadTiers() ([]models.PlayerTier, error) {
	rows, err := s.db.Query(`
		SELECT position, tier_number, tier_name, min_rank, max_rank, base_value, scarcity_multiplier, confidence_floor, decay_constant
		FROM position_tier_values ORDER BY position, tier_number
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tiers []models.PlayerTier
	for rows.Next() {
		var t models.PlayerTier
		err := rows.Scan(&t.Position, &t.Number, &t.Name, &t.MinRank, &t.MaxRank, &t.BaseValue, &t.Scarcity, &t.Floor, &t.Decay)
		if err != nil {
			return nil, err
		}
		tiers = append(tiers, t)
	}
	return tiers, rows.Err()
}

func (s *SQLiteStore) LoadStrategyParameters() ([]models.StrategyParameter, error) {
	rows, err := s.db.Query(`
		SELECT draft_slot, round_number, parameter_name, parameter_value
		FROM strategy_parameters
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var params []models.StrategyParameter
	for rows.Next() {
		var p models.StrategyParameter
		if err := rows.Scan(&p.Slot, &p.Round, &p.Name, &p.Value); err != nil {
			return nil, err
		}
		params = append(params, p)
	}
	return params, rows.Err()
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
