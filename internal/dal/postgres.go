package dal

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq"

	"github.com/greeny34/alfred-fantasy-football-sub000/internal/catalog"
	"github.com/greeny34/alfred-fantasy-football-sub000/internal/models"
)

// PostgresStore implements StrategyStore using PostgreSQL
type PostgresStore struct {
	db *sql.DB
}

// NewPostgresStore creates a new PostgreSQL strategy store
func NewPostgresStore(connString string) (*PostgresStore, error) {
	db, err := sql.Open("postgres", connString)
	if err != nil {
		return nil, err
	}

	// Pool settings tuned for a shared cluster
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)
	db.SetConnMaxIdleTime(1 * time.Minute)

	// Retry the initial ping; Kubernetes DNS can lag on fresh pods
	maxRetries := 5
	retryDelay := 5 * time.Second
	var lastErr error

	for i := 0; i < maxRetries; i++ {
		ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
		err := db.PingContext(ctx)
		cancel()

		if err == nil {
			lastErr = nil
			break
		}

		lastErr = err
		if i < maxRetries-1 {
			time.Sleep(retryDelay)
		}
	}

	if lastErr != nil {
		return nil, fmt.Errorf("failed to ping postgres after %d retries: %w", maxRetries, lastErr)
	}

	store := &PostgresStore{db: db}
	if err := store.initSchema(); err != nil {
		return nil, err
	}
	return store, nil
}

func (p *PostgresStore) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS draft_sessions (
		session_id TEXT PRIMARY KEY,
		session_name TEXT NOT NULL,
		team_count INTEGER NOT NULL,
		user_slot INTEGER NOT NULL,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS draft_picks (
		session_id TEXT NOT NULL REFERENCES draft_sessions(session_id) ON DELETE CASCADE,
		pick_number INTEGER NOT NULL,
		round_number INTEGER NOT NULL,
		position TEXT NOT NULL,
		player_name TEXT,
		team_slot INTEGER NOT NULL,
		is_user_pick BOOLEAN NOT NULL DEFAULT false,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		PRIMARY KEY (session_id, pick_number)
	);

	CREATE TABLE IF NOT EXISTS draft_strategy_states (
		session_id TEXT NOT NULL,
		pick_number INTEGER NOT NULL,
		next_positions JSONB NOT NULL,
		full_sequence JSONB NOT NULL,
		confidence_score DECIMAL(5,2) NOT NULL,
		expected_points DECIMAL(8,2) NOT NULL,
		reasoning TEXT,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		PRIMARY KEY (session_id, pick_number)
	);

	CREATE TABLE IF NOT EXISTS position_tier_values (
		position TEXT NOT NULL,
		tier_number INTEGER NOT NULL,
		tier_name TEXT NOT NULL,
		min_rank INTEGER NOT NULL,
		max_rank INTEGER NOT NULL,
		base_value DECIMAL(6,2) NOT NULL,
		scarcity_multiplier DECIMAL(4,2) NOT NULL DEFAULT 1.0,
		confidence_floor DECIMAL(4,2) NOT NULL,
		decay_constant DECIMAL(6,2) NOT NULL,
		PRIMARY KEY (position, tier_number)
	);

	CREATE TABLE IF NOT EXISTS strategy_parameters (
		draft_slot INTEGER NOT NULL,
		round_number INTEGER NOT NULL,
		parameter_name VARCHAR(100) NOT NULL,
		parameter_value DECIMAL(8,4) NOT NULL,
		PRIMARY KEY (draft_slot, round_number, parameter_name)
	);

	CREATE INDEX IF NOT EXISTS idx_strategy_states_session ON draft_strategy_states(session_id, pick_number);
	CREATE INDEX IF NOT EXISTS idx_picks_session ON draft_picks(session_id, is_user_pick);
	`

	if _, err := p.db.Exec(schema); err != nil {
		return err
	}

	var count int
	if err := p.db.QueryRow("SELECT COUNT(*) FROM position_tier_values").Scan(&count); err != nil {
		return err
	}
	if count == 0 {
		if err := p.seedReferenceData(); err != nil {
			return err
		}
	}

	return nil
}

func (p *PostgresStore) seedReferenceData() error {
	for _, t := range catalog.DefaultTiers() {
		_, err := p.db.Exec(`
			INSERT INTO position_tier_values
			(position, tier_number, tier_name, min_rank, max_rank, base_value, scarcity_multiplier, confidence_floor, decay_constant)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
			ON CONFLICT (position, tier_number) DO NOTHING
		`, t.Position, t.Number, t.Name, t.MinRank, t.MaxRank, t.BaseValue, t.Scarcity, t.Floor, t.Decay)
		if err != nil {
			return err
		}
	}

	for _, param := range catalog.DefaultStrategyParameters() {
		_, err := p.db.Exec(`
			INSERT INTO strategy_parameters (draft_slot, round_number, parameter_name, parameter_value)
			VALUES ($1, $2, $3, $4)
			ON CONFLICT (draft_slot, round_number, parameter_name) DO NOTHING
		`, param.Slot, param.Round, param.Name, param.Value)
		if err != nil {
			return err
		}
	}

	return nil
}

func (p *PostgresStore) CreateSession(name string, teamCount, userSlot int) (*models.DraftSession, error) {
	session := &models.DraftSession{
		ID:        genID("session"),
		Name:      name,
		TeamCount: teamCount,
		UserSlot:  userSlot,
	}

	_, err := p.db.Exec(`
		INSERT INTO draft_sessions (session_id, session_name, team_count, user_slot)
		VALUES ($1, $2, $3, $4)
	`, session.ID, session.Name, session.TeamCount, session.UserSlot)
	if err != nil {
		return nil, err
	}
	return session, nil
}

func (p *PostgresStore) Session(sessionID string) (*models.DraftSession, error) {
	var session models.DraftSession
	err := p.db.QueryRow(`
		SELECT session_id, session_name, team_count, user_slot
		FROM draft_sessions WHERE session_id = $1
	`, sessionID).Scan(&session.ID, &session.Name, &session.TeamCount, &session.UserSlot)
	if err != nil {
		return nil, err
	}
	return &session, nil
}

func (p *PostgresStore) RecordPick(pick models.DraftPick) error {
	_, err := p.db.Exec(`
		INSERT INTO draft_picks (session_id, pick_number, round_number, position, player_name, team_slot, is_user_pick)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, pick.SessionID, pick.PickNumber, pick.Round, pick.Position, pick.PlayerName, pick.TeamSlot, pick.UserPick)
	return err
}

func (p *PostgresStore) DraftState(sessionID string) (models.RosterState, int, error) {
	var roster models.RosterState

	rows, err := p.db.Query(`
		SELECT position, COUNT(*) FROM draft_picks
		WHERE session_id = $1 AND is_user_pick = true
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
	err = p.db.QueryRow(`
		SELECT COALESCE(MAX(pick_number), 0) + 1 FROM draft_picks WHERE session_id = $1
	`, sessionID).Scan(&nextPick)
	if err != nil {
		return roster, 0, err
	}

	return roster, nextPick, nil
}

func (p *PostgresStore) SaveStrategyState(record models.StrategyRecord) error {
	_, err := p.db.Exec(`
		INSERT INTO draft_strategy_states
		(session_id, pick_number, next_positions, full_sequence, confidence_score, expected_points, reasoning)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (session_id, pick_number) DO UPDATE SET
			next_positions = EXCLUDED.next_positions,
			full_sequence = EXCLUDED.full_sequence,
			confidence_score = EXCLUDED.confidence_score,
			expected_points = EXCLUDED.expected_points,
			reasoning = EXCLUDED.reasoning
	`, record.SessionID, record.PickNumber, marshalSequence(record.NextPositions),
		marshalSequence(record.FullSequence), record.Confidence, record.ExpectedValue, record.Rationale)
	if err != nil {
		return fmt.Errorf("failed to save strategy state: %w", err)
	}
	return nil
}

func (p *PostgresStore) StrategyState(sessionID string, pickNumber int) (*models.StrategyRecord, error) {
	record := models.StrategyRecord{SessionID: sessionID, PickNumber: pickNumber}
	var nextPositions, fullSequence string
	err := p.db.QueryRow(`
		SELECT next_positions, full_sequence, confidence_score, expected_points, reasoning
		FROM draft_strategy_states WHERE session_id = $1 AND pick_number = $2
	`, sessionID, pickNumber).Scan(&nextPositions, &fullSequence, &record.Confidence, &record.ExpectedValue, &record.Rationale)
	if err != nil {
		return nil, err
	}
	record.NextPositions = unmarshalSequence(nextPositions)
	record.FullSequence = unmarshalSequence(fullSequence)
	return &record, nil
}

func (p *PostgresStore) LoadTiers() ([]models.PlayerTier, error) {
	rows, err := p.db.Query(`
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

func (p *PostgresStore) LoadStrategyParameters() ([]models.StrategyParameter, error) {
	rows, err := p.db.Query(`
		SELECT draft_slot, round_number, parameter_name, parameter_value
		FROM strategy_parameters
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var params []models.StrategyParameter
	for rows.Next() {
		var param models.StrategyParameter
		if err := rows.Scan(&param.Slot, &param.Round, &param.Name, &param.Value); err != nil {
			return nil, err
		}
		params = append(params, param)
	}
	return params, rows.Err()
}

func (p *PostgresStore) Close() error {
	return p.db.Close()
}
