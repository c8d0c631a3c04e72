package analytics

import (
	"context"
	"fmt"

	"github.com/ClickHouse/clickhouse-go/v2"
	"github.com/ClickHouse/clickhouse-go/v2/lib/driver"

	"github.com/greeny34/alfred-fantasy-football-sub000/internal/models"
)

// Client provides ClickHouse integration for availability calibration.
// Historical draft results tell us when each tier actually runs out; the
// decay constants shipped as defaults are only estimates.
type Client struct {
	conn driver.Conn
}

// NewClient creates a new ClickHouse client
func NewClient(addr, database, username, password string) (*Client, error) {
	conn, err := clickhouse.Open(&clickhouse.Options{
		Addr: []string{addr},
		Auth: clickhouse.Auth{
			Database: database,
			Username: username,
			Password: password,
		},
	})

	if err != nil {
		return nil, fmt.Errorf("failed to connect to ClickHouse: %w", err)
	}

	if err := conn.Ping(context.Background()); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to ping ClickHouse: %w", err)
	}

	return &Client{conn: conn}, nil
}

// TierExhaustion holds the median pick at which a tier emptied across
// recent drafts
type TierExhaustion struct {
	Position models.Position
	Tier     int
	Pick     float64
}

// GetTierExhaustion retrieves median tier-exhaustion picks from
// historical draft results
func (c *Client) GetTierExhaustion() ([]TierExhaustion, error) {
	query := `
		SELECT
			position,
			tier_number,
			quantile(0.5)(exhausted_at_pick) as median_pick
		FROM tier_exhaustion_events
		WHERE draft_date >= now() - INTERVAL 90 DAY
		GROUP BY position, tier_number
	`

	rows, err := c.conn.Query(context.Background(), query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []TierExhaustion
	for rows.Next() {
		var (
			pos    string
			tier   int32
			median float64
		)
		if err := rows.Scan(&pos, &tier, &median); err != nil {
			return nil, err
		}
		results = append(results, TierExhaustion{
			Position: models.Position(pos),
			Tier:     int(tier),
			Pick:     median,
		})
	}

	return results, nil
}

// CalibrateDecay updates tier decay constants from observed exhaustion
// picks. A tier's availability crosses 0.5 at half its decay constant,
// so the observed median exhaustion pick maps to decay = 2 * median.
// This should be called once at startup.
func (c *Client) CalibrateDecay(apply func(pos models.Position, tier int, decay float64) bool) error {
	observed, err := c.GetTierExhaustion()
	if err != nil {
		return err
	}

	for _, obs := range observed {
		if obs.Pick <= 0 {
			continue
		}
		apply(obs.Position, obs.Tier, 2*obs.Pick)
	}

	return nil
}

// Close closes the ClickHouse connection
func (c *Client) Close() error {
	if c.conn != nil {
		return c.conn.Close()
	}
	return nil
}
