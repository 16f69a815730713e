package db

import (
	"database/sql"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/rs/zerolog/log"

	"github.com/wallet-health/pkg/config"
)

const schema = `
CREATE TABLE IF NOT EXISTS wallet_lookups (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    address TEXT NOT NULL DEFAULT '',
    chain TEXT NOT NULL DEFAULT 'unknown',
    is_demo BOOLEAN DEFAULT FALSE,
    viewed_at TIMESTAMP NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_lookup_time ON wallet_lookups(viewed_at);
CREATE INDEX IF NOT EXISTS idx_lookup_addr ON wallet_lookups(address);
`

type Store struct {
	db  *sql.DB
	now func() time.Time
}

func NewStore(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("init schema: %w", err)
	}

	return &Store{db: db, now: time.Now}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// ---- Lookups ----

func (s *Store) RecordLookup(address string, chain config.Chain, isDemo bool) (int64, error) {
	res, err := s.db.Exec(`
		INSERT INTO wallet_lookups (address, chain, is_demo, viewed_at)
		VALUES (?, ?, ?, ?)`,
		address, string(chain), isDemo, s.now().UTC())
	if err != nil {
		return 0, fmt.Errorf("record lookup: %w", err)
	}
	return res.LastInsertId()
}

// RecentLookups returns the newest lookups first, one row per distinct
// address.
func (s *Store) RecentLookups(limit int) ([]Lookup, error) {
	if limit <= 0 {
		limit = 10
	}
	rows, err := s.db.Query(`
		SELECT l.id, l.address, l.chain, l.is_demo, l.viewed_at
		FROM wallet_lookups l
		JOIN (SELECT MAX(id) AS id FROM wallet_lookups GROUP BY address) latest ON latest.id = l.id
		ORDER BY l.id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query lookups: %w", err)
	}
	defer rows.Close()

	lookups := []Lookup{}
	for rows.Next() {
		var l Lookup
		var chain string
		if err := rows.Scan(&l.ID, &l.Address, &chain, &l.IsDemo, &l.ViewedAt); err != nil {
			log.Warn().Err(err).Msg("skipping unreadable lookup row")
			continue
		}
		l.Chain = config.Chain(chain)
		lookups = append(lookups, l)
	}
	return lookups, rows.Err()
}

// PruneBefore deletes lookups older than cutoff and reports how many went.
func (s *Store) PruneBefore(cutoff time.Time) (int64, error) {
	res, err := s.db.Exec("DELETE FROM wallet_lookups WHERE viewed_at < ?", cutoff.UTC())
	if err != nil {
		return 0, fmt.Errorf("prune lookups: %w", err)
	}
	return res.RowsAffected()
}

func (s *Store) GetStats() (map[string]int, error) {
	stats := map[string]int{}
	var total, distinct int
	if err := s.db.QueryRow("SELECT COUNT(*), COUNT(DISTINCT address) FROM wallet_lookups").Scan(&total, &distinct); err != nil {
		return nil, fmt.Errorf("stats: %w", err)
	}
	stats["lookups"] = total
	stats["wallets"] = distinct
	return stats, nil
}
