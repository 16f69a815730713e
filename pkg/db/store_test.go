package db

import (
	"bytes"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wallet-health/pkg/config"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := NewStore(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestRecordAndRecent(t *testing.T) {
	s := newTestStore(t)
	base := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	tick := 0
	s.now = func() time.Time { tick++; return base.Add(time.Duration(tick) * time.Minute) }

	_, err := s.RecordLookup("ABC123", config.ChainUnknown, false)
	require.NoError(t, err)
	_, err = s.RecordLookup("8x5rM4GfSXwV1HvQnBPsKS5CpCWGnGTFHmPqaHk6ogQw", config.ChainSolana, true)
	require.NoError(t, err)
	_, err = s.RecordLookup("ABC123", config.ChainUnknown, false)
	require.NoError(t, err)

	got, err := s.RecentLookups(10)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "ABC123", got[0].Address)
	assert.Equal(t, "8x5rM4GfSXwV1HvQnBPsKS5CpCWGnGTFHmPqaHk6ogQw", got[1].Address)
	assert.Equal(t, config.ChainSolana, got[1].Chain)
	assert.True(t, got[1].IsDemo)

	stats, err := s.GetStats()
	require.NoError(t, err)
	assert.Equal(t, 3, stats["lookups"])
	assert.Equal(t, 2, stats["wallets"])
}

func TestRecentLookupsLimit(t *testing.T) {
	s := newTestStore(t)
	for _, a := range []string{"a", "b", "c", "d"} {
		_, err := s.RecordLookup(a, config.ChainUnknown, false)
		require.NoError(t, err)
	}

	got, err := s.RecentLookups(2)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "d", got[0].Address)
	assert.Equal(t, "c", got[1].Address)
}

func TestRecentLookupsEmpty(t *testing.T) {
	s := newTestStore(t)
	got, err := s.RecentLookups(5)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestRecordEmptyAddress(t *testing.T) {
	s := newTestStore(t)
	_, err := s.RecordLookup("", config.ChainUnknown, false)
	require.NoError(t, err)

	got, err := s.RecentLookups(5)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "", got[0].Address)
}

func TestPruneBefore(t *testing.T) {
	s := newTestStore(t)
	old := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	recent := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)

	s.now = func() time.Time { return old }
	_, err := s.RecordLookup("old", config.ChainUnknown, false)
	require.NoError(t, err)
	s.now = func() time.Time { return recent }
	_, err = s.RecordLookup("new", config.ChainUnknown, false)
	require.NoError(t, err)

	n, err := s.PruneBefore(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	got, err := s.RecentLookups(10)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "new", got[0].Address)
}

func TestRecentLookupsSkipsUnreadableRows(t *testing.T) {
	s := newTestStore(t)
	_, err := s.RecordLookup("good", config.ChainUnknown, false)
	require.NoError(t, err)
	_, err = s.db.Exec("INSERT INTO wallet_lookups (address, chain, is_demo, viewed_at) VALUES ('bad', 'unknown', 'maybe', CURRENT_TIMESTAMP)")
	require.NoError(t, err)

	var buf bytes.Buffer
	prev := log.Logger
	log.Logger = zerolog.New(&buf)
	t.Cleanup(func() { log.Logger = prev })

	got, err := s.RecentLookups(10)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "good", got[0].Address)
	assert.Contains(t, buf.String(), "skipping unreadable lookup row")
}
