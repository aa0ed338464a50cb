// internal/store/cache_test.go
package store

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vendor-advisor/internal/common/logger"
	"vendor-advisor/internal/models"
)

func newTestCache(t *testing.T) (*SnapshotCache, *miniredis.Miniredis) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return NewSnapshotCache(client, 5*time.Minute, logger.NewTestLogger(t)), mr
}

func TestSnapshotCache_SetGet(t *testing.T) {
	cache, _ := newTestCache(t)
	ctx := context.Background()

	snap := models.FinancialSnapshot{MonthlyRevenue: 500000, MonthlyExpenses: 350000, CurrentSavings: 400000}
	cache.Set(ctx, "vendor-1", snap)

	got, ok := cache.Get(ctx, "vendor-1")
	require.True(t, ok)
	assert.Equal(t, snap, got)
}

func TestSnapshotCache_Miss(t *testing.T) {
	cache, _ := newTestCache(t)

	_, ok := cache.Get(context.Background(), "vendor-unknown")
	assert.False(t, ok)
}

func TestSnapshotCache_TTL(t *testing.T) {
	cache, mr := newTestCache(t)
	ctx := context.Background()

	cache.Set(ctx, "vendor-1", models.FinancialSnapshot{MonthlyRevenue: 100})
	mr.FastForward(6 * time.Minute)

	_, ok := cache.Get(ctx, "vendor-1")
	assert.False(t, ok)
}

func TestSnapshotCache_CorruptEntryEvicted(t *testing.T) {
	cache, mr := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, mr.Set("snapshot:vendor-1", "not-json"))

	_, ok := cache.Get(ctx, "vendor-1")
	assert.False(t, ok)
	assert.False(t, mr.Exists("snapshot:vendor-1"))
}

func TestSnapshotCache_Invalidate(t *testing.T) {
	cache, _ := newTestCache(t)
	ctx := context.Background()

	cache.Set(ctx, "vendor-1", models.FinancialSnapshot{MonthlyRevenue: 100})
	cache.Invalidate(ctx, "vendor-1")

	_, ok := cache.Get(ctx, "vendor-1")
	assert.False(t, ok)
}

func TestCachedStore_ReadThrough(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	cache, _ := newTestCache(t)
	cached := NewCached(New(db, logger.NewTestLogger(t)), cache)
	ctx := context.Background()

	rows := sqlmock.NewRows([]string{"monthly_revenue", "monthly_expenses", "current_savings"}).
		AddRow(500000.0, 350000.0, 400000.0)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT monthly_revenue")).
		WithArgs("vendor-1").
		WillReturnRows(rows)

	// First read hits the database and fills the cache.
	snap, err := cached.FetchLatestSnapshot(ctx, "vendor-1")
	require.NoError(t, err)
	assert.Equal(t, 500000.0, snap.MonthlyRevenue)

	// Second read must come from the cache; no further query is expected.
	snap, err = cached.FetchLatestSnapshot(ctx, "vendor-1")
	require.NoError(t, err)
	assert.Equal(t, 500000.0, snap.MonthlyRevenue)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCachedStore_InsertInvalidatesCache(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	cache, mr := newTestCache(t)
	cached := NewCached(New(db, logger.NewTestLogger(t)), cache)
	ctx := context.Background()

	cache.Set(ctx, "vendor-1", models.FinancialSnapshot{MonthlyRevenue: 100})
	require.True(t, mr.Exists("snapshot:vendor-1"))

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO financial_snapshots")).
		WithArgs("vendor-1", 600000.0, 400000.0, 250000.0).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err = cached.InsertSnapshot(ctx, "vendor-1", models.FinancialSnapshot{
		MonthlyRevenue:  600000,
		MonthlyExpenses: 400000,
		CurrentSavings:  250000,
	})
	require.NoError(t, err)
	assert.False(t, mr.Exists("snapshot:vendor-1"))
}
