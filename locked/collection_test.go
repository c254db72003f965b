package locked

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/querygo"
)

type account struct {
	Owner   string
	Balance float64
}

func accountOwner(a *account) string    { return a.Owner }
func accountBalance(a *account) float64 { return a.Balance }

// countingValue wraps a Value and counts acquisitions, to verify how many
// element locks a pass takes.
type countingValue[T any] struct {
	inner Value[T]
	views int
}

func (c *countingValue[T]) View(fn func(*T) error) error {
	c.views++
	return c.inner.View(fn)
}

func (c *countingValue[T]) Update(fn func(*T) error) error {
	return c.inner.Update(fn)
}

func testAccounts() []account {
	return []account{
		{Owner: "ada", Balance: 100},
		{Owner: "bob", Balance: 20},
		{Owner: "ada", Balance: 55},
		{Owner: "eve", Balance: 0},
	}
}

func guarded(items []account) ([]Value[account], []*countingValue[account]) {
	values := make([]Value[account], len(items))
	counters := make([]*countingValue[account], len(items))
	for i, it := range items {
		cv := &countingValue[account]{inner: NewRW(it)}
		counters[i] = cv
		values[i] = cv
	}
	return values, counters
}

func totalViews(counters []*countingValue[account]) int {
	n := 0
	for _, c := range counters {
		n += c.views
	}
	return n
}

func TestCount(t *testing.T) {
	values, counters := guarded(testAccounts())
	c := Over(values).Where(querygo.Eq(accountOwner, "ada"))

	n, err := c.Count()
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	// At most one acquisition per element, no copies needed.
	assert.Equal(t, len(values), totalViews(counters))
}

func TestExistsStopsAcquiringLocks(t *testing.T) {
	values, counters := guarded(testAccounts())
	c := Over(values).Where(querygo.Eq(accountOwner, "bob"))

	ok, err := c.Exists()
	require.NoError(t, err)
	assert.True(t, ok)

	// "bob" sits at position 2 (1-based); later elements stay untouched.
	assert.Equal(t, 2, totalViews(counters))
	assert.Equal(t, 0, counters[2].views)
	assert.Equal(t, 0, counters[3].views)
}

func TestFirstReturnsOwnedCopy(t *testing.T) {
	values, _ := guarded(testAccounts())
	c := Over(values).Where(querygo.Eq(accountOwner, "ada"))

	got, ok, err := c.First()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 100.0, got.Balance)

	// Mutating the element afterwards must not affect the copy.
	require.NoError(t, values[0].Update(func(a *account) error {
		a.Balance = -1
		return nil
	}))
	assert.Equal(t, 100.0, got.Balance)
}

func TestFirstNoMatch(t *testing.T) {
	values, _ := guarded(testAccounts())

	_, ok, err := Over(values).Where(querygo.Eq(accountOwner, "zed")).First()
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestCollect(t *testing.T) {
	values, _ := guarded(testAccounts())
	c := Over(values).Where(querygo.Where(accountBalance, func(b float64) bool { return b > 30 }))

	got, err := c.Collect()
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "ada", got[0].Owner)
	assert.Equal(t, 55.0, got[1].Balance)
}

func TestTake(t *testing.T) {
	values, counters := guarded(testAccounts())
	c := Over(values).Where(querygo.Eq(accountOwner, "ada"))

	got, err := c.Take(1)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, 100.0, got[0].Balance)

	// Enough matches found after the first element; no more locks taken.
	assert.Equal(t, 1, totalViews(counters))
}

func TestTakeZeroAcquiresNoLock(t *testing.T) {
	values, counters := guarded(testAccounts())

	got, err := Over(values).Take(0)
	require.NoError(t, err)
	assert.Empty(t, got)
	assert.Equal(t, 0, totalViews(counters))
}

func TestPoisonedElementAbortsPass(t *testing.T) {
	values, _ := guarded(testAccounts())

	// Poison the third element.
	assert.Panics(t, func() {
		_ = values[2].Update(func(*account) error { panic("writer fault") })
	})

	_, err := Over(values).Count()
	require.Error(t, err)

	var elemErr *ElementError
	require.ErrorAs(t, err, &elemErr)
	assert.Equal(t, 2, elemErr.Index)
	assert.ErrorIs(t, err, ErrPoisoned)
}

func TestEarlyTerminationSkipsPoisonedTail(t *testing.T) {
	values, _ := guarded(testAccounts())
	assert.Panics(t, func() {
		_ = values[3].Update(func(*account) error { panic("writer fault") })
	})

	// The match sits before the poisoned element, so the pass never
	// reaches it.
	ok, err := Over(values).Where(querygo.Eq(accountOwner, "bob")).Exists()
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestMutate(t *testing.T) {
	values, _ := guarded(testAccounts())
	c := Over(values).Where(querygo.Eq(accountOwner, "ada"))

	require.NoError(t, c.Mutate(func(a *account) error {
		a.Balance += 10
		return nil
	}))

	got, err := SelectBy(Over(values), accountBalance)
	require.NoError(t, err)
	assert.Equal(t, []float64{110, 20, 65, 0}, got)
}

func TestMutateAbortsOnError(t *testing.T) {
	values, _ := guarded(testAccounts())
	sentinel := errors.New("refused")

	err := Over(values).Mutate(func(a *account) error {
		if a.Owner == "bob" {
			return sentinel
		}
		a.Balance = 1
		return nil
	})

	var elemErr *ElementError
	require.ErrorAs(t, err, &elemErr)
	assert.Equal(t, 1, elemErr.Index)
	assert.ErrorIs(t, err, sentinel)
}

func TestAggregates(t *testing.T) {
	values, _ := guarded(testAccounts())
	ada := Over(values).Where(querygo.Eq(accountOwner, "ada"))

	sum, err := SumBy(ada, accountBalance)
	require.NoError(t, err)
	assert.Equal(t, 155.0, sum)

	avg, err := AvgBy(ada, accountBalance)
	require.NoError(t, err)
	assert.Equal(t, 77.5, avg)

	lo, err := MinByFloat(ada, accountBalance)
	require.NoError(t, err)
	assert.Equal(t, 55.0, lo)

	hi, err := MaxByFloat(ada, accountBalance)
	require.NoError(t, err)
	assert.Equal(t, 100.0, hi)
}

func TestAvgByNoMatch(t *testing.T) {
	values, _ := guarded(testAccounts())

	_, err := AvgBy(Over(values).Where(querygo.Eq(accountOwner, "zed")), accountBalance)
	assert.ErrorIs(t, err, querygo.ErrNoResult)
}

func TestConcurrentReaders(t *testing.T) {
	items := testAccounts()
	values := make([]Value[account], len(items))
	for i, it := range items {
		values[i] = NewRW(it)
	}

	// Independent queries over the same guarded container; RWValue admits
	// concurrent shared readers, the adapter adds no serialization.
	var g errgroup.Group
	for range 8 {
		g.Go(func() error {
			n, err := Over(values).Where(querygo.Eq(accountOwner, "ada")).Count()
			if err != nil {
				return err
			}
			if n != 2 {
				return errors.New("unexpected count")
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())
}

func TestMetricsRecordLocks(t *testing.T) {
	metrics := &querygo.BasicMetricsCollector{}
	values, _ := guarded(testAccounts())

	c := Over(values, WithMetricsCollector(metrics))
	_, err := c.Count()
	require.NoError(t, err)

	stats := metrics.GetStats()
	assert.EqualValues(t, 1, stats.LockedPassCount)
	assert.EqualValues(t, len(values), stats.LockedPassLocks)
}
