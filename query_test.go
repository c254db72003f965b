package querygo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type product struct {
	Category string
	Price    float64
	Stock    int
}

func productCategory(p *product) string { return p.Category }
func productPrice(p *product) float64   { return p.Price }
func productStock(p *product) int       { return p.Stock }

func testProducts() []product {
	return []product{
		{Category: "A", Price: 10.0, Stock: 3},
		{Category: "B", Price: 5.0, Stock: 0},
		{Category: "A", Price: 20.0, Stock: 7},
		{Category: "C", Price: 15.0, Stock: 2},
		{Category: "B", Price: 30.0, Stock: 1},
	}
}

func TestQueryEmptyChainMatchesAll(t *testing.T) {
	items := testProducts()
	q := New(items)

	assert.Equal(t, len(items), q.Count())
	assert.True(t, q.Exists())
	assert.Len(t, q.All(), len(items))
}

func TestQueryPredicateChain(t *testing.T) {
	q := New(testProducts()).
		Where(Eq(productCategory, "A")).
		Where(Where(productPrice, func(p float64) bool { return p > 15 }))

	require.Equal(t, 1, q.Count())

	rec, ok := q.First()
	require.True(t, ok)
	assert.Equal(t, 20.0, rec.Price)
}

func TestQueryChainEvaluationOrder(t *testing.T) {
	var calls []string
	q := New(testProducts()).
		Where(func(p *product) bool {
			calls = append(calls, "first")
			return p.Category == "B"
		}).
		Where(func(p *product) bool {
			calls = append(calls, "second")
			return p.Price > 10
		})

	q.Count()

	// The second predicate only runs for records passing the first.
	want := []string{"first", "first", "second", "first", "first", "first", "second"}
	assert.Equal(t, want, calls)
}

func TestQueryNoMatch(t *testing.T) {
	q := New(testProducts()).Where(Eq(productCategory, "Z"))

	assert.Equal(t, 0, q.Count())
	assert.False(t, q.Exists())
	assert.Empty(t, q.All())

	_, ok := q.First()
	assert.False(t, ok)
}

func TestQueryAllReturnsReferences(t *testing.T) {
	items := testProducts()
	q := New(items).Where(Eq(productCategory, "A"))

	refs := q.All()
	require.Len(t, refs, 2)
	assert.Same(t, &items[0], refs[0])
	assert.Same(t, &items[2], refs[1])
}

func TestQueryReuseMaterializesOnce(t *testing.T) {
	metrics := &BasicMetricsCollector{}
	q := New(testProducts(), WithMetricsCollector(metrics)).
		Where(Eq(productCategory, "A"))

	q.Count()
	q.Exists()
	q.All()
	require.EqualValues(t, 1, metrics.GetStats().PassCount)

	// Appending a predicate invalidates the cached match set.
	q.Where(Where(productStock, func(s int) bool { return s > 5 }))
	assert.Equal(t, 1, q.Count())
	assert.EqualValues(t, 2, metrics.GetStats().PassCount)
}

func TestQueryFromSource(t *testing.T) {
	src := SliceSource[product](testProducts())
	q := FromSource[product](src).Where(Eq(productCategory, "B"))

	assert.Equal(t, 2, q.Count())
}

func TestSliceSourceSeqOrder(t *testing.T) {
	src := SliceSource[int]([]int{4, 2, 9})

	var got []int
	for v := range src.Seq() {
		got = append(got, *v)
	}
	assert.Equal(t, []int{4, 2, 9}, got)
}
