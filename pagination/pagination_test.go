package pagination

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seq(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}

func TestPaginateFourteenItemsBySix(t *testing.T) {
	items := seq(14)

	first, err := Paginate(items, 6, 1)
	require.NoError(t, err)
	assert.Equal(t, 3, first.TotalPages)
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5}, first.Items)
	assert.Equal(t, 1, first.FirstItem)
	assert.Equal(t, 6, first.LastItem)
	assert.False(t, first.HasPrev)
	assert.True(t, first.HasNext)
	assert.Equal(t, 2, first.NextPage)

	last, err := Paginate(items, 6, 3)
	require.NoError(t, err)
	assert.Equal(t, []int{12, 13}, last.Items)
	assert.Equal(t, 13, last.FirstItem)
	assert.Equal(t, 14, last.LastItem)
	assert.True(t, last.HasPrev)
	assert.False(t, last.HasNext)
	assert.Equal(t, []int{1, 2, 3}, last.Pages)
}

func TestPaginateEmptyList(t *testing.T) {
	res, err := Paginate([]string{}, 6, 1)
	require.NoError(t, err)
	assert.Equal(t, 0, res.TotalPages)
	assert.Equal(t, 0, res.Page)
	assert.Empty(t, res.Items)
	assert.NotNil(t, res.Items)
	assert.Empty(t, res.Pages)
	assert.Empty(t, res.Controls)
	assert.Zero(t, res.FirstItem)
	assert.Zero(t, res.LastItem)
}

func TestPaginateRejectsNonPositiveLimit(t *testing.T) {
	for _, limit := range []int{0, -1} {
		_, err := Paginate(seq(5), limit, 1)
		assert.ErrorIs(t, err, ErrInvalidConfiguration)
	}
}

func TestPaginateClampsPastLastPage(t *testing.T) {
	// list shrank from 5 pages to 3 while the viewer sat on page 5
	res, err := Paginate(seq(18), 6, 5)
	require.NoError(t, err)
	assert.Equal(t, 3, res.Page)
	assert.Equal(t, []int{12, 13, 14, 15, 16, 17}, res.Items)

	low, err := Paginate(seq(18), 6, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, low.Page)
}

func TestPaginateIsIdempotent(t *testing.T) {
	items := seq(37)
	a, err := Paginate(items, 5, 4, WithSiblings(2))
	require.NoError(t, err)
	b, err := Paginate(items, 5, 4, WithSiblings(2))
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestPaginateProperties(t *testing.T) {
	for n := 0; n <= 40; n++ {
		for limit := 1; limit <= 12; limit++ {
			items := seq(n)
			wantPages := (n + limit - 1) / limit
			for page := 1; page <= wantPages; page++ {
				res, err := Paginate(items, limit, page)
				require.NoError(t, err)
				require.Equal(t, wantPages, res.TotalPages, "n=%d limit=%d", n, limit)

				wantLen := limit
				if page == wantPages {
					wantLen = n - (wantPages-1)*limit
				}
				assert.Len(t, res.Items, wantLen, "n=%d limit=%d page=%d", n, limit, page)
				assert.Equal(t, len(res.Items), res.LastItem-res.FirstItem+1)
				assert.Equal(t, res.Items[0], res.FirstItem-1)
			}
		}
	}
}

func TestPaginateHugeLimit(t *testing.T) {
	testCases := []struct {
		name  string
		limit int
	}{
		{name: "max int", limit: math.MaxInt},
		{name: "just over half of max int", limit: math.MaxInt/2 + 1},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			res, err := Paginate([]int{1, 2, 3, 4, 5}, testCase.limit, 1)
			require.NoError(t, err)
			assert.Equal(t, 1, res.TotalPages)
			assert.Equal(t, 1, res.Page)
			assert.Equal(t, []int{1, 2, 3, 4, 5}, res.Items)
			assert.Equal(t, 1, res.FirstItem)
			assert.Equal(t, 5, res.LastItem)
		})
	}

	assert.Equal(t, 1, TotalPages(math.MaxInt, math.MaxInt))
	assert.Equal(t, 2, TotalPages(math.MaxInt, math.MaxInt-1))
}

func TestPaginateDoesNotExposeBackingArray(t *testing.T) {
	items := seq(10)
	res, err := Paginate(items, 4, 1)
	require.NoError(t, err)

	grown := append(res.Items, 99)
	assert.Equal(t, 99, grown[4])
	assert.Equal(t, 4, items[4])
}

func TestControls(t *testing.T) {
	page := func(p int) Control { return Control{Page: p} }
	cur := func(p int) Control { return Control{Page: p, Current: true} }
	gap := Control{Ellipsis: true}

	testCases := []struct {
		name     string
		total    int
		current  int
		siblings int
		want     []Control
	}{
		{name: "no pages", total: 0, current: 1, siblings: 1, want: []Control{}},
		{name: "single page", total: 1, current: 1, siblings: 1, want: []Control{cur(1)}},
		{
			name: "middle of ten", total: 10, current: 5, siblings: 1,
			want: []Control{page(1), gap, page(4), cur(5), page(6), gap, page(10)},
		},
		{
			name: "first of ten", total: 10, current: 1, siblings: 1,
			want: []Control{cur(1), page(2), gap, page(10)},
		},
		{
			name: "last of ten", total: 10, current: 10, siblings: 1,
			want: []Control{page(1), gap, page(9), cur(10)},
		},
		{
			name: "single hidden page is shown", total: 10, current: 4, siblings: 1,
			want: []Control{page(1), page(2), page(3), cur(4), page(5), gap, page(10)},
		},
		{
			name: "short list has no ellipsis", total: 5, current: 3, siblings: 1,
			want: []Control{page(1), page(2), cur(3), page(4), page(5)},
		},
		{
			name: "zero siblings", total: 9, current: 5, siblings: 0,
			want: []Control{page(1), gap, cur(5), gap, page(9)},
		},
		{
			name: "two siblings", total: 20, current: 10, siblings: 2,
			want: []Control{page(1), gap, page(8), page(9), cur(10), page(11), page(12), gap, page(20)},
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			assert.Equal(t, testCase.want, Controls(testCase.total, testCase.current, testCase.siblings))
		})
	}
}

func TestPaginateHundredItemsControls(t *testing.T) {
	res, err := Paginate(seq(100), 10, 5)
	require.NoError(t, err)

	var rendered []any
	for _, c := range res.Controls {
		if c.Ellipsis {
			rendered = append(rendered, "…")
			continue
		}
		rendered = append(rendered, c.Page)
	}
	assert.Equal(t, []any{1, "…", 4, 5, 6, "…", 10}, rendered)
}

func TestInRange(t *testing.T) {
	assert.True(t, InRange(1, 3))
	assert.True(t, InRange(3, 3))
	assert.False(t, InRange(0, 3))
	assert.False(t, InRange(4, 3))
	assert.False(t, InRange(1, 0))
}
