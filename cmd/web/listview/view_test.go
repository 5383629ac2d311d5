package listview

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gradpath/cmd/web/contentclient"
	"gradpath/pagination"
)

func seq(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i + 1
	}
	return out
}

func static(items []int) Source[int] {
	return func(context.Context) contentclient.Result[int] {
		return contentclient.Result[int]{Data: items}
	}
}

func mounted(t *testing.T, source Source[int], limit int) *View[int] {
	t.Helper()
	v, err := New(source, limit)
	require.NoError(t, err)
	_, err = v.Mount(context.Background())
	require.NoError(t, err)
	return v
}

func TestNewRejectsInvalidLimit(t *testing.T) {
	for _, limit := range []int{0, -3} {
		_, err := New(static(seq(3)), limit)
		assert.ErrorIs(t, err, pagination.ErrInvalidConfiguration)
	}
}

func TestMountShowsFirstPage(t *testing.T) {
	v, err := New(static(seq(14)), 6)
	require.NoError(t, err)
	assert.Equal(t, StatusIdle, v.State().Status)

	st, err := v.Mount(context.Background())
	require.NoError(t, err)

	assert.Equal(t, StatusReady, st.Status)
	assert.Equal(t, 1, st.Page.Page)
	assert.Equal(t, 3, st.Page.TotalPages)
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6}, st.Page.Items)
	assert.False(t, st.Unavailable)
}

func TestNavigation(t *testing.T) {
	v := mounted(t, static(seq(14)), 6)

	assert.False(t, v.Retreat(), "no page before the first")
	assert.True(t, v.Advance())
	assert.True(t, v.Advance())
	assert.Equal(t, []int{13, 14}, v.State().Page.Items)
	assert.Equal(t, 13, v.State().Page.FirstItem)
	assert.Equal(t, 14, v.State().Page.LastItem)

	assert.False(t, v.Advance(), "no page after the last")
	assert.Equal(t, 3, v.State().Page.Page)

	assert.True(t, v.Retreat())
	assert.Equal(t, []int{7, 8, 9, 10, 11, 12}, v.State().Page.Items)
}

func TestJumpToOutOfRangeIsNoop(t *testing.T) {
	v := mounted(t, static(seq(14)), 6)
	require.True(t, v.JumpTo(2))
	before := v.State()

	for _, page := range []int{0, -1, 4, 99} {
		assert.False(t, v.JumpTo(page), "page %d", page)
	}
	assert.Equal(t, before, v.State())
}

func TestNavigationBeforeMount(t *testing.T) {
	v, err := New(static(seq(14)), 6)
	require.NoError(t, err)

	assert.False(t, v.Advance())
	assert.False(t, v.JumpTo(1))
}

func TestFailedFetchIsEmptyButUnavailable(t *testing.T) {
	failing := func(context.Context) contentclient.Result[int] {
		return contentclient.Result[int]{
			Data: []int{},
			Err:  &contentclient.FetchError{Kind: contentclient.KindStatus, Resource: contentclient.Blogs, StatusCode: 500},
		}
	}
	v := mounted(t, failing, 6)
	st := v.State()

	assert.Equal(t, StatusReady, st.Status)
	assert.True(t, st.Unavailable)
	assert.Error(t, st.Err)
	assert.Equal(t, 0, st.Page.TotalPages)
	assert.Empty(t, st.Page.Items)
	assert.False(t, v.Advance())
	assert.False(t, v.JumpTo(1))

	empty := mounted(t, static(nil), 6)
	assert.False(t, empty.State().Unavailable)
	assert.NotNil(t, empty.State().Page.Items)
}

func TestReloadClampsPage(t *testing.T) {
	var items atomic.Pointer[[]int]
	five := seq(5)
	items.Store(&five)
	source := func(context.Context) contentclient.Result[int] {
		return contentclient.Result[int]{Data: *items.Load()}
	}

	v := mounted(t, source, 1)
	require.True(t, v.JumpTo(5))

	three := seq(3)
	items.Store(&three)
	st, err := v.Reload(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 3, st.Page.Page)
	assert.Equal(t, 3, st.Page.TotalPages)
	assert.Equal(t, []int{3}, st.Page.Items)
	assert.True(t, v.Retreat())
}

func TestReloadKeepsPageWhenStillValid(t *testing.T) {
	v := mounted(t, static(seq(30)), 10)
	require.True(t, v.JumpTo(2))

	st, err := v.Reload(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, st.Page.Page)
}

func TestUnmountDiscardsLateFetch(t *testing.T) {
	started := make(chan struct{})
	release := make(chan struct{})
	var fetchCtxErr atomic.Value
	source := func(ctx context.Context) contentclient.Result[int] {
		close(started)
		<-release
		if err := ctx.Err(); err != nil {
			fetchCtxErr.Store(err)
		}
		return contentclient.Result[int]{Data: seq(10)}
	}
	v, err := New(source, 3)
	require.NoError(t, err)

	var mountErr error
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		_, mountErr = v.Mount(context.Background())
	}()

	<-started
	assert.Equal(t, StatusLoading, v.State().Status)
	v.Unmount()
	close(release)
	wg.Wait()

	assert.ErrorIs(t, mountErr, ErrUnmounted)
	assert.Equal(t, StatusUnmounted, v.State().Status)
	assert.Empty(t, v.State().Page.Items)
	assert.ErrorIs(t, fetchCtxErr.Load().(error), context.Canceled)

	_, err = v.Mount(context.Background())
	assert.ErrorIs(t, err, ErrUnmounted)
	assert.False(t, v.Advance())
}

func TestNewerMountWins(t *testing.T) {
	var calls atomic.Int32
	started := make(chan struct{})
	release := make(chan struct{})
	source := func(context.Context) contentclient.Result[int] {
		if calls.Add(1) == 1 {
			close(started)
			<-release
			return contentclient.Result[int]{Data: seq(2)}
		}
		return contentclient.Result[int]{Data: seq(20)}
	}
	v, err := New(source, 5)
	require.NoError(t, err)

	errc := make(chan error, 1)
	go func() {
		_, err := v.Mount(context.Background())
		errc <- err
	}()
	<-started

	st, err := v.Mount(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 4, st.Page.TotalPages)

	close(release)
	assert.True(t, errors.Is(<-errc, ErrUnmounted))
	assert.Equal(t, 4, v.State().Page.TotalPages)
}

func TestSourcePanicLeavesViewUsable(t *testing.T) {
	var calls atomic.Int32
	source := func(context.Context) contentclient.Result[int] {
		if calls.Add(1) == 1 {
			panic("decoder blew up")
		}
		return contentclient.Result[int]{Data: seq(7)}
	}
	v, err := New(source, 3)
	require.NoError(t, err)

	st, err := v.Mount(context.Background())
	require.NoError(t, err)
	assert.Equal(t, StatusReady, st.Status)
	assert.True(t, st.Unavailable)
	assert.ErrorIs(t, st.Err, ErrSourcePanic)
	assert.Empty(t, st.Page.Items)

	st, err = v.Reload(context.Background())
	require.NoError(t, err)
	assert.False(t, st.Unavailable)
	assert.Equal(t, 3, st.Page.TotalPages)
	assert.True(t, v.Advance())
	assert.Equal(t, 2, v.State().Page.Page)
}

func TestWithSiblings(t *testing.T) {
	v, err := New(static(seq(100)), 10, WithSiblings(2))
	require.NoError(t, err)
	_, err = v.Mount(context.Background())
	require.NoError(t, err)
	require.True(t, v.JumpTo(5))

	var pages []int
	for _, c := range v.State().Page.Controls {
		if !c.Ellipsis {
			pages = append(pages, c.Page)
		}
	}
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7, 10}, pages)
}
