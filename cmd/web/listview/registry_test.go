package listview

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gradpath/cmd/web/contentclient"
)

type fakeSession struct {
	Session
	unmounted bool
}

func (f *fakeSession) Unmount() { f.unmounted = true }

func TestRegistryLifecycle(t *testing.T) {
	now := time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)
	r := NewRegistry(10 * time.Minute)
	r.now = func() time.Time { return now }

	s := &fakeSession{}
	added := r.Add("blogs", s)
	require.NotEmpty(t, added.ID)
	assert.Equal(t, now.Add(10*time.Minute), added.ExpiresAt)

	now = now.Add(9 * time.Minute)
	got, ok := r.Get(added.ID)
	require.True(t, ok)
	assert.Equal(t, "blogs", got.Resource)
	assert.Same(t, s, got.Session)
	assert.Equal(t, now.Add(10*time.Minute), got.ExpiresAt, "a read extends the idle deadline")

	assert.True(t, r.Remove(added.ID))
	assert.True(t, s.unmounted)
	assert.False(t, r.Remove(added.ID))
	_, ok = r.Get(added.ID)
	assert.False(t, ok)
}

func TestRegistryEvictsIdleSessions(t *testing.T) {
	now := time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)
	r := NewRegistry(time.Minute)
	r.now = func() time.Time { return now }

	idle := &fakeSession{}
	idleID := r.Add("events", idle).ID

	now = now.Add(30 * time.Second)
	busy := &fakeSession{}
	busyID := r.Add("services", busy).ID

	now = now.Add(45 * time.Second)
	_, ok := r.Get(idleID)
	assert.False(t, ok)
	assert.True(t, idle.unmounted)

	_, ok = r.Get(busyID)
	assert.True(t, ok)
	assert.False(t, busy.unmounted)
	assert.Equal(t, 1, r.Len())

	now = now.Add(2 * time.Minute)
	assert.Equal(t, 1, r.Sweep())
	assert.Equal(t, 0, r.Len())
}

func TestRegistryClose(t *testing.T) {
	r := NewRegistry(time.Minute)
	a, b := &fakeSession{}, &fakeSession{}
	r.Add("blogs", a)
	r.Add("events", b)

	r.Close()

	assert.True(t, a.unmounted)
	assert.True(t, b.unmounted)
	assert.Zero(t, r.Len())
}

func TestFactoryMountsSession(t *testing.T) {
	var gotQuery map[string]string
	load := func(_ context.Context, query map[string]string) contentclient.Result[string] {
		gotQuery = query
		return contentclient.Result[string]{Data: []string{"a", "b", "c", "d", "e"}}
	}
	factory := NewFactory(load, 2)

	s, err := factory(context.Background(), map[string]string{"tag": "visa"})
	require.NoError(t, err)

	assert.Equal(t, map[string]string{"tag": "visa"}, gotQuery)
	assert.Equal(t, 3, s.TotalPages())
	assert.False(t, s.Unavailable())
	assert.NoError(t, s.Err())
	require.True(t, s.JumpTo(3))

	st, ok := s.Snapshot().(State[string])
	require.True(t, ok)
	assert.Equal(t, []string{"e"}, st.Page.Items)

	require.NoError(t, s.Reload(context.Background()))
	assert.Equal(t, 3, s.Snapshot().(State[string]).Page.Page)

	s.Unmount()
	assert.ErrorIs(t, s.Reload(context.Background()), ErrUnmounted)
}

func TestFactoryRejectsInvalidLimit(t *testing.T) {
	factory := NewFactory(func(context.Context, map[string]string) contentclient.Result[int] {
		return contentclient.Result[int]{}
	}, 0)

	_, err := factory(context.Background(), nil)
	assert.Error(t, err)
}
