package store

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/i474232898/weather-widget/internal/weather"
)

type clock struct{ t time.Time }

func (c *clock) now() time.Time            { return c.t }
func (c *clock) advance(d time.Duration) { c.t = c.t.Add(d) }

func newTestStore(maxSessions int, maxAge time.Duration) (*MemoryStore, *clock, *int) {
	created := 0
	factory := func() *weather.Widget {
		created++
		return weather.NewWidget(nil, "", nil)
	}

	c := &clock{t: time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)}
	s := NewMemoryStore(factory, maxSessions, maxAge)
	s.now = c.now
	return s, c, &created
}

func TestMemoryStore_GetOrCreate(t *testing.T) {
	s, _, created := newTestStore(0, time.Hour)
	id := NewSessionID()

	w1, isNew := s.GetOrCreate(id)
	require.NotNil(t, w1)
	assert.True(t, isNew)

	w2, isNew := s.GetOrCreate(id)
	assert.False(t, isNew)
	assert.Same(t, w1, w2)

	other, isNew := s.GetOrCreate(NewSessionID())
	assert.True(t, isNew)
	assert.NotSame(t, w1, other)

	assert.Equal(t, 2, *created)
	assert.Equal(t, 2, s.Len())
}

func TestMemoryStore_Get(t *testing.T) {
	s, _, _ := newTestStore(0, time.Hour)

	_, err := s.Get(uuid.New())
	assert.ErrorIs(t, err, ErrNotFound)

	id := NewSessionID()
	w, _ := s.GetOrCreate(id)

	got, err := s.Get(id)
	require.NoError(t, err)
	assert.Same(t, w, got)
}

func TestMemoryStore_PruneByAge(t *testing.T) {
	s, c, _ := newTestStore(0, 30*time.Minute)

	stale := NewSessionID()
	fresh := NewSessionID()
	s.GetOrCreate(stale)
	s.GetOrCreate(fresh)

	c.advance(20 * time.Minute)
	_, err := s.Get(fresh)
	require.NoError(t, err)

	c.advance(15 * time.Minute)
	assert.Equal(t, 1, s.Prune())

	_, err = s.Get(stale)
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = s.Get(fresh)
	assert.NoError(t, err)
}

func TestMemoryStore_EvictsLeastRecentlySeen(t *testing.T) {
	s, c, _ := newTestStore(2, time.Hour)

	a, b, d := NewSessionID(), NewSessionID(), NewSessionID()
	s.GetOrCreate(a)
	c.advance(time.Second)
	s.GetOrCreate(b)
	c.advance(time.Second)
	s.GetOrCreate(a) // a is now more recent than b
	c.advance(time.Second)
	s.GetOrCreate(d)

	assert.Equal(t, 2, s.Len())
	_, err := s.Get(b)
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = s.Get(a)
	assert.NoError(t, err)
	_, err = s.Get(d)
	assert.NoError(t, err)
}

func TestParseSessionID(t *testing.T) {
	id := NewSessionID()

	got, err := ParseSessionID(id.String())
	require.NoError(t, err)
	assert.Equal(t, id, got)

	_, err = ParseSessionID("not-a-uuid")
	assert.Error(t, err)
}
