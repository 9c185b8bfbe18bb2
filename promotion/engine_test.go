package promotion

import (
	"context"
	"errors"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (f *fakeClock) Now() time.Time {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.now
}

func (f *fakeClock) Advance(d time.Duration) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.now = f.now.Add(d)
}

func newTestEngine(clock *fakeClock) *Engine {
	return &Engine{
		Duration:     DefaultDuration,
		MinRemaining: DefaultMinRemaining,
		TickInterval: time.Millisecond,
		Now:          clock.Now,
	}
}

type failingStore struct{}

func (failingStore) Load(context.Context, string) (string, bool, error) {
	return "", false, errors.New("store down")
}

func (failingStore) Save(context.Context, string, string) error {
	return errors.New("store down")
}

func TestGetOrCreateWindowCreatesAndPersists(t *testing.T) {
	clock := &fakeClock{now: time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)}
	engine := newTestEngine(clock)
	store := NewMemoryStore()

	w := engine.GetOrCreateWindow(context.Background(), store, BaseKey)

	assert.Equal(t, clock.Now().Add(DefaultDuration), w.ExpiresAt)
	raw, ok, err := store.Load(context.Background(), BaseKey)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, strconv.FormatInt(w.ExpiryTimestamp(), 10), raw)
}

func TestGetOrCreateWindowReusesWithinBand(t *testing.T) {
	clock := &fakeClock{now: time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)}
	engine := newTestEngine(clock)
	store := NewMemoryStore()

	first := engine.GetOrCreateWindow(context.Background(), store, BaseKey)
	clock.Advance(10 * time.Minute)
	second := engine.GetOrCreateWindow(context.Background(), store, BaseKey)

	assert.Equal(t, first.ExpiryTimestamp(), second.ExpiryTimestamp())
}

func TestGetOrCreateWindowRenewsBelowFloor(t *testing.T) {
	clock := &fakeClock{now: time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)}
	engine := newTestEngine(clock)
	store := NewMemoryStore()

	first := engine.GetOrCreateWindow(context.Background(), store, BaseKey)
	// 2h40m window, 2h20m floor: after 21 minutes less than the floor remains
	clock.Advance(21 * time.Minute)
	second := engine.GetOrCreateWindow(context.Background(), store, BaseKey)

	assert.True(t, second.ExpiresAt.After(first.ExpiresAt))
	assert.Equal(t, clock.Now().Add(DefaultDuration), second.ExpiresAt)
}

func TestGetOrCreateWindowReplacesGarbage(t *testing.T) {
	clock := &fakeClock{now: time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)}
	engine := newTestEngine(clock)
	store := NewMemoryStore()
	require.NoError(t, store.Save(context.Background(), BaseKey, "not-a-number"))

	w := engine.GetOrCreateWindow(context.Background(), store, BaseKey)

	assert.Equal(t, clock.Now().Add(DefaultDuration), w.ExpiresAt)
}

func TestGetOrCreateWindowSurvivesStoreFailure(t *testing.T) {
	clock := &fakeClock{now: time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)}
	engine := newTestEngine(clock)

	w := engine.GetOrCreateWindow(context.Background(), failingStore{}, BaseKey)

	assert.Equal(t, clock.Now().Add(DefaultDuration), w.ExpiresAt)
}

func TestKeyScoping(t *testing.T) {
	assert.Equal(t, "saleEndTime", Key(ScopeGlobal, "p1"))
	assert.Equal(t, "saleEndTime:p1", Key(ScopeProduct, "p1"))
	assert.Equal(t, "saleEndTime", Key(ScopeProduct, ""))
}

func TestSecondsRemainingNeverNegative(t *testing.T) {
	now := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	w := Window{ExpiresAt: now.Add(90 * time.Second)}

	assert.Equal(t, int64(90), SecondsRemaining(w, now))
	assert.Equal(t, int64(88), SecondsRemaining(w, now.Add(1500*time.Millisecond)), "partial seconds are truncated")
	assert.Equal(t, int64(0), SecondsRemaining(w, now.Add(90*time.Second)))
	assert.Equal(t, int64(0), SecondsRemaining(w, now.Add(time.Hour)))
}

func TestFormatCountdown(t *testing.T) {
	cases := []struct {
		seconds int64
		want    Countdown
	}{
		{-5, Countdown{"00", "00", "00"}},
		{0, Countdown{"00", "00", "00"}},
		{59, Countdown{"00", "00", "59"}},
		{3661, Countdown{"01", "01", "01"}},
		{9600, Countdown{"02", "40", "00"}},
		{100 * 3600, Countdown{"100", "00", "00"}},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, FormatCountdown(tc.seconds), "seconds=%d", tc.seconds)
	}
	assert.True(t, FormatCountdown(-1).IsZero())
}

func TestTickIsMonotonicAndHoldsAtZero(t *testing.T) {
	clock := &fakeClock{now: time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)}
	engine := newTestEngine(clock)
	w := Window{ExpiresAt: clock.Now().Add(3 * time.Second)}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var got []Countdown
	zeros := 0
	step := 0
	for c := range engine.Tick(ctx, w) {
		got = append(got, c)
		if c.IsZero() {
			zeros++
			if zeros == 3 {
				cancel()
				break
			}
		}
		step++
		switch step {
		case 2:
			// a backwards clock step must not raise the countdown
			clock.Advance(-10 * time.Second)
		default:
			clock.Advance(time.Second)
		}
	}

	require.Equal(t, 3, zeros, "zero is emitted on every tick after the deadline")
	assert.True(t, got[len(got)-1].IsZero())
	for i := 1; i < len(got); i++ {
		prev, _ := strconv.Atoi(got[i-1].Seconds)
		cur, _ := strconv.Atoi(got[i].Seconds)
		assert.LessOrEqual(t, cur, prev)
	}
}

func TestTickStopsOnCancel(t *testing.T) {
	clock := &fakeClock{now: time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)}
	engine := newTestEngine(clock)
	w := Window{ExpiresAt: clock.Now().Add(time.Hour)}

	ctx, cancel := context.WithCancel(context.Background())
	ticks := engine.Tick(ctx, w)

	first := <-ticks
	assert.Equal(t, Countdown{"01", "00", "00"}, first)
	cancel()

	deadline := time.After(2 * time.Second)
	for {
		select {
		case _, ok := <-ticks:
			if !ok {
				return
			}
		case <-deadline:
			t.Fatal("ticker did not stop after cancel")
		}
	}
}
