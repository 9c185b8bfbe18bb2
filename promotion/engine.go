// Package promotion computes flash-sale deadlines and the countdown shown
// next to discounted prices.
package promotion

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/Govind-619/Storefront/utils"
)

// Defaults observed on the storefront: a fresh window lasts 2h40m and is
// renewed whenever less than 2h20m remains.
const (
	DefaultDuration     = 2*time.Hour + 40*time.Minute
	DefaultMinRemaining = 2*time.Hour + 20*time.Minute
	DefaultTickInterval = time.Second
)

// Window is a flash-sale offer ending at ExpiresAt
type Window struct {
	ExpiresAt time.Time
}

// ExpiryTimestamp returns the deadline in epoch milliseconds
func (w Window) ExpiryTimestamp() int64 {
	return w.ExpiresAt.UnixMilli()
}

// Countdown is the display form of the remaining time
type Countdown struct {
	Hours   string `json:"hours"`
	Minutes string `json:"minutes"`
	Seconds string `json:"seconds"`
}

// IsZero reports whether the countdown has run out
func (c Countdown) IsZero() bool {
	return c == Countdown{Hours: "00", Minutes: "00", Seconds: "00"}
}

// Engine creates and renews promotion windows
type Engine struct {
	Duration     time.Duration
	MinRemaining time.Duration
	TickInterval time.Duration
	Now          func() time.Time
}

// NewEngine returns an engine with the storefront defaults and the wall clock
func NewEngine() *Engine {
	return &Engine{
		Duration:     DefaultDuration,
		MinRemaining: DefaultMinRemaining,
		TickInterval: DefaultTickInterval,
		Now:          time.Now,
	}
}

func (e *Engine) now() time.Time {
	if e.Now == nil {
		return time.Now()
	}
	return e.Now()
}

// GetOrCreateWindow returns the window persisted under key, replacing it with
// a fresh one when it is missing, unreadable or closer than MinRemaining to
// running out. Store failures are logged: the window is still returned, it
// just may not survive the next visit.
func (e *Engine) GetOrCreateWindow(ctx context.Context, store Store, key string) Window {
	now := e.now()
	floor := now.Add(e.MinRemaining)

	raw, ok, err := store.Load(ctx, key)
	if err != nil {
		utils.LogError("Failed to load promotion window %s: %v", key, err)
	}
	if ok {
		if ms, perr := strconv.ParseInt(raw, 10, 64); perr == nil {
			current := Window{ExpiresAt: time.UnixMilli(ms)}
			if !current.ExpiresAt.Before(floor) {
				return current
			}
			utils.LogDebug("Promotion window %s below floor, renewing", key)
		} else {
			utils.LogError("Discarding unreadable promotion window %s=%q", key, raw)
		}
	}

	next := Window{ExpiresAt: now.Add(e.Duration)}
	if err := store.Save(ctx, key, strconv.FormatInt(next.ExpiryTimestamp(), 10)); err != nil {
		utils.LogError("Failed to persist promotion window %s: %v", key, err)
	}
	return next
}

// SecondsRemaining returns whole seconds until w ends, never negative
func SecondsRemaining(w Window, now time.Time) int64 {
	remaining := w.ExpiresAt.Sub(now)
	if remaining <= 0 {
		return 0
	}
	return int64(remaining / time.Second)
}

// FormatCountdown splits seconds into zero-padded hours, minutes and seconds
func FormatCountdown(seconds int64) Countdown {
	if seconds < 0 {
		seconds = 0
	}
	return Countdown{
		Hours:   fmt.Sprintf("%02d", seconds/3600),
		Minutes: fmt.Sprintf("%02d", seconds%3600/60),
		Seconds: fmt.Sprintf("%02d", seconds%60),
	}
}

// Current formats the countdown of w at the engine's clock
func (e *Engine) Current(w Window) Countdown {
	return FormatCountdown(SecondsRemaining(w, e.now()))
}

// Tick emits the countdown of w immediately and then every TickInterval. The
// emitted value never increases, even if the clock steps backwards, and once
// it reaches zero it holds there. Cancelling ctx stops the ticker and closes
// the channel; it is the only way the channel closes.
func (e *Engine) Tick(ctx context.Context, w Window) <-chan Countdown {
	interval := e.TickInterval
	if interval <= 0 {
		interval = DefaultTickInterval
	}
	out := make(chan Countdown)

	go func() {
		defer close(out)
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		last := SecondsRemaining(w, e.now())
		for {
			select {
			case out <- FormatCountdown(last):
			case <-ctx.Done():
				return
			}

			select {
			case <-ticker.C:
			case <-ctx.Done():
				return
			}
			if s := SecondsRemaining(w, e.now()); s < last {
				last = s
			}
		}
	}()

	return out
}
