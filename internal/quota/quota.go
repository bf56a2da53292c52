// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package quota enforces per-day ceilings on blob creation and updates and
// keeps informational daily counters.
package quota

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-note-keeper/internal/config"
	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/store"
)

// DayLayout names the counter bucket of a day, in UTC.
const DayLayout = "2006-01-02"

// Action is an operation limited by a daily ceiling.
type Action string

const (
	ActionCreate           Action = "create"
	ActionUpdate           Action = "update"
	ActionCreateSharedNote Action = "createSharedNote"
)

// Event is an informational counter. Events never block a request.
type Event string

const (
	EventRead            Event = "read"
	EventInvalidKey      Event = "invalidKey"
	EventReadUnknownFile Event = "readUnknownFile"
	EventCleanUp         Event = "cleanUp"

	EventExceededCreate       Event = "exceededDailyCreateLimit"
	EventExceededUpdate       Event = "exceededDailyUpdateLimit"
	EventExceededCreateShared Event = "exceededDailyCreateSharedLimit"
)

var exceededEvents = map[Action]Event{
	ActionCreate:           EventExceededCreate,
	ActionUpdate:           EventExceededUpdate,
	ActionCreateSharedNote: EventExceededCreateShared,
}

// Guard checks actions against their daily ceilings.
type Guard struct {
	counters store.CounterStorage
	ceilings map[Action]int64
	now      func() time.Time
}

// Option customizes a [Guard].
type Option func(*Guard)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(g *Guard) { g.now = now }
}

func NewGuard(counters store.CounterStorage, cfg config.Quota, opts ...Option) *Guard {
	g := &Guard{
		counters: counters,
		ceilings: map[Action]int64{
			ActionCreate:           cfg.CreateLimit,
			ActionUpdate:           cfg.UpdateLimit,
			ActionCreateSharedNote: cfg.SharedNoteLimit,
		},
		now: time.Now,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

func (g *Guard) day() string {
	return g.now().UTC().Format(DayLayout)
}

// Allow counts one occurrence of action for today. When the ceiling has been
// reached the counter is left unchanged, the matching exceededDaily...Limit
// event is recorded and [ErrLimit] is returned.
func (g *Guard) Allow(ctx context.Context, action Action) error {
	ceiling, ok := g.ceilings[action]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownAction, action)
	}

	day := g.day()
	count, allowed, err := g.counters.IncrementBelow(ctx, day, string(action), ceiling)
	if err != nil {
		return fmt.Errorf("error counting %s: %w", action, err)
	}
	if allowed {
		return nil
	}

	logger.FromContext(ctx).Warn().
		Str("action", string(action)).
		Int64("count", count).
		Int64("ceiling", ceiling).
		Msg("daily limit reached")

	g.Record(ctx, exceededEvents[action])
	return ErrLimit
}

// Record counts an informational event. Failures are logged and otherwise
// ignored.
func (g *Guard) Record(ctx context.Context, event Event) {
	if _, err := g.counters.Increment(ctx, g.day(), string(event)); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "Guard.Record").
			Str("event", string(event)).
			Msg("failed to record event")
	}
}

// Count returns today's value of a counter.
func (g *Guard) Count(ctx context.Context, name string) (int64, error) {
	return g.counters.Count(ctx, g.day(), name)
}
