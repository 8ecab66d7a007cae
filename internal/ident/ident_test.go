package ident_test

import (
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/mauv0809/playdata/internal/ident"
	"github.com/stretchr/testify/assert"
)

func TestNext_MatchesClock(t *testing.T) {
	clock := clockwork.NewFakeClockAt(time.UnixMilli(1700000000000))
	gen := ident.New(clock)

	assert.Equal(t, int64(1700000000000), gen.Next())

	clock.Advance(5 * time.Millisecond)
	assert.Equal(t, int64(1700000000005), gen.Next())
}

func TestNext_NeverRepeatsOnStalledClock(t *testing.T) {
	clock := clockwork.NewFakeClockAt(time.UnixMilli(1700000000000))
	gen := ident.New(clock)

	seen := make(map[int64]bool)
	var prev int64
	for i := 0; i < 1000; i++ {
		id := gen.Next()
		assert.False(t, seen[id], "id %d issued twice", id)
		assert.Greater(t, id, prev)
		seen[id] = true
		prev = id
	}
}
