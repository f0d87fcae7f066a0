package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestQueuePairsOldestFirst(t *testing.T) {
	q := NewQueue()
	clock := time.Date(2024, 3, 2, 12, 0, 0, 0, time.UTC)
	q.now = func() time.Time {
		clock = clock.Add(time.Second)
		return clock
	}

	require.NoError(t, q.AddPlayer(Player{ID: "a"}))
	_, _, ok := q.NextPair()
	require.False(t, ok, "one player cannot be paired")

	require.NoError(t, q.AddPlayer(Player{ID: "b"}))
	require.NoError(t, q.AddPlayer(Player{ID: "c"}))
	require.ErrorIs(t, q.AddPlayer(Player{ID: "b"}), ErrAlreadyQueued)
	require.Equal(t, 3, q.Size())

	first, second, ok := q.NextPair()
	require.True(t, ok)
	require.Equal(t, "a", first.ID)
	require.Equal(t, "b", second.ID)
	require.Equal(t, 1, q.Size())
	require.True(t, q.Contains("c"))
}

func TestQueueRemove(t *testing.T) {
	q := NewQueue()
	require.NoError(t, q.AddPlayer(Player{ID: "a"}))
	require.NoError(t, q.AddPlayer(Player{ID: "b"}))

	require.True(t, q.Remove("a"))
	require.False(t, q.Remove("a"))
	require.False(t, q.Contains("a"))
	require.Equal(t, 1, q.Size())
}

func TestSeats(t *testing.T) {
	var seats Seats

	side, err := seats.Take("alice")
	require.NoError(t, err)
	require.Equal(t, White, side)

	side, err = seats.Take("alice")
	require.NoError(t, err)
	require.Equal(t, White, side, "rejoining keeps the seat")

	side, err = seats.Take("bob")
	require.NoError(t, err)
	require.Equal(t, Black, side)
	require.True(t, seats.Full())

	_, err = seats.Take("carol")
	require.ErrorIs(t, err, ErrGameFull)

	_, ok := seats.SideOf("carol")
	require.False(t, ok)
	_, ok = seats.SideOf("")
	require.False(t, ok)
}
