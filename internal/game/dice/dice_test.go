package dice_test

import (
	"errors"
	"testing"

	"github.com/cory-johannsen/abilityroll/internal/game/dice"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

// TestCryptoSource_Intn_InRange verifies the postcondition:
// every value returned by Intn(6) is in [0, 6).
func TestCryptoSource_Intn_InRange(t *testing.T) {
	src := dice.NewCryptoSource()
	for i := 0; i < 1000; i++ {
		v := src.Intn(6)
		assert.GreaterOrEqual(t, v, 0)
		assert.Less(t, v, 6)
	}
}

// TestCryptoSource_Intn_PanicsOnZero verifies the precondition:
// Intn panics when called with n <= 0.
func TestCryptoSource_Intn_PanicsOnZero(t *testing.T) {
	src := dice.NewCryptoSource()
	assert.Panics(t, func() { src.Intn(0) })
}

func TestSeededSource_PanicsOnZero(t *testing.T) {
	src := dice.NewSeededSource(1)
	assert.Panics(t, func() { src.Intn(0) })
}

// TestSeededSource_Deterministic verifies that equal seeds replay equal sequences.
func TestSeededSource_Deterministic(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		seed := rapid.Uint64().Draw(rt, "seed")
		a := dice.NewSeededSource(seed)
		b := dice.NewSeededSource(seed)
		for i := 0; i < 32; i++ {
			assert.Equal(rt, a.Intn(dice.Sides), b.Intn(dice.Sides), "draw %d", i)
		}
	})
}

// TestD6Stream_FacesInRange verifies every face drawn is in [1, 6].
func TestD6Stream_FacesInRange(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		seed := rapid.Uint64().Draw(rt, "seed")
		s := dice.NewD6Stream(dice.NewSeededSource(seed))
		for i := 0; i < 100; i++ {
			face, err := s.Next()
			require.NoError(rt, err)
			assert.GreaterOrEqual(rt, face, 1)
			assert.LessOrEqual(rt, face, dice.Sides)
		}
	})
}

// TestD6Stream_CoversAllFaces checks the stream is not stuck on a subset of faces.
func TestD6Stream_CoversAllFaces(t *testing.T) {
	s := dice.NewD6Stream(dice.NewCryptoSource())
	seen := make(map[int]int)
	for i := 0; i < 6000; i++ {
		face, err := s.Next()
		require.NoError(t, err)
		seen[face]++
	}
	for face := 1; face <= dice.Sides; face++ {
		assert.Greater(t, seen[face], 0, "face %d never drawn", face)
	}
	assert.Len(t, seen, dice.Sides)
}

func TestNewD6Stream_PanicsOnNilSource(t *testing.T) {
	assert.Panics(t, func() { dice.NewD6Stream(nil) })
}

func TestFixedStream_ReplaysInOrderThenExhausts(t *testing.T) {
	s := dice.NewFixedStream(3, 1, 4)
	for _, want := range []int{3, 1, 4} {
		got, err := s.Next()
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	assert.Equal(t, 0, s.Remaining())

	_, err := s.Next()
	assert.ErrorIs(t, err, dice.ErrExhaustedSource)
}

func TestFixedStream_RejectsInvalidFace(t *testing.T) {
	s := dice.NewFixedStream(2, 7)
	_, err := s.Next()
	require.NoError(t, err)

	_, err = s.Next()
	require.Error(t, err)
	assert.True(t, errors.Is(err, dice.ErrInvalidFace))
	assert.Equal(t, 1, s.Remaining(), "invalid face must not be consumed")
}

func TestFixedStream_CopiesInput(t *testing.T) {
	faces := []int{6, 6}
	s := dice.NewFixedStream(faces...)
	faces[0] = 1
	got, err := s.Next()
	require.NoError(t, err)
	assert.Equal(t, 6, got)
}
