package abilities_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/cory-johannsen/abilityroll/internal/game/abilities"
	"github.com/cory-johannsen/abilityroll/internal/game/dice"
)

func newTestGenerator(t testing.TB, faces ...int) (*abilities.Generator, *observer.ObservedLogs) {
	t.Helper()
	core, logs := observer.New(zap.DebugLevel)
	return abilities.NewGenerator(dice.NewFixedStream(faces...), zap.New(core)), logs
}

func TestGenerator_Trial_LogsAuditTrail(t *testing.T) {
	gen, logs := newTestGenerator(t, facesForScores(10, 8, 14, 3, 9, 12)...)

	got, err := gen.Trial(abilities.Traditional)
	require.NoError(t, err)
	assert.Equal(t, outcome(3, 8, 9, 10, 12, 14), got)

	entries := logs.FilterMessage("ability trial").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, "traditional", fields["strategy"])
	assert.Equal(t, []interface{}{10, 8, 14, 3, 9, 12}, fields["scores"])
	assert.Equal(t, []interface{}{3, 8, 9, 10, 12, 14}, fields["outcome"])
	assert.Len(t, fields["windows"], 6)
}

func TestGenerator_Average_ContinuousStream(t *testing.T) {
	gen, logs := newTestGenerator(t, facesForScores(
		10, 8, 14, 3, 9, 12, 4,
		11, 13, 7, 16, 6, 15, 18,
	)...)

	acc, err := gen.Average(abilities.DropTwice, 2)
	require.NoError(t, err)
	// Trial 1 drops 3: [4 8 9 10 12 14]; trial 2 drops 6: [7 11 13 15 16 18].
	assert.Equal(t, "5.50, 9.50, 11.00, 12.50, 14.00, 16.00", acc.String())

	assert.Equal(t, 2, logs.FilterMessage("ability trial").Len())
	summary := logs.FilterMessage("averaged trials").All()
	require.Len(t, summary, 1)
	assert.Equal(t, int64(2), summary[0].ContextMap()["trials"])
}

func TestGenerator_Average_RejectsNonPositive(t *testing.T) {
	gen, _ := newTestGenerator(t)
	_, err := gen.Average(abilities.Traditional, 0)
	assert.ErrorIs(t, err, abilities.ErrEmptyAverage)
}

func TestGenerator_Average_LogsFailure(t *testing.T) {
	gen, logs := newTestGenerator(t, 6, 6, 6)
	_, err := gen.Average(abilities.Traditional, 3)
	require.ErrorIs(t, err, dice.ErrExhaustedSource)

	failed := logs.FilterMessage("trial failed").All()
	require.Len(t, failed, 1)
	assert.Equal(t, int64(1), failed[0].ContextMap()["trial"])
	assert.Equal(t, 0, logs.FilterMessage("averaged trials").Len())
}
