package grades

import (
	"testing"

	"github.com/alem-hub/gradebook/internal/domain/shared"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustScore(t *testing.T, subject string, points float64) Score {
	t.Helper()
	s, err := NewScore(subject, points)
	require.NoError(t, err)
	return s
}

func TestLedger_AddScoreAndScores(t *testing.T) {
	l := NewLedger()

	require.NoError(t, l.AddScore("2021001", mustScore(t, "Mathematics", 95.5)))
	require.NoError(t, l.AddScore("2021001", mustScore(t, "English", 87.0)))

	scores, err := l.Scores("2021001")
	require.NoError(t, err)
	require.Len(t, scores, 2)
	assert.Equal(t, Subject("Mathematics"), scores[0].Subject())
	assert.Equal(t, Subject("English"), scores[1].Subject())
}

func TestLedger_DuplicateSubjectRetained(t *testing.T) {
	l := NewLedger()

	require.NoError(t, l.AddScore("a", mustScore(t, "Math", 70)))
	require.NoError(t, l.AddScore("a", mustScore(t, "Math", 80)))

	scores, err := l.Scores("a")
	require.NoError(t, err)
	assert.Len(t, scores, 2)
}

func TestLedger_AddScoreInvalidArguments(t *testing.T) {
	l := NewLedger()

	err := l.AddScore("", mustScore(t, "Math", 70))
	assert.ErrorIs(t, err, shared.ErrInvalidArgument)

	err = l.AddScore("   ", mustScore(t, "Math", 70))
	assert.ErrorIs(t, err, shared.ErrInvalidArgument)

	err = l.AddScore("a", Score{})
	assert.ErrorIs(t, err, shared.ErrInvalidArgument)
}

func TestLedger_ScoresUnknownIDIsEmpty(t *testing.T) {
	l := NewLedger()

	scores, err := l.Scores("missing")
	require.NoError(t, err)
	assert.NotNil(t, scores)
	assert.Empty(t, scores)
}

func TestLedger_ScoresDefensiveCopy(t *testing.T) {
	l := NewLedger()
	require.NoError(t, l.AddScore("a", mustScore(t, "Math", 70)))

	scores, err := l.Scores("a")
	require.NoError(t, err)
	scores[0] = Score{}

	fresh, err := l.Scores("a")
	require.NoError(t, err)
	assert.Equal(t, Subject("Math"), fresh[0].Subject())
}

func TestLedger_Average(t *testing.T) {
	l := NewLedger()
	require.NoError(t, l.AddScore("2021001", mustScore(t, "Mathematics", 95.5)))
	require.NoError(t, l.AddScore("2021001", mustScore(t, "English", 87.0)))

	avg, err := l.Average("2021001")
	require.NoError(t, err)
	assert.InDelta(t, 91.25, avg, 1e-9)
	assert.Equal(t, GradeA, GradeFor(avg))
}

func TestLedger_AverageNoScoresIsZero(t *testing.T) {
	l := NewLedger()

	avg, err := l.Average("missing")
	require.NoError(t, err)
	assert.Zero(t, avg)
	assert.False(t, l.HasScores("missing"))
}

func TestLedger_AverageBlankID(t *testing.T) {
	l := NewLedger()

	_, err := l.Average("  ")
	assert.ErrorIs(t, err, shared.ErrInvalidArgument)
}

func TestLedger_TopStudents(t *testing.T) {
	l := NewLedger()
	require.NoError(t, l.AddScore("2021001", mustScore(t, "Mathematics", 95.5)))
	require.NoError(t, l.AddScore("2021001", mustScore(t, "English", 87.0)))
	require.NoError(t, l.AddScore("2021002", mustScore(t, "Mathematics", 82.0)))
	require.NoError(t, l.AddScore("2021003", mustScore(t, "Mathematics", 90.0)))

	top, err := l.TopStudents(1)
	require.NoError(t, err)
	require.Len(t, top, 1)
	assert.Equal(t, "2021001", top[0].StudentID)
	assert.InDelta(t, 91.25, top[0].Average, 1e-9)
	assert.Equal(t, GradeA, top[0].Grade)
}

func TestLedger_TopStudentsOrderingAndTieBreak(t *testing.T) {
	l := NewLedger()
	require.NoError(t, l.AddScore("b", mustScore(t, "Math", 90)))
	require.NoError(t, l.AddScore("a", mustScore(t, "Math", 90)))
	require.NoError(t, l.AddScore("c", mustScore(t, "Math", 95)))

	top, err := l.TopStudents(10)
	require.NoError(t, err)
	require.Len(t, top, 3, "fewer ids than count returns all")

	assert.Equal(t, "c", top[0].StudentID)
	// Равные средние упорядочены по возрастанию id
	assert.Equal(t, "a", top[1].StudentID)
	assert.Equal(t, "b", top[2].StudentID)
}

func TestLedger_TopStudentsInvalidCount(t *testing.T) {
	l := NewLedger()

	_, err := l.TopStudents(0)
	assert.ErrorIs(t, err, shared.ErrInvalidArgument)
}

func TestLedger_AllScoresDeepCopy(t *testing.T) {
	l := NewLedger()
	require.NoError(t, l.AddScore("a", mustScore(t, "Math", 70)))

	all := l.AllScores()
	all["a"][0] = Score{}
	delete(all, "a")

	scores, err := l.Scores("a")
	require.NoError(t, err)
	require.Len(t, scores, 1)
	assert.Equal(t, Subject("Math"), scores[0].Subject())
	assert.Equal(t, 1, l.Len())
}
