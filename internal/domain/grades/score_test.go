package grades

import (
	"testing"

	"github.com/alem-hub/gradebook/internal/domain/shared"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewScore_Valid(t *testing.T) {
	s, err := NewScore("Mathematics", 95.5)
	require.NoError(t, err)

	assert.Equal(t, Subject("Mathematics"), s.Subject())
	assert.Equal(t, Points(95.5), s.Points())
	assert.False(t, s.IsZero())
}

func TestNewScore_Validation(t *testing.T) {
	tests := []struct {
		name    string
		subject string
		points  float64
		wantErr error
	}{
		{"empty subject", "", 50, shared.ErrInvalidSubject},
		{"whitespace subject", "   ", 50, shared.ErrInvalidSubject},
		{"negative points", "Math", -0.5, shared.ErrInvalidPoints},
		{"points above max", "Math", 100.5, shared.ErrInvalidPoints},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewScore(tt.subject, tt.points)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.True(t, shared.IsValidation(err))
		})
	}
}

func TestNewScore_PointsBoundaries(t *testing.T) {
	_, err := NewScore("Math", 0)
	assert.NoError(t, err)

	_, err = NewScore("Math", 100)
	assert.NoError(t, err)
}

func TestScore_IsZero(t *testing.T) {
	var zero Score
	assert.True(t, zero.IsZero())
}

func TestGradeFor_Thresholds(t *testing.T) {
	tests := []struct {
		value float64
		want  Grade
	}{
		{100, GradeA},
		{91.25, GradeA},
		{90.0, GradeA},
		{89.999, GradeB},
		{80.0, GradeB},
		{79.999, GradeC},
		{70.0, GradeC},
		{69.999, GradeD},
		{60.0, GradeD},
		{59.999, GradeF},
		{0, GradeF},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, GradeFor(tt.value), "GradeFor(%v)", tt.value)
	}
}

func TestGrade_IsPassing(t *testing.T) {
	assert.True(t, GradeD.IsPassing())
	assert.False(t, GradeF.IsPassing())
}
