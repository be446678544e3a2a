// Package grades содержит доменную модель оценок Gradebook:
// баллы по предметам, средний балл и буквенные оценки.
// Журнал ключуется строковыми id студентов и намеренно не зависит
// от пакета student - связности между реестром и журналом нет.
package grades

import (
	"fmt"
	"strings"

	"github.com/alem-hub/gradebook/internal/domain/shared"
)

// ══════════════════════════════════════════════════════════════════════════════
// VALUE OBJECTS
// ══════════════════════════════════════════════════════════════════════════════

// Subject представляет название предмета.
type Subject string

// IsValid проверяет, что название не пустое и не состоит из пробелов.
func (s Subject) IsValid() bool {
	return strings.TrimSpace(string(s)) != ""
}

// String возвращает строковое представление предмета.
func (s Subject) String() string {
	return string(s)
}

// Points представляет баллы за предмет.
type Points float64

// Границы допустимых баллов.
const (
	MinPoints Points = 0
	MaxPoints Points = 100
)

// IsValid проверяет, что баллы находятся в диапазоне [0, 100].
func (p Points) IsValid() bool {
	return p >= MinPoints && p <= MaxPoints
}

// Float64 возвращает баллы как float64.
func (p Points) Float64() float64 {
	return float64(p)
}

// ══════════════════════════════════════════════════════════════════════════════
// SCORE
// ══════════════════════════════════════════════════════════════════════════════

// Score - неизменяемая запись о баллах по одному предмету.
// Идентичности не имеет: два Score равны структурно.
type Score struct {
	subject Subject
	points  Points
}

// NewScore создаёт Score с валидацией.
func NewScore(subject string, points float64) (Score, error) {
	sub := Subject(strings.TrimSpace(subject))
	if !sub.IsValid() {
		return Score{}, shared.ErrInvalidSubject
	}

	p := Points(points)
	if !p.IsValid() {
		return Score{}, shared.ErrInvalidPoints
	}

	return Score{subject: sub, points: p}, nil
}

// Subject возвращает предмет.
func (s Score) Subject() Subject {
	return s.subject
}

// Points возвращает баллы.
func (s Score) Points() Points {
	return s.points
}

// IsZero возвращает true для нулевого (несозданного через NewScore) значения.
func (s Score) IsZero() bool {
	return s.subject == ""
}

// String возвращает строковое представление для логирования.
func (s Score) String() string {
	return fmt.Sprintf("Score{Subject: %s, Points: %.2f}", s.subject, float64(s.points))
}

// ══════════════════════════════════════════════════════════════════════════════
// GRADE
// ══════════════════════════════════════════════════════════════════════════════

// Grade - буквенная оценка, вычисляемая из среднего балла.
type Grade string

const (
	GradeA Grade = "A"
	GradeB Grade = "B"
	GradeC Grade = "C"
	GradeD Grade = "D"
	GradeF Grade = "F"
)

// Пороговые значения оценок. Нижние границы включительны.
const (
	thresholdA = 90.0
	thresholdB = 80.0
	thresholdC = 70.0
	thresholdD = 60.0
)

// GradeFor возвращает буквенную оценку для среднего балла.
// Пороги проверяются от высшего к низшему: >=90 A, >=80 B, >=70 C, >=60 D, иначе F.
func GradeFor(value float64) Grade {
	switch {
	case value >= thresholdA:
		return GradeA
	case value >= thresholdB:
		return GradeB
	case value >= thresholdC:
		return GradeC
	case value >= thresholdD:
		return GradeD
	default:
		return GradeF
	}
}

// IsPassing возвращает true, если оценка проходная (не F).
func (g Grade) IsPassing() bool {
	return g != GradeF
}

// String возвращает строковое представление оценки.
func (g Grade) String() string {
	return string(g)
}
