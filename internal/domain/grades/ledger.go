package grades

import (
	"sort"
	"strings"

	"github.com/alem-hub/gradebook/internal/domain/shared"
)

// ══════════════════════════════════════════════════════════════════════════════
// LEDGER
// Журнал баллов: id студента -> последовательность Score в порядке добавления.
// Журнал не проверяет существование студента в Registry - компоненты
// намеренно развязаны, id здесь просто строка.
// ══════════════════════════════════════════════════════════════════════════════

// StudentAverage - пара (студент, средний балл) для рейтинга.
type StudentAverage struct {
	// StudentID - идентификатор студента.
	StudentID string

	// Average - средний балл по всем записанным предметам.
	Average float64

	// Grade - буквенная оценка, производная от Average.
	Grade Grade
}

// Ledger хранит баллы по студентам.
// Не синхронизирован: при конкурентном доступе нужна внешняя блокировка.
type Ledger struct {
	scores map[string][]Score
}

// NewLedger создаёт пустой Ledger.
func NewLedger() *Ledger {
	return &Ledger{
		scores: make(map[string][]Score),
	}
}

// AddScore добавляет баллы студенту, создавая последовательность при
// первом обращении. Дубликаты предмета допустимы и сохраняются оба.
// Возвращает ErrBlankStudentID для пустого id и ErrZeroScore для
// нулевого Score (не созданного через NewScore).
func (l *Ledger) AddScore(studentID string, score Score) error {
	if strings.TrimSpace(studentID) == "" {
		return shared.ErrBlankStudentID
	}
	if score.IsZero() || !score.Points().IsValid() {
		return shared.ErrZeroScore
	}

	l.scores[studentID] = append(l.scores[studentID], score)
	return nil
}

// Scores возвращает защитную копию баллов студента в порядке добавления.
// Для студента без записей возвращает пустую последовательность.
// Возвращает ErrBlankStudentID для пустого id.
func (l *Ledger) Scores(studentID string) ([]Score, error) {
	if strings.TrimSpace(studentID) == "" {
		return nil, shared.ErrBlankStudentID
	}

	recorded := l.scores[studentID]
	result := make([]Score, len(recorded))
	copy(result, recorded)
	return result, nil
}

// HasScores возвращает true, если у студента есть хотя бы одна запись.
func (l *Ledger) HasScores(studentID string) bool {
	return len(l.scores[studentID]) > 0
}

// Average возвращает средний балл студента.
// Для студента без записей возвращает 0.0 - это сигнальное значение,
// неотличимое от настоящего нулевого среднего; см. HasScores.
// Возвращает ErrBlankStudentID для пустого id.
func (l *Ledger) Average(studentID string) (float64, error) {
	if strings.TrimSpace(studentID) == "" {
		return 0, shared.ErrBlankStudentID
	}

	recorded := l.scores[studentID]
	if len(recorded) == 0 {
		return 0.0, nil
	}

	var total float64
	for _, s := range recorded {
		total += s.Points().Float64()
	}
	return total / float64(len(recorded)), nil
}

// TopStudents возвращает первые count студентов по убыванию среднего балла.
// Учитываются только студенты хотя бы с одной записью; если их меньше count,
// возвращаются все. При равных средних порядок детерминирован:
// по возрастанию id.
// Возвращает ErrInvalidTopN, если count < 1.
func (l *Ledger) TopStudents(count int) ([]StudentAverage, error) {
	if count < 1 {
		return nil, shared.ErrInvalidTopN
	}

	ranking := make([]StudentAverage, 0, len(l.scores))
	for id := range l.scores {
		avg, err := l.Average(id)
		if err != nil {
			return nil, err
		}
		ranking = append(ranking, StudentAverage{
			StudentID: id,
			Average:   avg,
			Grade:     GradeFor(avg),
		})
	}

	sort.Slice(ranking, func(i, j int) bool {
		if ranking[i].Average != ranking[j].Average {
			return ranking[i].Average > ranking[j].Average
		}
		return ranking[i].StudentID < ranking[j].StudentID
	})

	if count > len(ranking) {
		count = len(ranking)
	}
	return ranking[:count], nil
}

// AllScores возвращает защитную копию всего журнала:
// копируются и внешняя карта, и внутренние последовательности.
func (l *Ledger) AllScores() map[string][]Score {
	result := make(map[string][]Score, len(l.scores))
	for id, recorded := range l.scores {
		scores := make([]Score, len(recorded))
		copy(scores, recorded)
		result[id] = scores
	}
	return result
}

// Len возвращает количество студентов с записями в журнале.
func (l *Ledger) Len() int {
	return len(l.scores)
}
