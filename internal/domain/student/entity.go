// Package student содержит доменную модель студента для Gradebook.
// Это ядро бизнес-логики - здесь нет внешних зависимостей, кроме генерации ID.
package student

import (
	"fmt"
	"strings"

	"github.com/alem-hub/gradebook/internal/domain/shared"

	"github.com/google/uuid"
)

// ══════════════════════════════════════════════════════════════════════════════
// VALUE OBJECTS
// ══════════════════════════════════════════════════════════════════════════════

// StudentID представляет уникальный идентификатор студента.
// Идентичность студента определяется только этим значением.
type StudentID string

// IsValid проверяет, что идентификатор не пустой и не состоит из пробелов.
func (id StudentID) IsValid() bool {
	return strings.TrimSpace(string(id)) != ""
}

// String возвращает строковое представление идентификатора.
func (id StudentID) String() string {
	return string(id)
}

// Compare выполняет побайтовое трёхстороннее сравнение идентификаторов.
func (id StudentID) Compare(other StudentID) int {
	return strings.Compare(string(id), string(other))
}

// NewStudentID создаёт StudentID с валидацией.
func NewStudentID(id string) (StudentID, error) {
	sid := StudentID(strings.TrimSpace(id))
	if !sid.IsValid() {
		return "", shared.ErrInvalidStudentID
	}
	return sid, nil
}

// NewID генерирует новый уникальный StudentID (UUID в строковом формате).
// Для вызывающих без собственной схемы идентификаторов.
func NewID() StudentID {
	return StudentID(uuid.NewString())
}

// Name представляет имя студента.
type Name string

// IsValid проверяет, что имя не пустое и не состоит из пробелов.
func (n Name) IsValid() bool {
	return strings.TrimSpace(string(n)) != ""
}

// String возвращает строковое представление имени.
func (n Name) String() string {
	return string(n)
}

// NewName создаёт Name с валидацией.
func NewName(name string) (Name, error) {
	n := Name(strings.TrimSpace(name))
	if !n.IsValid() {
		return "", shared.ErrInvalidName
	}
	return n, nil
}

// Age представляет возраст студента.
type Age int

// Границы допустимого возраста.
const (
	MinAge Age = 0
	MaxAge Age = 150
)

// IsValid проверяет, что возраст находится в диапазоне [0, 150].
func (a Age) IsValid() bool {
	return a >= MinAge && a <= MaxAge
}

// Int возвращает возраст как int.
func (a Age) Int() int {
	return int(a)
}

// NewAge создаёт Age с валидацией.
func NewAge(age int) (Age, error) {
	a := Age(age)
	if !a.IsValid() {
		return 0, shared.ErrInvalidAge
	}
	return a, nil
}

// ══════════════════════════════════════════════════════════════════════════════
// MAIN ENTITY: STUDENT
// ══════════════════════════════════════════════════════════════════════════════

// Student - неизменяемая запись о студенте.
// Все поля валидируются при создании; изменение выполняется только через
// WithName/WithAge, которые возвращают новую запись.
type Student struct {
	id   StudentID
	name Name
	age  Age
}

// NewStudent создаёт нового студента с валидацией всех полей.
func NewStudent(id, name string, age int) (*Student, error) {
	sid, err := NewStudentID(id)
	if err != nil {
		return nil, err
	}

	n, err := NewName(name)
	if err != nil {
		return nil, err
	}

	a, err := NewAge(age)
	if err != nil {
		return nil, err
	}

	return &Student{id: sid, name: n, age: a}, nil
}

// ID возвращает идентификатор студента.
func (s *Student) ID() StudentID {
	return s.id
}

// Name возвращает имя студента.
func (s *Student) Name() Name {
	return s.name
}

// Age возвращает возраст студента.
func (s *Student) Age() Age {
	return s.age
}

// WithName возвращает копию студента с новым именем.
func (s *Student) WithName(name string) (*Student, error) {
	n, err := NewName(name)
	if err != nil {
		return nil, err
	}
	return &Student{id: s.id, name: n, age: s.age}, nil
}

// WithAge возвращает копию студента с новым возрастом.
func (s *Student) WithAge(age int) (*Student, error) {
	a, err := NewAge(age)
	if err != nil {
		return nil, err
	}
	return &Student{id: s.id, name: s.name, age: a}, nil
}

// Equal сравнивает студентов только по идентификатору.
// Две записи с одинаковым id - один и тот же студент,
// независимо от имени и возраста. На этом держится уникальность в Registry.
func (s *Student) Equal(other *Student) bool {
	if s == nil || other == nil {
		return false
	}
	return s.id == other.id
}

// Compare выполняет трёхстороннее сравнение по идентификатору.
// Используется для стабильной сортировки.
func (s *Student) Compare(other *Student) int {
	return s.id.Compare(other.id)
}

// Clone создаёт копию студента.
func (s *Student) Clone() *Student {
	if s == nil {
		return nil
	}
	clone := *s
	return &clone
}

// String возвращает строковое представление студента для логирования.
func (s *Student) String() string {
	return fmt.Sprintf("Student{ID: %s, Name: %s, Age: %d}", s.id, s.name, s.age)
}
