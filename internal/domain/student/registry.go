package student

import (
	"github.com/alem-hub/gradebook/internal/domain/shared"
)

// ══════════════════════════════════════════════════════════════════════════════
// REGISTRY
// Коллекция студентов с гарантией уникальности по идентификатору.
// Порядок вставки сохраняется.
// ══════════════════════════════════════════════════════════════════════════════

// Predicate - условие отбора студентов для Find.
type Predicate func(*Student) bool

// Registry хранит студентов в порядке добавления и не допускает
// двух записей с одним идентификатором.
// Не синхронизирован: при конкурентном доступе нужна внешняя блокировка.
type Registry struct {
	entries []*Student
	byID    map[StudentID]*Student
}

// NewRegistry создаёт пустой Registry.
func NewRegistry() *Registry {
	return &Registry{
		entries: make([]*Student, 0),
		byID:    make(map[StudentID]*Student),
	}
}

// Add добавляет студента в конец коллекции.
// Возвращает ErrNilStudent для nil и ErrDuplicateStudent,
// если студент с таким id уже есть; коллекция при этом не меняется.
func (r *Registry) Add(s *Student) error {
	if s == nil {
		return shared.ErrNilStudent
	}
	if _, exists := r.byID[s.ID()]; exists {
		return shared.ErrDuplicateStudent
	}

	r.entries = append(r.entries, s)
	r.byID[s.ID()] = s
	return nil
}

// Remove удаляет первую запись, равную по идентификатору.
// Возвращает true, если удаление произошло; false для nil или отсутствующего студента.
func (r *Registry) Remove(s *Student) bool {
	if s == nil {
		return false
	}
	if _, exists := r.byID[s.ID()]; !exists {
		return false
	}

	for i, entry := range r.entries {
		if entry.Equal(s) {
			r.entries = append(r.entries[:i], r.entries[i+1:]...)
			break
		}
	}
	delete(r.byID, s.ID())
	return true
}

// Get возвращает студента по идентификатору.
func (r *Registry) Get(id StudentID) (*Student, bool) {
	s, ok := r.byID[id]
	return s, ok
}

// All возвращает защитную копию всех записей в порядке добавления.
// Изменение результата не затрагивает внутреннее состояние.
func (r *Registry) All() []*Student {
	result := make([]*Student, len(r.entries))
	copy(result, r.entries)
	return result
}

// Find возвращает студентов, удовлетворяющих предикату, в порядке добавления.
// Возвращает ErrNilPredicate для nil предиката.
func (r *Registry) Find(pred Predicate) ([]*Student, error) {
	if pred == nil {
		return nil, shared.ErrNilPredicate
	}

	result := make([]*Student, 0)
	for _, s := range r.entries {
		if pred(s) {
			result = append(result, s)
		}
	}
	return result, nil
}

// ByAgeRange возвращает студентов с возрастом в диапазоне [minAge, maxAge]
// включительно, в порядке добавления.
// Возвращает ErrInvalidAgeRange, если minAge < 0 или maxAge < minAge.
func (r *Registry) ByAgeRange(minAge, maxAge int) ([]*Student, error) {
	if minAge < 0 || maxAge < minAge {
		return nil, shared.ErrInvalidAgeRange
	}

	return r.Find(func(s *Student) bool {
		age := s.Age().Int()
		return age >= minAge && age <= maxAge
	})
}

// Len возвращает количество студентов в коллекции.
func (r *Registry) Len() int {
	return len(r.entries)
}
