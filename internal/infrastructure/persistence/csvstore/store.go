// Package csvstore implements flat-file CSV persistence for Gradebook.
//
// Формат файла (бит-в-бит):
//
//	StudentId,Name,Age
//	<id>,<name>,<age>
//
// Одна строка заголовка, затем по строке на студента. Поля разделяются
// запятыми без экранирования: имя с запятой внутри испортит формат.
// Это известное ограничение формата, оно документируется, а не чинится.
package csvstore

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/alem-hub/gradebook/internal/domain/student"
	"github.com/alem-hub/gradebook/pkg/logger"
)

// Header - строка заголовка CSV-файла.
const Header = "StudentId,Name,Age"

const fieldsPerLine = 3

// Store читает и пишет реестр студентов в CSV-файл.
// Ошибки ввода-вывода возвращаются вызывающему вместе с тем, что удалось
// накопить; политика "логировать и продолжать" остаётся на границе
// приложения, а не здесь.
type Store struct {
	path string
	log  *logger.Logger
}

// NewStore создаёт Store для указанного пути.
func NewStore(path string, log *logger.Logger) *Store {
	if log == nil {
		log = logger.Default()
	}
	return &Store{
		path: path,
		log:  log.With(logger.Component("csvstore"), logger.Path(path)),
	}
}

// Path возвращает путь к файлу.
func (s *Store) Path() string {
	return s.path
}

// Save записывает заголовок и по одной строке на студента в заданном порядке.
func (s *Store) Save(students []*student.Student) error {
	var b strings.Builder
	b.WriteString(Header)
	b.WriteByte('\n')

	for _, st := range students {
		if st == nil {
			continue
		}
		b.WriteString(strings.Join([]string{
			st.ID().String(),
			st.Name().String(),
			strconv.Itoa(st.Age().Int()),
		}, ","))
		b.WriteByte('\n')
	}

	if err := os.WriteFile(s.path, []byte(b.String()), 0o644); err != nil {
		return fmt.Errorf("csvstore: save %s: %w", s.path, err)
	}

	s.log.Debug("saved students", logger.Count(len(students)))
	return nil
}

// Load читает студентов из файла.
// Отсутствующий файл - не ошибка: возвращается пустая последовательность.
// Заголовок и пустые строки пропускаются. Строка принимается, только если
// в ней ровно 3 поля, возраст - целое число и запись проходит валидацию
// Student; остальные строки пропускаются с записью в лог.
// При ошибке чтения возвращается накопленное плюс ошибка.
func (s *Store) Load() ([]*student.Student, error) {
	file, err := os.Open(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			s.log.Debug("file does not exist, returning empty roster")
			return []*student.Student{}, nil
		}
		return nil, fmt.Errorf("csvstore: open %s: %w", s.path, err)
	}
	defer file.Close()

	students := make([]*student.Student, 0)
	scanner := bufio.NewScanner(file)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimRight(scanner.Text(), "\r")

		// Первая строка - заголовок
		if lineNo == 1 {
			continue
		}
		if strings.TrimSpace(line) == "" {
			continue
		}

		fields := strings.Split(line, ",")
		if len(fields) != fieldsPerLine {
			s.log.Warn("skipping malformed line", logger.LineNumber(lineNo),
				logger.Int("fields", len(fields)))
			continue
		}

		age, err := strconv.Atoi(strings.TrimSpace(fields[2]))
		if err != nil {
			s.log.Warn("skipping line with non-integer age", logger.LineNumber(lineNo))
			continue
		}

		st, err := student.NewStudent(fields[0], fields[1], age)
		if err != nil {
			s.log.Warn("skipping line that fails validation",
				logger.LineNumber(lineNo), logger.Err(err))
			continue
		}

		students = append(students, st)
	}

	if err := scanner.Err(); err != nil {
		// Отдаём накопленное: лучше частичный реестр, чем никакого
		return students, fmt.Errorf("csvstore: read %s: %w", s.path, err)
	}

	s.log.Debug("loaded students", logger.Count(len(students)))
	return students, nil
}
